package edgeauth

import "strings"

const upperhex = "0123456789ABCDEF"

// aclReplacer rewrites the two characters the data escaper leaves alone
// but edge servers expect encoded in a pre-escaped acl.
var aclReplacer = strings.NewReplacer(",", "%2c", "*", "%2a")

// EscapeData percent-encodes s for use as a single URI data component.
//
// ASCII letters, digits and -_.~!'()*, are left as is; every other byte
// of the UTF-8 encoding is written as %XX with uppercase hex.
func EscapeData(s string) string {
	return escape(s, isDataSafe)
}

// EscapeURI percent-encodes the unsafe characters of a whole URI string.
//
// Unreserved and reserved URI characters (including :/?#[]@ and the
// sub-delimiters) are left untouched, so an already structured token
// keeps its delimiters. Space, %, quotes, angle and curly brackets,
// control bytes and non-ASCII bytes are escaped.
func EscapeURI(s string) string {
	return escape(s, isURISafe)
}

// escapeACL renders an acl for a pre-escaped token.
func escapeACL(acl string) string {
	return aclReplacer.Replace(EscapeData(acl))
}

func escape(s string, safe func(byte) bool) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !safe(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if safe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '~':
		return true
	}
	return false
}

func isDataSafe(c byte) bool {
	if isUnreserved(c) {
		return true
	}
	switch c {
	case '!', '\'', '(', ')', '*', ',':
		return true
	}
	return false
}

func isURISafe(c byte) bool {
	if isUnreserved(c) {
		return true
	}
	switch c {
	case ':', '/', '?', '#', '[', ']', '@',
		'!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=':
		return true
	}
	return false
}
