package edgeauth

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"hash"
	"strings"
)

// Algorithm selects the hash function backing the token HMAC.
type Algorithm int

// Supported algorithms. The zero value is MD5 to keep the ordering of
// the historical enumeration; NewConfig defaults to SHA256.
const (
	MD5 Algorithm = iota
	SHA1
	SHA256
)

// String returns the lowercase algorithm name.
func (a Algorithm) String() string {
	switch a {
	case MD5:
		return "md5"
	case SHA1:
		return "sha1"
	case SHA256:
		return "sha256"
	default:
		return "unknown"
	}
}

// DigestSize returns the digest length in bytes, or 0 for unknown values.
func (a Algorithm) DigestSize() int {
	switch a {
	case MD5:
		return md5.Size
	case SHA1:
		return sha1.Size
	case SHA256:
		return sha256.Size
	default:
		return 0
	}
}

// ParseAlgorithm parses an algorithm name. Names are case-insensitive and
// accept an optional "hmac" prefix and dash ("SHA-256", "HMACSHA256").
func ParseAlgorithm(name string) (Algorithm, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimPrefix(n, "hmac")
	n = strings.ReplaceAll(n, "-", "")
	switch n {
	case "md5":
		return MD5, nil
	case "sha1":
		return SHA1, nil
	case "sha256":
		return SHA256, nil
	default:
		return 0, ErrUnknownAlgorithm.WithDetails(name)
	}
}

// newHMAC returns a keyed hash for the algorithm.
func (a Algorithm) newHMAC(key []byte) (hash.Hash, error) {
	var h func() hash.Hash
	switch a {
	case MD5:
		h = md5.New
	case SHA1:
		h = sha1.New
	case SHA256:
		h = sha256.New
	default:
		return nil, ErrUnknownAlgorithm.WithDetails(a.String())
	}
	return hmac.New(h, key), nil
}
