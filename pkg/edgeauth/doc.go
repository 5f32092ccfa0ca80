// Package edgeauth builds and signs Akamai Edge Auth tokens.
//
// A token is a delimited list of fields followed by an HMAC over them:
//
//	[ip=<ip>~][st=<start>~]exp=<expiry>~acl=<acl>~[id=<session>~][data=<payload>~]hmac=<hex-digest>
//
// Bracketed fields appear only when set. The field order is covered by
// the signature and never changes.
//
// Usage:
//
//	cfg := edgeauth.NewConfig()
//	if err := cfg.SetKey("abc123"); err != nil {
//		return err
//	}
//	if err := cfg.SetWindow(300); err != nil {
//		return err
//	}
//	cfg.ACL = "/*"
//	token, err := edgeauth.Generate(cfg)
//
// Escaping:
//
//   - PreEscapeACL false (default): the acl is signed raw and the whole
//     token is URI-escaped afterwards.
//   - PreEscapeACL true: the acl is data-escaped in place (with "," and
//     "*" written as %2c and %2a) and the token is returned as is.
//
// The package performs no I/O. Verification, key storage and revocation
// are left to the edge servers that consume the tokens.
package edgeauth
