package edgeauth

import (
	"encoding/hex"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Token is a signed token together with the parts it was built from.
type Token struct {
	// Value is the final token string as handed to clients.
	Value string `json:"token" yaml:"token"`

	// Body holds the fragments in signing order, including the trailing
	// delimiter and before any whole-token escaping.
	Body string `json:"body" yaml:"body"`

	// Signature is the lowercase hex HMAC digest.
	Signature string `json:"hmac" yaml:"hmac"`

	// Expiration is the resolved expiration in unix seconds.
	Expiration int64 `json:"expiration" yaml:"expiration"`

	// Algorithm is the name of the HMAC algorithm.
	Algorithm string `json:"algorithm" yaml:"algorithm"`
}

// String returns the token value.
func (t *Token) String() string {
	return t.Value
}

// Generator builds signed tokens from a Config. It holds no state and is
// safe for concurrent use with distinct Configs.
type Generator struct{}

// NewGenerator creates a Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate builds the token string for cfg using a zero Generator.
func Generate(cfg *Config) (string, error) {
	var g Generator
	return g.Generate(cfg)
}

// Generate builds and signs the token string for cfg.
//
// Fragment errors (ErrMissingACL, ErrMissingExpiration,
// ErrInvalidExpirationOrder) are returned unchanged; hashing failures are
// returned as ErrSigningFailed wrapping the cause.
func (g *Generator) Generate(cfg *Config) (string, error) {
	tok, err := g.Sign(cfg)
	if err != nil {
		return "", err
	}
	return tok.Value, nil
}

// Sign builds and signs the token for cfg and returns its parts.
func (g *Generator) Sign(cfg *Config) (*Token, error) {
	// The expiration is resolved once so that Body and Expiration agree
	// even when it is read from the clock.
	exp, err := cfg.Expiration()
	if err != nil {
		return nil, err
	}
	aclField, err := cfg.ACLField()
	if err != nil {
		return nil, err
	}

	// Field order is covered by the signature: ip, st, exp, acl, id, data.
	var b strings.Builder
	b.WriteString(cfg.IPField())
	b.WriteString(cfg.StartTimeField())
	b.WriteString(cfg.field("exp", strconv.FormatInt(exp, 10)))
	b.WriteString(aclField)
	b.WriteString(cfg.SessionIDField())
	b.WriteString(cfg.PayloadField())
	body := b.String()

	signed := strings.TrimSuffix(body, string(cfg.delimiter()))
	sig, err := sign(cfg.Algorithm, cfg.Key(), signed)
	if err != nil {
		return nil, ErrSigningFailed.WithCause(err)
	}

	value := body + "hmac=" + sig
	if !cfg.PreEscapeACL {
		value = EscapeURI(value)
	}

	return &Token{
		Value:      value,
		Body:       body,
		Signature:  sig,
		Expiration: exp,
		Algorithm:  cfg.Algorithm.String(),
	}, nil
}

// sign computes the lowercase hex HMAC of data keyed with the decoded key.
func sign(alg Algorithm, key, data string) (string, error) {
	if key == "" {
		return "", ErrInvalidKey.WithDetails("key is not set")
	}
	raw, err := DecodeHexKey(key)
	if err != nil {
		return "", err
	}
	mac, err := alg.newHMAC(raw)
	if err != nil {
		return "", err
	}
	mac.Write(asciiBytes(data))
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// asciiBytes encodes s as ASCII. Each non-ASCII UTF-16 code unit becomes
// '?', so runes outside the basic multilingual plane yield "??".
func asciiBytes(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		switch {
		case r < utf8.RuneSelf:
			out = append(out, byte(r))
		case r > 0xFFFF:
			out = append(out, '?', '?')
		default:
			out = append(out, '?')
		}
	}
	return out
}
