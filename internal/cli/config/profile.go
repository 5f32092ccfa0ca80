package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/yndnr/edgeauth-go/pkg/edgeauth"
)

// Profile is the configuration for edgeauth-token.
type Profile struct {
	Token  TokenProfile `koanf:"token" yaml:"token"`
	Log    LogProfile   `koanf:"log" yaml:"log"`
	Output string       `koanf:"output" yaml:"output"` // text, table, json, yaml
}

// TokenProfile holds the token defaults.
type TokenProfile struct {
	Key            string `koanf:"key" yaml:"key"`
	Algorithm      string `koanf:"algorithm" yaml:"algorithm"`
	FieldDelimiter string `koanf:"field_delimiter" yaml:"field_delimiter"`
	Window         int64  `koanf:"window" yaml:"window"` // seconds
	EscapeEarly    bool   `koanf:"escape_early" yaml:"escape_early"`
}

// LogProfile holds the logging settings.
type LogProfile struct {
	Level  string `koanf:"level" yaml:"level"`
	Format string `koanf:"format" yaml:"format"`
}

// Default returns the default profile.
func Default() *Profile {
	return &Profile{
		Token: TokenProfile{
			Algorithm:      "sha256",
			FieldDelimiter: string(edgeauth.DefaultDelimiter),
		},
		Log: LogProfile{
			Level:  "warn",
			Format: "text",
		},
		Output: "text",
	}
}

// NewTokenConfig builds an edgeauth.Config from the token defaults.
// Request-specific fields (acl, ip, times) are left for the caller.
func (p *Profile) NewTokenConfig() (*edgeauth.Config, error) {
	cfg := edgeauth.NewConfig()

	alg, err := edgeauth.ParseAlgorithm(p.Token.Algorithm)
	if err != nil {
		return nil, err
	}
	cfg.Algorithm = alg

	delim, err := ParseDelimiter(p.Token.FieldDelimiter)
	if err != nil {
		return nil, err
	}
	cfg.Delimiter = delim
	cfg.PreEscapeACL = p.Token.EscapeEarly

	if p.Token.Key != "" {
		if err := cfg.SetKey(p.Token.Key); err != nil {
			return nil, fmt.Errorf("token.key: %w", err)
		}
	}
	if p.Token.Window != 0 {
		if err := cfg.SetWindow(p.Token.Window); err != nil {
			return nil, fmt.Errorf("token.window: %w", err)
		}
	}

	return cfg, nil
}

// ParseDelimiter accepts exactly one character; empty means the default.
func ParseDelimiter(s string) (rune, error) {
	if s == "" {
		return edgeauth.DefaultDelimiter, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, edgeauth.ErrInvalidDelimiter.WithDetails(fmt.Sprintf("%q", s))
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
