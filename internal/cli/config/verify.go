package config

import (
	"fmt"
	"strings"

	"github.com/yndnr/edgeauth-go/pkg/edgeauth"
)

// Output formats understood by the CLI.
var validOutputs = map[string]bool{
	"text":  true,
	"table": true,
	"json":  true,
	"yaml":  true,
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Verify checks the profile for values that can never produce a token.
// All problems are reported together.
func Verify(p *Profile) error {
	var errs []string

	if _, err := edgeauth.ParseAlgorithm(p.Token.Algorithm); err != nil {
		errs = append(errs, fmt.Sprintf("token.algorithm: unsupported %q", p.Token.Algorithm))
	}
	if _, err := ParseDelimiter(p.Token.FieldDelimiter); err != nil {
		errs = append(errs, fmt.Sprintf("token.field_delimiter: %q is not a single character", p.Token.FieldDelimiter))
	}
	if p.Token.Window < 0 {
		errs = append(errs, "token.window: must be non-negative")
	}
	if p.Token.Key != "" {
		if err := edgeauth.NewConfig().SetKey(p.Token.Key); err != nil {
			errs = append(errs, "token.key: must be an even-length alphanumeric string")
		}
	}
	if !validOutputs[strings.ToLower(p.Output)] {
		errs = append(errs, fmt.Sprintf("output: unsupported format %q", p.Output))
	}
	if !validLogLevels[strings.ToLower(p.Log.Level)] {
		errs = append(errs, fmt.Sprintf("log.level: unsupported level %q", p.Log.Level))
	}
	if f := strings.ToLower(p.Log.Format); f != "text" && f != "json" {
		errs = append(errs, fmt.Sprintf("log.format: unsupported format %q", p.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid profile:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// Sanitize returns a copy of the profile safe to log.
func Sanitize(p *Profile) *Profile {
	out := *p
	if out.Token.Key != "" {
		out.Token.Key = "***REDACTED***"
	}
	return &out
}
