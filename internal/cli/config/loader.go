package config

import (
	"os"
	"path/filepath"

	"github.com/yndnr/edgeauth-go/internal/infra/confloader"
)

// EnvPrefix is the environment variable prefix for profile keys.
// Example: EDGEAUTH_TOKEN_WINDOW=600 -> token.window
const EnvPrefix = "EDGEAUTH_"

// DefaultConfigPath returns the default profile path.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".edgeauth", "config.yaml")
}

// Load builds a profile from defaults, the profile file, EDGEAUTH_*
// variables and overrides, in increasing priority.
//
// An empty path selects DefaultConfigPath, which may be absent. An
// explicit path must exist. Override keys use dotted paths such as
// "token.algorithm".
func Load(path string, overrides map[string]any) (*Profile, error) {
	opts := []confloader.Option{
		confloader.WithEnvPrefix(EnvPrefix),
		confloader.WithOverrides(overrides),
	}
	if path != "" {
		opts = append(opts, confloader.WithConfigFile(path))
	} else if def := DefaultConfigPath(); def != "" {
		opts = append(opts, confloader.WithOptionalConfigFile(def))
	}

	p := Default()
	if err := confloader.NewLoader(opts...).Load(p); err != nil {
		return nil, err
	}
	return p, nil
}
