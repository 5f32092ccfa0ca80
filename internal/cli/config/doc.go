// Package config provides the CLI profile for edgeauth-token.
//
// A profile holds the defaults every generated token starts from:
//
//   - profile.go: Profile struct, defaults and conversion to edgeauth.Config
//   - loader.go: Loading from ~/.edgeauth/config.yaml, EDGEAUTH_* and flags
//   - verify.go: Validation and sanitizing for logs
//
// Sources are merged with the priority flags > env > file > defaults.
package config
