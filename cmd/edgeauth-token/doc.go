// Package main provides the entry point for edgeauth-token.
//
// edgeauth-token generates Akamai Edge Authorization tokens:
//
//   - generate: sign a single token
//   - batch: sign every request in a YAML file
//   - inspect: split a token into its fields
//   - version: show build information
//
// Usage:
//
//	edgeauth-token generate --key "$EDGEAUTH_KEY" --acl '/videos/*' --window 300
//	edgeauth-token -o json batch requests.yaml
//	edgeauth-token inspect 'exp=1700000300~acl=/videos/*~hmac=...'
//
// Defaults are read from ~/.edgeauth/config.yaml and EDGEAUTH_*
// environment variables.
package main
