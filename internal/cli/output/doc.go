// Package output provides output formatting for edgeauth-token.
//
// This package renders command results:
//
//   - formatter.go: Formatter interface and factory
//   - text.go: Plain output, one value per line, for shell pipelines
//   - table.go: Column-aligned tables for structs and slices
//   - json.go: JSON output
//   - yaml.go: YAML output
//
// The text format prints only the token string so that
// TOKEN=$(edgeauth-token generate ...) works without post-processing.
package output
