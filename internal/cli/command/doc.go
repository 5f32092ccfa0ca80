// Package command provides the CLI commands of edgeauth-token.
//
// This package defines all commands using urfave/cli/v2:
//
//   - root.go: Application, global flags, profile and logger setup
//   - generate.go: Single token generation
//   - batch.go: Token generation from a YAML request file
//   - inspect.go: Splitting an existing token into its fields
//   - version.go: Build information
//
// Commands follow a consistent pattern of merging flags into the profile,
// calling pkg/edgeauth, and rendering the result with internal/cli/output.
package command
