// Package logger provides structured logging for edgeauth-token.
//
// This package wraps log/slog:
//
//   - logger.go: Logger interface, handler setup and dynamic level
//   - context.go: Context propagation of the logger and run ID
//   - redact.go: Masking of keys and token signatures
//
// Features:
//
//   - JSON and text output formats
//   - Log level filtering
//   - Automatic masking of secrets and hmac digests
//
// The token library itself never logs; only the CLI does.
package logger
