// Package buildinfo provides build information for edgeauth-token.
//
// Values are injected at build time via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/edgeauth-go/internal/infra/buildinfo.Version=v1.0.0 \
//	    -X github.com/yndnr/edgeauth-go/internal/infra/buildinfo.Commit=abc123"
//
// When Commit or BuildTime are not injected they are taken from the VCS
// stamp the Go toolchain embeds in the binary, if present.
package buildinfo
