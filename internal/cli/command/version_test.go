package command

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/yndnr/edgeauth-go/internal/infra/buildinfo"
	"github.com/yndnr/edgeauth-go/pkg/edgeauth"
)

func TestVersion(t *testing.T) {
	stdout, _, err := runCLI(t, edgeauth.SystemClock, "version")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := strings.TrimSpace(stdout); got != buildinfo.String() {
		t.Errorf("version = %q, want %q", got, buildinfo.String())
	}
}

func TestVersion_JSON(t *testing.T) {
	stdout, _, err := runCLI(t, edgeauth.SystemClock, "-o", "json", "version")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var info buildinfo.Info
	if err := json.Unmarshal([]byte(stdout), &info); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout)
	}
	if info.Version != buildinfo.Version {
		t.Errorf("Version = %q, want %q", info.Version, buildinfo.Version)
	}
}
