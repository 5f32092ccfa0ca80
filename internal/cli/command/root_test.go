package command

import (
	"strings"
	"testing"

	"github.com/yndnr/edgeauth-go/pkg/edgeauth"
)

func TestApp(t *testing.T) {
	app := App()
	if app.Name != AppName {
		t.Errorf("Name = %q, want %q", app.Name, AppName)
	}
	if app.Usage == "" {
		t.Error("Usage should not be empty")
	}

	commandNames := make(map[string]bool)
	for _, cmd := range app.Commands {
		commandNames[cmd.Name] = true
	}
	for _, name := range []string{"generate", "batch", "inspect", "version"} {
		if !commandNames[name] {
			t.Errorf("missing command: %s", name)
		}
	}
}

func TestApp_GlobalFlags(t *testing.T) {
	flagNames := make(map[string]bool)
	for _, flag := range globalFlags() {
		for _, name := range flag.Names() {
			flagNames[name] = true
		}
	}

	for _, name := range []string{"config", "c", "output", "o", "log-level", "log-format", "verbose", "V"} {
		if !flagNames[name] {
			t.Errorf("missing global flag: %s", name)
		}
	}
}

func TestApp_ProfileFile(t *testing.T) {
	profile := writeFile(t, "profile.yaml", `
token:
  key: abc123
  algorithm: sha1
output: json
`)

	stdout, _, err := runCLI(t, edgeauth.FixedClock(1000),
		"--config", profile,
		"generate", "--acl", "/a/*", "--start-time", "now", "--window", "60",
	)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := `"token": "st=1000~exp=1060~acl=/a/*~hmac=4a8c55345b10793ca377e1bd79bc9f5102b130d7"`
	if !strings.Contains(stdout, want) {
		t.Errorf("stdout = %s, want %s", stdout, want)
	}
	if !strings.Contains(stdout, `"algorithm": "sha1"`) {
		t.Errorf("stdout = %s, want sha1 algorithm", stdout)
	}
}

func TestApp_MissingProfileFile(t *testing.T) {
	_, _, err := runCLI(t, edgeauth.SystemClock, "--config", "/nonexistent/profile.yaml", "version")
	if err == nil {
		t.Error("Run() should fail for a missing --config file")
	}
}

func TestApp_InvalidProfile(t *testing.T) {
	profile := writeFile(t, "profile.yaml", "token:\n  algorithm: sha512\n")

	_, _, err := runCLI(t, edgeauth.SystemClock, "--config", profile, "version")
	if err == nil || !strings.Contains(err.Error(), "token.algorithm") {
		t.Errorf("Run() error = %v, want profile validation error", err)
	}
}

func TestApp_InvalidOutputFlag(t *testing.T) {
	_, _, err := runCLI(t, edgeauth.SystemClock, "--output", "xml", "version")
	if err == nil {
		t.Error("Run() should reject an unknown output format")
	}
}

func TestApp_VerboseLogsToStderr(t *testing.T) {
	stdout, stderr, err := runCLI(t, edgeauth.FixedClock(1000),
		"--verbose", "--log-format", "json",
		"generate", "--key", testKey, "--acl", "/*", "--window", "300",
	)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if strings.Contains(stdout, "level") {
		t.Errorf("logs leaked to stdout: %s", stdout)
	}
	if !strings.Contains(stderr, `"msg":"token issued"`) {
		t.Errorf("stderr = %s, want token issued entry", stderr)
	}
	if !strings.Contains(stderr, `"run_id":`) {
		t.Errorf("stderr = %s, want run_id", stderr)
	}
	if !strings.Contains(stderr, `"version":"dev"`) {
		t.Errorf("stderr = %s, want version", stderr)
	}
	// The full digest must never be logged.
	digest := "c1ccc348354b4675e54ff568cc751feed1b86ce77a0c4ebb7db0459503d6cf0f"
	if strings.Contains(stderr, digest) {
		t.Errorf("stderr contains the full digest: %s", stderr)
	}
	if !strings.Contains(stdout, digest) {
		t.Errorf("stdout = %s, want token with digest", stdout)
	}
}

func TestApp_QuietByDefault(t *testing.T) {
	_, stderr, err := runCLI(t, edgeauth.FixedClock(1000),
		"generate", "--key", testKey, "--acl", "/*", "--window", "300",
	)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want no logs at the default level", stderr)
	}
}
