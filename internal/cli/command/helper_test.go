package command

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/yndnr/edgeauth-go/pkg/edgeauth"
)

const testKey = "abc123"

// runCLI runs the application with args against an empty HOME and
// returns what it wrote to stdout and stderr.
func runCLI(t *testing.T, clock edgeauth.Clock, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	app := newApp(clock)
	var stdout, stderr bytes.Buffer
	app.Writer = &stdout
	app.ErrWriter = &stderr

	err := app.Run(append([]string{AppName}, args...))
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}
