//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/swarm-toolkit/swarmgen/internal/templates"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	TemplatesDir string // template base with one directory per runtime
	OutputDir    string // generation output root
	SpecDir      string // where spec files are written
}

// setupTestEnv creates isolated temp directories and points HOME at a
// scratch directory so no user configuration leaks into the run.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		TemplatesDir: t.TempDir(),
		OutputDir:    filepath.Join(t.TempDir(), "build"),
		SpecDir:      t.TempDir(),
	}
	t.Setenv("HOME", t.TempDir())

	writeFile(t, filepath.Join(env.TemplatesDir, "python3.9", "handler.py"), "def handler(event, context):\n    return {}\n")
	writeFile(t, filepath.Join(env.TemplatesDir, "python3.9", "requirements.txt"), "boto3\n")
	writeFile(t, filepath.Join(env.TemplatesDir, "nodejs18.x", "index.mjs"), "export const handler = async () => ({});\n")
	writeFile(t, filepath.Join(env.TemplatesDir, "nodejs18.x", "lib", "util", "log.mjs"), "export const log = console.log;\n")

	return env
}

func (e *testEnv) source() *templates.Source {
	return templates.Dir(e.TemplatesDir)
}

func (e *testEnv) writeSpec(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(e.SpecDir, "swarm.yaml")
	writeFile(t, path, content)
	return path
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating parent dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

func assertFileContent(t *testing.T, path, want string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if string(data) != want {
		t.Errorf("%s = %q, want %q", path, data, want)
	}
}
