package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/swarm-toolkit/swarmgen/internal/spec"
)

func TestRuntimesTable(t *testing.T) {
	setupEnv(t)
	tmpl := t.TempDir()
	writeFiles(t, tmpl, map[string]string{
		"python3.12/handler.py": "x",
		"python3.9/handler.py":  "x",
		"python3.9/req.txt":     "x",
		"nodejs18.x/index.mjs":  "x",
	})

	output, err := executeCommand(t, "runtimes", "--templates", tmpl)
	if err != nil {
		t.Fatalf("runtimes: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got:\n%s", output)
	}
	order := []string{"nodejs18.x", "python3.9", "python3.12"}
	for i, name := range order {
		if !strings.HasPrefix(lines[i+1], name) {
			t.Errorf("row %d = %q, want prefix %q", i+1, lines[i+1], name)
		}
	}
}

func TestRuntimesJSONBuiltin(t *testing.T) {
	setupEnv(t)

	output, err := executeCommand(t, "runtimes", "--json")
	if err != nil {
		t.Fatalf("runtimes: %v", err)
	}

	var entries []runtimeEntry
	if err := json.Unmarshal([]byte(output), &entries); err != nil {
		t.Fatalf("parsing JSON output: %v\n%s", err, output)
	}
	byName := make(map[string]runtimeEntry)
	for _, e := range entries {
		byName[e.Name] = e
	}

	if e, ok := byName[spec.DefaultRuntime]; !ok {
		t.Errorf("built-in templates should include %s, got %+v", spec.DefaultRuntime, entries)
	} else if e.Family != "nodejs" || e.Files == 0 {
		t.Errorf("unexpected entry %+v", e)
	}

	if e, ok := byName["rust"]; !ok {
		t.Errorf("built-in templates should include rust, got %+v", entries)
	} else if e.Family != "rust" || e.Version != "" || e.Files != 3 {
		t.Errorf("unexpected rust entry %+v", e)
	}
}

func TestRuntimesMissingDir(t *testing.T) {
	setupEnv(t)
	if _, err := executeCommand(t, "runtimes", "--templates", filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing template directory")
	}
}

func TestValidateCommand(t *testing.T) {
	setupEnv(t)

	t.Run("valid", func(t *testing.T) {
		specPath := writeSpec(t, "services:\n  api:\n    runtime: python3.9\n  odd:\n    runtime: cobol85\n")
		output, err := executeCommand(t, "validate", "-i", specPath)
		if err != nil {
			t.Fatalf("validate: %v\n%s", err, output)
		}
		if !strings.Contains(output, "is valid (2 services)") {
			t.Errorf("unexpected output:\n%s", output)
		}
		if !strings.Contains(output, "no templates for runtime cobol85") {
			t.Errorf("expected missing-runtime warning:\n%s", output)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		specPath := writeSpec(t, "services:\n  api:\n    runtime: \"\"\n  worker: 42\n")
		output, err := executeCommand(t, "validate", "-i", specPath)
		if err == nil {
			t.Fatal("expected error for invalid spec")
		}
		if !strings.Contains(output, "/services/worker") {
			t.Errorf("expected issue for /services/worker:\n%s", output)
		}
	})

	t.Run("requires input", func(t *testing.T) {
		if _, err := executeCommand(t, "validate"); err == nil {
			t.Error("expected error without --input")
		}
	})
}

func TestInitCommand(t *testing.T) {
	setupEnv(t)
	path := filepath.Join(t.TempDir(), "swarm.yaml")

	if _, err := executeCommand(t, "init", path); err != nil {
		t.Fatalf("init: %v", err)
	}

	s, err := spec.Load(path)
	if err != nil {
		t.Fatalf("starter spec should load: %v", err)
	}
	if got := strings.Join(s.Names(), ","); got != "api,worker" {
		t.Errorf("starter services = %s, want api,worker", got)
	}

	data, _ := os.ReadFile(path)
	if strings.HasPrefix(string(data), "\n") || strings.HasPrefix(string(data), "\t") {
		t.Errorf("starter spec should be dedented:\n%s", data)
	}

	if _, err := executeCommand(t, "init", path); err == nil {
		t.Error("expected error when file exists without --force")
	}
	if _, err := executeCommand(t, "init", path, "--force"); err != nil {
		t.Errorf("init --force: %v", err)
	}
}

func TestConfigCommands(t *testing.T) {
	setupEnv(t)

	if _, err := executeCommand(t, "config", "set", "templates_dir", "/srv/templates"); err != nil {
		t.Fatalf("config set: %v", err)
	}
	output, err := executeCommand(t, "config", "get", "templates_dir")
	if err != nil {
		t.Fatalf("config get: %v", err)
	}
	if strings.TrimSpace(output) != "/srv/templates" {
		t.Errorf("config get = %q, want %q", strings.TrimSpace(output), "/srv/templates")
	}

	if _, err := executeCommand(t, "config", "set", "memory", "128"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestVersionCommand(t *testing.T) {
	setupEnv(t)
	buildVersion, buildCommit, buildDate = "1.2.3", "abc123", "2026-01-01"
	t.Cleanup(func() { buildVersion, buildCommit, buildDate = "", "", "" })

	output, err := executeCommand(t, "version", "--short")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if strings.TrimSpace(output) != "1.2.3" {
		t.Errorf("version --short = %q", output)
	}

	output, err = executeCommand(t, "version", "--json")
	if err != nil {
		t.Fatalf("version --json: %v", err)
	}
	var info map[string]string
	if err := json.Unmarshal([]byte(output), &info); err != nil {
		t.Fatalf("parsing version JSON: %v", err)
	}
	if info["commit"] != "abc123" {
		t.Errorf("commit = %q, want abc123", info["commit"])
	}
	if info["go"] != runtime.Version() {
		t.Errorf("go = %q, want %q", info["go"], runtime.Version())
	}

	output, err = executeCommand(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(output, "swarmgen 1.2.3 (commit abc123, built 2026-01-01, ") {
		t.Errorf("version = %q", output)
	}

	if _, err := executeCommand(t, "version", "--short", "--json"); err == nil {
		t.Error("expected error for --short with --json")
	}
}
