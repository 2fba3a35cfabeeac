package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// setupEnv isolates HOME and configuration so tests never read a real
// ~/.swarmgen/config.yaml or SWARMGEN_* variables.
func setupEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SWARMGEN_TEMPLATES_DIR", "")
	t.Setenv("SWARMGEN_DEFAULT_RUNTIME", "")
	viper.Reset()
	t.Cleanup(viper.Reset)
}

// executeCommand runs the root command with args and returns its combined output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := execute(args)
	return buf.String(), err
}

// resetFlags restores every flag in the tree to its default, since the
// command tree is package-level state shared across tests.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// writeFiles creates files under root from a path → content map.
func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("creating parent of %s: %v", path, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("writing %s: %v", path, err)
		}
	}
}

// writeSpec writes a spec document and returns its path.
func writeSpec(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "swarm.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing spec: %v", err)
	}
	return path
}

// listTree returns the slash-separated paths of every file under dir.
func listTree(t *testing.T, dir string) map[string]string {
	t.Helper()
	files := make(map[string]string)
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		t.Fatalf("walking %s: %v", dir, err)
	}
	return files
}

// pythonTemplates creates a template base with python3.9 and nodejs18.x.
func pythonTemplates(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	writeFiles(t, base, map[string]string{
		"python3.9/handler.py":       "def handler(event, context):\n    return {}\n",
		"python3.9/requirements.txt": "boto3\n",
		"nodejs18.x/index.mjs":       "export const handler = async () => ({});\n",
		"nested/a/b/c.txt":           "deep\n",
	})
	return base
}
