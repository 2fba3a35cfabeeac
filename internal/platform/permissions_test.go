package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestModeFor(t *testing.T) {
	tests := []struct {
		src  os.FileMode
		want os.FileMode
	}{
		{0644, FileMode},
		{0600, FileMode},
		{0755, ExecutableMode},
		{0700, ExecutableMode},
		{0654, ExecutableMode},
	}
	for _, tt := range tests {
		if got := ModeFor(tt.src); got != tt.want {
			t.Errorf("ModeFor(%o) = %o, want %o", tt.src, got, tt.want)
		}
	}
}

func TestChmod(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "bootstrap")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := Chmod(path, ExecutableMode); err != nil {
		t.Fatalf("Chmod failed: %v", err)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != ExecutableMode {
			t.Errorf("permissions = %o, want %o", perm, ExecutableMode)
		}
	}
}
