package platform

import (
	"io/fs"
	"os"
	"runtime"
)

// Permission bits applied to generated files.
const (
	FileMode       os.FileMode = 0644
	ExecutableMode os.FileMode = 0755
)

// ModeFor returns the mode a copy of a file with mode src should get:
// executable when any execute bit is set, regular otherwise.
func ModeFor(src fs.FileMode) os.FileMode {
	if src&0111 != 0 {
		return ExecutableMode
	}
	return FileMode
}

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}
