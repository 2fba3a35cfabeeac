package scaffold

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/swarm-toolkit/swarmgen/internal/logger"
	"github.com/swarm-toolkit/swarmgen/internal/platform"
	"github.com/swarm-toolkit/swarmgen/internal/templates"
)

// LambdasDir is the directory under the output root that holds one
// subdirectory per service.
const LambdasDir = "lambdas"

// ErrInvalidServiceName is returned by ValidateServiceName for names that are
// not a single safe path segment.
var ErrInvalidServiceName = errors.New("invalid service name")

// Reporter receives progress and warning lines.
type Reporter interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

// Result holds the outcome of materializing one service.
type Result struct {
	Service   string
	Runtime   string
	OutputDir string
	Files     []string // slash-separated, relative to OutputDir
	Skipped   bool
	Warnings  []string
}

// Materializer copies runtime template trees into service directories.
type Materializer struct {
	templates *templates.Source
	reporter  Reporter
}

// New returns a Materializer reading templates from src. A nil reporter
// discards progress output.
func New(src *templates.Source, r Reporter) *Materializer {
	if r == nil {
		r = discard{}
	}
	return &Materializer{templates: src, reporter: r}
}

// ServiceDir returns <outputRoot>/lambdas/<name>.
func ServiceDir(outputRoot, name string) string {
	return filepath.Join(outputRoot, LambdasDir, name)
}

// ValidateServiceName rejects names that would not stay a single directory
// under lambdas/: empty, ".", "..", or containing a path separator or NUL.
func ValidateServiceName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: name is empty", ErrInvalidServiceName)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidServiceName, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidServiceName, name)
	case strings.ContainsRune(name, 0):
		return fmt.Errorf("%w: %q contains a NUL byte", ErrInvalidServiceName, name)
	}
	return nil
}

// Plan resolves the template for a service and lists the files Materialize
// would create, without touching the filesystem.
func (m *Materializer) Plan(name, runtime, outputRoot string) (*Result, error) {
	result := &Result{
		Service:   name,
		Runtime:   runtime,
		OutputDir: ServiceDir(outputRoot, name),
	}

	if err := ValidateServiceName(name); err != nil {
		m.skip(result, "Skipping service: %v", err)
		return result, nil
	}

	tmpl, ok := m.templates.Lookup(runtime)
	if !ok {
		m.skipRuntime(result)
		return result, nil
	}

	files, err := listFiles(tmpl)
	if err != nil {
		return nil, fmt.Errorf("reading template for runtime %s: %w", runtime, err)
	}
	result.Files = files
	return result, nil
}

// Materialize creates <outputRoot>/lambdas/<name> and copies every regular
// file of the runtime's template tree into it. A missing template is reported
// as a warning and the service is skipped; it is not an error.
//
// Files are first written to a staging directory beside the destination. A
// failure while copying leaves the destination untouched; once every file is
// staged, each one is renamed into place, replacing any existing file.
func (m *Materializer) Materialize(name, runtime, outputRoot string) (*Result, error) {
	result := &Result{
		Service:   name,
		Runtime:   runtime,
		OutputDir: ServiceDir(outputRoot, name),
	}

	if err := ValidateServiceName(name); err != nil {
		m.skip(result, "Skipping service: %v", err)
		return result, nil
	}

	if err := os.MkdirAll(result.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating service directory %s: %w", result.OutputDir, err)
	}

	tmpl, ok := m.templates.Lookup(runtime)
	if !ok {
		m.skipRuntime(result)
		return result, nil
	}

	files, err := listFiles(tmpl)
	if err != nil {
		return nil, fmt.Errorf("reading template for runtime %s: %w", runtime, err)
	}

	logger.Debug("materializing service",
		"service", name,
		"runtime", runtime,
		"templates", m.templates.Name(),
		"files", len(files))

	if err := m.copyStaged(tmpl, files, result.OutputDir); err != nil {
		return nil, err
	}

	result.Files = files
	return result, nil
}

func (m *Materializer) skipRuntime(result *Result) {
	msg := fmt.Sprintf("No templates for runtime: %s.", result.Runtime)
	if alts := m.templates.Suggest(result.Runtime); len(alts) > 0 {
		msg += " Available: " + strings.Join(alts, ", ") + "."
	}
	m.skip(result, "%s Skipping.", msg)
}

func (m *Materializer) skip(result *Result, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	result.Skipped = true
	result.Warnings = append(result.Warnings, msg)
	m.reporter.Warnf("%s", msg)
}

// stagingPrefix names the temporary directories created beside service
// directories. It does not embed the service name, which may already be as
// long as the filesystem allows.
const stagingPrefix = ".staging-"

// copyStaged writes files into a staging directory next to dest, then
// renames each one into dest.
func (m *Materializer) copyStaged(tmpl fs.FS, files []string, dest string) error {
	stage, err := os.MkdirTemp(filepath.Dir(dest), stagingPrefix)
	if err != nil {
		return fmt.Errorf("creating staging directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(stage); err != nil {
			logger.Error("removing staging directory", "dir", stage, "error", err)
		}
	}()

	for _, rel := range files {
		if err := copyFile(tmpl, rel, filepath.Join(stage, filepath.FromSlash(rel))); err != nil {
			return fmt.Errorf("copying %s: %w", rel, err)
		}
	}

	for _, rel := range files {
		target := filepath.Join(dest, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", target, err)
		}
		if err := os.Rename(filepath.Join(stage, filepath.FromSlash(rel)), target); err != nil {
			return fmt.Errorf("moving %s into place: %w", target, err)
		}
		m.reporter.Infof("Created: %s", target)
	}

	return nil
}

// listFiles returns every regular file under fsys in lexical walk order.
// Directories only appear through the files they contain. A symlink to a
// regular file counts as that file and is copied with the target's content;
// symlinked directories, dangling links and other special files are skipped.
func listFiles(fsys fs.FS) ([]string, error) {
	var files []string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		switch {
		case d.Type().IsRegular():
			files = append(files, path)
		case d.Type()&fs.ModeSymlink != 0:
			info, err := fs.Stat(fsys, path)
			if err != nil {
				logger.Debug("skipping unreadable template link", "path", path, "error", err)
				return nil
			}
			if info.Mode().IsRegular() {
				files = append(files, path)
			}
		}
		return nil
	})
	return files, err
}

// copyFile copies src from fsys to dst verbatim, creating parent directories.
// Executable template files stay executable.
func copyFile(fsys fs.FS, src, dst string) error {
	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	mode := platform.ModeFor(info.Mode())

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return platform.Chmod(dst, mode)
}

type discard struct{}

func (discard) Infof(string, ...any) {}
func (discard) Warnf(string, ...any) {}
