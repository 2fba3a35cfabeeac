package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Source is a template base: a filesystem whose top-level directories are
// runtime template trees.
type Source struct {
	fsys fs.FS
	name string
}

// New wraps an arbitrary filesystem. name is used in messages.
func New(fsys fs.FS, name string) *Source {
	return &Source{fsys: fsys, name: name}
}

// Dir returns a Source rooted at a directory on disk.
func Dir(path string) *Source {
	return New(os.DirFS(path), path)
}

// Builtin returns the templates compiled into the binary.
func Builtin() *Source {
	sub, err := fs.Sub(builtinFS, builtinRoot)
	if err != nil {
		// builtinRoot is a fixed, valid path.
		panic(err)
	}
	return New(sub, "built-in")
}

// Name describes where the templates come from.
func (s *Source) Name() string { return s.name }

// Lookup returns the template tree for runtime. Matching is on the lowercased
// runtime name, which must be a single path element; anything else, or a
// runtime with no directory, reports false.
func (s *Source) Lookup(runtime string) (fs.FS, bool) {
	key := strings.ToLower(runtime)
	if !validName(key) {
		return nil, false
	}

	info, err := fs.Stat(s.fsys, key)
	if err != nil || !info.IsDir() {
		return nil, false
	}

	sub, err := fs.Sub(s.fsys, key)
	if err != nil {
		return nil, false
	}
	return sub, true
}

// Runtimes lists the available runtime directories, sorted by family and version.
func (s *Source) Runtimes() ([]Runtime, error) {
	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("template directory %s does not exist: %w", s.name, err)
		}
		return nil, fmt.Errorf("reading template directory %s: %w", s.name, err)
	}

	var runtimes []Runtime
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		family, version := ParseRuntime(e.Name())
		n, err := countFiles(s.fsys, e.Name())
		if err != nil {
			return nil, fmt.Errorf("scanning template %s: %w", e.Name(), err)
		}
		runtimes = append(runtimes, Runtime{
			Name:    e.Name(),
			Family:  family,
			Version: version,
			Files:   n,
		})
	}

	sortRuntimes(runtimes)
	return runtimes, nil
}

// Suggest returns the available runtimes in the same family as runtime,
// excluding runtime itself. It returns nil when the base cannot be read.
func (s *Source) Suggest(runtime string) []string {
	family, _ := ParseRuntime(runtime)
	all, err := s.Runtimes()
	if err != nil {
		return nil
	}

	var out []string
	for _, r := range all {
		if r.Family == family && r.Name != strings.ToLower(runtime) {
			out = append(out, r.Name)
		}
	}
	return out
}

func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return false
	}
	return fs.ValidPath(name)
}

func countFiles(fsys fs.FS, root string) (int, error) {
	n := 0
	err := fs.WalkDir(fsys, root, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			n++
		}
		return nil
	})
	return n, err
}
