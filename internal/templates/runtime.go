package templates

import (
	"sort"
	"strings"
	"unicode"

	"github.com/Masterminds/semver/v3"
)

// Runtime describes one template directory.
type Runtime struct {
	Name    string          // directory name, e.g. "python3.12"
	Family  string          // e.g. "python"; the full name when unversioned
	Version *semver.Version // nil when the name carries no parseable version
	Files   int             // regular files in the tree
}

// ParseRuntime splits a runtime identifier into its family and version.
// "python3.12" → ("python", 3.12.0); "nodejs18.x" → ("nodejs", 18.0.0).
// Identifiers without a trailing version, such as "provided.al2", return the
// lowercased name and a nil version.
func ParseRuntime(name string) (string, *semver.Version) {
	name = strings.ToLower(name)
	i := strings.IndexFunc(name, unicode.IsDigit)
	if i <= 0 {
		return name, nil
	}

	family, rest := name[:i], name[i:]
	if strings.IndexFunc(family, func(r rune) bool { return !unicode.IsLetter(r) }) >= 0 {
		return name, nil
	}
	rest = strings.TrimSuffix(rest, ".x")

	v, err := semver.NewVersion(rest)
	if err != nil {
		return name, nil
	}
	return family, v
}

// sortRuntimes orders by family, then version (unversioned first), then name.
func sortRuntimes(rs []Runtime) {
	sort.SliceStable(rs, func(i, j int) bool {
		a, b := rs[i], rs[j]
		if a.Family != b.Family {
			return a.Family < b.Family
		}
		switch {
		case a.Version == nil && b.Version != nil:
			return true
		case a.Version != nil && b.Version == nil:
			return false
		case a.Version != nil && b.Version != nil:
			if c := a.Version.Compare(b.Version); c != 0 {
				return c < 0
			}
		}
		return a.Name < b.Name
	})
}
