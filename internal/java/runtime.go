package java

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Runtime represents one detected Java installation
type Runtime struct {
	Path    string `json:"path"`              // Canonical absolute installation directory (identity key)
	Version string `json:"version,omitempty"` // Best-effort version string, empty when unknown
	Vendor  string `json:"vendor,omitempty"`  // Implementor from the release descriptor, empty when unknown
	Arch    string `json:"arch,omitempty"`    // Normalized CPU architecture tag, empty when unknown
}

// Equal reports whether both runtimes refer to the same installation.
// Identity is the canonical path, nothing else.
func (r Runtime) Equal(other Runtime) bool {
	return pathKey(r.Path) == pathKey(other.Path)
}

// String renders the runtime for debug output, e.g.
// "17.0.2 (Eclipse Adoptium, x86_64) at /usr/lib/jvm/jdk-17.0.2".
func (r Runtime) String() string {
	version := r.Version
	if version == "" {
		version = "unknown"
	}

	var tags []string
	if r.Vendor != "" {
		tags = append(tags, r.Vendor)
	}
	if r.Arch != "" {
		tags = append(tags, r.Arch)
	}

	if len(tags) == 0 {
		return fmt.Sprintf("%s at %s", version, r.Path)
	}
	return fmt.Sprintf("%s (%s) at %s", version, strings.Join(tags, ", "), r.Path)
}

// SemVer returns a best-effort semantic version for ordering, or nil when the
// version string is empty or unparseable. Legacy "1.x" versions map to their
// feature release (1.8.0_322 is Java 8).
func (r Runtime) SemVer() *semver.Version {
	v := r.Version
	if v == "" {
		return nil
	}
	// Drop update/build suffixes: 1.8.0_322 -> 1.8.0, 17.0.2+8 -> 17.0.2
	if i := strings.IndexAny(v, "_+"); i >= 0 {
		v = v[:i]
	}
	if strings.HasPrefix(v, "1.") {
		v = strings.TrimPrefix(v, "1.")
	}
	sv, err := semver.NewVersion(v)
	if err != nil {
		return nil
	}
	return sv
}

// Major returns the feature release number (8, 11, 17, ...), or 0 when the
// version is unknown.
func (r Runtime) Major() int {
	sv := r.SemVer()
	if sv == nil {
		return 0
	}
	return int(sv.Major())
}

// SortRuntimes orders runtimes newest-first. Runtimes without a parseable
// version sort last; ties break on path for stable output.
func SortRuntimes(runtimes []Runtime) {
	sort.SliceStable(runtimes, func(i, j int) bool {
		vi, vj := runtimes[i].SemVer(), runtimes[j].SemVer()
		switch {
		case vi == nil && vj == nil:
			return runtimes[i].Path < runtimes[j].Path
		case vi == nil:
			return false
		case vj == nil:
			return true
		}
		if c := vi.Compare(vj); c != 0 {
			return c > 0
		}
		return runtimes[i].Path < runtimes[j].Path
	})
}
