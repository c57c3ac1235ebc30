package java

import (
	"runtime"
	"strings"
	"sync"
)

// Registry accumulates detected runtimes, deduplicated by canonical
// installation path. It is safe for concurrent use, so parallel walks of
// independent roots can merge into one accumulator.
//
// Duplicate policy: the first-seen entry stays. A later duplicate only fills
// in metadata the kept entry lacks, and replaces the version when its own is
// strictly more specific (more dotted components). Accumulating across
// multiple detection calls therefore never produces duplicate paths.
type Registry struct {
	mu     sync.Mutex
	byPath map[string]Runtime
	order  []string
}

// NewRegistry creates an empty runtime registry.
func NewRegistry() *Registry {
	return &Registry{byPath: make(map[string]Runtime)}
}

// Add merges rt into the registry and reports whether its path was new.
func (r *Registry) Add(rt Runtime) bool {
	key := pathKey(rt.Path)

	r.mu.Lock()
	defer r.mu.Unlock()

	if kept, ok := r.byPath[key]; ok {
		r.byPath[key] = mergeRuntime(kept, rt)
		return false
	}
	r.byPath[key] = rt
	r.order = append(r.order, key)
	return true
}

// Len returns the number of distinct installations seen so far.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}

// Runtimes returns a copy of the accumulated runtimes in insertion order.
func (r *Registry) Runtimes() []Runtime {
	r.mu.Lock()
	defer r.mu.Unlock()

	runtimes := make([]Runtime, 0, len(r.order))
	for _, key := range r.order {
		runtimes = append(runtimes, r.byPath[key])
	}
	return runtimes
}

// mergeRuntime folds a duplicate detection into the kept entry.
func mergeRuntime(kept, dup Runtime) Runtime {
	if moreSpecificVersion(dup.Version, kept.Version) {
		kept.Version = dup.Version
	}
	if kept.Vendor == "" {
		kept.Vendor = dup.Vendor
	}
	if kept.Arch == "" {
		kept.Arch = dup.Arch
	}
	return kept
}

// moreSpecificVersion reports whether a carries strictly more detail than b.
func moreSpecificVersion(a, b string) bool {
	if a == "" {
		return false
	}
	if b == "" {
		return true
	}
	return strings.Count(a, ".") > strings.Count(b, ".")
}

// pathKey normalizes a path for identity comparison. Windows filesystems are
// case-insensitive, so keys are folded there.
func pathKey(path string) string {
	if runtime.GOOS == "windows" {
		return strings.ToLower(path)
	}
	return path
}
