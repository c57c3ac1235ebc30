package java

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"jrt/internal/config"
)

// Home-style environment variables consulted by the environment probe, in
// order. Each value, when set and non-empty, is one candidate installation
// root. PATH is handled separately.
var homeEnvVars = []string{"JAVA_HOME", "JAVA_ROOT", "JDK_HOME", "JRE_HOME"}

// Detector finds Java installations on the system. Detection is best-effort
// and read-only: missing variables, absent roots and unreadable directories
// contribute nothing instead of failing.
type Detector struct {
	standardPaths []string
	logger        *log.Logger
}

// NewDetector creates a Java detector preloaded with the conventional
// installation locations for the current platform.
func NewDetector() *Detector {
	return &Detector{
		standardPaths: DefaultSearchPaths(),
		logger:        log.Default(),
	}
}

// SetLogger replaces the detector's logger. Detection progress is reported
// at debug level only.
func (d *Detector) SetLogger(logger *log.Logger) {
	if logger != nil {
		d.logger = logger
	}
}

// candidate is a directory suspected, but not yet confirmed, to be an
// installation root. It never leaves this package; callers only see the
// classified Runtime.
type candidate struct {
	path   string
	source string // environment variable name, or the walked root
}

// DetectInEnvironments finds Java runtimes referenced by the process
// environment: JAVA_HOME-style variables and PATH.
func (d *Detector) DetectInEnvironments() []Runtime {
	reg := NewRegistry()
	d.GatherInEnvironments(reg)
	return reg.Runtimes()
}

// GatherInEnvironments merges environment-referenced runtimes into reg and
// returns the number of runtimes that were new to it.
func (d *Detector) GatherInEnvironments(reg *Registry) int {
	added := 0
	for _, c := range d.environmentCandidates() {
		rt, ok := d.Classify(c.path)
		if !ok {
			d.logger.Debug("candidate rejected", "path", c.path, "source", c.source)
			continue
		}
		if reg.Add(rt) {
			added++
		}
	}
	return added
}

// environmentCandidates snapshots the live process environment into candidate
// directories. Home-style variables contribute their value directly. A PATH
// entry contributes its parent when the entry is a bin directory holding the
// launcher; a launcher outside a bin directory has no derivable root and is
// ignored.
func (d *Detector) environmentCandidates() []candidate {
	var candidates []candidate
	for _, name := range homeEnvVars {
		if value := os.Getenv(name); value != "" {
			candidates = append(candidates, candidate{path: value, source: name})
		}
	}
	for _, entry := range filepath.SplitList(os.Getenv("PATH")) {
		if entry == "" || !strings.EqualFold(filepath.Base(entry), "bin") {
			continue
		}
		if !isExecutableFile(filepath.Join(entry, javaExecutableName())) {
			continue
		}
		candidates = append(candidates, candidate{path: filepath.Dir(entry), source: "PATH"})
	}
	return candidates
}

// DetectInPaths scans the given roots for Java runtimes, descending at most
// maxDepth directory levels below each root (the root itself is depth 0).
// Roots that do not exist are skipped. Panics on negative maxDepth: that is
// caller misuse, not environmental variance.
func (d *Detector) DetectInPaths(roots []string, maxDepth int) []Runtime {
	reg := NewRegistry()
	d.GatherInPaths(reg, roots, maxDepth)
	return reg.Runtimes()
}

// GatherInPaths is the accumulating variant of DetectInPaths: it merges into
// a caller-supplied registry and returns the number of new runtimes. Roots
// are independent, so they are walked concurrently; the registry serializes
// the merge.
func (d *Detector) GatherInPaths(reg *Registry, roots []string, maxDepth int) int {
	if maxDepth < 0 {
		panic("java: negative maxDepth")
	}
	if len(roots) == 1 {
		return d.gatherRoot(reg, roots[0], maxDepth)
	}

	var wg sync.WaitGroup
	var added atomic.Int64
	for _, root := range roots {
		wg.Add(1)
		go func() {
			defer wg.Done()
			added.Add(int64(d.gatherRoot(reg, root, maxDepth)))
		}()
	}
	wg.Wait()
	return int(added.Load())
}

// FindAll finds all Java installations: environment-referenced, platform
// standard locations, plus search paths and pinned installation paths from
// the user's configuration. Results come back newest-first.
func (d *Detector) FindAll() ([]Runtime, error) {
	reg := NewRegistry()
	d.GatherInEnvironments(reg)

	depth := defaultScanDepth()
	roots := append([]string(nil), d.standardPaths...)

	cfg, err := config.Load()
	if err != nil {
		d.logger.Debug("config unavailable, using defaults", "err", err)
	} else {
		if cfg.ScanDepth > 0 {
			depth = cfg.ScanDepth
		}
		roots = append(roots, cfg.SearchPaths...)
	}

	d.GatherInPaths(reg, roots, depth)

	// Pinned installation paths are classified directly, no walk needed.
	if cfg != nil {
		for _, path := range cfg.CustomPaths {
			if rt, ok := d.Classify(path); ok {
				reg.Add(rt)
			}
		}
	}

	runtimes := reg.Runtimes()
	SortRuntimes(runtimes)
	return runtimes, nil
}

// IsValidSearchPath checks if a path is a directory worth scanning.
func (d *Detector) IsValidSearchPath(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// DefaultSearchPaths lists the conventional installation locations for the
// current platform.
func DefaultSearchPaths() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{
			`C:\Program Files\Java`,
			`C:\Program Files (x86)\Java`,
			`C:\Program Files\Eclipse Adoptium`,
			`C:\Program Files\Eclipse Foundation`,
			`C:\Program Files\Zulu`,
			`C:\Program Files\Amazon Corretto`,
			`C:\Program Files\Microsoft`,
		}
	case "darwin":
		return []string{
			"/Library/Java/JavaVirtualMachines",
			"/opt/homebrew/opt",
			"/usr/local/opt",
		}
	default:
		return []string{
			"/usr/lib/jvm",
			"/usr/java",
			"/opt/java",
			"/opt",
		}
	}
}

// defaultScanDepth bounds the walk under each search root. macOS bundles
// nest the actual home under <name>.jdk/Contents/Home, so it needs one more
// level.
func defaultScanDepth() int {
	if runtime.GOOS == "darwin" {
		return 3
	}
	return 2
}
