package java

import (
	"io/fs"
	"os"
	"path/filepath"
)

// walkItem is one pending directory in the traversal work list.
type walkItem struct {
	path  string
	depth int
}

// gatherRoot walks one search root with an explicit work list, bounded by
// maxDepth (root is depth 0), and merges every confirmed installation into
// reg. It returns the number of runtimes that were new to reg.
//
// Invariants the loop maintains:
//   - no directory deeper than maxDepth below the root is ever visited;
//   - a confirmed installation directory is not descended into, so an
//     installation can never be double-counted from its own subtree;
//   - each concrete directory (symlinks resolved) is visited at most once per
//     traversal, which terminates walks through self-referential links.
//
// A missing or unreadable root, and any unreadable subdirectory, is skipped
// without error; sibling branches keep going.
func (d *Detector) gatherRoot(reg *Registry, root string, maxDepth int) int {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		d.logger.Debug("skipping search root", "root", root, "err", err)
		return 0
	}

	added := 0
	visited := make(map[string]struct{})
	stack := []walkItem{{path: root, depth: 0}}

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		canonical, err := filepath.EvalSymlinks(item.path)
		if err != nil {
			continue
		}
		key := pathKey(canonical)
		if _, seen := visited[key]; seen {
			continue
		}
		visited[key] = struct{}{}

		if rt, ok := d.Classify(item.path); ok {
			if reg.Add(rt) {
				added++
			}
			continue
		}

		if item.depth >= maxDepth {
			continue
		}
		entries, err := os.ReadDir(item.path)
		if err != nil {
			d.logger.Debug("unreadable directory", "dir", item.path, "err", err)
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || entry.Type()&fs.ModeSymlink != 0 {
				stack = append(stack, walkItem{
					path:  filepath.Join(item.path, entry.Name()),
					depth: item.depth + 1,
				})
			}
		}
	}
	return added
}
