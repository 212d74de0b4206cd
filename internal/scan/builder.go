package scan

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// entry is one stat-resolved filesystem object from a walk.
type entry struct {
	path    string
	size    int64
	isDir   bool
	modTime time.Time
}

// Scan enumerates every descendant of path and returns the assembled
// tree. Per-entry failures are logged, counted on the root, and never
// abort the scan. Aggregate sizes are deterministic regardless of the
// order the parallel walk yields entries in.
func Scan(path string, cfg Config) *Node {
	root := &Node{
		Name:  displayName(path),
		Path:  path,
		IsDir: true,
	}
	if info, err := os.Stat(path); err == nil {
		root.ModTime = info.ModTime()
	}

	var rootVol string
	var rootVolOK bool
	if cfg.OneFilesystem {
		rootVol, rootVolOK = volumeIDFn(path)
	}

	var entries []entry
	errorCount := 0
	for _, res := range walk(path, cfg.FollowLinks) {
		if res.err != nil {
			errorCount++
			slog.Warn("could not enumerate", "path", res.path, "error", res.err)
			continue
		}
		if res.path == path {
			continue
		}
		if cfg.OneFilesystem {
			vol, ok := volumeIDFn(res.path)
			if crossesVolume(rootVol, rootVolOK, vol, ok) {
				continue
			}
		}
		info, err := statEntry(res.path, cfg.FollowLinks)
		if err != nil {
			errorCount++
			slog.Warn("could not access", "path", res.path, "error", err)
			continue
		}
		e := entry{path: res.path, isDir: info.IsDir(), modTime: info.ModTime()}
		if info.Mode().IsRegular() {
			e.size = info.Size()
		}
		entries = append(entries, e)
	}

	root.ErrorCount = errorCount
	return assemble(root, entries)
}

// volumeIDFn is the volume lookup used by Scan; tests swap it out.
var volumeIDFn = volumeID

// crossesVolume reports whether an entry lies on a different volume
// than the scan root. An entry is skipped only when both identities
// are known and differ.
func crossesVolume(rootVol string, rootOK bool, entryVol string, entryOK bool) bool {
	return rootOK && entryOK && entryVol != rootVol
}

func statEntry(path string, follow bool) (os.FileInfo, error) {
	if follow {
		return os.Stat(path)
	}
	return os.Lstat(path)
}

// assemble links an unordered entry batch into the tree under root.
//
// Entries are ordered by ascending path depth first, which guarantees a
// parent node already exists in the lookup table when any of its
// children is created. The forward pass creates nodes and adds file
// sizes to their parent; the reverse pass, deepest first, folds each
// directory's finalized size into its parent.
func assemble(root *Node, entries []entry) *Node {
	nodes := map[string]*Node{root.Path: root}

	sort.SliceStable(entries, func(i, j int) bool {
		return pathDepth(entries[i].path) < pathDepth(entries[j].path)
	})

	for _, e := range entries {
		n := &Node{
			Name:    filepath.Base(e.path),
			Path:    e.path,
			Size:    e.size,
			IsDir:   e.isDir,
			ModTime: e.modTime,
		}
		nodes[e.path] = n
		parent, ok := nodes[filepath.Dir(e.path)]
		if !ok {
			continue
		}
		parent.Children = append(parent.Children, n)
		if !e.isDir {
			parent.Size += e.size
		}
	}

	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if !e.isDir {
			continue
		}
		if parent, ok := nodes[filepath.Dir(e.path)]; ok {
			parent.Size += nodes[e.path].Size
		}
	}

	return root
}

// pathDepth counts separators; for clean absolute paths a parent is
// always strictly shallower than its children.
func pathDepth(path string) int {
	return strings.Count(path, string(filepath.Separator))
}

// displayName is the final path component, or "" for a path without
// one, such as a filesystem root.
func displayName(path string) string {
	base := filepath.Base(path)
	if base == string(filepath.Separator) || base == "." {
		return ""
	}
	return base
}
