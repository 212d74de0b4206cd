package scan

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"
)

// walkResult is one enumerated descendant: a path, or the error that
// prevented enumerating part of the tree.
type walkResult struct {
	path string
	err  error
}

type walker struct {
	followLinks bool
	sem         *semaphore.Weighted
	wg          sync.WaitGroup

	mu      sync.Mutex
	results []walkResult
	visited map[string]bool
}

// walk enumerates every descendant of root and returns the complete,
// unordered batch. Directory read failures become per-entry error
// results; the walk itself always runs to completion.
func walk(root string, followLinks bool) []walkResult {
	w := &walker{
		followLinks: followLinks,
		sem:         semaphore.NewWeighted(int64(runtime.NumCPU())),
	}
	if followLinks {
		w.visited = map[string]bool{}
		w.markVisited(root)
	}
	w.walkDir(root)
	w.wg.Wait()
	return w.results
}

func (w *walker) emit(r walkResult) {
	w.mu.Lock()
	w.results = append(w.results, r)
	w.mu.Unlock()
}

func (w *walker) walkDir(dir string) {
	children, err := os.ReadDir(dir)
	if err != nil {
		w.emit(walkResult{path: dir, err: err})
		return
	}
	for _, child := range children {
		path := filepath.Join(dir, child.Name())
		w.emit(walkResult{path: path})
		if !w.shouldDescend(child, path) {
			continue
		}
		if w.visited != nil && !w.markVisited(path) {
			continue
		}
		// Recurse on a fresh goroutine when a worker slot is free,
		// inline otherwise. Inline fallback keeps the fan-out bounded
		// without risking a deadlock on the semaphore.
		if w.sem.TryAcquire(1) {
			w.wg.Add(1)
			go func(p string) {
				defer w.wg.Done()
				defer w.sem.Release(1)
				w.walkDir(p)
			}(path)
		} else {
			w.walkDir(path)
		}
	}
}

// markVisited records the directory's resolved path and reports whether
// it is seen for the first time. A symlink cycle resolves to a path
// that is already recorded, which stops the descent. The set is only
// kept when links are followed; without them the tree has no cycles.
func (w *walker) markVisited(dir string) bool {
	real, err := filepath.EvalSymlinks(dir)
	if err != nil {
		real = dir
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.visited[real] {
		return false
	}
	w.visited[real] = true
	return true
}

func (w *walker) shouldDescend(child os.DirEntry, path string) bool {
	if child.IsDir() {
		return true
	}
	if !w.followLinks || child.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
