// Package nav holds the interactive browsing state: the node in view,
// the ancestor trail behind it, the list selection, and the active
// sort. Every operation is total: an empty child list makes movement a
// no-op and leaves the selection absent, never an error.
package nav

import (
	"fmt"

	"github.com/ShinuToki/rdu/internal/scan"
)

// NoSelection is the selection value for an empty child list.
const NoSelection = -1

// pageSize is how far PageDown and PageUp move the selection.
const pageSize = 10

// Rescanner rebuilds the subtree rooted at path. Refresh goes through
// it so the state machine never touches the filesystem directly.
type Rescanner func(path string, cfg scan.Config) *scan.Node

// App is the navigation state machine over a scanned tree. It holds
// non-owning handles into the tree: current aliases a node that is also
// reachable from its parent's child list, and history records the path
// of ancestors from root to the current node's parent.
type App struct {
	root      *scan.Node
	current   *scan.Node
	history   []*scan.Node
	selection int
	mode      Mode
	ascending bool
	status    string
	cfg       scan.Config
	rescan    Rescanner
}

// New starts at root, sorted by size descending, with the first child
// selected when one exists.
func New(root *scan.Node, cfg scan.Config) *App {
	a := &App{
		root:    root,
		current: root,
		mode:    ModeSize,
		cfg:     cfg,
		rescan:  scan.Scan,
	}
	a.sortCurrent()
	a.resetSelection()
	return a
}

// Current returns the directory node in view.
func (a *App) Current() *scan.Node { return a.current }

// Children returns the ordered children of the current node.
func (a *App) Children() []*scan.Node { return a.current.Children }

// Selection returns the selected child index, or NoSelection.
func (a *App) Selection() int { return a.selection }

// Mode returns the active sort dimension.
func (a *App) Mode() Mode { return a.mode }

// Ascending reports the active sort direction.
func (a *App) Ascending() bool { return a.ascending }

// Status returns the transient status message, if any.
func (a *App) Status() string { return a.status }

// ClearStatus drops the transient status message.
func (a *App) ClearStatus() { a.status = "" }

// TotalSize is the sum of the current node's child sizes.
func (a *App) TotalSize() int64 {
	var total int64
	for _, c := range a.current.Children {
		total += c.Size
	}
	return total
}

// Next advances the selection by one, wrapping past the last child.
func (a *App) Next() {
	n := len(a.current.Children)
	if n == 0 {
		return
	}
	if a.selection == NoSelection || a.selection >= n-1 {
		a.selection = 0
	} else {
		a.selection++
	}
}

// Previous retreats the selection by one, wrapping past the first child.
func (a *App) Previous() {
	n := len(a.current.Children)
	if n == 0 {
		return
	}
	switch {
	case a.selection == NoSelection:
		a.selection = 0
	case a.selection == 0:
		a.selection = n - 1
	default:
		a.selection--
	}
}

// PageDown moves the selection down a page, clamped to the last child.
func (a *App) PageDown() {
	n := len(a.current.Children)
	if n == 0 {
		return
	}
	if a.selection == NoSelection {
		a.selection = 0
		return
	}
	a.selection = min(a.selection+pageSize, n-1)
}

// PageUp moves the selection up a page, clamped to the first child.
func (a *App) PageUp() {
	if len(a.current.Children) == 0 {
		return
	}
	if a.selection == NoSelection {
		a.selection = 0
		return
	}
	a.selection = max(a.selection-pageSize, 0)
}

// First selects the first child.
func (a *App) First() {
	if len(a.current.Children) > 0 {
		a.selection = 0
	}
}

// Last selects the last child.
func (a *App) Last() {
	if n := len(a.current.Children); n > 0 {
		a.selection = n - 1
	}
}

// Enter descends into the selected child when it is a directory,
// pushing the current node onto the history stack. Files are a no-op.
func (a *App) Enter() {
	if a.selection == NoSelection || a.selection >= len(a.current.Children) {
		return
	}
	child := a.current.Children[a.selection]
	if !child.IsDir {
		return
	}
	a.history = append(a.history, a.current)
	a.current = child
	a.sortCurrent()
	a.resetSelection()
}

// GoUp pops the history stack back into the parent. At the root it is a
// no-op. The selection resets to the first child; it is not restored to
// the index it had before the matching Enter.
func (a *App) GoUp() {
	if len(a.history) == 0 {
		return
	}
	a.current = a.history[len(a.history)-1]
	a.history = a.history[:len(a.history)-1]
	a.sortCurrent()
	a.resetSelection()
}

// ToggleSizeSort re-sorts by size, flipping direction when size is
// already the active dimension.
func (a *App) ToggleSizeSort() { a.toggleSort(ModeSize) }

// ToggleMTimeSort re-sorts by modification time, flipping direction
// when mtime is already the active dimension.
func (a *App) ToggleMTimeSort() { a.toggleSort(ModeMTime) }

// ToggleCountSort re-sorts by immediate child count, flipping direction
// when count is already the active dimension.
func (a *App) ToggleCountSort() { a.toggleSort(ModeCount) }

func (a *App) toggleSort(mode Mode) {
	if a.mode == mode {
		a.ascending = !a.ascending
	} else {
		a.mode = mode
		a.ascending = false
	}
	a.sortCurrent()
	dir := "desc"
	if a.ascending {
		dir = "asc"
	}
	a.status = fmt.Sprintf("Sort: %s %s", a.mode, dir)
}

// Refresh rescans the directory in view and swaps its children, size,
// and error count in place. The node keeps its identity, so handles on
// the history stack stay valid; each ancestor's aggregate is adjusted
// by the size delta so the sum invariant holds above the refreshed
// node. The error count stays own-scan scope and is not propagated.
func (a *App) Refresh() {
	fresh := a.rescan(a.current.Path, a.cfg)
	delta := fresh.Size - a.current.Size
	a.current.Children = fresh.Children
	a.current.Size = fresh.Size
	a.current.ErrorCount = fresh.ErrorCount
	for _, ancestor := range a.history {
		ancestor.Size += delta
	}
	a.sortCurrent()
	a.resetSelection()
	a.status = "Refresh complete!"
}

func (a *App) sortCurrent() {
	sortChildren(a.current, a.mode, a.ascending)
}

func (a *App) resetSelection() {
	if len(a.current.Children) == 0 {
		a.selection = NoSelection
	} else {
		a.selection = 0
	}
}
