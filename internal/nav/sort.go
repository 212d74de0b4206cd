package nav

import (
	"sort"

	"github.com/ShinuToki/rdu/internal/scan"
)

// Mode selects the metric a directory's children are ordered by.
type Mode int

const (
	ModeSize Mode = iota
	ModeMTime
	ModeCount
)

func (m Mode) String() string {
	switch m {
	case ModeMTime:
		return "mtime"
	case ModeCount:
		return "count"
	default:
		return "size"
	}
}

// sortChildren reorders a node's children in place. The sort is stable,
// so equal keys keep their relative order; descending reverses the
// natural comparison. A zero ModTime sorts as oldest.
func sortChildren(n *scan.Node, mode Mode, ascending bool) {
	less := func(a, b *scan.Node) bool {
		switch mode {
		case ModeMTime:
			return a.ModTime.Before(b.ModTime)
		case ModeCount:
			return a.ChildCount() < b.ChildCount()
		default:
			return a.Size < b.Size
		}
	}
	sort.SliceStable(n.Children, func(i, j int) bool {
		if ascending {
			return less(n.Children[i], n.Children[j])
		}
		return less(n.Children[j], n.Children[i])
	})
}
