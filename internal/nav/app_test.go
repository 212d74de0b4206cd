package nav

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShinuToki/rdu/internal/scan"
)

func node(name string, size int64, children ...*scan.Node) *scan.Node {
	return &scan.Node{
		Name:     name,
		Path:     "/scan/" + name,
		Size:     size,
		IsDir:    children != nil,
		Children: children,
		ModTime:  time.Now(),
	}
}

// The scenario tree from the scanner contract: three files and one
// subdirectory holding a single 100-byte file.
func scenarioTree() *scan.Node {
	sub := node("sub", 100, node("big.dat", 100))
	root := &scan.Node{
		Name:  "scan",
		Path:  "/scan",
		Size:  160,
		IsDir: true,
		Children: []*scan.Node{
			node("ten.dat", 10),
			node("twenty.dat", 20),
			node("thirty.dat", 30),
			sub,
		},
	}
	return root
}

func names(children []*scan.Node) []string {
	out := make([]string, len(children))
	for i, c := range children {
		out[i] = c.Name
	}
	return out
}

func TestInitialStateSortsSizeDescending(t *testing.T) {
	a := New(scenarioTree(), scan.Config{})

	assert.Equal(t, ModeSize, a.Mode())
	assert.False(t, a.Ascending())
	assert.Equal(t, 0, a.Selection())
	assert.Equal(t, []string{"sub", "thirty.dat", "twenty.dat", "ten.dat"}, names(a.Children()))
	assert.Equal(t, int64(160), a.TotalSize())
}

func TestInitialStateEmptyRoot(t *testing.T) {
	a := New(&scan.Node{Path: "/scan", IsDir: true}, scan.Config{})
	assert.Equal(t, NoSelection, a.Selection())
}

func TestNextPreviousWraparound(t *testing.T) {
	a := New(scenarioTree(), scan.Config{})

	a.Previous()
	assert.Equal(t, 3, a.Selection(), "previous from first wraps to last")
	a.Next()
	assert.Equal(t, 0, a.Selection(), "next from last wraps to first")
	a.Next()
	assert.Equal(t, 1, a.Selection())
}

func TestPageMovementClamps(t *testing.T) {
	children := make([]*scan.Node, 25)
	for i := range children {
		children[i] = node("f", int64(i))
	}
	a := New(&scan.Node{Path: "/scan", IsDir: true, Children: children}, scan.Config{})

	a.PageDown()
	assert.Equal(t, 10, a.Selection())
	a.PageDown()
	assert.Equal(t, 20, a.Selection())
	a.PageDown()
	assert.Equal(t, 24, a.Selection(), "clamped to last index")
	a.PageUp()
	assert.Equal(t, 14, a.Selection())
	a.PageUp()
	assert.Equal(t, 4, a.Selection())
	a.PageUp()
	assert.Equal(t, 0, a.Selection(), "clamped to first index")
}

func TestJumpFirstLast(t *testing.T) {
	a := New(scenarioTree(), scan.Config{})
	a.Last()
	assert.Equal(t, 3, a.Selection())
	a.First()
	assert.Equal(t, 0, a.Selection())
}

func TestEmptyListOperationsAreNoops(t *testing.T) {
	a := New(&scan.Node{Path: "/scan", IsDir: true}, scan.Config{})
	before := a.Current()

	a.Next()
	a.Previous()
	a.PageDown()
	a.PageUp()
	a.First()
	a.Last()
	a.Enter()
	a.GoUp()
	assert.Equal(t, NoSelection, a.Selection())
	assert.Same(t, before, a.Current())
}

func TestEnterDirectoryAndRoundTrip(t *testing.T) {
	root := scenarioTree()
	a := New(root, scan.Config{})

	a.Next() // select thirty.dat just to move off the default
	a.First()
	a.Enter() // "sub" sorts first under size descending
	require.Equal(t, "/scan/sub", a.Current().Path)
	assert.Equal(t, 0, a.Selection())

	a.GoUp()
	assert.Same(t, root, a.Current())
	assert.Equal(t, 0, a.Selection(), "selection resets, not restored")
}

func TestEnterFileIsNoop(t *testing.T) {
	a := New(scenarioTree(), scan.Config{})
	a.Next() // thirty.dat, a file
	before := a.Current()
	a.Enter()
	assert.Same(t, before, a.Current())
	assert.Equal(t, 1, a.Selection())
}

func TestEnterEmptyDirectoryClearsSelection(t *testing.T) {
	empty := &scan.Node{Name: "empty", Path: "/scan/empty", IsDir: true}
	root := &scan.Node{Path: "/scan", IsDir: true, Children: []*scan.Node{empty}}
	a := New(root, scan.Config{})

	a.Enter()
	assert.Same(t, empty, a.Current())
	assert.Equal(t, NoSelection, a.Selection())

	a.GoUp()
	assert.Same(t, root, a.Current())
	assert.Equal(t, 0, a.Selection())
}

func TestGoUpAtRootIsNoop(t *testing.T) {
	root := scenarioTree()
	a := New(root, scan.Config{})
	a.GoUp()
	assert.Same(t, root, a.Current())
}

func TestSortInvolution(t *testing.T) {
	a := New(scenarioTree(), scan.Config{})
	original := names(a.Children())

	a.ToggleSizeSort()
	assert.True(t, a.Ascending())
	assert.NotEqual(t, original, names(a.Children()))

	a.ToggleSizeSort()
	assert.False(t, a.Ascending())
	assert.Equal(t, original, names(a.Children()), "two toggles restore the order")
}

func TestSortSwitchDefaultsToDescending(t *testing.T) {
	a := New(scenarioTree(), scan.Config{})

	a.ToggleSizeSort() // size ascending
	require.True(t, a.Ascending())

	a.ToggleCountSort()
	assert.Equal(t, ModeCount, a.Mode())
	assert.False(t, a.Ascending(), "dimension change forces descending")

	a.ToggleMTimeSort()
	assert.Equal(t, ModeMTime, a.Mode())
	assert.False(t, a.Ascending())
}

func TestSortStatusMessage(t *testing.T) {
	a := New(scenarioTree(), scan.Config{})
	a.ToggleMTimeSort()
	assert.Equal(t, "Sort: mtime desc", a.Status())
	a.ToggleMTimeSort()
	assert.Equal(t, "Sort: mtime asc", a.Status())
	a.ClearStatus()
	assert.Empty(t, a.Status())
}

func TestRefreshSwapsInPlaceAndPropagatesDelta(t *testing.T) {
	root := scenarioTree()
	a := New(root, scan.Config{})
	a.First()
	a.Enter() // into sub (size 100)
	sub := a.Current()

	// On-disk contents shrank from one 100-byte file to one 40-byte file.
	a.rescan = func(path string, cfg scan.Config) *scan.Node {
		require.Equal(t, "/scan/sub", path)
		return &scan.Node{
			Path:       path,
			IsDir:      true,
			Size:       40,
			ErrorCount: 2,
			Children:   []*scan.Node{node("small.dat", 40)},
		}
	}
	a.Refresh()

	assert.Same(t, sub, a.Current(), "node identity preserved")
	assert.Equal(t, int64(40), sub.Size)
	assert.Equal(t, 2, sub.ErrorCount)
	require.Len(t, sub.Children, 1)
	assert.Equal(t, 0, a.Selection())
	assert.Equal(t, "Refresh complete!", a.Status())
	assert.Equal(t, int64(100), root.Size, "ancestor adjusted by the size delta")
	assert.Equal(t, 0, root.ErrorCount, "error count is own-scan scope")
}

func TestRefreshToEmptyClearsSelection(t *testing.T) {
	a := New(scenarioTree(), scan.Config{})
	a.rescan = func(path string, cfg scan.Config) *scan.Node {
		return &scan.Node{Path: path, IsDir: true}
	}
	a.Refresh()
	assert.Equal(t, NoSelection, a.Selection())
	assert.Zero(t, a.Current().Size)
}
