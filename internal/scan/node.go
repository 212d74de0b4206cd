// Package scan walks a directory subtree in parallel and assembles the
// flat result into a rooted tree with bottom-up aggregated sizes.
//
// The tree is built once per scan. After that, a single goroutine owns it:
// navigation holds plain *Node handles into the same structure, and a
// refresh swaps a directory's children in place without changing the
// node's identity, so outstanding handles stay valid.
package scan

import "time"

// Node is one filesystem entry. For directories, Size is the sum of all
// descendant file sizes as of the last build or refresh of that node.
type Node struct {
	Name       string
	Path       string
	Size       int64
	IsDir      bool
	Children   []*Node
	ErrorCount int
	ModTime    time.Time // zero when the entry's metadata was unreadable
}

// ChildCount returns the number of immediate children.
func (n *Node) ChildCount() int {
	return len(n.Children)
}

// Config controls how a subtree is scanned.
type Config struct {
	// FollowLinks resolves entry metadata through symlinks and walks
	// into link targets. Can loop on cyclic link structures.
	FollowLinks bool

	// OneFilesystem skips entries on a different device or volume than
	// the scan root.
	OneFilesystem bool
}
