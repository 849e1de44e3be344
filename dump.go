package segtree

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// --- Debugging helpers -----------------------------------------------------

// Dump traces the tree structure to the core-tracer at debug level.
func (t *Tree[E]) Dump() {
	if t == nil || t.root == nil {
		T().Debugf("tree is empty")
		return
	}
	var walk func(n treeNode[E], pos, depth int)
	walk = func(n treeNode[E], pos, depth int) {
		switch node := n.(type) {
		case *leafNode[E]:
			T().Debugf("%sL @%d = %v", indent(depth), pos, node.value)
		case *innerNode[E]:
			T().Debugf("%sN [%d] @%d = %v", indent(depth), node.len, pos, node.agg)
			walk(node.left, pos, depth+1)
			walk(node.right, pos+node.left.length(), depth+1)
		}
	}
	walk(t.root, 0, 0)
}

func indent(d int) string {
	ind := ""
	for d > 0 {
		ind = ind + "  "
		d--
	}
	return ind
}

var innerColor = color.New(color.FgBlue)
var leafColor = color.New(color.FgRed)

// Fdump writes an indented rendering of the tree structure to w
// (for debugging purposes).
//
// When stdout is a terminal, inner nodes and leaves are colorized and labels
// are truncated to the terminal width.
func (t *Tree[T]) Fdump(w io.Writer) {
	width := 0 // 0 = no truncation
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if tw, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = tw
		}
	} else {
		color.NoColor = true
	}
	if t == nil || t.root == nil {
		fmt.Fprintln(w, "<empty tree>")
		return
	}
	var walk func(n treeNode[T], pos, depth int)
	walk = func(n treeNode[T], pos, depth int) {
		switch node := n.(type) {
		case *leafNode[T]:
			fmt.Fprintln(w, clip(indent(depth)+leafColor.Sprintf("L @%d = %v", pos, node.value), width))
		case *innerNode[T]:
			fmt.Fprintln(w, clip(indent(depth)+innerColor.Sprintf("N [%d] @%d = %v", node.len, pos, node.agg), width))
			walk(node.left, pos, depth+1)
			walk(node.right, pos+node.left.length(), depth+1)
		}
	}
	walk(t.root, 0, 0)
}

func clip(s string, width int) string {
	if width <= 1 || len(s) <= width {
		return s
	}
	return s[:width-1] + "…"
}
