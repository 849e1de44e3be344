package segtree

import (
	"fmt"
	"io"
)

type nodeids[T any] struct {
	idTable map[treeNode[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[treeNode[T]]int),
		max:     1,
	}
}

func (ids *nodeids[T]) alloc(node treeNode[T]) int {
	if id := ids.idTable[node]; id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// Inner nodes are labeled with span length and aggregate, leaves with the
// element value, both via %v formatting.
func (t *Tree[T]) Dot(w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	if t == nil || t.root == nil {
		io.WriteString(w, "}\n")
		return
	}
	ids := newtable[T]()
	nodelist, edgelist := "", ""
	var walk func(n treeNode[T], pos int)
	walk = func(n treeNode[T], pos int) {
		ID := ids.alloc(n)
		switch node := n.(type) {
		case *leafNode[T]:
			label := fmt.Sprintf("@%d\\n%v", pos, node.value)
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\",style=filled,shape=box];\n", ID, label)
		case *innerNode[T]:
			label := fmt.Sprintf("%d @%d\\n%v", node.len, pos, node.agg)
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\",style=filled,color=black,fillcolor=\"#a3d7e4\",shape=circle];\n",
				ID, label)
			walk(node.left, pos)
			walk(node.right, pos+node.left.length())
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(node.left))
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(node.right))
		}
	}
	walk(t.root, 0)
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}
