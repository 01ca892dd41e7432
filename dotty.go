package arbor

import (
	"fmt"
	"io"
)

type nodeids[T any] struct {
	idTable map[*Node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*Node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(node *Node[T]) int {
	return ids.idTable[node]
}

func (ids *nodeids[T]) alloc(node *Node[T]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a Tree in Graphviz DOT format
// (for debugging purposes).
//
func Tree2Dot[U any](t *Tree[U], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[U]()
	nodelist, edgelist := "", ""
	err := t.Each(Preorder, func(node *Node[U]) error {
		ID := ids.alloc(node)
		styles := nodeDotStyles(node.IsLeaf())
		label := fmt.Sprintf("L%d\\n“%v”", node.Level(), node.Data())
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, styles)
		if node.IsLeaf() {
			return nil
		}
		if node.Left() == nil {
			nilid := ID + 10000
			nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode(nilid))
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
		} else {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(node.Left()))
		}
		if node.Right() == nil {
			nilid := ID + 20000
			nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode(nilid))
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
		} else {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(node.Right()))
		}
		return nil
	})
	if err != nil {
		T().Errorf("tree DOT: %s", err.Error())
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func emptyNode(id int) string {
	s := "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
	return s
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
