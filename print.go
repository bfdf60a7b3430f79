package suftree

import (
	"fmt"
	"strings"

	"github.com/Zubayear/suftree/internal/stack"
)

// printFrame is one entry in Print's explicit traversal stack. indent
// is the prefix already owed to this node's line; isLast tells the
// node's own connector whether to draw a corner or a tee.
type printFrame struct {
	node   int
	indent string
	isLast bool
}

// edgeLabel renders nodeIdx's incoming edge, substituting
// sentinelGlyph for the raw sentinel byte so the printed tree stays
// readable.
func (t *Tree) edgeLabel(nodeIdx int) string {
	rec := t.nodes[nodeIdx]
	end := rec.resolvedEnd(t.currentEnd)
	raw := t.text[rec.start:end]
	if len(raw) > 0 && raw[len(raw)-1] == sentinel {
		return string(raw[:len(raw)-1]) + string(sentinelGlyph)
	}
	return string(raw)
}

// Print renders the tree as an indented, human-readable listing for
// debugging: each line shows the edge label leading to a node,
// "(leaf)" for leaves, and for internal non-root nodes the first
// character of its suffix-link target. Traversal is iterative.
func (t *Tree) Print() string {
	var b strings.Builder
	b.WriteString("root\n")

	s := stack.New[printFrame]()
	rootChildren := t.sortedChildren(t.root)
	for i := len(rootChildren) - 1; i >= 0; i-- {
		s.Push(printFrame{node: rootChildren[i], indent: "", isLast: i == len(rootChildren)-1})
	}

	for !s.IsEmpty() {
		f, _ := s.Pop()
		rec := t.nodes[f.node]

		connector := "├── "
		childIndent := f.indent + "│   "
		if f.isLast {
			connector = "└── "
			childIndent = f.indent + "    "
		}

		label := t.edgeLabel(f.node)
		if rec.isLeaf() {
			fmt.Fprintf(&b, "%s%s%s (leaf)\n", f.indent, connector, label)
			continue
		}

		suffix := ""
		if f.node != t.root && rec.suffixLink != noNode {
			suffix = fmt.Sprintf(" [link -> %s]", t.firstCharLabel(rec.suffixLink))
		}
		fmt.Fprintf(&b, "%s%s%s%s\n", f.indent, connector, label, suffix)

		children := t.sortedChildren(f.node)
		for i := len(children) - 1; i >= 0; i-- {
			s.Push(printFrame{node: children[i], indent: childIndent, isLast: i == len(children)-1})
		}
	}

	return b.String()
}

// firstCharLabel describes a suffix-link target by the first byte of
// its incoming edge, or "root" if the link points back to the root.
func (t *Tree) firstCharLabel(nodeIdx int) string {
	if nodeIdx == t.root {
		return "root"
	}
	rec := t.nodes[nodeIdx]
	c := t.text[rec.start]
	if c == sentinel {
		return string(sentinelGlyph)
	}
	return string(c)
}
