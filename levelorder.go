package suftree

import (
	"fmt"
	"strings"

	"github.com/Zubayear/suftree/internal/bfsqueue"
)

// levelEntry is one node queued for level-order traversal, tagged
// with which level it belongs to so LevelOrderDump can print level
// boundaries.
type levelEntry struct {
	node  int
	level int
}

// LevelOrderDump renders the tree breadth-first, one line per level,
// as a debugging companion to Print's depth-first view. Traversal is
// iterative via internal/bfsqueue, consistent with the no-recursion
// rule applied everywhere else a pathological input could make
// recursion unbounded.
func (t *Tree) LevelOrderDump() string {
	var b strings.Builder

	q := bfsqueue.New[levelEntry]()
	q.Enqueue(levelEntry{node: t.root, level: 0})

	currentLevel := -1
	var lineLabels []string

	flush := func() {
		if currentLevel >= 0 {
			fmt.Fprintf(&b, "level %d: %s\n", currentLevel, strings.Join(lineLabels, " "))
		}
	}

	for !q.IsEmpty() {
		entry, _ := q.Dequeue()
		if entry.level != currentLevel {
			flush()
			currentLevel = entry.level
			lineLabels = nil
		}

		if entry.node == t.root {
			lineLabels = append(lineLabels, "root")
		} else {
			rec := t.nodes[entry.node]
			label := t.edgeLabel(entry.node)
			if rec.isLeaf() {
				label += "(leaf)"
			}
			lineLabels = append(lineLabels, label)
		}

		rec := t.nodes[entry.node]
		if !rec.isLeaf() {
			rec.children.Each(func(c byte, childIdx int) {
				q.Enqueue(levelEntry{node: childIdx, level: entry.level + 1})
			})
		}
	}
	flush()

	return b.String()
}
