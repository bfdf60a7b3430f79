package suftree

import "github.com/Zubayear/suftree/internal/stack"

// pathLabel reconstructs the path-label from root to nodeIdx by
// walking parent pointers: each non-root node's incoming edge is
// resolved and prepended in root-to-node order. An
// internal node's edge can never include the sentinel (Rule 2 only
// splits strictly inside an edge whose resolved length is still less
// than the construction frontier at split time), so no suppression is
// needed here the way Print and suffix enumeration need it for leaf
// edges.
func (t *Tree) pathLabel(nodeIdx int) string {
	var segments [][]byte
	cur := nodeIdx
	for cur != t.root {
		rec := t.nodes[cur]
		end := rec.resolvedEnd(t.currentEnd)
		segments = append(segments, t.text[rec.start:end])
		cur = rec.parent
	}
	total := 0
	for _, seg := range segments {
		total += len(seg)
	}
	buf := make([]byte, 0, total)
	for i := len(segments) - 1; i >= 0; i-- {
		buf = append(buf, segments[i]...)
	}
	return string(buf)
}

// LongestRepeatedSubstring returns the label from root to the deepest
// branching internal node — the internal node with at least two
// children and maximum path depth. Returns "" if the text has no
// repeated substring of length >= 1. Ties are broken arbitrarily. The
// traversal is iterative.
func (t *Tree) LongestRepeatedSubstring() string {
	bestNode := noNode
	bestDepth := 0

	s := stack.New[frame]()
	s.Push(frame{node: t.root, depth: 0})
	for !s.IsEmpty() {
		f, _ := s.Pop()
		rec := t.nodes[f.node]
		if !rec.isLeaf() {
			if f.node != t.root && rec.children.Len() >= 2 && f.depth > bestDepth {
				bestDepth = f.depth
				bestNode = f.node
			}
			rec.children.Each(func(c byte, childIdx int) {
				s.Push(frame{node: childIdx, depth: f.depth + t.nodes[childIdx].edgeLength(t.currentEnd)})
			})
		}
	}

	if bestNode == noNode {
		return ""
	}
	return t.pathLabel(bestNode)
}
