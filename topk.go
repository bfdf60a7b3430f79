package suftree

import (
	"github.com/Zubayear/suftree/internal/stack"
	"github.com/Zubayear/suftree/internal/topk"
)

// TopKRepeatedSubstrings generalizes LongestRepeatedSubstring to the k
// longest distinct branching-node path-labels. Candidates are tracked
// in a bounded min-heap sized k, keyed by path depth, so only the k
// best survive a single traversal regardless of how many branching
// nodes the tree holds. k <= 0 returns an empty slice. Results come
// back longest-first; ties beyond k are broken arbitrarily, the same
// way LongestRepeatedSubstring's tie-break is unspecified.
func (t *Tree) TopKRepeatedSubstrings(k int) []string {
	if k <= 0 {
		return nil
	}

	heap := topk.New[int, int]()

	s := stack.New[frame]()
	s.Push(frame{node: t.root, depth: 0})
	for !s.IsEmpty() {
		f, _ := s.Pop()
		rec := t.nodes[f.node]
		if !rec.isLeaf() {
			if f.node != t.root && rec.children.Len() >= 2 {
				heap.AddBounded(f.depth, f.node, k)
			}
			rec.children.Each(func(c byte, childIdx int) {
				s.Push(frame{node: childIdx, depth: f.depth + t.nodes[childIdx].edgeLength(t.currentEnd)})
			})
		}
	}

	drained := heap.Drain() // weakest (shallowest) first
	result := make([]string, len(drained))
	for i, cand := range drained {
		result[len(drained)-1-i] = t.pathLabel(cand.Value)
	}
	return result
}
