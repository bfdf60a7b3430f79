package suftree

import "github.com/Zubayear/suftree/internal/stack"

// walk descends from root along pattern, returning the arena index of
// the node whose incoming edge was last entered and the full path
// depth (sum of complete edge lengths) from root down to and
// including that node's own edge. The returned depth is independent
// of how far into that node's edge the pattern actually matched — it
// is always the node's full depth, since a landing subtree's leaves
// are always measured from the landing node's own boundary. ok is
// false on a mismatch or a missing child.
func (t *Tree) walk(pattern string) (node int, depth int, ok bool) {
	if len(pattern) == 0 {
		return t.root, 0, true
	}
	cur := t.root
	curDepth := 0
	i := 0
	for i < len(pattern) {
		c := pattern[i]
		childIdx, found := t.nodes[cur].children.Get(c)
		if !found {
			return noNode, 0, false
		}
		edge := t.nodes[childIdx]
		edgeLen := edge.edgeLength(t.currentEnd)
		j := 0
		for j < edgeLen && i < len(pattern) {
			if t.text[edge.start+j] != pattern[i] {
				return noNode, 0, false
			}
			j++
			i++
		}
		if i == len(pattern) {
			return childIdx, curDepth + edgeLen, true
		}
		curDepth += edgeLen
		cur = childIdx
	}
	return noNode, 0, false
}

// frame is one entry in the explicit traversal stack used by Count
// and FindAll — recursion is avoided because a text like "aaaa...a"
// produces tree depth proportional to its length.
type frame struct {
	node  int
	depth int // full path depth from root through node's own edge
}

// leafPosition converts a leaf's full root-to-leaf depth into the
// text position its suffix starts at, or -1 if the leaf is the one
// representing the sentinel-only suffix, which is not a real
// occurrence in the original (unsentineled) input.
func (t *Tree) leafPosition(depth int) int {
	pos := (t.n + 1) - depth
	if pos == t.n {
		return -1
	}
	return pos
}

// Contains reports whether pattern occurs in the text. The empty
// pattern is vacuously present. Fails with ErrInvalidInput if pattern
// carries the reserved sentinel byte.
func (t *Tree) Contains(pattern string) (bool, error) {
	if containsSentinel(pattern) {
		return false, ErrInvalidInput
	}
	_, _, ok := t.walk(pattern)
	return ok, nil
}

// Count returns the number of occurrences of pattern in the text. The
// empty pattern returns n, the length of the original input. Fails
// with ErrInvalidInput if pattern carries the reserved sentinel byte.
func (t *Tree) Count(pattern string) (int, error) {
	if containsSentinel(pattern) {
		return 0, ErrInvalidInput
	}
	node, depth, ok := t.walk(pattern)
	if !ok {
		return 0, nil
	}
	count := 0
	s := stack.New[frame]()
	s.Push(frame{node: node, depth: depth})
	for !s.IsEmpty() {
		f, _ := s.Pop()
		rec := t.nodes[f.node]
		if rec.isLeaf() {
			if t.leafPosition(f.depth) >= 0 {
				count++
			}
			continue
		}
		rec.children.Each(func(c byte, childIdx int) {
			s.Push(frame{node: childIdx, depth: f.depth + t.nodes[childIdx].edgeLength(t.currentEnd)})
		})
	}
	return count, nil
}

// FindAll returns every starting position of pattern in the text. The
// empty pattern returns every position [0, n). Ordering is unspecified
// but stable across calls for the same tree and pattern. Fails with
// ErrInvalidInput if pattern carries the reserved sentinel byte.
func (t *Tree) FindAll(pattern string) ([]int, error) {
	if containsSentinel(pattern) {
		return nil, ErrInvalidInput
	}
	node, depth, ok := t.walk(pattern)
	if !ok {
		return nil, nil
	}
	var positions []int
	s := stack.New[frame]()
	s.Push(frame{node: node, depth: depth})
	for !s.IsEmpty() {
		f, _ := s.Pop()
		rec := t.nodes[f.node]
		if rec.isLeaf() {
			if pos := t.leafPosition(f.depth); pos >= 0 {
				positions = append(positions, pos)
			}
			continue
		}
		rec.children.Each(func(c byte, childIdx int) {
			s.Push(frame{node: childIdx, depth: f.depth + t.nodes[childIdx].edgeLength(t.currentEnd)})
		})
	}
	return positions, nil
}
