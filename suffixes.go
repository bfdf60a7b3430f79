package suftree

import "github.com/Zubayear/suftree/internal/stack"

// dfsFrame is one level of an iterative, explicit-stack depth-first
// walk over a node's children in ascending first-character order.
// depth is the full root-to-node path depth (sum of complete edge
// lengths, the same quantity query.go's walk/leafPosition use).
// pushedLen records how many label bytes this node's own incoming
// edge contributed to the shared buffer, so ascending back out of the
// node pops exactly what descending into it pushed.
type dfsFrame struct {
	node      int
	children  []int
	pos       int
	depth     int
	pushedLen int
}

// sortedChildren returns nodeIdx's children's arena indices in
// ascending order of their incoming edge's first character — the
// ordering childset already maintains internally.
func (t *Tree) sortedChildren(nodeIdx int) []int {
	keys := t.nodes[nodeIdx].children.Keys()
	children := make([]int, len(keys))
	for i, k := range keys {
		idx, _ := t.nodes[nodeIdx].children.Get(k)
		children[i] = idx
	}
	return children
}

// SuffixIterator yields a tree's suffixes one at a time in strictly
// ascending lexicographic order, with O(n) incremental memory. Its
// state is private to the iterator — concurrent iterators over the
// same tree do not interfere with each other.
type SuffixIterator struct {
	tree     *Tree
	labelBuf []byte
	frames   *stack.Stack[*dfsFrame]
}

// EnumerateSuffixes returns a lazy, sorted iterator over the tree's
// suffixes.
func (t *Tree) EnumerateSuffixes() *SuffixIterator {
	it := &SuffixIterator{
		tree:     t,
		labelBuf: make([]byte, 0, t.n+1),
		frames:   stack.New[*dfsFrame](),
	}
	it.frames.Push(&dfsFrame{node: t.root, children: t.sortedChildren(t.root), depth: 0})
	return it
}

// Next returns the next suffix in ascending order, or ("", false) once
// every suffix has been emitted.
func (it *SuffixIterator) Next() (string, bool) {
	t := it.tree
	for !it.frames.IsEmpty() {
		f, _ := it.frames.Peek()
		if f.pos >= len(f.children) {
			it.labelBuf = it.labelBuf[:len(it.labelBuf)-f.pushedLen]
			_, _ = it.frames.Pop()
			continue
		}

		childIdx := f.children[f.pos]
		f.pos++

		rec := t.nodes[childIdx]
		end := rec.resolvedEnd(t.currentEnd)
		childDepth := f.depth + rec.edgeLength(t.currentEnd)
		pushed := 0
		for j := rec.start; j < end; j++ {
			b := t.text[j]
			if b == sentinel {
				break
			}
			it.labelBuf = append(it.labelBuf, b)
			pushed++
		}

		if rec.isLeaf() {
			// The leaf at full path depth 1 is the one whose suffix is
			// just the appended sentinel — the sentineled text's own
			// full-length suffix, not a suffix of the original
			// (unsentineled) input. Skip it the same way leafPosition
			// filters position n out of Count and FindAll. A short
			// trailing edge of just the sentinel byte is not by itself
			// enough to identify this leaf: several other leaves (e.g.
			// "ana", "na", "a" in "banana") also end in a lone-sentinel
			// edge but sit deeper in the tree, so depth — not rec.start
			// or edge length — is what's unique to position n.
			if childDepth == 1 {
				it.labelBuf = it.labelBuf[:len(it.labelBuf)-pushed]
				continue
			}
			suffix := string(it.labelBuf)
			it.labelBuf = it.labelBuf[:len(it.labelBuf)-pushed]
			return suffix, true
		}
		it.frames.Push(&dfsFrame{node: childIdx, children: t.sortedChildren(childIdx), depth: childDepth, pushedLen: pushed})
	}
	return "", false
}

// GetAllSuffixes eagerly collects every suffix of the text in strictly
// ascending lexicographic order. Built directly on EnumerateSuffixes,
// so the two surfaces are equivalent element-wise by construction.
func (t *Tree) GetAllSuffixes() []string {
	it := t.EnumerateSuffixes()
	var result []string
	for {
		s, ok := it.Next()
		if !ok {
			break
		}
		result = append(result, s)
	}
	return result
}
