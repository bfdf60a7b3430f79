package suftree

import "sort"

// scanMatchLen walks the tree from root along other[k:], returning how
// many characters matched before a mismatch, the end of other, or
// running out of children to descend into. other is assumed already
// validated sentinel-free: a tree edge character can
// never legitimately equal an other byte at a sentinel position, so
// hitting the sentinel on a tree edge falls out of the ordinary
// character comparison below without special-casing it.
func (t *Tree) scanMatchLen(other string, k int) int {
	cur := t.root
	matched := 0
	i := k
	for i < len(other) {
		childIdx, ok := t.nodes[cur].children.Get(other[i])
		if !ok {
			break
		}
		rec := t.nodes[childIdx]
		edgeLen := rec.edgeLength(t.currentEnd)
		j := 0
		for j < edgeLen && i < len(other) {
			if t.text[rec.start+j] != other[i] {
				return matched
			}
			matched++
			j++
			i++
		}
		cur = childIdx
	}
	return matched
}

// LongestCommonSubstring scans other against the tree, greedily
// re-rooting at each starting position, and returns the longest
// substring common to both the tree's text and other. Time is O(n·m).
// Fails with ErrInvalidInput if other carries the reserved sentinel
// byte.
func (t *Tree) LongestCommonSubstring(other string) (string, error) {
	if containsSentinel(other) {
		return "", ErrInvalidInput
	}
	bestLen, bestStart := 0, 0
	for k := 0; k < len(other); k++ {
		if m := t.scanMatchLen(other, k); m > bestLen {
			bestLen, bestStart = m, k
		}
	}
	if bestLen == 0 {
		return "", nil
	}
	return other[bestStart : bestStart+bestLen], nil
}

// LongestCommonSubstringInfo is LongestCommonSubstring plus the
// winning substring's position in both texts. The position inside the
// tree's own text is its first occurrence as reported by FindAll, not
// the position the scan happened to reach. Both positions are -1 if
// the texts share no characters at all.
func (t *Tree) LongestCommonSubstringInfo(other string) (substr string, posInText int, posInOther int, err error) {
	if containsSentinel(other) {
		return "", -1, -1, ErrInvalidInput
	}
	bestLen, bestStart := 0, 0
	for k := 0; k < len(other); k++ {
		if m := t.scanMatchLen(other, k); m > bestLen {
			bestLen, bestStart = m, k
		}
	}
	if bestLen == 0 {
		return "", -1, -1, nil
	}
	substr = other[bestStart : bestStart+bestLen]
	positions, _ := t.FindAll(substr)
	sort.Ints(positions)
	return substr, positions[0], bestStart, nil
}
