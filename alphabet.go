package suftree

import (
	"sort"

	"github.com/Zubayear/suftree/internal/charset"
)

// Alphabet returns the distinct bytes occurring in the tree's text, in
// ascending order, excluding the reserved sentinel.
func (t *Tree) Alphabet() []byte {
	set := charset.New()
	for _, b := range t.text[:t.n] {
		set.Insert(b)
	}
	result := set.Items()
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}
