package suftree

import "github.com/Zubayear/suftree/internal/patterncache"

// CachedTree wraps a finished Tree with a bounded memo of Contains
// results, for callers that repeatedly re-probe a small set of
// patterns against the same tree. A Tree is already safe for
// unsynchronized concurrent reads; CachedTree only adds value when the
// memoized patterns are short and queried often enough that skipping
// the walk matters.
type CachedTree struct {
	tree  *Tree
	cache *patterncache.Cache
}

// NewCachedTree wraps tree with a pattern cache that memoizes Contains
// results for patterns up to maxLen bytes long. Fails with
// ErrInvalidArgument if tree is nil.
func NewCachedTree(tree *Tree, maxLen int) (*CachedTree, error) {
	if tree == nil {
		return nil, ErrInvalidArgument
	}
	return &CachedTree{tree: tree, cache: patterncache.New(maxLen)}, nil
}

// Contains is Tree.Contains, transparently memoized.
func (c *CachedTree) Contains(pattern string) (bool, error) {
	if containsSentinel(pattern) {
		return false, ErrInvalidInput
	}
	if result, ok := c.cache.Lookup(pattern); ok {
		return result, nil
	}
	result, err := c.tree.Contains(pattern)
	if err != nil {
		return false, err
	}
	c.cache.Store(pattern, result)
	return result, nil
}
