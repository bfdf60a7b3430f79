package suftree

import "github.com/Zubayear/suftree/internal/childset"

// noNode marks the absence of a node reference (parent, suffix link,
// or a child slot) inside the arena.
const noNode = -1

// openEnd marks a leaf's incoming edge as not yet bounded: its actual
// end is resolved against the tree's currentEnd register while
// building.
const openEnd = -1

// nodeRecord is the arena-resident representation of one suffix-tree
// node. Children are stored in a childset.Set keyed by the first byte
// of each child's incoming edge so enumeration at traversal boundaries
// comes out in ascending order for free.
type nodeRecord struct {
	start, end int
	children   *childset.Set[byte, int]
	suffixLink int
	parent     int
}

func newNodeRecord(start, end, parent int) nodeRecord {
	return nodeRecord{
		start:      start,
		end:        end,
		children:   childset.New[byte, int](),
		suffixLink: noNode,
		parent:     parent,
	}
}

// isLeaf reports whether n's incoming edge end is still open. Internal
// nodes are always created with a bounded end (Rule 2 splits), so an
// open end is leaf-exclusive for the lifetime of the tree.
func (n nodeRecord) isLeaf() bool {
	return n.end == openEnd
}

// resolvedEnd returns n's incoming edge end, resolving an open leaf
// end against currentEnd (the construction frontier while building,
// n+1 after Build finalizes it).
func (n nodeRecord) resolvedEnd(currentEnd int) int {
	if n.end == openEnd {
		return currentEnd
	}
	return n.end
}

// edgeLength returns the number of characters on n's incoming edge.
func (n nodeRecord) edgeLength(currentEnd int) int {
	return n.resolvedEnd(currentEnd) - n.start
}
