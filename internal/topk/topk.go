/*
Package topk provides a generic bounded binary heap used by
Tree.TopKRepeatedSubstrings to track the k deepest branching internal
nodes seen during a single traversal without retaining every candidate.

Adapted from a generic BinaryHeap keyed by constraints.Ordered: the
locking is dropped (one traversal, one heap, never shared across
goroutines), the heap carries a (key, value) Entry pair rather than a
bare ordered value so a candidate's ordering key (path depth) and its
payload (node index) travel together, and an AddBounded helper is added
that evicts the weakest entry once the heap grows past a
caller-supplied capacity — the shape TopKRepeatedSubstrings needs,
since it only ever wants to retain the k best candidates out of
however many branching nodes the tree holds.
*/
package topk

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrEmpty is returned by Peek and Poll when the heap holds no
// elements.
var ErrEmpty = errors.New("topk: empty")

// Entry pairs an ordering key with its payload value.
type Entry[K constraints.Ordered, V any] struct {
	Key   K
	Value V
}

// Heap is a generic min-heap ordered ascending by Entry.Key: the entry
// with the smallest key is always at the root.
type Heap[K constraints.Ordered, V any] struct {
	data []Entry[K, V]
}

// New returns an empty Heap using K's natural ordering.
func New[K constraints.Ordered, V any]() *Heap[K, V] {
	return &Heap[K, V]{}
}

// Size returns the number of entries in the heap.
func (h *Heap[K, V]) Size() int {
	return len(h.data)
}

// IsEmpty reports whether the heap holds no entries.
func (h *Heap[K, V]) IsEmpty() bool {
	return len(h.data) == 0
}

// Peek returns the root entry without removing it.
func (h *Heap[K, V]) Peek() (Entry[K, V], error) {
	var zero Entry[K, V]
	if len(h.data) == 0 {
		return zero, ErrEmpty
	}
	return h.data[0], nil
}

// Add inserts (key, value) and restores the heap property.
func (h *Heap[K, V]) Add(key K, value V) {
	h.data = append(h.data, Entry[K, V]{Key: key, Value: value})
	h.swim(len(h.data) - 1)
}

// Poll removes and returns the root entry.
func (h *Heap[K, V]) Poll() (Entry[K, V], error) {
	var zero Entry[K, V]
	if len(h.data) == 0 {
		return zero, ErrEmpty
	}
	return h.removeAt(0)
}

// AddBounded inserts (key, value), then evicts the root if the heap
// now holds more than limit entries. Since the root is always the
// smallest key, this keeps only the limit entries with the largest
// keys seen so far. A limit of zero or less disables eviction.
func (h *Heap[K, V]) AddBounded(key K, value V, limit int) {
	h.Add(key, value)
	if limit > 0 && len(h.data) > limit {
		_, _ = h.Poll()
	}
}

// Drain removes and returns every entry, smallest key (root) first.
func (h *Heap[K, V]) Drain() []Entry[K, V] {
	result := make([]Entry[K, V], 0, len(h.data))
	for len(h.data) > 0 {
		v, _ := h.Poll()
		result = append(result, v)
	}
	return result
}

func (h *Heap[K, V]) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
}

func (h *Heap[K, V]) swim(k int) {
	for k > 0 {
		parent := (k - 1) / 2
		if h.data[k].Key < h.data[parent].Key {
			h.swap(k, parent)
			k = parent
		} else {
			break
		}
	}
}

func (h *Heap[K, V]) removeAt(k int) (Entry[K, V], error) {
	size := len(h.data)
	if size == 0 {
		var zero Entry[K, V]
		return zero, ErrEmpty
	}
	removed := h.data[k]
	last := h.data[size-1]
	h.data[k] = last
	h.data = h.data[:size-1]

	parent := k
	child := 2*parent + 1
	for child < len(h.data) {
		if child+1 < len(h.data) && h.data[child+1].Key < h.data[child].Key {
			child++
		}
		if h.data[child].Key < h.data[parent].Key {
			h.swap(child, parent)
			parent = child
			child = 2*parent + 1
		} else {
			break
		}
	}
	return removed, nil
}
