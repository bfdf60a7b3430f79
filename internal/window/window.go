/*
Package window provides the double-ended buffer behind
Tree.FindAllStream: a buffered view over find_all's match positions
that a consumer can drain from either end.

Adapted from a generic deque package, itself backed by a doubly linked
list. Both layers here are narrowed to int match positions (the only
element type a streaming position buffer ever needs) and drop the
RWMutex the originals carried, since a single FindAllStream call owns
its buffer for the lifetime of one walk — the way internal/stack and
internal/bfsqueue are also single-owner for the duration of one
traversal.
*/
package window

import "errors"

// ErrEmpty is returned by PollFirst and PollLast when the buffer holds
// no positions.
var ErrEmpty = errors.New("window: empty")

type node struct {
	val        int
	next, prev *node
}

// Deque is a double-ended buffer of match positions.
type Deque struct {
	size       int
	head, tail *node
}

// New returns an empty Deque.
func New() *Deque {
	return &Deque{}
}

// OfferLast appends a position to the back of the buffer.
func (d *Deque) OfferLast(pos int) {
	n := &node{val: pos}
	if d.size == 0 {
		d.head = n
		d.tail = n
	} else {
		n.prev = d.tail
		d.tail.next = n
		d.tail = n
	}
	d.size++
}

// PollFirst removes and returns the position at the front of the
// buffer (FIFO drain order).
func (d *Deque) PollFirst() (int, error) {
	if d.size == 0 {
		return 0, ErrEmpty
	}
	val := d.head.val
	d.head = d.head.next
	d.size--
	if d.size == 0 {
		d.tail = nil
	} else {
		d.head.prev = nil
	}
	return val, nil
}

// PollLast removes and returns the position at the back of the
// buffer (LIFO drain order).
func (d *Deque) PollLast() (int, error) {
	if d.size == 0 {
		return 0, ErrEmpty
	}
	val := d.tail.val
	d.tail = d.tail.prev
	d.size--
	if d.size == 0 {
		d.head = nil
	} else {
		d.tail.next = nil
	}
	return val, nil
}

// IsEmpty reports whether the buffer holds no positions.
func (d *Deque) IsEmpty() bool {
	return d.size == 0
}

// Size returns the number of positions currently buffered.
func (d *Deque) Size() int {
	return d.size
}
