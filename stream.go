package suftree

import "github.com/Zubayear/suftree/internal/window"

// StreamResult is a streaming view over FindAll's match positions,
// buffered in a double-ended window so a consumer can drain matches
// front-to-back or back-to-front without re-walking the tree.
type StreamResult struct {
	buf *window.Deque
}

// FindAllStream walks the tree once for pattern and returns a
// StreamResult a caller can drain from either end. Fails with
// ErrInvalidInput if pattern carries the reserved sentinel byte.
func (t *Tree) FindAllStream(pattern string) (*StreamResult, error) {
	positions, err := t.FindAll(pattern)
	if err != nil {
		return nil, err
	}
	buf := window.New()
	for _, pos := range positions {
		buf.OfferLast(pos)
	}
	return &StreamResult{buf: buf}, nil
}

// Next drains the next match position from the front of the stream
// (the order FindAll reported them in, which is not sorted), or
// ok=false once the stream is exhausted.
func (r *StreamResult) Next() (pos int, ok bool) {
	val, err := r.buf.PollFirst()
	if err != nil {
		return 0, false
	}
	return val, true
}

// NextFromBack drains the next match position from the back of the
// stream, or ok=false once the stream is exhausted.
func (r *StreamResult) NextFromBack() (pos int, ok bool) {
	val, err := r.buf.PollLast()
	if err != nil {
		return 0, false
	}
	return val, true
}

// Remaining returns the number of positions left to drain.
func (r *StreamResult) Remaining() int {
	return r.buf.Size()
}
