package topk

import "testing"

func minHeap() *Heap[int, int] {
	return New[int, int]()
}

func TestHeap_AddPoll(t *testing.T) {
	h := minHeap()
	h.Add(5, 5)
	h.Add(1, 1)
	h.Add(3, 3)
	for _, want := range []int{1, 3, 5} {
		got, err := h.Poll()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Key != want {
			t.Errorf("got = %v, want %v", got.Key, want)
		}
	}
}

func TestHeap_PollEmpty(t *testing.T) {
	h := minHeap()
	if _, err := h.Poll(); err != ErrEmpty {
		t.Errorf("got = %v, want %v", err, ErrEmpty)
	}
}

func TestHeap_AddBoundedKeepsStrongest(t *testing.T) {
	// min-ordered heap: AddBounded evicts the weakest (smallest) once
	// over capacity, leaving the k largest values.
	h := minHeap()
	for _, v := range []int{1, 9, 2, 8, 3, 7, 4, 6, 5} {
		h.AddBounded(v, v, 3)
	}
	if h.Size() != 3 {
		t.Fatalf("got Size() = %v, want 3", h.Size())
	}
	got := h.Drain()
	want := []int{6, 7, 8, 9}
	// Drain yields weakest-first; with capacity 3 the surviving set is
	// the three largest values {7, 8, 9}, regardless of insertion order.
	seen := map[int]bool{}
	for _, e := range got {
		seen[e.Key] = true
	}
	for _, v := range want[1:] {
		if !seen[v] {
			t.Errorf("expected %v to survive bounding, got %v", v, got)
		}
	}
}

func TestHeap_Peek(t *testing.T) {
	h := minHeap()
	h.Add(10, 10)
	h.Add(2, 2)
	got, err := h.Peek()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Key != 2 {
		t.Errorf("got = %v, want 2", got.Key)
	}
	if h.Size() != 2 {
		t.Errorf("Peek should not remove; got Size() = %v, want 2", h.Size())
	}
}
