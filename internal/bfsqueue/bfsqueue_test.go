package bfsqueue

import (
	"errors"
	"testing"
)

func TestQueue_EnqueueDequeue(t *testing.T) {
	q := New[int]()
	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)
	for _, want := range []int{1, 2, 3} {
		got, err := q.Dequeue()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("got = %v, want %v", got, want)
		}
	}
}

func TestQueue_DequeueEmpty(t *testing.T) {
	q := New[int]()
	_, err := q.Dequeue()
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("got = %v, want %v", err, ErrEmpty)
	}
}

func TestQueue_GrowsPastInitialCapacity(t *testing.T) {
	q := New[int]()
	for i := 0; i < 100; i++ {
		q.Enqueue(i)
	}
	if q.Size() != 100 {
		t.Errorf("got Size() = %v, want 100", q.Size())
	}
	for i := 0; i < 100; i++ {
		got, err := q.Dequeue()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != i {
			t.Errorf("got = %v, want %v", got, i)
		}
	}
}

func TestQueue_IsEmpty(t *testing.T) {
	q := New[int]()
	if !q.IsEmpty() {
		t.Errorf("got IsEmpty() = false, want true")
	}
	q.Enqueue(1)
	if q.IsEmpty() {
		t.Errorf("got IsEmpty() = true, want false")
	}
}
