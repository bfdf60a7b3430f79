package stack

import (
	"errors"
	"testing"
)

func TestStack_IsEmpty(t *testing.T) {
	s := New[int]()
	got := s.IsEmpty()
	if !got {
		t.Errorf("got = %v, want %v", got, true)
	}
	s.Push(10)
	got = s.IsEmpty()
	if got {
		t.Errorf("got = %v, want %v", got, false)
	}
}

func TestStack_PushPop(t *testing.T) {
	s := New[int]()
	s.Push(10)
	s.Push(20)
	s.Push(30)
	got, err := s.Pop()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 30 {
		t.Errorf("got = %v, want %v", got, 30)
	}
}

func TestStack_PopEmpty(t *testing.T) {
	s := New[int]()
	_, err := s.Pop()
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("got = %v, want %v", err, ErrEmpty)
	}
}

func TestStack_Peek(t *testing.T) {
	s := New[int]()
	s.Push(10)
	s.Push(20)
	got, err := s.Peek()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 20 {
		t.Errorf("got = %v, want %v", got, 20)
	}
	if s.Size() != 2 {
		t.Errorf("got = %v, want %v", s.Size(), 2)
	}
}

func TestStack_GrowsPastInitialCapacity(t *testing.T) {
	s := New[int]()
	for i := 0; i < 100; i++ {
		s.Push(i)
	}
	if s.Size() != 100 {
		t.Errorf("got = %v, want %v", s.Size(), 100)
	}
	for i := 99; i >= 0; i-- {
		got, err := s.Pop()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != i {
			t.Errorf("got = %v, want %v", got, i)
		}
	}
}

func TestStack_GenericFrame(t *testing.T) {
	type frame struct {
		node  int
		depth int
	}
	s := New[frame]()
	s.Push(frame{node: 1, depth: 0})
	s.Push(frame{node: 2, depth: 1})
	got, err := s.Pop()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.node != 2 || got.depth != 1 {
		t.Errorf("got = %+v, want {2 1}", got)
	}
}
