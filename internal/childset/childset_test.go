package childset

import "testing"

func TestSet_PutGet(t *testing.T) {
	s := New[byte, int]()
	s.Put('b', 1)
	s.Put('a', 2)
	s.Put('n', 3)

	got, ok := s.Get('a')
	if !ok || got != 2 {
		t.Errorf("got = (%v, %v), want (2, true)", got, ok)
	}
	if _, ok := s.Get('z'); ok {
		t.Errorf("got ok = true for absent key, want false")
	}
}

func TestSet_PutUpdatesExisting(t *testing.T) {
	s := New[byte, int]()
	s.Put('a', 1)
	s.Put('a', 2)
	if s.Len() != 1 {
		t.Errorf("got Len() = %v, want 1", s.Len())
	}
	got, _ := s.Get('a')
	if got != 2 {
		t.Errorf("got = %v, want 2", got)
	}
}

func TestSet_KeysAscending(t *testing.T) {
	s := New[byte, int]()
	for i, c := range []byte("dbzace") {
		s.Put(c, i)
	}
	keys := s.Keys()
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Fatalf("keys not ascending: %v", keys)
		}
	}
}

func TestSet_EachAscending(t *testing.T) {
	s := New[byte, string]()
	s.Put('c', "C")
	s.Put('a', "A")
	s.Put('b', "B")
	var seen []byte
	s.Each(func(c byte, value string) {
		seen = append(seen, c)
	})
	want := []byte{'a', 'b', 'c'}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("got = %v, want %v", seen, want)
		}
	}
}

func TestSet_LenGrows(t *testing.T) {
	s := New[byte, int]()
	for i := 0; i < 200; i++ {
		s.Put(byte(i%256), i)
	}
	if s.Len() == 0 {
		t.Errorf("got Len() = 0, want > 0")
	}
}
