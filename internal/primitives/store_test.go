package primitives

import "testing"

func TestStoreAppendAndAt(t *testing.T) {
	s := NewStore[int](4)
	s.Append(1)
	s.Append(2)
	s.Append(3)
	if s.Len() != 3 {
		t.Fatalf("got Len=%d want 3", s.Len())
	}
	for i, want := range []int{1, 2, 3} {
		if got := s.At(i); got != want {
			t.Errorf("At(%d)=%d want %d", i, got, want)
		}
	}
}

func TestStoreInsertShiftsUp(t *testing.T) {
	s := NewStore[string](0)
	s.Append("a")
	s.Append("c")
	s.Insert(1, "b")
	want := []string{"a", "b", "c"}
	for i, w := range want {
		if got := s.At(i); got != w {
			t.Errorf("At(%d)=%q want %q", i, got, w)
		}
	}

	// Insert at Len appends.
	s.Insert(3, "d")
	if got := s.At(3); got != "d" {
		t.Errorf("At(3)=%q want d", got)
	}

	// Insert at 0 shifts everything.
	s.Insert(0, "z")
	if got := s.At(0); got != "z" {
		t.Errorf("At(0)=%q want z", got)
	}
	if got := s.At(1); got != "a" {
		t.Errorf("At(1)=%q want a", got)
	}
}

func TestStoreRemoveAtShiftsDown(t *testing.T) {
	s := NewStore[int](0)
	for i := 0; i < 5; i++ {
		s.Append(i)
	}
	if got := s.RemoveAt(1); got != 1 {
		t.Errorf("RemoveAt(1)=%d want 1", got)
	}
	want := []int{0, 2, 3, 4}
	if s.Len() != len(want) {
		t.Fatalf("got Len=%d want %d", s.Len(), len(want))
	}
	for i, w := range want {
		if got := s.At(i); got != w {
			t.Errorf("At(%d)=%d want %d", i, got, w)
		}
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore[int](0)
	s.Append(1)
	s.Append(2)
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("got Len=%d want 0", s.Len())
	}
	s.Append(9)
	if got := s.At(0); got != 9 {
		t.Errorf("At(0)=%d want 9", got)
	}
}

func TestStoreIndexFunc(t *testing.T) {
	s := NewStore[int](0)
	s.Append(10)
	s.Append(20)
	s.Append(20)
	if got := s.IndexFunc(func(v int) bool { return v == 20 }); got != 1 {
		t.Errorf("IndexFunc=%d want 1 (first match)", got)
	}
	if got := s.IndexFunc(func(v int) bool { return v == 99 }); got != -1 {
		t.Errorf("IndexFunc=%d want -1", got)
	}
}

func TestStoreCloneIsIndependent(t *testing.T) {
	s := NewStore[[]int](0)
	s.Append([]int{1})
	c := s.Clone(func(v []int) []int {
		out := make([]int, len(v))
		copy(out, v)
		return out
	})

	s.At(0)[0] = 99
	if got := c.At(0)[0]; got != 1 {
		t.Errorf("clone observed source mutation: got %d want 1", got)
	}

	c.Append([]int{2})
	if s.Len() != 1 {
		t.Errorf("source observed clone append: Len=%d want 1", s.Len())
	}
}

func TestStoreRestore(t *testing.T) {
	s := NewStore[int](0)
	s.Append(1)
	s.Append(2)
	snap := s.Clone(func(v int) int { return v })

	s.RemoveAt(0)
	s.Append(7)
	s.Restore(snap)

	if s.Len() != 2 {
		t.Fatalf("got Len=%d want 2", s.Len())
	}
	if s.At(0) != 1 || s.At(1) != 2 {
		t.Errorf("got [%d %d] want [1 2]", s.At(0), s.At(1))
	}
}

func TestStoreCopyInto(t *testing.T) {
	s := NewStore[int](0)
	s.Append(1)
	s.Append(2)
	dst := []int{0, 0, 0, 0}
	s.CopyInto(dst, 1)
	want := []int{0, 1, 2, 0}
	for i, w := range want {
		if dst[i] != w {
			t.Errorf("dst[%d]=%d want %d", i, dst[i], w)
		}
	}
}
