package sparse

import "testing"

func TestSparseSetInsertContains(t *testing.T) {
	s := NewSparseSet(100)

	if !s.IsEmpty() {
		t.Fatal("new set should be empty")
	}
	if s.Contains(5) {
		t.Fatal("empty set should not contain 5")
	}

	if !s.Insert(5) {
		t.Fatal("first insert should report true")
	}
	if s.Insert(5) {
		t.Fatal("second insert of the same value should report false")
	}
	if !s.Contains(5) {
		t.Fatal("set should contain 5 after insert")
	}
	if s.Size() != 1 {
		t.Fatalf("expected size 1, got %d", s.Size())
	}
}

func TestSparseSetPreservesInsertionOrder(t *testing.T) {
	s := NewSparseSet(10)
	order := []uint32{7, 2, 9, 2, 4}
	for _, v := range order {
		s.Insert(v)
	}

	want := []uint32{7, 2, 9, 4}
	got := s.Values()
	if len(got) != len(want) {
		t.Fatalf("expected %d values, got %d: %v", len(want), len(got), got)
	}
	for i, v := range want {
		if got[i] != v {
			t.Fatalf("expected Values()[%d] = %d, got %d", i, v, got[i])
		}
	}
}

func TestSparseSetRemove(t *testing.T) {
	s := NewSparseSet(10)
	s.Insert(1)
	s.Insert(2)
	s.Insert(3)

	s.Remove(2)
	if s.Contains(2) {
		t.Fatal("2 should be gone after Remove")
	}
	if !s.Contains(1) || !s.Contains(3) {
		t.Fatal("unrelated values should survive Remove")
	}
	if s.Size() != 2 {
		t.Fatalf("expected size 2, got %d", s.Size())
	}
}

func TestSparseSetClear(t *testing.T) {
	s := NewSparseSet(10)
	s.Insert(1)
	s.Insert(2)
	s.Clear()

	if !s.IsEmpty() {
		t.Fatal("set should be empty after Clear")
	}
	if s.Contains(1) {
		t.Fatal("cleared set should not contain previously inserted values")
	}
	if !s.Insert(1) {
		t.Fatal("value should be insertable again after Clear")
	}
}

func TestSparseSetOutOfRangeIsNotContained(t *testing.T) {
	s := NewSparseSet(4)
	if s.Contains(100) {
		t.Fatal("value past capacity should never be reported as contained")
	}
}

func TestSparseSetIter(t *testing.T) {
	s := NewSparseSet(10)
	for _, v := range []uint32{3, 1, 4, 1, 5} {
		s.Insert(v)
	}

	var seen []uint32
	s.Iter(func(v uint32) { seen = append(seen, v) })

	if len(seen) != s.Size() {
		t.Fatalf("Iter visited %d values, set has size %d", len(seen), s.Size())
	}
}
