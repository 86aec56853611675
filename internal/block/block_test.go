package block

import (
	"errors"
	"testing"
)

func TestBlockAppendRespectsCapacity(t *testing.T) {
	b := New[int](2)

	if !b.Append(1) || !b.Append(2) {
		t.Fatalf("expected first two appends to succeed")
	}
	if !b.Full() {
		t.Fatalf("expected block to be full after %d appends", b.Cap())
	}
	if b.Append(3) {
		t.Fatalf("append on full block should fail")
	}
	if got := b.Len(); got != 2 {
		t.Fatalf("expected len 2 after rejected append, got %d", got)
	}
	if got, err := b.PeekLast(); err != nil || got != 2 {
		t.Fatalf("rejected append must not change last element, got %v,%v", got, err)
	}
}

func TestBlockRemoveFrontKeepsOrder(t *testing.T) {
	b := New[string](3)
	b.Append("a")
	b.Append("b")
	b.Append("c")

	expected := []string{"a", "b", "c"}
	for i, want := range expected {
		got, ok := b.RemoveFront()
		if !ok || got != want {
			t.Fatalf("remove %d expected %q got %q,%v", i, want, got, ok)
		}
	}

	if _, ok := b.RemoveFront(); ok {
		t.Fatalf("expected RemoveFront to fail on empty block")
	}
	if !b.Append("d") {
		t.Fatalf("drained block should accept new elements")
	}
}

func TestBlockRemoveFrontZeroesVacatedSlot(t *testing.T) {
	b := New[*int](2)
	one, two := 1, 2
	b.Append(&one)
	b.Append(&two)

	b.RemoveFront()

	if tail := b.items[:cap(b.items)][1]; tail != nil {
		t.Fatalf("vacated slot should be zeroed, got %v", tail)
	}
}

func TestBlockPeekOnEmpty(t *testing.T) {
	b := New[int](1)

	if _, ok := b.PeekFirst(); ok {
		t.Fatalf("expected PeekFirst to fail on empty block")
	}
	if _, err := b.PeekLast(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty from PeekLast, got %v", err)
	}
}

func TestBlockPeekFirstAndLast(t *testing.T) {
	b := New[int](4)
	b.Append(7)
	b.Append(8)
	b.Append(9)

	if got, ok := b.PeekFirst(); !ok || got != 7 {
		t.Fatalf("expected PeekFirst 7,true got %v,%v", got, ok)
	}
	if got, err := b.PeekLast(); err != nil || got != 9 {
		t.Fatalf("expected PeekLast 9,nil got %v,%v", got, err)
	}
	if got := b.At(1); got != 8 {
		t.Fatalf("expected At(1) 8, got %d", got)
	}
	if b.Len() != 3 {
		t.Fatalf("peeking must not remove elements, len %d", b.Len())
	}
}

func TestBlockAtOutOfRangePanics(t *testing.T) {
	b := New[int](2)
	b.Append(1)

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for offset past the last element")
		}
	}()

	b.At(1)
}

func TestNewInvalidCapacityPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for zero capacity")
		}
	}()

	New[int](0)
}

func TestBlockClearKeepsLink(t *testing.T) {
	b := New[int](2)
	next := New[int](2)
	b.SetNext(next)
	b.Append(1)
	b.Append(2)

	b.Clear()

	if b.Len() != 0 {
		t.Fatalf("expected empty block after clear, got len %d", b.Len())
	}
	if b.Cap() != 2 {
		t.Fatalf("clear must keep capacity, got %d", b.Cap())
	}
	if b.Next() != next {
		t.Fatalf("clear must not touch the forward link")
	}
}

func TestBlockAll(t *testing.T) {
	b := New[int](3)
	b.Append(1)
	b.Append(2)
	b.Append(3)

	values := []int{}
	for v := range b.All() {
		values = append(values, v)
		if v == 2 {
			break
		}
	}

	if len(values) != 2 || values[0] != 1 || values[1] != 2 {
		t.Fatalf("unexpected values from All with early break: %v", values)
	}
}
