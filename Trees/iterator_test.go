package Trees

import (
	"slices"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestIterator(t *testing.T) {
	tree := New[int, uint16](0)
	content := fill(t, tree, 2000)
	want := make([]int, 0, len(content))
	for v := range content {
		want = append(want, v)
	}
	slices.Sort(want)

	got := make([]int, 0, len(want))
	it := tree.Iter()
	for it.Next() {
		got = append(got, it.Value())
	}
	qt.Assert(t, qt.IsNil(it.Err()))
	qt.Check(t, qt.DeepEquals(got, want))
	qt.Check(t, qt.IsFalse(it.Next()))

	// All starts over on every call.
	for range 2 {
		qt.Check(t, qt.DeepEquals(slices.Collect(tree.All()), want))
	}
	slices.Reverse(want)
	qt.Check(t, qt.DeepEquals(slices.Collect(tree.Backward()), want))
}

func TestIterator_Empty(t *testing.T) {
	it := New[int, uint8](0).Iter()
	qt.Check(t, qt.IsFalse(it.Next()))
	qt.Check(t, qt.IsNil(it.Err()))
	qt.Check(t, qt.Equals(it.Remove(), ErrIllegalState))
}

func TestIterator_FailFast(t *testing.T) {
	tree := From[int, uint8]([]int{1, 2, 3, 4})
	it := tree.Iter()
	qt.Assert(t, qt.IsTrue(it.Next()))
	tree.Add(5)
	qt.Check(t, qt.IsFalse(it.Next()))
	qt.Check(t, qt.ErrorIs(it.Err(), ErrConcurrentModification))
	qt.Check(t, qt.ErrorIs(it.Remove(), ErrConcurrentModification))

	// a failed Add or Remove isn't a modification.
	it = tree.Iter()
	tree.Add(5)
	tree.Remove(6)
	qt.Check(t, qt.IsTrue(it.Next()))
	qt.Check(t, qt.IsNil(it.Err()))
}

func TestIterator_Remove(t *testing.T) {
	tree := New[int, uint16](0)
	for i := range 1000 {
		tree.Add(i)
	}
	it := tree.Iter()
	qt.Check(t, qt.Equals(it.Remove(), ErrIllegalState))
	var kept []int
	for it.Next() {
		if v := it.Value(); v%3 != 0 {
			qt.Assert(t, qt.IsNil(it.Remove()))
			qt.Assert(t, qt.Equals(it.Remove(), ErrIllegalState))
		} else {
			kept = append(kept, v)
		}
	}
	qt.Assert(t, qt.IsNil(it.Err()))
	qt.Check(t, qt.IsNil(tree.Check()))
	qt.Check(t, qt.DeepEquals(tree.Slice(), kept))
	qt.Check(t, qt.Equals(tree.Len(), 334))

	// removing everything through the iterator empties the tree.
	for it = tree.Iter(); it.Next(); {
		qt.Assert(t, qt.IsNil(it.Remove()))
	}
	qt.Check(t, qt.IsTrue(tree.Empty()))
	qt.Check(t, qt.IsNil(tree.Check()))
}

func TestRange_Stop(t *testing.T) {
	tree := From[int, uint8]([]int{1, 2, 3, 4, 5})
	var got []int
	for v := range tree.All() {
		if v > 3 {
			break
		}
		got = append(got, v)
	}
	qt.Check(t, qt.DeepEquals(got, []int{1, 2, 3}))
	got = got[:0]
	for v := range tree.Backward() {
		if v < 4 {
			break
		}
		got = append(got, v)
	}
	qt.Check(t, qt.DeepEquals(got, []int{5, 4}))
}
