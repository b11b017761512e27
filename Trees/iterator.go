package Trees

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Range calls f on the elements in ascending order until f returns false.
// Time: amortized O(1) per element; Space: O(1)
func (u *base[T, S]) Range(f func(T) bool) {
	for i := u.first(u.root); i != 0; i = u.next(i) {
		if !f(u.vs[i-1]) {
			return
		}
	}
}

// All elements ascending. Each call of the returned sequence starts over.
func (u *base[T, S]) All() iter.Seq[T] {
	return u.Range
}

// Backward is All in descending order.
func (u *base[T, S]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := u.last(u.root); i != 0; i = u.prev(i) {
			if !yield(u.vs[i-1]) {
				return
			}
		}
	}
}

// Iterator is a fail-fast cursor over a tree in ascending order:
//
//	for it := t.Iter(); it.Next(); {
//		v := it.Value()
//	}
//
// Once the tree is modified by anything other than the Iterator's own Remove, Next
// returns false and Err returns ErrConcurrentModification.
type Iterator[T any, S constraints.Unsigned] struct {
	u    *base[T, S]
	st   []S // nodes still to visit; the top is the next one.
	mods uint
	v    T    // last value returned by Next.
	has  bool // whether v is still in the tree.
	err  error
}

// Iter returns an Iterator positioned before the minimum.
func (u *base[T, S]) Iter() *Iterator[T, S] {
	it := &Iterator[T, S]{u: u, mods: u.mods}
	for curI := u.root; curI != 0; curI = u.ifs[curI].l {
		it.st = append(it.st, curI)
	}
	return it
}

func (it *Iterator[T, S]) check() bool {
	if it.err == nil && it.mods != it.u.mods {
		it.err = ErrConcurrentModification
	}
	return it.err == nil
}

// Next advances to the next element and reports whether there's one.
func (it *Iterator[T, S]) Next() bool {
	if !it.check() {
		return false
	}
	if len(it.st) == 0 {
		it.has = false
		return false
	}
	curI := it.st[len(it.st)-1]
	it.st = it.st[:len(it.st)-1]
	it.v, it.has = it.u.vs[curI-1], true
	for curI = it.u.ifs[curI].r; curI != 0; curI = it.u.ifs[curI].l {
		it.st = append(it.st, curI)
	}
	return true
}

// Value returned by the last successful Next.
func (it *Iterator[T, S]) Value() T {
	return it.v
}

// Remove the element returned by the last Next from the tree. The iteration
// carries on with the element after it.
func (it *Iterator[T, S]) Remove() error {
	if !it.check() {
		return it.err
	}
	if !it.has {
		return ErrIllegalState
	}
	it.u.Remove(it.v)
	it.mods, it.has = it.u.mods, false
	// a removal may rotate or reuse nodes on the stack, so find the successor of v again.
	it.st = it.st[:0]
	for curI := it.u.root; curI != 0; {
		if it.u.compare(it.v, it.u.vs[curI-1]) < 0 {
			it.st = append(it.st, curI)
			curI = it.u.ifs[curI].l
		} else {
			curI = it.u.ifs[curI].r
		}
	}
	return nil
}

// Err returns ErrConcurrentModification if the iteration was cut short by a
// modification of the tree, nil otherwise.
func (it *Iterator[T, S]) Err() error {
	return it.err
}
