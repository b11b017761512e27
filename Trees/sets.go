package Trees

import "github.com/g-m-twostay/ostree/Sets"

// PutAll elements of src. src may be the tree itself.
func (u *base[T, S]) PutAll(src Sets.Set[T]) (n int) {
	for _, v := range collect(src) {
		if u.Add(v) {
			n++
		}
	}
	return
}

// RemoveAll elements of src. src may be the tree itself.
func (u *base[T, S]) RemoveAll(src Sets.Set[T]) (n int) {
	for _, v := range collect(src) {
		if u.Remove(v) {
			n++
		}
	}
	return
}

// RetainAll removes every element that keep doesn't have.
func (u *base[T, S]) RetainAll(keep Sets.Set[T]) (n int) {
	var drop []T
	u.Range(func(v T) bool {
		if !keep.Has(v) {
			drop = append(drop, v)
		}
		return true
	})
	for _, v := range drop {
		if u.Remove(v) {
			n++
		}
	}
	return
}

func (u *base[T, S]) ContainsAll(src Sets.Set[T]) bool {
	all := true
	src.Range(func(v T) bool {
		all = u.Has(v)
		return all
	})
	return all
}

func (u *base[T, S]) Eq(other Sets.Set[T]) bool {
	return other.Len() == u.Len() && u.ContainsAll(other)
}

// Slice of all elements, ascending.
func (u *base[T, S]) Slice() []T {
	vs := make([]T, 0, u.size)
	u.Range(func(v T) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

// collect elements of s first so that s may be the set being modified.
func collect[T any](s Sets.Set[T]) []T {
	vs := make([]T, 0, s.Len())
	s.Range(func(v T) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}
