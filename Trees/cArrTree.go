package Trees

import (
	"golang.org/x/exp/constraints"
)

// CTree is the version of Tree for keys without a built-in order. Keys are
// ordered by the comparison function given at construction, which must be a
// total order: keys comparing 0 are treated as the same element.
type CTree[T any, S constraints.Unsigned] struct {
	base[T, S]
}

// NewC is the CTree equivalence of New.
// cmp returns negative number if first < second, 0 if first==second, positive number if first>second. see cmp.Compare for an example.
func NewC[T any, S constraints.Unsigned](hint S, cmp func(T, T) int) *CTree[T, S] {
	return &CTree[T, S]{makeBase[T, S](hint, cmp)}
}

// FromC is the CTree equivalence of From. vs must be strictly ascending under cmp.
func FromC[T any, S constraints.Unsigned](vs []T, cmp func(T, T) int) *CTree[T, S] {
	return &CTree[T, S]{buildBase[T, S](vs, cmp)}
}
