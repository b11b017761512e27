package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Tree is an order statistic tree over cmp.Ordered keys. It's an AVL tree whose
// nodes also count their left subtrees, so besides Add, Remove and Has it finds
// the k-th smallest element (Select) and the position of an element (IndexOf) in
// O(log n).
// Nodes live in an array and are addressed by indexes of type S, so S must be
// wide enough to count every element ever held at once. A Tree must be created
// by New or From; the zero value isn't usable.
// A Tree isn't safe for concurrent use.
type Tree[T cmp.Ordered, S constraints.Unsigned] struct {
	base[T, S]
}

// New empty tree with room for hint elements before the arrays grow.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *Tree[T, S] {
	return &Tree[T, S]{makeBase[T, S](hint, cmp.Compare[T])}
}

// From a given value array, directly build a tree. The array is handed to the tree and it mustn't be modified by the caller later.
// vs must be strictly ascending, otherwise From panics with InvalidSliceError.
// Time: O(n)
func From[T cmp.Ordered, S constraints.Unsigned](vs []T) *Tree[T, S] {
	return &Tree[T, S]{buildBase[T, S](vs, cmp.Compare[T])}
}
