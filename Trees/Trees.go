package Trees

import (
	"iter"

	"github.com/g-m-twostay/ostree/Sets"
	"golang.org/x/exp/constraints"
)

// OrderStat is what Tree and CTree implement: a sorted set that also answers
// order statistic queries.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Min on
// an empty tree, the return value will be (x T, false bool), and x
// is the zero value of T.
// Every index is 0 based.
type OrderStat[T any, S constraints.Unsigned] interface {
	Sets.OrderedSet[T]
	//Add v to the tree. Returns false if v is already present.
	Add(v T) bool
	//Select the element at index. The error wraps ErrIndexOutOfRange unless 0<=index<Size().
	Select(index int) (T, error)
	//RankOf v: number of elements less than v, and whether v is present.
	RankOf(v T) (S, bool)
	Size() S
	Empty() bool
	//Clear the tree. Zeroes the retained key slots if reset is true.
	Clear(reset bool)
	Min() (T, bool)
	Max() (T, bool)
	//Predecessor of v. If strict is true, result<v if found; otherwise, result<=v.
	Predecessor(v T, strict bool) (T, bool)
	//Successor of v. If strict is true, result>v if found; otherwise, result>=v.
	Successor(v T, strict bool) (T, bool)
	//All elements ascending. The tree mustn't be modified while the sequence is being consumed.
	All() iter.Seq[T]
	//Backward is All in descending order.
	Backward() iter.Seq[T]
	//Iter returns a fail-fast cursor over the elements ascending.
	Iter() *Iterator[T, S]
	Compact()
	//Check recomputes every node's metadata from scratch and reports the first inconsistency.
	//It's meant for tests; nothing else in the package calls it.
	Check() error
	Healthy() bool
	//Corrupt returns whether the tree has corrupt structures.
	Corrupt() bool
}

var (
	_ OrderStat[int, uint]    = (*Tree[int, uint])(nil)
	_ OrderStat[[]byte, uint] = (*CTree[[]byte, uint])(nil)
)
