package Trees

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

type base[T any, S constraints.Unsigned] struct {
	root, free, size S         // free is the beginning of the linked list that contains all the free indexes; info[S]::l represents next.
	mods             uint      // bumped by every structural change; iterators compare against it.
	ifs              []info[S] // ifs[0] is the absent node. len(ifs)=number of slots+1.
	vs               []T       // vs[i-1] is the key of ifs[i].
	// returns negative number if first < second, 0 if first==second, positive number if first>second.
	compare func(T, T) int
}

func makeBase[T any, S constraints.Unsigned](hint S, compare func(T, T) int) base[T, S] {
	ifs := make([]info[S], 1, int(hint)+1)
	ifs[0].h = -1
	return base[T, S]{ifs: ifs, vs: make([]T, 0, hint), compare: compare}
}

// rotateLeft x and return the node that takes its place. The caller links the
// returned node into x's old parent.
// Time: O(1); Space: O(1)
func (u *base[T, S]) rotateLeft(x S) S {
	n := &u.ifs[x]
	y := n.r
	m := &u.ifs[y]
	m.p, n.p = n.p, y
	n.r = m.l
	if m.l != 0 {
		u.ifs[m.l].p = x
	}
	m.l = x
	u.fixHeight(x)
	u.fixHeight(y)
	m.cnt += n.cnt + 1
	return y
}

// rotateRight is the mirror of rotateLeft.
// Time: O(1); Space: O(1)
func (u *base[T, S]) rotateRight(x S) S {
	n := &u.ifs[x]
	y := n.l
	m := &u.ifs[y]
	m.p, n.p = n.p, y
	n.l = m.r
	if m.r != 0 {
		u.ifs[m.r].p = x
	}
	m.r = x
	u.fixHeight(x)
	u.fixHeight(y)
	n.cnt -= m.cnt + 1
	return y
}

func (u *base[T, S]) rotateLeftRight(x S) S {
	u.ifs[x].l = u.rotateLeft(u.ifs[x].l)
	return u.rotateRight(x)
}

func (u *base[T, S]) rotateRightLeft(x S) S {
	u.ifs[x].r = u.rotateRight(u.ifs[x].r)
	return u.rotateLeft(x)
}

// rebalance walks from x up to the root restoring the AVL property. After an
// insertion one rotation is enough, so inserting stops there.
func (u *base[T, S]) rebalance(x S, inserting bool) {
	for x != 0 {
		n := u.ifs[x]
		var sub S
		if lh, rh := u.height(n.l), u.height(n.r); lh == rh+2 {
			if l := u.ifs[n.l]; u.height(l.l) >= u.height(l.r) {
				sub = u.rotateRight(x)
			} else {
				sub = u.rotateLeftRight(x)
			}
		} else if rh == lh+2 {
			if r := u.ifs[n.r]; u.height(r.r) >= u.height(r.l) {
				sub = u.rotateLeft(x)
			} else {
				sub = u.rotateRightLeft(x)
			}
		}
		if sub != 0 {
			u.replaceChild(n.p, x, sub)
			if n.p != 0 {
				u.fixHeight(n.p)
			}
			if inserting {
				return
			}
			x = sub
		}
		u.fixHeight(x)
		x = u.ifs[x].p
	}
}

// countUp adds one to cnt of every strict ancestor of i entered from its left child.
func (u *base[T, S]) countUp(i S) {
	for p := u.ifs[i].p; p != 0; i, p = p, u.ifs[p].p {
		if u.ifs[p].l == i {
			u.ifs[p].cnt++
		}
	}
}

// countDown is the inverse of countUp. It must run before i is detached.
func (u *base[T, S]) countDown(i S) {
	for p := u.ifs[i].p; p != 0; i, p = p, u.ifs[p].p {
		if u.ifs[p].l == i {
			u.ifs[p].cnt--
		}
	}
}

// Add v to the tree. Returns false if v is already present.
// Panics with ErrNilKey if v is a nil interface value.
// Time: O(log n)
func (u *base[T, S]) Add(v T) bool {
	if any(v) == nil {
		panic(ErrNilKey)
	}
	var p S
	order := 0
	for curI := u.root; curI != 0; {
		if order = u.compare(v, u.vs[curI-1]); order < 0 {
			p, curI = curI, u.ifs[curI].l
		} else if order > 0 {
			p, curI = curI, u.ifs[curI].r
		} else {
			return false
		}
	}
	i := u.newNode(v, p)
	if p == 0 {
		u.root = i
	} else if order < 0 {
		u.ifs[p].l = i
	} else {
		u.ifs[p].r = i
	}
	u.countUp(i)
	u.size++
	u.mods++
	u.rebalance(p, true)
	return true
}

// Put is Add under the name used by Sets.Set.
func (u *base[T, S]) Put(v T) bool {
	return u.Add(v)
}

func (u *base[T, S]) find(v T) S {
	curI := u.root
	for curI != 0 {
		if order := u.compare(v, u.vs[curI-1]); order < 0 {
			curI = u.ifs[curI].l
		} else if order > 0 {
			curI = u.ifs[curI].r
		} else {
			break
		}
	}
	return curI
}

// Remove v from the tree. Returns false if v isn't present.
// When the node holding v has two children, its in-order successor's key is
// moved into it and the successor's slot is the one that gets freed.
// Time: O(log n)
func (u *base[T, S]) Remove(v T) bool {
	x := u.find(v)
	if x == 0 {
		return false
	}
	u.detach(x)
	return true
}

func (u *base[T, S]) detach(x S) {
	d := x
	if n := u.ifs[x]; n.l != 0 && n.r != 0 {
		d = u.first(n.r)
		u.vs[x-1] = u.vs[d-1]
	}
	u.countDown(d)
	n := u.ifs[d]
	c := n.l
	if c == 0 {
		c = n.r
	}
	u.replaceChild(n.p, d, c)
	u.addFree(d)
	u.size--
	u.mods++
	u.rebalance(n.p, false)
}

// Has element v.
// Time: O(log n); Space: O(1)
func (u *base[T, S]) Has(v T) bool {
	return u.find(v) != 0
}

// Size of the tree.
func (u *base[T, S]) Size() S {
	return u.size
}

// Len is Size as an int.
func (u *base[T, S]) Len() int {
	return int(u.size)
}

func (u *base[T, S]) Empty() bool {
	return u.size == 0
}

// Clear the tree, also zeroes the retained key slots if reset is true so they can be
// collected. O(1) if reset==false. O(size) if reset==true. Doesn't allocate new arrays.
func (u *base[T, S]) Clear(reset bool) {
	if reset {
		clear(u.vs)
	}
	u.ifs, u.vs = u.ifs[:1], u.vs[:0]
	u.root, u.free, u.size = 0, 0, 0
	u.mods++
}

// Select the element at index in ascending order, starting from 0.
// Returns an error wrapping ErrIndexOutOfRange unless 0<=index<Size().
// Time: O(log n); Space: O(1)
func (u *base[T, S]) Select(index int) (T, error) {
	if index < 0 || uint64(index) >= uint64(u.size) {
		return *new(T), errors.Wrapf(ErrIndexOutOfRange, "index %d, size %d", index, u.size)
	}
	k := S(index)
	for curI := u.root; ; {
		if n := &u.ifs[curI]; k < n.cnt {
			curI = n.l
		} else if k > n.cnt {
			k -= n.cnt + 1
			curI = n.r
		} else {
			return u.vs[curI-1], nil
		}
	}
}

// Get is Select that panics on an out of range index, like indexing a slice.
func (u *base[T, S]) Get(index int) T {
	v, err := u.Select(index)
	if err != nil {
		panic(err)
	}
	return v
}

// IndexOf v in ascending order, starting from 0. Returns -1 if v isn't present.
// Time: O(log n); Space: O(1)
func (u *base[T, S]) IndexOf(v T) int {
	curI := u.root
	if curI == 0 {
		return -1
	}
	rank := int(u.ifs[curI].cnt)
	for {
		n := &u.ifs[curI]
		if order := u.compare(v, u.vs[curI-1]); order < 0 {
			if n.l == 0 {
				return -1
			}
			rank -= int(n.cnt) - int(u.ifs[n.l].cnt)
			curI = n.l
		} else if order > 0 {
			if n.r == 0 {
				return -1
			}
			rank += 1 + int(u.ifs[n.r].cnt)
			curI = n.r
		} else {
			return rank
		}
	}
}

// RankOf v, starting from 0. If v isn't found, returns the rank as if v is added to the tree.
func (u *base[T, S]) RankOf(v T) (S, bool) {
	var ra S = 0
	for curI := u.root; curI != 0; {
		if order := u.compare(v, u.vs[curI-1]); order < 0 {
			curI = u.ifs[curI].l
		} else if order > 0 {
			ra += u.ifs[curI].cnt + 1
			curI = u.ifs[curI].r
		} else {
			return ra + u.ifs[curI].cnt, true
		}
	}
	return ra, false
}

// Min element of the tree.
func (u *base[T, S]) Min() (T, bool) {
	if i := u.first(u.root); i != 0 {
		return u.vs[i-1], true
	}
	return *new(T), false
}

// Max element of the tree.
func (u *base[T, S]) Max() (T, bool) {
	if i := u.last(u.root); i != 0 {
		return u.vs[i-1], true
	}
	return *new(T), false
}

// Take removes and returns the minimum.
func (u *base[T, S]) Take() (T, bool) {
	i := u.first(u.root)
	if i == 0 {
		return *new(T), false
	}
	v := u.vs[i-1]
	u.detach(i)
	return v, true
}

// Predecessor of v. If strict is true, result<v if found; otherwise, result<=v.
func (u *base[T, S]) Predecessor(v T, strict bool) (T, bool) {
	var p S
	for curI := u.root; curI != 0; {
		if order := u.compare(v, u.vs[curI-1]); order < 0 || strict && order == 0 {
			curI = u.ifs[curI].l
		} else {
			p = curI
			curI = u.ifs[curI].r
		}
	}
	if p == 0 {
		return *new(T), false
	}
	return u.vs[p-1], true
}

// Successor of v. If strict is true, result>v if found; otherwise, result>=v.
func (u *base[T, S]) Successor(v T, strict bool) (T, bool) {
	var p S
	for curI := u.root; curI != 0; {
		if order := u.compare(v, u.vs[curI-1]); order > 0 || strict && order == 0 {
			curI = u.ifs[curI].r
		} else {
			p = curI
			curI = u.ifs[curI].l
		}
	}
	if p == 0 {
		return *new(T), false
	}
	return u.vs[p-1], true
}

// Compact the arena so that it holds no free slots. Keys keep their order; the
// resulting shape is the same as From would build.
// Time: O(n)
func (u *base[T, S]) Compact() {
	vs := make([]T, 0, u.size)
	u.Range(func(v T) bool {
		vs = append(vs, v)
		return true
	})
	u.root, u.ifs = buildIfs(S(len(vs)))
	u.vs, u.free = vs, 0
	u.mods++
}

// buildIfs of size vsLen to represent a height balanced tree whose in-order is 1..vsLen,
// so that node i holds vs[i-1].
func buildIfs[S constraints.Unsigned](vsLen S) (root S, ifs []info[S]) {
	ifs = make([]info[S], int(vsLen)+1)
	ifs[0].h = -1
	if vsLen == 0 {
		return
	}
	type span struct{ lo, hi, p S }
	st := make([]span, 1, 64) //[left,right,parent]
	st[0] = span{1, vsLen, 0}
	order := make([]S, 0, vsLen)
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		mid := top.lo + (top.hi-top.lo)>>1
		ifs[mid].p, ifs[mid].cnt = top.p, mid-top.lo
		if top.p == 0 {
			root = mid
		} else if mid < top.p {
			ifs[top.p].l = mid
		} else {
			ifs[top.p].r = mid
		}
		if top.lo < mid {
			st = append(st, span{top.lo, mid - 1, mid})
		}
		if mid < top.hi {
			st = append(st, span{mid + 1, top.hi, mid})
		}
		order = append(order, mid)
	}
	for i := len(order) - 1; i > -1; i-- { // children are always visited after their parent.
		n := &ifs[order[i]]
		n.h = max(ifs[n.l].h, ifs[n.r].h) + 1
	}
	return
}

// buildBase from a strictly ascending slice. vs is handed to the tree.
func buildBase[T any, S constraints.Unsigned](vs []T, compare func(T, T) int) base[T, S] {
	for i := 1; i < len(vs); i++ {
		if compare(vs[i-1], vs[i]) >= 0 {
			panic(InvalidSliceError[T]{i, vs[i-1], vs[i]})
		}
	}
	if uint64(len(vs)) > uint64(^S(0)) {
		panic(errors.Wrapf(ErrFull, "%d nodes", len(vs)))
	}
	root, ifs := buildIfs(S(len(vs)))
	return base[T, S]{root: root, size: S(len(vs)), ifs: ifs, vs: vs, compare: compare}
}
