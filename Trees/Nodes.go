package Trees

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// A node in the Tree.
// ifs[0] is the absent node: h=-1, cnt=0, all links 0. It's never written to.
type info[S constraints.Unsigned] struct {
	p, l, r S // parent, left and right child; 0 means absent. p isn't an owner.
	cnt     S // number of nodes in the left subtree.
	h       int8
}

// height of node i; -1 when i is absent.
func (u *base[T, S]) height(i S) int8 {
	return u.ifs[i].h
}

func (u *base[T, S]) fixHeight(i S) {
	n := &u.ifs[i]
	n.h = max(u.ifs[n.l].h, u.ifs[n.r].h) + 1
}

func (u *base[T, S]) setLeft(n, c S) {
	u.ifs[n].l = c
	if c != 0 {
		u.ifs[c].p = n
	}
}

func (u *base[T, S]) setRight(n, c S) {
	u.ifs[n].r = c
	if c != 0 {
		u.ifs[c].p = n
	}
}

// replaceChild puts c where old was under p. p==0 means old was the root.
func (u *base[T, S]) replaceChild(p, old, c S) {
	if p == 0 {
		u.root = c
		if c != 0 {
			u.ifs[c].p = 0
		}
	} else if u.ifs[p].l == old {
		u.setLeft(p, c)
	} else {
		u.setRight(p, c)
	}
}

// newNode holding v under parent p. Freed indexes are reused before the arrays grow.
func (u *base[T, S]) newNode(v T, p S) S {
	if i := u.popFree(); i != 0 {
		u.ifs[i] = info[S]{p: p}
		u.vs[i-1] = v
		return i
	}
	i := S(len(u.ifs))
	if int(i) != len(u.ifs) || i == 0 {
		panic(errors.Wrapf(ErrFull, "%d nodes", len(u.ifs)-1))
	}
	u.ifs = append(u.ifs, info[S]{p: p})
	u.vs = append(u.vs, v)
	return i
}

// addFree index once. The key slot is zeroed so that it doesn't hold on to memory.
func (u *base[T, S]) addFree(a S) {
	u.ifs[a] = info[S]{l: u.free}
	u.vs[a-1] = *new(T)
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[T, S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].l
	return b
}

func (u *base[T, S]) first(i S) S {
	if i != 0 {
		for u.ifs[i].l != 0 {
			i = u.ifs[i].l
		}
	}
	return i
}

func (u *base[T, S]) last(i S) S {
	if i != 0 {
		for u.ifs[i].r != 0 {
			i = u.ifs[i].r
		}
	}
	return i
}

// next node of i in in-order, found through parent links.
func (u *base[T, S]) next(i S) S {
	if r := u.ifs[i].r; r != 0 {
		return u.first(r)
	}
	for p := u.ifs[i].p; p != 0; i, p = p, u.ifs[p].p {
		if u.ifs[p].l == i {
			return p
		}
	}
	return 0
}

func (u *base[T, S]) prev(i S) S {
	if l := u.ifs[i].l; l != 0 {
		return u.last(l)
	}
	for p := u.ifs[i].p; p != 0; i, p = p, u.ifs[p].p {
		if u.ifs[p].r == i {
			return p
		}
	}
	return 0
}
