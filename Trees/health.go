package Trees

import (
	"github.com/g-m-twostay/ostree/Queues"
	"github.com/g-m-twostay/ostree/internal"
	"github.com/pkg/errors"
)

// Check the tree's structure without trusting any maintained metadata: the links
// must form a tree whose parent links agree with the child links, and every
// node's height, balance, left subtree size and key order are recomputed from
// scratch. Returns nil if all hold, otherwise an error wrapping ErrCorrupt that
// names the first bad node.
// It's iterative, so it doesn't depend on the height being correct.
// Time: O(n); Space: O(n)
func (u *base[T, S]) Check() error {
	if len(u.ifs) == 0 || u.ifs[0] != (info[S]{h: -1}) {
		return errors.Wrap(ErrCorrupt, "absent node was written to")
	}
	if u.root == 0 {
		if u.size != 0 {
			return errors.Wrapf(ErrCorrupt, "no root but size %d", u.size)
		}
		return nil
	}
	if int(u.root) >= len(u.ifs) {
		return errors.Wrapf(ErrCorrupt, "root %d outside of %d slots", u.root, len(u.ifs)-1)
	}
	if p := u.ifs[u.root].p; p != 0 {
		return errors.Wrapf(ErrCorrupt, "root %d has parent %d", u.root, p)
	}

	// level order walk. Every node is queued at most once, which also proves there's no cycle.
	seen := internal.NewBitArray(len(u.ifs))
	seen.Up(int(u.root))
	q := Queues.MakeArrayQueue[S](uint(u.size))
	q.Push(u.root)
	order := make([]S, 0, u.size)
	for !q.Empty() {
		curI, _ := q.Pop()
		order = append(order, curI)
		n := u.ifs[curI]
		for _, c := range [2]S{n.l, n.r} {
			switch {
			case c == 0:
				continue
			case int(c) >= len(u.ifs):
				return errors.Wrapf(ErrCorrupt, "node %d links to %d outside of %d slots", curI, c, len(u.ifs)-1)
			case seen.Get(int(c)):
				return errors.Wrapf(ErrCorrupt, "node %d is reached twice, from %d", c, curI)
			case u.ifs[c].p != curI:
				return errors.Wrapf(ErrCorrupt, "node %d has parent %d, want %d", c, u.ifs[c].p, curI)
			}
			seen.Up(int(c))
			q.Push(c)
		}
	}
	if len(order) != int(u.size) {
		return errors.Wrapf(ErrCorrupt, "%d nodes reachable, size %d", len(order), u.size)
	}

	// children come after their parents in order, so walking it backwards sees
	// every subtree before its root.
	hs := make([]int, len(u.ifs))
	szs := make([]int, len(u.ifs))
	mins := make([]S, len(u.ifs)) // node holding the least key of the subtree.
	maxs := make([]S, len(u.ifs))
	hs[0] = -1
	for i := len(order) - 1; i > -1; i-- {
		curI := order[i]
		n := u.ifs[curI]
		lh, rh := hs[n.l], hs[n.r]
		if h := max(lh, rh) + 1; int(n.h) != h {
			return errors.Wrapf(ErrCorrupt, "node %d (%v) has height %d, want %d", curI, u.vs[curI-1], n.h, h)
		} else {
			hs[curI] = h
		}
		if lh-rh > 1 || rh-lh > 1 {
			return errors.Wrapf(ErrCorrupt, "node %d (%v) is unbalanced: left height %d, right height %d", curI, u.vs[curI-1], lh, rh)
		}
		if int(n.cnt) != szs[n.l] {
			return errors.Wrapf(ErrCorrupt, "node %d (%v) has count %d, want %d", curI, u.vs[curI-1], n.cnt, szs[n.l])
		}
		szs[curI] = szs[n.l] + szs[n.r] + 1
		mins[curI], maxs[curI] = curI, curI
		if n.l != 0 {
			if m := maxs[n.l]; u.compare(u.vs[m-1], u.vs[curI-1]) >= 0 {
				return errors.Wrapf(ErrCorrupt, "node %d (%v) has %v in its left subtree", curI, u.vs[curI-1], u.vs[m-1])
			}
			mins[curI] = mins[n.l]
		}
		if n.r != 0 {
			if m := mins[n.r]; u.compare(u.vs[m-1], u.vs[curI-1]) <= 0 {
				return errors.Wrapf(ErrCorrupt, "node %d (%v) has %v in its right subtree", curI, u.vs[curI-1], u.vs[m-1])
			}
			maxs[curI] = maxs[n.r]
		}
	}
	return nil
}

// Healthy returns whether Check passes.
func (u *base[T, S]) Healthy() bool {
	return u.Check() == nil
}

// Corrupt returns whether the tree has corrupt structures, the negation of Healthy.
func (u *base[T, S]) Corrupt() bool {
	return u.Check() != nil
}
