package Trees

import (
	"slices"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

var (
	bAddN uint32 = 100000
	bQryN        = bAddN / 2
)

func keys(n uint32) []int {
	all := make([]int, n)
	for i := range all {
		all[i] = rg.Int()
	}
	return all
}

func sorted(n uint32) []int {
	all := keys(n)
	slices.Sort(all)
	return slices.Compact(all)
}

func BenchmarkAdd0(b *testing.B) {
	all := keys(bAddN)
	b.ResetTimer()
	for range b.N {
		tree := New[int, uint32](0)
		for _, v := range all {
			tree.Add(v)
		}
	}
}

func BenchmarkAdd1(b *testing.B) {
	all := keys(bAddN)
	b.ResetTimer()
	for range b.N {
		tree := New[int, uint32](bAddN)
		for _, v := range all {
			tree.Add(v)
		}
	}
}

func BenchmarkFrom(b *testing.B) {
	all := sorted(bAddN)
	buf := make([]int, len(all))
	b.ResetTimer()
	for range b.N {
		copy(buf, all)
		From[int, uint32](buf)
	}
}

func BenchmarkRemove(b *testing.B) {
	all := sorted(bAddN)
	order := slices.Clone(all)
	rg.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	buf := make([]int, len(all))
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		copy(buf, all)
		tree := From[int, uint32](buf)
		b.StartTimer()
		for _, v := range order {
			tree.Remove(v)
		}
	}
}

var sideEff int

func BenchmarkSelect(b *testing.B) {
	tree := From[int, uint32](sorted(bAddN))
	b.ResetTimer()
	for i := range b.N {
		sideEff = tree.Get(i % tree.Len())
	}
}

func BenchmarkIndexOf(b *testing.B) {
	all := sorted(bAddN)
	tree := From[int, uint32](slices.Clone(all))
	b.ResetTimer()
	for i := range b.N {
		sideEff = tree.IndexOf(all[i%len(all)])
	}
}

func BenchmarkBTree_Add(b *testing.B) {
	all := keys(bAddN)
	b.ResetTimer()
	for range b.N {
		ref := btree.NewOrderedG[int](32)
		for _, v := range all {
			ref.ReplaceOrInsert(v)
		}
	}
}

func BenchmarkTreeSet_Add(b *testing.B) {
	all := keys(bAddN)
	b.ResetTimer()
	for range b.N {
		ref := treeset.NewWithIntComparator()
		for _, v := range all {
			ref.Add(v)
		}
	}
}

func BenchmarkLLRB_Add(b *testing.B) {
	all := keys(bAddN)
	b.ResetTimer()
	for range b.N {
		ref := llrb.New()
		for _, v := range all {
			ref.ReplaceOrInsert(llrb.Int(v))
		}
	}
}

var __r1 bool

// membership against the hash maps used elsewhere for comparisons. Half of the
// queries miss.
func BenchmarkHas(b *testing.B) {
	all := keys(bAddN)
	qry := append(slices.Clone(all[:bQryN]), keys(bQryN)...)
	b.Run("Tree", func(b *testing.B) {
		tree := New[int, uint32](bAddN)
		for _, v := range all {
			tree.Add(v)
		}
		b.ResetTimer()
		for i := range b.N {
			__r1 = tree.Has(qry[i%len(qry)])
		}
	})
	b.Run("BTree", func(b *testing.B) {
		ref := btree.NewOrderedG[int](32)
		for _, v := range all {
			ref.ReplaceOrInsert(v)
		}
		b.ResetTimer()
		for i := range b.N {
			__r1 = ref.Has(qry[i%len(qry)])
		}
	})
	b.Run("LLRB", func(b *testing.B) {
		ref := llrb.New()
		for _, v := range all {
			ref.ReplaceOrInsert(llrb.Int(v))
		}
		b.ResetTimer()
		for i := range b.N {
			__r1 = ref.Has(llrb.Int(qry[i%len(qry)]))
		}
	})
	b.Run("haxmap", func(b *testing.B) {
		ref := haxmap.New[int, struct{}]()
		for _, v := range all {
			ref.Set(v, struct{}{})
		}
		b.ResetTimer()
		for i := range b.N {
			_, __r1 = ref.Get(qry[i%len(qry)])
		}
	})
	b.Run("hashmap", func(b *testing.B) {
		ref := hashmap.New[int, struct{}]()
		for _, v := range all {
			ref.Set(v, struct{}{})
		}
		b.ResetTimer()
		for i := range b.N {
			_, __r1 = ref.Get(qry[i%len(qry)])
		}
	})
}
