// Command measure profiles Trees.Tree against other sorted sets: it adds the same
// random keys to each, then removes a few of them, timing both phases.
package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/anacrolix/log"
	"github.com/dustin/go-humanize"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/g-m-twostay/ostree/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"github.com/pkg/errors"
)

var logger = log.Default.WithNames("measure")

type args struct {
	N      uint32 `arg:"-n" default:"1000000" help:"number of random keys to add"`
	Remove uint   `arg:"-r" default:"10" help:"number of keys to remove afterwards"`
	Seed   int64  `default:"16222662995487" help:"random seed"`
	Degree int    `default:"32" help:"degree of the B-tree"`
}

// set is what every contender is driven through.
type set struct {
	name   string
	add    func(int)
	remove func(int)
}

func main() {
	if err := mainErr(); err != nil {
		logger.Levelf(log.Error, "error in main: %v", err)
		os.Exit(1)
	}
}

func mainErr() error {
	var a args
	arg.MustParse(&a)
	if a.Degree < 2 {
		return errors.Errorf("degree %d, want at least 2", a.Degree)
	}
	if a.N == 0 && a.Remove > 0 {
		return errors.New("nothing to remove from")
	}
	logger.Levelf(log.Info, "seed %d, %s keys", a.Seed, humanize.Comma(int64(a.N)))
	r := rand.New(rand.NewSource(a.Seed))
	contents := make([]int, a.N)
	for i := range contents {
		contents[i] = r.Int()
	}
	toRemove := make([]int, 0, a.Remove+1)
	for range a.Remove {
		toRemove = append(toRemove, contents[r.Intn(len(contents))])
	}
	if len(toRemove) > 2 {
		// one key twice, the second removal misses.
		toRemove = append(toRemove, toRemove[2])
	}

	tree := Trees.New[int, uint32](0)
	bt := btree.NewOrderedG[int](a.Degree)
	ts := treeset.NewWithIntComparator()
	rb := llrb.New()
	sets := []set{
		{"Tree", func(v int) { tree.Add(v) }, func(v int) { tree.Remove(v) }},
		{"btree", func(v int) { bt.ReplaceOrInsert(v) }, func(v int) { bt.Delete(v) }},
		{"treeset", func(v int) { ts.Add(v) }, func(v int) { ts.Remove(v) }},
		{"llrb", func(v int) { rb.ReplaceOrInsert(llrb.Int(v)) }, func(v int) { rb.Delete(llrb.Int(v)) }},
	}

	for _, s := range sets {
		start := time.Now()
		for _, v := range contents {
			s.add(v)
		}
		logger.Levelf(log.Info, "%s add in %v", s.name, time.Since(start))
	}
	if err := tree.Check(); err != nil {
		return errors.Wrap(err, "after adding")
	}
	logger.Levelf(log.Info, "healthy with %s keys", humanize.Comma(int64(tree.Size())))

	for _, s := range sets {
		start := time.Now()
		for _, v := range toRemove {
			s.remove(v)
		}
		logger.Levelf(log.Info, "%s remove in %v", s.name, time.Since(start))
	}
	if err := tree.Check(); err != nil {
		return errors.Wrap(err, "after removing")
	}
	if tree.Len() != bt.Len() || tree.Len() != ts.Size() || tree.Len() != rb.Len() {
		return errors.Errorf("sizes disagree: Tree %d, btree %d, treeset %d, llrb %d", tree.Len(), bt.Len(), ts.Size(), rb.Len())
	}
	logger.Levelf(log.Info, "healthy with %s keys", humanize.Comma(int64(tree.Size())))
	return nil
}
