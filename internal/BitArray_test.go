package internal

import (
	"math/bits"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestBitArray(t *testing.T) {
	b := NewBitArray(bits.UintSize + 1)
	qt.Check(t, qt.Equals(b.Len(), 2*bits.UintSize))
	for _, i := range []int{0, 3, bits.UintSize - 1, bits.UintSize} {
		qt.Check(t, qt.IsFalse(b.Get(i)))
		b.Up(i)
		qt.Check(t, qt.IsTrue(b.Get(i)))
	}
	b.Down(3)
	qt.Check(t, qt.IsFalse(b.Get(3)))
	qt.Check(t, qt.IsTrue(b.Get(0)))
	qt.Check(t, qt.IsTrue(b.Get(bits.UintSize)))
	qt.Check(t, qt.Equals(NewBitArray(0).Len(), 0))
}
