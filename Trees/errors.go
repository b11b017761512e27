package Trees

import (
	"fmt"

	"github.com/pkg/errors"
)

// Argument errors
var (
	// ErrNilKey is the panic value of Add when given a nil interface key.
	ErrNilKey = errors.New("nil key")

	// ErrIndexOutOfRange indicates that an index isn't in [0, Size()).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrFull indicates that the index type S can't address another node.
	ErrFull = errors.New("index type exhausted")
)

// Iteration errors
var (
	// ErrConcurrentModification indicates that the tree changed behind an Iterator.
	ErrConcurrentModification = errors.New("tree modified during iteration")

	// ErrIllegalState indicates Iterator.Remove without a current element.
	ErrIllegalState = errors.New("no current element")
)

// ErrCorrupt is wrapped by every error Check returns.
var ErrCorrupt = errors.New("corrupt tree")

// InvalidSliceError is the panic value of From and FromC when the input isn't
// strictly ascending. Prev=vs[I-1] and Next=vs[I].
type InvalidSliceError[T any] struct {
	I          int
	Prev, Next T
}

func (e InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("slice isn't strictly ascending at %d: %v followed by %v", e.I, e.Prev, e.Next)
}
