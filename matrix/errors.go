// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..."; callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested size is negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside [0,n).
	// At/Set/Unset return this rather than panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNWeight signals a NaN weight, which cannot be ordered.
	ErrNaNWeight = errors.New("matrix: NaN weight")

	// ErrGraphNil indicates that a nil *core.Graph was passed to FromGraph.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrUnknownVertex indicates a vertex ID absent from the index.
	ErrUnknownVertex = errors.New("matrix: unknown vertex id")

	// ErrMultiEdge indicates that FromGraph met parallel edges, which a single
	// matrix cell cannot hold.
	ErrMultiEdge = errors.New("matrix: parallel edges cannot be represented")
)
