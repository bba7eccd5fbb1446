// Package cell implements the possibility-set abstraction at a single board
// position: which of N tile indices are still possible there. Three
// interchangeable representations are provided; all satisfy the same
// contract, differing only in performance characteristics.
package cell

import "fmt"

// MaxTiles is the capacity of the Array and Bitset representations: a
// possibility set packs into a 128-bit word, so an index fits in a small
// integer and constraints can consult bit-set representations directly.
// The Dyn representation has no such cap.
const MaxTiles = 128

// Kind selects which Cell representation a board constructs.
type Kind int

const (
	// KindBitset is the default: a 128-bit word pair, fastest for the
	// set-intersection-shaped work the constraint protocol does.
	KindBitset Kind = iota
	// KindArray is a packed array with a length prefix; fastest when the
	// tile count is small and known at construction time.
	KindArray
	// KindDyn is a growable list of indices, for tile counts that exceed
	// the 128-tile cap of the other two representations.
	KindDyn
)

// View is a read-only look at a cell's possibility set.
type View interface {
	// Entropy is the cardinality of the possibility set.
	Entropy() int
	// Possible returns the current possibility set in ascending tile-index
	// order. Stable across repeated calls between mutations.
	Possible() []int
}

// Cell is the mutable possibility set of tile indices at one board
// position. Invariants: non-empty before any step begins; entropy equals
// the set's cardinality; collapsed iff entropy == 1.
type Cell interface {
	View
	// Collapse sets the possibility set to {index}. Callers guarantee
	// index was previously possible.
	Collapse(index int)
	// SetIndices replaces the possibility set with the given sequence.
	// Duplicates are ignored; order is irrelevant — the representation
	// always reports Possible() in ascending order regardless of the
	// order indices are supplied in.
	SetIndices(indices []int)
	// CollapsedIndex returns the single remaining index. Undefined
	// (caller-guarded) when the cell is not collapsed.
	CollapsedIndex() int
	// IsCollapsed reports whether entropy is 1.
	IsCollapsed() bool
	// Clone returns an independent copy of the cell.
	Clone() Cell
}

// New constructs a cell of the given kind with n tile indices possible
// (0..n-1). Returns an error if n exceeds the representation's capacity.
func New(kind Kind, n int) (Cell, error) {
	switch kind {
	case KindBitset:
		return NewBitset(n)
	case KindArray:
		return NewArray(n)
	case KindDyn:
		return NewDyn(n), nil
	default:
		return nil, fmt.Errorf("cell: unknown kind %d", kind)
	}
}

// Capacity returns the maximum tile count the given kind supports, or -1
// if the kind has no fixed cap.
func Capacity(kind Kind) int {
	switch kind {
	case KindBitset, KindArray:
		return MaxTiles
	default:
		return -1
	}
}
