// Package constraint implements the predicate protocol that tiles must
// satisfy to remain possible at a position, the conjunction of such
// predicates, and the cell-update algorithm that applies them.
package constraint

import (
	"github.com/dshills/wavecollapse/pkg/cell"
	"github.com/dshills/wavecollapse/pkg/position"
)

// NeighbourSnapshot pairs an in-bounds cardinal neighbour's possibility
// set with its position, as seen at the moment a candidate is evaluated.
type NeighbourSnapshot struct {
	Possible cell.View
	Position position.Position
}

// Evaluator is a constraint list closed over a concrete tile value slice.
// It reports whether placing tile index candidate at pos is still
// consistent with the given neighbour snapshots.
type Evaluator func(candidate int, pos position.Position, neighbours []NeighbourSnapshot) bool

// Constraint is a pure predicate over (candidate tile at position,
// neighbour possibility sets, tile values). Implementations must not
// inspect board state through any other channel — this keeps propagation
// local and avoids dead-end spirals from global constraints.
type Constraint[T any] interface {
	// Allowed reports whether candidate is still a valid choice at pos,
	// given the in-bounds cardinal neighbour snapshots and the full tile
	// value list (for constraints that inspect tile payloads).
	Allowed(candidate int, pos position.Position, neighbours []NeighbourSnapshot, tiles []T) bool
}

// List is the conjunction of zero or more constraints. An Evaluator
// produced by Bind uses the constraints present at the time of the call;
// constraints added to the list afterwards do not affect it.
type List[T any] struct {
	constraints []Constraint[T]
}

// NewList builds a constraint list from the given constraints, in order.
// Order does not affect correctness but does affect short-circuit
// evaluation order.
func NewList[T any](constraints ...Constraint[T]) *List[T] {
	return &List[T]{constraints: append([]Constraint[T](nil), constraints...)}
}

// Add appends a constraint to the list.
func (l *List[T]) Add(c Constraint[T]) {
	l.constraints = append(l.constraints, c)
}

// Len reports how many constraints are in the list.
func (l *List[T]) Len() int {
	return len(l.constraints)
}

// Bind closes the list over a concrete tile value slice, producing an
// Evaluator the board can run without knowing the tile type.
func (l *List[T]) Bind(tiles []T) Evaluator {
	constraints := l.constraints
	return func(candidate int, pos position.Position, neighbours []NeighbourSnapshot) bool {
		for _, c := range constraints {
			if !c.Allowed(candidate, pos, neighbours, tiles) {
				return false
			}
		}
		return true
	}
}

// UpdateCell runs the cell-update algorithm: for each candidate tile
// index still possible at a cell (in ascending order), keep it only if
// the evaluator accepts it given the neighbour snapshots. The result is
// appended to dst[:0], letting callers reuse a scratch buffer across
// propagation steps to avoid per-step allocation.
func UpdateCell(dst []int, current cell.View, pos position.Position, neighbours []NeighbourSnapshot, eval Evaluator) []int {
	dst = dst[:0]
	for _, t := range current.Possible() {
		if eval(t, pos, neighbours) {
			dst = append(dst, t)
		}
	}
	return dst
}
