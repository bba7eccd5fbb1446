// Package wfcerr defines the solver's error taxonomy: a small set of
// concrete, typed failure modes rather than opaque wrapped strings. All
// errors here are expected failure modes of the collapse procedure, not
// panics — a contradiction is an ordinary, reportable outcome of an
// overly tight constraint system.
package wfcerr

import (
	"errors"
	"fmt"

	"github.com/dshills/wavecollapse/pkg/position"
)

// ErrTooManyTiles is a build-time error: the tile list exceeds the
// capacity of the chosen cell representation.
type ErrTooManyTiles struct {
	Max int
	Was int
}

func (e *ErrTooManyTiles) Error() string {
	return fmt.Sprintf("wfc: tile count %d exceeds capacity %d", e.Was, e.Max)
}

// ErrCellHasZeroEntropy is a runtime error: propagation (or a pre-seed)
// reduced some cell's possibility set to empty, an ordinary contradiction
// outcome rather than a panic-worthy bug.
type ErrCellHasZeroEntropy struct {
	Position position.Position
}

func (e *ErrCellHasZeroEntropy) Error() string {
	return fmt.Sprintf("wfc: contradiction at %v: no tile remains possible", e.Position)
}

// ErrInvalidWeights is a build-time or runtime error: the supplied weight
// vector is malformed, or a decision point found every remaining candidate
// weighted zero.
type ErrInvalidWeights struct {
	Reason string
}

func (e *ErrInvalidWeights) Error() string {
	return fmt.Sprintf("wfc: invalid weights: %s", e.Reason)
}

// ErrInvalidBoard is a build-time error: the builder's dimensions or tile
// list cannot describe a board at all, independent of any particular cell
// representation's capacity.
type ErrInvalidBoard struct {
	Reason string
}

func (e *ErrInvalidBoard) Error() string {
	return fmt.Sprintf("wfc: invalid board: %s", e.Reason)
}

// ErrUnknownTile is returned when a caller references a tile value that is
// not present in the builder's ordered tile list (for example, a seed with
// a tile value the solver does not know about).
type ErrUnknownTile struct {
	Value any
}

func (e *ErrUnknownTile) Error() string {
	return fmt.Sprintf("wfc: unknown tile %v", e.Value)
}

// ErrOutOfBounds is returned when a caller references a position outside
// the board's width x height extents, for example in a pre-seed.
type ErrOutOfBounds struct {
	Position position.Position
}

func (e *ErrOutOfBounds) Error() string {
	return fmt.Sprintf("wfc: position %v is out of bounds", e.Position)
}

// ErrAlreadyCollapsed is returned when Collapse or CollapseTiles is called
// on a solver that has already run to completion or failure. Collapse
// consumes the solver; this sentinel reports a caller that ignored that
// contract instead of silently re-running (or worse, running from an
// already-mutated board).
var ErrAlreadyCollapsed = errors.New("wfc: solver has already been consumed by a previous collapse")
