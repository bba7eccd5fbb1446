// Package wfc assembles the board, constraint list, weights, and random
// source into the two user-visible solver operations: a one-shot collapse
// and a pre-seeded collapse.
package wfc

import (
	"errors"
	"fmt"

	"github.com/dshills/wavecollapse/pkg/board"
	"github.com/dshills/wavecollapse/pkg/cell"
	"github.com/dshills/wavecollapse/pkg/constraint"
	"github.com/dshills/wavecollapse/pkg/position"
	"github.com/dshills/wavecollapse/pkg/rng"
	"github.com/dshills/wavecollapse/pkg/wfcerr"
)

// TilePlacement is the tile value resolved at a board position, as
// returned by Collapse and CollapseTiles.
type TilePlacement[T any] struct {
	Position position.Position
	Tile     T
}

// Seed is a pre-seeded (position, tile) pair for CollapseTiles.
type Seed[T any] struct {
	Position position.Position
	Tile     T
}

// Builder accumulates the configuration for one collapse run: dimensions,
// the ordered tile list, optional weights, constraints, seed, and cell
// representation. Build validates the accumulated configuration.
type Builder[T comparable] struct {
	width, height int
	tiles         []T
	weights       []float64
	constraints   []constraint.Constraint[T]
	seed          any
	hasSeed       bool
	kind          cell.Kind
}

// NewBuilder starts a builder for a width x height board over the given
// ordered tile list.
func NewBuilder[T comparable](width, height int, tiles []T) *Builder[T] {
	return &Builder[T]{
		width:  width,
		height: height,
		tiles:  tiles,
		kind:   cell.KindBitset,
	}
}

// WithSeed sets a reproducible seed, reduced to 64 bits via a stable hash.
// Without a call to WithSeed, Build draws from system entropy.
func (b *Builder[T]) WithSeed(seed any) *Builder[T] {
	b.seed = seed
	b.hasSeed = true
	return b
}

// WithWeights sets the per-tile weight vector, aligned index-for-index
// with the tile list. Without a call to WithWeights, every tile gets
// weight 1.0.
func (b *Builder[T]) WithWeights(weights []float64) *Builder[T] {
	b.weights = weights
	return b
}

// WithConstraint appends a constraint, in the order added. Order does not
// affect correctness but does affect short-circuit evaluation order.
func (b *Builder[T]) WithConstraint(c constraint.Constraint[T]) *Builder[T] {
	b.constraints = append(b.constraints, c)
	return b
}

// WithCellKind overrides the cell representation. The default is
// cell.KindBitset.
func (b *Builder[T]) WithCellKind(k cell.Kind) *Builder[T] {
	b.kind = k
	return b
}

// Build validates the accumulated configuration and constructs a Wfc ready
// to collapse. Errors on non-positive dimensions, an empty tile list, a
// tile count that exceeds the chosen representation's capacity, or a
// weight vector whose length disagrees with the tile count.
func (b *Builder[T]) Build() (*Wfc[T], error) {
	if b.width <= 0 || b.height <= 0 {
		return nil, &wfcerr.ErrInvalidBoard{
			Reason: fmt.Sprintf("width and height must be positive, got %dx%d", b.width, b.height),
		}
	}
	if len(b.tiles) == 0 {
		return nil, &wfcerr.ErrInvalidBoard{Reason: "at least one tile must be specified"}
	}
	if cap := cell.Capacity(b.kind); cap >= 0 && len(b.tiles) > cap {
		return nil, &wfcerr.ErrTooManyTiles{Max: cap, Was: len(b.tiles)}
	}

	weights := b.weights
	if weights == nil {
		weights = make([]float64, len(b.tiles))
		for i := range weights {
			weights[i] = 1.0
		}
	} else if len(weights) != len(b.tiles) {
		return nil, &wfcerr.ErrInvalidWeights{Reason: "weight vector length does not match tile count"}
	}

	brd, err := board.New(b.width, b.height, len(b.tiles), b.kind)
	if err != nil {
		return nil, err
	}

	var source *rng.Source
	if b.hasSeed {
		source = rng.FromSeed(b.seed)
	} else {
		source = rng.FromEntropy()
	}

	list := constraint.NewList(b.constraints...)

	return &Wfc[T]{
		board:   brd,
		tiles:   append([]T(nil), b.tiles...),
		weights: weights,
		eval:    list.Bind(append([]T(nil), b.tiles...)),
		rng:     source,
	}, nil
}

// Wfc runs a single collapse. It is consumed by the first call to Collapse
// or CollapseTiles; a second call returns wfcerr.ErrAlreadyCollapsed.
type Wfc[T comparable] struct {
	board    *board.Board
	tiles    []T
	weights  []float64
	eval     constraint.Evaluator
	rng      *rng.Source
	consumed bool

	weightScratch []float64
}

// Seed returns the 64-bit seed driving this run's random source.
func (w *Wfc[T]) Seed() uint64 { return w.rng.Seed() }

// Collapse runs the main loop to completion: repeatedly pick the
// min-entropy position, weighted-choose a tile from its possibilities,
// collapse it, and propagate. Returns the full (position, tile) list on
// success, or a contradiction/weight error.
func (w *Wfc[T]) Collapse() ([]TilePlacement[T], error) {
	if w.consumed {
		return nil, wfcerr.ErrAlreadyCollapsed
	}
	w.consumed = true

	if err := w.runLoop(); err != nil {
		return nil, err
	}
	return w.materialize(), nil
}

// CollapseTiles pre-seeds the given (position, tile) pairs — collapsing
// every seed position before propagating from any of them, so that seeds
// which would prune each other under naive one-at-a-time propagation can
// still coexist — then finishes the board with the ordinary collapse
// loop. A seed with an out-of-bounds position or an unknown tile value is
// an error.
func (w *Wfc[T]) CollapseTiles(seeds []Seed[T]) ([]TilePlacement[T], error) {
	if w.consumed {
		return nil, wfcerr.ErrAlreadyCollapsed
	}
	w.consumed = true

	positions := make([]position.Position, 0, len(seeds))
	for _, s := range seeds {
		if !s.Position.InBounds(w.board.Width(), w.board.Height()) {
			return nil, &wfcerr.ErrOutOfBounds{Position: s.Position}
		}
		idx, err := tileIndexOf(w.tiles, s.Tile)
		if err != nil {
			return nil, &wfcerr.ErrUnknownTile{Value: s.Tile}
		}
		w.board.CollapseAt(s.Position, idx)
		positions = append(positions, s.Position)
	}

	for _, p := range positions {
		if err := w.board.PropagateFrom(p, w.eval); err != nil {
			return nil, err
		}
	}

	if err := w.runLoop(); err != nil {
		return nil, err
	}
	return w.materialize(), nil
}

func (w *Wfc[T]) runLoop() error {
	for !w.board.Collapsed() {
		p, ok := w.board.MinEntropyPosition()
		if !ok {
			break
		}

		possible := w.board.Cell(p).Possible()
		w.weightScratch = w.weightScratch[:0]
		for _, idx := range possible {
			w.weightScratch = append(w.weightScratch, w.weights[idx])
		}

		choice, err := w.rng.WeightedChoose(w.weightScratch)
		if err != nil {
			return &wfcerr.ErrInvalidWeights{Reason: err.Error()}
		}

		tileIndex := possible[choice]
		w.board.CollapseAt(p, tileIndex)
		if err := w.board.PropagateFrom(p, w.eval); err != nil {
			return err
		}
	}
	return nil
}

func (w *Wfc[T]) materialize() []TilePlacement[T] {
	positions := position.All(w.board.Width(), w.board.Height())
	out := make([]TilePlacement[T], 0, len(positions))
	for _, p := range positions {
		idx := w.board.Cell(p).CollapsedIndex()
		out = append(out, TilePlacement[T]{Position: p, Tile: w.tiles[idx]})
	}
	return out
}

var errTileNotFound = errors.New("wfc: tile value not found in tile list")

func tileIndexOf[T comparable](tiles []T, v T) (int, error) {
	for i, t := range tiles {
		if t == v {
			return i, nil
		}
	}
	return 0, errTileNotFound
}
