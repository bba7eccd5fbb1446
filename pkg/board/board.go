// Package board owns the grid of cells, the set of positions still to be
// collapsed, and the propagation engine that restores arc-consistency
// after a cell changes.
package board

import (
	"sort"

	"github.com/dshills/wavecollapse/pkg/cell"
	"github.com/dshills/wavecollapse/pkg/constraint"
	"github.com/dshills/wavecollapse/pkg/position"
	"github.com/dshills/wavecollapse/pkg/wfcerr"
)

// Board holds width*height cells in row-major order, the set of positions
// not yet collapsed, and a reusable FIFO worklist for propagation.
type Board struct {
	width, height int

	cells []cell.Cell

	// nonCollapsed holds positions with entropy > 1, kept sorted by
	// position.Less so min-entropy ties break deterministically by the
	// set's iteration order, and so removal is a binary search + splice.
	nonCollapsed []position.Position

	worklist []position.Position
	scratch  []int
}

// New builds a board of the given dimensions where every cell admits all
// numTiles tile indices, using the given cell representation.
func New(width, height, numTiles int, kind cell.Kind) (*Board, error) {
	cells := make([]cell.Cell, width*height)
	for i := range cells {
		c, err := cell.New(kind, numTiles)
		if err != nil {
			return nil, err
		}
		cells[i] = c
	}

	nonCollapsed := make([]position.Position, 0, width*height)
	if numTiles > 1 {
		for _, p := range position.All(width, height) {
			nonCollapsed = append(nonCollapsed, p)
		}
	}

	return &Board{
		width:        width,
		height:       height,
		cells:        cells,
		nonCollapsed: nonCollapsed,
	}, nil
}

// Width reports the board's width.
func (b *Board) Width() int { return b.width }

// Height reports the board's height.
func (b *Board) Height() int { return b.height }

// Collapsed reports whether every position has entropy 1.
func (b *Board) Collapsed() bool { return len(b.nonCollapsed) == 0 }

// Cell returns the cell at p. Panics if p is out of bounds.
func (b *Board) Cell(p position.Position) cell.Cell {
	return b.cells[p.Index(b.width)]
}

// View returns a read-only view of the cell at p.
func (b *Board) View(p position.Position) cell.View {
	return b.cells[p.Index(b.width)]
}

func (b *Board) inBounds(p position.Position) bool {
	return p.InBounds(b.width, b.height)
}

// MinEntropyPosition returns the non-collapsed position whose cell has the
// smallest entropy, breaking ties by position order. The second return
// value is false if every position is collapsed.
func (b *Board) MinEntropyPosition() (position.Position, bool) {
	if len(b.nonCollapsed) == 0 {
		return position.Position{}, false
	}

	best := b.nonCollapsed[0]
	bestEntropy := b.Cell(best).Entropy()
	for _, p := range b.nonCollapsed[1:] {
		e := b.Cell(p).Entropy()
		if e < bestEntropy {
			best = p
			bestEntropy = e
		}
	}
	return best, true
}

// CollapseAt fixes the cell at p to index i and removes p from the
// non-collapsed set. The caller guarantees i is a member of p's current
// possibility set and that p is in-bounds.
func (b *Board) CollapseAt(p position.Position, index int) {
	b.Cell(p).Collapse(index)
	b.removeNonCollapsed(p)
}

func (b *Board) removeNonCollapsed(p position.Position) {
	i := sort.Search(len(b.nonCollapsed), func(i int) bool {
		return !position.Less(b.nonCollapsed[i], p)
	})
	if i < len(b.nonCollapsed) && b.nonCollapsed[i] == p {
		b.nonCollapsed = append(b.nonCollapsed[:i], b.nonCollapsed[i+1:]...)
	}
}

// PropagateFrom restores arc-consistency starting from a position that was
// just collapsed or whose possibility set was just reduced, using the
// given constraint evaluator. Returns wfcerr.ErrCellHasZeroEntropy if some
// cell's possibility set is reduced to empty, including a collapsed start
// cell whose tile is no longer accepted given its neighbours.
func (b *Board) PropagateFrom(start position.Position, eval constraint.Evaluator) error {
	if startCell := b.Cell(start); startCell.IsCollapsed() {
		b.scratch = constraint.UpdateCell(b.scratch, startCell, start, b.snapshotNeighbours(start), eval)
		if len(b.scratch) == 0 {
			return &wfcerr.ErrCellHasZeroEntropy{Position: start}
		}
	}

	b.worklist = append(b.worklist[:0], start)

	for len(b.worklist) > 0 {
		q := b.worklist[0]
		b.worklist = b.worklist[1:]

		for _, r := range q.CardinalNeighbours() {
			if !b.inBounds(r) {
				continue
			}
			rCell := b.Cell(r)
			if rCell.IsCollapsed() {
				continue
			}

			neighbours := b.snapshotNeighbours(r)
			previous := rCell.Entropy()

			b.scratch = constraint.UpdateCell(b.scratch, rCell, r, neighbours, eval)
			if len(b.scratch) == 0 {
				return &wfcerr.ErrCellHasZeroEntropy{Position: r}
			}

			if len(b.scratch) == previous {
				continue
			}

			rCell.SetIndices(b.scratch)
			b.worklist = append(b.worklist, r)

			if rCell.IsCollapsed() {
				b.removeNonCollapsed(r)
			}
		}
	}

	return nil
}

func (b *Board) snapshotNeighbours(p position.Position) []constraint.NeighbourSnapshot {
	neighbours := p.CardinalNeighbours()
	out := make([]constraint.NeighbourSnapshot, 0, 4)
	for _, n := range neighbours {
		if !b.inBounds(n) {
			continue
		}
		out = append(out, constraint.NeighbourSnapshot{Possible: b.View(n), Position: n})
	}
	return out
}
