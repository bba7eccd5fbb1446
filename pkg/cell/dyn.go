package cell

import "sort"

// Dyn is a growable possibility set with no fixed capacity, for tile
// counts that exceed the 128-tile cap of Array and Bitset.
type Dyn struct {
	indices []int
}

// NewDyn constructs a Dyn cell with n tile indices possible.
func NewDyn(n int) *Dyn {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	return &Dyn{indices: indices}
}

// Entropy implements Cell.
func (d *Dyn) Entropy() int { return len(d.indices) }

// Possible implements Cell.
func (d *Dyn) Possible() []int {
	out := make([]int, len(d.indices))
	copy(out, d.indices)
	return out
}

// Collapse implements Cell.
func (d *Dyn) Collapse(index int) {
	d.indices = append(d.indices[:0], index)
}

// SetIndices implements Cell.
func (d *Dyn) SetIndices(indices []int) {
	d.indices = d.indices[:0]
	seen := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if seen[idx] {
			continue
		}
		seen[idx] = true
		d.indices = append(d.indices, idx)
	}
	sort.Ints(d.indices)
}

// CollapsedIndex implements Cell.
func (d *Dyn) CollapsedIndex() int { return d.indices[0] }

// IsCollapsed implements Cell.
func (d *Dyn) IsCollapsed() bool { return len(d.indices) == 1 }

// Clone implements Cell.
func (d *Dyn) Clone() Cell {
	c := &Dyn{indices: make([]int, len(d.indices))}
	copy(c.indices, d.indices)
	return c
}
