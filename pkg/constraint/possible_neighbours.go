package constraint

import (
	"fmt"

	"github.com/dshills/wavecollapse/pkg/position"
)

// PossibleNeighbours is the built-in constraint configured by an iterable
// of unordered tile pairs (a, b). It accepts a candidate tile iff every
// in-bounds cardinal neighbour currently admits at least one tile index
// compatible with it under the allowed-pair set.
type PossibleNeighbours[T comparable] struct {
	allowed map[pairKey]struct{}
}

type pairKey [2]int

func canonicalPair(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

// NewPossibleNeighbours builds the symmetric allowed-pair set of tile
// indices from the given unordered tile-value pairs, resolving each tile
// value to its index in tiles by equality. Returns an error if a pair
// references a tile value not present in tiles.
func NewPossibleNeighbours[T comparable](pairs [][2]T, tiles []T) (*PossibleNeighbours[T], error) {
	indexOf := func(v T) (int, error) {
		for i, t := range tiles {
			if t == v {
				return i, nil
			}
		}
		return 0, fmt.Errorf("constraint: tile %v not found in tile list", v)
	}

	allowed := make(map[pairKey]struct{}, len(pairs))
	for _, p := range pairs {
		a, err := indexOf(p[0])
		if err != nil {
			return nil, err
		}
		b, err := indexOf(p[1])
		if err != nil {
			return nil, err
		}
		allowed[canonicalPair(a, b)] = struct{}{}
	}

	return &PossibleNeighbours[T]{allowed: allowed}, nil
}

// Allowed implements Constraint[T].
func (p *PossibleNeighbours[T]) Allowed(candidate int, _ position.Position, neighbours []NeighbourSnapshot, _ []T) bool {
	for _, n := range neighbours {
		compatible := false
		for _, u := range n.Possible.Possible() {
			if _, ok := p.allowed[canonicalPair(candidate, u)]; ok {
				compatible = true
				break
			}
		}
		if !compatible {
			return false
		}
	}
	return true
}
