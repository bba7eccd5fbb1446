// Command wfcbench times a fixed coastline-style collapse across the
// three cell representations and a range of board dimensions. It exists
// to compare representation overhead the way the original benchmark
// suite did; it is an outer collaborator, not part of the solver core.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/dshills/wavecollapse/pkg/cell"
	"github.com/dshills/wavecollapse/pkg/constraint"
	"github.com/dshills/wavecollapse/pkg/wfc"
)

var iterations = flag.Int("iterations", 5, "Collapse runs averaged per data point")

type tile string

const (
	water  tile = "Water"
	sand   tile = "Sand"
	forest tile = "Forest"
)

func coastline() (*constraint.PossibleNeighbours[tile], []tile) {
	tiles := []tile{water, sand, forest}
	pn, err := constraint.NewPossibleNeighbours([][2]tile{
		{water, water}, {water, sand},
		{sand, sand}, {sand, forest}, {forest, forest},
	}, tiles)
	if err != nil {
		panic(err)
	}
	return pn, tiles
}

func timeCollapse(dim int, kind cell.Kind) time.Duration {
	pn, tiles := coastline()
	w, err := wfc.NewBuilder[tile](dim, dim, tiles).
		WithSeed(42).
		WithConstraint(pn).
		WithCellKind(kind).
		Build()
	if err != nil {
		panic(err)
	}
	start := time.Now()
	if _, err := w.Collapse(); err != nil {
		panic(err)
	}
	return time.Since(start)
}

func average(dim int, kind cell.Kind, n int) time.Duration {
	var total time.Duration
	for i := 0; i < n; i++ {
		total += timeCollapse(dim, kind)
	}
	return total / time.Duration(n)
}

func main() {
	flag.Parse()

	fmt.Println("simple (50x50)")
	for _, kind := range []cell.Kind{cell.KindArray, cell.KindBitset, cell.KindDyn} {
		fmt.Printf("  %-7s %v\n", kindName(kind), average(50, kind, *iterations))
	}

	fmt.Println("multi_dimension (bitset)")
	for _, dim := range []int{50, 75, 100, 125} {
		fmt.Printf("  %-4d %v\n", dim, average(dim, cell.KindBitset, *iterations))
	}
}

func kindName(k cell.Kind) string {
	switch k {
	case cell.KindArray:
		return "Array"
	case cell.KindBitset:
		return "Bitset"
	case cell.KindDyn:
		return "Dyn"
	default:
		return "Unknown"
	}
}
