package wfcerr

import (
	"errors"
	"testing"

	"github.com/dshills/wavecollapse/pkg/position"
)

func TestErrTooManyTiles_Error(t *testing.T) {
	err := &ErrTooManyTiles{Max: 128, Was: 200}
	want := "wfc: tile count 200 exceeds capacity 128"
	if got := err.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestErrCellHasZeroEntropy_CarriesPosition(t *testing.T) {
	pos := position.Position{X: 1, Y: 2}
	err := &ErrCellHasZeroEntropy{Position: pos}

	var target *ErrCellHasZeroEntropy
	if !errors.As(err, &target) {
		t.Fatal("errors.As failed to unwrap ErrCellHasZeroEntropy")
	}
	if target.Position != pos {
		t.Fatalf("Position = %v, want %v", target.Position, pos)
	}
}

func TestErrInvalidBoard_Error(t *testing.T) {
	err := &ErrInvalidBoard{Reason: "at least one tile must be specified"}
	want := "wfc: invalid board: at least one tile must be specified"
	if got := err.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestErrAlreadyCollapsed_IsSentinel(t *testing.T) {
	if !errors.Is(ErrAlreadyCollapsed, ErrAlreadyCollapsed) {
		t.Fatal("ErrAlreadyCollapsed should be its own sentinel")
	}
}
