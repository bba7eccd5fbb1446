package position

import (
	"sort"
	"testing"
)

func TestCardinalNeighbours(t *testing.T) {
	p := Position{X: 2, Y: 3}
	want := [4]Position{{1, 3}, {3, 3}, {2, 2}, {2, 4}}
	got := p.CardinalNeighbours()
	if got != want {
		t.Fatalf("CardinalNeighbours() = %v, want %v", got, want)
	}
}

func TestInBounds(t *testing.T) {
	cases := []struct {
		p    Position
		w, h int
		want bool
	}{
		{Position{0, 0}, 5, 5, true},
		{Position{4, 4}, 5, 5, true},
		{Position{5, 4}, 5, 5, false},
		{Position{-1, 0}, 5, 5, false},
		{Position{0, -1}, 5, 5, false},
	}
	for _, c := range cases {
		if got := c.p.InBounds(c.w, c.h); got != c.want {
			t.Errorf("%v.InBounds(%d,%d) = %v, want %v", c.p, c.w, c.h, got, c.want)
		}
	}
}

func TestIndex(t *testing.T) {
	if got := (Position{X: 3, Y: 2}).Index(10); got != 23 {
		t.Fatalf("Index() = %d, want 23", got)
	}
}

func TestLessIsTotalOrderRowMajor(t *testing.T) {
	all := All(3, 3)
	shuffled := append([]Position(nil), all...)
	sort.Slice(shuffled, func(i, j int) bool { return Less(shuffled[j], shuffled[i]) })
	sort.Slice(shuffled, func(i, j int) bool { return Less(shuffled[i], shuffled[j]) })
	if !equalPositions(all, shuffled) {
		t.Fatalf("sorting by Less did not reproduce row-major order: got %v", shuffled)
	}
}

func TestAllRowMajorOrder(t *testing.T) {
	all := All(2, 2)
	want := []Position{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	if !equalPositions(all, want) {
		t.Fatalf("All(2,2) = %v, want %v", all, want)
	}
}

func equalPositions(a, b []Position) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
