package rng

import "testing"

// TestFromSeed_Determinism verifies that the same seed value always
// produces the same derived seed and the same stream.
func TestFromSeed_Determinism(t *testing.T) {
	s1 := FromSeed(uint64(123456789))
	s2 := FromSeed(uint64(123456789))

	if s1.Seed() != s2.Seed() {
		t.Fatalf("same seed produced different derived seeds: %d vs %d", s1.Seed(), s2.Seed())
	}

	weights := []float64{1, 1, 1, 1}
	for i := 0; i < 100; i++ {
		v1, err1 := s1.WeightedChoose(weights)
		v2, err2 := s2.WeightedChoose(weights)
		if err1 != nil || err2 != nil {
			t.Fatalf("iteration %d: unexpected errors %v, %v", i, err1, err2)
		}
		if v1 != v2 {
			t.Fatalf("iteration %d: same seed produced different draws: %d vs %d", i, v1, v2)
		}
	}
}

// TestFromSeed_ArbitraryHashable verifies that string and integer seeds are
// both supported and remain deterministic.
func TestFromSeed_ArbitraryHashable(t *testing.T) {
	strSeed1 := FromSeed("coastline-42")
	strSeed2 := FromSeed("coastline-42")
	if strSeed1.Seed() != strSeed2.Seed() {
		t.Fatalf("same string seed produced different derived seeds: %d vs %d", strSeed1.Seed(), strSeed2.Seed())
	}

	intSeed := FromSeed(42)
	otherIntSeed := FromSeed(43)
	if intSeed.Seed() == otherIntSeed.Seed() {
		t.Fatalf("different integer seeds produced identical derived seeds")
	}
}

// TestFromSeed_DifferentSeedsDiffer verifies distinct seeds derive distinct
// streams (with overwhelming probability).
func TestFromSeed_DifferentSeedsDiffer(t *testing.T) {
	s1 := FromSeed(uint64(1))
	s2 := FromSeed(uint64(2))

	if s1.Seed() == s2.Seed() {
		t.Fatal("different seeds produced identical derived seeds")
	}
}

func TestWeightedChoose_EmptyFails(t *testing.T) {
	s := FromSeed(uint64(1))
	if _, err := s.WeightedChoose(nil); err != ErrNoCandidates {
		t.Fatalf("WeightedChoose(nil) error = %v, want ErrNoCandidates", err)
	}
}

func TestWeightedChoose_AllZeroFails(t *testing.T) {
	s := FromSeed(uint64(1))
	if _, err := s.WeightedChoose([]float64{0, 0, 0}); err != ErrAllWeightsZero {
		t.Fatalf("WeightedChoose(all zero) error = %v, want ErrAllWeightsZero", err)
	}
}

func TestWeightedChoose_NegativeFails(t *testing.T) {
	s := FromSeed(uint64(1))
	if _, err := s.WeightedChoose([]float64{1, -1}); err == nil {
		t.Fatal("WeightedChoose with a negative weight should fail")
	}
}

func TestWeightedChoose_SingleCandidateAlwaysChosen(t *testing.T) {
	s := FromSeed(uint64(7))
	for i := 0; i < 20; i++ {
		idx, err := s.WeightedChoose([]float64{5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if idx != 0 {
			t.Fatalf("single-candidate choice = %d, want 0", idx)
		}
	}
}

// TestWeightedChoose_ConvergesToDistribution is a coarse version of P7: over
// many draws, the empirical frequency should approach the normalised weight.
func TestWeightedChoose_ConvergesToDistribution(t *testing.T) {
	const trials = 20000
	weights := []float64{3, 1}

	counts := [2]int{}
	for i := 0; i < trials; i++ {
		s := FromSeed(i)
		idx, err := s.WeightedChoose(weights)
		if err != nil {
			t.Fatalf("trial %d: unexpected error: %v", i, err)
		}
		counts[idx]++
	}

	gotX := float64(counts[0]) / float64(trials)
	wantX := 0.75
	if diff := gotX - wantX; diff > 0.03 || diff < -0.03 {
		t.Fatalf("empirical frequency of index 0 = %.4f, want close to %.2f", gotX, wantX)
	}
}

func TestFromEntropy_UsableStream(t *testing.T) {
	s := FromEntropy()
	if _, err := s.WeightedChoose([]float64{1, 2, 3}); err != nil {
		t.Fatalf("unexpected error drawing from entropy-seeded source: %v", err)
	}
}
