package wfc

import "testing"

func validConfig() TilesetConfig {
	return TilesetConfig{
		Width:  4,
		Height: 4,
		Tiles:  []string{"Water", "Sand", "Forest"},
		AllowedPairs: [][2]string{
			{"Water", "Water"}, {"Water", "Sand"},
			{"Sand", "Sand"}, {"Sand", "Forest"}, {"Forest", "Forest"},
		},
	}
}

func TestTilesetConfig_ValidatesOK(t *testing.T) {
	c := validConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestTilesetConfig_RejectsNonPositiveDimensions(t *testing.T) {
	c := validConfig()
	c.Width = 0
	if err := c.Validate(); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestTilesetConfig_RejectsDuplicateTileNames(t *testing.T) {
	c := validConfig()
	c.Tiles = []string{"Water", "Water"}
	if err := c.Validate(); err == nil {
		t.Error("expected error for duplicate tile names")
	}
}

func TestTilesetConfig_RejectsMismatchedWeights(t *testing.T) {
	c := validConfig()
	c.Weights = []float64{1, 2}
	if err := c.Validate(); err == nil {
		t.Error("expected error for weights length mismatch")
	}
}

func TestTilesetConfig_RejectsUnknownTileInAllowedPairs(t *testing.T) {
	c := validConfig()
	c.AllowedPairs = append(c.AllowedPairs, [2]string{"Water", "Lava"})
	if err := c.Validate(); err == nil {
		t.Error("expected error for allowedPairs referencing unknown tile")
	}
}

func TestTilesetConfig_BuilderProducesWorkingWfc(t *testing.T) {
	c := validConfig()
	c.Seed = "42"
	b, err := c.Builder()
	if err != nil {
		t.Fatalf("Builder: %v", err)
	}
	w, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, err := w.Collapse(); err != nil {
		t.Fatalf("Collapse: %v", err)
	}
}
