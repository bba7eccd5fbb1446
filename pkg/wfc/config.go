package wfc

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dshills/wavecollapse/pkg/constraint"
)

// TilesetConfig is the YAML-loadable description of a string-tile board:
// dimensions, the ordered tile names, their weights, the allowed
// unordered adjacency pairs, and an optional seed. It exists for the CLI
// playground and similar outer layers; the core solver is built from a
// Builder regardless of how its configuration was obtained.
type TilesetConfig struct {
	// Width is the board width in cells.
	Width int `yaml:"width" json:"width"`

	// Height is the board height in cells.
	Height int `yaml:"height" json:"height"`

	// Seed selects a reproducible run. Omit (or set to "") for
	// non-reproducible system-entropy seeding.
	Seed string `yaml:"seed,omitempty" json:"seed,omitempty"`

	// Tiles lists the ordered tile names.
	Tiles []string `yaml:"tiles" json:"tiles"`

	// Weights gives one weight per tile, aligned with Tiles. Omit for
	// uniform weight 1.0 per tile.
	Weights []float64 `yaml:"weights,omitempty" json:"weights,omitempty"`

	// AllowedPairs lists unordered tile-name pairs that may be cardinal
	// neighbours of one another.
	AllowedPairs [][2]string `yaml:"allowedPairs" json:"allowedPairs"`
}

// LoadTilesetConfig reads and validates a YAML tileset configuration file.
func LoadTilesetConfig(path string) (*TilesetConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tileset config: %w", err)
	}

	var cfg TilesetConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing tileset config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("tileset config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks the tileset configuration's internal consistency.
func (c *TilesetConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("width and height must be positive, got %dx%d", c.Width, c.Height)
	}
	if len(c.Tiles) == 0 {
		return errors.New("at least one tile must be specified")
	}

	seen := make(map[string]bool, len(c.Tiles))
	for _, t := range c.Tiles {
		if t == "" {
			return errors.New("tile names must not be empty")
		}
		if seen[t] {
			return fmt.Errorf("duplicate tile name %q", t)
		}
		seen[t] = true
	}

	if c.Weights != nil && len(c.Weights) != len(c.Tiles) {
		return fmt.Errorf("weights length %d does not match tile count %d", len(c.Weights), len(c.Tiles))
	}
	for _, w := range c.Weights {
		if w < 0 {
			return fmt.Errorf("weights must be non-negative, got %v", w)
		}
	}

	for _, pair := range c.AllowedPairs {
		if !seen[pair[0]] {
			return fmt.Errorf("allowedPairs references unknown tile %q", pair[0])
		}
		if !seen[pair[1]] {
			return fmt.Errorf("allowedPairs references unknown tile %q", pair[1])
		}
	}

	return nil
}

// ToYAML serializes the config to YAML bytes.
func (c *TilesetConfig) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Builder assembles a string-tiled Builder from the configuration: tile
// list, weights, a PossibleNeighbours constraint built from AllowedPairs,
// and the seed if one was given.
func (c *TilesetConfig) Builder() (*Builder[string], error) {
	pn, err := constraint.NewPossibleNeighbours(c.AllowedPairs, c.Tiles)
	if err != nil {
		return nil, err
	}

	b := NewBuilder[string](c.Width, c.Height, c.Tiles).WithConstraint(pn)
	if c.Weights != nil {
		b = b.WithWeights(c.Weights)
	}
	if c.Seed != "" {
		b = b.WithSeed(c.Seed)
	}
	return b, nil
}
