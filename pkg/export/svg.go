package export

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	svg "github.com/ajstarks/svgo"

	"github.com/dshills/wavecollapse/pkg/position"
)

// Options configures SVG grid export.
type Options struct {
	CellSize   int    // Pixel size of one grid cell (default 24)
	ShowLabels bool   // Draw each tile's label inside its cell
	Margin     int    // Canvas margin in pixels (default 20)
	Title      string // Optional title drawn above the grid
}

// DefaultOptions returns sensible default SVG export options.
func DefaultOptions() Options {
	return Options{
		CellSize:   24,
		ShowLabels: false,
		Margin:     20,
	}
}

// Placement is one resolved grid cell: its position, a display label, and
// a fill color. Export is deliberately decoupled from the solver's
// generic tile type — callers translate their own tile values into a
// label and color before building a Result.
type Placement struct {
	Position position.Position `json:"position"`
	Label    string            `json:"label"`
	Color    string            `json:"color"`
}

// ExportSVG renders a Result to SVG bytes. Positions absent from
// result.Placements get no cell rectangle; the canvas background shows
// through there.
func ExportSVG(result Result, opts Options) ([]byte, error) {
	if result.Width <= 0 || result.Height <= 0 {
		return nil, fmt.Errorf("export: width and height must be positive, got %dx%d", result.Width, result.Height)
	}
	if opts.CellSize <= 0 {
		opts.CellSize = 24
	}
	if opts.Margin < 0 {
		opts.Margin = 20
	}

	byPos := make(map[position.Position]Placement, len(result.Placements))
	for _, p := range result.Placements {
		byPos[p.Position] = p
	}

	titleHeight := 0
	if opts.Title != "" {
		titleHeight = 30
	}

	canvasWidth := result.Width*opts.CellSize + 2*opts.Margin
	canvasHeight := result.Height*opts.CellSize + 2*opts.Margin + titleHeight

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(canvasWidth, canvasHeight)
	canvas.Rect(0, 0, canvasWidth, canvasHeight, "fill:#1a1a2e")

	if opts.Title != "" {
		canvas.Text(canvasWidth/2, 20, opts.Title,
			"text-anchor:middle;font-size:16px;font-weight:bold;fill:#e2e8f0;font-family:sans-serif")
	}

	// Sort positions for deterministic draw order (matters only for
	// z-order of overlapping labels, but determinism is cheap to keep).
	keys := make([]position.Position, 0, len(byPos))
	for p := range byPos {
		keys = append(keys, p)
	}
	sort.Slice(keys, func(i, j int) bool { return position.Less(keys[i], keys[j]) })

	for _, p := range keys {
		placement := byPos[p]
		x := opts.Margin + p.X*opts.CellSize
		y := opts.Margin + titleHeight + p.Y*opts.CellSize

		color := placement.Color
		if color == "" {
			color = "#4a5568"
		}
		canvas.Rect(x, y, opts.CellSize, opts.CellSize,
			fmt.Sprintf("fill:%s;stroke:#0f0f1a;stroke-width:1", color))

		if opts.ShowLabels && placement.Label != "" {
			canvas.Text(x+opts.CellSize/2, y+opts.CellSize/2+4, placement.Label,
				"text-anchor:middle;font-size:10px;font-family:monospace;fill:#e2e8f0")
		}
	}

	canvas.End()
	return buf.Bytes(), nil
}

// SaveSVGToFile renders the grid and writes it to filepath with 0644
// permissions.
func SaveSVGToFile(result Result, opts Options, filepath string) error {
	data, err := ExportSVG(result, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0o644)
}
