package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/dshills/wavecollapse/pkg/position"
)

// ExportPNG rasterizes a Result to a flat-color PNG grid, one CellSize
// square per tile. Unresolved positions are filled with a neutral gray.
func ExportPNG(result Result, opts Options) (image.Image, error) {
	if result.Width <= 0 || result.Height <= 0 {
		return nil, fmt.Errorf("export: width and height must be positive, got %dx%d", result.Width, result.Height)
	}
	if opts.CellSize <= 0 {
		opts.CellSize = 24
	}

	byPos := make(map[position.Position]Placement, len(result.Placements))
	for _, p := range result.Placements {
		byPos[p.Position] = p
	}

	img := image.NewRGBA(image.Rect(0, 0, result.Width*opts.CellSize, result.Height*opts.CellSize))
	unresolved := color.RGBA{74, 85, 104, 255}

	for y := 0; y < result.Height; y++ {
		for x := 0; x < result.Width; x++ {
			pos := position.Position{X: x, Y: y}
			fill := unresolved
			if p, ok := byPos[pos]; ok {
				if c, err := parseColor(p.Color); err == nil {
					fill = c
				}
			}
			fillCell(img, x*opts.CellSize, y*opts.CellSize, opts.CellSize, fill)
		}
	}
	return img, nil
}

// SavePNGToFile rasterizes the grid and writes it to filepath as a PNG.
func SavePNGToFile(result Result, opts Options, filepath string) error {
	img, err := ExportPNG(result, opts)
	if err != nil {
		return err
	}
	f, err := os.Create(filepath)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", filepath, err)
	}
	defer f.Close()
	return png.Encode(f, img)
}

func fillCell(img *image.RGBA, x0, y0, size int, c color.RGBA) {
	for y := y0; y < y0+size; y++ {
		for x := x0; x < x0+size; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// parseColor accepts the "#rrggbb" and "hsl(h, s%, l%)" forms produced by
// tileColor helpers and svg.go's fallback fill color.
func parseColor(s string) (color.RGBA, error) {
	if len(s) == 7 && s[0] == '#' {
		var r, g, b uint8
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
			return color.RGBA{}, err
		}
		return color.RGBA{r, g, b, 255}, nil
	}
	var h, sat, l int
	if _, err := fmt.Sscanf(s, "hsl(%d, %d%%, %d%%)", &h, &sat, &l); err != nil {
		return color.RGBA{}, fmt.Errorf("export: unrecognized color format %q", s)
	}
	return hslToRGBA(h, sat, l), nil
}

// hslToRGBA converts HSL (degrees, percent, percent) to 8-bit RGBA.
func hslToRGBA(h, s, l int) color.RGBA {
	hf := float64((h%360+360)%360) / 360
	sf := float64(s) / 100
	lf := float64(l) / 100

	if sf == 0 {
		v := uint8(lf * 255)
		return color.RGBA{v, v, v, 255}
	}

	var q float64
	if lf < 0.5 {
		q = lf * (1 + sf)
	} else {
		q = lf + sf - lf*sf
	}
	p := 2*lf - q

	r := hueToChannel(p, q, hf+1.0/3)
	g := hueToChannel(p, q, hf)
	b := hueToChannel(p, q, hf-1.0/3)
	return color.RGBA{uint8(r * 255), uint8(g * 255), uint8(b * 255), 255}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}
