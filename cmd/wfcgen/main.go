// Command wfcgen is a playground CLI for the wave function collapse
// solver: it loads a YAML tileset configuration, runs a collapse, and
// writes the result in one or more of JSON, TMJ, SVG, and PNG formats.
package main

import (
	"flag"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"time"

	"github.com/dshills/wavecollapse/pkg/export"
	"github.com/dshills/wavecollapse/pkg/wfc"
)

const version = "0.1.0"

var (
	configPath = flag.String("config", "", "Path to YAML tileset configuration file (required)")
	outputDir  = flag.String("output", ".", "Output directory for generated files")
	format     = flag.String("format", "json", "Export format: json, tmj, svg, png, or all")
	seedFlag   = flag.String("seed", "", "Override the seed from config (empty = use config seed)")
	compress   = flag.Bool("compress", true, "Gzip+base64 encode the TMJ tile layer")
	verbose    = flag.Bool("verbose", false, "Enable verbose output")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("wfcgen version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printHelp()
		os.Exit(0)
	}
	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -config flag is required")
		printUsage()
		os.Exit(1)
	}

	validFormats := map[string]bool{"json": true, "tmj": true, "svg": true, "png": true, "all": true}
	if !validFormats[*format] {
		fmt.Fprintf(os.Stderr, "Error: invalid format %q, must be one of: json, tmj, svg, png, all\n", *format)
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *verbose {
		fmt.Printf("Loading tileset config from %s\n", *configPath)
	}

	cfg, err := wfc.LoadTilesetConfig(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if *seedFlag != "" {
		if *verbose {
			fmt.Printf("Overriding seed from %q to %q\n", cfg.Seed, *seedFlag)
		}
		cfg.Seed = *seedFlag
	}

	if *verbose {
		fmt.Printf("Board: %dx%d, tiles: %v, seed: %q\n", cfg.Width, cfg.Height, cfg.Tiles, cfg.Seed)
	}

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	builder, err := cfg.Builder()
	if err != nil {
		return fmt.Errorf("failed to build solver: %w", err)
	}

	solver, err := builder.Build()
	if err != nil {
		return fmt.Errorf("failed to validate configuration: %w", err)
	}

	start := time.Now()
	if *verbose {
		fmt.Println("Collapsing...")
	}

	placements, err := solver.Collapse()
	if err != nil {
		return fmt.Errorf("collapse failed: %w", err)
	}

	elapsed := time.Since(start)
	if *verbose {
		fmt.Printf("Collapse completed in %v (seed=%d)\n", elapsed, solver.Seed())
	}

	result := export.Result{Width: cfg.Width, Height: cfg.Height}
	for _, p := range placements {
		result.Placements = append(result.Placements, export.Placement{
			Position: p.Position,
			Label:    p.Tile,
			Color:    tileColor(p.Tile),
		})
	}

	baseName := fmt.Sprintf("wfc_%d", solver.Seed())

	if *format == "json" || *format == "all" {
		if err := exportJSON(result, baseName); err != nil {
			return err
		}
	}
	if *format == "tmj" || *format == "all" {
		if err := exportTMJ(result, cfg.Tiles, baseName); err != nil {
			return err
		}
	}
	if *format == "svg" || *format == "all" {
		if err := exportSVG(result, baseName, solver.Seed()); err != nil {
			return err
		}
	}
	if *format == "png" || *format == "all" {
		if err := exportPNG(result, baseName); err != nil {
			return err
		}
	}

	fmt.Printf("Successfully collapsed board (seed=%d) in %v\n", solver.Seed(), elapsed)
	return nil
}

func exportJSON(result export.Result, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".json")
	if *verbose {
		fmt.Printf("Exporting JSON to %s\n", filename)
	}
	if err := export.SaveJSONToFile(result, filename); err != nil {
		return fmt.Errorf("failed to export JSON: %w", err)
	}
	return nil
}

func exportTMJ(result export.Result, tileNames []string, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".tmj")
	if *verbose {
		fmt.Printf("Exporting TMJ to %s\n", filename)
	}
	if err := export.SaveResultToTMJFile(result, tileNames, filename, *compress); err != nil {
		return fmt.Errorf("failed to export TMJ: %w", err)
	}
	return nil
}

func exportSVG(result export.Result, baseName string, seed uint64) error {
	filename := filepath.Join(*outputDir, baseName+".svg")
	if *verbose {
		fmt.Printf("Exporting SVG to %s\n", filename)
	}
	opts := export.DefaultOptions()
	opts.ShowLabels = true
	opts.Title = fmt.Sprintf("WFC board (seed=%d)", seed)
	if err := export.SaveSVGToFile(result, opts, filename); err != nil {
		return fmt.Errorf("failed to export SVG: %w", err)
	}
	return nil
}

func exportPNG(result export.Result, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".png")
	if *verbose {
		fmt.Printf("Exporting PNG to %s\n", filename)
	}
	if err := export.SavePNGToFile(result, export.DefaultOptions(), filename); err != nil {
		return fmt.Errorf("failed to export PNG: %w", err)
	}
	return nil
}

// tileColor derives a stable color for a tile label by hashing it into
// hue space, so boards with unfamiliar tile names still render with
// distinct, repeatable colors without requiring a palette in config.
func tileColor(label string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(label))
	hue := int(h.Sum32() % 360)
	return fmt.Sprintf("hsl(%d, 55%%, 50%%)", hue)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: wfcgen -config <path> [options]")
	fmt.Fprintln(os.Stderr, "Run 'wfcgen -help' for more information.")
}

func printHelp() {
	fmt.Println("wfcgen - wave function collapse playground")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  wfcgen -config <path> [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
}
