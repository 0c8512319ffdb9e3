// Preview tool - renders a 2D slice of the configured pipeline to a PNG.
//
// Usage: go run ./cmd/preview -config lattice.yaml -out preview.png
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"

	"github.com/pthm-cable/lattice/config"
	"github.com/pthm-cable/lattice/sampler"
	"github.com/pthm-cable/lattice/telemetry"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	outPath := flag.String("out", "", "Output PNG path (empty = output.png from config, else preview.png)")
	width := flag.Int("width", 0, "Image width (0 = sampling.width)")
	height := flag.Int("height", 0, "Image height (0 = sampling.height)")
	palette := flag.String("palette", "heat", "Color palette: heat or gray")
	autoRange := flag.Bool("auto-range", false, "Stretch the sampled min..max over the palette instead of [-1, 1]")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *width > 0 {
		cfg.Sampling.Width = *width
	}
	if *height > 0 {
		cfg.Sampling.Height = *height
	}
	path := *outPath
	if path == "" {
		path = cfg.Output.PNG
	}
	if path == "" {
		path = "preview.png"
	}

	stats, err := preview(cfg, path, *palette, *autoRange)
	if err != nil {
		slog.Error("preview failed", "error", err)
		os.Exit(1)
	}
	slog.Info("preview written", "path", path, "stats", stats)
}

// preview samples cfg's grid as a 2D slice and writes it to path.
func preview(cfg *config.Config, path, palette string, autoRange bool) (telemetry.SampleStats, error) {
	colorize, err := paletteFunc(palette)
	if err != nil {
		return telemetry.SampleStats{}, err
	}
	if cfg.Sampling.Dimension < 2 {
		cfg.Sampling.Dimension = 2
	}

	src, err := cfg.Build()
	if err != nil {
		return telemetry.SampleStats{}, err
	}
	grid := cfg.Grid()
	values := make([]float64, grid.Len())
	pool := sampler.NewPool(cfg.Sampling.Workers)
	defer pool.Close()
	if err := pool.Sample(src, grid, values); err != nil {
		return telemetry.SampleStats{}, err
	}

	stats := telemetry.ComputeSampleStats(cfg.Source.Type, values)
	lo, hi := -1.0, 1.0
	if autoRange && stats.Max > stats.Min {
		lo, hi = stats.Min, stats.Max
	}

	img := render(values, grid.Width, grid.Height, lo, hi, colorize)
	f, err := os.Create(path)
	if err != nil {
		return stats, fmt.Errorf("creating %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return stats, fmt.Errorf("encoding %s: %w", path, err)
	}
	return stats, f.Close()
}

// render maps values in [lo, hi] through colorize. Row 0 is the top of the
// image.
func render(values []float64, w, h int, lo, hi float64, colorize func(float64) color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	span := hi - lo
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := (values[y*w+x] - lo) / span
			img.SetRGBA(x, y, colorize(clamp01(v)))
		}
	}
	return img
}

func paletteFunc(name string) (func(float64) color.RGBA, error) {
	switch name {
	case "heat":
		return heat, nil
	case "gray":
		return gray, nil
	}
	return nil, fmt.Errorf("unknown palette %q", name)
}

// clamp01 clamps x to [0, 1]; NaN maps to 0.
func clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func gray(v float64) color.RGBA {
	c := uint8(v * 255)
	return color.RGBA{R: c, G: c, B: c, A: 255}
}

// heat is a color gradient: dark blue -> cyan -> yellow -> white
func heat(v float64) color.RGBA {
	var r, g, b float64
	if v < 0.25 {
		// Dark blue to blue
		t := v / 0.25
		r, g, b = 10+t*30, 20+t*60, 60+t*100
	} else if v < 0.5 {
		// Blue to cyan
		t := (v - 0.25) / 0.25
		r, g, b = 40+t*20, 80+t*120, 160+t*40
	} else if v < 0.75 {
		// Cyan to yellow-green
		t := (v - 0.5) / 0.25
		r, g, b = 60+t*140, 200-t*40, 200-t*150
	} else {
		// Yellow-green to white
		t := (v - 0.75) / 0.25
		r, g, b = 200+t*55, 160+t*95, 50+t*205
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}
