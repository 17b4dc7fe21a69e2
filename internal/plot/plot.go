// Package plot renders word length histograms as images.
package plot

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	gonum "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/verte-zerg/wordstats/internal/model"
)

const (
	// DefaultDPI is the raster resolution of written histograms.
	DefaultDPI     = 300
	defaultWidth   = 6.4 * vg.Inch
	defaultHeight  = 4.8 * vg.Inch
	filenamePrefix = "histogram_word_lengths_"
	xAxisLabel     = "Word Length"
	yAxisLabel     = "Count"
)

var barColor = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

// Renderer writes a histogram image for a set of bins.
type Renderer interface {
	RenderHistogram(path, title string, bins []model.Bin) error
}

// PNGRenderer renders histograms to PNG files.
type PNGRenderer struct {
	Width  vg.Length
	Height vg.Length
	DPI    int
}

// NewPNGRenderer returns a renderer with the default size and DPI.
func NewPNGRenderer() *PNGRenderer {
	return &PNGRenderer{Width: defaultWidth, Height: defaultHeight, DPI: DefaultDPI}
}

// HistogramFilename derives the image name for an input word list.
func HistogramFilename(input string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		// Dotfiles like ".words" have no extension to strip.
		stem = base
	}
	return filenamePrefix + stem + ".png"
}

// Title returns the plot title for an input word list.
func Title(input string) string {
	return fmt.Sprintf("Histogram: Word Lengths in %s", input)
}

// RenderHistogram draws one bar per bin and writes the PNG to path,
// replacing any existing file.
func (r *PNGRenderer) RenderHistogram(path, title string, bins []model.Bin) error {
	if len(bins) == 0 {
		return fmt.Errorf("no bins to plot")
	}
	p := newHistogramPlot(title, bins)
	canvas := vgimg.NewWith(vgimg.UseWH(r.Width, r.Height), vgimg.UseDPI(r.DPI))
	p.Draw(draw.New(canvas))

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create histogram: %w", err)
	}
	if _, err := (vgimg.PngCanvas{Canvas: canvas}).WriteTo(file); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to encode histogram: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close histogram: %w", err)
	}
	return nil
}

func newHistogramPlot(title string, bins []model.Bin) *gonum.Plot {
	p := gonum.New()
	p.Title.Text = title
	p.X.Label.Text = xAxisLabel
	p.Y.Label.Text = yAxisLabel

	hist := &plotter.Histogram{
		Bins:      barBins(bins),
		Width:     1,
		FillColor: barColor,
		LineStyle: plotter.DefaultLineStyle,
	}
	p.Add(hist)
	p.X.Tick.Marker = gonum.ConstantTicks(lengthTicks(bins))
	p.Y.Min = 0
	return p
}

// barBins centres each bar on its length, so the bin for v is drawn over
// [v-0.5, v+0.5) and its tick sits under the middle of the bar.
func barBins(bins []model.Bin) []plotter.HistogramBin {
	out := make([]plotter.HistogramBin, len(bins))
	for i, b := range bins {
		x := float64(b.Length)
		out[i] = plotter.HistogramBin{Min: x - 0.5, Max: x + 0.5, Weight: float64(b.Count)}
	}
	return out
}

func lengthTicks(bins []model.Bin) []gonum.Tick {
	ticks := make([]gonum.Tick, len(bins))
	for i, b := range bins {
		ticks[i] = gonum.Tick{Value: float64(b.Length), Label: strconv.Itoa(b.Length)}
	}
	return ticks
}
