// Package analyzer runs word list analysis and assembles the report.
package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/verte-zerg/wordstats/internal/model"
	"github.com/verte-zerg/wordstats/internal/plot"
	"github.com/verte-zerg/wordstats/internal/stats"
	"github.com/verte-zerg/wordstats/internal/wordlist"
)

// Analyzer computes stats and histograms for word lists under BaseDir.
type Analyzer struct {
	BaseDir  string
	OutDir   string
	Renderer plot.Renderer
}

// New returns an Analyzer for the given configuration.
func New(cfg model.RunConfig, renderer plot.Renderer) *Analyzer {
	return &Analyzer{BaseDir: cfg.BaseDir, OutDir: cfg.OutDir, Renderer: renderer}
}

// AnalyzeFile loads one word list, summarizes it and renders its histogram.
// An empty list is an error and produces no image.
func (a *Analyzer) AnalyzeFile(name string) (model.Result, error) {
	words, err := wordlist.LoadWords(filepath.Join(a.BaseDir, name))
	if err != nil {
		return model.Result{}, fmt.Errorf("failed to load word list %s: %w", name, err)
	}
	summary, err := stats.Summarize(name, words)
	if err != nil {
		return model.Result{}, fmt.Errorf("%s: %w", name, err)
	}

	plotFile := plot.HistogramFilename(name)
	bins := stats.Bins(stats.Lengths(words))
	if err := a.Renderer.RenderHistogram(filepath.Join(a.OutDir, plotFile), plot.Title(name), bins); err != nil {
		return model.Result{}, fmt.Errorf("failed to render histogram for %s: %w", name, err)
	}
	return model.Result{Stats: summary, PlotFile: plotFile}, nil
}

// Run analyzes every configured file in order. The first failure aborts.
func Run(ctx context.Context, cfg model.RunConfig, renderer plot.Renderer) ([]model.Result, error) {
	a := New(cfg, renderer)
	results := make([]model.Result, 0, len(cfg.Files))
	for _, name := range cfg.Files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := a.AnalyzeFile(name)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// WriteJSON writes results as an indented JSON array.
func WriteJSON(w io.Writer, results []model.Result) error {
	if results == nil {
		results = []model.Result{}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
