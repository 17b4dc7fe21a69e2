// Package model defines shared data structures.
package model

import "time"

// RunConfig defines which word lists are analyzed and where output goes.
type RunConfig struct {
	BaseDir string
	Files   []string
	OutDir  string
}

// Stats is the statistics record for one word list.
type Stats struct {
	ListName        string  `json:"List Name"`
	WordCount       int     `json:"Word Count"`
	UniqueWordCount int     `json:"Unique Word Count"`
	MinLength       int     `json:"Min word length"`
	MaxLength       int     `json:"Max word length"`
	MeanLength      float64 `json:"Mean word length"`
	MedianLength    float64 `json:"Median word length"`
	StdDev          float64 `json:"Word length standard deviation"`
	FirstQuartile   float64 `json:"First quartile of word length"`
	ThirdQuartile   float64 `json:"Third quartile of word length"`
}

// Result pairs a statistics record with the histogram it produced.
type Result struct {
	Stats    Stats  `json:"stats"`
	PlotFile string `json:"plot_file"`
}

// Bin counts words of a single length. It covers [Length, Length+1).
type Bin struct {
	Length int
	Count  int
}

// RunRecord summarizes a recorded analysis run.
type RunRecord struct {
	RunID     int64
	StartedAt time.Time
	Lists     []ListRecord
}

// ListRecord is one analyzed list within a recorded run.
type ListRecord struct {
	Stats    Stats
	PlotFile string
}
