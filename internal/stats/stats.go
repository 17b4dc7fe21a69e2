// Package stats contains statistics calculations and reporting.
package stats

import (
	"errors"
	"math"
	"sort"
	"unicode/utf8"

	moremath "github.com/aclements/go-moremath/stats"

	"github.com/verte-zerg/wordstats/internal/model"
)

// ErrEmptyWordList is returned when a word list has no entries.
var ErrEmptyWordList = errors.New("word list is empty")

// Lengths returns the length of every word in code points.
func Lengths(words []string) []int {
	out := make([]int, len(words))
	for i, word := range words {
		out[i] = utf8.RuneCountInString(word)
	}
	return out
}

// UniqueCount returns the number of distinct words.
func UniqueCount(words []string) int {
	seen := make(map[string]struct{}, len(words))
	for _, word := range words {
		seen[word] = struct{}{}
	}
	return len(seen)
}

// Percentile returns the p-th percentile (0-100) of sorted values,
// interpolating linearly between the two closest ranks.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}
	h := float64(len(sorted)-1) * p / 100
	lo := int(math.Floor(h))
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// PopulationStdDev computes the standard deviation with divisor N.
func PopulationStdDev(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	mean := moremath.Mean(values)
	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}

// Summarize builds the statistics record for a named word list.
func Summarize(name string, words []string) (model.Stats, error) {
	if len(words) == 0 {
		return model.Stats{}, ErrEmptyWordList
	}
	lengths := Lengths(words)
	values := make([]float64, len(lengths))
	for i, l := range lengths {
		values[i] = float64(l)
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	minLen, maxLen := moremath.Bounds(values)
	return model.Stats{
		ListName:        name,
		WordCount:       len(words),
		UniqueWordCount: UniqueCount(words),
		MinLength:       int(minLen),
		MaxLength:       int(maxLen),
		MeanLength:      moremath.Mean(values),
		MedianLength:    Percentile(sorted, 50),
		StdDev:          PopulationStdDev(values),
		FirstQuartile:   Percentile(sorted, 25),
		ThirdQuartile:   Percentile(sorted, 75),
	}, nil
}

// Bins counts lengths into one bin per integer from min to max inclusive.
func Bins(lengths []int) []model.Bin {
	if len(lengths) == 0 {
		return nil
	}
	minLen, maxLen := lengths[0], lengths[0]
	for _, l := range lengths[1:] {
		if l < minLen {
			minLen = l
		}
		if l > maxLen {
			maxLen = l
		}
	}
	bins := make([]model.Bin, maxLen-minLen+1)
	for i := range bins {
		bins[i].Length = minLen + i
	}
	for _, l := range lengths {
		bins[l-minLen].Count++
	}
	return bins
}
