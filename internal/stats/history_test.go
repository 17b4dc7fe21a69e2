package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/wordstats/internal/model"
)

func TestRenderHistory(t *testing.T) {
	runs := []model.RunRecord{
		{
			RunID:     7,
			StartedAt: time.Unix(0, 0),
			Lists: []model.ListRecord{
				{
					Stats: model.Stats{
						ListName:        "eff.txt",
						WordCount:       7776,
						UniqueWordCount: 7776,
						MinLength:       3,
						MaxLength:       9,
						MeanLength:      6.9946,
						MedianLength:    7,
						StdDev:          1.6,
						FirstQuartile:   6,
						ThirdQuartile:   8,
					},
					PlotFile: "histogram_word_lengths_eff.png",
				},
			},
		},
	}
	var buf bytes.Buffer
	if err := RenderHistory(&buf, runs); err != nil {
		t.Fatalf("RenderHistory failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Run 7", "eff.txt", "7776", "6.99", "histogram_word_lengths_eff.png"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no escape sequences for non-terminal writer")
	}
}

func TestRenderHistoryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderHistory(&buf, nil); err != nil {
		t.Fatalf("RenderHistory failed: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "No runs recorded." {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
