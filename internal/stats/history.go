package stats

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/verte-zerg/wordstats/internal/model"
)

const runTimeLayout = "2006-01-02 15:04:05"

var headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)

// RenderHistory prints recorded runs, one table per run.
func RenderHistory(w io.Writer, runs []model.RunRecord) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs recorded.")
		return err
	}
	useStyle := shouldUseColor(w)
	headers := []string{"List", "Words", "Unique", "Min", "Max", "Mean", "Median", "StdDev", "Q1", "Q3", "Plot"}
	rightAlign := map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true, 6: true, 7: true, 8: true, 9: true}
	for _, run := range runs {
		title := fmt.Sprintf("Run %d (%s)", run.RunID, run.StartedAt.Local().Format(runTimeLayout))
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
		rows := make([][]string, 0, len(run.Lists))
		for _, list := range run.Lists {
			s := list.Stats
			rows = append(rows, []string{
				s.ListName,
				fmt.Sprintf("%d", s.WordCount),
				fmt.Sprintf("%d", s.UniqueWordCount),
				fmt.Sprintf("%d", s.MinLength),
				fmt.Sprintf("%d", s.MaxLength),
				fmt.Sprintf("%.2f", s.MeanLength),
				fmt.Sprintf("%.1f", s.MedianLength),
				fmt.Sprintf("%.2f", s.StdDev),
				fmt.Sprintf("%.2f", s.FirstQuartile),
				fmt.Sprintf("%.2f", s.ThirdQuartile),
				list.PlotFile,
			})
		}
		lines := formatTable(headers, rows, rightAlign)
		for i, line := range lines {
			if i == 0 && useStyle {
				line = headerStyle.Render(line)
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, ""); err != nil {
			return err
		}
	}
	return nil
}

func shouldUseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
