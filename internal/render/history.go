package render

import (
	"fmt"
	"time"

	"github.com/ShayCichocki/tasksplit/internal/config"
	"github.com/ShayCichocki/tasksplit/internal/state"
)

// maxRequestWidth truncates requests in history listings.
const maxRequestWidth = 48

// Runs renders a history listing.
func (r *Renderer) Runs(runs []state.Run) error {
	if r.format != config.FormatText {
		if runs == nil {
			runs = []state.Run{}
		}
		return r.structured(runs)
	}

	if len(runs) == 0 {
		fmt.Fprintln(r.out, "No runs recorded.")
		return nil
	}
	for _, run := range runs {
		fmt.Fprintf(r.out, "%s  %s  %-10s %6d tokens  %s\n",
			r.id.Sprint(run.ID),
			r.faint.Sprint(run.CreatedAt.Local().Format(time.DateTime)),
			run.Classification.Complexity,
			run.TotalTokens,
			truncate(run.Request, maxRequestWidth),
		)
	}
	return nil
}

// CategoryStats renders per-category history totals.
func (r *Renderer) CategoryStats(stats []state.CategoryCount) error {
	if r.format != config.FormatText {
		if stats == nil {
			stats = []state.CategoryCount{}
		}
		return r.structured(stats)
	}

	if len(stats) == 0 {
		fmt.Fprintln(r.out, "No runs recorded.")
		return nil
	}
	fmt.Fprintln(r.out, r.heading.Sprintf("%-22s %6s %10s", "CATEGORY", "ITEMS", "TOKENS"))
	for _, s := range stats {
		fmt.Fprintf(r.out, "%-22s %6d %10d\n", s.Category, s.Items, s.Tokens)
	}
	return nil
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}
