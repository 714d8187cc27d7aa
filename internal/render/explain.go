package render

import (
	"fmt"

	"github.com/ShayCichocki/tasksplit/internal/classify"
	"github.com/ShayCichocki/tasksplit/internal/config"
	"github.com/ShayCichocki/tasksplit/pkg/models"
)

// Classification renders a classification without its items.
func (r *Renderer) Classification(c models.Classification) error {
	if r.format != config.FormatText {
		return r.structured(c)
	}

	fmt.Fprintf(r.out, "%s %s\n", r.label.Sprint("Categories:"), joinOrDash(categoryNames(c.Categories)))
	fmt.Fprintf(r.out, "%s %s\n", r.label.Sprint("Complexity:"), c.Complexity)
	fmt.Fprintf(r.out, "%s %s\n", r.label.Sprint("Approach:"), c.Approach)
	fmt.Fprintf(r.out, "%s %s\n", r.label.Sprint("Requirements:"), joinOrDash(c.Requirements))
	return nil
}

// Explanation renders the phrases behind a classification.
func (r *Renderer) Explanation(e classify.Explanation) error {
	if r.format != config.FormatText {
		if e.Matches == nil {
			e.Matches = []classify.Match{}
		}
		return r.structured(e)
	}

	fmt.Fprintln(r.out, r.heading.Sprint("Matched categories:"))
	if len(e.Matches) == 0 {
		fmt.Fprintln(r.out, "  (none)")
	}
	for _, m := range e.Matches {
		fmt.Fprintf(r.out, "  %-22s %q\n", m.Category, m.Phrase)
	}

	phrase := "default"
	if e.ComplexityPhrase != "" {
		phrase = fmt.Sprintf("%q", e.ComplexityPhrase)
	}
	fmt.Fprintf(r.out, "%s %s (%s)\n", r.label.Sprint("Complexity:"), e.Complexity, phrase)
	return nil
}
