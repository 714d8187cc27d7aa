// Package render prints decompositions, explanations and history as
// colored text, JSON or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/ShayCichocki/tasksplit/internal/config"
	"github.com/ShayCichocki/tasksplit/internal/decompose"
	"github.com/ShayCichocki/tasksplit/pkg/models"
)

// Plan is one decomposed request ready for display.
type Plan struct {
	RunID          string                `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Request        string                `json:"request" yaml:"request"`
	Classification models.Classification `json:"classification" yaml:"classification"`
	Items          []models.TaskItem     `json:"items" yaml:"items"`
	Summary        decompose.Summary     `json:"summary" yaml:"summary"`
}

// Renderer writes values in a single output format.
type Renderer struct {
	out    io.Writer
	format string

	heading *color.Color
	label   *color.Color
	id      *color.Color
	warn    *color.Color
	faint   *color.Color
}

// New creates a renderer for the given format. Colors only apply to text output.
func New(out io.Writer, format string, useColor bool) (*Renderer, error) {
	switch format {
	case config.FormatText, config.FormatJSON, config.FormatYAML:
	default:
		return nil, fmt.Errorf("%w: unknown output format %q", config.ErrInvalidConfig, format)
	}

	r := &Renderer{
		out:     out,
		format:  format,
		heading: color.New(color.FgCyan, color.Bold),
		label:   color.New(color.Bold),
		id:      color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		faint:   color.New(color.Faint),
	}
	for _, c := range []*color.Color{r.heading, r.label, r.id, r.warn, r.faint} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r, nil
}

// Plan renders a single decomposition.
func (r *Renderer) Plan(p Plan) error {
	if r.format != config.FormatText {
		return r.structured(p)
	}
	r.textPlan(p)
	return nil
}

// Plans renders several decompositions in order.
func (r *Renderer) Plans(plans []Plan) error {
	if r.format != config.FormatText {
		if plans == nil {
			plans = []Plan{}
		}
		return r.structured(plans)
	}
	for i, p := range plans {
		if i > 0 {
			fmt.Fprintln(r.out, r.faint.Sprint(strings.Repeat("-", 60)))
		}
		r.textPlan(p)
	}
	return nil
}

func (r *Renderer) structured(v any) error {
	if r.format == config.FormatYAML {
		return r.yaml(v)
	}
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

func (r *Renderer) yaml(v any) error {
	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

func (r *Renderer) textPlan(p Plan) {
	w := r.out
	c := p.Classification

	fmt.Fprintf(w, "%s %s\n", r.heading.Sprint("REQUEST:"), p.Request)
	fmt.Fprintf(w, "%s %s\n", r.label.Sprint("Categories:"), joinOrDash(categoryNames(c.Categories)))
	fmt.Fprintf(w, "%s %s\n", r.label.Sprint("Complexity:"), c.Complexity)
	fmt.Fprintf(w, "%s %s\n", r.label.Sprint("Approach:"), c.Approach)
	if len(c.Requirements) > 0 {
		fmt.Fprintln(w, r.label.Sprint("Requirements:"))
		for _, req := range c.Requirements {
			fmt.Fprintf(w, "  - %s\n", req)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, r.heading.Sprintf("Items (%d):", len(p.Items)))
	for _, item := range p.Items {
		fmt.Fprintf(w, "  %s  %-20s %s\n", r.id.Sprint(item.ID), item.Category, item.Description)
		fmt.Fprintf(w, "          depends on: %s\n", joinOrDash(item.DependsOn))
		if unblocks := p.Summary.Unblocks[item.ID]; len(unblocks) > 0 {
			fmt.Fprintf(w, "          unblocks: %s\n", strings.Join(unblocks, ", "))
		}
		fmt.Fprintf(w, "          tokens: %d   handlers: %s\n", item.EstimatedTokens, strings.Join(item.Handlers, ", "))
	}
	if len(p.Items) > 0 {
		fmt.Fprintln(w)
	}

	s := p.Summary
	fmt.Fprintf(w, "%s %d items, %d tokens, parallelism %d\n",
		r.heading.Sprint("Plan:"), s.TotalItems, s.TotalTokens, s.Parallelism)
	for i, wave := range s.Waves {
		fmt.Fprintf(w, "  Wave %d: %s\n", i+1, strings.Join(wave, ", "))
	}
	if len(s.CriticalPath) > 0 {
		fmt.Fprintf(w, "%s %s (%d tokens)\n",
			r.label.Sprint("Critical path:"), strings.Join(s.CriticalPath, " -> "), s.CriticalPathTokens)
	}
	for _, warning := range s.Warnings {
		fmt.Fprintf(w, "%s %s\n", r.warn.Sprint("⚠"), warning)
	}
	if p.RunID != "" {
		fmt.Fprintf(w, "%s %s\n", r.faint.Sprint("Run ID:"), p.RunID)
	}
}

func categoryNames(categories []models.Category) []string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.String()
	}
	return names
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}
