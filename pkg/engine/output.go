package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"gopkg.in/yaml.v3"

	"github.com/wildfunctions/solve24/pkg/expr"
)

// Write dispatches to the writer selected by cfg.Format.
func Write(w io.Writer, r Report, cfg Config) error {
	notation, _ := expr.ParseNotation(cfg.Notation)
	switch cfg.Format {
	case FormatJSON:
		return WriteJSON(w, r)
	case FormatYAML:
		return WriteYAML(w, r)
	case FormatMarkdown:
		WriteMarkdown(w, r, notation, cfg.Explain)
		return nil
	case FormatPretty:
		return WritePretty(w, r, notation, cfg.Explain)
	default:
		WriteText(w, r, notation, cfg.Explain)
		return nil
	}
}

// cardLabel renders the card the same way card.Card.String does.
func cardLabel(r Report) string {
	vals := make([]string, len(r.Numbers))
	for i, v := range r.Numbers {
		vals[i] = expr.FormatValue(v)
	}
	return fmt.Sprintf("[%s] -> %s", strings.Join(vals, " "), expr.FormatValue(r.Target))
}

// WriteText writes the report in human-readable format.
func WriteText(w io.Writer, r Report, notation expr.Notation, explain bool) {
	fmt.Fprintf(w, "Card:      %s\n", cardLabel(r))
	fmt.Fprintf(w, "Pool:      %s\n", r.Pool)
	if r.Count == 0 {
		fmt.Fprintln(w, "No solutions.")
		return
	}
	more := ""
	if r.Truncated {
		more = " (limit reached)"
	}
	fmt.Fprintf(w, "Solutions: %d%s\n", r.Count, more)
	for _, s := range r.Solutions {
		fmt.Fprintf(w, "  #%d: %s = %s\n", s.Index, s.Render(notation), expr.FormatValue(s.Value))
		if explain {
			for _, step := range s.Steps {
				fmt.Fprintf(w, "        %s\n", step)
			}
		}
	}
}

// WriteJSON writes the report as JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteYAML writes the report as YAML.
func WriteYAML(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

// WriteMarkdown writes the report as a markdown table with one row per
// solution.
func WriteMarkdown(w io.Writer, r Report, notation expr.Notation, explain bool) {
	fmt.Fprintf(w, "## %s\n\n", cardLabel(r))
	if r.Count == 0 {
		fmt.Fprintln(w, "No solutions.")
		return
	}
	if explain {
		fmt.Fprintln(w, "| # | Solution | Value | Explanation |")
		fmt.Fprintln(w, "|---|----------|-------|-------------|")
	} else {
		fmt.Fprintln(w, "| # | Solution | Value |")
		fmt.Fprintln(w, "|---|----------|-------|")
	}
	for _, s := range r.Solutions {
		row := fmt.Sprintf("| %d | `%s` | %s |", s.Index, s.Render(notation), expr.FormatValue(s.Value))
		if explain {
			row += " " + strings.Join(s.Steps, "; ") + " |"
		}
		fmt.Fprintln(w, row)
	}
	if r.Truncated {
		fmt.Fprintf(w, "\n_Stopped after %d solutions._\n", r.Count)
	}
}

// WritePretty renders the markdown report for a terminal.
func WritePretty(w io.Writer, r Report, notation expr.Notation, explain bool) error {
	var md strings.Builder
	WriteMarkdown(&md, r, notation, explain)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	out, err := renderer.Render(md.String())
	if err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
