// Package output writes suite results as text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/dokchess-go/internal/errors"
	"github.com/lgbarn/dokchess-go/internal/suite"
)

// ResultWriter is the interface for writing suite results.
// Different implementations handle different output formats.
type ResultWriter interface {
	// WriteResult writes a single case result.
	WriteResult(r suite.Result) error

	// Close writes the summary and any pending output.
	Close(summary suite.Summary) error
}

// New returns the writer for a format name ("text" or "json").
func New(w io.Writer, format string) (ResultWriter, error) {
	switch format {
	case FormatText, "":
		return NewTextWriter(w), nil
	case FormatJSON:
		return NewJSONWriter(w), nil
	}
	return nil, fmt.Errorf("unknown output format %q: %w", format, errors.ErrInvalidConfig)
}

// Output format names.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Verdict labels a result: PASS, FAIL or NONE when there was no move.
func Verdict(r suite.Result) string {
	switch {
	case !r.Found:
		return "NONE"
	case r.Passed:
		return "PASS"
	}
	return "FAIL"
}

// TextWriter writes one line per case and the summary line.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteResult writes "<verdict> <case> <move>".
func (tw *TextWriter) WriteResult(r suite.Result) error {
	move := "-"
	if r.Found {
		move = r.Move.String()
	}
	_, err := fmt.Fprintf(tw.w, "%s %s %s\n", Verdict(r), r.Case.Name, move)
	return err
}

// Close writes the summary line.
func (tw *TextWriter) Close(summary suite.Summary) error {
	_, err := fmt.Fprintln(tw.w, summary)
	return err
}

// JSONResult represents a case result in JSON format.
type JSONResult struct {
	Name      string   `json:"name"`
	Line      int      `json:"line,omitempty"`
	FEN       string   `json:"fen"`
	Move      string   `json:"move,omitempty"`
	Score     int      `json:"score"`
	Nodes     uint64   `json:"nodes"`
	Verdict   string   `json:"verdict"`
	BestMoves []string `json:"bestMoves,omitempty"`
	Avoid     []string `json:"avoidMoves,omitempty"`
}

// JSONSummary represents the suite totals in JSON format.
type JSONSummary struct {
	Total  int    `json:"total"`
	Passed int    `json:"passed"`
	Failed int    `json:"failed"`
	NoMove int    `json:"noMove"`
	Nodes  uint64 `json:"nodes"`
}

// JSONOutput holds a whole run.
type JSONOutput struct {
	Results []JSONResult `json:"results"`
	Summary JSONSummary  `json:"summary"`
}

// JSONWriter buffers results and writes them as one document on Close.
type JSONWriter struct {
	w       io.Writer
	results []JSONResult
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:       w,
		results: make([]JSONResult, 0),
	}
}

// WriteResult buffers a result.
func (jw *JSONWriter) WriteResult(r suite.Result) error {
	jw.results = append(jw.results, ResultToJSON(r))
	return nil
}

// Close writes the buffered results and the summary.
func (jw *JSONWriter) Close(summary suite.Summary) error {
	out := &JSONOutput{
		Results: jw.results,
		Summary: JSONSummary{
			Total:  summary.Total,
			Passed: summary.Passed,
			Failed: summary.Failed,
			NoMove: summary.NoMove,
			Nodes:  summary.Nodes,
		},
	}
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(out)

	jw.results = jw.results[:0]
	return err
}

// ResultToJSON converts a suite result to JSON format.
func ResultToJSON(r suite.Result) JSONResult {
	jr := JSONResult{
		Name:    r.Case.Name,
		Line:    r.Case.Line,
		FEN:     r.Case.Position.FEN(),
		Score:   r.Score,
		Nodes:   r.Nodes,
		Verdict: Verdict(r),
	}
	if r.Found {
		jr.Move = r.Move.String()
	}
	for _, m := range r.Case.BestMoves {
		jr.BestMoves = append(jr.BestMoves, m.String())
	}
	for _, m := range r.Case.AvoidMoves {
		jr.Avoid = append(jr.Avoid, m.String())
	}
	return jr
}

// WriteAll writes every result and closes the writer.
func WriteAll(rw ResultWriter, results []suite.Result, summary suite.Summary) error {
	for _, r := range results {
		if err := rw.WriteResult(r); err != nil {
			return err
		}
	}
	return rw.Close(summary)
}
