// Package view renders review console states as plain text.
package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/ferreirab/reviewdesk"
)

// Renderer displays transcription lists, detail views, and evaluation
// results. Renderers write display states only; they never mutate session
// state.
type Renderer struct{}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// List displays a specialist's transcription list, one labeled entry per
// transcription. An empty list renders the no-transcriptions state.
func (r *Renderer) List(w io.Writer, specialist string, list []reviewdesk.Transcription) error {
	fmt.Fprintf(w, "Transcriptions for %s\n", specialist)
	fmt.Fprintln(w, strings.Repeat("=", 60))

	if len(list) == 0 {
		fmt.Fprintln(w, "No transcriptions found for this specialist.")
		return nil
	}

	for _, t := range list {
		fmt.Fprintf(w, "%s\n  Processed on: %s\n", t.ID, reviewdesk.ProcessedDate(t.Filename))
	}

	return nil
}

// Detail displays a selected transcription: call data, file metadata, the
// evaluated performance table with the reviewer's score column, the
// improvement suggestion, and the content.
func (r *Renderer) Detail(w io.Writer, t reviewdesk.Transcription, rows []reviewdesk.ReviewRow) error {
	fmt.Fprintf(w, "Transcription Details - %s\n", t.ID)
	fmt.Fprintln(w, strings.Repeat("=", 60))

	fmt.Fprintln(w, "\nCall Data")
	fmt.Fprintf(w, "  Successful call: %s\n", t.SuccessfulCall)
	fmt.Fprintf(w, "  Identified client: %s\n", t.IdentifiedClient)
	fmt.Fprintf(w, "  Classification: %s\n", t.Classification)

	fmt.Fprintln(w, "\nCall Metadata")
	fmt.Fprintf(w, "  Transcription file: %s\n", t.Filename)
	fmt.Fprintf(w, "  Audio file: %s\n", t.Filename)

	fmt.Fprintln(w, "\nEvaluated Performance")
	r.writeRows(w, rows)

	fmt.Fprintln(w, "\nImprovement Suggestions")
	fmt.Fprintf(w, "  %s\n", t.ImprovementSuggestion)

	fmt.Fprintln(w, "\nTranscription Content")
	fmt.Fprintln(w, t.Content)

	return nil
}

// Evaluations displays every evaluation record as its own labeled section.
// Zero records renders the empty-results state, not an error.
func (r *Renderer) Evaluations(w io.Writer, views []reviewdesk.RecordView) error {
	if len(views) == 0 {
		fmt.Fprintln(w, "No evaluation results for this transcription.")
		return nil
	}

	for _, v := range views {
		fmt.Fprintf(w, "Evaluation #%d\n", v.Ordinal)
		fmt.Fprintln(w, strings.Repeat("-", 60))
		fmt.Fprintf(w, "Classification: %s | Overall score: %.1f\n", v.Classification, v.OverallScore)
		if v.ImprovementSuggestion != "" {
			fmt.Fprintf(w, "Improvement suggestion: %s\n", v.ImprovementSuggestion)
		}
		r.writeRows(w, v.Rows)
		fmt.Fprintln(w)
	}

	return nil
}

// PromptEvaluation displays a single-shot prompt evaluation result with its
// sub-items indented under the main row.
func (r *Renderer) PromptEvaluation(w io.Writer, result reviewdesk.PromptEvaluation) error {
	fmt.Fprintln(w, "Evaluation Results")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintf(w, "%s | %s | score %.1f | %s\n",
		result.Item, result.Description, result.Score, result.Rationale)

	for _, sub := range result.SubItems {
		fmt.Fprintf(w, "    %s | %s | score %.1f | %s\n",
			sub.Name, sub.Description, sub.Score, sub.Rationale)
	}

	return nil
}

func (r *Renderer) writeRows(w io.Writer, rows []reviewdesk.ReviewRow) {
	for _, row := range rows {
		human := "-"
		if row.HasHumanScore {
			human = fmt.Sprintf("%.1f", row.HumanScore)
		}

		fmt.Fprintf(w, "  %s | %s | AI score %.1f | %s | reviewer %s\n",
			row.Item, row.SubItem, row.MachineScore, row.Rationale, human)

		for _, sub := range row.SubCriteria {
			fmt.Fprintf(w, "      %s | score %.1f | %s\n", sub.Name, sub.Score, sub.Rationale)
		}
	}
}
