// Package report renders evaluation and classification output as fixed-order
// tables, so repeated runs over the same corpus stay diff-able.
package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/jonesrussell/screensift/internal/domain"
	"github.com/jonesrussell/screensift/internal/evaluation"
)

// Render writes the confusion matrix, per-label metrics and run summary for
// one evaluation report.
func Render(w io.Writer, rep *evaluation.Report) {
	fmt.Fprintf(w, "threshold: %g\n", rep.Threshold)
	renderMatrix(w, rep)
	renderMetrics(w, rep)
	renderSummary(w, rep)
}

func renderMatrix(w io.Writer, rep *evaluation.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := table.Row{"true \\ predicted"}
	for _, p := range domain.Labels() {
		header = append(header, string(p))
	}
	header = append(header, "unclassifiable")
	t.AppendHeader(header)

	for _, tl := range domain.Labels() {
		row := table.Row{string(tl)}
		for _, p := range domain.Labels() {
			row = append(row, rep.Matrix.Count(tl, p))
		}
		row = append(row, rep.Unclassifiable[tl])
		t.AppendRow(row)
	}
	t.Render()
}

func renderMetrics(w io.Writer, rep *evaluation.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"label", "precision", "recall", "tp", "predicted", "actual"})

	for _, label := range domain.Labels() {
		m := rep.PerLabel[label]
		t.AppendRow(table.Row{
			string(label),
			formatPrecision(m),
			formatRecall(m),
			m.TruePositives,
			m.PredictedCount,
			m.ActualCount,
		})
	}
	t.Render()
}

func formatPrecision(m evaluation.LabelMetrics) string {
	if m.NeverPredicted {
		return "n/a (never predicted)"
	}
	return fmt.Sprintf("%.3f", m.Precision)
}

func formatRecall(m evaluation.LabelMetrics) string {
	if m.AbsentFromDataset {
		return "n/a (no samples)"
	}
	return fmt.Sprintf("%.3f", m.Recall)
}

func renderSummary(w io.Writer, rep *evaluation.Report) {
	fmt.Fprintf(w, "accuracy: %.3f  samples: %d  classified: %d  skipped malformed: %d  unclassifiable: %d\n",
		rep.Accuracy, rep.TotalSamples, rep.Classified, rep.SkippedMalformed, rep.UnclassifiableTotal())
	if rep.Partial {
		fmt.Fprintln(w, "warning: run was cancelled early; counts cover processed samples only")
	}
}

// RenderSweep writes a compact per-threshold comparison table, in the order
// the thresholds were evaluated.
func RenderSweep(w io.Writer, reports []*evaluation.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := table.Row{"threshold", "accuracy"}
	for _, label := range domain.ScoredLabels() {
		header = append(header, string(label)+" P", string(label)+" R")
	}
	t.AppendHeader(header)

	for _, rep := range reports {
		row := table.Row{fmt.Sprintf("%g", rep.Threshold), fmt.Sprintf("%.3f", rep.Accuracy)}
		for _, label := range domain.ScoredLabels() {
			m := rep.PerLabel[label]
			row = append(row, formatPrecision(m), formatRecall(m))
		}
		t.AppendRow(row)
	}
	t.Render()

	for _, rep := range reports {
		if rep.Partial {
			fmt.Fprintln(w, "warning: run was cancelled early; counts cover processed samples only")
			break
		}
	}
}

// RenderClassification writes the score vector for one record and, when
// requested, the per-rule contributions behind each score.
func RenderClassification(w io.Writer, result *domain.ClassificationResult, breakdown bool) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"category", "score"})
	for _, label := range domain.ScoredLabels() {
		t.AppendRow(table.Row{string(label), fmt.Sprintf("%.1f", result.Scores[label])})
	}
	t.Render()

	if !breakdown {
		return
	}
	for _, label := range domain.ScoredLabels() {
		rules := result.Breakdown[label]
		if len(rules) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s rules:\n", label)
		bt := table.NewWriter()
		bt.SetOutputMirror(w)
		bt.SetStyle(table.StyleLight)
		bt.AppendHeader(table.Row{"rule", "weight", "indicator", "contribution"})
		for _, r := range rules {
			bt.AppendRow(table.Row{r.Rule,
				fmt.Sprintf("%g", r.Weight),
				fmt.Sprintf("%g", r.Indicator),
				fmt.Sprintf("%g", r.Contribution),
			})
		}
		bt.Render()
	}
}
