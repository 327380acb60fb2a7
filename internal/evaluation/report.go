package evaluation

import "github.com/jonesrussell/screensift/internal/domain"

// LabelMetrics holds precision and recall for one label. The flags separate
// an undefined metric (empty denominator) from a genuine zero; collapsing
// the two would hide a classifier that never predicts a label at all.
type LabelMetrics struct {
	Precision      float64 `json:"precision"`
	Recall         float64 `json:"recall"`
	TruePositives  int     `json:"true_positives"`
	PredictedCount int     `json:"predicted_count"`
	ActualCount    int     `json:"actual_count"`
	// NeverPredicted marks precision as undefined: the label was never
	// predicted on this corpus.
	NeverPredicted bool `json:"never_predicted"`
	// AbsentFromDataset marks recall as undefined: the corpus holds no
	// samples with this true label.
	AbsentFromDataset bool `json:"absent_from_dataset"`
}

// Report is the outcome of evaluating a labelled corpus at one threshold.
type Report struct {
	Threshold        float64                       `json:"threshold"`
	Matrix           *ConfusionMatrix              `json:"-"`
	PerLabel         map[domain.Label]LabelMetrics `json:"per_label"`
	Accuracy         float64                       `json:"accuracy"`
	TotalSamples     int                           `json:"total_samples"`
	Classified       int                           `json:"classified"`
	SkippedMalformed int                           `json:"skipped_malformed"`
	// Unclassifiable counts OCR-failure samples by their true label. They
	// form their own outcome bucket and never enter the confusion matrix.
	Unclassifiable map[domain.Label]int `json:"unclassifiable"`
	// Partial marks a run that was cancelled before consuming every sample.
	Partial bool `json:"partial"`
}

// UnclassifiableTotal returns the number of samples the OCR collaborator
// failed on.
func (r *Report) UnclassifiableTotal() int {
	n := 0
	for _, c := range r.Unclassifiable {
		n += c
	}
	return n
}

// finalize derives accuracy and per-label metrics from the finished matrix.
func (r *Report) finalize() {
	r.PerLabel = make(map[domain.Label]LabelMetrics, len(domain.Labels()))
	for _, label := range domain.Labels() {
		tp := r.Matrix.Count(label, label)
		predicted := r.Matrix.ColSum(label)
		actual := r.Matrix.RowSum(label)

		m := LabelMetrics{
			TruePositives:  tp,
			PredictedCount: predicted,
			ActualCount:    actual,
		}
		if predicted == 0 {
			m.NeverPredicted = true
		} else {
			m.Precision = float64(tp) / float64(predicted)
		}
		if actual == 0 {
			m.AbsentFromDataset = true
		} else {
			m.Recall = float64(tp) / float64(actual)
		}
		r.PerLabel[label] = m
	}

	if r.Classified > 0 {
		r.Accuracy = float64(r.Matrix.Trace()) / float64(r.Classified)
	}
}
