package domain

// ScoreVector maps each scored category to a non-negative score.
// "none" never appears as a key.
type ScoreVector map[Label]float64

// Clone returns an independent copy of the vector.
func (v ScoreVector) Clone() ScoreVector {
	out := make(ScoreVector, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// RuleContribution is one rule's share of a category score, exposed so
// weights can be tuned against individual rules rather than the final sum.
type RuleContribution struct {
	Rule         string  `json:"rule"`
	Weight       float64 `json:"weight"`
	Indicator    float64 `json:"indicator"`
	Contribution float64 `json:"contribution"`
}

// ClassificationResult is the final output of the pipeline for one record.
type ClassificationResult struct {
	Predicted Label       `json:"predicted"`
	Scores    ScoreVector `json:"scores"`
	// Confidence is the top score minus the runner-up score, clipped at
	// zero. It is reported even when the threshold forces "none", so
	// threshold sweeps can see how close a sample came.
	Confidence float64 `json:"confidence"`
	Threshold  float64 `json:"threshold"`
	// Breakdown holds the per-rule contributions for each scored category.
	Breakdown map[Label][]RuleContribution `json:"breakdown,omitempty"`
}
