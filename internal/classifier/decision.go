package classifier

import "github.com/jonesrussell/screensift/internal/domain"

// DefaultThreshold is the minimum winning score for a positive prediction.
const DefaultThreshold = 5.0

// Thresholds is the decision policy configuration. PerLabel overrides the
// shared Default for individual categories.
type Thresholds struct {
	Default  float64
	PerLabel map[domain.Label]float64
}

func NewThresholds(def float64) Thresholds {
	return Thresholds{Default: def}
}

// For returns the threshold in effect for a category.
func (t Thresholds) For(label domain.Label) float64 {
	if v, ok := t.PerLabel[label]; ok {
		return v
	}
	return t.Default
}

// Decide picks the winning category from a score vector. The winner must
// meet its threshold (scores equal to the threshold pass); otherwise the
// prediction is "none". Ties resolve by the fixed precedence
// recipe > workout > quote. An all-zero vector is "none" regardless of the
// threshold. The returned confidence is the margin between the top two
// scores, clipped at zero.
func Decide(scores domain.ScoreVector, thresholds Thresholds) (domain.Label, float64) {
	best := domain.LabelNone
	bestScore, second := 0.0, 0.0
	allZero := true

	for _, label := range domain.ScoredLabels() {
		score := scores[label]
		if score != 0 {
			allZero = false
		}
		switch {
		case best == domain.LabelNone:
			best, bestScore = label, score
		case score > bestScore:
			second = bestScore
			best, bestScore = label, score
		case score > second:
			second = score
		}
	}

	margin := bestScore - second
	if margin < 0 {
		margin = 0
	}

	if allZero || bestScore < thresholds.For(best) {
		return domain.LabelNone, margin
	}
	return best, margin
}
