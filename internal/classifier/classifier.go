// Package classifier implements the screenshot classification pipeline:
// vocabulary-driven feature extraction, weighted rule scoring, and the
// thresholded decision policy.
package classifier

import (
	"time"

	"github.com/jonesrussell/screensift/internal/domain"
	"github.com/jonesrussell/screensift/internal/logger"
	"github.com/jonesrussell/screensift/internal/telemetry"
)

// Classifier wires the extractor, the scorer and the decision policy. The
// decision policy consumes only the score vector, so a different scoring
// backend can replace the heuristic one behind the same contract.
type Classifier struct {
	extractor  *Extractor
	scorer     *Scorer
	thresholds Thresholds
	logger     logger.Logger
	telemetry  *telemetry.Provider
}

// Config carries the tuning surface of a classifier instance.
type Config struct {
	Weights    Weights
	Thresholds Thresholds
}

func New(cfg Config, log logger.Logger, tp *telemetry.Provider) *Classifier {
	if log == nil {
		log = logger.NewNop()
	}
	return &Classifier{
		extractor:  NewExtractor(),
		scorer:     NewScorer(cfg.Weights),
		thresholds: cfg.Thresholds,
		logger:     log,
		telemetry:  tp,
	}
}

// Classify runs the full pipeline on one OCR record. It is total over
// well-formed records: degenerate inputs produce a "none" result, never an
// error.
func (c *Classifier) Classify(rec *domain.OCRRecord) *domain.ClassificationResult {
	start := time.Now()

	features := c.extractor.Extract(rec)
	scores, breakdown := c.scorer.ScoreWithBreakdown(features)
	predicted, confidence := Decide(scores, c.thresholds)

	c.telemetry.RecordClassification(string(predicted), time.Since(start))
	c.logger.Debug("classified record",
		logger.String("predicted", string(predicted)),
		logger.Float64("confidence", confidence),
		logger.Int("lines", features.LineCount),
		logger.Duration("duration", time.Since(start)),
	)

	return &domain.ClassificationResult{
		Predicted:  predicted,
		Scores:     scores,
		Confidence: confidence,
		Threshold:  c.thresholds.Default,
		Breakdown:  breakdown,
	}
}

// ScoreRecord computes the threshold-independent score vector for a record.
// The evaluation harness uses this to reuse one scoring pass across a
// threshold sweep.
func (c *Classifier) ScoreRecord(rec *domain.OCRRecord) domain.ScoreVector {
	return c.scorer.Score(c.extractor.Extract(rec))
}

// Thresholds returns the decision thresholds in effect.
func (c *Classifier) Thresholds() Thresholds {
	return c.thresholds
}

// Weights returns the active rule weights.
func (c *Classifier) Weights() Weights {
	return c.scorer.Weights()
}
