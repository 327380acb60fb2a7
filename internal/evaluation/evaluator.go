// Package evaluation measures classifier quality against a labelled corpus:
// confusion matrix, per-label precision and recall, and threshold sweeps.
package evaluation

import (
	"context"
	"sync"
	"time"

	"github.com/jonesrussell/screensift/internal/classifier"
	"github.com/jonesrussell/screensift/internal/domain"
	"github.com/jonesrussell/screensift/internal/logger"
	"github.com/jonesrussell/screensift/internal/telemetry"
)

const defaultConcurrency = 4

// Evaluator runs the classification pipeline over a labelled corpus and
// aggregates predictions against ground truth.
type Evaluator struct {
	classifier  *classifier.Classifier
	concurrency int
	logger      logger.Logger
	telemetry   *telemetry.Provider
}

func New(c *classifier.Classifier, concurrency int, log logger.Logger, tp *telemetry.Provider) *Evaluator {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Evaluator{
		classifier:  c,
		concurrency: concurrency,
		logger:      log,
		telemetry:   tp,
	}
}

// sampleOutcome is what the pipeline made of one sample. The zero value
// means the sample was never processed, which only happens on cancellation.
type sampleOutcome int

const (
	outcomePending sampleOutcome = iota
	outcomeScored
	outcomeMalformed
	outcomeUnclassifiable
)

// scoredSample caches the threshold-independent pipeline output for one
// sample. Extraction and scoring are pure, so reusing the vector across
// thresholds is exact, not an approximation.
type scoredSample struct {
	label   domain.Label
	scores  domain.ScoreVector
	outcome sampleOutcome
}

// partialCounts is one worker's private accumulation. Workers never share
// state; partial matrices merge by addition after all workers finish, so the
// result is independent of how samples were distributed.
type partialCounts struct {
	matrix         *ConfusionMatrix
	classified     int
	malformed      int
	unclassifiable map[domain.Label]int
	processed      int
}

func newPartialCounts() *partialCounts {
	return &partialCounts{
		matrix:         NewConfusionMatrix(),
		unclassifiable: make(map[domain.Label]int),
	}
}

// Evaluate runs the corpus through the pipeline at the given thresholds and
// returns the aggregate report. Cancelling the context stops the run early
// and marks the report partial.
func (e *Evaluator) Evaluate(ctx context.Context, samples []domain.LabelledSample, thresholds classifier.Thresholds) *Report {
	start := time.Now()
	ctx, span := e.telemetry.StartSpan(ctx, "evaluate")
	defer span.End()

	jobs := make(chan int, len(samples))
	for i := range samples {
		jobs <- i
	}
	close(jobs)

	parts := make([]*partialCounts, e.concurrency)
	var wg sync.WaitGroup
	for w := 0; w < e.concurrency; w++ {
		part := newPartialCounts()
		parts[w] = part
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}
				s := e.scoreSample(&samples[i])
				part.processed++
				switch s.outcome {
				case outcomeMalformed:
					part.malformed++
				case outcomeUnclassifiable:
					part.unclassifiable[s.label]++
				case outcomeScored:
					predicted, _ := classifier.Decide(s.scores, thresholds)
					part.matrix.Add(s.label, predicted)
					part.classified++
				}
			}
		}()
	}
	wg.Wait()

	rep := &Report{
		Threshold:      thresholds.Default,
		Matrix:         NewConfusionMatrix(),
		Unclassifiable: make(map[domain.Label]int),
	}
	for _, part := range parts {
		rep.Matrix.Merge(part.matrix)
		rep.Classified += part.classified
		rep.SkippedMalformed += part.malformed
		for label, n := range part.unclassifiable {
			rep.Unclassifiable[label] += n
		}
		rep.TotalSamples += part.processed
	}
	rep.Partial = rep.TotalSamples < len(samples)
	rep.finalize()

	e.telemetry.RecordEvaluation(rep.Classified, rep.SkippedMalformed, rep.UnclassifiableTotal(), time.Since(start))
	e.logger.Info("evaluation complete",
		logger.Float64("threshold", thresholds.Default),
		logger.Int("samples", rep.TotalSamples),
		logger.Int("classified", rep.Classified),
		logger.Int("skipped_malformed", rep.SkippedMalformed),
		logger.Int("unclassifiable", rep.UnclassifiableTotal()),
		logger.Float64("accuracy", rep.Accuracy),
		logger.Bool("partial", rep.Partial),
		logger.Duration("duration", time.Since(start)),
	)
	return rep
}

// Sweep evaluates the corpus once per candidate threshold, in the supplied
// order. Each sample is extracted and scored exactly once; only the decision
// is re-run per candidate, which yields the same reports as recomputing from
// scratch.
func (e *Evaluator) Sweep(ctx context.Context, samples []domain.LabelledSample, candidates []float64) []*Report {
	start := time.Now()
	ctx, span := e.telemetry.StartSpan(ctx, "sweep")
	defer span.End()

	scored, partial := e.scoreAll(ctx, samples)

	reports := make([]*Report, 0, len(candidates))
	for _, threshold := range candidates {
		reports = append(reports, aggregate(scored, classifier.NewThresholds(threshold), partial))
	}

	e.logger.Info("threshold sweep complete",
		logger.Int("samples", len(samples)),
		logger.Int("candidates", len(candidates)),
		logger.Bool("partial", partial),
		logger.Duration("duration", time.Since(start)),
	)
	return reports
}

// scoreAll runs extraction and scoring over the corpus with the worker pool.
// The returned flag reports whether cancellation left samples unprocessed.
func (e *Evaluator) scoreAll(ctx context.Context, samples []domain.LabelledSample) ([]scoredSample, bool) {
	scored := make([]scoredSample, len(samples))

	jobs := make(chan int, len(samples))
	for i := range samples {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	for w := 0; w < e.concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}
				scored[i] = e.scoreSample(&samples[i])
			}
		}()
	}
	wg.Wait()

	for i := range scored {
		if scored[i].outcome == outcomePending {
			return scored, true
		}
	}
	return scored, false
}

func (e *Evaluator) scoreSample(s *domain.LabelledSample) scoredSample {
	label, err := domain.ParseLabel(string(s.Label))
	if err != nil {
		e.logger.Warn("skipping sample with invalid label",
			logger.String("image_id", s.ImageID),
			logger.Error(err),
		)
		return scoredSample{outcome: outcomeMalformed}
	}
	if s.Unclassifiable() {
		return scoredSample{label: label, outcome: outcomeUnclassifiable}
	}
	if err := s.Record.Validate(); err != nil {
		e.logger.Warn("skipping sample with malformed record",
			logger.String("image_id", s.ImageID),
			logger.Error(err),
		)
		return scoredSample{outcome: outcomeMalformed}
	}
	return scoredSample{
		label:   label,
		scores:  e.classifier.ScoreRecord(s.Record),
		outcome: outcomeScored,
	}
}

// aggregate folds cached score vectors into a report at one threshold.
func aggregate(scored []scoredSample, thresholds classifier.Thresholds, partial bool) *Report {
	rep := &Report{
		Threshold:      thresholds.Default,
		Matrix:         NewConfusionMatrix(),
		Unclassifiable: make(map[domain.Label]int),
		Partial:        partial,
	}
	for i := range scored {
		s := &scored[i]
		switch s.outcome {
		case outcomePending:
			continue
		case outcomeMalformed:
			rep.SkippedMalformed++
		case outcomeUnclassifiable:
			rep.Unclassifiable[s.label]++
		case outcomeScored:
			predicted, _ := classifier.Decide(s.scores, thresholds)
			rep.Matrix.Add(s.label, predicted)
			rep.Classified++
		}
		rep.TotalSamples++
	}
	rep.finalize()
	return rep
}
