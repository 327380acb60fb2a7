package evaluation

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/screensift/internal/classifier"
	"github.com/jonesrussell/screensift/internal/domain"
)

func newTestEvaluator(concurrency int) *Evaluator {
	c := classifier.New(classifier.Config{
		Weights:    classifier.DefaultWeights(),
		Thresholds: classifier.NewThresholds(classifier.DefaultThreshold),
	}, nil, nil)
	return New(c, concurrency, nil, nil)
}

func sample(id string, label domain.Label, lines ...string) domain.LabelledSample {
	rec := &domain.OCRRecord{ImageWidth: 1080, ImageHeight: 1920}
	for i, text := range lines {
		rec.Lines = append(rec.Lines, domain.OCRLine{
			Text:   text,
			Bounds: domain.Box{X: 10, Y: float64(40 * i), Width: 900, Height: 32},
		})
	}
	return domain.LabelledSample{ImageID: id, Label: label, Record: rec}
}

func testCorpus() []domain.LabelledSample {
	return []domain.LabelledSample{
		sample("r1", domain.LabelRecipe,
			"Ingredients:", "2 cups flour", "1 tsp sugar", "Preheat oven to 350F", "Mix and bake 20 minutes"),
		sample("r2", domain.LabelRecipe,
			"2 cups flour", "1 tsp sugar"), // weak evidence, lands in none
		sample("w1", domain.LabelWorkout,
			"Squat 3x10", "Bench press 3x8", "Deadlift 5x5"),
		sample("q1", domain.LabelQuote,
			`"The only way to do great work is to love what you do."`, "- Steve Jobs"),
		sample("n1", domain.LabelNone,
			"lol", "random screenshot"),
	}
}

func TestEvaluate_ConfusionMatrixConservation(t *testing.T) {
	ev := newTestEvaluator(3)
	corpus := testCorpus()

	rep := ev.Evaluate(context.Background(), corpus, classifier.NewThresholds(classifier.DefaultThreshold))

	require.NotNil(t, rep)
	assert.Equal(t, len(corpus), rep.TotalSamples)
	assert.Equal(t, len(corpus), rep.Classified)
	// Every classified sample lands in exactly one cell.
	assert.Equal(t, rep.Classified, rep.Matrix.Total())
	assert.False(t, rep.Partial)
}

func TestEvaluate_PredictionsLandWhereExpected(t *testing.T) {
	ev := newTestEvaluator(2)

	rep := ev.Evaluate(context.Background(), testCorpus(), classifier.NewThresholds(classifier.DefaultThreshold))

	assert.Equal(t, 1, rep.Matrix.Count(domain.LabelRecipe, domain.LabelRecipe))
	assert.Equal(t, 1, rep.Matrix.Count(domain.LabelRecipe, domain.LabelNone))
	assert.Equal(t, 1, rep.Matrix.Count(domain.LabelWorkout, domain.LabelWorkout))
	assert.Equal(t, 1, rep.Matrix.Count(domain.LabelQuote, domain.LabelQuote))
	assert.Equal(t, 1, rep.Matrix.Count(domain.LabelNone, domain.LabelNone))

	assert.InDelta(t, 0.8, rep.Accuracy, 1e-9)
	assert.InDelta(t, 0.5, rep.PerLabel[domain.LabelRecipe].Recall, 1e-9)
	assert.InDelta(t, 1.0, rep.PerLabel[domain.LabelRecipe].Precision, 1e-9)
}

func TestEvaluate_SkipsMalformedSamples(t *testing.T) {
	ev := newTestEvaluator(2)
	corpus := testCorpus()
	corpus = append(corpus,
		domain.LabelledSample{ImageID: "bad-label", Label: "banana",
			Record: &domain.OCRRecord{ImageWidth: 10, ImageHeight: 10}},
		domain.LabelledSample{ImageID: "bad-geometry", Label: domain.LabelQuote,
			Record: &domain.OCRRecord{ImageWidth: -1, ImageHeight: 10}},
	)

	rep := ev.Evaluate(context.Background(), corpus, classifier.NewThresholds(classifier.DefaultThreshold))

	assert.Equal(t, 2, rep.SkippedMalformed)
	assert.Equal(t, 5, rep.Classified)
	assert.Equal(t, rep.Classified, rep.Matrix.Total())
	assert.Equal(t, 7, rep.TotalSamples)
}

func TestEvaluate_UnclassifiableBucket(t *testing.T) {
	ev := newTestEvaluator(2)
	corpus := testCorpus()
	corpus = append(corpus,
		domain.LabelledSample{ImageID: "blur1", Label: domain.LabelRecipe, OCRError: "engine timeout"},
		domain.LabelledSample{ImageID: "blur2", Label: domain.LabelQuote, OCRError: "decode failure"},
	)

	rep := ev.Evaluate(context.Background(), corpus, classifier.NewThresholds(classifier.DefaultThreshold))

	// OCR failures are their own bucket, never coerced into "none".
	assert.Equal(t, 2, rep.UnclassifiableTotal())
	assert.Equal(t, 1, rep.Unclassifiable[domain.LabelRecipe])
	assert.Equal(t, 1, rep.Unclassifiable[domain.LabelQuote])
	assert.Equal(t, 5, rep.Classified)
	assert.Equal(t, rep.Classified, rep.Matrix.Total())
	assert.Equal(t, 1, rep.Matrix.Count(domain.LabelNone, domain.LabelNone))
}

func TestEvaluate_EmptyCorpus(t *testing.T) {
	ev := newTestEvaluator(2)

	rep := ev.Evaluate(context.Background(), nil, classifier.NewThresholds(classifier.DefaultThreshold))

	assert.Zero(t, rep.TotalSamples)
	assert.Zero(t, rep.Accuracy)
	for _, label := range domain.Labels() {
		m := rep.PerLabel[label]
		assert.True(t, m.NeverPredicted, "label %s", label)
		assert.True(t, m.AbsentFromDataset, "label %s", label)
	}
}

func TestEvaluate_NeverPredictedIsFlaggedNotZero(t *testing.T) {
	ev := newTestEvaluator(1)
	corpus := []domain.LabelledSample{
		sample("n1", domain.LabelNone, "lol", "random screenshot"),
	}

	rep := ev.Evaluate(context.Background(), corpus, classifier.NewThresholds(classifier.DefaultThreshold))

	m := rep.PerLabel[domain.LabelQuote]
	assert.True(t, m.NeverPredicted)
	assert.True(t, m.AbsentFromDataset)
	assert.Zero(t, m.Precision)
}

func TestEvaluate_IndependentOfConcurrency(t *testing.T) {
	corpus := testCorpus()
	for i := 0; i < 20; i++ {
		corpus = append(corpus, sample(fmt.Sprintf("extra-%d", i), domain.LabelWorkout,
			"Squat 3x10", "Lunge 3x12", "Plank 3 sets"))
	}

	baseline := newTestEvaluator(1).
		Evaluate(context.Background(), corpus, classifier.NewThresholds(classifier.DefaultThreshold))

	for _, concurrency := range []int{2, 4, 8} {
		rep := newTestEvaluator(concurrency).
			Evaluate(context.Background(), corpus, classifier.NewThresholds(classifier.DefaultThreshold))

		assert.Equal(t, baseline.Classified, rep.Classified, "concurrency %d", concurrency)
		assert.InDelta(t, baseline.Accuracy, rep.Accuracy, 1e-9, "concurrency %d", concurrency)
		for _, tl := range domain.Labels() {
			for _, p := range domain.Labels() {
				assert.Equal(t, baseline.Matrix.Count(tl, p), rep.Matrix.Count(tl, p),
					"concurrency %d cell (%s,%s)", concurrency, tl, p)
			}
		}
	}
}

func TestEvaluate_CancelledContextMarksPartial(t *testing.T) {
	ev := newTestEvaluator(2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	corpus := testCorpus()
	rep := ev.Evaluate(ctx, corpus, classifier.NewThresholds(classifier.DefaultThreshold))

	assert.True(t, rep.Partial)
	assert.Less(t, rep.TotalSamples, len(corpus))
}

func TestSweep_ReportsInCandidateOrder(t *testing.T) {
	ev := newTestEvaluator(2)
	candidates := []float64{10, 1, 5}

	reports := ev.Sweep(context.Background(), testCorpus(), candidates)

	require.Len(t, reports, len(candidates))
	for i, rep := range reports {
		assert.Equal(t, candidates[i], rep.Threshold)
	}
}

func TestSweep_MatchesIndependentEvaluations(t *testing.T) {
	corpus := testCorpus()
	ev := newTestEvaluator(2)

	reports := ev.Sweep(context.Background(), corpus, []float64{1, 5, 10})

	for _, rep := range reports {
		independent := ev.Evaluate(context.Background(), corpus, classifier.NewThresholds(rep.Threshold))
		assert.InDelta(t, independent.Accuracy, rep.Accuracy, 1e-9, "threshold %g", rep.Threshold)
		for _, tl := range domain.Labels() {
			for _, p := range domain.Labels() {
				assert.Equal(t, independent.Matrix.Count(tl, p), rep.Matrix.Count(tl, p),
					"threshold %g cell (%s,%s)", rep.Threshold, tl, p)
			}
		}
	}
}

func TestSweep_RecallNeverRisesWithThreshold(t *testing.T) {
	corpus := testCorpus()
	ev := newTestEvaluator(2)

	reports := ev.Sweep(context.Background(), corpus, []float64{1, 2.5, 5, 7.5, 10})

	for _, label := range domain.ScoredLabels() {
		prev := 2.0
		for _, rep := range reports {
			m := rep.PerLabel[label]
			if m.AbsentFromDataset {
				continue
			}
			assert.LessOrEqual(t, m.Recall, prev,
				"recall for %s rose between thresholds", label)
			prev = m.Recall
		}
	}
}
