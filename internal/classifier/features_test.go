package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonesrussell/screensift/internal/domain"
)

func recordFromLines(lines ...string) *domain.OCRRecord {
	rec := &domain.OCRRecord{ImageWidth: 1080, ImageHeight: 1920}
	for i, text := range lines {
		rec.Lines = append(rec.Lines, domain.OCRLine{
			Text:       text,
			Bounds:     domain.Box{X: 10, Y: float64(40 * i), Width: 900, Height: 32},
			Confidence: 0.9,
		})
	}
	return rec
}

func TestExtract_EmptyRecord(t *testing.T) {
	e := NewExtractor()

	assert.Equal(t, Features{}, e.Extract(nil))
	assert.Equal(t, Features{}, e.Extract(&domain.OCRRecord{ImageWidth: 100, ImageHeight: 100}))
}

func TestExtract_Deterministic(t *testing.T) {
	e := NewExtractor()
	rec := recordFromLines("Ingredients:", "2 cups flour", "- 1 tsp sugar", "Mix and bake")

	first := e.Extract(rec)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, e.Extract(rec))
	}
}

func TestExtract_MeasurementMentions(t *testing.T) {
	testCases := []struct {
		name string
		line string
		want int
	}{
		{"cups", "2 cups flour", 1},
		{"decimal tsp", "1.5 tsp vanilla", 1},
		{"temperature no space", "Preheat oven to 350F", 1},
		{"degree sign", "bake at 180 °C", 1},
		{"two units one line", "500 g beef and 250 ml stock", 2},
		{"bare number", "Step 2 of 5", 0},
		{"unit not in vocabulary", "run 5 miles", 0},
		{"unit embedded in word", "10 flour", 0},
	}

	e := NewExtractor()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := e.Extract(recordFromLines(tc.line))
			assert.Equal(t, tc.want, f.MeasurementMentions)
		})
	}
}

func TestExtract_SetRepLines(t *testing.T) {
	e := NewExtractor()

	f := e.Extract(recordFromLines("Squat 3x10", "Bench 3 x 8", "Deadlift 5×5", "no notation here"))
	assert.Equal(t, 3, f.SetRepLines)
}

func TestExtract_ListAndSectionFeatures(t *testing.T) {
	e := NewExtractor()
	f := e.Extract(recordFromLines(
		"Ingredients:",
		"- 2 cups flour",
		"- 1 tsp sugar",
		"Instructions",
		"1. Mix everything",
		"2) Bake it",
		"Serves 4",
	))

	assert.True(t, f.IngredientSection)
	assert.True(t, f.StepSection)
	assert.True(t, f.ServesLine)
	assert.Equal(t, 2, f.BulletLines)
	assert.Equal(t, 2, f.NumberedLines)
}

func TestExtract_VocabularyHitsAreUnique(t *testing.T) {
	e := NewExtractor()

	// "mix" repeated five times still counts as one cooking verb.
	f := e.Extract(recordFromLines("mix mix mix", "mix and mix again"))
	assert.Equal(t, 1, f.CookingVerbHits)
}

func TestExtract_WordBoundaries(t *testing.T) {
	e := NewExtractor()

	// "preps" must not match "reps", "serves" in "preserves" must not fire.
	f := e.Extract(recordFromLines("she preps the preserves"))
	assert.Equal(t, 0, f.WorkoutTermHits)
	assert.Zero(t, f.SetsRepsLines)
	assert.False(t, f.ServesLine)
}

func TestExtract_QuotedProse(t *testing.T) {
	e := NewExtractor()

	f := e.Extract(recordFromLines(`"The only way to do great work is to love what you do."`))
	assert.True(t, f.QuotedProseLine)
	assert.Equal(t, 2, f.QuoteMarkCount)

	// A stray quote mark on a short line is OCR noise, not prose.
	f = e.Extract(recordFromLines(`"ok"`))
	assert.False(t, f.QuotedProseLine)
}

func TestExtract_Attribution(t *testing.T) {
	testCases := []struct {
		name  string
		lines []string
		want  bool
	}{
		{
			"dash prefixed name",
			[]string{`"Stay hungry, stay foolish."`, "- Steve Jobs"},
			true,
		},
		{
			"em dash attribution",
			[]string{`"Do or do not."`, "— Master Yoda"},
			true,
		},
		{
			"dash with single word",
			[]string{`"Something profound."`, "- Anonymous"},
			false,
		},
		{
			"short trailing line under long prose",
			[]string{
				"The greatest glory in living lies not in never falling,",
				"but in rising every time we fall and trying once more.",
				"Nelson Mandela",
			},
			true,
		},
		{
			"trailing line not short enough",
			[]string{
				"Ingredients list below",
				"Mix the flour with sugar",
				"Bake for twenty minutes",
			},
			false,
		},
		{
			"no lines",
			nil,
			false,
		},
	}

	e := NewExtractor()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := e.Extract(recordFromLines(tc.lines...))
			assert.Equal(t, tc.want, f.HasAttribution)
		})
	}
}
