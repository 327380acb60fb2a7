package classifier

import (
	"strings"

	"github.com/jonesrussell/screensift/internal/domain"
)

// Feature extraction thresholds.
const (
	// quotedProseMinWords is the minimum word count for a quoted line to be
	// treated as prose rather than a stray OCR quote mark.
	quotedProseMinWords = 4

	// attributionMinPrecedingLines and attributionMinPrecedingLen gate the
	// length-based attribution heuristic: a short trailing line only reads as
	// an attribution under a body of real prose.
	attributionMinPrecedingLines = 2
	attributionMinPrecedingLen   = 20.0
	attributionShortRatio        = 0.5
)

// Features is the fixed-shape record derived from one OCR record. Extraction
// is a pure function of the record: no clock, no I/O, no hidden state, so the
// same input always produces the same features.
type Features struct {
	LineCount     int
	BulletLines   int
	NumberedLines int
	AvgLineLength float64

	MeasurementMentions int
	ServesLine          bool
	SetRepLines         int
	SetsRepsLines       int

	CookingVerbHits   int
	IngredientSection bool
	StepSection       bool
	WorkoutTermHits   int
	BodyPartHits      int

	QuotedProseLine bool
	QuoteMarkCount  int
	HasAttribution  bool
}

// Extractor derives feature records from OCR records. It is safe for
// concurrent use; the vocabulary matcher is read-only after construction.
type Extractor struct {
	lexicon *lexicon
}

func NewExtractor() *Extractor {
	return &Extractor{lexicon: newLexicon()}
}

// Extract computes the feature record for one OCR record. A nil record or a
// record with zero lines yields a well-formed all-zero feature record.
func (e *Extractor) Extract(rec *domain.OCRRecord) Features {
	var f Features
	if rec == nil {
		return f
	}

	lines := rec.LineTexts()
	f.LineCount = len(lines)

	totalLen := 0
	for _, line := range lines {
		totalLen += len(line)

		if bulletPattern.MatchString(line) {
			f.BulletLines++
		}
		if numberedPattern.MatchString(line) {
			f.NumberedLines++
		}
		f.MeasurementMentions += len(measurementPattern.FindAllString(line, -1))
		if setRepPattern.MatchString(line) {
			f.SetRepLines++
		}
		if setsRepsWordPattern.MatchString(line) {
			f.SetsRepsLines++
		}
		if servesPattern.MatchString(line) {
			f.ServesLine = true
		}

		marks := countQuoteMarks(line)
		f.QuoteMarkCount += marks
		if marks > 0 && wordCount(line) >= quotedProseMinWords {
			f.QuotedProseLine = true
		}
	}
	if f.LineCount > 0 {
		f.AvgLineLength = float64(totalLen) / float64(f.LineCount)
	}

	hits := e.lexicon.hits(strings.Join(lines, "\n"))
	f.CookingVerbHits = hits.cookingVerbs
	f.IngredientSection = hits.ingredientSections > 0
	f.StepSection = hits.stepSections > 0
	f.WorkoutTermHits = hits.workoutTerms
	f.BodyPartHits = hits.bodyParts

	f.HasAttribution = hasAttribution(lines)

	return f
}

func countQuoteMarks(line string) int {
	n := 0
	for _, mark := range quoteMarks {
		n += strings.Count(line, mark)
	}
	return n
}

func wordCount(line string) int {
	return len(strings.Fields(line))
}

// hasAttribution reports whether the last non-empty line reads as an author
// attribution: either a dash-prefixed name, or a line much shorter than the
// prose above it.
func hasAttribution(lines []string) bool {
	last := -1
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) != "" {
			last = i
			break
		}
	}
	if last < 0 {
		return false
	}
	if attributionPattern.MatchString(lines[last]) {
		return true
	}

	if last < attributionMinPrecedingLines {
		return false
	}
	total := 0
	for i := 0; i < last; i++ {
		total += len(lines[i])
	}
	mean := float64(total) / float64(last)
	if mean < attributionMinPrecedingLen {
		return false
	}
	return float64(len(strings.TrimSpace(lines[last]))) <= mean*attributionShortRatio
}
