package classifier

import (
	"strings"
	"unicode"

	"github.com/cloudflare/ahocorasick"
)

// vocabCategory identifies which vocabulary list a matcher entry came from.
type vocabCategory int

const (
	vocabCookingVerb vocabCategory = iota
	vocabIngredientSection
	vocabStepSection
	vocabWorkoutTerm
	vocabBodyPart
)

// lexicon matches every vocabulary entry in one pass over the normalized
// text. Entries and text are padded with spaces so hits always land on word
// boundaries; "reps" never matches inside "preps".
type lexicon struct {
	matcher    *ahocorasick.Matcher
	categories []vocabCategory
}

// vocabHits counts the distinct vocabulary entries found per category.
// The matcher reports each entry at most once, so a record that repeats
// "mix" ten times still counts one cooking verb.
type vocabHits struct {
	cookingVerbs       int
	ingredientSections int
	stepSections       int
	workoutTerms       int
	bodyParts          int
}

func newLexicon() *lexicon {
	lists := []struct {
		category vocabCategory
		entries  []string
	}{
		{vocabCookingVerb, cookingVerbs},
		{vocabIngredientSection, ingredientSectionTerms},
		{vocabStepSection, stepSectionTerms},
		{vocabWorkoutTerm, workoutTerms},
		{vocabBodyPart, bodyParts},
	}

	var padded []string
	var categories []vocabCategory
	for _, list := range lists {
		for _, entry := range list.entries {
			normalized := strings.TrimSpace(normalizeText(entry))
			if normalized == "" {
				continue
			}
			padded = append(padded, " "+normalized+" ")
			categories = append(categories, list.category)
		}
	}

	return &lexicon{
		matcher:    ahocorasick.NewStringMatcher(padded),
		categories: categories,
	}
}

// hits scans the text and counts unique vocabulary entries per category.
func (l *lexicon) hits(text string) vocabHits {
	normalized := " " + normalizeText(text) + " "

	var h vocabHits
	for _, idx := range l.matcher.Match([]byte(normalized)) {
		if idx < 0 || idx >= len(l.categories) {
			continue
		}
		switch l.categories[idx] {
		case vocabCookingVerb:
			h.cookingVerbs++
		case vocabIngredientSection:
			h.ingredientSections++
		case vocabStepSection:
			h.stepSections++
		case vocabWorkoutTerm:
			h.workoutTerms++
		case vocabBodyPart:
			h.bodyParts++
		}
	}
	return h
}

// normalizeText lowercases the text and replaces every non-alphanumeric rune
// with a space. Punctuation becomes a word boundary, so "Warm-up:" and
// "warm up" normalize to the same token sequence.
func normalizeText(text string) string {
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
