// Package domain defines the core types shared across the screensift
// pipeline: labels, OCR records, labelled samples, and classification results.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Label is one of the fixed screenshot categories.
type Label string

// Label constants. The order recipe > workout > quote is also the tie-break
// precedence used by the decision policy; "none" is never scored.
const (
	LabelRecipe  Label = "recipe"
	LabelWorkout Label = "workout"
	LabelQuote   Label = "quote"
	LabelNone    Label = "none"
)

// ErrInvalidLabel is returned when a ground-truth label falls outside the
// fixed label set. Callers must skip such samples rather than guess a mapping.
var ErrInvalidLabel = errors.New("invalid label")

// Labels returns all labels in the canonical reporting order, "none" last.
func Labels() []Label {
	return []Label{LabelRecipe, LabelWorkout, LabelQuote, LabelNone}
}

// ScoredLabels returns the labels that carry a category score, in tie-break
// precedence order.
func ScoredLabels() []Label {
	return []Label{LabelRecipe, LabelWorkout, LabelQuote}
}

// ParseLabel validates and normalizes a raw label string.
func ParseLabel(raw string) (Label, error) {
	switch l := Label(strings.ToLower(strings.TrimSpace(raw))); l {
	case LabelRecipe, LabelWorkout, LabelQuote, LabelNone:
		return l, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidLabel, raw)
	}
}
