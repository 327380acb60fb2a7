package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonesrussell/screensift/internal/domain"
)

func TestConfusionMatrix_Counts(t *testing.T) {
	m := NewConfusionMatrix()
	m.Add(domain.LabelRecipe, domain.LabelRecipe)
	m.Add(domain.LabelRecipe, domain.LabelNone)
	m.Add(domain.LabelWorkout, domain.LabelWorkout)
	m.Add(domain.LabelNone, domain.LabelQuote)

	assert.Equal(t, 1, m.Count(domain.LabelRecipe, domain.LabelRecipe))
	assert.Equal(t, 1, m.Count(domain.LabelRecipe, domain.LabelNone))
	assert.Equal(t, 0, m.Count(domain.LabelQuote, domain.LabelQuote))
	assert.Equal(t, 4, m.Total())
	assert.Equal(t, 2, m.Trace())
	assert.Equal(t, 2, m.RowSum(domain.LabelRecipe))
	assert.Equal(t, 1, m.ColSum(domain.LabelQuote))
}

func TestConfusionMatrix_MergeIsAdditive(t *testing.T) {
	a := NewConfusionMatrix()
	a.Add(domain.LabelRecipe, domain.LabelRecipe)
	a.Add(domain.LabelQuote, domain.LabelNone)

	b := NewConfusionMatrix()
	b.Add(domain.LabelRecipe, domain.LabelRecipe)
	b.Add(domain.LabelWorkout, domain.LabelRecipe)

	a.Merge(b)

	assert.Equal(t, 2, a.Count(domain.LabelRecipe, domain.LabelRecipe))
	assert.Equal(t, 1, a.Count(domain.LabelWorkout, domain.LabelRecipe))
	assert.Equal(t, 1, a.Count(domain.LabelQuote, domain.LabelNone))
	assert.Equal(t, 4, a.Total())
	// b stays untouched.
	assert.Equal(t, 2, b.Total())
}
