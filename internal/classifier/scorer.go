package classifier

import "github.com/jonesrussell/screensift/internal/domain"

// Scorer turns a feature record into per-category scores by summing weighted
// rule contributions. Scoring is pure and deterministic; the only state is
// the weight set fixed at construction.
type Scorer struct {
	weights Weights
}

func NewScorer(weights Weights) *Scorer {
	return &Scorer{weights: weights}
}

// Weights returns the active weight set.
func (s *Scorer) Weights() Weights {
	return s.weights
}

// Score computes the score vector for one feature record. Scores never go
// below zero; penalties can cancel positive evidence but not push a category
// negative.
func (s *Scorer) Score(f Features) domain.ScoreVector {
	scores, _ := s.ScoreWithBreakdown(f)
	return scores
}

// ScoreWithBreakdown computes the score vector together with the per-rule
// contributions behind each category score.
func (s *Scorer) ScoreWithBreakdown(f Features) (domain.ScoreVector, map[domain.Label][]domain.RuleContribution) {
	breakdown := map[domain.Label][]domain.RuleContribution{
		domain.LabelRecipe:  s.recipeRules(f),
		domain.LabelWorkout: s.workoutRules(f),
		domain.LabelQuote:   s.quoteRules(f),
	}

	scores := make(domain.ScoreVector, len(breakdown))
	for label, rules := range breakdown {
		total := 0.0
		for _, r := range rules {
			total += r.Contribution
		}
		if total < 0 {
			total = 0
		}
		scores[label] = total
	}
	return scores, breakdown
}

func (s *Scorer) recipeRules(f Features) []domain.RuleContribution {
	w := s.weights.Recipe
	return []domain.RuleContribution{
		contribution(RuleIngredientSection, w.IngredientSection, flag(f.IngredientSection)),
		contribution(RuleMeasurements, w.Measurements, flag(f.MeasurementMentions >= recipeMinMeasurements)),
		contribution(RuleCookingVerbs, w.CookingVerbs, flag(f.CookingVerbHits >= recipeMinCookingVerbs)),
		contribution(RuleStepSection, w.StepSection, flag(f.StepSection)),
		contribution(RuleRecipeListLayout, w.ListLayout,
			flag(f.BulletLines >= recipeMinListLines || f.NumberedLines >= recipeMinListLines)),
		contribution(RuleServesLine, w.ServesLine, flag(f.ServesLine)),
	}
}

func (s *Scorer) workoutRules(f Features) []domain.RuleContribution {
	w := s.weights.Workout
	return []domain.RuleContribution{
		contribution(RuleSetsRepsLines, w.SetsRepsLines, flag(f.SetsRepsLines >= workoutMinSetsRepsLines)),
		// Counting rule: every set×rep line adds evidence.
		contribution(RuleSetRepNotation, w.SetRepNotation, float64(f.SetRepLines)),
		contribution(RuleWorkoutTerms, w.WorkoutTerms, flag(f.WorkoutTermHits >= workoutMinTerms)),
		contribution(RuleBodyParts, w.BodyParts, flag(f.BodyPartHits > 0)),
		contribution(RuleWorkoutListLayout, w.ListLayout,
			flag(f.BulletLines >= workoutMinListLines || f.NumberedLines >= workoutMinListLines)),
		contribution(RuleIngredientPenalty, w.IngredientPenalty, flag(f.IngredientSection)),
	}
}

func (s *Scorer) quoteRules(f Features) []domain.RuleContribution {
	w := s.weights.Quote
	return []domain.RuleContribution{
		contribution(RuleQuotedProse, w.QuotedProse, flag(f.QuotedProseLine)),
		contribution(RuleAttribution, w.Attribution, flag(f.HasAttribution)),
		contribution(RuleCompactLayout, w.CompactLayout,
			flag(f.LineCount > 0 && f.LineCount <= quoteMaxCompactLines)),
		contribution(RuleLongProseLines, w.LongProseLines, flag(f.AvgLineLength >= quoteMinProseLineLength)),
		// Only meaningful on a non-empty record; an empty record is silence,
		// not evidence of a quote.
		contribution(RuleNoFoodOrTraining, w.NoFoodOrTraining,
			flag(f.LineCount > 0 && f.MeasurementMentions == 0 && f.WorkoutTermHits == 0)),
	}
}

func contribution(rule string, weight, indicator float64) domain.RuleContribution {
	return domain.RuleContribution{
		Rule:         rule,
		Weight:       weight,
		Indicator:    indicator,
		Contribution: weight * indicator,
	}
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
