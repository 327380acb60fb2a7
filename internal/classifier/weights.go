package classifier

// Rule names used in score breakdowns and configuration.
const (
	RuleIngredientSection  = "ingredient_section"
	RuleMeasurements       = "measurement_mentions"
	RuleCookingVerbs       = "cooking_verbs"
	RuleStepSection        = "step_section"
	RuleRecipeListLayout   = "list_layout"
	RuleServesLine         = "serves_line"
	RuleSetsRepsLines      = "sets_reps_lines"
	RuleSetRepNotation     = "set_rep_notation"
	RuleWorkoutTerms       = "workout_terms"
	RuleBodyParts          = "body_parts"
	RuleWorkoutListLayout  = "list_layout"
	RuleIngredientPenalty  = "ingredient_penalty"
	RuleQuotedProse        = "quoted_prose"
	RuleAttribution        = "attribution"
	RuleCompactLayout      = "compact_layout"
	RuleLongProseLines     = "long_prose_lines"
	RuleNoFoodOrTraining   = "no_food_or_training_signals"
)

// Rule firing thresholds. A counting feature must reach its minimum before
// the corresponding rule contributes.
const (
	recipeMinMeasurements = 3
	recipeMinCookingVerbs = 2
	recipeMinListLines    = 2

	workoutMinSetsRepsLines = 2
	workoutMinTerms         = 2
	workoutMinListLines     = 2

	quoteMaxCompactLines    = 6
	quoteMinProseLineLength = 40.0
)

// RecipeWeights are the rule weights feeding the recipe score.
type RecipeWeights struct {
	IngredientSection float64 `mapstructure:"ingredient_section" yaml:"ingredient_section"`
	Measurements      float64 `mapstructure:"measurements" yaml:"measurements"`
	CookingVerbs      float64 `mapstructure:"cooking_verbs" yaml:"cooking_verbs"`
	StepSection       float64 `mapstructure:"step_section" yaml:"step_section"`
	ListLayout        float64 `mapstructure:"list_layout" yaml:"list_layout"`
	ServesLine        float64 `mapstructure:"serves_line" yaml:"serves_line"`
}

// WorkoutWeights are the rule weights feeding the workout score.
// SetRepNotation multiplies the count of matching lines, not a binary flag:
// a screenshot that is nothing but "Squat 3x10" lines should accumulate
// evidence with every line.
type WorkoutWeights struct {
	SetsRepsLines     float64 `mapstructure:"sets_reps_lines" yaml:"sets_reps_lines"`
	SetRepNotation    float64 `mapstructure:"set_rep_notation" yaml:"set_rep_notation"`
	WorkoutTerms      float64 `mapstructure:"workout_terms" yaml:"workout_terms"`
	BodyParts         float64 `mapstructure:"body_parts" yaml:"body_parts"`
	ListLayout        float64 `mapstructure:"list_layout" yaml:"list_layout"`
	IngredientPenalty float64 `mapstructure:"ingredient_penalty" yaml:"ingredient_penalty"`
}

// QuoteWeights are the rule weights feeding the quote score.
type QuoteWeights struct {
	QuotedProse      float64 `mapstructure:"quoted_prose" yaml:"quoted_prose"`
	Attribution      float64 `mapstructure:"attribution" yaml:"attribution"`
	CompactLayout    float64 `mapstructure:"compact_layout" yaml:"compact_layout"`
	LongProseLines   float64 `mapstructure:"long_prose_lines" yaml:"long_prose_lines"`
	NoFoodOrTraining float64 `mapstructure:"no_food_or_training" yaml:"no_food_or_training"`
}

// Weights is the full tuning surface of the scorer. The rule set is fixed;
// only these multipliers change between runs.
type Weights struct {
	Recipe  RecipeWeights  `mapstructure:"recipe" yaml:"recipe"`
	Workout WorkoutWeights `mapstructure:"workout" yaml:"workout"`
	Quote   QuoteWeights   `mapstructure:"quote" yaml:"quote"`
}

// DefaultWeights returns the calibrated default weights.
func DefaultWeights() Weights {
	return Weights{
		Recipe: RecipeWeights{
			IngredientSection: 3.0,
			Measurements:      2.0,
			CookingVerbs:      2.0,
			StepSection:       2.0,
			ListLayout:        1.0,
			ServesLine:        1.0,
		},
		Workout: WorkoutWeights{
			SetsRepsLines:     3.0,
			SetRepNotation:    2.0,
			WorkoutTerms:      2.0,
			BodyParts:         1.0,
			ListLayout:        1.0,
			IngredientPenalty: -2.0,
		},
		Quote: QuoteWeights{
			QuotedProse:      2.0,
			Attribution:      3.0,
			CompactLayout:    1.0,
			LongProseLines:   1.0,
			NoFoodOrTraining: 1.0,
		},
	}
}
