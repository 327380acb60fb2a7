package classifier

import "regexp"

// Vocabulary lists and patterns used by feature extraction. These are tuning
// artifacts calibrated against the labelled corpus, not structural contracts;
// the rule weights that consume them live in weights.go.
var (
	cookingVerbs = []string{
		"preheat", "mix", "stir", "bake", "boil", "simmer",
		"chop", "fry", "whisk", "serve",
	}

	ingredientSectionTerms = []string{"ingredients", "serves", "makes", "yield"}

	stepSectionTerms = []string{"instructions", "method", "directions", "steps"}

	workoutTerms = []string{
		"sets", "reps", "rest", "warm-up", "cooldown", "amrap", "emom",
		"rounds", "superset", "circuit",
		// Common exercise names count as workout terms too: many workout
		// screenshots list exercises without ever using the word "sets".
		"squat", "bench press", "deadlift", "lunge", "burpee", "plank",
		"push-up", "pull-up", "curl",
	}

	bodyParts = []string{
		"legs", "chest", "back", "shoulders", "glutes", "core", "abs",
		"arms", "hamstrings", "quads",
	}

	// quoteMarks deliberately excludes apostrophes and dashes; both are too
	// common in ordinary prose to signal a quotation.
	quoteMarks = []string{`"`, "“", "”", "«", "»"}
)

var (
	// Lines starting with a bullet marker.
	bulletPattern = regexp.MustCompile(`^\s*[•\-\*\+]\s+`)

	// Lines starting with "1." or "2)" style numbering.
	numberedPattern = regexp.MustCompile(`^\s*\d+[.)]\s+`)

	// A quantity followed by a unit from the fixed unit vocabulary,
	// e.g. "2 cups", "1.5 tsp", "350F", "12 oz".
	measurementPattern = regexp.MustCompile(
		`(?i)\b\d+(?:\.\d+)?\s*°?\s*(?:g|kg|ml|l|tbsp|tsp|cups?|oz|lbs?|f|c)\b`)

	// Set×rep notation such as "3x10" or "3 × 10".
	setRepPattern = regexp.MustCompile(`(?i)\b\d+\s*[x×]\s*\d+\b`)

	// "serves 4" / "makes 12" yield lines.
	servesPattern = regexp.MustCompile(`(?i)\b(?:serves|makes)\s+\d+\b`)

	// The literal words "set(s)" or "rep(s)" anywhere in a line.
	setsRepsWordPattern = regexp.MustCompile(`(?i)\b(?:sets?|reps?)\b`)

	// A dash-prefixed attribution with at least two word tokens,
	// e.g. "- Steve Jobs" or "— Maya Angelou".
	attributionPattern = regexp.MustCompile(`^\s*[-–—]\s*\p{L}[\p{L}.]*(?:\s+\p{L}[\p{L}.]*)+`)
)
