package xp

// Difficulty levels range 1-5. Anything outside that range is treated as
// the default difficulty.
const (
	MinDifficulty     = 1
	MaxDifficulty     = 5
	DefaultDifficulty = 2
)

// DefaultXP is the fallback award when the rule evaluator is unavailable.
// It equals the base reward for the default difficulty.
const DefaultXP = 15

// FirstInCategoryBonus is the flat bonus for the first part installed in a
// category on a given garage item.
const FirstInCategoryBonus = 20

// PreviewCap bounds the preview range shown to users. A single event never
// displays more than this many points.
const PreviewCap = 100

// DefaultCategory is used when a part has no category assigned.
const DefaultCategory = "Autres"

// baseByDifficulty is the base reward per difficulty tier.
var baseByDifficulty = map[int]int{
	1: 10,
	2: 15,
	3: 25,
	4: 40,
	5: 60,
}

// multiplierByCategory scales the base reward for high-value categories.
// Unlisted categories use a multiplier of 1.0.
var multiplierByCategory = map[string]float64{
	"Batteries":      2.0,
	"Freinage":       1.5,
	"Pneus":          1.3,
	"Chambres à Air": 1.2,
}
