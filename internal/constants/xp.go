package constants

// Default XP rewards. These are configuration defaults, not rules: the
// engine carries its own XPValues copy so callers can override any of them.
const (
	DefaultChecklistItemXP    = 5
	DefaultAllItemsBonusXP    = 15
	DefaultTaskCompleteXP     = 25
	DefaultHabitCompleteXP    = 10
	DefaultHabitAllBonusXP    = 35
	BaseLevelThreshold        = 100
	LevelThresholdGrowthNum   = 3
	LevelThresholdGrowthDenom = 2
)

// HabitBlueprint seeds a fresh account with a starter habit.
type HabitBlueprint struct {
	Title       string
	Description string
}

// DefaultHabitBlueprints are created for users with no stored habits.
var DefaultHabitBlueprints = []HabitBlueprint{
	{Title: "Plan the day", Description: "Review your tasks in the morning"},
	{Title: "Take an active break", Description: "Stretch or walk for 5 minutes"},
}
