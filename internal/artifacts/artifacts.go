// Package artifacts holds the static cosmetic artifact catalog and the
// unlock evaluator. Unlock state is derived from progression stats on every
// call; nothing here mutates or persists state.
package artifacts

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

type ConditionType string

const (
	ConditionHabitStreak         ConditionType = "habit_streak"
	ConditionTasksCompleted      ConditionType = "tasks_completed"
	ConditionChecklistsCompleted ConditionType = "checklists_completed"
	ConditionTotalXP             ConditionType = "xp_total"
)

// UnlockCondition is a simple at-least threshold over one progression stat.
type UnlockCondition struct {
	Type      ConditionType `json:"type"`
	Threshold int           `json:"threshold"`
}

type EffectType string

const (
	EffectAvatarGlow EffectType = "avatar_glow"
	EffectBoardGlow  EffectType = "board_glow"
)

// Effect is a cosmetic display effect carried by an unlocked artifact.
type Effect struct {
	Type     EffectType `json:"type"`
	Gradient string     `json:"gradient"`
}

type Artifact struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Icon            string          `json:"icon"`
	Rarity          Rarity          `json:"rarity"`
	UnlockCondition UnlockCondition `json:"unlock_condition"`
	Effects         []Effect        `json:"effects"`
}

// Stats are the progression numbers the evaluator reads. MaxHabitStreak is
// the highest current streak across all habits.
type Stats struct {
	TotalXP             int
	TasksCompleted      int
	ChecklistsCompleted int
	MaxHabitStreak      int
}

// Catalog is the full artifact set, ordered by unlock difficulty within
// rarity. It is static; unlocks are re-derived from stats on demand.
var Catalog = []Artifact{
	{
		ID:              "discipline_core",
		Name:            "Discipline Core",
		Description:     "Earned by holding a legendary run of completed habits.",
		Icon:            "🛡️",
		Rarity:          RarityEpic,
		UnlockCondition: UnlockCondition{Type: ConditionHabitStreak, Threshold: 30},
		Effects: []Effect{
			{Type: EffectAvatarGlow, Gradient: "conic-gradient(from 180deg, rgba(14,165,233,0.8), rgba(16,185,129,0.9), rgba(14,165,233,0.8))"},
		},
	},
	{
		ID:              "architect_emblem",
		Name:            "Architect's Emblem",
		Description:     "Recognizes 100 completed tasks and a flawless flow.",
		Icon:            "🏗️",
		Rarity:          RarityRare,
		UnlockCondition: UnlockCondition{Type: ConditionTasksCompleted, Threshold: 100},
		Effects: []Effect{
			{Type: EffectBoardGlow, Gradient: "linear-gradient(135deg, rgba(248,113,113,0.25), rgba(248,196,113,0.25))"},
		},
	},
	{
		ID:              "chronicle_relic",
		Name:            "Chronicler's Relic",
		Description:     "For those who ticked every detail: 250 checklist items done.",
		Icon:            "📜",
		Rarity:          RarityLegendary,
		UnlockCondition: UnlockCondition{Type: ConditionChecklistsCompleted, Threshold: 250},
		Effects: []Effect{
			{Type: EffectAvatarGlow, Gradient: "conic-gradient(from 90deg, rgba(249,115,22,0.85), rgba(245,158,11,0.95), rgba(249,115,22,0.85))"},
			{Type: EffectBoardGlow, Gradient: "linear-gradient(120deg, rgba(244,114,182,0.2), rgba(234,179,8,0.2))"},
		},
	},
	{
		ID:              "ascendant_fragment",
		Name:            "Ascendant Fragment",
		Description:     "Reaching 7,500 total XP releases the board's crystal energy.",
		Icon:            "💎",
		Rarity:          RarityLegendary,
		UnlockCondition: UnlockCondition{Type: ConditionTotalXP, Threshold: 7500},
		Effects: []Effect{
			{Type: EffectAvatarGlow, Gradient: "conic-gradient(from 0deg, rgba(191,219,254,0.9), rgba(99,102,241,0.85), rgba(191,219,254,0.9))"},
			{Type: EffectBoardGlow, Gradient: "linear-gradient(160deg, rgba(99,102,241,0.25), rgba(56,189,248,0.2))"},
		},
	},
}

// Met reports whether the condition's threshold is reached by the stats.
func (c UnlockCondition) Met(stats Stats) bool {
	switch c.Type {
	case ConditionHabitStreak:
		return stats.MaxHabitStreak >= c.Threshold
	case ConditionTasksCompleted:
		return stats.TasksCompleted >= c.Threshold
	case ConditionChecklistsCompleted:
		return stats.ChecklistsCompleted >= c.Threshold
	case ConditionTotalXP:
		return stats.TotalXP >= c.Threshold
	}
	return false
}

// Unlocked returns the catalog entries whose conditions the stats satisfy.
func Unlocked(stats Stats) []Artifact {
	var unlocked []Artifact
	for _, a := range Catalog {
		if a.UnlockCondition.Met(stats) {
			unlocked = append(unlocked, a)
		}
	}
	return unlocked
}

// UnlockedIDs returns just the ids of the unlocked artifacts.
func UnlockedIDs(stats Stats) []string {
	var ids []string
	for _, a := range Unlocked(stats) {
		ids = append(ids, a.ID)
	}
	return ids
}
