package models

// UserProgress is the progression ledger. Level, XPToNextLevel and
// CurrentLevelXP are denormalized caches derived from TotalXP alone.
// Level 0 is a sentinel meaning "not yet loaded"; real levels start at 1.
type UserProgress struct {
	TotalXP             int    `json:"total_xp"`
	Level               int    `json:"level"`
	XPToNextLevel       int    `json:"xp_to_next_level"`
	CurrentLevelXP      int    `json:"current_level_xp"`
	TasksCompleted      int    `json:"tasks_completed"`
	ChecklistsCompleted int    `json:"checklists_completed"`
	CustomFrameURL      string `json:"custom_frame_url,omitempty"`
}

// Loaded reports whether the ledger holds real (post-load) data.
func (p UserProgress) Loaded() bool {
	return p.Level > 0
}

// UserState is the full per-user snapshot persisted and synced as a unit.
// Remote sync is last-write-wins over this whole value; there is no
// per-field merge.
type UserState struct {
	Tasks     []Task           `json:"tasks"`
	Progress  UserProgress     `json:"progress"`
	Habits    []Habit          `json:"habits"`
	HabitDay  HabitDayProgress `json:"habit_day"`
	AvatarURL string           `json:"avatar_url,omitempty"`
}
