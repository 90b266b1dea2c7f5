package models

import "time"

// Habit is a recurring daily practice. LastCompletedDate and Streak mutate
// only through the daily toggle; a nil-equivalent empty LastCompletedDate
// means the habit has never been completed.
type Habit struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description,omitempty"`
	XPReward          int       `json:"xp_reward"`
	LastCompletedDate string    `json:"last_completed_date,omitempty"` // YYYY-MM-DD
	Streak            int       `json:"streak"`
	CreatedAt         time.Time `json:"created_at"`
}

// HabitDayProgress records exactly one calendar day's habit completions.
// A record whose Date is not today must be replaced with a fresh empty
// record before any read or mutation; stale days never carry over.
type HabitDayProgress struct {
	Date              string   `json:"date"` // YYYY-MM-DD
	CompletedHabitIDs []string `json:"completed_habit_ids"`
	BonusGranted      bool     `json:"bonus_granted"`
}

// Completed reports whether the given habit id is in today's completed set.
func (p HabitDayProgress) Completed(habitID string) bool {
	for _, id := range p.CompletedHabitIDs {
		if id == habitID {
			return true
		}
	}
	return false
}
