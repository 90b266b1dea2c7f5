package models

import "time"

type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in-progress"
	StatusDone       TaskStatus = "done"
)

// ChecklistItem is a single entry on a task's checklist. Sub-items nest at
// most one level deep: items in SubItems never carry sub-items of their own.
type ChecklistItem struct {
	ID        string          `json:"id"`
	Text      string          `json:"text"`
	Completed bool            `json:"completed"`
	SubItems  []ChecklistItem `json:"sub_items,omitempty"`
}

// Task is a kanban card with an optional checklist. Status is set directly
// by the user moving the card; it is not derived from checklist completion.
type Task struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Status      TaskStatus      `json:"status"`
	Checklist   []ChecklistItem `json:"checklist"`
	XPReward    int             `json:"xp_reward"`
	CreatedAt   time.Time       `json:"created_at"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
}

// ChecklistComplete reports whether the task has a non-empty checklist with
// every top-level item completed. Sub-items do not count toward completion.
func (t Task) ChecklistComplete() bool {
	if len(t.Checklist) == 0 {
		return false
	}
	for _, item := range t.Checklist {
		if !item.Completed {
			return false
		}
	}
	return true
}
