package engine

import (
	"github.com/google/uuid"

	"github.com/taskquest/taskquest/internal/models"
	"github.com/taskquest/taskquest/internal/validation"
)

// ToggleResult is what a checklist toggle reports back to the caller so
// the presentation layer can react (XP popup, celebration) only on the
// completing transition.
type ToggleResult struct {
	XPGained      int
	TaskCompleted bool
}

// Tasks returns a copy of the board.
func (e *Engine) Tasks() []models.Task {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.Task, len(e.tasks))
	copy(out, e.tasks)
	return out
}

// Task returns the task with the given id.
func (e *Engine) Task(id string) (models.Task, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if t := e.findTask(id); t != nil {
		return *t, true
	}
	return models.Task{}, false
}

func (e *Engine) findTask(id string) *models.Task {
	for i := range e.tasks {
		if e.tasks[i].ID == id {
			return &e.tasks[i]
		}
	}
	return nil
}

func findItem(task *models.Task, itemID string) *models.ChecklistItem {
	for i := range task.Checklist {
		if task.Checklist[i].ID == itemID {
			return &task.Checklist[i]
		}
	}
	return nil
}

func newChecklistItem(text string) models.ChecklistItem {
	return models.ChecklistItem{
		ID:   uuid.New().String(),
		Text: text,
	}
}

// AddTask appends a new card in the todo column. An empty title is a
// quiet no-op returning nil.
func (e *Engine) AddTask(title, description string) *models.Task {
	title, ok := validation.Title(title)
	if !ok {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	task := models.Task{
		ID:          uuid.New().String(),
		Title:       title,
		Description: validation.Description(description),
		Status:      models.StatusTodo,
		XPReward:    e.xp.TaskComplete,
		CreatedAt:   e.now(),
	}
	e.tasks = append(e.tasks, task)
	e.scheduleSync()
	return &task
}

// UpdateTask edits title and/or description. An empty new title keeps the
// old one.
func (e *Engine) UpdateTask(id, title, description string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	task := e.findTask(id)
	if task == nil {
		return false
	}
	if trimmed, ok := validation.Title(title); ok {
		task.Title = trimmed
	}
	task.Description = validation.Description(description)
	e.scheduleSync()
	return true
}

// DeleteTask removes a card. XP already earned through its checklist is
// not revoked.
func (e *Engine) DeleteTask(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.tasks {
		if e.tasks[i].ID == id {
			e.tasks = append(e.tasks[:i], e.tasks[i+1:]...)
			e.scheduleSync()
			return true
		}
	}
	return false
}

// MoveTask sets the card's column. Moving into done stamps CompletedAt,
// moving out clears it. The move itself grants no XP; XP comes from
// checklist completion, not from the status field.
func (e *Engine) MoveTask(id string, status models.TaskStatus) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	task := e.findTask(id)
	if task == nil {
		return false
	}

	task.Status = status
	if status == models.StatusDone {
		now := e.now()
		task.CompletedAt = &now
	} else {
		task.CompletedAt = nil
	}
	e.scheduleSync()
	return true
}

// ToggleTaskCompletion flips a card between done and todo, granting or
// revoking the task-completion reward and adjusting the completed-task
// counter (floored at zero). Returns the XP delta applied.
func (e *Engine) ToggleTaskCompletion(id string) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	task := e.findTask(id)
	if task == nil {
		return 0
	}

	var delta int
	if task.Status == models.StatusDone {
		task.Status = models.StatusTodo
		task.CompletedAt = nil
		delta = -task.XPReward
		if e.progress.TasksCompleted > 0 {
			e.progress.TasksCompleted--
		}
	} else {
		task.Status = models.StatusDone
		now := e.now()
		task.CompletedAt = &now
		delta = task.XPReward
		e.progress.TasksCompleted++
	}

	e.applyXP(delta)
	return delta
}

// AddChecklistItem appends a top-level checklist entry. Empty text is a
// quiet no-op.
func (e *Engine) AddChecklistItem(taskID, text string) *models.ChecklistItem {
	text, ok := validation.Title(text)
	if !ok {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	task := e.findTask(taskID)
	if task == nil {
		return nil
	}

	item := newChecklistItem(text)
	task.Checklist = append(task.Checklist, item)
	e.scheduleSync()
	return &item
}

// UpdateChecklistItem edits an item's text.
func (e *Engine) UpdateChecklistItem(taskID, itemID, text string) bool {
	text, ok := validation.Title(text)
	if !ok {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	task := e.findTask(taskID)
	if task == nil {
		return false
	}
	item := findItem(task, itemID)
	if item == nil {
		return false
	}
	item.Text = text
	e.scheduleSync()
	return true
}

// DeleteChecklistItem removes an item and its sub-items. Structural only:
// no XP effect even if the deletion changes the completion ratio.
func (e *Engine) DeleteChecklistItem(taskID, itemID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	task := e.findTask(taskID)
	if task == nil {
		return false
	}
	for i := range task.Checklist {
		if task.Checklist[i].ID == itemID {
			task.Checklist = append(task.Checklist[:i], task.Checklist[i+1:]...)
			e.scheduleSync()
			return true
		}
	}
	return false
}

// ToggleChecklistItem flips a top-level item. Completing grants the item
// reward plus, when it finishes the whole checklist, the all-items bonus;
// uncompleting revokes the same amounts symmetrically. The completed-item
// counter moves with the toggle, floored at zero.
func (e *Engine) ToggleChecklistItem(taskID, itemID string) ToggleResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	task := e.findTask(taskID)
	if task == nil {
		return ToggleResult{}
	}
	item := findItem(task, itemID)
	if item == nil {
		return ToggleResult{}
	}

	wasComplete := task.ChecklistComplete()
	item.Completed = !item.Completed

	var result ToggleResult
	if item.Completed {
		result.XPGained = e.xp.ChecklistItem
		e.progress.ChecklistsCompleted++
		if task.ChecklistComplete() {
			result.XPGained += e.xp.AllItemsBonus
			result.TaskCompleted = true
		}
	} else {
		result.XPGained = -e.xp.ChecklistItem
		if e.progress.ChecklistsCompleted > 0 {
			e.progress.ChecklistsCompleted--
		}
		if wasComplete {
			result.XPGained -= e.xp.AllItemsBonus
		}
	}

	e.applyXP(result.XPGained)
	return result
}

// AddSubItem appends a sub-item under a top-level item. Sub-items never
// nest further.
func (e *Engine) AddSubItem(taskID, parentID, text string) *models.ChecklistItem {
	text, ok := validation.Title(text)
	if !ok {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	task := e.findTask(taskID)
	if task == nil {
		return nil
	}
	parent := findItem(task, parentID)
	if parent == nil {
		return nil
	}

	item := newChecklistItem(text)
	parent.SubItems = append(parent.SubItems, item)
	e.scheduleSync()
	return &item
}

func findSubItem(parent *models.ChecklistItem, subID string) *models.ChecklistItem {
	for i := range parent.SubItems {
		if parent.SubItems[i].ID == subID {
			return &parent.SubItems[i]
		}
	}
	return nil
}

// UpdateSubItem edits a sub-item's text.
func (e *Engine) UpdateSubItem(taskID, parentID, subID, text string) bool {
	text, ok := validation.Title(text)
	if !ok {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	task := e.findTask(taskID)
	if task == nil {
		return false
	}
	parent := findItem(task, parentID)
	if parent == nil {
		return false
	}
	sub := findSubItem(parent, subID)
	if sub == nil {
		return false
	}
	sub.Text = text
	e.scheduleSync()
	return true
}

// DeleteSubItem removes a sub-item. No XP effect.
func (e *Engine) DeleteSubItem(taskID, parentID, subID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	task := e.findTask(taskID)
	if task == nil {
		return false
	}
	parent := findItem(task, parentID)
	if parent == nil {
		return false
	}
	for i := range parent.SubItems {
		if parent.SubItems[i].ID == subID {
			parent.SubItems = append(parent.SubItems[:i], parent.SubItems[i+1:]...)
			e.scheduleSync()
			return true
		}
	}
	return false
}

// ToggleSubItem flips a sub-item. Sub-items are XP-inert and do not roll
// up into the parent's completion state.
func (e *Engine) ToggleSubItem(taskID, parentID, subID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	task := e.findTask(taskID)
	if task == nil {
		return false
	}
	parent := findItem(task, parentID)
	if parent == nil {
		return false
	}
	sub := findSubItem(parent, subID)
	if sub == nil {
		return false
	}
	sub.Completed = !sub.Completed
	e.scheduleSync()
	return true
}
