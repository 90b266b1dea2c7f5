package cli

import (
	"fmt"
	"strings"

	"github.com/taskquest/taskquest/internal/backup"
	"github.com/taskquest/taskquest/internal/engine"
	"github.com/taskquest/taskquest/internal/logger"
	"github.com/taskquest/taskquest/internal/models"
	"github.com/taskquest/taskquest/internal/storage"
)

type Context struct {
	Store  storage.Provider
	Engine *engine.Engine
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ResolveTask looks up a task by full ID, unique ID prefix, or exact title.
func (c *Context) ResolveTask(ref string) (models.Task, error) {
	tasks := c.Engine.Tasks()

	if task, ok := c.Engine.Task(ref); ok {
		return task, nil
	}

	var matches []models.Task
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, ref) {
			matches = append(matches, t)
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	if len(matches) > 1 {
		return models.Task{}, fmt.Errorf("task id %q is ambiguous (%d matches)", ref, len(matches))
	}

	for _, t := range tasks {
		if strings.EqualFold(t.Title, ref) {
			return t, nil
		}
	}

	return models.Task{}, fmt.Errorf("task %q not found", ref)
}

// ResolveHabit looks up a habit by full ID, unique ID prefix, or exact title.
func (c *Context) ResolveHabit(ref string) (models.Habit, error) {
	habits := c.Engine.Habits()

	var matches []models.Habit
	for _, h := range habits {
		if h.ID == ref {
			return h, nil
		}
		if strings.HasPrefix(h.ID, ref) {
			matches = append(matches, h)
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	if len(matches) > 1 {
		return models.Habit{}, fmt.Errorf("habit id %q is ambiguous (%d matches)", ref, len(matches))
	}

	for _, h := range habits {
		if strings.EqualFold(h.Title, ref) {
			return h, nil
		}
	}

	return models.Habit{}, fmt.Errorf("habit %q not found", ref)
}

// ResolveChecklistItem looks up a checklist item within a task by ID, unique
// ID prefix, 1-based position, or exact text.
func (c *Context) ResolveChecklistItem(task models.Task, ref string) (models.ChecklistItem, error) {
	var matches []models.ChecklistItem
	for _, item := range task.Checklist {
		if item.ID == ref {
			return item, nil
		}
		if strings.HasPrefix(item.ID, ref) {
			matches = append(matches, item)
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	if len(matches) > 1 {
		return models.ChecklistItem{}, fmt.Errorf("checklist item id %q is ambiguous (%d matches)", ref, len(matches))
	}

	var pos int
	if _, err := fmt.Sscanf(ref, "%d", &pos); err == nil && pos >= 1 && pos <= len(task.Checklist) {
		return task.Checklist[pos-1], nil
	}

	for _, item := range task.Checklist {
		if strings.EqualFold(item.Text, ref) {
			return item, nil
		}
	}

	return models.ChecklistItem{}, fmt.Errorf("checklist item %q not found in task %q", ref, task.Title)
}

// ParseStatus parses a board column name.
func ParseStatus(s string) (models.TaskStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "todo", "to-do", "backlog":
		return models.StatusTodo, nil
	case "in-progress", "inprogress", "doing", "active":
		return models.StatusInProgress, nil
	case "done", "complete", "completed":
		return models.StatusDone, nil
	default:
		return "", fmt.Errorf("invalid status: %s (expected todo, in-progress, or done)", s)
	}
}

// FormatXPBar renders an ASCII progress bar for XP within the current level.
func FormatXPBar(progress models.UserProgress, width int) string {
	if width < 2 {
		width = 2
	}
	filled := 0
	if progress.XPToNextLevel > 0 {
		filled = progress.CurrentLevelXP * width / progress.XPToNextLevel
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", width-filled) + "]"
}

// ShortID returns the first 8 characters of a UUID for display.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
