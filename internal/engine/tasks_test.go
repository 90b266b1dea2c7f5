package engine

import (
	"testing"

	"github.com/taskquest/taskquest/internal/models"
)

func addTaskWithChecklist(t *testing.T, e *Engine, items int) (models.Task, []string) {
	t.Helper()
	task := e.AddTask("Task with checklist", "")
	if task == nil {
		t.Fatal("AddTask returned nil")
	}
	var itemIDs []string
	for i := 0; i < items; i++ {
		item := e.AddChecklistItem(task.ID, "item")
		if item == nil {
			t.Fatal("AddChecklistItem returned nil")
		}
		itemIDs = append(itemIDs, item.ID)
	}
	got, _ := e.Task(task.ID)
	return got, itemIDs
}

func TestAddTaskValidation(t *testing.T) {
	e, _, _ := newTestEngine(t)

	if task := e.AddTask("   ", "desc"); task != nil {
		t.Error("whitespace-only title accepted")
	}
	if len(e.Tasks()) != 0 {
		t.Error("rejected add still created a task")
	}

	task := e.AddTask("  Real task  ", "  desc  ")
	if task == nil {
		t.Fatal("valid add rejected")
	}
	if task.Title != "Real task" || task.Description != "desc" {
		t.Errorf("title/description not trimmed: %+v", task)
	}
	if task.Status != models.StatusTodo {
		t.Errorf("new task status = %q, want todo", task.Status)
	}
	if task.XPReward != 25 {
		t.Errorf("new task xpReward = %d, want 25", task.XPReward)
	}
}

func TestToggleChecklistItemGrantsAndRevokes(t *testing.T) {
	e, _, _ := newTestEngine(t)
	task, ids := addTaskWithChecklist(t, e, 3)

	res := e.ToggleChecklistItem(task.ID, ids[0])
	if res.XPGained != 5 || res.TaskCompleted {
		t.Errorf("first toggle = %+v, want +5, not completed", res)
	}
	if got := e.Progress(); got.TotalXP != 5 || got.ChecklistsCompleted != 1 {
		t.Errorf("progress after first toggle = %+v", got)
	}

	res = e.ToggleChecklistItem(task.ID, ids[0])
	if res.XPGained != -5 {
		t.Errorf("untoggle = %+v, want -5", res)
	}
	if got := e.Progress(); got.TotalXP != 0 || got.ChecklistsCompleted != 0 {
		t.Errorf("progress after untoggle = %+v", got)
	}
}

func TestToggleChecklistItemBonusBoundary(t *testing.T) {
	e, _, _ := newTestEngine(t)
	task, ids := addTaskWithChecklist(t, e, 3)

	e.ToggleChecklistItem(task.ID, ids[0])
	e.ToggleChecklistItem(task.ID, ids[1])

	// Completing the last item of a 3-item checklist grants 5 + 15.
	res := e.ToggleChecklistItem(task.ID, ids[2])
	if res.XPGained != 20 || !res.TaskCompleted {
		t.Errorf("completing toggle = %+v, want +20 and completed", res)
	}
	if got := e.Progress().TotalXP; got != 30 {
		t.Errorf("totalXP = %d, want 30", got)
	}

	// Uncompleting it immediately revokes exactly 20.
	res = e.ToggleChecklistItem(task.ID, ids[2])
	if res.XPGained != -20 || res.TaskCompleted {
		t.Errorf("revoking toggle = %+v, want -20", res)
	}
	if got := e.Progress().TotalXP; got != 10 {
		t.Errorf("totalXP = %d, want 10", got)
	}
}

func TestToggleChecklistItemMissing(t *testing.T) {
	e, _, _ := newTestEngine(t)
	task, _ := addTaskWithChecklist(t, e, 1)

	if res := e.ToggleChecklistItem("nope", "x"); res != (ToggleResult{}) {
		t.Errorf("toggle on missing task = %+v, want zero", res)
	}
	if res := e.ToggleChecklistItem(task.ID, "nope"); res != (ToggleResult{}) {
		t.Errorf("toggle on missing item = %+v, want zero", res)
	}
}

func TestChecklistCounterFloor(t *testing.T) {
	e, _, _ := newTestEngine(t)
	task, ids := addTaskWithChecklist(t, e, 1)

	// Force the counter to zero via a remote-style state, then untoggle.
	e.ToggleChecklistItem(task.ID, ids[0])
	e.mu.Lock()
	e.progress.ChecklistsCompleted = 0
	e.mu.Unlock()

	e.ToggleChecklistItem(task.ID, ids[0])
	if got := e.Progress().ChecklistsCompleted; got != 0 {
		t.Errorf("checklistsCompleted = %d, want floored 0", got)
	}
}

func TestSubItemsAreXPInert(t *testing.T) {
	e, _, _ := newTestEngine(t)
	task, ids := addTaskWithChecklist(t, e, 1)

	sub := e.AddSubItem(task.ID, ids[0], "sub")
	if sub == nil {
		t.Fatal("AddSubItem returned nil")
	}

	if !e.ToggleSubItem(task.ID, ids[0], sub.ID) {
		t.Fatal("ToggleSubItem failed")
	}
	if got := e.Progress().TotalXP; got != 0 {
		t.Errorf("sub-item toggle granted XP: %d", got)
	}

	// Completing the parent still ignores sub-item state entirely.
	res := e.ToggleChecklistItem(task.ID, ids[0])
	if res.XPGained != 20 || !res.TaskCompleted {
		t.Errorf("parent toggle = %+v, want +20 regardless of sub-items", res)
	}
}

func TestSubItemCRUD(t *testing.T) {
	e, _, _ := newTestEngine(t)
	task, ids := addTaskWithChecklist(t, e, 1)

	sub := e.AddSubItem(task.ID, ids[0], " polish ")
	if sub == nil || sub.Text != "polish" {
		t.Fatalf("AddSubItem = %+v", sub)
	}
	if e.AddSubItem(task.ID, ids[0], "  ") != nil {
		t.Error("empty sub-item accepted")
	}

	if !e.UpdateSubItem(task.ID, ids[0], sub.ID, "polished") {
		t.Error("UpdateSubItem failed")
	}
	if !e.DeleteSubItem(task.ID, ids[0], sub.ID) {
		t.Error("DeleteSubItem failed")
	}
	got, _ := e.Task(task.ID)
	if len(got.Checklist[0].SubItems) != 0 {
		t.Errorf("sub-items after delete: %+v", got.Checklist[0].SubItems)
	}
}

func TestDeleteChecklistItemIsXPInert(t *testing.T) {
	e, _, _ := newTestEngine(t)
	task, ids := addTaskWithChecklist(t, e, 2)

	e.ToggleChecklistItem(task.ID, ids[0])
	before := e.Progress().TotalXP

	// Deleting the only incomplete item would leave the checklist fully
	// complete, but deletion never grants or revokes anything.
	if !e.DeleteChecklistItem(task.ID, ids[1]) {
		t.Fatal("DeleteChecklistItem failed")
	}
	if got := e.Progress().TotalXP; got != before {
		t.Errorf("delete changed XP: %d -> %d", before, got)
	}
}

func TestMoveTaskStampsCompletedAt(t *testing.T) {
	e, _, _ := newTestEngine(t)
	task := e.AddTask("Move me", "")

	if !e.MoveTask(task.ID, models.StatusDone) {
		t.Fatal("MoveTask failed")
	}
	got, _ := e.Task(task.ID)
	if got.Status != models.StatusDone || got.CompletedAt == nil {
		t.Errorf("after move to done: %+v", got)
	}
	if e.Progress().TotalXP != 0 {
		t.Error("moving granted XP; status changes are XP-free")
	}

	e.MoveTask(task.ID, models.StatusInProgress)
	got, _ = e.Task(task.ID)
	if got.Status != models.StatusInProgress || got.CompletedAt != nil {
		t.Errorf("after move out of done: %+v", got)
	}
}

func TestToggleTaskCompletion(t *testing.T) {
	e, _, _ := newTestEngine(t)
	task := e.AddTask("Finish me", "")

	if delta := e.ToggleTaskCompletion(task.ID); delta != 25 {
		t.Errorf("completion delta = %d, want 25", delta)
	}
	p := e.Progress()
	if p.TotalXP != 25 || p.TasksCompleted != 1 {
		t.Errorf("progress = %+v", p)
	}
	got, _ := e.Task(task.ID)
	if got.Status != models.StatusDone || got.CompletedAt == nil {
		t.Errorf("task after completion = %+v", got)
	}

	if delta := e.ToggleTaskCompletion(task.ID); delta != -25 {
		t.Errorf("revoke delta = %d, want -25", delta)
	}
	p = e.Progress()
	if p.TotalXP != 0 || p.TasksCompleted != 0 {
		t.Errorf("progress after revoke = %+v", p)
	}

	if delta := e.ToggleTaskCompletion("missing"); delta != 0 {
		t.Errorf("missing task delta = %d, want 0", delta)
	}
}

func TestDeleteTaskKeepsEarnedXP(t *testing.T) {
	e, _, _ := newTestEngine(t)
	task, ids := addTaskWithChecklist(t, e, 1)

	e.ToggleChecklistItem(task.ID, ids[0])
	earned := e.Progress().TotalXP

	if !e.DeleteTask(task.ID) {
		t.Fatal("DeleteTask failed")
	}
	if got := e.Progress().TotalXP; got != earned {
		t.Errorf("delete reconciled XP: %d -> %d", earned, got)
	}
	if len(e.Tasks()) != 0 {
		t.Error("task not removed")
	}
}

func TestUpdateTask(t *testing.T) {
	e, _, _ := newTestEngine(t)
	task := e.AddTask("Original", "old")

	if !e.UpdateTask(task.ID, "Renamed", "new") {
		t.Fatal("UpdateTask failed")
	}
	got, _ := e.Task(task.ID)
	if got.Title != "Renamed" || got.Description != "new" {
		t.Errorf("updated task = %+v", got)
	}

	// Empty title keeps the old one.
	e.UpdateTask(task.ID, "  ", "newer")
	got, _ = e.Task(task.ID)
	if got.Title != "Renamed" || got.Description != "newer" {
		t.Errorf("empty-title update = %+v", got)
	}
}
