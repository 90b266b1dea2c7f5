package engine

import "testing"

func TestStatsAndUnlockedArtifacts(t *testing.T) {
	e, _, _ := newTestEngine(t)
	resetHabits(t, e)
	habit := e.AddHabit("Grind", "")

	e.mu.Lock()
	e.progress.TasksCompleted = 100
	e.progress.ChecklistsCompleted = 7
	e.applyXP(42)
	e.mu.Unlock()

	e.ToggleHabit(habit.ID)

	stats := e.Stats()
	if stats.TasksCompleted != 100 || stats.MaxHabitStreak != 1 {
		t.Errorf("stats = %+v", stats)
	}

	unlocked := e.UnlockedArtifacts()
	if len(unlocked) != 1 || unlocked[0].ID != "architect_emblem" {
		t.Errorf("unlocked = %+v, want architect_emblem only", unlocked)
	}
}
