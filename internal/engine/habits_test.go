package engine

import "testing"

// resetHabits clears the seeded defaults so tests control the habit set.
func resetHabits(t *testing.T, e *Engine) {
	t.Helper()
	for _, h := range e.Habits() {
		if !e.DeleteHabit(h.ID) {
			t.Fatalf("failed to delete seeded habit %s", h.ID)
		}
	}
}

func TestToggleHabitGrantsAndStreaks(t *testing.T) {
	e, _, clock := newTestEngine(t)
	resetHabits(t, e)
	habit := e.AddHabit("Meditate", "")

	if delta := e.ToggleHabit(habit.ID); delta != 10+35 {
		t.Errorf("single-habit toggle delta = %d, want 45 (reward + all-complete bonus)", delta)
	}
	if got := e.Habits()[0]; got.Streak != 1 || got.LastCompletedDate != "2025-06-01" {
		t.Errorf("habit after toggle = %+v", got)
	}

	// Day N+1: streak continues.
	clock.AdvanceDays(1)
	if delta := e.ToggleHabit(habit.ID); delta != 45 {
		t.Errorf("day-2 delta = %d, want 45", delta)
	}
	if got := e.Habits()[0].Streak; got != 2 {
		t.Errorf("streak after consecutive days = %d, want 2", got)
	}
}

func TestToggleHabitGapResetsStreak(t *testing.T) {
	e, _, clock := newTestEngine(t)
	resetHabits(t, e)
	habit := e.AddHabit("Run", "")

	e.ToggleHabit(habit.ID)
	// Skip a day: N then N+2.
	clock.AdvanceDays(2)
	e.ToggleHabit(habit.ID)

	if got := e.Habits()[0].Streak; got != 1 {
		t.Errorf("streak after gap = %d, want 1", got)
	}
}

func TestToggleHabitUndoToday(t *testing.T) {
	e, _, _ := newTestEngine(t)
	resetHabits(t, e)
	habit := e.AddHabit("Journal", "")

	e.ToggleHabit(habit.ID)
	if delta := e.ToggleHabit(habit.ID); delta != -45 {
		t.Errorf("undo delta = %d, want -45", delta)
	}
	got := e.Habits()[0]
	if got.Streak != 0 || got.LastCompletedDate != "" {
		t.Errorf("habit after undo = %+v", got)
	}
	if e.Progress().TotalXP != 0 {
		t.Errorf("totalXP after toggle+undo = %d, want 0", e.Progress().TotalXP)
	}
	if e.HabitDay().BonusGranted {
		t.Error("bonus flag still set after undo")
	}
}

func TestTwoHabitAllCompleteBonus(t *testing.T) {
	e, _, _ := newTestEngine(t)
	resetHabits(t, e)
	first := e.AddHabit("First", "")
	second := e.AddHabit("Second", "")

	if delta := e.ToggleHabit(first.ID); delta != 10 {
		t.Errorf("first habit delta = %d, want 10 (no bonus yet)", delta)
	}
	if delta := e.ToggleHabit(second.ID); delta != 10+35 {
		t.Errorf("second habit delta = %d, want 45", delta)
	}
	if got := e.Progress().TotalXP; got != 55 {
		t.Errorf("totalXP with both done = %d, want 55", got)
	}

	// Un-completing either habit revokes its 10 and the 35 bonus, leaving
	// the other habit's 10 credited.
	if delta := e.ToggleHabit(first.ID); delta != -45 {
		t.Errorf("revoke delta = %d, want -45", delta)
	}
	if got := e.Progress().TotalXP; got != 10 {
		t.Errorf("totalXP after partial revoke = %d, want 10", got)
	}
	if e.HabitDay().BonusGranted {
		t.Error("bonus flag survived partial revoke")
	}
}

func TestBonusNotRegrantedSameDay(t *testing.T) {
	e, _, _ := newTestEngine(t)
	resetHabits(t, e)
	first := e.AddHabit("First", "")
	second := e.AddHabit("Second", "")

	e.ToggleHabit(first.ID)
	e.ToggleHabit(second.ID) // bonus granted
	e.ToggleHabit(second.ID) // bonus revoked
	if delta := e.ToggleHabit(second.ID); delta != 45 {
		// Completing again re-grants: the flag was cleared with the revoke.
		t.Errorf("re-complete delta = %d, want 45", delta)
	}
}

func TestDayRolloverResetsRecordKeepsStreak(t *testing.T) {
	e, _, clock := newTestEngine(t)
	resetHabits(t, e)
	habit := e.AddHabit("Stretch", "")

	e.ToggleHabit(habit.ID)
	clock.AdvanceDays(1)

	day := e.HabitDay()
	if day.Date != "2025-06-02" || len(day.CompletedHabitIDs) != 0 || day.BonusGranted {
		t.Errorf("day record after rollover = %+v, want fresh", day)
	}
	if got := e.Habits()[0].Streak; got != 1 {
		t.Errorf("streak lost on rollover: %d, want 1", got)
	}
}

func TestDeleteHabitScrubsTodayRecord(t *testing.T) {
	e, _, _ := newTestEngine(t)
	resetHabits(t, e)
	keep := e.AddHabit("Keep", "")
	drop := e.AddHabit("Drop", "")

	e.ToggleHabit(drop.ID)
	earned := e.Progress().TotalXP

	if !e.DeleteHabit(drop.ID) {
		t.Fatal("DeleteHabit failed")
	}
	if e.HabitDay().Completed(drop.ID) {
		t.Error("deleted habit still in today's completed set")
	}
	// No XP reconciliation for the removal.
	if got := e.Progress().TotalXP; got != earned {
		t.Errorf("delete reconciled XP: %d -> %d", earned, got)
	}
	if len(e.Habits()) != 1 || e.Habits()[0].ID != keep.ID {
		t.Errorf("habits after delete = %+v", e.Habits())
	}
}

func TestAddHabitValidation(t *testing.T) {
	e, _, _ := newTestEngine(t)
	resetHabits(t, e)

	if e.AddHabit("   ", "") != nil {
		t.Error("whitespace-only habit title accepted")
	}
	habit := e.AddHabit("  Read  ", "  nightly  ")
	if habit == nil || habit.Title != "Read" || habit.Description != "nightly" {
		t.Errorf("AddHabit = %+v", habit)
	}
	if habit.XPReward != 10 {
		t.Errorf("habit xpReward = %d, want 10", habit.XPReward)
	}
}

func TestUpdateHabit(t *testing.T) {
	e, _, _ := newTestEngine(t)
	resetHabits(t, e)
	habit := e.AddHabit("Old", "d")

	if !e.UpdateHabit(habit.ID, "New", "d2") {
		t.Fatal("UpdateHabit failed")
	}
	if got := e.Habits()[0]; got.Title != "New" || got.Description != "d2" {
		t.Errorf("updated habit = %+v", got)
	}
	if e.UpdateHabit("missing", "x", "") {
		t.Error("update of missing habit reported success")
	}
}

func TestToggleMissingHabit(t *testing.T) {
	e, _, _ := newTestEngine(t)
	if delta := e.ToggleHabit("missing"); delta != 0 {
		t.Errorf("missing habit delta = %d, want 0", delta)
	}
}

func TestMaxStreak(t *testing.T) {
	e, _, clock := newTestEngine(t)
	resetHabits(t, e)
	a := e.AddHabit("A", "")
	b := e.AddHabit("B", "")

	for i := 0; i < 3; i++ {
		e.ToggleHabit(a.ID)
		if i == 0 {
			e.ToggleHabit(b.ID)
		}
		clock.AdvanceDays(1)
	}

	if got := e.MaxStreak(); got != 3 {
		t.Errorf("MaxStreak = %d, want 3", got)
	}
}
