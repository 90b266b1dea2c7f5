package engine

import (
	"github.com/google/uuid"

	"github.com/taskquest/taskquest/internal/models"
	"github.com/taskquest/taskquest/internal/validation"
)

// normalizeDay returns a usable day record for today. A record carrying a
// different date is replaced wholesale: completions never survive the day
// they were made on, only streak data on the habits themselves does.
func normalizeDay(day models.HabitDayProgress, todayKey string) models.HabitDayProgress {
	if day.Date != todayKey {
		return models.HabitDayProgress{Date: todayKey}
	}
	return day
}

// ensureTodayLocked normalizes the in-memory day record before any habit
// read or mutation. Callers hold e.mu.
func (e *Engine) ensureTodayLocked() {
	e.habitDay = normalizeDay(e.habitDay, e.todayKey())
}

// Habits returns a copy of the habit list.
func (e *Engine) Habits() []models.Habit {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.Habit, len(e.habits))
	copy(out, e.habits)
	return out
}

// HabitDay returns today's completion record, normalized.
func (e *Engine) HabitDay() models.HabitDayProgress {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ensureTodayLocked()
	return e.habitDay
}

func (e *Engine) findHabit(id string) *models.Habit {
	for i := range e.habits {
		if e.habits[i].ID == id {
			return &e.habits[i]
		}
	}
	return nil
}

// AddHabit creates a habit with the default reward. Empty titles are a
// quiet no-op.
func (e *Engine) AddHabit(title, description string) *models.Habit {
	title, ok := validation.Title(title)
	if !ok {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	habit := models.Habit{
		ID:          uuid.New().String(),
		Title:       title,
		Description: validation.Description(description),
		XPReward:    e.xp.HabitComplete,
		CreatedAt:   e.now(),
	}
	e.habits = append(e.habits, habit)
	e.scheduleSync()
	return &habit
}

// UpdateHabit edits title and/or description. An empty new title keeps
// the old one.
func (e *Engine) UpdateHabit(id, title, description string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	habit := e.findHabit(id)
	if habit == nil {
		return false
	}
	if trimmed, ok := validation.Title(title); ok {
		habit.Title = trimmed
	}
	habit.Description = validation.Description(description)
	e.scheduleSync()
	return true
}

// DeleteHabit removes a habit and scrubs it from today's completed set.
// No XP reconciliation happens for the removal.
func (e *Engine) DeleteHabit(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.habits {
		if e.habits[i].ID != id {
			continue
		}
		e.habits = append(e.habits[:i], e.habits[i+1:]...)

		e.ensureTodayLocked()
		ids := e.habitDay.CompletedHabitIDs[:0]
		for _, cid := range e.habitDay.CompletedHabitIDs {
			if cid != id {
				ids = append(ids, cid)
			}
		}
		e.habitDay.CompletedHabitIDs = ids

		e.scheduleSync()
		return true
	}
	return false
}

// ToggleHabit flips a habit's completion for today and routes the net XP
// delta through the ledger in one call.
//
// Completing: the habit joins today's set, its streak continues (+1 when
// yesterday was its last completion) or restarts at 1, and when every
// current habit is now done today the all-complete bonus is granted once.
// Uncompleting: today's completion and streak increment are undone, the
// reward revoked, and a granted bonus revoked with it. Returns the net XP
// delta applied.
func (e *Engine) ToggleHabit(id string) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	habit := e.findHabit(id)
	if habit == nil {
		return 0
	}

	e.ensureTodayLocked()
	today := e.habitDay.Date

	var delta int
	if e.habitDay.Completed(id) {
		ids := e.habitDay.CompletedHabitIDs[:0]
		for _, cid := range e.habitDay.CompletedHabitIDs {
			if cid != id {
				ids = append(ids, cid)
			}
		}
		e.habitDay.CompletedHabitIDs = ids

		if habit.LastCompletedDate == today {
			habit.LastCompletedDate = ""
			if habit.Streak > 0 {
				habit.Streak--
			}
		}
		delta = -habit.XPReward
		if e.habitDay.BonusGranted {
			e.habitDay.BonusGranted = false
			delta -= e.xp.HabitAllBonus
		}
	} else {
		e.habitDay.CompletedHabitIDs = append(e.habitDay.CompletedHabitIDs, id)

		if habit.LastCompletedDate == yesterdayKey(today) {
			habit.Streak++
		} else {
			habit.Streak = 1
		}
		habit.LastCompletedDate = today

		delta = habit.XPReward
		if !e.habitDay.BonusGranted && len(e.habitDay.CompletedHabitIDs) == len(e.habits) {
			e.habitDay.BonusGranted = true
			delta += e.xp.HabitAllBonus
		}
	}

	if delta != 0 {
		e.applyXP(delta)
	} else {
		e.scheduleSync()
	}
	return delta
}

// MaxStreak returns the highest current streak across all habits.
func (e *Engine) MaxStreak() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	max := 0
	for _, h := range e.habits {
		if h.Streak > max {
			max = h.Streak
		}
	}
	return max
}
