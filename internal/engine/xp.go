package engine

import (
	"github.com/taskquest/taskquest/internal/leveling"
	"github.com/taskquest/taskquest/internal/models"
)

// applyXP routes an XP delta through the ledger: clamp cumulative XP at
// zero, recompute the derived level fields, and raise the level-up token
// when a positive delta crosses a level boundary. Negative deltas never
// fire a level-up; the celebration is a one-way signal, not a symmetric
// transition. A jump across several thresholds still raises one token.
// Callers hold e.mu. Reports whether a level-up fired.
func (e *Engine) applyXP(amount int) bool {
	newTotal := e.progress.TotalXP + amount
	if newTotal < 0 {
		newTotal = 0
	}

	res := leveling.Calculate(newTotal)
	leveledUp := amount > 0 && res.Level > e.progress.Level

	e.progress.TotalXP = newTotal
	e.progress.Level = res.Level
	e.progress.XPToNextLevel = res.XPToNextLevel
	e.progress.CurrentLevelXP = res.CurrentLevelXP

	if leveledUp {
		e.levelUpSeq++
		e.pendingLevelUp = e.levelUpSeq
	}

	e.scheduleSync()
	return leveledUp
}

// Progress returns a copy of the current ledger.
func (e *Engine) Progress() models.UserProgress {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.progress
}

// PendingLevelUp returns the unconsumed level-up token, or 0 when no
// level-up is waiting. The token only ever increases, so the UI can tell
// a new celebration from one it already showed.
func (e *Engine) PendingLevelUp() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pendingLevelUp
}

// AckLevelUp consumes the pending level-up signal.
func (e *Engine) AckLevelUp() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pendingLevelUp = 0
}
