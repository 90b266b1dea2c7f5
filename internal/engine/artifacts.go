package engine

import "github.com/taskquest/taskquest/internal/artifacts"

// Stats assembles the numbers the artifact evaluator reads.
func (e *Engine) Stats() artifacts.Stats {
	e.mu.Lock()
	defer e.mu.Unlock()

	max := 0
	for _, h := range e.habits {
		if h.Streak > max {
			max = h.Streak
		}
	}

	return artifacts.Stats{
		TotalXP:             e.progress.TotalXP,
		TasksCompleted:      e.progress.TasksCompleted,
		ChecklistsCompleted: e.progress.ChecklistsCompleted,
		MaxHabitStreak:      max,
	}
}

// UnlockedArtifacts re-derives the unlocked artifact set from current
// stats. Nothing is stored; calling it is always safe.
func (e *Engine) UnlockedArtifacts() []artifacts.Artifact {
	return artifacts.Unlocked(e.Stats())
}
