package system

import (
	"fmt"

	"github.com/taskquest/taskquest/internal/artifacts"
	"github.com/taskquest/taskquest/internal/cli"
	"github.com/taskquest/taskquest/internal/leveling"
)

type StatusCmd struct {
	Artifacts bool `help:"Include the full artifact catalog with lock state."`
}

func (c *StatusCmd) Run(ctx *cli.Context) error {
	if err := ctx.Engine.LoadUser(); err != nil {
		return err
	}

	progress := ctx.Engine.Progress()
	tier := leveling.BadgeTier(progress.Level)

	fmt.Printf("Level %d (%s)\n", progress.Level, leveling.TierName(tier))
	fmt.Printf("%s %d/%d XP  (%d total)\n",
		cli.FormatXPBar(progress, 30), progress.CurrentLevelXP, progress.XPToNextLevel, progress.TotalXP)
	fmt.Println()
	fmt.Printf("Tasks completed:      %d\n", progress.TasksCompleted)
	fmt.Printf("Checklists completed: %d\n", progress.ChecklistsCompleted)
	fmt.Printf("Best habit streak:    %d\n", ctx.Engine.MaxStreak())

	today := ctx.Engine.HabitDay()
	habits := ctx.Engine.Habits()
	fmt.Printf("Habits today:         %d/%d", len(today.CompletedHabitIDs), len(habits))
	if today.BonusGranted {
		fmt.Print("  (daily bonus earned)")
	}
	fmt.Println()

	unlocked := ctx.Engine.UnlockedArtifacts()
	if c.Artifacts {
		stats := ctx.Engine.Stats()
		fmt.Printf("\nArtifacts (%d/%d unlocked):\n", len(unlocked), len(artifacts.Catalog))
		for _, a := range artifacts.Catalog {
			marker := "[ ]"
			if a.UnlockCondition.Met(stats) {
				marker = "[x]"
			}
			fmt.Printf("  %s %-20s %-9s %s\n", marker, a.Name, a.Rarity, describeCondition(a.UnlockCondition))
		}
	} else if len(unlocked) > 0 {
		fmt.Printf("\nArtifacts unlocked: %d/%d", len(unlocked), len(artifacts.Catalog))
		for _, a := range unlocked {
			fmt.Printf("\n  %s (%s)", a.Name, a.Rarity)
		}
		fmt.Println()
	}

	if !progress.Loaded() {
		fmt.Println("\nNo progress recorded yet. Complete a task or habit to earn XP.")
	}

	return nil
}

func describeCondition(cond artifacts.UnlockCondition) string {
	switch cond.Type {
	case artifacts.ConditionHabitStreak:
		return fmt.Sprintf("reach a %d-day habit streak", cond.Threshold)
	case artifacts.ConditionTasksCompleted:
		return fmt.Sprintf("complete %d tasks", cond.Threshold)
	case artifacts.ConditionChecklistsCompleted:
		return fmt.Sprintf("complete %d checklist items", cond.Threshold)
	case artifacts.ConditionTotalXP:
		return fmt.Sprintf("earn %d total XP", cond.Threshold)
	default:
		return "unknown condition"
	}
}
