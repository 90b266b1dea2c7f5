package habits

import (
	"fmt"

	"github.com/taskquest/taskquest/internal/cli"
	"github.com/taskquest/taskquest/internal/models"
)

type HabitAddCmd struct {
	Title       string `arg:"" help:"Habit title."`
	Description string `help:"Optional habit description."`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Engine.LoadUser(); err != nil {
		return err
	}

	habit := ctx.Engine.AddHabit(c.Title, c.Description)
	if habit == nil {
		return fmt.Errorf("habit title cannot be empty")
	}

	fmt.Printf("Added habit: %s (%s)\n", habit.Title, cli.ShortID(habit.ID))
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Engine.LoadUser(); err != nil {
		return err
	}

	habits := ctx.Engine.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	day := ctx.Engine.HabitDay()
	fmt.Printf("Habits for %s:\n\n", day.Date)
	for _, h := range habits {
		status := "[ ]"
		if day.Completed(h.ID) {
			status = "[x]"
		}
		line := fmt.Sprintf("%s %s  %s", status, cli.ShortID(h.ID), h.Title)
		if h.Streak > 0 {
			line += fmt.Sprintf("  (streak: %d)", h.Streak)
		}
		fmt.Println(line)
	}

	fmt.Printf("\nCompleted: %d/%d", len(day.CompletedHabitIDs), len(habits))
	if day.BonusGranted {
		fmt.Print("  — daily bonus earned!")
	}
	fmt.Println()
	return nil
}

type HabitDoneCmd struct {
	Habit string `arg:"" help:"Habit ID (or prefix) or title."`
}

func (c *HabitDoneCmd) Run(ctx *cli.Context) error {
	if err := ctx.Engine.LoadUser(); err != nil {
		return err
	}

	h, err := ctx.ResolveHabit(c.Habit)
	if err != nil {
		return err
	}

	wasDone := ctx.Engine.HabitDay().Completed(h.ID)
	delta := ctx.Engine.ToggleHabit(h.ID)

	if wasDone {
		fmt.Printf("Unmarked habit %q for today (%d XP)\n", h.Title, delta)
		return nil
	}

	updated, _ := findHabit(ctx, h.ID)
	fmt.Printf("Marked habit %q done (+%d XP, streak: %d)\n", h.Title, delta, updated.Streak)
	if ctx.Engine.HabitDay().BonusGranted {
		fmt.Println("All habits done today — bonus XP earned!")
	}
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit ID (or prefix) or title."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Engine.LoadUser(); err != nil {
		return err
	}

	h, err := ctx.ResolveHabit(c.Habit)
	if err != nil {
		return err
	}

	if !ctx.Engine.DeleteHabit(h.ID) {
		return fmt.Errorf("habit %q not found", c.Habit)
	}

	fmt.Printf("Deleted habit: %s\n", h.Title)
	return nil
}

type HabitEditCmd struct {
	Habit       string `arg:"" help:"Habit ID (or prefix) or title."`
	Title       string `help:"New title."`
	Description string `help:"New description."`
}

func (c *HabitEditCmd) Run(ctx *cli.Context) error {
	if err := ctx.Engine.LoadUser(); err != nil {
		return err
	}

	h, err := ctx.ResolveHabit(c.Habit)
	if err != nil {
		return err
	}

	title := c.Title
	if title == "" {
		title = h.Title
	}
	description := c.Description
	if description == "" {
		description = h.Description
	}

	if !ctx.Engine.UpdateHabit(h.ID, title, description) {
		return fmt.Errorf("habit %q not found", c.Habit)
	}

	fmt.Printf("Updated habit: %s\n", title)
	return nil
}

func findHabit(ctx *cli.Context, id string) (models.Habit, bool) {
	for _, habit := range ctx.Engine.Habits() {
		if habit.ID == id {
			return habit, true
		}
	}
	return models.Habit{}, false
}
