package tasks

import (
	"fmt"
	"strings"

	"github.com/taskquest/taskquest/internal/cli"
	"github.com/taskquest/taskquest/internal/models"
)

type TaskAddCmd struct {
	Title       string   `arg:"" help:"Task title."`
	Description string   `help:"Optional task description."`
	Checklist   []string `help:"Checklist item to add (repeatable)." name:"item" short:"i"`
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Engine.LoadUser(); err != nil {
		return err
	}

	task := ctx.Engine.AddTask(c.Title, c.Description)
	if task == nil {
		return fmt.Errorf("task title cannot be empty")
	}

	for _, text := range c.Checklist {
		if ctx.Engine.AddChecklistItem(task.ID, text) == nil {
			return fmt.Errorf("checklist item text cannot be empty")
		}
	}

	fmt.Printf("Added task: %s (%s)\n", task.Title, cli.ShortID(task.ID))
	return nil
}

type TaskListCmd struct {
	Status string `help:"Filter by column (todo, in-progress, done)."`
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Engine.LoadUser(); err != nil {
		return err
	}

	var filter models.TaskStatus
	if c.Status != "" {
		status, err := cli.ParseStatus(c.Status)
		if err != nil {
			return err
		}
		filter = status
	}

	tasks := ctx.Engine.Tasks()
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	columns := []models.TaskStatus{models.StatusTodo, models.StatusInProgress, models.StatusDone}
	shown := 0
	for _, col := range columns {
		if filter != "" && col != filter {
			continue
		}
		var inColumn []models.Task
		for _, t := range tasks {
			if t.Status == col {
				inColumn = append(inColumn, t)
			}
		}
		if len(inColumn) == 0 {
			continue
		}

		fmt.Printf("%s:\n", strings.ToUpper(string(col)))
		for _, t := range inColumn {
			line := fmt.Sprintf("  %s  %s", cli.ShortID(t.ID), t.Title)
			if len(t.Checklist) > 0 {
				done := 0
				for _, item := range t.Checklist {
					if item.Completed {
						done++
					}
				}
				line += fmt.Sprintf("  [%d/%d]", done, len(t.Checklist))
			}
			fmt.Println(line)
			shown++
		}
		fmt.Println()
	}

	if shown == 0 {
		fmt.Println("No tasks in that column.")
	}
	return nil
}

type TaskMoveCmd struct {
	Task   string `arg:"" help:"Task ID (or prefix) or title."`
	Status string `arg:"" help:"Target column: todo, in-progress, or done."`
}

func (c *TaskMoveCmd) Run(ctx *cli.Context) error {
	if err := ctx.Engine.LoadUser(); err != nil {
		return err
	}

	t, err := ctx.ResolveTask(c.Task)
	if err != nil {
		return err
	}

	status, err := cli.ParseStatus(c.Status)
	if err != nil {
		return err
	}

	if !ctx.Engine.MoveTask(t.ID, status) {
		return fmt.Errorf("task %q not found", c.Task)
	}

	fmt.Printf("Moved %q to %s\n", t.Title, status)
	return nil
}

type TaskCompleteCmd struct {
	Task string `arg:"" help:"Task ID (or prefix) or title."`
}

func (c *TaskCompleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Engine.LoadUser(); err != nil {
		return err
	}

	t, err := ctx.ResolveTask(c.Task)
	if err != nil {
		return err
	}

	delta := ctx.Engine.ToggleTaskCompletion(t.ID)
	if delta > 0 {
		fmt.Printf("Completed %q (+%d XP)\n", t.Title, delta)
	} else if delta < 0 {
		fmt.Printf("Reopened %q (%d XP)\n", t.Title, delta)
	} else {
		fmt.Printf("Toggled %q\n", t.Title)
	}
	return nil
}

type TaskDeleteCmd struct {
	Task string `arg:"" help:"Task ID (or prefix) or title."`
}

func (c *TaskDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Engine.LoadUser(); err != nil {
		return err
	}

	t, err := ctx.ResolveTask(c.Task)
	if err != nil {
		return err
	}

	if !ctx.Engine.DeleteTask(t.ID) {
		return fmt.Errorf("task %q not found", c.Task)
	}

	fmt.Printf("Deleted task: %s\n", t.Title)
	fmt.Println("(Earned XP is kept; deleting a task never refunds progress)")
	return nil
}

type TaskEditCmd struct {
	Task        string `arg:"" help:"Task ID (or prefix) or title."`
	Title       string `help:"New title."`
	Description string `help:"New description."`
}

func (c *TaskEditCmd) Run(ctx *cli.Context) error {
	if err := ctx.Engine.LoadUser(); err != nil {
		return err
	}

	t, err := ctx.ResolveTask(c.Task)
	if err != nil {
		return err
	}

	title := c.Title
	if title == "" {
		title = t.Title
	}
	description := c.Description
	if description == "" {
		description = t.Description
	}

	if !ctx.Engine.UpdateTask(t.ID, title, description) {
		return fmt.Errorf("task %q not found", c.Task)
	}

	fmt.Printf("Updated task: %s\n", title)
	return nil
}
