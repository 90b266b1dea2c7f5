package tasks

import (
	"fmt"
	"strings"

	"github.com/taskquest/taskquest/internal/cli"
	"github.com/taskquest/taskquest/internal/models"
)

type CheckAddCmd struct {
	Task string `arg:"" help:"Task ID (or prefix) or title."`
	Text string `arg:"" help:"Checklist item text."`
	To   string `help:"Parent checklist item; adds a sub-item instead." name:"under"`
}

func (c *CheckAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Engine.LoadUser(); err != nil {
		return err
	}

	t, err := ctx.ResolveTask(c.Task)
	if err != nil {
		return err
	}

	if c.To != "" {
		parent, err := ctx.ResolveChecklistItem(t, c.To)
		if err != nil {
			return err
		}
		if ctx.Engine.AddSubItem(t.ID, parent.ID, c.Text) == nil {
			return fmt.Errorf("sub-item text cannot be empty")
		}
		fmt.Printf("Added sub-item under %q\n", parent.Text)
		return nil
	}

	if ctx.Engine.AddChecklistItem(t.ID, c.Text) == nil {
		return fmt.Errorf("checklist item text cannot be empty")
	}
	fmt.Printf("Added checklist item to %q\n", t.Title)
	return nil
}

type CheckToggleCmd struct {
	Task string `arg:"" help:"Task ID (or prefix) or title."`
	Item string `arg:"" help:"Checklist item ID, position, or text."`
	Sub  string `help:"Sub-item of the given item to toggle instead."`
}

func (c *CheckToggleCmd) Run(ctx *cli.Context) error {
	if err := ctx.Engine.LoadUser(); err != nil {
		return err
	}

	t, err := ctx.ResolveTask(c.Task)
	if err != nil {
		return err
	}

	item, err := ctx.ResolveChecklistItem(t, c.Item)
	if err != nil {
		return err
	}

	if c.Sub != "" {
		sub, err := resolveSubItem(item, c.Sub)
		if err != nil {
			return err
		}
		if !ctx.Engine.ToggleSubItem(t.ID, item.ID, sub.ID) {
			return fmt.Errorf("sub-item %q not found", c.Sub)
		}
		fmt.Printf("Toggled sub-item %q\n", sub.Text)
		return nil
	}

	result := ctx.Engine.ToggleChecklistItem(t.ID, item.ID)
	switch {
	case result.TaskCompleted:
		fmt.Printf("Checked %q — checklist complete! (+%d XP)\n", item.Text, result.XPGained)
	case result.XPGained > 0:
		fmt.Printf("Checked %q (+%d XP)\n", item.Text, result.XPGained)
	case result.XPGained < 0:
		fmt.Printf("Unchecked %q (%d XP)\n", item.Text, result.XPGained)
	default:
		fmt.Printf("Toggled %q\n", item.Text)
	}
	return nil
}

type CheckListCmd struct {
	Task string `arg:"" help:"Task ID (or prefix) or title."`
}

func (c *CheckListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Engine.LoadUser(); err != nil {
		return err
	}

	t, err := ctx.ResolveTask(c.Task)
	if err != nil {
		return err
	}

	if len(t.Checklist) == 0 {
		fmt.Printf("Task %q has no checklist items.\n", t.Title)
		return nil
	}

	done := 0
	for _, item := range t.Checklist {
		if item.Completed {
			done++
		}
	}
	fmt.Printf("%s  [%d/%d]\n", t.Title, done, len(t.Checklist))
	for i, item := range t.Checklist {
		fmt.Printf("  %d. %s %s\n", i+1, checkbox(item.Completed), item.Text)
		for _, sub := range item.SubItems {
			fmt.Printf("       %s %s\n", checkbox(sub.Completed), sub.Text)
		}
	}
	return nil
}

type CheckEditCmd struct {
	Task string `arg:"" help:"Task ID (or prefix) or title."`
	Item string `arg:"" help:"Checklist item ID, position, or text."`
	Text string `arg:"" help:"New item text."`
	Sub  string `help:"Sub-item of the given item to edit instead."`
}

func (c *CheckEditCmd) Run(ctx *cli.Context) error {
	if err := ctx.Engine.LoadUser(); err != nil {
		return err
	}

	t, err := ctx.ResolveTask(c.Task)
	if err != nil {
		return err
	}

	item, err := ctx.ResolveChecklistItem(t, c.Item)
	if err != nil {
		return err
	}

	if c.Sub != "" {
		sub, err := resolveSubItem(item, c.Sub)
		if err != nil {
			return err
		}
		if !ctx.Engine.UpdateSubItem(t.ID, item.ID, sub.ID, c.Text) {
			return fmt.Errorf("sub-item %q not found", c.Sub)
		}
		fmt.Println("Updated sub-item.")
		return nil
	}

	if !ctx.Engine.UpdateChecklistItem(t.ID, item.ID, c.Text) {
		return fmt.Errorf("checklist item %q not found", c.Item)
	}
	fmt.Println("Updated checklist item.")
	return nil
}

type CheckDeleteCmd struct {
	Task string `arg:"" help:"Task ID (or prefix) or title."`
	Item string `arg:"" help:"Checklist item ID, position, or text."`
	Sub  string `help:"Sub-item of the given item to delete instead."`
}

func (c *CheckDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Engine.LoadUser(); err != nil {
		return err
	}

	t, err := ctx.ResolveTask(c.Task)
	if err != nil {
		return err
	}

	item, err := ctx.ResolveChecklistItem(t, c.Item)
	if err != nil {
		return err
	}

	if c.Sub != "" {
		sub, err := resolveSubItem(item, c.Sub)
		if err != nil {
			return err
		}
		if !ctx.Engine.DeleteSubItem(t.ID, item.ID, sub.ID) {
			return fmt.Errorf("sub-item %q not found", c.Sub)
		}
		fmt.Printf("Deleted sub-item: %s\n", sub.Text)
		return nil
	}

	if !ctx.Engine.DeleteChecklistItem(t.ID, item.ID) {
		return fmt.Errorf("checklist item %q not found", c.Item)
	}
	fmt.Printf("Deleted checklist item: %s\n", item.Text)
	return nil
}

func checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

// resolveSubItem matches a sub-item by ID, unique ID prefix, 1-based
// position, or exact text.
func resolveSubItem(parent models.ChecklistItem, ref string) (models.ChecklistItem, error) {
	var matches []models.ChecklistItem
	for _, sub := range parent.SubItems {
		if sub.ID == ref {
			return sub, nil
		}
		if strings.HasPrefix(sub.ID, ref) {
			matches = append(matches, sub)
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	if len(matches) > 1 {
		return models.ChecklistItem{}, fmt.Errorf("sub-item id %q is ambiguous (%d matches)", ref, len(matches))
	}

	var pos int
	if _, err := fmt.Sscanf(ref, "%d", &pos); err == nil && pos >= 1 && pos <= len(parent.SubItems) {
		return parent.SubItems[pos-1], nil
	}

	for _, sub := range parent.SubItems {
		if strings.EqualFold(sub.Text, ref) {
			return sub, nil
		}
	}

	return models.ChecklistItem{}, fmt.Errorf("sub-item %q not found under %q", ref, parent.Text)
}
