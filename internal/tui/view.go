package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/taskquest/taskquest/internal/artifacts"
	"github.com/taskquest/taskquest/internal/constants"
	"github.com/taskquest/taskquest/internal/leveling"
	"github.com/taskquest/taskquest/internal/models"
)

var columnTitles = map[models.TaskStatus]string{
	models.StatusTodo:       "To Do",
	models.StatusInProgress: "In Progress",
	models.StatusDone:       "Done",
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateBoard:
		content = m.viewBoard()
	case constants.StateHabits:
		content = m.viewHabits()
	case constants.StateArtifacts:
		content = m.viewArtifacts()
	case constants.StateAddTask, constants.StateAddHabit, constants.StateAddChecklistItem:
		content = m.form.View()
	case constants.StateLevelUp:
		content = m.viewLevelUp()
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		m.viewProgressHeader(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	views := []constants.SessionState{constants.StateBoard, constants.StateHabits, constants.StateArtifacts}
	titles := []string{"Board", "Habits", "Artifacts"}
	active := m.state
	if active != constants.StateBoard && active != constants.StateHabits && active != constants.StateArtifacts {
		active = m.previousState
	}
	for i, title := range titles {
		if active == views[i] {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewProgressHeader() string {
	progress := m.engine.Progress()
	tier := leveling.TierName(leveling.BadgeTier(progress.Level))

	barWidth := 24
	filled := 0
	if progress.XPToNextLevel > 0 {
		filled = progress.CurrentLevelXP * barWidth / progress.XPToNextLevel
		if filled > barWidth {
			filled = barWidth
		}
	}
	bar := xpStyle.Render(strings.Repeat("█", filled)) + dimStyle.Render(strings.Repeat("░", barWidth-filled))

	header := fmt.Sprintf("Lv %d %s  %s %d/%d XP",
		progress.Level, tier, bar, progress.CurrentLevelXP, progress.XPToNextLevel)
	if !m.engine.Synced() {
		header += dimStyle.Render("  (offline)")
	}
	return docStyle.Padding(0, 2).Render(header)
}

func (m Model) viewBoard() string {
	var columns []string
	for i, status := range boardColumns {
		var rows []string
		rows = append(rows, selectedStyle.Render(columnTitles[status]))
		tasks := m.columnTasks(i)
		if len(tasks) == 0 {
			rows = append(rows, dimStyle.Render("(empty)"))
		}
		for j, task := range tasks {
			line := task.Title
			if len(task.Checklist) > 0 {
				done := 0
				for _, item := range task.Checklist {
					if item.Completed {
						done++
					}
				}
				line += dimStyle.Render(fmt.Sprintf(" %d/%d", done, len(task.Checklist)))
			}
			if i == m.column && j == m.row {
				line = selectedStyle.Render("> ") + line
				if m.focusChecklist || len(task.Checklist) > 0 {
					line += "\n" + m.viewChecklist(task, i == m.column && j == m.row && m.focusChecklist)
				}
			} else {
				line = "  " + line
			}
			rows = append(rows, line)
		}

		style := columnStyle
		if i == m.column {
			style = activeColumnStyle
		}
		width := 28
		if m.width > 0 {
			width = m.width/3 - 4
		}
		columns = append(columns, style.Width(width).Render(strings.Join(rows, "\n")))
	}
	return docStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
}

func (m Model) viewChecklist(task models.Task, focused bool) string {
	var lines []string
	for i, item := range task.Checklist {
		line := fmt.Sprintf("  %s %s", checkbox(item.Completed), item.Text)
		if focused && i == m.itemCursor {
			line = selectedStyle.Render(line)
		} else {
			line = dimStyle.Render(line)
		}
		lines = append(lines, line)
		for _, sub := range item.SubItems {
			lines = append(lines, dimStyle.Render(fmt.Sprintf("      %s %s", checkbox(sub.Completed), sub.Text)))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewHabits() string {
	habits := m.engine.Habits()
	day := m.engine.HabitDay()

	var lines []string
	lines = append(lines, selectedStyle.Render(fmt.Sprintf("Habits — %s", day.Date)))
	lines = append(lines, "")

	if len(habits) == 0 {
		lines = append(lines, dimStyle.Render("No habits yet. Press 'a' to add one."))
	}
	for i, h := range habits {
		line := fmt.Sprintf("%s %s", checkbox(day.Completed(h.ID)), h.Title)
		if h.Streak > 0 {
			line += streakStyle.Render(fmt.Sprintf("  🔥 %d", h.Streak))
		}
		if i == m.habitCursor {
			line = selectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}

	lines = append(lines, "")
	summary := fmt.Sprintf("Completed today: %d/%d", len(day.CompletedHabitIDs), len(habits))
	if day.BonusGranted {
		summary += xpStyle.Render("  ★ daily bonus earned")
	}
	lines = append(lines, dimStyle.Render(summary))

	return docStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) viewArtifacts() string {
	stats := m.engine.Stats()

	var lines []string
	lines = append(lines, selectedStyle.Render("Artifacts"))
	lines = append(lines, "")
	for _, a := range artifacts.Catalog {
		if a.UnlockCondition.Met(stats) {
			lines = append(lines, fmt.Sprintf("%s %s  %s", a.Icon, selectedStyle.Render(a.Name), dimStyle.Render(string(a.Rarity))))
			lines = append(lines, dimStyle.Render("   "+a.Description))
		} else {
			lines = append(lines, lockedStyle.Render(fmt.Sprintf("🔒 %s  (%s)", a.Name, a.Rarity)))
		}
		lines = append(lines, "")
	}
	return docStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) viewLevelUp() string {
	progress := m.engine.Progress()
	tier := leveling.TierName(leveling.BadgeTier(progress.Level))
	box := levelUpStyle.Render(fmt.Sprintf("LEVEL UP!\n\nYou reached level %d\n%s tier\n\npress any key", progress.Level, tier))
	return lipgloss.Place(max(m.width, 40), max(m.height-8, 10),
		lipgloss.Center, lipgloss.Center, box)
}

func (m Model) viewConfirmDelete() string {
	what := "task"
	if m.habitToDeleteID != "" {
		what = "habit"
	}
	return lipgloss.Place(max(m.width, 40), max(m.height-8, 10),
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Are you sure you want to delete this %s?", what)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}
