package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/taskquest/taskquest/internal/constants"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	switch m.state {
	case constants.StateAddTask, constants.StateAddHabit, constants.StateAddChecklistItem:
		return m.updateForm(msg)
	case constants.StateLevelUp:
		if _, ok := msg.(tea.KeyMsg); ok {
			m.dismissLevelUp()
		}
		return m, nil
	case constants.StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	// Global keys
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(keyMsg, m.keys.Tab):
		m.state = nextView(m.state)
		m.focusChecklist = false
		return m, nil
	case key.Matches(keyMsg, m.keys.ShiftTab):
		m.state = prevView(m.state)
		m.focusChecklist = false
		return m, nil
	}

	switch m.state {
	case constants.StateBoard:
		return m.updateBoard(keyMsg)
	case constants.StateHabits:
		return m.updateHabits(keyMsg)
	}
	return m, nil
}

func nextView(state constants.SessionState) constants.SessionState {
	switch state {
	case constants.StateBoard:
		return constants.StateHabits
	case constants.StateHabits:
		return constants.StateArtifacts
	default:
		return constants.StateBoard
	}
}

func prevView(state constants.SessionState) constants.SessionState {
	switch state {
	case constants.StateBoard:
		return constants.StateArtifacts
	case constants.StateArtifacts:
		return constants.StateHabits
	default:
		return constants.StateBoard
	}
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.focusChecklist {
		return m.updateChecklist(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.row > 0 {
			m.row--
		}
	case key.Matches(msg, m.keys.Down):
		if m.row < len(m.columnTasks(m.column))-1 {
			m.row++
		}
	case key.Matches(msg, m.keys.Left):
		if m.column > 0 {
			m.column--
			m.clampCursors()
		}
	case key.Matches(msg, m.keys.Right):
		if m.column < len(boardColumns)-1 {
			m.column++
			m.clampCursors()
		}
	case key.Matches(msg, m.keys.Enter):
		if task, ok := m.selectedTask(); ok && len(task.Checklist) > 0 {
			m.focusChecklist = true
			m.itemCursor = 0
		}
	case key.Matches(msg, m.keys.Add):
		m.taskForm = &TaskFormModel{}
		m.form = newTaskForm(m.taskForm)
		m.previousState = constants.StateBoard
		m.state = constants.StateAddTask
		return m, m.form.Init()
	case key.Matches(msg, m.keys.AddItem):
		if _, ok := m.selectedTask(); ok {
			m.itemForm = &ItemFormModel{}
			m.form = newItemForm(m.itemForm)
			m.previousState = constants.StateBoard
			m.state = constants.StateAddChecklistItem
			return m, m.form.Init()
		}
	case key.Matches(msg, m.keys.MoveNext):
		if task, ok := m.selectedTask(); ok && m.column < len(boardColumns)-1 {
			m.engine.MoveTask(task.ID, boardColumns[m.column+1])
			m.clampCursors()
		}
	case key.Matches(msg, m.keys.MovePrev):
		if task, ok := m.selectedTask(); ok && m.column > 0 {
			m.engine.MoveTask(task.ID, boardColumns[m.column-1])
			m.clampCursors()
		}
	case key.Matches(msg, m.keys.Complete):
		if task, ok := m.selectedTask(); ok {
			m.engine.ToggleTaskCompletion(task.ID)
			m.clampCursors()
			m.checkLevelUp()
		}
	case key.Matches(msg, m.keys.Delete):
		if task, ok := m.selectedTask(); ok {
			m.taskToDeleteID = task.ID
			m.habitToDeleteID = ""
			m.previousState = constants.StateBoard
			m.state = constants.StateConfirmDelete
		}
	}
	return m, nil
}

func (m Model) updateChecklist(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	task, ok := m.selectedTask()
	if !ok {
		m.focusChecklist = false
		return m, nil
	}

	switch {
	case msg.Type == tea.KeyEsc:
		m.focusChecklist = false
	case key.Matches(msg, m.keys.Up):
		if m.itemCursor > 0 {
			m.itemCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.itemCursor < len(task.Checklist)-1 {
			m.itemCursor++
		}
	case key.Matches(msg, m.keys.Space), key.Matches(msg, m.keys.Enter):
		if m.itemCursor < len(task.Checklist) {
			m.engine.ToggleChecklistItem(task.ID, task.Checklist[m.itemCursor].ID)
			m.checkLevelUp()
		}
	case key.Matches(msg, m.keys.AddItem):
		m.itemForm = &ItemFormModel{}
		m.form = newItemForm(m.itemForm)
		m.previousState = constants.StateBoard
		m.state = constants.StateAddChecklistItem
		return m, m.form.Init()
	case key.Matches(msg, m.keys.Delete):
		if m.itemCursor < len(task.Checklist) {
			m.engine.DeleteChecklistItem(task.ID, task.Checklist[m.itemCursor].ID)
			m.clampCursors()
		}
	}
	return m, nil
}

func (m Model) updateHabits(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	habits := m.engine.Habits()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.habitCursor > 0 {
			m.habitCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.habitCursor < len(habits)-1 {
			m.habitCursor++
		}
	case key.Matches(msg, m.keys.Space), key.Matches(msg, m.keys.Enter):
		if m.habitCursor < len(habits) {
			m.engine.ToggleHabit(habits[m.habitCursor].ID)
			m.checkLevelUp()
		}
	case key.Matches(msg, m.keys.Add):
		m.habitForm = &HabitFormModel{}
		m.form = newHabitForm(m.habitForm)
		m.previousState = constants.StateHabits
		m.state = constants.StateAddHabit
		return m, m.form.Init()
	case key.Matches(msg, m.keys.Delete):
		if m.habitCursor < len(habits) {
			m.habitToDeleteID = habits[m.habitCursor].ID
			m.taskToDeleteID = ""
			m.previousState = constants.StateHabits
			m.state = constants.StateConfirmDelete
		}
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		m.applyForm()
		m.state = m.previousState
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, tea.Batch(cmds...)
}

// applyForm commits the completed form to the engine.
func (m *Model) applyForm() {
	switch m.state {
	case constants.StateAddTask:
		m.engine.AddTask(m.taskForm.Title, m.taskForm.Description)
	case constants.StateAddHabit:
		m.engine.AddHabit(m.habitForm.Title, m.habitForm.Description)
	case constants.StateAddChecklistItem:
		if task, ok := m.selectedTask(); ok {
			m.engine.AddChecklistItem(task.ID, m.itemForm.Text)
		}
	}
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		if m.taskToDeleteID != "" {
			m.engine.DeleteTask(m.taskToDeleteID)
		} else if m.habitToDeleteID != "" {
			m.engine.DeleteHabit(m.habitToDeleteID)
		}
		m.taskToDeleteID = ""
		m.habitToDeleteID = ""
		m.clampCursors()
		m.state = m.previousState
	case "n", "N", "esc", "q":
		m.taskToDeleteID = ""
		m.habitToDeleteID = ""
		m.state = m.previousState
	}
	return m, nil
}
