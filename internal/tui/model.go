package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/taskquest/taskquest/internal/constants"
	"github.com/taskquest/taskquest/internal/engine"
	"github.com/taskquest/taskquest/internal/models"
)

type TaskFormModel struct {
	Title       string
	Description string
}

type HabitFormModel struct {
	Title       string
	Description string
}

type ItemFormModel struct {
	Text string
}

type Model struct {
	engine        *engine.Engine
	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model

	// Board cursor
	column         int
	row            int
	focusChecklist bool
	itemCursor     int

	// Habit cursor
	habitCursor int

	form      *huh.Form
	taskForm  *TaskFormModel
	habitForm *HabitFormModel
	itemForm  *ItemFormModel

	// Pending delete target; exactly one is set while confirming
	taskToDeleteID  string
	habitToDeleteID string

	// Level-up token already shown and acknowledged
	ackedLevelUp int64

	quitting bool
	width    int
	height   int
}

var boardColumns = []models.TaskStatus{
	models.StatusTodo,
	models.StatusInProgress,
	models.StatusDone,
}

func NewModel(eng *engine.Engine) Model {
	return Model{
		engine: eng,
		state:  constants.StateBoard,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// columnTasks returns the tasks in the given board column, in engine order.
func (m Model) columnTasks(col int) []models.Task {
	var tasks []models.Task
	for _, t := range m.engine.Tasks() {
		if t.Status == boardColumns[col] {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// selectedTask returns the task under the board cursor.
func (m Model) selectedTask() (models.Task, bool) {
	tasks := m.columnTasks(m.column)
	if m.row < 0 || m.row >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[m.row], true
}

func (m *Model) clampCursors() {
	tasks := m.columnTasks(m.column)
	if m.row >= len(tasks) {
		m.row = len(tasks) - 1
	}
	if m.row < 0 {
		m.row = 0
	}
	if task, ok := m.selectedTask(); ok {
		if m.itemCursor >= len(task.Checklist) {
			m.itemCursor = len(task.Checklist) - 1
		}
	}
	if m.itemCursor < 0 {
		m.itemCursor = 0
	}
	habits := m.engine.Habits()
	if m.habitCursor >= len(habits) {
		m.habitCursor = len(habits) - 1
	}
	if m.habitCursor < 0 {
		m.habitCursor = 0
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateBoard:
		if m.focusChecklist {
			keys = append(keys, m.keys.Space, m.keys.AddItem)
		} else {
			keys = append(keys, m.keys.Add, m.keys.Enter, m.keys.Complete, m.keys.MoveNext)
		}
	case constants.StateHabits:
		keys = append(keys, m.keys.Space, m.keys.Add, m.keys.Delete)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case constants.StateBoard:
		actions = []key.Binding{m.keys.Add, m.keys.AddItem, m.keys.Space, m.keys.Complete, m.keys.MoveNext, m.keys.MovePrev, m.keys.Delete}
	case constants.StateHabits:
		actions = []key.Binding{m.keys.Space, m.keys.Add, m.keys.Delete}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// checkLevelUp switches to the level-up overlay when the engine holds a
// token we have not shown yet.
func (m *Model) checkLevelUp() {
	token := m.engine.PendingLevelUp()
	if token != 0 && token != m.ackedLevelUp {
		if m.state != constants.StateLevelUp {
			m.previousState = m.state
		}
		m.state = constants.StateLevelUp
	}
}

func (m *Model) dismissLevelUp() {
	m.ackedLevelUp = m.engine.PendingLevelUp()
	m.engine.AckLevelUp()
	m.state = m.previousState
}

func notEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}

// newTaskForm creates a new form for adding tasks
func newTaskForm(fm *TaskFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title).
				Validate(notEmpty("title")),
			huh.NewInput().
				Title("Description").
				Value(&fm.Description),
		),
	).WithTheme(huh.ThemeDracula())
}

// newHabitForm creates a new form for adding habits
func newHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit").
				Value(&fm.Title).
				Validate(notEmpty("habit title")),
			huh.NewInput().
				Title("Description").
				Value(&fm.Description),
		),
	).WithTheme(huh.ThemeDracula())
}

// newItemForm creates a new form for adding checklist items
func newItemForm(fm *ItemFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Checklist item").
				Value(&fm.Text).
				Validate(notEmpty("item text")),
		),
	).WithTheme(huh.ThemeDracula())
}
