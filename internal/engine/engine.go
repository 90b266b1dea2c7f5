// Package engine is the progression core: the task board, the habit
// tracker, the XP ledger and the derived unlock state, held in one explicit
// state container. All mutations are synchronous and atomic; persistence
// happens through a debounced background flush that never blocks or rolls
// back a local mutation.
package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/taskquest/taskquest/internal/constants"
	"github.com/taskquest/taskquest/internal/logger"
	"github.com/taskquest/taskquest/internal/models"
	"github.com/taskquest/taskquest/internal/storage"
	"github.com/taskquest/taskquest/internal/syncer"
)

// XPValues are the reward amounts for each completion event. They are
// carried on the engine so deployments can tune them.
type XPValues struct {
	ChecklistItem int
	AllItemsBonus int
	TaskComplete  int
	HabitComplete int
	HabitAllBonus int
}

// DefaultXPValues returns the standard reward schedule.
func DefaultXPValues() XPValues {
	return XPValues{
		ChecklistItem: constants.DefaultChecklistItemXP,
		AllItemsBonus: constants.DefaultAllItemsBonusXP,
		TaskComplete:  constants.DefaultTaskCompleteXP,
		HabitComplete: constants.DefaultHabitCompleteXP,
		HabitAllBonus: constants.DefaultHabitAllBonusXP,
	}
}

// Engine owns the in-memory state for one user session. Methods are safe
// for concurrent use, but the design is single-writer: UI events arrive
// one at a time and each returns with all derived fields updated.
type Engine struct {
	mu    sync.Mutex
	store storage.Provider
	sync  *syncer.Syncer
	now   func() time.Time
	xp    XPValues

	userID    string
	tasks     []models.Task
	progress  models.UserProgress
	habits    []models.Habit
	habitDay  models.HabitDayProgress
	avatarURL string

	// synced is false until the initial load lands; mutations before that
	// apply locally but are never flushed, so defaults cannot overwrite
	// not-yet-loaded remote data.
	synced bool

	// levelUpSeq only grows; pendingLevelUp holds the latest unconsumed
	// token, 0 when none is pending.
	levelUpSeq     int64
	pendingLevelUp int64

	unsubscribe func()
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock injects the time source. Tests use it to cross day boundaries.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithXPValues overrides the reward schedule.
func WithXPValues(xp XPValues) Option {
	return func(e *Engine) { e.xp = xp }
}

// WithDebounce overrides the persistence debounce window.
func WithDebounce(d time.Duration) Option {
	return func(e *Engine) {
		e.sync = syncer.New(d, e.flushNow)
	}
}

// New creates an engine bound to a storage provider, reset to defaults.
func New(store storage.Provider, opts ...Option) *Engine {
	e := &Engine{
		store: store,
		now:   time.Now,
		xp:    DefaultXPValues(),
	}
	e.sync = syncer.New(constants.SyncDebounce, e.flushNow)
	for _, opt := range opts {
		opt(e)
	}
	e.resetLocked()
	return e
}

// todayKey returns the current calendar day in local time. Every read
// takes it at call time, so midnight rollovers resolve themselves on the
// next operation.
func (e *Engine) todayKey() string {
	return e.now().Format(constants.DateFormat)
}

// yesterdayKey returns the date-key of the day before the given key.
func yesterdayKey(todayKey string) string {
	t, err := time.Parse(constants.DateFormat, todayKey)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(constants.DateFormat)
}

func defaultHabits() []models.Habit {
	habits := make([]models.Habit, 0, len(constants.DefaultHabitBlueprints))
	now := time.Now()
	for _, bp := range constants.DefaultHabitBlueprints {
		habits = append(habits, models.Habit{
			ID:          uuid.New().String(),
			Title:       bp.Title,
			Description: bp.Description,
			XPReward:    constants.DefaultHabitCompleteXP,
			CreatedAt:   now,
		})
	}
	return habits
}

// initialProgress is the pre-load ledger: level 0 marks "not yet loaded"
// as opposed to a real level 1 account.
func initialProgress() models.UserProgress {
	return models.UserProgress{
		Level:         0,
		XPToNextLevel: constants.BaseLevelThreshold,
	}
}

// resetLocked restores defaults. Callers hold e.mu (or own the engine
// exclusively, as New does).
func (e *Engine) resetLocked() {
	e.tasks = nil
	e.progress = initialProgress()
	e.habits = defaultHabits()
	e.habitDay = models.HabitDayProgress{Date: e.todayKey()}
	e.avatarURL = ""
	e.synced = false
	e.pendingLevelUp = 0
}

// SetUser switches the session identity. Any pending flush and remote
// subscription are cancelled before state resets, so a stale flush can
// never land under the new user. An empty id signs out.
func (e *Engine) SetUser(userID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.userID == userID {
		return
	}

	e.teardownLocked()
	e.userID = userID
	e.resetLocked()
}

// SignOut cancels pending work and clears the session.
func (e *Engine) SignOut() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.teardownLocked()
	e.userID = ""
	e.resetLocked()
}

func (e *Engine) teardownLocked() {
	e.sync.Cancel()
	if e.unsubscribe != nil {
		e.unsubscribe()
		e.unsubscribe = nil
	}
}

// LoadUser performs the one-shot session-start fetch and, when the
// provider supports it, attaches the push subscription. An absent remote
// record means fresh defaults, not an error.
func (e *Engine) LoadUser() error {
	e.mu.Lock()
	userID := e.userID
	e.mu.Unlock()

	if userID == "" {
		return fmt.Errorf("no user set")
	}

	state, found, err := e.store.GetUserState(userID)

	e.mu.Lock()
	if e.userID != userID {
		// User switched while the fetch was in flight.
		e.mu.Unlock()
		return nil
	}
	if err != nil {
		e.mu.Unlock()
		logger.Error("Failed to load user state", "user", userID, "error", err)
		return fmt.Errorf("failed to load user state: %w", err)
	}
	if found {
		e.applySnapshotLocked(state)
	}
	e.synced = true
	e.mu.Unlock()

	if watcher, ok := e.store.(storage.Watcher); ok {
		cancel, err := watcher.Subscribe(userID, e.onRemoteUpdate)
		if err != nil {
			logger.Warn("Failed to subscribe to user state", "user", userID, "error", err)
		} else {
			e.mu.Lock()
			e.unsubscribe = cancel
			e.mu.Unlock()
		}
	}

	return nil
}

// applySnapshotLocked installs a full-state snapshot with the same
// normalization used at load time: day record reset when stale, default
// habits seeded when empty, pre-load progress kept out via the level
// sentinel. Callers hold e.mu.
func (e *Engine) applySnapshotLocked(state models.UserState) {
	e.tasks = state.Tasks
	if state.Progress.Loaded() {
		e.progress = state.Progress
	}
	if len(state.Habits) > 0 {
		e.habits = state.Habits
	}
	e.habitDay = normalizeDay(state.HabitDay, e.todayKey())
	if state.AvatarURL != "" {
		e.avatarURL = state.AvatarURL
	}
}

// onRemoteUpdate handles a pushed snapshot from another session. Last
// writer wins: the push overwrites local state wholesale.
func (e *Engine) onRemoteUpdate(state models.UserState) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.applySnapshotLocked(state)
	e.synced = true
}

// snapshotLocked builds the full persistence snapshot. Callers hold e.mu.
func (e *Engine) snapshotLocked() models.UserState {
	return models.UserState{
		Tasks:     e.tasks,
		Progress:  e.progress,
		Habits:    e.habits,
		HabitDay:  e.habitDay,
		AvatarURL: e.avatarURL,
	}
}

// scheduleSync arms the debounced flush. Before the initial load lands it
// is a no-op. Callers hold e.mu.
func (e *Engine) scheduleSync() {
	if !e.synced || e.userID == "" {
		return
	}
	e.sync.Schedule()
}

// flushNow is the syncer callback: persist the current snapshot.
func (e *Engine) flushNow() error {
	e.mu.Lock()
	userID := e.userID
	state := e.snapshotLocked()
	synced := e.synced
	e.mu.Unlock()

	if userID == "" || !synced {
		return nil
	}
	return e.store.SaveUserState(userID, state)
}

// Flush forces any pending debounced write; the CLI calls it before exit.
func (e *Engine) Flush() {
	e.sync.Flush()
}

// Synced reports whether the initial load has landed.
func (e *Engine) Synced() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.synced
}

// UserID returns the current session identity.
func (e *Engine) UserID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.userID
}

// AvatarURL returns the current avatar reference.
func (e *Engine) AvatarURL() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.avatarURL
}

// SetAvatarURL updates the avatar reference and schedules persistence.
func (e *Engine) SetAvatarURL(url string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.avatarURL = url
	e.scheduleSync()
}

// SetCustomFrameURL sets or clears the custom avatar frame.
func (e *Engine) SetCustomFrameURL(url string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.progress.CustomFrameURL = url
	e.scheduleSync()
}
