// Package syncer debounces fire-and-forget persistence. Rapid successive
// mutations coalesce into a single flush after a quiet window, so remote
// latency never blocks the next local mutation. Each session owns its own
// Syncer; there is no process-wide timer.
package syncer

import (
	"sync"
	"time"

	"github.com/taskquest/taskquest/internal/logger"
)

// FlushFunc performs the actual write. Errors are logged, never surfaced:
// local state stays the source of truth for the session regardless of
// remote write success.
type FlushFunc func() error

type Syncer struct {
	mu    sync.Mutex
	delay time.Duration
	flush FlushFunc
	timer *time.Timer
}

func New(delay time.Duration, flush FlushFunc) *Syncer {
	return &Syncer{delay: delay, flush: flush}
}

// Schedule arms (or re-arms) the debounce timer. The flush runs once the
// window passes without another Schedule call.
func (s *Syncer) Schedule() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.run)
}

// Cancel drops any pending flush. Called on sign-out/user switch so a
// stale flush can never write one user's data under another identity.
func (s *Syncer) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Flush runs a pending flush immediately, if one is armed.
func (s *Syncer) Flush() {
	s.mu.Lock()
	pending := s.timer != nil
	if pending {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	if pending {
		s.doFlush()
	}
}

func (s *Syncer) run() {
	s.mu.Lock()
	s.timer = nil
	s.mu.Unlock()

	s.doFlush()
}

func (s *Syncer) doFlush() {
	if err := s.flush(); err != nil {
		logger.Warn("Background sync failed", "error", err)
	}
}
