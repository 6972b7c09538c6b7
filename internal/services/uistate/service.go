// Package uistate coordinates loading indicators and toast notifications.
//
// Loading keys are held for at least a minimum visible duration so a fast
// operation does not make its indicator flicker. Toasts form a FIFO queue
// with process-unique ids; expiry timing belongs to the presentation.
package uistate

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/riordanpawley/taskboard/internal/types"
)

// MinLoadingDuration is the default minimum time a loading key stays active
const MinLoadingDuration = 300 * time.Millisecond

// State is a snapshot of the UI coordination state
type State struct {
	LoadingKeys []string
	Toasts      []types.Toast
}

// pendingStop is a deferred removal of a loading key
type pendingStop struct {
	timer *clock.Timer
	gen   uint64
}

// Service owns the UI coordination state. There is one Service per running
// application; Close must be called on teardown.
type Service struct {
	mu          sync.Mutex
	clock       clock.Clock
	minDuration time.Duration

	loadingKeys []string
	startTimes  map[string]time.Time
	stops       map[string]pendingStop
	gen         uint64

	toasts []types.Toast
	closed bool

	subscribers map[int]func()
	nextSub     int

	logger *slog.Logger
}

// NewService creates a Service. A zero minDuration means MinLoadingDuration
// and a nil clock means RealClock.
func NewService(clk clock.Clock, minDuration time.Duration, logger *slog.Logger) *Service {
	if clk == nil {
		clk = RealClock()
	}
	if minDuration <= 0 {
		minDuration = MinLoadingDuration
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		clock:       clk,
		minDuration: minDuration,
		loadingKeys: []string{},
		startTimes:  make(map[string]time.Time),
		stops:       make(map[string]pendingStop),
		toasts:      []types.Toast{},
		subscribers: make(map[int]func()),
		logger:      logger,
	}
}

// StartLoading marks key as loading and records its start time. Starting an
// active key cancels any pending stop and restarts its timer.
func (s *Service) StartLoading(key string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.cancelStopLocked(key)
	s.startTimes[key] = s.clock.Now()
	if !slices.Contains(s.loadingKeys, key) {
		s.loadingKeys = append(s.loadingKeys, key)
	}
	s.mu.Unlock()

	s.logger.Debug("loading started", "key", key)
	s.notify()
}

// StopLoading releases key. If the key has been active for less than the
// minimum duration, removal is deferred until the minimum has elapsed since
// its start. A later StopLoading replaces a pending deferral.
func (s *Service) StopLoading(key string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	start, ok := s.startTimes[key]
	if !ok && !slices.Contains(s.loadingKeys, key) {
		s.mu.Unlock()
		return
	}

	remaining := s.minDuration
	if ok {
		remaining = s.minDuration - s.clock.Now().Sub(start)
	}
	s.cancelStopLocked(key)

	if remaining <= 0 {
		s.removeKeyLocked(key)
		s.mu.Unlock()
		s.logger.Debug("loading stopped", "key", key)
		s.notify()
		return
	}

	s.gen++
	gen := s.gen
	timer := s.clock.AfterFunc(remaining, func() { s.finishStop(key, gen) })
	s.stops[key] = pendingStop{timer: timer, gen: gen}
	s.mu.Unlock()

	s.logger.Debug("loading stop deferred", "key", key, "remaining", remaining)
}

// finishStop runs when a deferred stop fires. Stale timers are ignored.
func (s *Service) finishStop(key string, gen uint64) {
	s.mu.Lock()
	pending, ok := s.stops[key]
	if s.closed || !ok || pending.gen != gen {
		s.mu.Unlock()
		return
	}
	s.removeKeyLocked(key)
	s.mu.Unlock()

	s.logger.Debug("loading stopped", "key", key)
	s.notify()
}

func (s *Service) cancelStopLocked(key string) {
	if pending, ok := s.stops[key]; ok {
		pending.timer.Stop()
		delete(s.stops, key)
	}
}

func (s *Service) removeKeyLocked(key string) {
	delete(s.startTimes, key)
	delete(s.stops, key)
	s.loadingKeys = slices.DeleteFunc(s.loadingKeys, func(k string) bool { return k == key })
}

// IsLoading reports whether any of keys is active. With no keys it reports
// whether anything at all is loading.
func (s *Service) IsLoading(keys ...string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(keys) == 0 {
		return len(s.loadingKeys) > 0
	}
	for _, k := range keys {
		if slices.Contains(s.loadingKeys, k) {
			return true
		}
	}
	return false
}

// LoadingKeys returns the active keys in start order
func (s *Service) LoadingKeys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.loadingKeys)
}

// ShowToast appends a toast and returns its id
func (s *Service) ShowToast(level types.ToastLevel, message string) string {
	now := s.clock.Now()
	toast := types.Toast{
		ID:        fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()),
		Level:     level,
		Message:   message,
		CreatedAt: now,
	}

	s.mu.Lock()
	s.toasts = append(s.toasts, toast)
	s.mu.Unlock()

	s.logger.Debug("toast shown", "id", toast.ID, "level", level.String())
	s.notify()
	return toast.ID
}

// DismissToast removes the toast with id. It returns false if no such toast
// is queued.
func (s *Service) DismissToast(id string) bool {
	s.mu.Lock()
	before := len(s.toasts)
	s.toasts = slices.DeleteFunc(s.toasts, func(t types.Toast) bool { return t.ID == id })
	removed := len(s.toasts) != before
	s.mu.Unlock()

	if removed {
		s.notify()
	}
	return removed
}

// ExpireToasts removes every toast created more than ttl before now and
// returns how many were removed
func (s *Service) ExpireToasts(ttl time.Duration) int {
	cutoff := s.clock.Now().Add(-ttl)

	s.mu.Lock()
	before := len(s.toasts)
	s.toasts = slices.DeleteFunc(s.toasts, func(t types.Toast) bool { return !t.CreatedAt.After(cutoff) })
	removed := before - len(s.toasts)
	s.mu.Unlock()

	if removed > 0 {
		s.notify()
	}
	return removed
}

// Toasts returns the queued toasts, oldest first
func (s *Service) Toasts() []types.Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.toasts)
}

// State returns a snapshot of loading keys and toasts
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		LoadingKeys: slices.Clone(s.loadingKeys),
		Toasts:      slices.Clone(s.toasts),
	}
}

// Subscribe registers fn to run after every state change. fn may be called
// from a timer goroutine.
func (s *Service) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *Service) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Close cancels every pending deferred stop. Later calls to StartLoading and
// StopLoading are ignored.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, pending := range s.stops {
		pending.timer.Stop()
		delete(s.stops, key)
	}
	s.closed = true
}
