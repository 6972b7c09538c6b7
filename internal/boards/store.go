package boards

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/riordanpawley/taskboard/internal/types"
)

// InitLoadingKey is the loading key held while the initial boards load runs
const InitLoadingKey = "initBoards"

// Persister loads and saves the boards document. Load returns nil when no
// usable document exists.
type Persister interface {
	Load(ctx context.Context) *domain.BoardsData
	Save(ctx context.Context, data domain.BoardsData) error
}

// Notifier surfaces diagnostics to the user
type Notifier interface {
	ShowToast(level types.ToastLevel, message string) string
}

// LoadingTracker is told when the initial load starts and stops
type LoadingTracker interface {
	StartLoading(key string)
	StopLoading(key string)
}

// Options configures a Store
type Options struct {
	Persister Persister         // Optional: nil disables persistence
	Fallback  domain.BoardsData // Used by Init when nothing was persisted
	Notifier  Notifier          // Optional: receives reducer no-op diagnostics
	Logger    *slog.Logger
}

// Store owns the boards state. All changes go through Dispatch; there is one
// Store per running application.
type Store struct {
	mu      sync.RWMutex
	state   domain.BoardsData
	version uint64

	subMu       sync.Mutex
	subscribers map[int]func()
	nextSub     int

	// Saves run on one goroutine fed with the latest snapshot
	saveMu   sync.Mutex
	saves    chan snapshot
	saveDone chan struct{}
	closed   bool

	persister Persister
	fallback  domain.BoardsData
	notifier  Notifier
	logger    *slog.Logger
}

// snapshot is a state version waiting to be saved
type snapshot struct {
	version uint64
	data    domain.BoardsData
}

// saveTimeout bounds a single background save
const saveTimeout = 5 * time.Second

// NewStore creates a Store with an empty boards collection. When a
// Persister is set, Close must be called on teardown to flush the last save.
func NewStore(opts Options) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		state:       domain.BoardsData{Boards: []domain.Board{}},
		subscribers: make(map[int]func()),
		persister:   opts.Persister,
		fallback:    opts.Fallback,
		notifier:    opts.Notifier,
		logger:      logger,
	}
	if s.persister != nil {
		s.saves = make(chan snapshot, 1)
		s.saveDone = make(chan struct{})
		go s.saveLoop()
	}
	return s
}

// Dispatch applies an action. Actions are applied one at a time in call
// order. A no-op caused by a missing target is logged, reported to the
// notifier and returned; the state is left unchanged in that case. The new
// state is saved in the background.
func (s *Store) Dispatch(a Action) error {
	s.mu.Lock()
	next, err := Apply(s.state, a)
	if err != nil {
		s.mu.Unlock()
		s.logger.Warn("boards action ignored", "action", a.Type(), "error", err)
		if s.notifier != nil {
			s.notifier.ShowToast(types.ToastWarning, err.Error())
		}
		return err
	}
	s.state = next
	s.version++
	version := s.version
	s.mu.Unlock()

	s.logger.Debug("boards action applied", "action", a.Type(), "boards", len(next.Boards))

	if len(next.Boards) > 0 {
		s.persist(version, next)
	}
	s.notify()
	return nil
}

// persist queues data for the save goroutine and returns immediately. A
// queued snapshot that has not been picked up yet is replaced by a newer one.
func (s *Store) persist(version uint64, data domain.BoardsData) {
	if s.persister == nil {
		return
	}
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	if s.closed {
		s.logger.Warn("boards store closed, save dropped", "version", version)
		return
	}

	next := snapshot{version: version, data: data}
	for {
		select {
		case s.saves <- next:
			return
		default:
		}
		select {
		case queued := <-s.saves:
			if queued.version > next.version {
				next = queued
			}
		default:
		}
	}
}

// saveLoop writes queued snapshots until Close. Versions older than the
// last written one are skipped.
func (s *Store) saveLoop() {
	defer close(s.saveDone)
	var saved uint64
	for snap := range s.saves {
		if snap.version <= saved {
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		err := s.persister.Save(ctx, snap.data)
		cancel()
		if err != nil {
			s.logger.Error("failed to save boards", "version", snap.version, "error", err)
			continue
		}
		saved = snap.version
		s.logger.Debug("boards saved", "version", snap.version)
	}
}

// Close waits for the pending save, if any, and stops the save goroutine.
// Dispatch keeps working after Close but nothing more is saved.
func (s *Store) Close() {
	s.saveMu.Lock()
	if s.persister == nil || s.closed {
		s.saveMu.Unlock()
		return
	}
	s.closed = true
	close(s.saves)
	s.saveMu.Unlock()

	<-s.saveDone
}

// State returns a deep copy of the current state
func (s *Store) State() domain.BoardsData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.BoardsData{Boards: domain.CloneBoards(s.state.Boards)}
}

// Boards returns a deep copy of the boards collection
func (s *Store) Boards() []domain.Board {
	return s.State().Boards
}

// Board returns the board at idx, or false when idx addresses no board
func (s *Store) Board(idx int) (domain.Board, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !inRange(idx, len(s.state.Boards)) {
		return domain.Board{}, false
	}
	return s.state.Boards[idx].Clone(), true
}

// Len returns the number of boards
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.state.Boards)
}

// Subscribe registers fn to run after every applied action. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func()) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Init performs the startup load: it marks InitLoadingKey as loading, waits
// delay so the indicator can render, then dispatches SetBoards with the
// persisted boards or the fallback dataset. The loading key is always
// released, even when ctx is canceled during the delay.
func (s *Store) Init(ctx context.Context, loading LoadingTracker, delay time.Duration) error {
	if loading != nil {
		loading.StartLoading(InitLoadingKey)
		defer loading.StopLoading(InitLoadingKey)
	}

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	boards := s.fallback.Boards
	source := "default"
	if s.persister != nil {
		if data := s.persister.Load(ctx); data != nil {
			boards = data.Boards
			source = "storage"
		}
	}

	s.logger.Info("loading boards", "source", source, "count", len(boards))
	if err := s.Dispatch(SetBoards{Boards: boards}); err != nil {
		return errors.Join(errors.New("initial boards load failed"), err)
	}
	return nil
}
