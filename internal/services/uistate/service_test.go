package uistate

import (
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/riordanpawley/taskboard/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*Service, *clock.Mock) {
	mock := clock.NewMock()
	mock.Set(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewService(mock, MinLoadingDuration, slog.Default()), mock
}

// pendingStops counts deferred stops that have not fired yet
func pendingStops(s *Service) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.stops)
}

// assertReleased waits for a fired deferred stop, which the mock clock runs
// on its own goroutine
func assertReleased(t *testing.T, s *Service, key string) {
	t.Helper()
	assert.Eventually(t, func() bool { return !s.IsLoading(key) }, time.Second, time.Millisecond)
}

func TestNewService_Defaults(t *testing.T) {
	s := NewService(nil, 0, nil)
	require.NotNil(t, s)
	assert.Equal(t, MinLoadingDuration, s.minDuration)
	assert.False(t, s.IsLoading())
	assert.Empty(t, s.Toasts())
}

func TestStopLoading_HoldsMinimumDuration(t *testing.T) {
	s, clock := newTestService()

	s.StartLoading("k")
	s.StopLoading("k")

	assert.True(t, s.IsLoading("k"), "key must stay active right after stop")

	clock.Add(299 * time.Millisecond)
	assert.True(t, s.IsLoading("k"), "key must stay active before the minimum duration")

	clock.Add(time.Millisecond)
	assertReleased(t, s, "k")
	assert.Equal(t, 0, pendingStops(s))
}

func TestStopLoading_ImmediateAfterMinimum(t *testing.T) {
	s, clock := newTestService()

	s.StartLoading("k")
	clock.Add(500 * time.Millisecond)
	s.StopLoading("k")

	assert.False(t, s.IsLoading("k"))
	assert.Equal(t, 0, pendingStops(s), "no timer should be scheduled")
}

func TestStopLoading_RemainingMeasuredFromStart(t *testing.T) {
	s, clock := newTestService()

	s.StartLoading("k")
	clock.Add(200 * time.Millisecond)
	s.StopLoading("k")

	clock.Add(99 * time.Millisecond)
	assert.True(t, s.IsLoading("k"))

	clock.Add(time.Millisecond)
	assertReleased(t, s, "k")
}

func TestStopLoading_SecondStopReschedules(t *testing.T) {
	s, clock := newTestService()

	s.StartLoading("k")
	s.StopLoading("k")
	clock.Add(100 * time.Millisecond)
	s.StopLoading("k")

	assert.Equal(t, 1, pendingStops(s), "previous deferral must be canceled")

	clock.Add(199 * time.Millisecond)
	assert.True(t, s.IsLoading("k"), "still inside the window measured from the original start")

	clock.Add(time.Millisecond)
	assertReleased(t, s, "k")
}

func TestStartLoading_CancelsPendingStop(t *testing.T) {
	s, clock := newTestService()

	s.StartLoading("k")
	s.StopLoading("k")
	clock.Add(100 * time.Millisecond)
	s.StartLoading("k")

	assert.Equal(t, 0, pendingStops(s))
	clock.Add(time.Second)
	assert.True(t, s.IsLoading("k"), "restarted key stays active until stopped again")

	s.StopLoading("k")
	assert.False(t, s.IsLoading("k"), "restart reset the timer and the minimum has elapsed")
}

func TestStartLoading_Idempotent(t *testing.T) {
	s, _ := newTestService()

	s.StartLoading("k")
	s.StartLoading("k")

	assert.Equal(t, []string{"k"}, s.LoadingKeys())
}

func TestIsLoading_IndependentKeys(t *testing.T) {
	s, clock := newTestService()

	assert.False(t, s.IsLoading())

	s.StartLoading("a")
	s.StartLoading("b")
	assert.True(t, s.IsLoading())
	assert.Equal(t, []string{"a", "b"}, s.LoadingKeys())

	clock.Add(time.Second)
	s.StopLoading("a")

	assert.False(t, s.IsLoading("a"))
	assert.True(t, s.IsLoading("b"), "stopping a must not affect b")
	assert.True(t, s.IsLoading("a", "b"))
	assert.True(t, s.IsLoading())

	s.StopLoading("b")
	assert.False(t, s.IsLoading())
}

func TestStopLoading_UnknownKeyIsIgnored(t *testing.T) {
	s, _ := newTestService()

	s.StopLoading("never-started")

	assert.False(t, s.IsLoading())
	assert.Equal(t, 0, pendingStops(s))
}

func TestClose_CancelsPendingStops(t *testing.T) {
	s, clock := newTestService()

	s.StartLoading("a")
	s.StartLoading("b")
	s.StopLoading("a")
	s.StopLoading("b")
	require.Equal(t, 2, pendingStops(s))

	s.Close()

	assert.Equal(t, 0, pendingStops(s))
	clock.Add(time.Second)
	s.StartLoading("c")
	assert.False(t, s.IsLoading("c"), "closed service ignores new work")
}

func TestShowToast_FIFOAndDismiss(t *testing.T) {
	s, _ := newTestService()

	first := s.ShowToast(types.ToastInfo, "one")
	second := s.ShowToast(types.ToastError, "two")

	toasts := s.Toasts()
	require.Len(t, toasts, 2)
	assert.Equal(t, first, toasts[0].ID)
	assert.Equal(t, "one", toasts[0].Message)
	assert.Equal(t, types.ToastError, toasts[1].Level)

	assert.True(t, s.DismissToast(first))
	assert.False(t, s.DismissToast(first), "second dismissal is a no-op")

	toasts = s.Toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, second, toasts[0].ID)
}

func TestShowToast_UniqueIDs(t *testing.T) {
	s, _ := newTestService()

	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		id := s.ShowToast(types.ToastInfo, "msg")
		require.False(t, seen[id], "duplicate toast id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, 1000)
}

func TestExpireToasts(t *testing.T) {
	s, clock := newTestService()

	s.ShowToast(types.ToastInfo, "old")
	clock.Add(3 * time.Second)
	s.ShowToast(types.ToastInfo, "new")
	clock.Add(2 * time.Second)

	removed := s.ExpireToasts(4 * time.Second)

	assert.Equal(t, 1, removed)
	toasts := s.Toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, "new", toasts[0].Message)
}

func TestSubscribe_NotifiesOnDeferredStop(t *testing.T) {
	s, clock := newTestService()

	var calls atomic.Int32
	unsubscribe := s.Subscribe(func() { calls.Add(1) })

	s.StartLoading("k")
	s.StopLoading("k")
	assert.Equal(t, int32(1), calls.Load(), "deferred stop does not notify yet")

	clock.Add(MinLoadingDuration)
	assert.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, time.Millisecond)

	unsubscribe()
	s.ShowToast(types.ToastInfo, "x")
	assert.Equal(t, int32(2), calls.Load())
}

func TestState_Snapshot(t *testing.T) {
	s, _ := newTestService()
	s.StartLoading("k")
	s.ShowToast(types.ToastSuccess, "saved")

	st := s.State()
	st.LoadingKeys[0] = "mutated"

	assert.Equal(t, []string{"k"}, s.LoadingKeys())
	require.Len(t, st.Toasts, 1)
	assert.Equal(t, "saved", st.Toasts[0].Message)
}

func TestRealClock_StopsLoading(t *testing.T) {
	s := NewService(RealClock(), 20*time.Millisecond, slog.Default())
	defer s.Close()

	s.StartLoading("k")
	s.StopLoading("k")
	assert.True(t, s.IsLoading("k"))

	assert.Eventually(t, func() bool { return !s.IsLoading("k") }, time.Second, 5*time.Millisecond)
}
