package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type stubRefresher struct {
	mu       sync.Mutex
	attempts []string
	failFor  map[string]error
}

func (r *stubRefresher) RefreshCategory(_ context.Context, category string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.attempts = append(r.attempts, category)
	if err, ok := r.failFor[category]; ok {
		return 0, err
	}
	return 3, nil
}

func (r *stubRefresher) attempted() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.attempts...)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestRunOnce_RefreshesAllCategories(t *testing.T) {
	refresher := &stubRefresher{}
	categories := []string{"business", "technology", "science", "sports"}
	sched := New(refresher, time.Hour, categories, testLogger())

	stats := sched.RunOnce(context.Background())

	require.Equal(t, categories, refresher.attempted())
	require.Equal(t, 4, stats.Refreshed)
	require.Equal(t, 0, stats.Failed)
	require.Equal(t, 12, stats.Articles)
}

func TestRunOnce_FailureIsIsolated(t *testing.T) {
	refresher := &stubRefresher{
		failFor: map[string]error{"sports": errors.New("rate limited")},
	}
	categories := []string{"business", "technology", "science", "sports"}
	sched := New(refresher, time.Hour, categories, testLogger())

	stats := sched.RunOnce(context.Background())

	require.Equal(t, categories, refresher.attempted(), "remaining categories must still be attempted")
	require.Equal(t, 3, stats.Refreshed)
	require.Equal(t, 1, stats.Failed)
}

func TestRunOnce_FailureMidSetContinues(t *testing.T) {
	refresher := &stubRefresher{
		failFor: map[string]error{"business": errors.New("boom")},
	}
	sched := New(refresher, time.Hour, []string{"business", "sports"}, testLogger())

	stats := sched.RunOnce(context.Background())

	require.Equal(t, []string{"business", "sports"}, refresher.attempted())
	require.Equal(t, 1, stats.Refreshed)
	require.Equal(t, 1, stats.Failed)
}

func TestStart_RunsImmediatelyAndStopsOnCancel(t *testing.T) {
	refresher := &stubRefresher{}
	sched := New(refresher, time.Hour, []string{"technology"}, testLogger())

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- sched.Start(ctx)
	}()

	require.Eventually(t, func() bool {
		return len(refresher.attempted()) == 1
	}, time.Second, 10*time.Millisecond, "first tick should fire without waiting for the interval")

	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after cancellation")
	}
}
