package statesync

import (
	"context"
	"testing"
	"time"

	"github.com/Netflix/metrics-client-go/metrics"
	"github.com/Netflix/titus-fn-executor/api/executorapi"
	"github.com/Netflix/titus-fn-executor/controller/mock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"k8s.io/apimachinery/pkg/util/wait"
)

const testExecutorID = "executor-1"

func startController(t *testing.T) (*mock.Controller, *mock.Local, context.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	c := mock.New()
	local, err := c.ServeLocal(ctx)
	require.NoError(t, err)
	t.Cleanup(local.Close)
	return c, local, ctx
}

func staticSnapshot(labels map[string]string) SnapshotFunc {
	return func() *executorapi.ExecutorState {
		status := executorapi.ExecutorStatus_EXECUTOR_STATUS_RUNNING
		return (&executorapi.ExecutorState{
			ExecutorId: proto.String(testExecutorID),
			Status:     &status,
			Labels:     labels,
		}).WithStateHash()
	}
}

func desired(clock uint64) *executorapi.DesiredExecutorState {
	return &executorapi.DesiredExecutorState{Clock: proto.Uint64(clock)}
}

func popWithin(t *testing.T, q *Queue, d time.Duration) *executorapi.DesiredExecutorState {
	t.Helper()
	deadline := time.After(d)
	for {
		if item, ok := q.TryPop(); ok {
			return item
		}
		select {
		case <-q.Ready():
		case <-deadline:
			t.Fatal("Timed out waiting for desired state")
			return nil
		}
	}
}

func TestQueueDiscardsLowestClock(t *testing.T) {
	q := NewQueue(2)
	assert.False(t, q.Push(desired(1)))
	assert.False(t, q.Push(desired(2)))
	assert.True(t, q.Push(desired(3)))

	assert.Equal(t, 2, q.Len())
	assert.Equal(t, 1, q.Dropped())

	first, ok := q.TryPop()
	require.True(t, ok)
	assert.Equal(t, uint64(2), first.GetClock())
	second, ok := q.TryPop()
	require.True(t, ok)
	assert.Equal(t, uint64(3), second.GetClock())
	_, ok = q.TryPop()
	assert.False(t, ok)
}

func TestQueueKeepsNewerClockOverLaterArrival(t *testing.T) {
	q := NewQueue(1)
	assert.False(t, q.Push(desired(5)))
	assert.True(t, q.Push(desired(3)), "stale snapshot should be refused")
	assert.True(t, q.Push(desired(5)), "duplicate clock should be refused")
	assert.Equal(t, 2, q.Dropped())

	got, ok := q.TryPop()
	require.True(t, ok)
	assert.Equal(t, uint64(5), got.GetClock())
	_, ok = q.TryPop()
	assert.False(t, ok)
}

func TestQueueDropsLowestClockAnywhere(t *testing.T) {
	q := NewQueue(3)
	assert.False(t, q.Push(desired(4)))
	assert.False(t, q.Push(desired(2)))
	assert.False(t, q.Push(&executorapi.DesiredExecutorState{}))
	// The clockless snapshot goes first, then 1 is refused, then 2 goes.
	assert.True(t, q.Push(desired(6)))
	assert.True(t, q.Push(desired(1)))
	assert.True(t, q.Push(desired(3)))
	assert.Equal(t, 3, q.Dropped())
	assert.Equal(t, 3, q.Len())

	var clocks []uint64
	for item, ok := q.TryPop(); ok; item, ok = q.TryPop() {
		clocks = append(clocks, item.GetClock())
	}
	assert.Equal(t, []uint64{4, 6, 3}, clocks)
}

func TestReporterReportsImmediatelyAndOnTrigger(t *testing.T) {
	c, local, ctx := startController(t)
	reporter := NewReporter(local.Client, staticSnapshot(nil), ReporterConfig{
		Interval: time.Hour,
		Timeout:  time.Second,
	}, metrics.Discard)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		_ = reporter.Run(runCtx)
	}()

	require.NoError(t, wait.PollImmediateUntil(5*time.Millisecond, func() (bool, error) {
		return c.Stats(testExecutorID).Reports >= 1, nil
	}, ctx.Done()))

	reporter.Trigger()
	require.NoError(t, wait.PollImmediateUntil(5*time.Millisecond, func() (bool, error) {
		return c.Stats(testExecutorID).Reports >= 2, nil
	}, ctx.Done()))

	// Same state every time, so the controller sees exactly one effective update.
	assert.Equal(t, 1, c.Stats(testExecutorID).EffectiveUpdates)
	assert.NoError(t, reporter.LastError())
}

func TestReporterFailureIsNotFatal(t *testing.T) {
	c, local, ctx := startController(t)
	reporter := NewReporter(local.Client, staticSnapshot(map[string]string{"zone": "a"}), ReporterConfig{
		Interval: time.Hour,
		Timeout:  time.Second,
	}, metrics.Discard)

	c.FailReports(status.Error(codes.Unavailable, "controller restarting"))
	err := reporter.ReportOnce(ctx)
	require.Error(t, err)
	assert.Equal(t, codes.Unavailable, status.Code(errors.Cause(err)))
	assert.Error(t, reporter.LastError())

	c.FailReports(nil)
	require.NoError(t, reporter.ReportOnce(ctx))
	assert.NoError(t, reporter.LastError())

	reports, failures := reporter.Stats()
	assert.Equal(t, 2, reports)
	assert.Equal(t, 1, failures)
	assert.Equal(t, "a", c.Stats(testExecutorID).Last.Labels["zone"])
}

func TestReporterTimeout(t *testing.T) {
	_, local, ctx := startController(t)
	local.Close()

	reporter := NewReporter(local.Client, staticSnapshot(nil), ReporterConfig{
		Interval: time.Hour,
		Timeout:  50 * time.Millisecond,
	}, metrics.Discard)
	start := time.Now()
	assert.Error(t, reporter.ReportOnce(ctx))
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestWatcherReconnectsAfterDisconnect(t *testing.T) {
	c, local, ctx := startController(t)
	q := NewQueue(4)
	watcher := NewWatcher(local.Client, q, WatcherConfig{
		ExecutorID:     testExecutorID,
		InitialBackoff: 10 * time.Millisecond,
		MaxBackoff:     50 * time.Millisecond,
	}, metrics.Discard)

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan error)
	go func() {
		done <- watcher.Run(runCtx)
	}()

	require.NoError(t, c.WaitForStreams(ctx, testExecutorID, 1))
	c.PushDesiredState(testExecutorID, desired(1))
	assert.Equal(t, uint64(1), popWithin(t, q, 5*time.Second).GetClock())

	c.DisconnectStreams(testExecutorID)
	// The reopened stream first delivers the controller's current desired state again.
	assert.Equal(t, uint64(1), popWithin(t, q, 5*time.Second).GetClock())

	c.PushDesiredState(testExecutorID, desired(2))
	assert.Equal(t, uint64(2), popWithin(t, q, 5*time.Second).GetClock())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watcher did not stop")
	}
}

func TestWatcherBacksOffWhileControllerDown(t *testing.T) {
	_, local, ctx := startController(t)
	local.Close()

	var delays []time.Duration
	watcher := NewWatcher(local.Client, NewQueue(1), WatcherConfig{
		ExecutorID:     testExecutorID,
		InitialBackoff: 100 * time.Millisecond,
		MaxBackoff:     400 * time.Millisecond,
	}, metrics.Discard)
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	watcher.sleep = func(ctx context.Context, d time.Duration) error {
		delays = append(delays, d)
		if len(delays) == 5 {
			cancel()
			return context.Canceled
		}
		return nil
	}

	require.NoError(t, watcher.Run(runCtx))
	require.Len(t, delays, 5)
	for _, d := range delays {
		assert.LessOrEqual(t, d, 480*time.Millisecond)
		assert.GreaterOrEqual(t, d, 100*time.Millisecond)
	}
	assert.Greater(t, delays[2], delays[0])
}
