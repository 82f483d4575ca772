package reconciler

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/Netflix/metrics-client-go/metrics"
	"github.com/Netflix/titus-fn-executor/api/executorapi"
	"github.com/Netflix/titus-fn-executor/executor/fnerrors"
	"github.com/Netflix/titus-fn-executor/executor/reconciler/mock"
	"github.com/Netflix/titus-fn-executor/executor/state"
	"github.com/Netflix/titus-fn-executor/executor/statesync"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

type harness struct {
	ctx      context.Context
	r        *Reconciler
	store    *state.Store
	queue    *statesync.Queue
	manager  *mock.MockManager
	runner   *mock.MockRunner
	reporter *mock.MockStateReporter
	pending  []func()
}

func newHarness(t *testing.T, cfg Config) *harness {
	ctl := gomock.NewController(t)
	t.Cleanup(ctl.Finish)

	h := &harness{
		ctx:      context.Background(),
		store:    state.NewStore(),
		queue:    statesync.NewQueue(4),
		manager:  mock.NewMockManager(ctl),
		runner:   mock.NewMockRunner(ctl),
		reporter: mock.NewMockStateReporter(ctl),
	}
	if cfg.FinishedTaskTTL == 0 {
		cfg.FinishedTaskTTL = time.Hour
	}
	h.r = New(cfg, h.store, h.queue, h.manager, h.runner, h.reporter, metrics.Discard)
	h.r.goFunc = func(f func()) {
		h.pending = append(h.pending, f)
	}
	h.reporter.EXPECT().Trigger().AnyTimes()
	return h
}

// flush runs every deferred manager call and processes the resulting events until nothing is left.
func (h *harness) flush() {
	for len(h.pending) > 0 {
		pending := h.pending
		h.pending = nil
		for _, f := range pending {
			f()
		}
		h.r.processEvents(h.ctx)
	}
}

func (h *harness) status(t *testing.T, id string) executorapi.FunctionExecutorStatus {
	t.Helper()
	fe, ok := h.store.FunctionExecutor(id)
	require.True(t, ok, "function executor %s not found", id)
	return fe.Status
}

func (h *harness) phase(t *testing.T, taskID string) state.AllocationPhase {
	t.Helper()
	alloc, ok := h.store.Allocation(taskID)
	require.True(t, ok, "allocation %s not found", taskID)
	return alloc.Phase
}

func fe(id string) *executorapi.FunctionExecutorDescription {
	return &executorapi.FunctionExecutorDescription{
		Id:           proto.String(id),
		Namespace:    proto.String("default"),
		GraphName:    proto.String("graph"),
		FunctionName: proto.String("fn-" + id),
	}
}

func alloc(taskID, feID string) *executorapi.TaskAllocation {
	return &executorapi.TaskAllocation{
		FunctionExecutorId: proto.String(feID),
		Task: &executorapi.Task{
			Id:       proto.String(taskID),
			InputKey: proto.String("input/" + taskID),
		},
	}
}

func desired(clock uint64, fes []*executorapi.FunctionExecutorDescription, allocs ...*executorapi.TaskAllocation) *executorapi.DesiredExecutorState {
	return &executorapi.DesiredExecutorState{
		Clock:             proto.Uint64(clock),
		FunctionExecutors: fes,
		TaskAllocations:   allocs,
	}
}

func TestCreatesMissingFunctionExecutors(t *testing.T) {
	h := newHarness(t, Config{})
	h.manager.EXPECT().Create(gomock.Any(), mock.MatchFunctionExecutor{ID: "fe-1"}).Return(nil)
	h.manager.EXPECT().Create(gomock.Any(), mock.MatchFunctionExecutor{ID: "fe-2"}).Return(nil)

	h.r.apply(h.ctx, desired(1, []*executorapi.FunctionExecutorDescription{fe("fe-1"), fe("fe-2")}))
	assert.Equal(t, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STARTING_UP, h.status(t, "fe-1"))

	h.flush()
	assert.Equal(t, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_IDLE, h.status(t, "fe-1"))
	assert.Equal(t, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_IDLE, h.status(t, "fe-2"))

	select {
	case <-h.r.Applied():
	default:
		t.Fatal("Applied was not closed")
	}
}

func TestCreateFailureStatus(t *testing.T) {
	h := newHarness(t, Config{})
	h.manager.EXPECT().Create(gomock.Any(), mock.MatchFunctionExecutor{ID: "fe-bad-image"}).Return(fnerrors.NewPersistentError(errors.New("image not found")))
	h.manager.EXPECT().Create(gomock.Any(), mock.MatchFunctionExecutor{ID: "fe-no-capacity"}).Return(errors.New("out of disk"))

	h.r.apply(h.ctx, desired(1, []*executorapi.FunctionExecutorDescription{fe("fe-bad-image"), fe("fe-no-capacity")}))
	h.flush()

	assert.Equal(t, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STARTUP_FAILED_CUSTOMER_ERROR, h.status(t, "fe-bad-image"))
	assert.Equal(t, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STARTUP_FAILED_PLATFORM_ERROR, h.status(t, "fe-no-capacity"))
	got, _ := h.store.FunctionExecutor("fe-no-capacity")
	assert.Equal(t, "out of disk", got.StatusMessage)
}

func TestRefusesFunctionsThatAreNotAllowed(t *testing.T) {
	h := newHarness(t, Config{AllowedFunctions: []*executorapi.AllowedFunction{{FunctionName: proto.String("fn-fe-1")}}})
	h.manager.EXPECT().Create(gomock.Any(), mock.MatchFunctionExecutor{ID: "fe-1"}).Return(nil)

	h.r.apply(h.ctx, desired(1, []*executorapi.FunctionExecutorDescription{fe("fe-1"), fe("fe-2")}))
	h.flush()

	assert.Equal(t, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_IDLE, h.status(t, "fe-1"))
	assert.Equal(t, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STARTUP_FAILED_PLATFORM_ERROR, h.status(t, "fe-2"))
}

func TestDispatchWaitsForReadyFunctionExecutor(t *testing.T) {
	h := newHarness(t, Config{})
	h.manager.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	h.r.apply(h.ctx, desired(1, []*executorapi.FunctionExecutorDescription{fe("fe-1")}, alloc("task-1", "fe-1")))
	assert.Equal(t, state.AllocationPending, h.phase(t, "task-1"))

	h.runner.EXPECT().Run(gomock.Any(), mock.MatchFunctionExecutor{ID: "fe-1"}, mock.MatchTask{TaskID: "task-1", FunctionExecutorID: "fe-1"}).Return(nil)
	h.flush()

	assert.Equal(t, state.AllocationRunning, h.phase(t, "task-1"))
	assert.Equal(t, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_RUNNING_TASK, h.status(t, "fe-1"))

	h.r.TaskFinished("task-1", executorapi.TaskOutcome_TASK_OUTCOME_SUCCESS)
	h.r.processEvents(h.ctx)
	_, ok := h.store.Allocation("task-1")
	assert.False(t, ok)
	assert.Equal(t, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_IDLE, h.status(t, "fe-1"))
}

func TestAllocationForUnknownFunctionExecutorStaysPending(t *testing.T) {
	h := newHarness(t, Config{})

	h.r.apply(h.ctx, desired(1, nil, alloc("task-1", "fe-missing")))
	h.flush()
	assert.Equal(t, state.AllocationPending, h.phase(t, "task-1"))
}

func TestRunnerRejectionRetriesLater(t *testing.T) {
	h := newHarness(t, Config{})
	h.manager.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	gomock.InOrder(
		h.runner.EXPECT().Run(gomock.Any(), gomock.Any(), mock.MatchTask{TaskID: "task-1", FunctionExecutorID: "fe-1"}).Return(errors.New("runner stopping")),
		h.runner.EXPECT().Run(gomock.Any(), gomock.Any(), mock.MatchTask{TaskID: "task-1", FunctionExecutorID: "fe-1"}).Return(nil),
	)

	h.r.apply(h.ctx, desired(1, []*executorapi.FunctionExecutorDescription{fe("fe-1")}, alloc("task-1", "fe-1")))
	h.flush()
	assert.Equal(t, state.AllocationPending, h.phase(t, "task-1"))
	assert.Equal(t, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_IDLE, h.status(t, "fe-1"))

	// Any event re-runs reconciliation.
	h.r.FunctionExecutorStatusChanged("fe-1", executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_IDLE, "")
	h.r.processEvents(h.ctx)
	assert.Equal(t, state.AllocationRunning, h.phase(t, "task-1"))
}

func TestStaleDesiredStatesAreDropped(t *testing.T) {
	h := newHarness(t, Config{})
	h.manager.EXPECT().Create(gomock.Any(), mock.MatchFunctionExecutor{ID: "fe-new"}).Return(nil)

	h.r.apply(h.ctx, desired(5, []*executorapi.FunctionExecutorDescription{fe("fe-new")}))
	h.flush()

	// Older, equal and clockless snapshots are ignored, so fe-old is never created and fe-new never torn down.
	h.r.apply(h.ctx, desired(3, []*executorapi.FunctionExecutorDescription{fe("fe-old")}))
	h.r.apply(h.ctx, desired(5, []*executorapi.FunctionExecutorDescription{fe("fe-old")}))
	h.r.apply(h.ctx, &executorapi.DesiredExecutorState{FunctionExecutors: []*executorapi.FunctionExecutorDescription{fe("fe-old")}})
	h.flush()

	assert.Equal(t, 1, h.r.AppliedCount())
	_, ok := h.store.FunctionExecutor("fe-old")
	assert.False(t, ok)
	assert.Equal(t, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_IDLE, h.status(t, "fe-new"))
}

func TestClocklessSnapshotAppliedBeforeAnyClock(t *testing.T) {
	h := newHarness(t, Config{})
	h.manager.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	h.r.apply(h.ctx, &executorapi.DesiredExecutorState{FunctionExecutors: []*executorapi.FunctionExecutorDescription{fe("fe-1")}})
	h.r.apply(h.ctx, &executorapi.DesiredExecutorState{FunctionExecutors: []*executorapi.FunctionExecutorDescription{fe("fe-1"), fe("fe-2")}})
	h.flush()
	assert.Equal(t, 2, h.r.AppliedCount())
	assert.Len(t, h.store.FunctionExecutors(), 2)
}

func TestUndesiredPendingCancelledRunningFinishes(t *testing.T) {
	h := newHarness(t, Config{})
	h.manager.EXPECT().Create(gomock.Any(), mock.MatchFunctionExecutor{ID: "fe-1"}).Return(nil)
	h.manager.EXPECT().Create(gomock.Any(), mock.MatchFunctionExecutor{ID: "fe-2"}).Return(nil)
	h.runner.EXPECT().Run(gomock.Any(), gomock.Any(), mock.MatchTask{TaskID: "task-running", FunctionExecutorID: "fe-1"}).Return(nil)

	fes := []*executorapi.FunctionExecutorDescription{fe("fe-1"), fe("fe-2")}
	h.r.apply(h.ctx, desired(1, fes, alloc("task-running", "fe-1"), alloc("task-pending", "fe-2")))
	// Only fe-1 comes up.
	h.pending[0]()
	h.pending = h.pending[1:]
	h.r.processEvents(h.ctx)
	assert.Equal(t, state.AllocationRunning, h.phase(t, "task-running"))
	assert.Equal(t, state.AllocationPending, h.phase(t, "task-pending"))

	h.runner.EXPECT().Cancel("task-running").Times(1)
	h.r.apply(h.ctx, desired(2, fes))
	h.r.processEvents(h.ctx)

	_, ok := h.store.Allocation("task-pending")
	assert.False(t, ok, "pending task should be forgotten")
	assert.Equal(t, state.AllocationRunning, h.phase(t, "task-running"))

	h.r.TaskFinished("task-running", executorapi.TaskOutcome_TASK_OUTCOME_FAILURE)
	h.flush()
	assert.Empty(t, h.store.Allocations())
	assert.Equal(t, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_IDLE, h.status(t, "fe-1"))
	assert.Equal(t, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_IDLE, h.status(t, "fe-2"))
}

func TestTeardownDrainsRunningTasks(t *testing.T) {
	h := newHarness(t, Config{})
	h.manager.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	h.runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	h.r.apply(h.ctx, desired(1, []*executorapi.FunctionExecutorDescription{fe("fe-1")}, alloc("task-1", "fe-1")))
	h.flush()
	require.Equal(t, state.AllocationRunning, h.phase(t, "task-1"))

	h.runner.EXPECT().Cancel("task-1")
	h.r.apply(h.ctx, desired(2, nil))
	h.flush()
	assert.Equal(t, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STOPPING, h.status(t, "fe-1"))

	h.manager.EXPECT().Destroy(gomock.Any(), "fe-1").Return(nil)
	h.r.TaskFinished("task-1", executorapi.TaskOutcome_TASK_OUTCOME_SUCCESS)
	h.r.processEvents(h.ctx)
	h.flush()

	_, ok := h.store.FunctionExecutor("fe-1")
	assert.False(t, ok, "stopped function executor should be removed")
}

func TestTeardownIdleFunctionExecutor(t *testing.T) {
	h := newHarness(t, Config{})
	h.manager.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	h.r.apply(h.ctx, desired(1, []*executorapi.FunctionExecutorDescription{fe("fe-1")}))
	h.flush()

	h.manager.EXPECT().Destroy(gomock.Any(), "fe-1").Return(errors.New("kill timed out"))
	h.r.apply(h.ctx, desired(2, nil))
	assert.Equal(t, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STOPPING, h.status(t, "fe-1"))
	require.Len(t, h.pending, 1)

	// Reconciling again while the destroy is in flight must not destroy twice.
	h.r.processEvents(h.ctx)
	require.Len(t, h.pending, 1)

	h.flush()
	assert.Empty(t, h.store.FunctionExecutors())
}

func TestReAddedWhileDestroyingIsRecreated(t *testing.T) {
	h := newHarness(t, Config{})
	h.manager.EXPECT().Create(gomock.Any(), mock.MatchFunctionExecutor{ID: "fe-1"}).Return(nil).Times(2)
	h.manager.EXPECT().Destroy(gomock.Any(), "fe-1").Return(nil)
	h.runner.EXPECT().Run(gomock.Any(), mock.MatchFunctionExecutor{ID: "fe-1"}, mock.MatchTask{TaskID: "task-1", FunctionExecutorID: "fe-1"}).Return(nil)

	fes := []*executorapi.FunctionExecutorDescription{fe("fe-1")}
	h.r.apply(h.ctx, desired(1, fes))
	h.flush()

	h.r.apply(h.ctx, desired(2, nil))
	require.Len(t, h.pending, 1, "destroy should be in flight")
	h.r.apply(h.ctx, desired(3, fes, alloc("task-1", "fe-1")))
	assert.Equal(t, state.AllocationPending, h.phase(t, "task-1"))

	h.flush()
	h.r.processEvents(h.ctx)
	assert.Equal(t, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_RUNNING_TASK, h.status(t, "fe-1"))
	assert.Equal(t, state.AllocationRunning, h.phase(t, "task-1"))

	h.r.TaskFinished("task-1", executorapi.TaskOutcome_TASK_OUTCOME_SUCCESS)
	h.r.processEvents(h.ctx)
	assert.Equal(t, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_IDLE, h.status(t, "fe-1"))
}

func TestReAddedWhileDrainingIsRecreated(t *testing.T) {
	h := newHarness(t, Config{})
	h.manager.EXPECT().Create(gomock.Any(), mock.MatchFunctionExecutor{ID: "fe-1"}).Return(nil).Times(2)
	h.runner.EXPECT().Run(gomock.Any(), gomock.Any(), mock.MatchTask{TaskID: "task-1", FunctionExecutorID: "fe-1"}).Return(nil)

	fes := []*executorapi.FunctionExecutorDescription{fe("fe-1")}
	h.r.apply(h.ctx, desired(1, fes, alloc("task-1", "fe-1")))
	h.flush()
	require.Equal(t, state.AllocationRunning, h.phase(t, "task-1"))

	h.runner.EXPECT().Cancel("task-1")
	h.r.apply(h.ctx, desired(2, nil))
	h.r.apply(h.ctx, desired(3, fes))
	assert.Equal(t, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STOPPING, h.status(t, "fe-1"))
	assert.Empty(t, h.pending)

	// Teardown still completes before the function executor comes back.
	h.manager.EXPECT().Destroy(gomock.Any(), "fe-1").Return(nil)
	h.r.TaskFinished("task-1", executorapi.TaskOutcome_TASK_OUTCOME_SUCCESS)
	h.r.processEvents(h.ctx)
	h.flush()
	assert.Equal(t, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_IDLE, h.status(t, "fe-1"))
}

func TestCancelledBeforeStartCanRunAgain(t *testing.T) {
	h := newHarness(t, Config{})
	h.manager.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	h.runner.EXPECT().Run(gomock.Any(), gomock.Any(), mock.MatchTask{TaskID: "task-1", FunctionExecutorID: "fe-1"}).Return(nil).Times(2)

	fes := []*executorapi.FunctionExecutorDescription{fe("fe-1")}
	h.r.apply(h.ctx, desired(1, fes, alloc("task-1", "fe-1")))
	h.flush()

	h.runner.EXPECT().Cancel("task-1")
	h.r.apply(h.ctx, desired(2, fes))
	h.r.TaskFinished("task-1", executorapi.TaskOutcome_TASK_OUTCOME_UNKNOWN)
	h.r.processEvents(h.ctx)
	_, ok := h.store.Allocation("task-1")
	require.False(t, ok)

	h.r.apply(h.ctx, desired(3, fes, alloc("task-1", "fe-1")))
	h.flush()
	assert.Equal(t, state.AllocationRunning, h.phase(t, "task-1"))
}

func TestFinishedTasksAreNotDispatchedAgain(t *testing.T) {
	h := newHarness(t, Config{})
	h.manager.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	h.runner.EXPECT().Run(gomock.Any(), gomock.Any(), mock.MatchTask{TaskID: "task-1", FunctionExecutorID: "fe-1"}).Return(nil).Times(1)

	fes := []*executorapi.FunctionExecutorDescription{fe("fe-1")}
	h.r.apply(h.ctx, desired(1, fes, alloc("task-1", "fe-1")))
	h.flush()
	h.r.TaskFinished("task-1", executorapi.TaskOutcome_TASK_OUTCOME_SUCCESS)
	h.r.processEvents(h.ctx)

	// The controller has not caught up yet and still lists the task.
	h.r.apply(h.ctx, desired(2, fes, alloc("task-1", "fe-1")))
	h.flush()
	_, ok := h.store.Allocation("task-1")
	assert.False(t, ok)
}

func TestInvalidStatusTransitionIgnored(t *testing.T) {
	h := newHarness(t, Config{})
	h.manager.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	h.r.apply(h.ctx, desired(1, []*executorapi.FunctionExecutorDescription{fe("fe-1")}))
	h.flush()

	h.r.FunctionExecutorStatusChanged("fe-1", executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STARTING_UP, "")
	h.r.processEvents(h.ctx)
	assert.Equal(t, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_IDLE, h.status(t, "fe-1"))
}

func TestShutdownDestroysEverything(t *testing.T) {
	h := newHarness(t, Config{})
	h.manager.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	h.runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	h.r.apply(h.ctx, desired(1, []*executorapi.FunctionExecutorDescription{fe("fe-1"), fe("fe-2")}, alloc("task-1", "fe-1")))
	h.flush()

	h.runner.EXPECT().Cancel("task-1")
	h.manager.EXPECT().Destroy(gomock.Any(), "fe-1").Return(nil)
	h.manager.EXPECT().Destroy(gomock.Any(), "fe-2").Return(errors.New("stuck"))

	err := h.r.Shutdown(h.ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fe-2")
	assert.Equal(t, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_SHUTDOWN, h.status(t, "fe-1"))
	assert.Equal(t, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STOPPING, h.status(t, "fe-2"))
}

func TestRunConsumesQueue(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	manager := mock.NewMockManager(ctl)
	runner := mock.NewMockRunner(ctl)
	reporter := mock.NewMockStateReporter(ctl)
	reporter.EXPECT().Trigger().AnyTimes()
	manager.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	manager.EXPECT().Destroy(gomock.Any(), "fe-1").Return(nil)

	store := state.NewStore()
	queue := statesync.NewQueue(4)
	r := New(Config{ExecutorID: "executor-1", FinishedTaskTTL: time.Minute}, store, queue, manager, runner, reporter, metrics.Discard)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	done := make(chan error)
	go func() {
		done <- r.Run(ctx)
	}()

	queue.Push(desired(1, []*executorapi.FunctionExecutorDescription{fe("fe-1")}))
	select {
	case <-r.Applied():
	case <-ctx.Done():
		t.Fatal("Desired state never applied")
	}

	require.Eventually(t, func() bool {
		got, ok := store.FunctionExecutor("fe-1")
		return ok && got.Status == executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_IDLE
	}, 5*time.Second, 5*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
	assert.NoError(t, r.Shutdown(context.Background()))
	got, ok := store.FunctionExecutor("fe-1")
	require.True(t, ok)
	assert.Equal(t, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_SHUTDOWN, got.Status)
}

func TestStale(t *testing.T) {
	r := &Reconciler{}
	assert.False(t, r.stale(&executorapi.DesiredExecutorState{}))
	assert.False(t, r.stale(desired(0, nil)))

	r.clockSeen, r.lastClock = true, 7
	assert.True(t, r.stale(desired(7, nil)))
	assert.True(t, r.stale(desired(3, nil)))
	assert.False(t, r.stale(desired(8, nil)))
	assert.True(t, r.stale(&executorapi.DesiredExecutorState{}))
}

type instantManager struct{}

func (instantManager) Create(context.Context, *executorapi.FunctionExecutorDescription) error {
	return nil
}

func (instantManager) Destroy(context.Context, string) error {
	return nil
}

type instantRunner struct {
	events Events
}

func (i *instantRunner) Run(_ context.Context, _ *executorapi.FunctionExecutorDescription, alloc *executorapi.TaskAllocation) error {
	i.events.TaskFinished(alloc.GetTask().GetId(), executorapi.TaskOutcome_TASK_OUTCOME_SUCCESS)
	return nil
}

func (i *instantRunner) Cancel(string) {}

type nopReporter struct{}

func (nopReporter) Trigger() {}

func desiredForClock(clock uint64) *executorapi.DesiredExecutorState {
	first := fmt.Sprintf("fe-%d", clock%5)
	second := fmt.Sprintf("fe-%d", 5+clock%3)
	return desired(clock,
		[]*executorapi.FunctionExecutorDescription{fe(first), fe(second)},
		alloc(fmt.Sprintf("task-%d", clock), first),
	)
}

// converge applies the snapshots one at a time, draining manager calls and events after each.
func converge(clocks []uint64) (*state.Store, *Reconciler) {
	ctx := context.Background()
	store := state.NewStore()
	runner := &instantRunner{}
	r := New(Config{FinishedTaskTTL: time.Hour}, store, statesync.NewQueue(1), instantManager{}, runner, nopReporter{}, metrics.Discard)
	runner.events = r
	var pending []func()
	r.goFunc = func(f func()) {
		pending = append(pending, f)
	}
	flush := func() {
		r.processEvents(ctx)
		for len(pending) > 0 {
			fns := pending
			pending = nil
			for _, f := range fns {
				f()
			}
			r.processEvents(ctx)
		}
	}
	for _, clock := range clocks {
		r.apply(ctx, desiredForClock(clock))
		flush()
	}
	return store, r
}

func functionExecutorIDs(store *state.Store) []string {
	ids := []string{}
	for _, fe := range store.FunctionExecutors() {
		ids = append(ids, fe.Description.GetId())
	}
	sort.Strings(ids)
	return ids
}

func TestDeliveryOrderDoesNotMatter(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("shuffled delivery converges to the newest desired state", prop.ForAll(
		func(raw []uint8, seed int64) bool {
			if len(raw) == 0 {
				return true
			}
			clocks := make([]uint64, len(raw))
			for i, c := range raw {
				clocks[i] = uint64(c)
			}
			shuffled := append([]uint64(nil), clocks...)
			rand.New(rand.NewSource(seed)).Shuffle(len(shuffled), func(i, j int) {
				shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
			})
			sort.Slice(clocks, func(i, j int) bool { return clocks[i] < clocks[j] })

			sortedStore, _ := converge(clocks)
			shuffledStore, shuffledReconciler := converge(shuffled)

			newest := clocks[len(clocks)-1]
			want := []string{}
			for _, desc := range desiredForClock(newest).FunctionExecutors {
				want = append(want, desc.GetId())
			}
			sort.Strings(want)

			return shuffledReconciler.lastClock == newest &&
				cmp.Equal(functionExecutorIDs(sortedStore), want) &&
				cmp.Equal(functionExecutorIDs(shuffledStore), want) &&
				len(shuffledStore.Allocations()) == 0
		},
		gen.SliceOf(gen.UInt8()),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
