package reconciler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Netflix/metrics-client-go/metrics"
	"github.com/Netflix/titus-fn-executor/api/executorapi"
	"github.com/Netflix/titus-fn-executor/executor/fnerrors"
	"github.com/Netflix/titus-fn-executor/executor/state"
	"github.com/Netflix/titus-fn-executor/executor/statesync"
	"github.com/Netflix/titus-fn-executor/logger"
	"github.com/karlseguin/ccache/v2"
	"github.com/pkg/errors"
	"go.opencensus.io/trace"
	"k8s.io/apimachinery/pkg/util/sets"
)

const (
	desiredStateAppliedMetric = "titus.fnexecutor.desiredStateApplied"
	desiredStateStaleMetric   = "titus.fnexecutor.desiredStateStale"
	invalidTransitionMetric   = "titus.fnexecutor.invalidTransition"
	taskDispatchedMetric      = "titus.fnexecutor.taskDispatched"
	taskCancelledMetric       = "titus.fnexecutor.taskCancelled"
)

const notAllowedMessage = "function is not allowed on this executor"

type Config struct {
	ExecutorID string
	// AllowedFunctions limits which function executors are created. Empty allows everything.
	AllowedFunctions []*executorapi.AllowedFunction
	// FinishedTaskTTL is how long a finished task is remembered so it is not dispatched again.
	FinishedTaskTTL time.Duration
}

// Reconciler converges the local state towards the controller's desired state.
// Run is the only writer of the store; everything else reports back through
// the Events methods.
type Reconciler struct {
	config   Config
	store    *state.Store
	queue    *statesync.Queue
	manager  Manager
	runner   Runner
	reporter StateReporter
	metrics  metrics.Reporter
	finished *ccache.Cache

	// Owned by the Run goroutine.
	desired     *executorapi.DesiredExecutorState
	lastClock   uint64
	clockSeen   bool
	destroying  sets.String
	cancelled   sets.String
	appliedOnce sync.Once
	applied     chan struct{}
	appliedSeq  int64

	eventLock  sync.Mutex
	events     []event
	eventReady chan struct{}

	wg sync.WaitGroup
	// goFunc runs blocking manager calls, replaced in tests
	goFunc func(func())
}

func New(cfg Config, store *state.Store, queue *statesync.Queue, manager Manager, runner Runner, reporter StateReporter, m metrics.Reporter) *Reconciler {
	r := &Reconciler{
		config:     cfg,
		store:      store,
		queue:      queue,
		manager:    manager,
		runner:     runner,
		reporter:   reporter,
		metrics:    m,
		finished:   ccache.New(ccache.Configure().MaxSize(100000).ItemsToPrune(100)),
		destroying: sets.NewString(),
		cancelled:  sets.NewString(),
		applied:    make(chan struct{}),
		eventReady: make(chan struct{}, 1),
	}
	r.goFunc = func(f func()) {
		r.wg.Add(1)
		go func() {
			defer r.wg.Done()
			f()
		}()
	}
	return r
}

// Applied is closed once the first desired state has been applied.
func (r *Reconciler) Applied() <-chan struct{} {
	return r.applied
}

// AppliedCount is the number of desired states applied so far.
func (r *Reconciler) AppliedCount() int {
	return int(atomic.LoadInt64(&r.appliedSeq))
}

func (r *Reconciler) FunctionExecutorStatusChanged(id string, status executorapi.FunctionExecutorStatus, message string) {
	r.post(functionExecutorStatusChanged{id: id, status: status, message: message})
}

func (r *Reconciler) TaskFinished(taskID string, outcome executorapi.TaskOutcome) {
	r.post(taskFinished{taskID: taskID, outcome: outcome})
}

func (r *Reconciler) post(ev event) {
	r.eventLock.Lock()
	r.events = append(r.events, ev)
	r.eventLock.Unlock()
	select {
	case r.eventReady <- struct{}{}:
	default:
	}
}

func (r *Reconciler) takeEvents() []event {
	r.eventLock.Lock()
	defer r.eventLock.Unlock()
	ret := r.events
	r.events = nil
	return ret
}

// Run applies desired states and events until ctx is done.
func (r *Reconciler) Run(ctx context.Context) error {
	ctx = logger.WithExecutor(ctx, r.config.ExecutorID)
	defer r.finished.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-r.queue.Ready():
			for {
				desired, ok := r.queue.TryPop()
				if !ok {
					break
				}
				r.apply(ctx, desired)
			}
		case <-r.eventReady:
			r.processEvents(ctx)
		}
	}
}

func (r *Reconciler) processEvents(ctx context.Context) {
	changed := false
	for _, ev := range r.takeEvents() {
		if r.handle(ctx, ev) {
			changed = true
		}
	}
	if r.reconcile(ctx) {
		changed = true
	}
	if changed {
		r.reporter.Trigger()
	}
}

// stale reports whether desired must be dropped because a newer snapshot was already applied.
func (r *Reconciler) stale(desired *executorapi.DesiredExecutorState) bool {
	if desired.Clock == nil {
		return r.clockSeen
	}
	return r.clockSeen && desired.GetClock() <= r.lastClock
}

func (r *Reconciler) apply(ctx context.Context, desired *executorapi.DesiredExecutorState) {
	ctx = logger.WithField(ctx, logger.ClockField, desired.GetClock())
	if r.stale(desired) {
		r.metrics.Counter(desiredStateStaleMetric, 1, nil)
		logger.G(ctx).WithField("lastClock", r.lastClock).Debug("Dropping stale desired state")
		return
	}

	ctx, span := trace.StartSpan(ctx, "applyDesiredState")
	defer span.End()
	span.AddAttributes(
		trace.Int64Attribute("clock", int64(desired.GetClock())),
		trace.Int64Attribute("functionExecutors", int64(len(desired.FunctionExecutors))),
		trace.Int64Attribute("taskAllocations", int64(len(desired.TaskAllocations))),
	)

	if desired.Clock != nil {
		r.lastClock = desired.GetClock()
		r.clockSeen = true
	}
	r.desired = desired
	r.metrics.Counter(desiredStateAppliedMetric, 1, nil)
	logger.G(ctx).WithField("functionExecutors", len(desired.FunctionExecutors)).WithField("taskAllocations", len(desired.TaskAllocations)).Debug("Applying desired state")

	r.reconcile(ctx)
	atomic.AddInt64(&r.appliedSeq, 1)
	r.appliedOnce.Do(func() { close(r.applied) })
	// The executor status may change on the first apply, so always report.
	r.reporter.Trigger()
}

func (r *Reconciler) handle(ctx context.Context, ev event) bool {
	switch ev := ev.(type) {
	case functionExecutorStatusChanged:
		ctx = logger.WithFunctionExecutor(ctx, ev.id)
		if err := r.store.SetFunctionExecutorStatus(ev.id, ev.status, ev.message); err != nil {
			if errors.Is(err, &state.InvalidTransitionError{}) {
				r.metrics.Counter(invalidTransitionMetric, 1, nil)
			}
			logger.G(ctx).WithError(err).Warn("Ignoring function executor status change")
			return false
		}
		logger.G(ctx).WithField("status", ev.status.String()).WithField("message", ev.message).Info("Function executor status changed")
		if isStopped(ev.status) {
			// A stopped function executor that is desired again is recreated by reconcile.
			r.destroying.Delete(ev.id)
			r.removeIfGone(ctx, ev.id, ev.status)
		}
		return true
	case taskFinished:
		alloc, ok := r.store.Allocation(ev.taskID)
		// UNKNOWN means the task never ran, so the controller may hand it out again.
		if ev.outcome.IsKnown() {
			r.finished.Set(ev.taskID, ev.outcome, r.config.FinishedTaskTTL)
		}
		r.cancelled.Delete(ev.taskID)
		if !ok {
			return false
		}
		r.store.RemoveAllocation(ev.taskID)
		logger.G(logger.WithTask(ctx, ev.taskID, alloc.FunctionExecutorID())).WithField("outcome", ev.outcome.String()).Info("Task finished")
		r.markIdleIfDone(ctx, alloc.FunctionExecutorID())
		return true
	}
	return false
}

// removeIfGone drops a stopped function executor the controller no longer wants.
func (r *Reconciler) removeIfGone(ctx context.Context, id string, status executorapi.FunctionExecutorStatus) bool {
	if !isStopped(status) {
		return false
	}
	if r.desiredFunctionExecutors()[id] != nil {
		return false
	}
	for _, alloc := range r.store.AllocationsFor(id) {
		r.store.RemoveAllocation(alloc.TaskID())
	}
	r.store.RemoveFunctionExecutor(id)
	logger.G(ctx).Info("Removed stopped function executor")
	return true
}

func isStopped(status executorapi.FunctionExecutorStatus) bool {
	return status == executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STOPPED ||
		status == executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_SHUTDOWN
}

func (r *Reconciler) markIdleIfDone(ctx context.Context, feID string) {
	fe, ok := r.store.FunctionExecutor(feID)
	if !ok || fe.Status != executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_RUNNING_TASK {
		return
	}
	for _, alloc := range r.store.AllocationsFor(feID) {
		if alloc.Phase == state.AllocationRunning {
			return
		}
	}
	if err := r.store.SetFunctionExecutorStatus(feID, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_IDLE, ""); err != nil {
		logger.G(ctx).WithError(err).Warn("Could not mark function executor idle")
	}
}

func (r *Reconciler) desiredFunctionExecutors() map[string]*executorapi.FunctionExecutorDescription {
	ret := make(map[string]*executorapi.FunctionExecutorDescription)
	if r.desired == nil {
		return ret
	}
	for _, desc := range r.desired.FunctionExecutors {
		if id := desc.GetId(); id != "" {
			ret[id] = desc
		}
	}
	return ret
}

func (r *Reconciler) desiredAllocations() map[string]*executorapi.TaskAllocation {
	ret := make(map[string]*executorapi.TaskAllocation)
	if r.desired == nil {
		return ret
	}
	for _, alloc := range r.desired.TaskAllocations {
		taskID := alloc.GetTask().GetId()
		if taskID == "" || alloc.GetFunctionExecutorId() == "" {
			continue
		}
		if item := r.finished.Get(taskID); item != nil && !item.Expired() {
			continue
		}
		ret[taskID] = alloc
	}
	return ret
}

// reconcile is level triggered: it compares the last applied desired state to
// the store and issues whatever actions are still missing. It reports whether
// the store changed.
func (r *Reconciler) reconcile(ctx context.Context) bool {
	if r.desired == nil {
		return false
	}
	changed := r.reconcileFunctionExecutors(ctx)
	if r.reconcileAllocations(ctx) {
		changed = true
	}
	return changed
}

func (r *Reconciler) reconcileFunctionExecutors(ctx context.Context) bool {
	desired := r.desiredFunctionExecutors()
	desiredIDs := sets.StringKeySet(desired)
	local := make(map[string]state.FunctionExecutor)
	localIDs := sets.NewString()
	for _, fe := range r.store.FunctionExecutors() {
		local[fe.Description.GetId()] = fe
		localIDs.Insert(fe.Description.GetId())
	}

	changed := false
	for _, id := range desiredIDs.Intersection(localIDs).List() {
		if r.recreateIfStopped(ctx, local[id], desired[id]) {
			changed = true
		}
	}
	for _, id := range desiredIDs.Difference(localIDs).List() {
		r.create(ctx, desired[id])
		changed = true
	}
	for _, id := range localIDs.Difference(desiredIDs).List() {
		if r.teardown(ctx, id) {
			changed = true
		}
	}
	return changed
}

func (r *Reconciler) create(ctx context.Context, desc *executorapi.FunctionExecutorDescription) {
	id := desc.GetId()
	ctx = logger.WithFunctionExecutor(ctx, id)
	if err := r.store.AddFunctionExecutor(desc); err != nil {
		logger.G(ctx).WithError(err).Error("Could not record function executor")
		return
	}

	if len(r.config.AllowedFunctions) > 0 && !executorapi.FunctionAllowed(r.config.AllowedFunctions, desc) {
		logger.G(ctx).WithField("function", desc.GetFunctionName()).Warn("Refusing to create function executor for a function that is not allowed")
		_ = r.store.SetFunctionExecutorStatus(id, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STARTUP_FAILED_PLATFORM_ERROR, notAllowedMessage)
		return
	}

	logger.G(ctx).WithField("function", desc.GetFunctionName()).WithField("image", desc.GetImageUri()).Info("Creating function executor")
	desc = desc.Clone()
	r.goFunc(func() {
		if err := r.manager.Create(ctx, desc); err != nil {
			status := executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STARTUP_FAILED_PLATFORM_ERROR
			if fnerrors.IsPersistentError(err) {
				status = executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STARTUP_FAILED_CUSTOMER_ERROR
			}
			logger.G(ctx).WithError(err).Warn("Function executor failed to start")
			r.FunctionExecutorStatusChanged(id, status, err.Error())
			return
		}
		r.FunctionExecutorStatusChanged(id, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_IDLE, "")
	})
}

// teardown stops an undesired function executor once its running tasks have drained.
func (r *Reconciler) teardown(ctx context.Context, id string) bool {
	ctx = logger.WithFunctionExecutor(ctx, id)
	fe, ok := r.store.FunctionExecutor(id)
	if !ok {
		return false
	}
	changed := false

	for _, alloc := range r.store.AllocationsFor(id) {
		if alloc.Phase == state.AllocationPending {
			r.store.RemoveAllocation(alloc.TaskID())
			r.metrics.Counter(taskCancelledMetric, 1, nil)
			changed = true
		}
	}

	switch fe.Status {
	case executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STOPPED, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_SHUTDOWN:
		r.removeIfGone(ctx, id, fe.Status)
		r.destroying.Delete(id)
		return true
	case executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STOPPING:
	default:
		if err := r.store.SetFunctionExecutorStatus(id, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STOPPING, ""); err != nil {
			logger.G(ctx).WithError(err).Warn("Could not mark function executor stopping")
		} else {
			changed = true
		}
	}

	r.destroyWhenDrained(ctx, id)
	return changed
}

// recreateIfStopped handles a function executor that is desired again after
// teardown began. A stopping one is still destroyed first; once stopped, it
// is dropped from the store and created from the desired description.
func (r *Reconciler) recreateIfStopped(ctx context.Context, fe state.FunctionExecutor, desc *executorapi.FunctionExecutorDescription) bool {
	id := fe.Description.GetId()
	switch {
	case fe.Status == executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STOPPING:
		r.destroyWhenDrained(logger.WithFunctionExecutor(ctx, id), id)
		return false
	case !isStopped(fe.Status) || r.destroying.Has(id):
		return false
	}
	logger.G(logger.WithFunctionExecutor(ctx, id)).Info("Recreating stopped function executor that is desired again")
	r.store.RemoveFunctionExecutor(id)
	r.create(ctx, desc)
	return true
}

// destroyWhenDrained destroys a stopping function executor once none of its tasks are running.
func (r *Reconciler) destroyWhenDrained(ctx context.Context, id string) {
	if r.destroying.Has(id) {
		return
	}
	for _, alloc := range r.store.AllocationsFor(id) {
		if alloc.Phase == state.AllocationRunning {
			logger.G(ctx).WithField(logger.TaskIDField, alloc.TaskID()).Debug("Waiting for running task before destroying function executor")
			return
		}
	}

	r.destroying.Insert(id)
	logger.G(ctx).Info("Destroying function executor")
	r.goFunc(func() {
		message := ""
		if err := r.manager.Destroy(ctx, id); err != nil {
			logger.G(ctx).WithError(err).Warn("Function executor did not stop cleanly")
			message = err.Error()
		}
		r.FunctionExecutorStatusChanged(id, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STOPPED, message)
	})
}

func (r *Reconciler) reconcileAllocations(ctx context.Context) bool {
	desired := r.desiredAllocations()
	changed := false

	for _, alloc := range r.store.Allocations() {
		want, ok := desired[alloc.TaskID()]
		switch {
		case !ok && alloc.Phase == state.AllocationPending:
			// Never dispatched, so it is simply forgotten.
			r.store.RemoveAllocation(alloc.TaskID())
			r.metrics.Counter(taskCancelledMetric, 1, nil)
			logger.G(logger.WithTask(ctx, alloc.TaskID(), alloc.FunctionExecutorID())).Info("Cancelled pending task that is no longer desired")
			changed = true
		case !ok && !r.cancelled.Has(alloc.TaskID()):
			// The runner only cancels tasks that have not started executing; started ones finish.
			r.cancelled.Insert(alloc.TaskID())
			r.runner.Cancel(alloc.TaskID())
		case ok && alloc.Phase == state.AllocationPending && want.GetFunctionExecutorId() != alloc.FunctionExecutorID():
			if err := r.store.PutAllocation(want, state.AllocationPending); err == nil {
				changed = true
			}
		}
	}

	for taskID, alloc := range desired {
		if _, ok := r.store.Allocation(taskID); ok {
			continue
		}
		if err := r.store.PutAllocation(alloc, state.AllocationPending); err != nil {
			logger.G(ctx).WithError(err).Warn("Could not record task allocation")
			continue
		}
		changed = true
	}

	desiredFEs := r.desiredFunctionExecutors()
	for _, alloc := range r.store.Allocations() {
		if alloc.Phase != state.AllocationPending {
			continue
		}
		feID := alloc.FunctionExecutorID()
		fe, ok := r.store.FunctionExecutor(feID)
		if !ok || desiredFEs[feID] == nil || !state.CanAcceptTasks(fe.Status) {
			continue
		}
		if r.dispatch(ctx, fe, alloc) {
			changed = true
		}
	}
	return changed
}

func (r *Reconciler) dispatch(ctx context.Context, fe state.FunctionExecutor, alloc state.Allocation) bool {
	ctx = logger.WithTask(ctx, alloc.TaskID(), alloc.FunctionExecutorID())
	if err := r.store.SetAllocationPhase(alloc.TaskID(), state.AllocationRunning); err != nil {
		logger.G(ctx).WithError(err).Warn("Could not mark task running")
		return false
	}
	if err := r.runner.Run(ctx, fe.Description, alloc.Allocation); err != nil {
		logger.G(ctx).WithError(err).Warn("Runner rejected task, will retry")
		_ = r.store.SetAllocationPhase(alloc.TaskID(), state.AllocationPending)
		return false
	}
	if fe.Status == executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_IDLE {
		_ = r.store.SetFunctionExecutorStatus(fe.Description.GetId(), executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_RUNNING_TASK, "")
	}
	r.metrics.Counter(taskDispatchedMetric, 1, nil)
	logger.G(ctx).Info("Dispatched task")
	return true
}

// Shutdown stops every function executor. It must only be called after Run returned.
func (r *Reconciler) Shutdown(ctx context.Context) error {
	for _, alloc := range r.store.Allocations() {
		r.runner.Cancel(alloc.TaskID())
	}

	group := fnerrors.NewErrGroupIsh()
	for _, fe := range r.store.FunctionExecutors() {
		id := fe.Description.GetId()
		if state.IsTerminal(fe.Status) && fe.Status != executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STARTUP_FAILED_CUSTOMER_ERROR && fe.Status != executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STARTUP_FAILED_PLATFORM_ERROR {
			continue
		}
		_ = r.store.SetFunctionExecutorStatus(id, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STOPPING, "executor shutting down")
		group.Run(func() error {
			if err := r.manager.Destroy(ctx, id); err != nil {
				return errors.Wrapf(err, "function executor %s", id)
			}
			_ = r.store.SetFunctionExecutorStatus(id, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_SHUTDOWN, "executor shut down")
			return nil
		})
	}
	err := group.Wait(ctx)
	r.wg.Wait()
	return err
}
