package taskrunner

import (
	"context"
	"sync"
	"time"

	"github.com/Netflix/metrics-client-go/metrics"
	"github.com/Netflix/titus-fn-executor/api/executorapi"
	"github.com/Netflix/titus-fn-executor/executor/fnerrors"
	"github.com/Netflix/titus-fn-executor/executor/outcome"
	"github.com/Netflix/titus-fn-executor/executor/reconciler"
	"github.com/Netflix/titus-fn-executor/logger"
	"github.com/Netflix/titus-fn-executor/tracehelpers"
	"github.com/pkg/errors"
	"go.opencensus.io/trace"
	"golang.org/x/sync/semaphore"
	"k8s.io/apimachinery/pkg/util/wait"
)

const (
	taskLatencyMetric   = "titus.fnexecutor.taskLatency"
	taskOutcomeMetric   = "titus.fnexecutor.taskOutcome"
	reportGiveUpMetric  = "titus.fnexecutor.taskOutcomeReportGiveUp"
	reportAttemptMetric = "titus.fnexecutor.taskOutcomeReportAttempt"
)

var errRunnerStopped = errors.New("task runner is stopped")

// Result is what an Invoker learned from running a task.
type Result struct {
	Outcome executorapi.TaskOutcome
	Outputs []outcome.Output
	Stdout  string
	Stderr  string
	Router  *executorapi.RouterOutput
	Reducer *bool
}

// Invoker runs one task on a function executor and blocks until it is done.
type Invoker interface {
	Invoke(ctx context.Context, fe *executorapi.FunctionExecutorDescription, task *executorapi.Task) (*Result, error)
}

type Config struct {
	MaxConcurrent int64
	// MaxReportAttempts is how often an outcome report is tried before giving up.
	MaxReportAttempts int
	// ReportBackoff is the delay before the second attempt; it doubles up to MaxReportBackoff.
	ReportBackoff    time.Duration
	MaxReportBackoff time.Duration
	// DefaultTaskTimeout applies when neither the task nor the function executor set one. Zero means none.
	DefaultTaskTimeout time.Duration
}

type runningTask struct {
	cancel  context.CancelFunc
	started bool
}

// Runner executes dispatched allocations and reports their outcomes. It owns
// the reporting retry policy: the reporter itself only makes single attempts.
type Runner struct {
	config   Config
	invoker  Invoker
	reporter outcome.Reporter
	metrics  metrics.Reporter
	sem      *semaphore.Weighted
	// base outlives the contexts tasks are dispatched with; it is only cancelled when Stop gives up.
	base  context.Context
	abort context.CancelFunc
	// sleep waits between report attempts, replaced in tests
	sleep func(ctx context.Context, d time.Duration) error

	lock    sync.Mutex
	events  reconciler.Events
	tasks   map[string]*runningTask
	stopped bool
	wg      sync.WaitGroup
}

func New(cfg Config, invoker Invoker, reporter outcome.Reporter, m metrics.Reporter) *Runner {
	if cfg.MaxConcurrent < 1 {
		cfg.MaxConcurrent = 1
	}
	if cfg.MaxReportAttempts < 1 {
		cfg.MaxReportAttempts = 1
	}
	base, abort := context.WithCancel(context.Background())
	return &Runner{
		base:     base,
		abort:    abort,
		config:   cfg,
		invoker:  invoker,
		reporter: reporter,
		metrics:  m,
		sem:      semaphore.NewWeighted(cfg.MaxConcurrent),
		sleep:    sleepContext,
		tasks:    make(map[string]*runningTask),
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// SetEvents must be called before the first Run.
func (r *Runner) SetEvents(events reconciler.Events) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.events = events
}

// Run starts the allocation in the background. The outcome is reported, and
// TaskFinished emitted, even if ctx is cancelled once the task started.
func (r *Runner) Run(ctx context.Context, fe *executorapi.FunctionExecutorDescription, alloc *executorapi.TaskAllocation) error {
	taskID := alloc.GetTask().GetId()
	if taskID == "" {
		return errors.New("allocation has no task id")
	}

	r.lock.Lock()
	defer r.lock.Unlock()
	if r.stopped {
		return errRunnerStopped
	}
	if _, ok := r.tasks[taskID]; ok {
		return errors.Errorf("task %s is already running", taskID)
	}

	taskCtx, cancel := context.WithCancel(ctx)
	rt := &runningTask{cancel: cancel}
	r.tasks[taskID] = rt
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer cancel()
		r.run(ctx, taskCtx, rt, fe, alloc)
	}()
	return nil
}

// Cancel stops a task that is still waiting for a slot. Started tasks run to completion.
func (r *Runner) Cancel(taskID string) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if rt, ok := r.tasks[taskID]; ok && !rt.started {
		rt.cancel()
	}
}

// Stop refuses new tasks and waits for the running ones to finish reporting. When
// ctx is done first, running invocations and reports are aborted.
func (r *Runner) Stop(ctx context.Context) error {
	r.lock.Lock()
	r.stopped = true
	r.lock.Unlock()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		r.abort()
		return ctx.Err()
	}
}

// Running is the number of tasks the runner currently tracks.
func (r *Runner) Running() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.tasks)
}

func (r *Runner) finish(taskID string, result executorapi.TaskOutcome) {
	r.lock.Lock()
	delete(r.tasks, taskID)
	events := r.events
	r.lock.Unlock()
	if events != nil {
		events.TaskFinished(taskID, result)
	}
}

func (r *Runner) timeout(fe *executorapi.FunctionExecutorDescription, task *executorapi.Task) time.Duration {
	if ms := task.GetTimeoutMs(); ms > 0 {
		return time.Duration(ms) * time.Millisecond
	}
	if fe != nil && fe.CustomerCodeTimeoutMs != nil && *fe.CustomerCodeTimeoutMs > 0 {
		return time.Duration(*fe.CustomerCodeTimeoutMs) * time.Millisecond
	}
	return r.config.DefaultTaskTimeout
}

func (r *Runner) run(ctx, taskCtx context.Context, rt *runningTask, fe *executorapi.FunctionExecutorDescription, alloc *executorapi.TaskAllocation) {
	task := alloc.GetTask()
	taskID := task.GetId()
	ctx = logger.WithTask(ctx, taskID, alloc.GetFunctionExecutorId())
	m := withTags(r.metrics, map[string]string{
		"namespace": task.GetNamespace(),
		"graph":     task.GetGraphName(),
		"function":  task.GetFunctionName(),
	})

	if err := r.sem.Acquire(taskCtx, 1); err != nil {
		logger.G(ctx).WithError(err).Info("Task cancelled before it started")
		r.finish(taskID, executorapi.TaskOutcome_TASK_OUTCOME_UNKNOWN)
		return
	}
	defer r.sem.Release(1)

	r.lock.Lock()
	if taskCtx.Err() != nil {
		r.lock.Unlock()
		logger.G(ctx).Info("Task cancelled before it started")
		r.finish(taskID, executorapi.TaskOutcome_TASK_OUTCOME_UNKNOWN)
		return
	}
	rt.started = true
	r.lock.Unlock()

	// From here on the allocation can no longer be cancelled.
	ctx = logger.WithLogger(r.base, logger.G(ctx))
	completed := r.invoke(ctx, m, fe, task)
	m.Counter(taskOutcomeMetric, 1, map[string]string{"outcome": completed.Outcome.String()})
	r.report(ctx, m, completed)
	r.finish(taskID, completed.Outcome)
}

func (r *Runner) invoke(ctx context.Context, m metrics.Reporter, fe *executorapi.FunctionExecutorDescription, task *executorapi.Task) *outcome.CompletedTask {
	ctx, span := trace.StartSpan(ctx, "runTask")
	defer span.End()
	span.AddAttributes(trace.StringAttribute("taskID", task.GetId()), trace.StringAttribute("function", task.GetFunctionName()))

	invokeCtx := ctx
	if timeout := r.timeout(fe, task); timeout > 0 {
		var cancel context.CancelFunc
		invokeCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	logger.G(ctx).Info("Running task")
	start := time.Now()
	result, err := r.invoker.Invoke(invokeCtx, fe, task)
	tracehelpers.SetStatus(err, span)
	m.Timer(taskLatencyMetric, time.Since(start), nil)

	completed := &outcome.CompletedTask{Task: task, Outcome: executorapi.TaskOutcome_TASK_OUTCOME_FAILURE}
	switch {
	case err != nil:
		logger.G(ctx).WithError(err).Warn("Task failed to run")
		completed.Stderr = err.Error()
		if result != nil {
			completed.Stdout = result.Stdout
			if result.Stderr != "" {
				completed.Stderr = result.Stderr + "\n" + err.Error()
			}
		}
	case result == nil:
		completed.Stderr = "task produced no result"
	default:
		completed.Outcome = result.Outcome
		if !completed.Outcome.IsKnown() {
			completed.Outcome = executorapi.TaskOutcome_TASK_OUTCOME_FAILURE
		}
		completed.Outputs = result.Outputs
		completed.Stdout = result.Stdout
		completed.Stderr = result.Stderr
		completed.Router = result.Router
		completed.Reducer = result.Reducer
	}
	logger.G(ctx).WithField("outcome", completed.Outcome.String()).Info("Task finished running")
	return completed
}

func (r *Runner) newBackoff() wait.Backoff {
	return wait.Backoff{
		Duration: r.config.ReportBackoff,
		Factor:   2,
		Jitter:   0.2,
		Steps:    r.config.MaxReportAttempts,
		Cap:      r.config.MaxReportBackoff,
	}
}

// report tries to report the outcome until it succeeds, fails persistently or runs out of attempts.
func (r *Runner) report(ctx context.Context, m metrics.Reporter, completed *outcome.CompletedTask) {
	backoff := r.newBackoff()
	for {
		err := r.reporter.Report(ctx, completed)
		m.Counter(reportAttemptMetric, 1, nil)
		if err == nil {
			return
		}
		completed.ReportingRetries++
		entry := logger.G(ctx).WithError(err).WithField("retries", completed.ReportingRetries)
		if fnerrors.IsPersistentError(err) || completed.ReportingRetries >= r.config.MaxReportAttempts {
			entry.Error("Giving up reporting task outcome")
			m.Counter(reportGiveUpMetric, 1, nil)
			return
		}
		delay := backoff.Step()
		entry.WithField("delay", delay).Warn("Failed to report task outcome, will retry")
		if err := r.sleep(ctx, delay); err != nil {
			logger.G(ctx).WithError(err).Error("Giving up reporting task outcome")
			m.Counter(reportGiveUpMetric, 1, nil)
			return
		}
	}
}
