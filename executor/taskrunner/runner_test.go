package taskrunner

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Netflix/metrics-client-go/metrics"
	"github.com/Netflix/titus-fn-executor/api/executorapi"
	"github.com/Netflix/titus-fn-executor/executor/fnerrors"
	"github.com/Netflix/titus-fn-executor/executor/outcome"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

type invokerFunc func(ctx context.Context, fe *executorapi.FunctionExecutorDescription, task *executorapi.Task) (*Result, error)

func (f invokerFunc) Invoke(ctx context.Context, fe *executorapi.FunctionExecutorDescription, task *executorapi.Task) (*Result, error) {
	return f(ctx, fe, task)
}

type fakeReporter struct {
	lock    sync.Mutex
	errs    []error
	reports []outcome.CompletedTask
}

func (f *fakeReporter) Report(ctx context.Context, task *outcome.CompletedTask) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.reports = append(f.reports, *task)
	if len(f.errs) == 0 {
		return nil
	}
	err := f.errs[0]
	f.errs = f.errs[1:]
	return err
}

func (f *fakeReporter) Reports() []outcome.CompletedTask {
	f.lock.Lock()
	defer f.lock.Unlock()
	return append([]outcome.CompletedTask(nil), f.reports...)
}

type finished struct {
	taskID  string
	outcome executorapi.TaskOutcome
}

type fakeEvents struct {
	finished chan finished
}

func (f *fakeEvents) FunctionExecutorStatusChanged(string, executorapi.FunctionExecutorStatus, string) {
}

func (f *fakeEvents) TaskFinished(taskID string, outcome executorapi.TaskOutcome) {
	f.finished <- finished{taskID: taskID, outcome: outcome}
}

func newRunner(t *testing.T, cfg Config, invoker Invoker, reporter outcome.Reporter) (*Runner, *fakeEvents, *[]time.Duration) {
	r := New(cfg, invoker, reporter, metrics.Discard)
	events := &fakeEvents{finished: make(chan finished, 10)}
	r.SetEvents(events)
	var sleeps []time.Duration
	r.sleep = func(ctx context.Context, d time.Duration) error {
		sleeps = append(sleeps, d)
		return nil
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		assert.NoError(t, r.Stop(ctx))
	})
	return r, events, &sleeps
}

func allocation(taskID string) *executorapi.TaskAllocation {
	return &executorapi.TaskAllocation{
		FunctionExecutorId: proto.String("fe-1"),
		Task: &executorapi.Task{
			Id:           proto.String(taskID),
			Namespace:    proto.String("default"),
			GraphName:    proto.String("graph"),
			FunctionName: proto.String("fn"),
		},
	}
}

var testFE = &executorapi.FunctionExecutorDescription{Id: proto.String("fe-1")}

func waitFinished(t *testing.T, events *fakeEvents) finished {
	t.Helper()
	select {
	case f := <-events.finished:
		return f
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for task to finish")
		return finished{}
	}
}

func TestSuccessfulTaskIsReported(t *testing.T) {
	reporter := &fakeReporter{}
	invoker := invokerFunc(func(ctx context.Context, fe *executorapi.FunctionExecutorDescription, task *executorapi.Task) (*Result, error) {
		return &Result{
			Outcome: executorapi.TaskOutcome_TASK_OUTCOME_SUCCESS,
			Outputs: []outcome.Output{{Bytes: []byte("1"), ContentType: "application/json"}},
			Stdout:  "done",
			Router:  &executorapi.RouterOutput{Edges: []string{"next"}},
		}, nil
	})
	r, events, _ := newRunner(t, Config{MaxConcurrent: 2, MaxReportAttempts: 3}, invoker, reporter)

	require.NoError(t, r.Run(context.Background(), testFE, allocation("task-1")))
	assert.Equal(t, finished{taskID: "task-1", outcome: executorapi.TaskOutcome_TASK_OUTCOME_SUCCESS}, waitFinished(t, events))

	reports := reporter.Reports()
	require.Len(t, reports, 1)
	assert.Equal(t, "task-1", reports[0].Task.GetId())
	assert.Equal(t, "done", reports[0].Stdout)
	assert.Equal(t, []string{"next"}, reports[0].Router.Edges)
	assert.Equal(t, 0, reports[0].ReportingRetries)
	assert.Equal(t, 0, r.Running())
}

func TestInvokerErrorIsReportedAsFailure(t *testing.T) {
	reporter := &fakeReporter{}
	invoker := invokerFunc(func(context.Context, *executorapi.FunctionExecutorDescription, *executorapi.Task) (*Result, error) {
		return nil, errors.New("function executor went away")
	})
	r, events, _ := newRunner(t, Config{MaxReportAttempts: 1}, invoker, reporter)

	require.NoError(t, r.Run(context.Background(), testFE, allocation("task-1")))
	assert.Equal(t, executorapi.TaskOutcome_TASK_OUTCOME_FAILURE, waitFinished(t, events).outcome)
	reports := reporter.Reports()
	require.Len(t, reports, 1)
	assert.Equal(t, executorapi.TaskOutcome_TASK_OUTCOME_FAILURE, reports[0].Outcome)
	assert.Equal(t, "function executor went away", reports[0].Stderr)
}

func TestReportIsRetriedWithBackoff(t *testing.T) {
	retryable := fnerrors.NewRetryable(&outcome.UploadError{StatusCode: 500, Body: "disk full"})
	reporter := &fakeReporter{errs: []error{retryable, retryable}}
	invoker := invokerFunc(func(context.Context, *executorapi.FunctionExecutorDescription, *executorapi.Task) (*Result, error) {
		return &Result{Outcome: executorapi.TaskOutcome_TASK_OUTCOME_SUCCESS}, nil
	})
	r, events, sleeps := newRunner(t, Config{MaxReportAttempts: 5, ReportBackoff: 100 * time.Millisecond, MaxReportBackoff: time.Second}, invoker, reporter)

	require.NoError(t, r.Run(context.Background(), testFE, allocation("task-1")))
	assert.Equal(t, executorapi.TaskOutcome_TASK_OUTCOME_SUCCESS, waitFinished(t, events).outcome)

	reports := reporter.Reports()
	require.Len(t, reports, 3)
	for i, report := range reports {
		assert.Equal(t, i, report.ReportingRetries)
	}
	require.Len(t, *sleeps, 2)
	assert.GreaterOrEqual(t, int64((*sleeps)[0]), int64(100*time.Millisecond))
	assert.GreaterOrEqual(t, int64((*sleeps)[1]), int64(200*time.Millisecond))
}

func TestReportGivesUp(t *testing.T) {
	retryable := fnerrors.NewRetryable(errors.New("connection refused"))
	reporter := &fakeReporter{errs: []error{retryable, retryable, retryable, retryable}}
	invoker := invokerFunc(func(context.Context, *executorapi.FunctionExecutorDescription, *executorapi.Task) (*Result, error) {
		return &Result{Outcome: executorapi.TaskOutcome_TASK_OUTCOME_SUCCESS}, nil
	})
	r, events, _ := newRunner(t, Config{MaxReportAttempts: 3, ReportBackoff: time.Millisecond}, invoker, reporter)

	require.NoError(t, r.Run(context.Background(), testFE, allocation("task-1")))
	assert.Equal(t, executorapi.TaskOutcome_TASK_OUTCOME_SUCCESS, waitFinished(t, events).outcome)
	assert.Len(t, reporter.Reports(), 3)
}

func TestPersistentReportErrorIsNotRetried(t *testing.T) {
	reporter := &fakeReporter{errs: []error{fnerrors.NewPersistentError(&outcome.UploadError{StatusCode: 400})}}
	invoker := invokerFunc(func(context.Context, *executorapi.FunctionExecutorDescription, *executorapi.Task) (*Result, error) {
		return &Result{Outcome: executorapi.TaskOutcome_TASK_OUTCOME_SUCCESS}, nil
	})
	r, events, sleeps := newRunner(t, Config{MaxReportAttempts: 5}, invoker, reporter)

	require.NoError(t, r.Run(context.Background(), testFE, allocation("task-1")))
	waitFinished(t, events)
	assert.Len(t, reporter.Reports(), 1)
	assert.Empty(t, *sleeps)
}

func TestCancelOnlyAffectsTasksThatHaveNotStarted(t *testing.T) {
	reporter := &fakeReporter{}
	started := make(chan string, 2)
	release := make(chan struct{})
	invoker := invokerFunc(func(ctx context.Context, fe *executorapi.FunctionExecutorDescription, task *executorapi.Task) (*Result, error) {
		started <- task.GetId()
		<-release
		return &Result{Outcome: executorapi.TaskOutcome_TASK_OUTCOME_SUCCESS}, ctx.Err()
	})
	r, events, _ := newRunner(t, Config{MaxConcurrent: 1, MaxReportAttempts: 1}, invoker, reporter)

	require.NoError(t, r.Run(context.Background(), testFE, allocation("task-running")))
	assert.Equal(t, "task-running", <-started)
	require.NoError(t, r.Run(context.Background(), testFE, allocation("task-queued")))

	r.Cancel("task-queued")
	assert.Equal(t, finished{taskID: "task-queued", outcome: executorapi.TaskOutcome_TASK_OUTCOME_UNKNOWN}, waitFinished(t, events))

	r.Cancel("task-running")
	close(release)
	assert.Equal(t, finished{taskID: "task-running", outcome: executorapi.TaskOutcome_TASK_OUTCOME_SUCCESS}, waitFinished(t, events))

	reports := reporter.Reports()
	require.Len(t, reports, 1)
	assert.Equal(t, "task-running", reports[0].Task.GetId())
}

func TestDuplicateAndStoppedRunsAreRejected(t *testing.T) {
	release := make(chan struct{})
	invoker := invokerFunc(func(context.Context, *executorapi.FunctionExecutorDescription, *executorapi.Task) (*Result, error) {
		<-release
		return &Result{Outcome: executorapi.TaskOutcome_TASK_OUTCOME_SUCCESS}, nil
	})
	r, events, _ := newRunner(t, Config{MaxReportAttempts: 1}, invoker, &fakeReporter{})

	require.NoError(t, r.Run(context.Background(), testFE, allocation("task-1")))
	assert.Error(t, r.Run(context.Background(), testFE, allocation("task-1")))
	close(release)
	waitFinished(t, events)

	require.NoError(t, r.Stop(context.Background()))
	assert.Equal(t, errRunnerStopped, r.Run(context.Background(), testFE, allocation("task-2")))
}

func TestTaskTimeout(t *testing.T) {
	invoker := invokerFunc(func(ctx context.Context, fe *executorapi.FunctionExecutorDescription, task *executorapi.Task) (*Result, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	reporter := &fakeReporter{}
	r, events, _ := newRunner(t, Config{MaxReportAttempts: 1}, invoker, reporter)

	alloc := allocation("task-1")
	alloc.Task.TimeoutMs = proto.Uint32(20)
	require.NoError(t, r.Run(context.Background(), testFE, alloc))
	assert.Equal(t, executorapi.TaskOutcome_TASK_OUTCOME_FAILURE, waitFinished(t, events).outcome)
	assert.Contains(t, reporter.Reports()[0].Stderr, context.DeadlineExceeded.Error())
}

func TestTimeoutPrecedence(t *testing.T) {
	r := New(Config{DefaultTaskTimeout: time.Minute}, nil, nil, metrics.Discard)
	fe := &executorapi.FunctionExecutorDescription{CustomerCodeTimeoutMs: proto.Uint32(2000)}

	assert.Equal(t, time.Second, r.timeout(fe, &executorapi.Task{TimeoutMs: proto.Uint32(1000)}))
	assert.Equal(t, 2*time.Second, r.timeout(fe, &executorapi.Task{}))
	assert.Equal(t, time.Minute, r.timeout(nil, &executorapi.Task{}))
}
