package mock

import (
	"context"
	"sync"
	"time"

	"github.com/Netflix/titus-fn-executor/api/executorapi"
	"github.com/Netflix/titus-fn-executor/logger"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"k8s.io/apimachinery/pkg/util/wait"
)

const subscriberBuffer = 64

// Controller is an in-memory stand-in for the real controller. It records
// everything executors send and lets callers push desired states.
type Controller struct {
	executorapi.UnimplementedExecutorAPIServer

	lock      sync.Mutex
	executors map[string]*executorRecord
	outcomes  []*executorapi.ReportTaskOutcomeRequest
	ingested  []*IngestedOutcome

	reportErr    error
	ingestStatus int
	ingestBody   string
}

type executorRecord struct {
	reports          int
	effectiveUpdates int
	lastHash         string
	last             *executorapi.ExecutorState
	lastDesired      *executorapi.DesiredExecutorState
	nextSubscriber   int
	subscribers      map[int]chan *executorapi.DesiredExecutorState
}

// ExecutorStats summarises what one executor reported.
type ExecutorStats struct {
	Reports int
	// EffectiveUpdates counts reports whose state hash differed from the previous one.
	EffectiveUpdates int
	Last             *executorapi.ExecutorState
	Streams          int
}

func New() *Controller {
	return &Controller{
		executors: make(map[string]*executorRecord),
	}
}

func (c *Controller) record(executorID string) *executorRecord {
	rec, ok := c.executors[executorID]
	if !ok {
		rec = &executorRecord{subscribers: make(map[int]chan *executorapi.DesiredExecutorState)}
		c.executors[executorID] = rec
	}
	return rec
}

func (c *Controller) ReportExecutorState(ctx context.Context, req *executorapi.ReportExecutorStateRequest) (*executorapi.ReportExecutorStateResponse, error) {
	state := req.GetExecutorState()
	if state.GetExecutorId() == "" {
		return nil, status.Error(codes.InvalidArgument, "executor_state.executor_id is required")
	}

	c.lock.Lock()
	defer c.lock.Unlock()
	if c.reportErr != nil {
		return nil, c.reportErr
	}

	hash := state.GetStateHash()
	if hash == "" {
		hash = state.ComputeStateHash()
	}
	rec := c.record(state.GetExecutorId())
	rec.reports++
	if hash != rec.lastHash {
		rec.effectiveUpdates++
		rec.lastHash = hash
		logger.G(ctx).WithField(logger.ExecutorIDField, state.GetExecutorId()).WithField("stateHash", hash).Debug("Executor state changed")
	}
	rec.last = state.Clone()
	return &executorapi.ReportExecutorStateResponse{}, nil
}

func (c *Controller) GetDesiredExecutorStates(req *executorapi.GetDesiredExecutorStatesRequest, stream executorapi.ExecutorAPI_GetDesiredExecutorStatesServer) error {
	executorID := req.GetExecutorId()
	if executorID == "" {
		return status.Error(codes.InvalidArgument, "executor_id is required")
	}

	ch := make(chan *executorapi.DesiredExecutorState, subscriberBuffer)
	c.lock.Lock()
	rec := c.record(executorID)
	id := rec.nextSubscriber
	rec.nextSubscriber++
	rec.subscribers[id] = ch
	current := rec.lastDesired
	c.lock.Unlock()

	defer func() {
		c.lock.Lock()
		delete(rec.subscribers, id)
		c.lock.Unlock()
	}()

	if current != nil {
		if err := stream.Send(current); err != nil {
			return err
		}
	}

	for {
		select {
		case <-stream.Context().Done():
			return nil
		case desired, ok := <-ch:
			if !ok {
				return status.Error(codes.Unavailable, "stream disconnected by controller")
			}
			if err := stream.Send(desired); err != nil {
				return err
			}
		}
	}
}

func (c *Controller) ReportTaskOutcome(ctx context.Context, req *executorapi.ReportTaskOutcomeRequest) (*executorapi.ReportTaskOutcomeResponse, error) {
	if req.GetTaskId() == "" {
		return nil, status.Error(codes.InvalidArgument, "task_id is required")
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	c.outcomes = append(c.outcomes, req)
	return &executorapi.ReportTaskOutcomeResponse{}, nil
}

// PushDesiredState sends a desired state to every open stream of the executor
// and remembers it for streams opened later.
func (c *Controller) PushDesiredState(executorID string, desired *executorapi.DesiredExecutorState) {
	c.lock.Lock()
	defer c.lock.Unlock()
	rec := c.record(executorID)
	rec.lastDesired = desired.Clone()
	for _, ch := range rec.subscribers {
		select {
		case ch <- desired.Clone():
		default:
		}
	}
}

// DisconnectStreams ends every open stream of the executor with UNAVAILABLE.
func (c *Controller) DisconnectStreams(executorID string) {
	c.lock.Lock()
	defer c.lock.Unlock()
	rec := c.record(executorID)
	for id, ch := range rec.subscribers {
		close(ch)
		delete(rec.subscribers, id)
	}
}

// FailReports makes ReportExecutorState return err until called again with nil.
func (c *Controller) FailReports(err error) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.reportErr = err
}

func (c *Controller) Stats(executorID string) ExecutorStats {
	c.lock.Lock()
	defer c.lock.Unlock()
	rec, ok := c.executors[executorID]
	if !ok {
		return ExecutorStats{}
	}
	return ExecutorStats{
		Reports:          rec.reports,
		EffectiveUpdates: rec.effectiveUpdates,
		Last:             rec.last.Clone(),
		Streams:          len(rec.subscribers),
	}
}

func (c *Controller) Outcomes() []*executorapi.ReportTaskOutcomeRequest {
	c.lock.Lock()
	defer c.lock.Unlock()
	return append([]*executorapi.ReportTaskOutcomeRequest(nil), c.outcomes...)
}

// WaitForState polls until the executor's last reported state satisfies cond.
func (c *Controller) WaitForState(ctx context.Context, executorID string, cond func(*executorapi.ExecutorState) bool) (*executorapi.ExecutorState, error) {
	var found *executorapi.ExecutorState
	err := wait.PollImmediateUntil(10*time.Millisecond, func() (bool, error) {
		last := c.Stats(executorID).Last
		if last != nil && cond(last) {
			found = last
			return true, nil
		}
		return false, nil
	}, ctx.Done())
	return found, err
}

// WaitForStreams polls until the executor has at least n open streams.
func (c *Controller) WaitForStreams(ctx context.Context, executorID string, n int) error {
	return wait.PollImmediateUntil(10*time.Millisecond, func() (bool, error) {
		return c.Stats(executorID).Streams >= n, nil
	}, ctx.Done())
}
