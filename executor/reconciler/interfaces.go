package reconciler

import (
	"context"

	"github.com/Netflix/titus-fn-executor/api/executorapi"
)

//go:generate mockgen -destination=mock/mock_reconciler.go -package=mock github.com/Netflix/titus-fn-executor/executor/reconciler Manager,Runner,StateReporter

// Manager brings function executors up and down. Both calls may block; the
// reconciler never calls them from its own goroutine.
type Manager interface {
	// Create returns once the function executor can accept tasks.
	Create(ctx context.Context, desc *executorapi.FunctionExecutorDescription) error
	// Destroy returns once the function executor is gone. Destroying an unknown id is not an error.
	Destroy(ctx context.Context, id string) error
}

// Runner executes dispatched allocations and reports each one through TaskFinished.
type Runner interface {
	// Run must not block on the task itself.
	Run(ctx context.Context, fe *executorapi.FunctionExecutorDescription, alloc *executorapi.TaskAllocation) error
	Cancel(taskID string)
}

type StateReporter interface {
	Trigger()
}

// Events is how collaborators report back to the reconciler. Calls never block.
type Events interface {
	FunctionExecutorStatusChanged(id string, status executorapi.FunctionExecutorStatus, message string)
	TaskFinished(taskID string, outcome executorapi.TaskOutcome)
}

type event interface {
	isEvent()
}

type functionExecutorStatusChanged struct {
	id      string
	status  executorapi.FunctionExecutorStatus
	message string
}

type taskFinished struct {
	taskID  string
	outcome executorapi.TaskOutcome
}

func (functionExecutorStatusChanged) isEvent() {}
func (taskFinished) isEvent()                  {}
