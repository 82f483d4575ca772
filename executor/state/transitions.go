package state

import (
	"fmt"

	"github.com/Netflix/titus-fn-executor/api/executorapi"
)

// Function executor statuses only move forward through these ranks. The live
// statuses share a rank and can move freely among each other.
var statusRank = map[executorapi.FunctionExecutorStatus]int{
	executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STARTING_UP:                   1,
	executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STARTUP_FAILED_CUSTOMER_ERROR: 2,
	executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STARTUP_FAILED_PLATFORM_ERROR: 2,
	executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_IDLE:                          2,
	executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_RUNNING_TASK:                  2,
	executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_UNHEALTHY:                     2,
	executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STOPPING:                      3,
	executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STOPPED:                       4,
	executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_SHUTDOWN:                      5,
}

// IsLive is true for statuses of a function executor that is up, healthy or not.
func IsLive(status executorapi.FunctionExecutorStatus) bool {
	switch status {
	case executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_IDLE,
		executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_RUNNING_TASK,
		executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_UNHEALTHY:
		return true
	}
	return false
}

// CanAcceptTasks is true for statuses allocations may be dispatched to.
func CanAcceptTasks(status executorapi.FunctionExecutorStatus) bool {
	return status == executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_IDLE ||
		status == executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_RUNNING_TASK
}

// IsTerminal is true once the function executor is gone or will never come up.
func IsTerminal(status executorapi.FunctionExecutorStatus) bool {
	switch status {
	case executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STARTUP_FAILED_CUSTOMER_ERROR,
		executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STARTUP_FAILED_PLATFORM_ERROR,
		executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STOPPED,
		executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_SHUTDOWN:
		return true
	}
	return false
}

// ValidTransition reports whether a function executor may move from one status to another.
func ValidTransition(from, to executorapi.FunctionExecutorStatus) bool {
	toRank, ok := statusRank[to]
	if !ok {
		return false
	}
	if from == to {
		return true
	}
	if IsLive(from) && IsLive(to) {
		return true
	}
	return toRank > statusRank[from]
}

type InvalidTransitionError struct {
	ID   string
	From executorapi.FunctionExecutorStatus
	To   executorapi.FunctionExecutorStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("function executor %s cannot move from %s to %s", e.ID, e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool {
	_, ok := target.(*InvalidTransitionError)
	return ok
}
