package mock

import (
	"fmt"

	"github.com/Netflix/titus-fn-executor/api/executorapi"
)

// MatchTask matches a *executorapi.TaskAllocation by task and function executor id.
type MatchTask struct {
	TaskID             string
	FunctionExecutorID string
}

func (e MatchTask) Matches(x interface{}) bool {
	alloc, ok := x.(*executorapi.TaskAllocation)
	if !ok {
		return false
	}
	return alloc.GetTask().GetId() == e.TaskID && alloc.GetFunctionExecutorId() == e.FunctionExecutorID
}

func (e MatchTask) String() string {
	return fmt.Sprintf("{Task: %s FunctionExecutor: %s}", e.TaskID, e.FunctionExecutorID)
}

// MatchFunctionExecutor matches a *executorapi.FunctionExecutorDescription by id.
type MatchFunctionExecutor struct {
	ID string
}

func (e MatchFunctionExecutor) Matches(x interface{}) bool {
	desc, ok := x.(*executorapi.FunctionExecutorDescription)
	return ok && desc.GetId() == e.ID
}

func (e MatchFunctionExecutor) String() string {
	return fmt.Sprintf("{FunctionExecutor: %s}", e.ID)
}
