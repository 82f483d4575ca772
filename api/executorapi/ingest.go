package executorapi

// The controller also accepts task outcomes over HTTP, as one multipart/form-data
// POST carrying a JSON envelope plus one file part per output blob.
const (
	IngestFilesPath = "/internal/ingest_files"

	TaskResultField  = "task_result"
	NodeOutputsField = "node_outputs"
	StdoutField      = "stdout"
	StderrField      = "stderr"

	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

type RouterOutput struct {
	Edges []string `json:"edges"`
}

// TaskResult is the JSON envelope in the task_result form field. Absent fields
// are omitted; present ones are kept even when empty.
type TaskResult struct {
	TaskID       *string       `json:"task_id,omitempty"`
	Namespace    *string       `json:"namespace,omitempty"`
	ComputeGraph *string       `json:"compute_graph,omitempty"`
	ComputeFn    *string       `json:"compute_fn,omitempty"`
	InvocationID *string       `json:"invocation_id,omitempty"`
	ExecutorID   *string       `json:"executor_id,omitempty"`
	Outcome      *string       `json:"outcome,omitempty"`
	Reducer      *bool         `json:"reducer,omitempty"`
	RouterOutput *RouterOutput `json:"router_output,omitempty"`
}

func (x *TaskResult) GetTaskID() string {
	if x != nil {
		return deref(x.TaskID)
	}
	return ""
}

func (x *TaskResult) GetNamespace() string {
	if x != nil {
		return deref(x.Namespace)
	}
	return ""
}

func (x *TaskResult) GetComputeGraph() string {
	if x != nil {
		return deref(x.ComputeGraph)
	}
	return ""
}

func (x *TaskResult) GetComputeFn() string {
	if x != nil {
		return deref(x.ComputeFn)
	}
	return ""
}

func (x *TaskResult) GetInvocationID() string {
	if x != nil {
		return deref(x.InvocationID)
	}
	return ""
}

func (x *TaskResult) GetExecutorID() string {
	if x != nil {
		return deref(x.ExecutorID)
	}
	return ""
}

func (x *TaskResult) GetOutcome() string {
	if x != nil {
		return deref(x.Outcome)
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// OutcomeName maps a TaskOutcome to its envelope spelling; UNKNOWN has none.
func OutcomeName(outcome TaskOutcome) string {
	switch outcome {
	case TaskOutcome_TASK_OUTCOME_SUCCESS:
		return OutcomeSuccess
	case TaskOutcome_TASK_OUTCOME_FAILURE:
		return OutcomeFailure
	}
	return ""
}
