package outcome

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Netflix/titus-fn-executor/api/executorapi"
	"github.com/Netflix/titus-fn-executor/executor/fnerrors"
	"google.golang.org/protobuf/proto"
)

const (
	reportMetric        = "titus.fnexecutor.taskOutcomeReport"
	reportLatencyMetric = "titus.fnexecutor.taskOutcomeReportLatency"
	reportBytesMetric   = "titus.fnexecutor.taskOutcomeReportBytes"
)

// StdContentType is used for captured stdout and stderr.
const StdContentType = "application/octet-stream"

// Output is one value produced by a function. Bytes wins over String when set.
type Output struct {
	Bytes       []byte
	String      *string
	ContentType string
}

func (o Output) payload() []byte {
	if o.Bytes != nil || o.String == nil {
		return o.Bytes
	}
	return []byte(*o.String)
}

// CompletedTask is everything known about a task once its execution concluded.
type CompletedTask struct {
	Task    *executorapi.Task
	Outcome executorapi.TaskOutcome
	Outputs []Output
	Stdout  string
	Stderr  string
	// Router is set for functions that pick the next edges of the graph.
	Router  *executorapi.RouterOutput
	Reducer *bool
	// ReportingRetries counts earlier failed attempts to report this task. Only logged.
	ReportingRetries int
}

// Reporter sends the outcome of a completed task to the controller. One call is
// one attempt; retrying is up to the caller.
type Reporter interface {
	Report(ctx context.Context, task *CompletedTask) error
}

// UploadError is returned when the controller answered with a non-2xx status.
type UploadError struct {
	StatusCode int
	Body       string
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("ingest failed with status %d: %s", e.StatusCode, e.Body)
}

func (e *UploadError) HTTPStatusCode() int {
	return e.StatusCode
}

// classify marks client errors other than 429 as persistent, and everything else as retryable.
func classify(err *UploadError) error {
	if err.StatusCode >= 400 && err.StatusCode < 500 && err.StatusCode != http.StatusTooManyRequests {
		return fnerrors.NewPersistentError(err)
	}
	return fnerrors.NewRetryable(err)
}

// Summary counts what a report carries, for logs and metrics.
type Summary struct {
	OutputCount int
	OutputBytes int
	StdoutCount int
	StdoutBytes int
	StderrCount int
	StderrBytes int
}

func (s Summary) TotalFiles() int {
	return s.OutputCount + s.StdoutCount + s.StderrCount
}

func (s Summary) TotalBytes() int {
	return s.OutputBytes + s.StdoutBytes + s.StderrBytes
}

type part struct {
	field       string
	contentType string
	data        []byte
}

// parts flattens outputs and non-empty stdout and stderr, in that order.
func parts(task *CompletedTask) ([]part, Summary) {
	var (
		ret     []part
		summary Summary
	)
	for _, output := range task.Outputs {
		data := output.payload()
		ret = append(ret, part{field: executorapi.NodeOutputsField, contentType: output.ContentType, data: data})
		summary.OutputCount++
		summary.OutputBytes += len(data)
	}
	if task.Stdout != "" {
		ret = append(ret, part{field: executorapi.StdoutField, contentType: StdContentType, data: []byte(task.Stdout)})
		summary.StdoutCount++
		summary.StdoutBytes += len(task.Stdout)
	}
	if task.Stderr != "" {
		ret = append(ret, part{field: executorapi.StderrField, contentType: StdContentType, data: []byte(task.Stderr)})
		summary.StderrCount++
		summary.StderrBytes += len(task.Stderr)
	}
	return ret, summary
}

// Summarize returns the counts a report of task would carry.
func Summarize(task *CompletedTask) Summary {
	_, summary := parts(task)
	return summary
}

// Envelope builds the task_result metadata. Task fields are copied with their
// presence, so a field that was set to "" is still encoded.
func Envelope(executorID string, task *CompletedTask) *executorapi.TaskResult {
	t := task.Task
	if t == nil {
		t = &executorapi.Task{}
	}
	result := &executorapi.TaskResult{
		TaskID:       copyString(t.Id),
		Namespace:    copyString(t.Namespace),
		ComputeGraph: copyString(t.GraphName),
		ComputeFn:    copyString(t.FunctionName),
		InvocationID: copyString(t.GraphInvocationId),
		Reducer:      task.Reducer,
	}
	if executorID != "" {
		result.ExecutorID = proto.String(executorID)
	}
	if name := executorapi.OutcomeName(task.Outcome); name != "" {
		result.Outcome = proto.String(name)
	}
	if task.Router != nil {
		result.RouterOutput = &executorapi.RouterOutput{Edges: append([]string{}, task.Router.Edges...)}
	}
	return result
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	return proto.String(*s)
}
