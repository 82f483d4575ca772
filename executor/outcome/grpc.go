package outcome

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"mime"
	"time"

	"github.com/Netflix/metrics-client-go/metrics"
	"github.com/Netflix/titus-fn-executor/api/executorapi"
	"github.com/Netflix/titus-fn-executor/executor/fnerrors"
	"github.com/Netflix/titus-fn-executor/logger"
	"github.com/Netflix/titus-fn-executor/tracehelpers"
	"github.com/pkg/errors"
	"go.opencensus.io/trace"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

// PickleContentType marks outputs serialized with Python's pickle.
const PickleContentType = "application/python-pickle"

// GRPCReporter reports outcomes through report_task_outcome. Payloads are not
// uploaded, only their size and hash.
type GRPCReporter struct {
	client     executorapi.ExecutorAPIClient
	executorID string
	metrics    metrics.Reporter
}

func NewGRPCReporter(client executorapi.ExecutorAPIClient, executorID string, m metrics.Reporter) *GRPCReporter {
	return &GRPCReporter{client: client, executorID: executorID, metrics: m}
}

func dataPayload(data []byte) *executorapi.DataPayload {
	sum := sha256.Sum256(data)
	return &executorapi.DataPayload{
		Size:       proto.Uint64(uint64(len(data))),
		Sha256Hash: proto.String(hex.EncodeToString(sum[:])),
	}
}

// OutputEncodingFor maps a declared content type onto the wire encoding.
func OutputEncodingFor(contentType string) executorapi.OutputEncoding {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return executorapi.OutputEncoding_OUTPUT_ENCODING_UNKNOWN
	}
	switch mediaType {
	case "application/json":
		return executorapi.OutputEncoding_OUTPUT_ENCODING_JSON
	case PickleContentType:
		return executorapi.OutputEncoding_OUTPUT_ENCODING_PICKLE
	}
	return executorapi.OutputEncoding_OUTPUT_ENCODING_BINARY
}

// Request builds the structured outcome. The encoding is that of the first output.
func (r *GRPCReporter) Request(task *CompletedTask) *executorapi.ReportTaskOutcomeRequest {
	t := task.Task
	req := &executorapi.ReportTaskOutcomeRequest{
		TaskId:            t.Id,
		Namespace:         t.Namespace,
		GraphName:         t.GraphName,
		FunctionName:      t.FunctionName,
		GraphInvocationId: t.GraphInvocationId,
		InvocationId:      t.GraphInvocationId,
		Reducer:           task.Reducer,
	}
	if r.executorID != "" {
		req.ExecutorId = proto.String(r.executorID)
	}
	if task.Outcome.IsKnown() {
		outcome := task.Outcome
		req.Outcome = &outcome
	}
	if task.Router != nil {
		req.NextFunctions = append([]string{}, task.Router.Edges...)
	}
	for _, output := range task.Outputs {
		req.FnOutputs = append(req.FnOutputs, dataPayload(output.payload()))
	}
	if len(task.Outputs) > 0 {
		encoding := OutputEncodingFor(task.Outputs[0].ContentType)
		req.OutputEncoding = &encoding
	}
	if task.Stdout != "" {
		req.Stdout = dataPayload([]byte(task.Stdout))
	}
	if task.Stderr != "" {
		req.Stderr = dataPayload([]byte(task.Stderr))
	}
	return req
}

func (r *GRPCReporter) Report(ctx context.Context, task *CompletedTask) (retErr error) {
	ctx, span := trace.StartSpan(ctx, "reportTaskOutcome")
	defer span.End()
	defer func() {
		tracehelpers.SetStatus(retErr, span)
		result := "success"
		if retErr != nil {
			result = "failure"
		}
		r.metrics.Counter(reportMetric, 1, map[string]string{"result": result, "transport": "grpc"})
	}()

	ctx = logger.WithField(ctx, logger.TaskIDField, task.Task.GetId())
	summary := Summarize(task)
	logger.G(ctx).WithField("retries", task.ReportingRetries).WithField("output_files", summary.OutputCount).Info("Reporting task outcome")

	start := time.Now()
	_, err := r.client.ReportTaskOutcome(ctx, r.Request(task))
	r.metrics.Timer(reportLatencyMetric, time.Since(start), map[string]string{"transport": "grpc"})
	if err != nil {
		logger.G(ctx).WithError(err).WithField("retries", task.ReportingRetries).Error("Failed to report task outcome")
		if status.Code(err) == codes.InvalidArgument {
			return fnerrors.NewPersistentError(errors.Wrap(err, "controller rejected task outcome"))
		}
		return errors.Wrap(err, "cannot report task outcome")
	}
	return nil
}
