package mock

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Netflix/titus-fn-executor/api/executorapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

func startLocal(t *testing.T) (*Controller, *Local, context.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	c := New()
	local, err := c.ServeLocal(ctx)
	require.NoError(t, err)
	t.Cleanup(local.Close)
	return c, local, ctx
}

func executorState(id string, labels map[string]string) *executorapi.ExecutorState {
	status := executorapi.ExecutorStatus_EXECUTOR_STATUS_RUNNING
	return (&executorapi.ExecutorState{
		ExecutorId: proto.String(id),
		Hostname:   proto.String("host-1"),
		Status:     &status,
		Labels:     labels,
	}).WithStateHash()
}

func TestDuplicateReportsAreNotEffectiveUpdates(t *testing.T) {
	c, local, ctx := startLocal(t)

	state := executorState("executor-1", map[string]string{"zone": "a"})
	for i := 0; i < 3; i++ {
		_, err := local.Client.ReportExecutorState(ctx, &executorapi.ReportExecutorStateRequest{ExecutorState: state})
		require.NoError(t, err)
	}

	changed := executorState("executor-1", map[string]string{"zone": "b"})
	_, err := local.Client.ReportExecutorState(ctx, &executorapi.ReportExecutorStateRequest{ExecutorState: changed})
	require.NoError(t, err)

	stats := c.Stats("executor-1")
	assert.Equal(t, 4, stats.Reports)
	assert.Equal(t, 2, stats.EffectiveUpdates)
	assert.Equal(t, "b", stats.Last.Labels["zone"])
}

func TestReportWithoutExecutorID(t *testing.T) {
	_, local, ctx := startLocal(t)

	_, err := local.Client.ReportExecutorState(ctx, &executorapi.ReportExecutorStateRequest{ExecutorState: &executorapi.ExecutorState{}})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestReportFailureInjection(t *testing.T) {
	c, local, ctx := startLocal(t)
	c.FailReports(status.Error(codes.Unavailable, "controller overloaded"))

	_, err := local.Client.ReportExecutorState(ctx, &executorapi.ReportExecutorStateRequest{ExecutorState: executorState("executor-1", nil)})
	assert.Equal(t, codes.Unavailable, status.Code(err))

	c.FailReports(nil)
	_, err = local.Client.ReportExecutorState(ctx, &executorapi.ReportExecutorStateRequest{ExecutorState: executorState("executor-1", nil)})
	assert.NoError(t, err)
	assert.Equal(t, 1, c.Stats("executor-1").Reports)
}

func TestStreamReceivesCurrentAndPushedStates(t *testing.T) {
	c, local, ctx := startLocal(t)
	c.PushDesiredState("executor-1", &executorapi.DesiredExecutorState{Clock: proto.Uint64(1)})

	stream, err := local.Client.GetDesiredExecutorStates(ctx, &executorapi.GetDesiredExecutorStatesRequest{ExecutorId: proto.String("executor-1")})
	require.NoError(t, err)

	first, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), first.GetClock())

	require.NoError(t, c.WaitForStreams(ctx, "executor-1", 1))
	c.PushDesiredState("executor-1", &executorapi.DesiredExecutorState{
		Clock: proto.Uint64(2),
		FunctionExecutors: []*executorapi.FunctionExecutorDescription{
			{Id: proto.String("fe-1")},
		},
	})
	second, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), second.GetClock())
	require.Len(t, second.FunctionExecutors, 1)
	assert.Equal(t, "fe-1", second.FunctionExecutors[0].GetId())

	c.DisconnectStreams("executor-1")
	_, err = stream.Recv()
	assert.Equal(t, codes.Unavailable, status.Code(err))
}

func TestReportTaskOutcomeRecorded(t *testing.T) {
	c, local, ctx := startLocal(t)
	outcome := executorapi.TaskOutcome_TASK_OUTCOME_SUCCESS
	_, err := local.Client.ReportTaskOutcome(ctx, &executorapi.ReportTaskOutcomeRequest{
		TaskId:  proto.String("task-1"),
		Outcome: &outcome,
	})
	require.NoError(t, err)

	outcomes := c.Outcomes()
	require.Len(t, outcomes, 1)
	assert.Equal(t, executorapi.TaskOutcome_TASK_OUTCOME_SUCCESS, outcomes[0].GetOutcome())
}

func TestIngestParsesMultipart(t *testing.T) {
	c := New()
	server := httptest.NewServer(c.Router())
	defer server.Close()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField(executorapi.TaskResultField, `{"task_id":"task-1","outcome":"success"}`))
	part, err := w.CreateFormFile(executorapi.StdoutField, "3f1c")
	require.NoError(t, err)
	_, err = part.Write([]byte("done"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	resp, err := http.Post(server.URL+executorapi.IngestFilesPath, w.FormDataContentType(), body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ingested := c.Ingested()
	require.Len(t, ingested, 1)
	assert.Equal(t, "task-1", ingested[0].TaskResult.GetTaskID())
	require.Len(t, ingested[0].Files, 1)
	assert.Equal(t, executorapi.StdoutField, ingested[0].Files[0].Field)
	assert.Equal(t, []byte("done"), ingested[0].Files[0].Data)
}

func TestIngestRejectsPlainForm(t *testing.T) {
	c := New()
	server := httptest.NewServer(c.Router())
	defer server.Close()

	envelope, err := json.Marshal(executorapi.TaskResult{TaskID: proto.String("task-1")})
	require.NoError(t, err)
	resp, err := http.Post(server.URL+executorapi.IngestFilesPath, "application/x-www-form-urlencoded",
		bytes.NewBufferString("task_result="+string(envelope)))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, c.Ingested())
}

func TestIngestFailureInjection(t *testing.T) {
	c := New()
	c.FailIngest(http.StatusInternalServerError, "disk full")
	server := httptest.NewServer(c.Router())
	defer server.Close()

	resp, err := http.Post(server.URL+executorapi.IngestFilesPath, "multipart/form-data; boundary=x", bytes.NewBufferString("--x--\r\n"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
