package fnexecutor

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Netflix/metrics-client-go/metrics"
	"github.com/Netflix/titus-fn-executor/api/executorapi"
	"github.com/Netflix/titus-fn-executor/executor/fnerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

type statusChange struct {
	id      string
	status  executorapi.FunctionExecutorStatus
	message string
}

type fakeEvents struct {
	changes chan statusChange
}

func (f *fakeEvents) FunctionExecutorStatusChanged(id string, status executorapi.FunctionExecutorStatus, message string) {
	f.changes <- statusChange{id: id, status: status, message: message}
}

func (f *fakeEvents) TaskFinished(string, executorapi.TaskOutcome) {}

func newManager(t *testing.T, script string, readyDelay time.Duration) (*ProcessManager, *fakeEvents) {
	t.Helper()
	dir, err := ioutil.TempDir("", "fnexecutor")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	pm, err := NewProcessManager(Config{
		Command:    []string{"/bin/sh", "-c", script},
		StateDir:   dir,
		ExecutorID: "executor-1",
		StopGrace:  200 * time.Millisecond,
		ReadyDelay: readyDelay,
	}, metrics.Discard)
	require.NoError(t, err)
	events := &fakeEvents{changes: make(chan statusChange, 10)}
	pm.SetEvents(events)
	t.Cleanup(func() { _ = pm.Close(context.Background()) })
	return pm, events
}

func description(id string) *executorapi.FunctionExecutorDescription {
	return &executorapi.FunctionExecutorDescription{
		Id:           proto.String(id),
		Namespace:    proto.String("ns"),
		GraphName:    proto.String("graph"),
		FunctionName: proto.String("fn"),
	}
}

func TestNoCommand(t *testing.T) {
	_, err := NewProcessManager(Config{StateDir: t.TempDir()}, metrics.Discard)
	assert.Error(t, err)
}

func TestCreateAndDestroy(t *testing.T) {
	pm, events := newManager(t, `test -f "$FUNCTION_EXECUTOR_SPEC" && exec sleep 30`, 100*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, pm.Create(ctx, description("fe-1")))

	specPath := filepath.Join(pm.config.StateDir, "fe-1.json")
	data, err := ioutil.ReadFile(specPath)
	require.NoError(t, err)
	var spec executorapi.FunctionExecutorDescription
	require.NoError(t, protojson.Unmarshal(data, &spec))
	assert.Equal(t, "fe-1", spec.GetId())
	assert.Equal(t, "graph", spec.GetGraphName())
	assert.Contains(t, string(data), `"graph_name"`)

	require.NoError(t, pm.Destroy(ctx, "fe-1"))
	_, err = os.Stat(specPath)
	assert.True(t, os.IsNotExist(err))
	assert.Empty(t, events.changes, "a requested stop is not an unexpected exit")
}

func TestCreateDuplicate(t *testing.T) {
	pm, _ := newManager(t, "exec sleep 30", 10*time.Millisecond)
	ctx := context.Background()
	require.NoError(t, pm.Create(ctx, description("fe-1")))
	assert.Error(t, pm.Create(ctx, description("fe-1")))
}

func TestExitDuringStartupIsCustomerError(t *testing.T) {
	pm, _ := newManager(t, "exit 2", time.Second)
	err := pm.Create(context.Background(), description("fe-1"))
	require.Error(t, err)
	assert.True(t, fnerrors.IsPersistentError(err))

	_, statErr := os.Stat(filepath.Join(pm.config.StateDir, "fe-1.json"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestSpawnFailureIsPlatformError(t *testing.T) {
	pm, _ := newManager(t, "exec sleep 30", 10*time.Millisecond)
	pm.config.Command = []string{filepath.Join(pm.config.StateDir, "does-not-exist")}

	err := pm.Create(context.Background(), description("fe-1"))
	require.Error(t, err)
	assert.False(t, fnerrors.IsPersistentError(err))
}

func TestUnexpectedExitReportsUnhealthy(t *testing.T) {
	pm, events := newManager(t, "sleep 0.3; exit 1", 50*time.Millisecond)
	require.NoError(t, pm.Create(context.Background(), description("fe-1")))

	select {
	case change := <-events.changes:
		assert.Equal(t, "fe-1", change.id)
		assert.Equal(t, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_UNHEALTHY, change.status)
		assert.Contains(t, change.message, "exit status 1")
	case <-time.After(5 * time.Second):
		t.Fatal("no status change after the process exited")
	}
}

func TestDestroyKillsAfterGrace(t *testing.T) {
	pm, _ := newManager(t, `trap "" TERM; exec sleep 30`, 50*time.Millisecond)
	ctx := context.Background()
	require.NoError(t, pm.Create(ctx, description("fe-1")))

	start := time.Now()
	require.NoError(t, pm.Destroy(ctx, "fe-1"))
	assert.True(t, time.Since(start) >= pm.config.StopGrace)
}

func TestDestroyUnknown(t *testing.T) {
	pm, _ := newManager(t, "exec sleep 30", 10*time.Millisecond)
	assert.NoError(t, pm.Destroy(context.Background(), "nope"))
}

func TestStateDirIsExclusive(t *testing.T) {
	pm, _ := newManager(t, "exec sleep 30", 10*time.Millisecond)

	_, err := lockStateDir(pm.config.StateDir, 0)
	assert.Error(t, err)
}

func TestCloseStopsEverything(t *testing.T) {
	dir := t.TempDir()
	pm, err := NewProcessManager(Config{
		Command:    []string{"/bin/sh", "-c", "exec sleep 30"},
		StateDir:   dir,
		StopGrace:  time.Second,
		ReadyDelay: 10 * time.Millisecond,
	}, metrics.Discard)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, pm.Create(ctx, description("fe-1")))
	require.NoError(t, pm.Create(ctx, description("fe-2")))

	require.NoError(t, pm.Close(ctx))
	assert.Empty(t, pm.processes)

	lock, err := lockStateDir(dir, 0)
	require.NoError(t, err)
	assert.NoError(t, lock.Unlock())
}
