package state

import (
	"fmt"
	"sync"
	"testing"

	"github.com/Netflix/titus-fn-executor/api/executorapi"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func feDescription(id string, cpus uint32, mem uint64) *executorapi.FunctionExecutorDescription {
	return &executorapi.FunctionExecutorDescription{
		Id:           proto.String(id),
		Namespace:    proto.String("ns"),
		GraphName:    proto.String("graph"),
		FunctionName: proto.String("fn"),
		ResourceLimits: &executorapi.HostResources{
			CpuCount:    proto.Uint32(cpus),
			MemoryBytes: proto.Uint64(mem),
		},
	}
}

func allocation(taskID, feID string) *executorapi.TaskAllocation {
	return &executorapi.TaskAllocation{
		FunctionExecutorId: proto.String(feID),
		Task:               &executorapi.Task{Id: proto.String(taskID)},
	}
}

func testInfo() StaticInfo {
	return StaticInfo{
		ExecutorID: "executor-1",
		Hostname:   "host",
		Version:    "test",
		Flavor:     executorapi.ExecutorFlavor_EXECUTOR_FLAVOR_OSS,
		Labels:     map[string]string{"os": "linux"},
		TotalResources: &executorapi.HostResources{
			CpuCount:    proto.Uint32(8),
			MemoryBytes: proto.Uint64(1000),
		},
	}
}

func TestTransitions(t *testing.T) {
	fixtures := []struct {
		from, to executorapi.FunctionExecutorStatus
		valid    bool
	}{
		{executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STARTING_UP, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_IDLE, true},
		{executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_IDLE, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_RUNNING_TASK, true},
		{executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_RUNNING_TASK, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_IDLE, true},
		{executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_UNHEALTHY, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_IDLE, true},
		{executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_IDLE, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STOPPING, true},
		{executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STARTING_UP, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STARTUP_FAILED_PLATFORM_ERROR, true},
		{executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STOPPING, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STOPPED, true},
		{executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_IDLE, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STARTING_UP, false},
		{executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STOPPED, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_IDLE, false},
		{executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STARTUP_FAILED_CUSTOMER_ERROR, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_IDLE, false},
		{executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_IDLE, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STARTUP_FAILED_CUSTOMER_ERROR, false},
		{executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_IDLE, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_UNKNOWN, false},
	}
	for _, fixture := range fixtures {
		assert.Equal(t, fixture.valid, ValidTransition(fixture.from, fixture.to), "%s -> %s", fixture.from, fixture.to)
	}
}

func TestStoreRejectsBackwardsTransition(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddFunctionExecutor(feDescription("fe-1", 1, 1)))
	require.NoError(t, s.SetFunctionExecutorStatus("fe-1", executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_IDLE, ""))

	err := s.SetFunctionExecutorStatus("fe-1", executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STARTING_UP, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, &InvalidTransitionError{}))

	fe, ok := s.FunctionExecutor("fe-1")
	require.True(t, ok)
	assert.Equal(t, executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_IDLE, fe.Status)

	err = s.SetFunctionExecutorStatus("missing", executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_IDLE, "")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(s.AddFunctionExecutor(feDescription("fe-1", 1, 1)), ErrAlreadyExists))
}

func TestSnapshot(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddFunctionExecutor(feDescription("fe-b", 2, 300)))
	require.NoError(t, s.AddFunctionExecutor(feDescription("fe-a", 3, 900)))
	require.NoError(t, s.AddFunctionExecutor(feDescription("fe-c", 4, 100)))
	require.NoError(t, s.SetFunctionExecutorStatus("fe-c", executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STARTUP_FAILED_PLATFORM_ERROR, "no image"))

	snap := s.Snapshot(testInfo(), executorapi.ExecutorStatus_EXECUTOR_STATUS_RUNNING)

	require.Len(t, snap.FunctionExecutorStates, 3)
	assert.Equal(t, "fe-a", snap.FunctionExecutorStates[0].GetDescription().GetId())
	assert.Equal(t, "fe-b", snap.FunctionExecutorStates[1].GetDescription().GetId())
	assert.Equal(t, "no image", snap.FunctionExecutorStates[2].GetStatusMessage())

	// fe-c failed to start, so it holds no resources; memory floors at zero.
	assert.Equal(t, uint32(3), snap.FreeResources.GetCpuCount())
	assert.Equal(t, uint64(0), snap.FreeResources.GetMemoryBytes())
	assert.Nil(t, snap.FreeResources.DiskBytes, "unknown totals stay unknown")

	assert.Equal(t, snap.ComputeStateHash(), snap.GetStateHash())
	assert.Equal(t, executorapi.ExecutorStatus_EXECUTOR_STATUS_RUNNING, snap.GetStatus())
}

func TestSnapshotHashStable(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddFunctionExecutor(feDescription("fe-1", 1, 1)))
	first := s.Snapshot(testInfo(), executorapi.ExecutorStatus_EXECUTOR_STATUS_RUNNING)
	second := s.Snapshot(testInfo(), executorapi.ExecutorStatus_EXECUTOR_STATUS_RUNNING)
	assert.Equal(t, first.GetStateHash(), second.GetStateHash())

	require.NoError(t, s.SetFunctionExecutorStatus("fe-1", executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_IDLE, ""))
	third := s.Snapshot(testInfo(), executorapi.ExecutorStatus_EXECUTOR_STATUS_RUNNING)
	assert.NotEqual(t, first.GetStateHash(), third.GetStateHash())
}

func TestAllocations(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.PutAllocation(allocation("t2", "fe-1"), AllocationPending))
	require.NoError(t, s.PutAllocation(allocation("t1", "fe-1"), AllocationPending))
	require.NoError(t, s.PutAllocation(allocation("t3", "fe-2"), AllocationPending))
	require.NoError(t, s.SetAllocationPhase("t1", AllocationRunning))

	allocs := s.AllocationsFor("fe-1")
	require.Len(t, allocs, 2)
	assert.Equal(t, "t1", allocs[0].TaskID())
	assert.Equal(t, AllocationRunning, allocs[0].Phase)
	assert.Equal(t, AllocationPending, allocs[1].Phase)

	s.RemoveAllocation("t1")
	_, ok := s.Allocation("t1")
	assert.False(t, ok)
	assert.True(t, errors.Is(s.SetAllocationPhase("t1", AllocationRunning), ErrNotFound))
}

func TestReadersGetCopies(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddFunctionExecutor(feDescription("fe-1", 1, 1)))
	fe, _ := s.FunctionExecutor("fe-1")
	fe.Description.Id = proto.String("mutated")
	fe2, _ := s.FunctionExecutor("fe-1")
	assert.Equal(t, "fe-1", fe2.Description.GetId())
}

func TestConcurrentSnapshots(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = s.Snapshot(testInfo(), executorapi.ExecutorStatus_EXECUTOR_STATUS_RUNNING)
			}
		}()
	}
	for j := 0; j < 100; j++ {
		id := fmt.Sprintf("fe-%d", j)
		require.NoError(t, s.AddFunctionExecutor(feDescription(id, 1, 1)))
		require.NoError(t, s.PutAllocation(allocation("t", id), AllocationPending))
		s.RemoveAllocation("t")
	}
	wg.Wait()
}
