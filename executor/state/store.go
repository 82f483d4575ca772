package state

import (
	"sort"
	"sync"

	"github.com/Netflix/titus-fn-executor/api/executorapi"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

// AllocationPhase tracks how far the executor got with an allocation.
type AllocationPhase int

const (
	// AllocationPending allocations are known but not handed to a runner yet.
	AllocationPending AllocationPhase = iota
	// AllocationRunning allocations have been dispatched and will run to completion.
	AllocationRunning
)

func (p AllocationPhase) String() string {
	switch p {
	case AllocationPending:
		return "pending"
	case AllocationRunning:
		return "running"
	}
	return "unknown"
}

// StaticInfo is the part of the executor state that never changes at runtime.
type StaticInfo struct {
	ExecutorID       string
	Hostname         string
	Version          string
	Flavor           executorapi.ExecutorFlavor
	DevelopmentMode  bool
	Labels           map[string]string
	AllowedFunctions []*executorapi.AllowedFunction
	TotalResources   *executorapi.HostResources
}

type FunctionExecutor struct {
	Description   *executorapi.FunctionExecutorDescription
	Status        executorapi.FunctionExecutorStatus
	StatusMessage string
}

type Allocation struct {
	Allocation *executorapi.TaskAllocation
	Phase      AllocationPhase
}

func (a Allocation) TaskID() string {
	return a.Allocation.GetTask().GetId()
}

func (a Allocation) FunctionExecutorID() string {
	return a.Allocation.GetFunctionExecutorId()
}

// Store is the executor's view of its function executors and task allocations.
// It has a single writer (the reconciler); readers get copies.
type Store struct {
	lock              sync.RWMutex
	functionExecutors map[string]*FunctionExecutor
	allocations       map[string]*Allocation
}

func NewStore() *Store {
	return &Store{
		functionExecutors: make(map[string]*FunctionExecutor),
		allocations:       make(map[string]*Allocation),
	}
}

// AddFunctionExecutor records a new function executor in STARTING_UP.
func (s *Store) AddFunctionExecutor(desc *executorapi.FunctionExecutorDescription) error {
	id := desc.GetId()
	if id == "" {
		return errors.New("function executor description has no id")
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	if _, ok := s.functionExecutors[id]; ok {
		return errors.Wrapf(ErrAlreadyExists, "function executor %s", id)
	}
	s.functionExecutors[id] = &FunctionExecutor{
		Description: desc.Clone(),
		Status:      executorapi.FunctionExecutorStatus_FUNCTION_EXECUTOR_STATUS_STARTING_UP,
	}
	return nil
}

// SetFunctionExecutorStatus applies a status change, rejecting backwards transitions.
func (s *Store) SetFunctionExecutorStatus(id string, status executorapi.FunctionExecutorStatus, message string) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	fe, ok := s.functionExecutors[id]
	if !ok {
		return errors.Wrapf(ErrNotFound, "function executor %s", id)
	}
	if !ValidTransition(fe.Status, status) {
		return &InvalidTransitionError{ID: id, From: fe.Status, To: status}
	}
	fe.Status = status
	fe.StatusMessage = message
	return nil
}

func (s *Store) RemoveFunctionExecutor(id string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.functionExecutors, id)
}

func (s *Store) FunctionExecutor(id string) (FunctionExecutor, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	fe, ok := s.functionExecutors[id]
	if !ok {
		return FunctionExecutor{}, false
	}
	return copyFunctionExecutor(fe), true
}

// FunctionExecutors returns copies ordered by id.
func (s *Store) FunctionExecutors() []FunctionExecutor {
	s.lock.RLock()
	defer s.lock.RUnlock()
	ret := make([]FunctionExecutor, 0, len(s.functionExecutors))
	for _, fe := range s.functionExecutors {
		ret = append(ret, copyFunctionExecutor(fe))
	}
	sort.Slice(ret, func(i, j int) bool {
		return ret[i].Description.GetId() < ret[j].Description.GetId()
	})
	return ret
}

func copyFunctionExecutor(fe *FunctionExecutor) FunctionExecutor {
	return FunctionExecutor{
		Description:   fe.Description.Clone(),
		Status:        fe.Status,
		StatusMessage: fe.StatusMessage,
	}
}

// PutAllocation records or replaces the allocation for its task.
func (s *Store) PutAllocation(alloc *executorapi.TaskAllocation, phase AllocationPhase) error {
	taskID := alloc.GetTask().GetId()
	if taskID == "" {
		return errors.New("task allocation has no task id")
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.allocations[taskID] = &Allocation{
		Allocation: alloc.Clone(),
		Phase:      phase,
	}
	return nil
}

func (s *Store) SetAllocationPhase(taskID string, phase AllocationPhase) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	alloc, ok := s.allocations[taskID]
	if !ok {
		return errors.Wrapf(ErrNotFound, "allocation for task %s", taskID)
	}
	alloc.Phase = phase
	return nil
}

func (s *Store) RemoveAllocation(taskID string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.allocations, taskID)
}

func (s *Store) Allocation(taskID string) (Allocation, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	alloc, ok := s.allocations[taskID]
	if !ok {
		return Allocation{}, false
	}
	return Allocation{Allocation: alloc.Allocation.Clone(), Phase: alloc.Phase}, true
}

// Allocations returns copies ordered by task id.
func (s *Store) Allocations() []Allocation {
	s.lock.RLock()
	defer s.lock.RUnlock()
	ret := make([]Allocation, 0, len(s.allocations))
	for _, alloc := range s.allocations {
		ret = append(ret, Allocation{Allocation: alloc.Allocation.Clone(), Phase: alloc.Phase})
	}
	sort.Slice(ret, func(i, j int) bool {
		return ret[i].TaskID() < ret[j].TaskID()
	})
	return ret
}

// AllocationsFor returns the allocations bound to one function executor.
func (s *Store) AllocationsFor(feID string) []Allocation {
	var ret []Allocation
	for _, alloc := range s.Allocations() {
		if alloc.FunctionExecutorID() == feID {
			ret = append(ret, alloc)
		}
	}
	return ret
}

// Snapshot builds a consistent point-in-time ExecutorState carrying its state hash.
func (s *Store) Snapshot(info StaticInfo, status executorapi.ExecutorStatus) *executorapi.ExecutorState {
	s.lock.RLock()
	defer s.lock.RUnlock()

	flavor := info.Flavor
	state := &executorapi.ExecutorState{
		ExecutorId:      proto.String(info.ExecutorID),
		DevelopmentMode: proto.Bool(info.DevelopmentMode),
		Hostname:        proto.String(info.Hostname),
		Flavor:          &flavor,
		Version:         proto.String(info.Version),
		Status:          &status,
	}
	if len(info.Labels) > 0 {
		state.Labels = make(map[string]string, len(info.Labels))
		for k, v := range info.Labels {
			state.Labels[k] = v
		}
	}
	for _, af := range info.AllowedFunctions {
		c := *af
		state.AllowedFunctions = append(state.AllowedFunctions, &c)
	}

	ids := make([]string, 0, len(s.functionExecutors))
	for id := range s.functionExecutors {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var used []*executorapi.HostResources
	for _, id := range ids {
		fe := s.functionExecutors[id]
		feStatus := fe.Status
		feState := &executorapi.FunctionExecutorState{
			Description: fe.Description.Clone(),
			Status:      &feStatus,
		}
		if fe.StatusMessage != "" {
			feState.StatusMessage = proto.String(fe.StatusMessage)
		}
		state.FunctionExecutorStates = append(state.FunctionExecutorStates, feState)
		if !IsTerminal(fe.Status) {
			used = append(used, fe.Description.GetResourceLimits())
		}
	}
	state.FreeResources = FreeResources(info.TotalResources, used)

	return state.WithStateHash()
}

// FreeResources subtracts the limits from the total, flooring at zero. Fields
// unknown in the total stay unknown; unknown limits count as zero.
func FreeResources(total *executorapi.HostResources, used []*executorapi.HostResources) *executorapi.HostResources {
	if total == nil {
		return nil
	}
	free := total.Clone()
	for _, limits := range used {
		if limits == nil {
			continue
		}
		if free.CpuCount != nil {
			free.CpuCount = proto.Uint32(subUint32(*free.CpuCount, limits.GetCpuCount()))
		}
		if free.MemoryBytes != nil {
			free.MemoryBytes = proto.Uint64(subUint64(*free.MemoryBytes, limits.GetMemoryBytes()))
		}
		if free.DiskBytes != nil {
			free.DiskBytes = proto.Uint64(subUint64(*free.DiskBytes, limits.GetDiskBytes()))
		}
		if free.Gpu != nil && free.Gpu.Count != nil {
			free.Gpu.Count = proto.Uint32(subUint32(*free.Gpu.Count, limits.GetGpu().GetCount()))
		}
	}
	return free
}

func subUint32(a, b uint32) uint32 {
	if b > a {
		return 0
	}
	return a - b
}

func subUint64(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}
