package executorapi

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative,require_unimplemented_servers=false executor_api.proto

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"

	"google.golang.org/protobuf/proto"
)

// ComputeStateHash returns the hex sha256 of the deterministic encoding of the
// state with state_hash cleared. Two snapshots with equal content hash equally
// regardless of label insertion order.
func (x *ExecutorState) ComputeStateHash() string {
	c := x.Clone()
	if c == nil {
		c = &ExecutorState{}
	}
	c.StateHash = nil
	b, err := proto.MarshalOptions{Deterministic: true}.Marshal(c)
	if err != nil {
		// Only invalid UTF-8 in a string field gets here.
		panic(err)
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// WithStateHash returns a copy of the state carrying its content hash.
func (x *ExecutorState) WithStateHash() *ExecutorState {
	c := x.Clone()
	if c == nil {
		c = &ExecutorState{}
	}
	c.StateHash = proto.String(c.ComputeStateHash())
	return c
}

func (x *ExecutorState) Clone() *ExecutorState {
	if x == nil {
		return nil
	}
	return proto.Clone(x).(*ExecutorState)
}

func (x *DesiredExecutorState) Clone() *DesiredExecutorState {
	if x == nil {
		return nil
	}
	return proto.Clone(x).(*DesiredExecutorState)
}

func (x *FunctionExecutorDescription) Clone() *FunctionExecutorDescription {
	if x == nil {
		return nil
	}
	return proto.Clone(x).(*FunctionExecutorDescription)
}

func (x *TaskAllocation) Clone() *TaskAllocation {
	if x == nil {
		return nil
	}
	return proto.Clone(x).(*TaskAllocation)
}

func (x *HostResources) Clone() *HostResources {
	if x == nil {
		return nil
	}
	return proto.Clone(x).(*HostResources)
}

// Matches reports whether the function is permitted. Unset fields are wildcards.
func (x *AllowedFunction) Matches(namespace, graphName, functionName, graphVersion string) bool {
	if x == nil {
		return true
	}
	return matchOptional(x.Namespace, namespace) &&
		matchOptional(x.GraphName, graphName) &&
		matchOptional(x.FunctionName, functionName) &&
		matchOptional(x.GraphVersion, graphVersion)
}

func matchOptional(want *string, got string) bool {
	return want == nil || *want == got
}

// FunctionAllowed is true when the list is empty or any entry matches.
func FunctionAllowed(allowed []*AllowedFunction, fe *FunctionExecutorDescription) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if a.Matches(fe.GetNamespace(), fe.GetGraphName(), fe.GetFunctionName(), fe.GetGraphVersion()) {
			return true
		}
	}
	return false
}

// IsKnown is false for the UNKNOWN variant and for numbers outside the vocabulary.
func (x GPUModel) IsKnown() bool {
	_, ok := GPUModel_name[int32(x)]
	return ok && x != GPUModel_GPU_MODEL_UNKNOWN
}

func (x TaskOutcome) IsKnown() bool {
	_, ok := TaskOutcome_name[int32(x)]
	return ok && x != TaskOutcome_TASK_OUTCOME_UNKNOWN
}

func (x OutputEncoding) IsKnown() bool {
	_, ok := OutputEncoding_name[int32(x)]
	return ok && x != OutputEncoding_OUTPUT_ENCODING_UNKNOWN
}

// ParseExecutorFlavor accepts the wire name, its number, or the short form ("oss", "platform").
func ParseExecutorFlavor(s string) (ExecutorFlavor, error) {
	switch s {
	case "oss", "OSS":
		return ExecutorFlavor_EXECUTOR_FLAVOR_OSS, nil
	case "platform", "PLATFORM":
		return ExecutorFlavor_EXECUTOR_FLAVOR_PLATFORM, nil
	}
	if v, ok := ExecutorFlavor_value[s]; ok {
		return ExecutorFlavor(v), nil
	}
	if v, err := strconv.ParseInt(s, 10, 32); err == nil {
		return ExecutorFlavor(v), nil
	}
	return ExecutorFlavor_EXECUTOR_FLAVOR_UNKNOWN, fmt.Errorf("unknown executor flavor %q", s)
}
