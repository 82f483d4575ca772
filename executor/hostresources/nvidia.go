package hostresources

import (
	"strconv"
	"strings"

	"github.com/Netflix/titus-fn-executor/api/executorapi"
	"google.golang.org/protobuf/proto"
)

// Boards with at least this much memory (MiB) are the 80GB variants.
const eightyGBThresholdMiB = 70000

// ParseGPUs reads `nvidia-smi --query-gpu=name,memory.total --format=csv,noheader,nounits`
// output. Mixed or unrecognised models are reported as unknown; no GPUs means nil.
func ParseGPUs(out []byte) *executorapi.GPUResources {
	var (
		count uint32
		model executorapi.GPUModel
	)
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		memMiB := 0
		if len(fields) > 1 {
			memMiB, _ = strconv.Atoi(strings.TrimSpace(fields[1]))
		}
		lineModel := ParseModel(strings.TrimSpace(fields[0]), memMiB)
		if count == 0 {
			model = lineModel
		} else if lineModel != model {
			model = executorapi.GPUModel_GPU_MODEL_UNKNOWN
		}
		count++
	}
	if count == 0 {
		return nil
	}
	ret := &executorapi.GPUResources{Count: proto.Uint32(count)}
	if model != executorapi.GPUModel_GPU_MODEL_UNKNOWN {
		ret.Model = &model
	}
	return ret
}

// ParseModel maps an nvidia-smi product name onto a GPU model.
func ParseModel(name string, memMiB int) executorapi.GPUModel {
	n := strings.ToUpper(name)
	large := memMiB >= eightyGBThresholdMiB || strings.Contains(n, "80GB")
	switch {
	case strings.Contains(n, "H100"):
		if strings.Contains(n, "PCIE") {
			return executorapi.GPUModel_GPU_MODEL_NVIDIA_H100_PCI_80GB
		}
		return executorapi.GPUModel_GPU_MODEL_NVIDIA_H100_SXM5_80GB
	case strings.Contains(n, "A100"):
		switch {
		case strings.Contains(n, "PCIE") && !large:
			return executorapi.GPUModel_GPU_MODEL_NVIDIA_A100_PCI_40GB
		case strings.Contains(n, "PCIE"):
			return executorapi.GPUModel_GPU_MODEL_UNKNOWN
		case large:
			return executorapi.GPUModel_GPU_MODEL_NVIDIA_A100_SXM4_80GB
		}
		return executorapi.GPUModel_GPU_MODEL_NVIDIA_A100_SXM4_40GB
	case strings.Contains(n, "A6000"):
		return executorapi.GPUModel_GPU_MODEL_NVIDIA_A6000_48GB
	case strings.Contains(n, "A10") && !strings.Contains(n, "A100"):
		return executorapi.GPUModel_GPU_MODEL_NVIDIA_A10_24GB
	case strings.Contains(n, "V100"):
		return executorapi.GPUModel_GPU_MODEL_NVIDIA_TESLA_V100_16GB
	case strings.Contains(n, "T4"):
		return executorapi.GPUModel_GPU_MODEL_NVIDIA_TESLA_T4_16GB
	case strings.Contains(n, "RTX 6000"):
		return executorapi.GPUModel_GPU_MODEL_NVIDIA_RTX_6000_24GB
	}
	return executorapi.GPUModel_GPU_MODEL_UNKNOWN
}
