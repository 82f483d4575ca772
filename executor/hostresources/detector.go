// Package hostresources discovers the capacity an executor offers to function executors.
package hostresources

import (
	"context"
	"os/exec"

	"github.com/Netflix/titus-fn-executor/api/executorapi"
	"github.com/Netflix/titus-fn-executor/logger"
	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	"google.golang.org/protobuf/proto"
)

const nvidiaSMI = "nvidia-smi"

// Detector reads host capacity. Anything it cannot determine stays absent, never zero.
type Detector struct {
	// DiskPath is the filesystem whose size is reported as disk.
	DiskPath string
	// NvidiaSMIPath overrides where nvidia-smi is looked up.
	NvidiaSMIPath string

	cpuCount  func(ctx context.Context) (int, error)
	memTotal  func(ctx context.Context) (uint64, error)
	diskTotal func(ctx context.Context, path string) (uint64, error)
	querySMI  func(ctx context.Context, path string) ([]byte, error)
}

func NewDetector(diskPath string) *Detector {
	return &Detector{
		DiskPath: diskPath,
		cpuCount: func(ctx context.Context) (int, error) {
			return cpu.CountsWithContext(ctx, true)
		},
		memTotal: func(ctx context.Context) (uint64, error) {
			vm, err := mem.VirtualMemoryWithContext(ctx)
			if err != nil {
				return 0, err
			}
			return vm.Total, nil
		},
		diskTotal: func(ctx context.Context, path string) (uint64, error) {
			usage, err := disk.UsageWithContext(ctx, path)
			if err != nil {
				return 0, err
			}
			return usage.Total, nil
		},
		querySMI: func(ctx context.Context, path string) ([]byte, error) {
			return exec.CommandContext(ctx, path, "--query-gpu=name,memory.total", "--format=csv,noheader,nounits").Output() // nolint: gosec
		},
	}
}

// Detect returns the host's total resources.
func (p *Detector) Detect(ctx context.Context) *executorapi.HostResources {
	ret := &executorapi.HostResources{}

	if count, err := p.cpuCount(ctx); err != nil {
		logger.G(ctx).WithError(err).Warn("Cannot determine CPU count")
	} else if count > 0 {
		ret.CpuCount = proto.Uint32(uint32(count))
	}

	if total, err := p.memTotal(ctx); err != nil {
		logger.G(ctx).WithError(err).Warn("Cannot determine memory size")
	} else {
		ret.MemoryBytes = proto.Uint64(total)
	}

	if p.DiskPath != "" {
		if total, err := p.diskTotal(ctx, p.DiskPath); err != nil {
			logger.G(ctx).WithError(err).WithField("path", p.DiskPath).Warn("Cannot determine disk size")
		} else {
			ret.DiskBytes = proto.Uint64(total)
		}
	}

	gpu, err := p.detectGPUs(ctx)
	if err != nil {
		logger.G(ctx).WithError(err).Warn("Cannot determine GPUs")
	}
	ret.Gpu = gpu

	logger.G(ctx).WithField("cpus", ret.GetCpuCount()).WithField("memoryBytes", ret.GetMemoryBytes()).WithField("gpus", ret.GetGpu().GetCount()).Info("Detected host resources")
	return ret
}

func (p *Detector) detectGPUs(ctx context.Context) (*executorapi.GPUResources, error) {
	path := p.NvidiaSMIPath
	if path == "" {
		var err error
		path, err = exec.LookPath(nvidiaSMI)
		if err != nil {
			logger.G(ctx).Debug("nvidia-smi not found, not on a GPU host")
			return nil, nil
		}
	}
	out, err := p.querySMI(ctx, path)
	if err != nil {
		return nil, errors.Wrap(err, "nvidia-smi failed")
	}
	return ParseGPUs(out), nil
}
