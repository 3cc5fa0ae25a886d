package producer

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/NVIDIA/census/pkg/record"
)

// System produces one record of OS-level facts (platform, kernel, CPU,
// memory) for the machine the process runs on. The target host id is
// recorded as-is; reaching a remote machine is the caller's concern, for
// example by running the census binary there.
type System struct{}

// Produce implements Producer.
func (System) Produce(ctx context.Context, target string) ([]*record.Record, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read host info: %w", err)
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read memory info: %w", err)
	}

	cores, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to count CPUs: %w", err)
	}

	r := record.New().
		SetString("Hostname", info.Hostname).
		SetString("OS", info.OS).
		SetString("Platform", info.Platform).
		SetString("PlatformVersion", info.PlatformVersion).
		SetString("KernelVersion", info.KernelVersion).
		SetString("Architecture", info.KernelArch).
		SetInt("CPUCores", int64(cores)).
		SetInt("MemoryTotalBytes", int64(vm.Total)).
		SetInt("MemoryAvailableBytes", int64(vm.Available)).
		SetTime("BootTime", time.Unix(int64(info.BootTime), 0).UTC())

	return []*record.Record{r}, nil
}
