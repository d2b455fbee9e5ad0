// Package hostinfo describes the machine a benchmark runs on. Throughput
// numbers are only comparable between runs on the same hardware, so the
// entry point logs this once at startup.
package hostinfo

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Info is a snapshot of the host's hardware and runtime.
type Info struct {
	CPUModel     string
	LogicalCores int
	TotalMemory  uint64
	GOOS         string
	GOARCH       string
	GoVersion    string
}

// Collect gathers host information. Fields that cannot be determined on
// this platform are left at their zero value; the error reports the first
// probe that failed.
func Collect() (Info, error) {
	info := Info{
		GOOS:      runtime.GOOS,
		GOARCH:    runtime.GOARCH,
		GoVersion: runtime.Version(),
	}

	var firstErr error
	if stats, err := cpu.Info(); err != nil {
		firstErr = fmt.Errorf("cpu info: %w", err)
	} else if len(stats) > 0 {
		info.CPUModel = stats[0].ModelName
	}

	if n, err := cpu.Counts(true); err != nil {
		if firstErr == nil {
			firstErr = fmt.Errorf("cpu count: %w", err)
		}
	} else {
		info.LogicalCores = n
	}

	if vm, err := mem.VirtualMemory(); err != nil {
		if firstErr == nil {
			firstErr = fmt.Errorf("virtual memory: %w", err)
		}
	} else {
		info.TotalMemory = vm.Total
	}

	return info, firstErr
}

// LogAttrs returns the snapshot as slog attributes.
func (i Info) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("cpu", i.CPUModel),
		slog.Int("cores", i.LogicalCores),
		slog.Uint64("memory_bytes", i.TotalMemory),
		slog.String("os", i.GOOS),
		slog.String("arch", i.GOARCH),
		slog.String("go", i.GoVersion),
	}
}
