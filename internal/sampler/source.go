package sampler

//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks

import (
	"context"

	"github.com/Dicklesworthstone/sysmoni/internal/model"
)

// Source is the raw OS metrics provider. Each call returns a fresh snapshot
// of cumulative counters or point-in-time figures. Implementations may block
// for as long as the underlying OS query takes; timeouts belong to the
// implementation, not to the sampler.
type Source interface {
	// CPUTimes returns one tick-bucket sample per logical CPU, ordered by
	// index.
	CPUTimes(ctx context.Context) ([]model.CPUTimes, error)
	CPUInfo(ctx context.Context) (model.CPUInfo, error)
	Interfaces(ctx context.Context) ([]model.RawInterface, error)
	Processes(ctx context.Context) ([]model.RawProcess, error)
	// Process returns the cheap, mutable fields of one process.
	Process(ctx context.Context, pid int32) (model.RawProcess, error)
	Memory(ctx context.Context) (model.RawMemory, error)
	Host(ctx context.Context) (model.HostInfo, error)
	Disks(ctx context.Context) ([]model.RawDisk, error)
	// DiskIO returns cumulative I/O counters per block device.
	DiskIO(ctx context.Context) ([]model.RawDiskIO, error)
	Temperatures(ctx context.Context) ([]model.RawTemperature, error)
}
