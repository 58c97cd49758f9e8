// Package sampler turns raw OS counters into usage metrics. A Sampler owns
// every tracked entity; callers pull fresh data with the Refresh* methods and
// read derived views through accessors that never refresh on their own.
package sampler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Dicklesworthstone/sysmoni/internal/apperrors"
	"github.com/Dicklesworthstone/sysmoni/internal/cpu"
	"github.com/Dicklesworthstone/sysmoni/internal/logging"
	"github.com/Dicklesworthstone/sysmoni/internal/model"
	"github.com/Dicklesworthstone/sysmoni/internal/network"
	"github.com/Dicklesworthstone/sysmoni/internal/process"
	"github.com/Dicklesworthstone/sysmoni/internal/system"
)

// Subsystem names used in errors and log fields.
const (
	SubsystemCPU        = "cpu"
	SubsystemNetwork    = "network"
	SubsystemProcesses  = "processes"
	SubsystemProcess    = "process"
	SubsystemMemory     = "memory"
	SubsystemSystem     = "system"
	SubsystemDisks      = "disks"
	SubsystemComponents = "components"
	SubsystemDiskIO     = "diskio"
)

// Sampler composes the per-subsystem trackers behind one mutex.
type Sampler struct {
	src Source
	log logging.Logger
	now func() time.Time

	mu         sync.Mutex
	cpus       *cpu.Set
	ifaces     *network.Registry
	procs      *process.Table
	memory     model.Memory
	host       model.HostInfo
	disks      []model.Disk
	diskIO     *system.IOTable
	components []model.Component
	refreshed  time.Time
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithLogger sets the logger; the default discards output.
func WithLogger(l logging.Logger) Option {
	return func(s *Sampler) { s.log = l }
}

// WithClock overrides time.Now for snapshot timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Sampler) { s.now = now }
}

// New returns a Sampler reading from src. Nothing is sampled until a Refresh
// method is called.
func New(src Source, opts ...Option) *Sampler {
	s := &Sampler{
		src:    src,
		log:    logging.NewNop(),
		now:    time.Now,
		cpus:   cpu.NewSet(),
		ifaces: network.NewRegistry(),
		procs:  process.NewTable(),
		diskIO: system.NewIOTable(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Sampler) sourceFailed(subsystem string, err error) error {
	s.log.Debug("refresh failed", logging.String("subsystem", subsystem), logging.Err(err))
	return apperrors.NewSourceError(subsystem, err)
}

func (s *Sampler) touch() { s.refreshed = s.now() }

// RefreshCPU samples per-CPU ticks, resizes the CPU set to the observed count
// and recomputes per-core and global usage. Vendor, brand and frequency are
// refreshed best-effort.
func (s *Sampler) RefreshCPU(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	times, err := s.src.CPUTimes(ctx)
	if err != nil {
		return s.sourceFailed(SubsystemCPU, err)
	}
	if len(times) == 0 {
		return s.sourceFailed(SubsystemCPU, errors.New("no cpu times"))
	}
	if info, err := s.src.CPUInfo(ctx); err == nil {
		s.cpus.SetInfo(info)
	} else {
		s.log.Debug("cpu info unavailable", logging.Err(err))
	}
	if n := s.cpus.Len(); n != 0 && n != len(times) {
		s.log.Info("cpu count changed", logging.Int("from", n), logging.Int("to", len(times)))
	}
	s.cpus.Update(times)
	s.touch()
	return nil
}

// RefreshNetwork merges the current interface counters into the registry.
// Interfaces absent from the snapshot keep their last values.
func (s *Sampler) RefreshNetwork(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.src.Interfaces(ctx)
	if err != nil {
		return s.sourceFailed(SubsystemNetwork, err)
	}
	for _, name := range s.ifaces.Refresh(raw) {
		s.log.Debug("interface discovered", logging.String("interface", name))
	}
	s.touch()
	return nil
}

// RefreshProcesses replaces the process table with a fresh snapshot.
func (s *Sampler) RefreshProcesses(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.src.Processes(ctx)
	if err != nil {
		return s.sourceFailed(SubsystemProcesses, err)
	}
	s.procs.ReplaceAll(raw)
	s.touch()
	return nil
}

// RefreshProcess updates the parent and memory sizes of one tracked process.
// It returns process.ErrNotFound for an untracked pid and
// process.ErrIdentityMismatch when the source answers for another pid.
func (s *Sampler) RefreshProcess(ctx context.Context, pid int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.procs.Get(pid); !ok {
		return process.ErrNotFound
	}
	raw, err := s.src.Process(ctx, pid)
	if err != nil {
		return s.sourceFailed(SubsystemProcess, err)
	}
	if err := s.procs.RefreshOne(pid, raw); err != nil {
		s.log.Debug("process refresh rejected",
			logging.Field{Key: "pid", Value: pid},
			logging.Field{Key: "got_pid", Value: raw.PID},
			logging.Err(err))
		return err
	}
	return nil
}

// RefreshMemory recomputes memory and swap. Figures where free exceeds total
// are rejected and the previous values kept.
func (s *Sampler) RefreshMemory(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.src.Memory(ctx)
	if err != nil {
		return s.sourceFailed(SubsystemMemory, err)
	}
	mem, err := system.NewMemory(raw)
	if err != nil {
		s.log.Warn("memory figures rejected", logging.Err(err))
		return err
	}
	s.memory = mem
	s.touch()
	return nil
}

// RefreshSystem updates uptime, boot time, load average and host identity.
func (s *Sampler) RefreshSystem(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	host, err := s.src.Host(ctx)
	if err != nil {
		return s.sourceFailed(SubsystemSystem, err)
	}
	s.host = host
	s.touch()
	return nil
}

// RefreshDisks replaces the disk list. Mounts reporting more free space than
// capacity are dropped.
func (s *Sampler) RefreshDisks(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.src.Disks(ctx)
	if err != nil {
		return s.sourceFailed(SubsystemDisks, err)
	}
	disks, rejected := system.Disks(raw)
	for _, d := range rejected {
		s.log.Warn("disk figures rejected",
			logging.String("mount", d.MountPoint),
			logging.Uint64("available", d.AvailableBytes),
			logging.Uint64("total", d.TotalBytes))
	}
	s.disks = disks
	s.touch()
	return nil
}

// RefreshDiskIO merges per-device I/O counters. Devices no longer reported
// are dropped.
func (s *Sampler) RefreshDiskIO(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.src.DiskIO(ctx)
	if err != nil {
		return s.sourceFailed(SubsystemDiskIO, err)
	}
	s.diskIO.Refresh(raw)
	s.touch()
	return nil
}

// RefreshComponents re-reads thermal sensors.
func (s *Sampler) RefreshComponents(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.src.Temperatures(ctx)
	if err != nil {
		return s.sourceFailed(SubsystemComponents, err)
	}
	s.components = system.Components(raw)
	s.touch()
	return nil
}

// Selection picks the subsystems RefreshAll touches.
type Selection struct {
	CPU        bool
	Network    bool
	Processes  bool
	Memory     bool
	System     bool
	Disks      bool
	DiskIO     bool
	Components bool
}

// All selects every subsystem.
func All() Selection {
	return Selection{CPU: true, Network: true, Processes: true, Memory: true, System: true, Disks: true, DiskIO: true, Components: true}
}

// RefreshAll runs the selected refreshes in a fixed order. A failing
// subsystem does not stop the others; the errors are joined.
func (s *Sampler) RefreshAll(ctx context.Context, sel Selection) error {
	steps := []struct {
		on bool
		fn func(context.Context) error
	}{
		{sel.System, s.RefreshSystem},
		{sel.Memory, s.RefreshMemory},
		{sel.CPU, s.RefreshCPU},
		{sel.Network, s.RefreshNetwork},
		{sel.Processes, s.RefreshProcesses},
		{sel.Disks, s.RefreshDisks},
		{sel.DiskIO, s.RefreshDiskIO},
		{sel.Components, s.RefreshComponents},
	}
	var errs []error
	for _, step := range steps {
		if !step.on {
			continue
		}
		if err := step.fn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
