package sampler

import (
	"context"
	"time"

	"github.com/Dicklesworthstone/sysmoni/internal/logging"
	"github.com/Dicklesworthstone/sysmoni/internal/model"
)

// CPUs returns per-core views in index order.
func (s *Sampler) CPUs() []model.CPU {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cpus.CPUs()
}

// GlobalCPU returns the host-wide CPU aggregate.
func (s *Sampler) GlobalCPU() model.CPU {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cpus.Global()
}

// CPUInfo returns vendor, brand and frequency.
func (s *Sampler) CPUInfo() model.CPUInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cpus.Info()
}

// Interfaces returns every tracked interface sorted by name.
func (s *Sampler) Interfaces() []model.Interface {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ifaces.Views()
}

// Interface returns one interface by name.
func (s *Sampler) Interface(name string) (model.Interface, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ifaces.Get(name)
}

// RemoveInterface stops tracking name. Interfaces are never dropped by a
// refresh, only here.
func (s *Sampler) RemoveInterface(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ifaces.Remove(name)
}

// Processes returns every tracked process ordered by pid.
func (s *Sampler) Processes() []model.Process {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.procs.Records()
}

// Process returns one process by pid.
func (s *Sampler) Process(pid int32) (model.Process, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.procs.Get(pid)
}

// ProcessesByName returns processes whose command name equals name.
func (s *Sampler) ProcessesByName(name string) []model.Process {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.procs.ByName(name)
}

// Memory returns the latest memory and swap figures.
func (s *Sampler) Memory() model.Memory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.memory
}

// Host returns uptime, boot time, load and host identity.
func (s *Sampler) Host() model.HostInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.host
}

// Disks returns mounted filesystems sorted by mount point.
func (s *Sampler) Disks() []model.Disk {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Disk(nil), s.disks...)
}

// DiskIO returns per-device throughput sorted by device name.
func (s *Sampler) DiskIO() []model.DiskIO {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.diskIO.Views()
}

// Components returns thermal components.
func (s *Sampler) Components() []model.Component {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Component(nil), s.components...)
}

// Snapshot returns every view taken under a single lock, so the parts are
// consistent with each other.
func (s *Sampler) Snapshot() model.Sample {
	s.mu.Lock()
	defer s.mu.Unlock()
	ts := s.refreshed
	if ts.IsZero() {
		ts = s.now()
	}
	return model.Sample{
		Timestamp:  ts,
		GlobalCPU:  s.cpus.Global(),
		CPUs:       s.cpus.CPUs(),
		CPUInfo:    s.cpus.Info(),
		Memory:     s.memory,
		Host:       s.host,
		Interfaces: s.ifaces.Views(),
		Processes:  s.procs.Records(),
		Disks:      append([]model.Disk(nil), s.disks...),
		DiskIO:     s.diskIO.Views(),
		Components: append([]model.Component(nil), s.components...),
	}
}

// DefaultInterval replaces a non-positive Stream interval.
const DefaultInterval = time.Second

// Stream refreshes the selected subsystems every interval and sends a
// Snapshot until ctx is done. The first snapshot is sent right away. Refresh
// errors are logged and the stale values are sent anyway.
func (s *Sampler) Stream(ctx context.Context, interval time.Duration, sel Selection) <-chan model.Sample {
	if interval <= 0 {
		s.log.Warn("non-positive stream interval, using default",
			logging.String("interval", interval.String()),
			logging.String("default", DefaultInterval.String()))
		interval = DefaultInterval
	}
	ch := make(chan model.Sample)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		defer close(ch)
		for {
			if err := s.RefreshAll(ctx, sel); err != nil {
				s.log.Debug("stream refresh incomplete", logging.Err(err))
			}
			snap := s.Snapshot()
			snap.Interval = interval
			select {
			case ch <- snap:
			case <-ctx.Done():
				return
			}
			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}
