// Package source implements the sampler's raw OS metrics source on top of
// gopsutil. All unit conversion happens here: the sampler only sees
// tick counts, KiB and flat value types.
package source

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/Dicklesworthstone/sysmoni/internal/apperrors"
	"github.com/Dicklesworthstone/sysmoni/internal/model"
)

// ClockTicks converts gopsutil's CPU seconds back to scheduler ticks.
const ClockTicks = 100

// Pseudo filesystems that never describe real storage.
var ignoredFilesystems = map[string]bool{
	"devfs":     true,
	"procfs":    true,
	"fdescfs":   true,
	"nullfs":    true,
	"linprocfs": true,
	"proc":      true,
	"sysfs":     true,
	"tmpfs":     true,
	"devtmpfs":  true,
	"overlay":   true,
	"squashfs":  true,
}

// Gopsutil reads the host through gopsutil.
type Gopsutil struct {
	// WithEnviron also extracts process environments, which is slow and
	// often denied for other users' processes.
	WithEnviron bool
}

// NewGopsutil returns a source with environment extraction disabled.
func NewGopsutil() *Gopsutil { return &Gopsutil{} }

// CPUTimes returns per-CPU tick buckets. Iowait folds into idle, softirq into
// interrupt and steal into system.
func (g *Gopsutil) CPUTimes(ctx context.Context) ([]model.CPUTimes, error) {
	stats, err := cpu.TimesWithContext(ctx, true)
	if err != nil {
		return nil, apperrors.WrapError(err, "cpu times")
	}
	out := make([]model.CPUTimes, len(stats))
	for i, st := range stats {
		out[i] = timesFromStat(st)
	}
	return out, nil
}

func timesFromStat(st cpu.TimesStat) model.CPUTimes {
	return model.CPUTimes{
		User:      toTicks(st.User),
		Nice:      toTicks(st.Nice),
		System:    toTicks(st.System + st.Steal),
		Interrupt: toTicks(st.Irq + st.Softirq),
		Idle:      toTicks(st.Idle + st.Iowait),
	}
}

func toTicks(seconds float64) uint64 {
	if seconds <= 0 || math.IsNaN(seconds) {
		return 0
	}
	return uint64(math.Round(seconds * ClockTicks))
}

// CPUInfo describes the first CPU package.
func (g *Gopsutil) CPUInfo(ctx context.Context) (model.CPUInfo, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return model.CPUInfo{}, apperrors.WrapError(err, "cpu info")
	}
	if len(infos) == 0 {
		return model.CPUInfo{}, errors.New("no cpu info")
	}
	return model.CPUInfo{
		Vendor:       infos[0].VendorID,
		Brand:        strings.TrimSpace(infos[0].ModelName),
		FrequencyMHz: uint64(math.Round(infos[0].Mhz)),
	}, nil
}

// Interfaces returns per-NIC counters joined with the interface MTU.
func (g *Gopsutil) Interfaces(ctx context.Context) ([]model.RawInterface, error) {
	counters, err := net.IOCountersWithContext(ctx, true)
	if err != nil {
		return nil, apperrors.WrapError(err, "interface counters")
	}
	mtus := make(map[string]uint32)
	if ifaces, err := net.InterfacesWithContext(ctx); err == nil {
		for _, ifc := range ifaces {
			if ifc.MTU > 0 {
				mtus[ifc.Name] = uint32(ifc.MTU)
			}
		}
	}
	out := make([]model.RawInterface, 0, len(counters))
	for _, c := range counters {
		out = append(out, model.RawInterface{
			Name:      c.Name,
			MTU:       mtus[c.Name],
			RxBytes:   c.BytesRecv,
			TxBytes:   c.BytesSent,
			RxPackets: c.PacketsRecv,
			TxPackets: c.PacketsSent,
			RxErrors:  c.Errin,
			TxErrors:  c.Errout,
		})
	}
	return out, nil
}

// Processes returns every process. Per-process read failures leave the
// affected fields empty; processes that exit mid-scan are skipped.
func (g *Gopsutil) Processes(ctx context.Context) ([]model.RawProcess, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, apperrors.WrapError(err, "process list")
	}
	out := make([]model.RawProcess, 0, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		raw := g.sizes(ctx, p)
		raw.Command = name
		if created, err := p.CreateTimeWithContext(ctx); err == nil && created > 0 {
			raw.StartTime = uint64(created)
		}
		if st, err := p.StatusWithContext(ctx); err == nil && len(st) > 0 {
			raw.Status = model.ParseProcessStatus(st[0])
		}
		raw.Args, _ = p.CmdlineSliceWithContext(ctx)
		if g.WithEnviron {
			raw.Env, _ = p.EnvironWithContext(ctx)
		}
		raw.Cwd, _ = p.CwdWithContext(ctx)
		raw.Exe, _ = p.ExeWithContext(ctx)
		raw.CPUPercent, _ = p.CPUPercentWithContext(ctx)
		if io, err := p.IOCountersWithContext(ctx); err == nil && io != nil {
			raw.ReadBytes = io.ReadBytes
			raw.WriteBytes = io.WriteBytes
		}
		out = append(out, raw)
	}
	return out, nil
}

// Process returns the parent and memory sizes of one pid.
func (g *Gopsutil) Process(ctx context.Context, pid int32) (model.RawProcess, error) {
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return model.RawProcess{}, apperrors.WrapError(err, "process %d", pid)
	}
	return g.sizes(ctx, p), nil
}

func (g *Gopsutil) sizes(ctx context.Context, p *process.Process) model.RawProcess {
	raw := model.RawProcess{PID: p.Pid}
	if ppid, err := p.PpidWithContext(ctx); err == nil {
		raw.PPID = ppid
		raw.HasParent = true
	}
	if mi, err := p.MemoryInfoWithContext(ctx); err == nil && mi != nil {
		raw.VirtualKB = mi.VMS / 1024
		raw.ResidentKB = mi.RSS / 1024
		raw.StackKB = mi.Stack / 1024
	}
	return raw
}

// Memory reports available memory as free, matching what "used" means to
// users on page-cache heavy systems.
func (g *Gopsutil) Memory(ctx context.Context) (model.RawMemory, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return model.RawMemory{}, apperrors.WrapError(err, "virtual memory")
	}
	raw := model.RawMemory{
		MemTotalKB: vm.Total / 1024,
		MemFreeKB:  vm.Available / 1024,
	}
	if sw, err := mem.SwapMemoryWithContext(ctx); err == nil && sw != nil {
		raw.SwapTotalKB = sw.Total / 1024
		raw.SwapFreeKB = sw.Free / 1024
	}
	return raw, nil
}

// Host returns identity, uptime, boot time and load average.
func (g *Gopsutil) Host(ctx context.Context) (model.HostInfo, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return model.HostInfo{}, apperrors.WrapError(err, "host info")
	}
	h := model.HostInfo{
		Hostname: info.Hostname,
		OS:       info.OS,
		Kernel:   info.KernelVersion,
		Version:  strings.TrimSpace(info.Platform + " " + info.PlatformVersion),
		Uptime:   info.Uptime,
		BootTime: info.BootTime,
	}
	if avg, err := load.AvgWithContext(ctx); err == nil && avg != nil {
		h.Load = model.LoadAvg{One: avg.Load1, Five: avg.Load5, Fifteen: avg.Load15}
	}
	return h, nil
}

// Disks returns mounted filesystems, skipping pseudo filesystems and mounts
// whose usage cannot be read.
func (g *Gopsutil) Disks(ctx context.Context) ([]model.RawDisk, error) {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, apperrors.WrapError(err, "disk partitions")
	}
	var out []model.RawDisk
	for _, p := range parts {
		if ignoredFilesystems[p.Fstype] {
			continue
		}
		usage, err := disk.UsageWithContext(ctx, p.Mountpoint)
		if err != nil || usage == nil {
			continue
		}
		out = append(out, model.RawDisk{
			Name:           p.Device,
			FileSystem:     p.Fstype,
			MountPoint:     p.Mountpoint,
			TotalBytes:     usage.Total,
			AvailableBytes: usage.Free,
			Removable:      isRemovable(p.Mountpoint, p.Opts),
		})
	}
	return out, nil
}

// DiskIO returns per-device I/O counters. Loop devices are skipped.
func (g *Gopsutil) DiskIO(ctx context.Context) ([]model.RawDiskIO, error) {
	counters, err := disk.IOCountersWithContext(ctx)
	if err != nil {
		return nil, apperrors.WrapError(err, "disk io counters")
	}
	out := make([]model.RawDiskIO, 0, len(counters))
	for name, st := range counters {
		if strings.HasPrefix(name, "loop") {
			continue
		}
		out = append(out, model.RawDiskIO{
			Name:       name,
			ReadBytes:  st.ReadBytes,
			WriteBytes: st.WriteBytes,
			ReadCount:  st.ReadCount,
			WriteCount: st.WriteCount,
		})
	}
	return out, nil
}

func isRemovable(mount string, opts []string) bool {
	for _, o := range opts {
		if o == "automounted" {
			return true
		}
	}
	return strings.HasPrefix(mount, "/media/") || strings.HasPrefix(mount, "/run/media/")
}

// Temperatures returns sensor readings. Partial results are kept when some
// sensors fail.
func (g *Gopsutil) Temperatures(ctx context.Context) ([]model.RawTemperature, error) {
	temps, err := host.SensorsTemperaturesWithContext(ctx)
	if err != nil && len(temps) == 0 {
		return nil, apperrors.WrapError(err, "temperature sensors")
	}
	out := make([]model.RawTemperature, 0, len(temps))
	for _, t := range temps {
		out = append(out, model.RawTemperature{
			Sensor:   t.SensorKey,
			Celsius:  t.Temperature,
			Critical: t.Critical,
		})
	}
	return out, nil
}
