package model

import "time"

// CPUUsage is the share of the last interval spent in each bucket, in percent.
type CPUUsage struct {
	User      float64
	Nice      float64
	System    float64
	Interrupt float64
	Idle      float64
}

// NonIdle is the busy share of the interval.
func (u CPUUsage) NonIdle() float64 {
	return u.User + u.Nice + u.System + u.Interrupt
}

// Sum adds all buckets; 100 for a usage derived from a valid interval.
func (u CPUUsage) Sum() float64 { return u.NonIdle() + u.Idle }

// Add returns the component-wise sum.
func (u CPUUsage) Add(o CPUUsage) CPUUsage {
	return CPUUsage{
		User:      u.User + o.User,
		Nice:      u.Nice + o.Nice,
		System:    u.System + o.System,
		Interrupt: u.Interrupt + o.Interrupt,
		Idle:      u.Idle + o.Idle,
	}
}

// Scale divides every component by n.
func (u CPUUsage) Scale(n int) CPUUsage {
	d := float64(n)
	return CPUUsage{
		User:      u.User / d,
		Nice:      u.Nice / d,
		System:    u.System / d,
		Interrupt: u.Interrupt / d,
		Idle:      u.Idle / d,
	}
}

// CPU is the read-only view of one logical CPU (or the global aggregate).
type CPU struct {
	Name  string
	Times CPUTimes
	Usage CPUUsage
	Valid bool // false until a usable interval has been observed
}

// InterfaceCounters groups the six per-interface counters.
type InterfaceCounters struct {
	RxBytes   uint64
	TxBytes   uint64
	RxPackets uint64
	TxPackets uint64
	RxErrors  uint64
	TxErrors  uint64
}

// Interface is the read-only view of one network interface.
type Interface struct {
	Name         string
	MTU          uint32
	Total        InterfaceCounters
	LastInterval InterfaceCounters
}

// DiskUsage holds cumulative and last-interval process I/O in bytes.
type DiskUsage struct {
	TotalRead    uint64
	Read         uint64
	TotalWritten uint64
	Written      uint64
}

// Process is one entry of the process table.
type Process struct {
	PID        int32
	PPID       int32
	HasParent  bool
	StartTime  uint64
	Command    string
	VirtualKB  uint64
	ResidentKB uint64
	StackKB    uint64
	Status     ProcessStatus
	Env        []string
	Args       []string
	Cwd        string
	Root       string
	Exe        string
	CPUPercent float64
	Disk       DiskUsage
}

// Parent returns the parent pid and whether one is known.
func (p Process) Parent() (int32, bool) { return p.PPID, p.HasParent }

// Memory holds memory and swap in KiB.
type Memory struct {
	TotalKB     uint64
	FreeKB      uint64
	UsedKB      uint64
	SwapTotalKB uint64
	SwapFreeKB  uint64
	SwapUsedKB  uint64
}

// Disk is one mounted filesystem with derived occupancy.
type Disk struct {
	Name           string
	FileSystem     string
	MountPoint     string
	TotalBytes     uint64
	AvailableBytes uint64
	UsedBytes      uint64
	Removable      bool
}

// DiskIOCounters groups the per-device I/O counters.
type DiskIOCounters struct {
	ReadBytes  uint64
	WriteBytes uint64
	ReadOps    uint64
	WriteOps   uint64
}

// DiskIO is the read-only view of one block device's throughput.
type DiskIO struct {
	Name         string
	Total        DiskIOCounters
	LastInterval DiskIOCounters
	Valid        bool // false until the device has been seen twice
}

// Component is a thermal component summarized over its sensors.
type Component struct {
	Label    string
	Average  float64
	Max      float64
	Critical float64 // 0 when unknown
}

// Sample is the full snapshot exchanged between sampler, UI, exporter and
// JSON output.
type Sample struct {
	Timestamp  time.Time
	Interval   time.Duration
	GlobalCPU  CPU
	CPUs       []CPU
	CPUInfo    CPUInfo
	Memory     Memory
	Host       HostInfo
	Interfaces []Interface
	Processes  []Process
	Disks      []Disk
	DiskIO     []DiskIO
	Components []Component
}

// Zero returns an empty sample for initialization.
func Zero() Sample { return Sample{Timestamp: time.Now()} }
