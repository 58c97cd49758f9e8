package model

// Raw types are handed to the sampler by a Source. They are flat values,
// decoded once at the adapter boundary.

// CPUTimes holds the five cumulative tick buckets of one logical CPU.
type CPUTimes struct {
	User      uint64
	Nice      uint64
	System    uint64
	Interrupt uint64
	Idle      uint64
}

// Total sums all buckets.
func (t CPUTimes) Total() uint64 {
	return t.User + t.Nice + t.System + t.Interrupt + t.Idle
}

// CPUInfo is shared by every logical CPU of the host.
type CPUInfo struct {
	Vendor       string
	Brand        string
	FrequencyMHz uint64
}

// RawInterface is one cumulative counter record for a network interface.
type RawInterface struct {
	Name      string
	MTU       uint32
	RxBytes   uint64
	TxBytes   uint64
	RxPackets uint64
	TxPackets uint64
	RxErrors  uint64
	TxErrors  uint64
}

// RawProcess is one process as reported by the OS.
type RawProcess struct {
	PID        int32
	PPID       int32
	HasParent  bool
	StartTime  uint64 // unix milliseconds, 0 when unknown
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
	ReadBytes  uint64
	WriteBytes uint64
}

// RawMemory carries memory and swap figures in KiB.
type RawMemory struct {
	MemTotalKB  uint64
	MemFreeKB   uint64
	SwapTotalKB uint64
	SwapFreeKB  uint64
}

// LoadAvg is the 1/5/15 minute run-queue average.
type LoadAvg struct {
	One     float64
	Five    float64
	Fifteen float64
}

// HostInfo describes the machine and how long it has been up.
type HostInfo struct {
	Hostname string
	OS       string
	Kernel   string
	Version  string
	Uptime   uint64 // seconds
	BootTime uint64 // unix seconds
	Load     LoadAvg
}

// RawDisk is one mounted filesystem.
type RawDisk struct {
	Name           string
	FileSystem     string
	MountPoint     string
	TotalBytes     uint64
	AvailableBytes uint64
	Removable      bool
}

// RawDiskIO holds the cumulative I/O counters of one block device.
type RawDiskIO struct {
	Name       string
	ReadBytes  uint64
	WriteBytes uint64
	ReadCount  uint64
	WriteCount uint64
}

// RawTemperature is one sensor reading.
type RawTemperature struct {
	Sensor   string
	Celsius  float64
	Critical float64 // 0 when the sensor has no trip point
}
