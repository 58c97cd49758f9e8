// Package exporter publishes the sampler's derived views as Prometheus
// metrics. Collection reads the latest snapshot and never triggers a refresh.
package exporter

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Dicklesworthstone/sysmoni/internal/model"
)

const namespace = "sysmoni"

// Snapshotter is satisfied by *sampler.Sampler.
type Snapshotter interface {
	Snapshot() model.Sample
}

// Collector implements prometheus.Collector over a Snapshotter.
type Collector struct {
	src Snapshotter

	cpuUsage       *prometheus.Desc
	cpuInfo        *prometheus.Desc
	netBytes       *prometheus.Desc
	netPackets     *prometheus.Desc
	netErrors      *prometheus.Desc
	netLastBytes   *prometheus.Desc
	memKB          *prometheus.Desc
	swapKB         *prometheus.Desc
	processes      *prometheus.Desc
	processCPU     *prometheus.Desc
	processRSS     *prometheus.Desc
	uptime         *prometheus.Desc
	bootTime       *prometheus.Desc
	load           *prometheus.Desc
	diskBytes      *prometheus.Desc
	diskIOBytes    *prometheus.Desc
	diskIOOps      *prometheus.Desc
	componentTempC *prometheus.Desc

	// TopProcesses bounds per-process series; 0 disables them.
	TopProcesses int
}

// NewCollector builds a collector reading from src.
func NewCollector(src Snapshotter) *Collector {
	fq := func(sub, name string) string { return prometheus.BuildFQName(namespace, sub, name) }
	return &Collector{
		src:            src,
		cpuUsage:       prometheus.NewDesc(fq("cpu", "usage_percent"), "Share of the last interval per CPU and mode.", []string{"cpu", "mode"}, nil),
		cpuInfo:        prometheus.NewDesc(fq("cpu", "frequency_mhz"), "CPU frequency with vendor and brand labels.", []string{"vendor", "brand"}, nil),
		netBytes:       prometheus.NewDesc(fq("network", "bytes_total"), "Cumulative bytes per interface.", []string{"interface", "direction"}, nil),
		netPackets:     prometheus.NewDesc(fq("network", "packets_total"), "Cumulative packets per interface.", []string{"interface", "direction"}, nil),
		netErrors:      prometheus.NewDesc(fq("network", "errors_total"), "Cumulative errors per interface.", []string{"interface", "direction"}, nil),
		netLastBytes:   prometheus.NewDesc(fq("network", "last_interval_bytes"), "Bytes seen during the last refresh interval.", []string{"interface", "direction"}, nil),
		memKB:          prometheus.NewDesc(fq("memory", "kilobytes"), "Memory by state.", []string{"state"}, nil),
		swapKB:         prometheus.NewDesc(fq("swap", "kilobytes"), "Swap by state.", []string{"state"}, nil),
		processes:      prometheus.NewDesc(fq("", "processes"), "Processes in the table.", nil, nil),
		processCPU:     prometheus.NewDesc(fq("process", "cpu_percent"), "CPU usage of the busiest processes.", []string{"pid", "command"}, nil),
		processRSS:     prometheus.NewDesc(fq("process", "resident_kilobytes"), "Resident size of the busiest processes.", []string{"pid", "command"}, nil),
		uptime:         prometheus.NewDesc(fq("host", "uptime_seconds"), "Seconds since boot.", nil, nil),
		bootTime:       prometheus.NewDesc(fq("host", "boot_time_seconds"), "Boot time as a unix timestamp.", nil, nil),
		load:           prometheus.NewDesc(fq("host", "load"), "Load average.", []string{"period"}, nil),
		diskBytes:      prometheus.NewDesc(fq("disk", "bytes"), "Filesystem space by state.", []string{"mount", "fs", "state"}, nil),
		diskIOBytes:    prometheus.NewDesc(fq("disk", "io_bytes_total"), "Cumulative bytes transferred per block device.", []string{"device", "direction"}, nil),
		diskIOOps:      prometheus.NewDesc(fq("disk", "io_operations_total"), "Cumulative I/O operations per block device.", []string{"device", "direction"}, nil),
		componentTempC: prometheus.NewDesc(fq("component", "temperature_celsius"), "Component temperature.", []string{"component", "stat"}, nil),
		TopProcesses:   10,
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, d := range []*prometheus.Desc{
		c.cpuUsage, c.cpuInfo, c.netBytes, c.netPackets, c.netErrors, c.netLastBytes,
		c.memKB, c.swapKB, c.processes, c.processCPU, c.processRSS,
		c.uptime, c.bootTime, c.load, c.diskBytes, c.diskIOBytes, c.diskIOOps, c.componentTempC,
	} {
		ch <- d
	}
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.src.Snapshot()
	gauge := func(d *prometheus.Desc, v float64, labels ...string) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.GaugeValue, v, labels...)
	}
	counter := func(d *prometheus.Desc, v uint64, labels ...string) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.CounterValue, float64(v), labels...)
	}

	for _, cpu := range append([]model.CPU{s.GlobalCPU}, s.CPUs...) {
		if !cpu.Valid {
			continue
		}
		u := cpu.Usage
		gauge(c.cpuUsage, u.User, cpu.Name, "user")
		gauge(c.cpuUsage, u.Nice, cpu.Name, "nice")
		gauge(c.cpuUsage, u.System, cpu.Name, "system")
		gauge(c.cpuUsage, u.Interrupt, cpu.Name, "interrupt")
		gauge(c.cpuUsage, u.Idle, cpu.Name, "idle")
	}
	if s.CPUInfo != (model.CPUInfo{}) {
		gauge(c.cpuInfo, float64(s.CPUInfo.FrequencyMHz), s.CPUInfo.Vendor, s.CPUInfo.Brand)
	}

	for _, ifc := range s.Interfaces {
		counter(c.netBytes, ifc.Total.RxBytes, ifc.Name, "rx")
		counter(c.netBytes, ifc.Total.TxBytes, ifc.Name, "tx")
		counter(c.netPackets, ifc.Total.RxPackets, ifc.Name, "rx")
		counter(c.netPackets, ifc.Total.TxPackets, ifc.Name, "tx")
		counter(c.netErrors, ifc.Total.RxErrors, ifc.Name, "rx")
		counter(c.netErrors, ifc.Total.TxErrors, ifc.Name, "tx")
		gauge(c.netLastBytes, float64(ifc.LastInterval.RxBytes), ifc.Name, "rx")
		gauge(c.netLastBytes, float64(ifc.LastInterval.TxBytes), ifc.Name, "tx")
	}

	if s.Memory.TotalKB > 0 {
		gauge(c.memKB, float64(s.Memory.TotalKB), "total")
		gauge(c.memKB, float64(s.Memory.FreeKB), "free")
		gauge(c.memKB, float64(s.Memory.UsedKB), "used")
		gauge(c.swapKB, float64(s.Memory.SwapTotalKB), "total")
		gauge(c.swapKB, float64(s.Memory.SwapFreeKB), "free")
		gauge(c.swapKB, float64(s.Memory.SwapUsedKB), "used")
	}

	gauge(c.processes, float64(len(s.Processes)))
	for _, p := range TopByCPU(s.Processes, c.TopProcesses) {
		pid := strconv.FormatInt(int64(p.PID), 10)
		gauge(c.processCPU, p.CPUPercent, pid, p.Command)
		gauge(c.processRSS, float64(p.ResidentKB), pid, p.Command)
	}

	if s.Host.BootTime > 0 {
		gauge(c.uptime, float64(s.Host.Uptime))
		gauge(c.bootTime, float64(s.Host.BootTime))
		gauge(c.load, s.Host.Load.One, "1m")
		gauge(c.load, s.Host.Load.Five, "5m")
		gauge(c.load, s.Host.Load.Fifteen, "15m")
	}

	for _, d := range s.Disks {
		gauge(c.diskBytes, float64(d.TotalBytes), d.MountPoint, d.FileSystem, "total")
		gauge(c.diskBytes, float64(d.AvailableBytes), d.MountPoint, d.FileSystem, "available")
		gauge(c.diskBytes, float64(d.UsedBytes), d.MountPoint, d.FileSystem, "used")
	}

	for _, d := range s.DiskIO {
		counter(c.diskIOBytes, d.Total.ReadBytes, d.Name, "read")
		counter(c.diskIOBytes, d.Total.WriteBytes, d.Name, "write")
		counter(c.diskIOOps, d.Total.ReadOps, d.Name, "read")
		counter(c.diskIOOps, d.Total.WriteOps, d.Name, "write")
	}

	for _, comp := range s.Components {
		gauge(c.componentTempC, comp.Average, comp.Label, "average")
		gauge(c.componentTempC, comp.Max, comp.Label, "max")
	}
}

// Handler returns an HTTP handler serving the collector plus Go runtime
// metrics from a private registry. Gathering errors go to errLog when it is
// not nil.
func Handler(c *Collector, errLog promhttp.Logger) http.Handler {
	reg := prometheus.NewRegistry()
	reg.MustRegister(c, collectors.NewGoCollector())
	opts := promhttp.HandlerOpts{ErrorHandling: promhttp.ContinueOnError}
	if errLog != nil {
		opts.ErrorLog = errLog
	}
	return promhttp.HandlerFor(reg, opts)
}
