package ui

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dicklesworthstone/sysmoni/internal/config"
	"github.com/Dicklesworthstone/sysmoni/internal/model"
	"github.com/Dicklesworthstone/sysmoni/internal/sampler"
)

// Model renders live samples from the sampler.
type Model struct {
	cfg       config.Config
	filter    *regexp.Regexp
	latest    model.Sample
	stream    <-chan model.Sample
	ctxCancel context.CancelFunc
	width     int
	height    int
}

// New starts streaming from s. Sampling stops when the user quits.
func New(cfg config.Config, s *sampler.Sampler) *Model {
	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		cfg:       cfg,
		latest:    model.Zero(),
		stream:    s.Stream(ctx, cfg.Interval, cfg.Selection()),
		ctxCancel: cancel,
		width:     120,
		height:    40,
	}
	if cfg.Filter != "" {
		m.filter = regexp.MustCompile(cfg.Filter)
	}
	return m
}

// Messages
type (
	sampleMsg  model.Sample
	streamDone struct{}
)

// waitForSample blocks on the next stream value.
func waitForSample(stream <-chan model.Sample) tea.Cmd {
	return func() tea.Msg {
		samp, ok := <-stream
		if !ok {
			return streamDone{}
		}
		return sampleMsg(samp)
	}
}

func (m *Model) Init() tea.Cmd { return waitForSample(m.stream) }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.ctxCancel()
			return m, tea.Quit
		case "c":
			m.cfg.Sort = "cpu"
		case "m":
			m.cfg.Sort = "mem"
		case "p":
			m.cfg.Sort = "pid"
		case "n":
			m.cfg.Sort = "name"
		}
	case sampleMsg:
		m.latest = model.Sample(msg)
		return m, waitForSample(m.stream)
	case streamDone:
		return m, nil
	}
	return m, nil
}

// Styles
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)
	hotStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	gaugeFill   = "█"
	gaugeEmpty  = "░"
	cardStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("60")).
			Padding(0, 1).
			MarginRight(1)
)

func (m *Model) View() string {
	s := m.latest
	h := s.Host
	header := titleStyle.Render("sysmoni") + "  " +
		subtleStyle.Render(fmt.Sprintf("%s  %s %s  up %s  %s",
			h.Hostname, h.OS, h.Kernel, formatUptime(h.Uptime),
			s.Timestamp.Format("Mon Jan 2 15:04:05 MST 2006")))

	cpuCard := card("CPU", cpuBody(s))

	mem := s.Memory
	memCard := card("Memory",
		fmt.Sprintf("%s  %.1f/%.1f GiB\nSwap %s",
			gaugeBar(pct(mem.UsedKB, mem.TotalKB), 28),
			kibToGiB(mem.UsedKB),
			kibToGiB(mem.TotalKB),
			gaugeBar(pct(mem.SwapUsedKB, mem.SwapTotalKB), 23)))

	columns := []string{cpuCard, memCard}
	if len(s.Interfaces) > 0 {
		columns = append(columns, card("Network", netBody(s.Interfaces, s.Interval)))
	}
	if len(s.Components) > 0 {
		columns = append(columns, card("Sensors", tempBody(s.Components)))
	}

	procs := sortProcesses(filterProcesses(s.Processes, m.filter), m.cfg.Sort)
	topTable := card(fmt.Sprintf("Processes (%d, by %s)", len(s.Processes), m.cfg.Sort),
		renderTable([]string{"cmd", "pid", "st", "cpu", "rss"}, procs, m.tableRows()))

	row2 := []string{topTable}
	if len(s.Disks) > 0 {
		row2 = append(row2, card("Disks", diskBody(s.Disks)))
	}
	if len(s.DiskIO) > 0 {
		row2 = append(row2, card("Disk I/O", diskIOBody(s.DiskIO, s.Interval)))
	}

	line1 := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	line2 := lipgloss.JoinHorizontal(lipgloss.Top, row2...)

	return lipgloss.JoinVertical(lipgloss.Left, header, line1, line2,
		subtleStyle.Render("q quit  c/m/p/n sort"))
}

func (m *Model) tableRows() int {
	rows := m.height - 16
	if rows < 5 {
		return 5
	}
	return rows
}

func cpuBody(s model.Sample) string {
	g := s.GlobalCPU
	var b strings.Builder
	fmt.Fprintf(&b, "%s  load %.2f %.2f %.2f",
		gaugeBar(usageOf(g), 28),
		s.Host.Load.One, s.Host.Load.Five, s.Host.Load.Fifteen)
	if s.CPUInfo.Brand != "" {
		fmt.Fprintf(&b, "\n%s", subtleStyle.Render(fmt.Sprintf("%s @ %d MHz", truncate(s.CPUInfo.Brand, 36), s.CPUInfo.FrequencyMHz)))
	}
	for i, c := range s.CPUs {
		if i%2 == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString("  ")
		}
		fmt.Fprintf(&b, "%-5s %s", c.Name, gaugeBar(usageOf(c), 10))
	}
	return b.String()
}

// usageOf reports busy percent, 0 while the CPU has no usable interval.
func usageOf(c model.CPU) float64 {
	if !c.Valid {
		return 0
	}
	return c.Usage.NonIdle()
}

func netBody(ifaces []model.Interface, interval time.Duration) string {
	rows := make([]string, 0, len(ifaces))
	for _, ifc := range ifaces {
		rows = append(rows, fmt.Sprintf("%-10s rx %9s tx %9s",
			truncate(ifc.Name, 10),
			rate(ifc.LastInterval.RxBytes, interval),
			rate(ifc.LastInterval.TxBytes, interval)))
	}
	return strings.Join(rows, "\n")
}

func tempBody(comps []model.Component) string {
	rows := make([]string, 0, len(comps))
	for _, c := range comps {
		line := fmt.Sprintf("%-14s %5.1f°C max %5.1f°C", truncate(c.Label, 14), c.Average, c.Max)
		if c.Critical > 0 && c.Max >= c.Critical {
			line = hotStyle.Render(line)
		}
		rows = append(rows, line)
	}
	return strings.Join(rows, "\n")
}

func diskBody(disks []model.Disk) string {
	rows := make([]string, 0, len(disks))
	for _, d := range disks {
		rows = append(rows, fmt.Sprintf("%-14s %s %6.1f GiB",
			truncate(d.MountPoint, 14),
			gaugeBar(pct(d.UsedBytes, d.TotalBytes), 12),
			bytesToGiB(d.TotalBytes)))
	}
	return strings.Join(rows, "\n")
}

func diskIOBody(devices []model.DiskIO, interval time.Duration) string {
	rows := make([]string, 0, len(devices))
	for _, d := range devices {
		if !d.Valid {
			rows = append(rows, fmt.Sprintf("%-8s %s", truncate(d.Name, 8), subtleStyle.Render("warming up")))
			continue
		}
		rows = append(rows, fmt.Sprintf("%-8s r %9s w %9s",
			truncate(d.Name, 8),
			rate(d.LastInterval.ReadBytes, interval),
			rate(d.LastInterval.WriteBytes, interval)))
	}
	return strings.Join(rows, "\n")
}

// Helpers
func gaugeBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int((pct / 100) * float64(width))
	if filled > width {
		filled = width
	}
	return fmt.Sprintf("[%s%s] %5.1f%%",
		strings.Repeat(gaugeFill, filled),
		strings.Repeat(gaugeEmpty, width-filled),
		pct)
}

func card(title, body string) string {
	titleStr := labelStyle.Render(title)
	content := titleStr + "\n" + body
	return cardStyle.Render(content)
}

func filterProcesses(procs []model.Process, re *regexp.Regexp) []model.Process {
	if re == nil {
		return procs
	}
	out := make([]model.Process, 0, len(procs))
	for _, p := range procs {
		if re.MatchString(p.Command) {
			out = append(out, p)
		}
	}
	return out
}

// sortProcesses returns a sorted copy; ties fall back to pid order.
func sortProcesses(procs []model.Process, by string) []model.Process {
	out := append([]model.Process(nil), procs...)
	less := func(a, b model.Process) bool { return a.PID < b.PID }
	switch by {
	case "cpu":
		less = func(a, b model.Process) bool {
			if a.CPUPercent != b.CPUPercent {
				return a.CPUPercent > b.CPUPercent
			}
			return a.PID < b.PID
		}
	case "mem":
		less = func(a, b model.Process) bool {
			if a.ResidentKB != b.ResidentKB {
				return a.ResidentKB > b.ResidentKB
			}
			return a.PID < b.PID
		}
	case "name":
		less = func(a, b model.Process) bool {
			if a.Command != b.Command {
				return a.Command < b.Command
			}
			return a.PID < b.PID
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func renderTable(headers []string, rows []model.Process, limit int) string {
	max := min(limit, len(rows))
	var b strings.Builder
	fmt.Fprintf(&b, "%-18s %-7s %-2s %6s %9s\n", headers[0], headers[1], headers[2], headers[3], headers[4])
	for i := 0; i < max; i++ {
		r := rows[i]
		fmt.Fprintf(&b, "%-18s %-7d %-2s %6.1f %9s\n",
			truncate(r.Command, 18), r.PID, statusCode(r.Status), r.CPUPercent, kibString(r.ResidentKB))
	}
	return strings.TrimRight(b.String(), "\n")
}

func statusCode(st model.ProcessStatus) string {
	switch st {
	case model.StatusForking:
		return "I"
	case model.StatusRunnable:
		return "R"
	case model.StatusSleeping:
		return "S"
	case model.StatusStopped:
		return "T"
	case model.StatusZombie:
		return "Z"
	case model.StatusInterruptWait:
		return "D"
	case model.StatusLockWait:
		return "L"
	}
	return "?"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func pct(used, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(used) * 100 / float64(total)
}

func bytesToGiB(b uint64) float64 { return float64(b) / (1024 * 1024 * 1024) }

func kibToGiB(k uint64) float64 { return float64(k) / (1024 * 1024) }

func kibString(k uint64) string {
	switch {
	case k >= 1024*1024:
		return fmt.Sprintf("%.1fG", kibToGiB(k))
	case k >= 1024:
		return fmt.Sprintf("%.1fM", float64(k)/1024)
	}
	return fmt.Sprintf("%dK", k)
}

// rate formats bytes seen over interval as a per-second figure.
func rate(bytes uint64, interval time.Duration) string {
	if interval <= 0 {
		interval = time.Second
	}
	perSec := float64(bytes) / interval.Seconds()
	switch {
	case perSec >= 1<<20:
		return fmt.Sprintf("%.1f MB/s", perSec/(1<<20))
	case perSec >= 1<<10:
		return fmt.Sprintf("%.1f KB/s", perSec/(1<<10))
	}
	return fmt.Sprintf("%.0f B/s", perSec)
}

func formatUptime(secs uint64) string {
	d := time.Duration(secs) * time.Second
	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	if days > 0 {
		return fmt.Sprintf("%dd %02d:%02d", days, d/time.Hour, (d%time.Hour)/time.Minute)
	}
	return fmt.Sprintf("%02d:%02d", d/time.Hour, (d%time.Hour)/time.Minute)
}

// RunTUI starts the Bubble Tea program.
func RunTUI(cfg config.Config, s *sampler.Sampler) error {
	m := New(cfg, s)
	defer m.ctxCancel()
	prog := tea.NewProgram(m, tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
