// Package cpu converts cumulative per-CPU tick buckets into usage
// percentages and keeps the host-wide average.
package cpu

import "github.com/Dicklesworthstone/sysmoni/internal/model"

// Tracker keeps the last two tick samples of one logical CPU.
type Tracker struct {
	name   string
	cur    model.CPUTimes
	prev   model.CPUTimes
	usage  model.CPUUsage
	primed bool
	valid  bool
}

// NewTracker returns a zeroed tracker.
func NewTracker(name string) *Tracker {
	return &Tracker{name: name}
}

// Name returns the CPU identifier, e.g. "cpu3" or "global".
func (t *Tracker) Name() string { return t.name }

// Update installs sample as current and derives usage from the interval.
// The first update only primes the tracker.
func (t *Tracker) Update(sample model.CPUTimes) {
	t.prev = t.cur
	t.cur = sample
	if !t.primed {
		t.primed = true
		return
	}
	if u, ok := Percent(t.cur, t.prev); ok {
		t.usage = u
		t.valid = true
	}
}

// Usage returns the last derived usage. ok is false until an interval with a
// positive tick total has been seen.
func (t *Tracker) Usage() (model.CPUUsage, bool) {
	return t.usage, t.valid
}

// View returns a read-only copy.
func (t *Tracker) View() model.CPU {
	return model.CPU{Name: t.name, Times: t.cur, Usage: t.usage, Valid: t.valid}
}

// Percent computes 100*bucketDelta/totalDelta for each bucket. It returns
// false when the interval is degenerate: a zero total, or any bucket that
// went backwards.
func Percent(cur, prev model.CPUTimes) (model.CPUUsage, bool) {
	if cur.User < prev.User || cur.Nice < prev.Nice || cur.System < prev.System ||
		cur.Interrupt < prev.Interrupt || cur.Idle < prev.Idle {
		return model.CPUUsage{}, false
	}
	user := float64(cur.User - prev.User)
	nice := float64(cur.Nice - prev.Nice)
	system := float64(cur.System - prev.System)
	intr := float64(cur.Interrupt - prev.Interrupt)
	idle := float64(cur.Idle - prev.Idle)
	total := user + nice + system + intr + idle
	if total <= 0 {
		return model.CPUUsage{}, false
	}
	return model.CPUUsage{
		User:      100 * user / total,
		Nice:      100 * nice / total,
		System:    100 * system / total,
		Interrupt: 100 * intr / total,
		Idle:      100 * idle / total,
	}, true
}
