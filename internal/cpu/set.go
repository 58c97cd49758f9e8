package cpu

import (
	"fmt"

	"github.com/Dicklesworthstone/sysmoni/internal/model"
)

// GlobalName identifies the synthetic host-wide aggregate.
const GlobalName = "global"

// Set owns one Tracker per logical CPU, ordered by index, and the global
// aggregate.
type Set struct {
	cpus   []*Tracker
	global model.CPUUsage
	valid  bool
	info   model.CPUInfo
}

// NewSet returns an empty set.
func NewSet() *Set { return &Set{} }

// Len is the current logical CPU count.
func (s *Set) Len() int { return len(s.cpus) }

// Resize grows the set with zeroed trackers or truncates it from the tail.
// Calling it with the current count is a no-op.
func (s *Set) Resize(n int) {
	if n < 0 {
		n = 0
	}
	switch {
	case n == len(s.cpus):
		return
	case n < len(s.cpus):
		for i := n; i < len(s.cpus); i++ {
			s.cpus[i] = nil
		}
		s.cpus = s.cpus[:n]
	default:
		for i := len(s.cpus); i < n; i++ {
			s.cpus = append(s.cpus, NewTracker(fmt.Sprintf("cpu%d", i)))
		}
	}
}

// Update resizes the set to len(samples), feeds each sample to the tracker at
// the same index and recomputes the global aggregate.
func (s *Set) Update(samples []model.CPUTimes) {
	s.Resize(len(samples))
	for i, sample := range samples {
		s.cpus[i].Update(sample)
	}
	s.recomputeGlobal()
}

// recomputeGlobal averages per-core usage over the CPU count. Cores that have
// not produced usage yet contribute zero. An empty set leaves the global
// aggregate at its zero value.
func (s *Set) recomputeGlobal() {
	if len(s.cpus) == 0 {
		s.global = model.CPUUsage{}
		s.valid = false
		return
	}
	var sum model.CPUUsage
	valid := false
	for _, c := range s.cpus {
		u, ok := c.Usage()
		sum = sum.Add(u)
		valid = valid || ok
	}
	s.global = sum.Scale(len(s.cpus))
	s.valid = valid
}

// SetInfo replaces the shared vendor/brand/frequency description.
func (s *Set) SetInfo(info model.CPUInfo) { s.info = info }

// Info returns the shared CPU description.
func (s *Set) Info() model.CPUInfo { return s.info }

// Global returns the host-wide aggregate view.
func (s *Set) Global() model.CPU {
	return model.CPU{Name: GlobalName, Usage: s.global, Valid: s.valid}
}

// CPUs returns per-core views in index order.
func (s *Set) CPUs() []model.CPU {
	out := make([]model.CPU, len(s.cpus))
	for i, c := range s.cpus {
		out[i] = c.View()
	}
	return out
}
