// Package process keeps the process table between refreshes.
//
// A full refresh replaces the table, so pids are scoped to one refresh epoch.
// A single-process refresh only updates a live entry and checks that the
// inbound record belongs to the requested pid.
package process

import (
	"errors"
	"sort"

	"github.com/Dicklesworthstone/sysmoni/internal/counter"
	"github.com/Dicklesworthstone/sysmoni/internal/model"
)

var (
	// ErrNotFound is returned by RefreshOne for a pid that is not tracked.
	ErrNotFound = errors.New("process not found")
	// ErrIdentityMismatch is returned by RefreshOne when the inbound record
	// carries a different pid, usually a race with process exit and reuse.
	ErrIdentityMismatch = errors.New("process identity mismatch")
)

// Table maps pids to process records.
type Table struct {
	procs map[int32]*model.Process
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{procs: make(map[int32]*model.Process)}
}

// ReplaceAll discards the table and rebuilds it from snapshot. Disk I/O of
// the last interval is measured against the previous epoch only when
// sameProcess holds; anything else starts from a zero baseline.
func (t *Table) ReplaceAll(snapshot []model.RawProcess) {
	next := make(map[int32]*model.Process, len(snapshot))
	for _, raw := range snapshot {
		p := fromRaw(raw)
		read := counter.NewDelta[uint64](0)
		written := counter.NewDelta[uint64](0)
		if old, ok := t.procs[raw.PID]; ok && sameProcess(old, raw) {
			read = counter.NewDelta(old.Disk.TotalRead)
			written = counter.NewDelta(old.Disk.TotalWritten)
		}
		read.Update(raw.ReadBytes)
		written.Update(raw.WriteBytes)
		p.Disk = model.DiskUsage{
			TotalRead:    read.Total(),
			Read:         read.Delta(),
			TotalWritten: written.Total(),
			Written:      written.Delta(),
		}
		next[raw.PID] = p
	}
	t.procs = next
}

// sameProcess reports whether raw is the process already tracked as old. An
// unknown start time never matches, since a reused pid cannot be told apart.
func sameProcess(old *model.Process, raw model.RawProcess) bool {
	return raw.StartTime != 0 && old.StartTime == raw.StartTime && old.Command == raw.Command
}

// RefreshOne updates the parent and memory sizes of a tracked process. It
// never inserts. Command, arguments, environment and paths are left as they
// were at insertion.
func (t *Table) RefreshOne(pid int32, raw model.RawProcess) error {
	p, ok := t.procs[pid]
	if !ok {
		return ErrNotFound
	}
	if raw.PID != pid {
		return ErrIdentityMismatch
	}
	p.PPID = raw.PPID
	p.HasParent = raw.HasParent
	p.VirtualKB = raw.VirtualKB
	p.StackKB = raw.StackKB
	p.ResidentKB = raw.ResidentKB
	return nil
}

// Len is the number of tracked processes.
func (t *Table) Len() int { return len(t.procs) }

// Get returns a copy of one record.
func (t *Table) Get(pid int32) (model.Process, bool) {
	p, ok := t.procs[pid]
	if !ok {
		return model.Process{}, false
	}
	return clone(p), true
}

// PIDs returns tracked pids in ascending order.
func (t *Table) PIDs() []int32 {
	pids := make([]int32, 0, len(t.procs))
	for pid := range t.procs {
		pids = append(pids, pid)
	}
	sort.Slice(pids, func(i, j int) bool { return pids[i] < pids[j] })
	return pids
}

// Records returns copies of every record ordered by pid.
func (t *Table) Records() []model.Process {
	out := make([]model.Process, 0, len(t.procs))
	for _, pid := range t.PIDs() {
		out = append(out, clone(t.procs[pid]))
	}
	return out
}

// ByName returns the records whose command name equals name, ordered by pid.
func (t *Table) ByName(name string) []model.Process {
	var out []model.Process
	for _, pid := range t.PIDs() {
		if p := t.procs[pid]; p.Command == name {
			out = append(out, clone(p))
		}
	}
	return out
}

func fromRaw(raw model.RawProcess) *model.Process {
	return &model.Process{
		PID:        raw.PID,
		PPID:       raw.PPID,
		HasParent:  raw.HasParent,
		StartTime:  raw.StartTime,
		Command:    raw.Command,
		VirtualKB:  raw.VirtualKB,
		ResidentKB: raw.ResidentKB,
		StackKB:    raw.StackKB,
		Status:     raw.Status,
		Env:        append([]string(nil), raw.Env...),
		Args:       append([]string(nil), raw.Args...),
		Cwd:        raw.Cwd,
		Root:       raw.Root,
		Exe:        raw.Exe,
		CPUPercent: raw.CPUPercent,
	}
}

func clone(p *model.Process) model.Process {
	c := *p
	c.Env = append([]string(nil), p.Env...)
	c.Args = append([]string(nil), p.Args...)
	return c
}
