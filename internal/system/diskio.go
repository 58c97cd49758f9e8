package system

import (
	"sort"

	"github.com/Dicklesworthstone/sysmoni/internal/counter"
	"github.com/Dicklesworthstone/sysmoni/internal/model"
)

type ioTracker struct {
	readBytes  counter.Delta[uint64]
	writeBytes counter.Delta[uint64]
	readOps    counter.Delta[uint64]
	writeOps   counter.Delta[uint64]
	primed     bool
}

func newIOTracker(raw model.RawDiskIO) *ioTracker {
	return &ioTracker{
		readBytes:  counter.NewDelta(raw.ReadBytes),
		writeBytes: counter.NewDelta(raw.WriteBytes),
		readOps:    counter.NewDelta(raw.ReadCount),
		writeOps:   counter.NewDelta(raw.WriteCount),
	}
}

func (t *ioTracker) update(raw model.RawDiskIO) {
	t.readBytes.Update(raw.ReadBytes)
	t.writeBytes.Update(raw.WriteBytes)
	t.readOps.Update(raw.ReadCount)
	t.writeOps.Update(raw.WriteCount)
}

// IOTable tracks per-device disk throughput between refreshes.
type IOTable struct {
	devices map[string]*ioTracker
}

// NewIOTable returns an empty table.
func NewIOTable() *IOTable {
	return &IOTable{devices: make(map[string]*ioTracker)}
}

// Refresh rebuilds the device set from snapshot. A device seen for the first
// time is seeded with its own counters and reports no interval until the next
// refresh. Devices missing from snapshot are dropped.
func (t *IOTable) Refresh(snapshot []model.RawDiskIO) {
	next := make(map[string]*ioTracker, len(snapshot))
	for _, raw := range snapshot {
		tr, ok := next[raw.Name]
		if !ok {
			tr, ok = t.devices[raw.Name]
		}
		if !ok {
			tr = newIOTracker(raw)
		} else {
			tr.primed = true
		}
		tr.update(raw)
		next[raw.Name] = tr
	}
	t.devices = next
}

// Len is the number of tracked devices.
func (t *IOTable) Len() int { return len(t.devices) }

// Views returns every device sorted by name.
func (t *IOTable) Views() []model.DiskIO {
	out := make([]model.DiskIO, 0, len(t.devices))
	for name, tr := range t.devices {
		v := model.DiskIO{
			Name: name,
			Total: model.DiskIOCounters{
				ReadBytes:  tr.readBytes.Total(),
				WriteBytes: tr.writeBytes.Total(),
				ReadOps:    tr.readOps.Total(),
				WriteOps:   tr.writeOps.Total(),
			},
			Valid: tr.primed,
		}
		if tr.primed {
			v.LastInterval = model.DiskIOCounters{
				ReadBytes:  tr.readBytes.Delta(),
				WriteBytes: tr.writeBytes.Delta(),
				ReadOps:    tr.readOps.Delta(),
				WriteOps:   tr.writeOps.Delta(),
			}
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
