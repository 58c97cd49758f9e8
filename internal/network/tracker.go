// Package network tracks cumulative per-interface counters and the delta of
// the last refresh interval.
package network

import (
	"github.com/Dicklesworthstone/sysmoni/internal/counter"
	"github.com/Dicklesworthstone/sysmoni/internal/model"
)

// Tracker holds the six counters of one interface.
type Tracker struct {
	name      string
	mtu       uint32
	rxBytes   counter.Delta[uint64]
	txBytes   counter.Delta[uint64]
	rxPackets counter.Delta[uint64]
	txPackets counter.Delta[uint64]
	rxErrors  counter.Delta[uint64]
	txErrors  counter.Delta[uint64]
}

// NewTracker returns a tracker with a zero baseline.
func NewTracker(name string) *Tracker {
	return &Tracker{
		name:      name,
		rxBytes:   counter.NewDelta[uint64](0),
		txBytes:   counter.NewDelta[uint64](0),
		rxPackets: counter.NewDelta[uint64](0),
		txPackets: counter.NewDelta[uint64](0),
		rxErrors:  counter.NewDelta[uint64](0),
		txErrors:  counter.NewDelta[uint64](0),
	}
}

// Update applies one raw observation.
func (t *Tracker) Update(raw model.RawInterface) {
	t.mtu = raw.MTU
	t.rxBytes.Update(raw.RxBytes)
	t.txBytes.Update(raw.TxBytes)
	t.rxPackets.Update(raw.RxPackets)
	t.txPackets.Update(raw.TxPackets)
	t.rxErrors.Update(raw.RxErrors)
	t.txErrors.Update(raw.TxErrors)
}

// Total returns the cumulative counters.
func (t *Tracker) Total() model.InterfaceCounters {
	return model.InterfaceCounters{
		RxBytes:   t.rxBytes.Total(),
		TxBytes:   t.txBytes.Total(),
		RxPackets: t.rxPackets.Total(),
		TxPackets: t.txPackets.Total(),
		RxErrors:  t.rxErrors.Total(),
		TxErrors:  t.txErrors.Total(),
	}
}

// LastInterval returns the counter deltas of the latest update. Counters that
// went backwards report 0.
func (t *Tracker) LastInterval() model.InterfaceCounters {
	return model.InterfaceCounters{
		RxBytes:   t.rxBytes.Delta(),
		TxBytes:   t.txBytes.Delta(),
		RxPackets: t.rxPackets.Delta(),
		TxPackets: t.txPackets.Delta(),
		RxErrors:  t.rxErrors.Delta(),
		TxErrors:  t.txErrors.Delta(),
	}
}

// Wrapped reports whether any counter went backwards on the latest update.
func (t *Tracker) Wrapped() bool {
	return t.rxBytes.Wrapped() || t.txBytes.Wrapped() ||
		t.rxPackets.Wrapped() || t.txPackets.Wrapped() ||
		t.rxErrors.Wrapped() || t.txErrors.Wrapped()
}

// View returns a read-only copy.
func (t *Tracker) View() model.Interface {
	return model.Interface{
		Name:         t.name,
		MTU:          t.mtu,
		Total:        t.Total(),
		LastInterval: t.LastInterval(),
	}
}
