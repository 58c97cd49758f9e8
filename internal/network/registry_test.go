package network

import (
	"reflect"
	"testing"

	"github.com/Dicklesworthstone/sysmoni/internal/model"
)

func TestRegistry_DeltaAfterInsert(t *testing.T) {
	r := NewRegistry()
	added := r.Refresh([]model.RawInterface{{Name: "eth0", MTU: 1500, RxBytes: 1000, TxBytes: 500}})
	if !reflect.DeepEqual(added, []string{"eth0"}) {
		t.Errorf("Refresh() added = %v, want [eth0]", added)
	}

	added = r.Refresh([]model.RawInterface{{Name: "eth0", MTU: 1500, RxBytes: 1500, TxBytes: 600}})
	if len(added) != 0 {
		t.Errorf("Refresh() added = %v on second pass, want none", added)
	}

	got, ok := r.Get("eth0")
	if !ok {
		t.Fatal("Get(eth0) missing")
	}
	if got.LastInterval.RxBytes != 500 || got.LastInterval.TxBytes != 100 {
		t.Errorf("LastInterval = %+v, want rx=500 tx=100", got.LastInterval)
	}
	if got.Total.RxBytes != 1500 || got.Total.TxBytes != 600 {
		t.Errorf("Total = %+v, want rx=1500 tx=600", got.Total)
	}
	if got.MTU != 1500 {
		t.Errorf("MTU = %d, want 1500", got.MTU)
	}
}

func TestRegistry_VanishedInterfaceIsKept(t *testing.T) {
	r := NewRegistry()
	r.Refresh([]model.RawInterface{
		{Name: "eth0", RxBytes: 100},
		{Name: "wlan0", RxBytes: 10},
	})
	r.Refresh([]model.RawInterface{
		{Name: "eth0", RxBytes: 300},
		{Name: "wlan0", RxBytes: 70},
	})
	before, _ := r.Get("wlan0")

	r.Refresh([]model.RawInterface{{Name: "eth0", RxBytes: 400}})

	after, ok := r.Get("wlan0")
	if !ok {
		t.Fatal("wlan0 was removed by a snapshot that did not contain it")
	}
	if after != before {
		t.Errorf("wlan0 = %+v, want unchanged %+v", after, before)
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
}

func TestRegistry_CounterResetClamps(t *testing.T) {
	r := NewRegistry()
	r.Refresh([]model.RawInterface{{Name: "eth0", RxBytes: 5000, TxPackets: 40}})
	r.Refresh([]model.RawInterface{{Name: "eth0", RxBytes: 20, TxPackets: 50}})

	got, _ := r.Get("eth0")
	if got.LastInterval.RxBytes != 0 {
		t.Errorf("LastInterval.RxBytes = %d after reset, want 0", got.LastInterval.RxBytes)
	}
	if got.LastInterval.TxPackets != 10 {
		t.Errorf("LastInterval.TxPackets = %d, want 10", got.LastInterval.TxPackets)
	}
	if got.Total.RxBytes != 20 {
		t.Errorf("Total.RxBytes = %d, want 20", got.Total.RxBytes)
	}
}

func TestRegistry_RepeatedNameInOneSnapshot(t *testing.T) {
	r := NewRegistry()
	r.Refresh([]model.RawInterface{{Name: "em0", RxBytes: 100}})
	r.Refresh([]model.RawInterface{
		{Name: "em0", RxBytes: 180},
		{Name: "em0", RxBytes: 180},
	})
	got, _ := r.Get("em0")
	if got.Total.RxBytes != 180 {
		t.Errorf("Total.RxBytes = %d, want 180", got.Total.RxBytes)
	}
	if got.LastInterval.RxBytes != 0 {
		t.Errorf("LastInterval.RxBytes = %d, want 0 after repeated record", got.LastInterval.RxBytes)
	}
}

func TestRegistry_RemoveAndReset(t *testing.T) {
	r := NewRegistry()
	r.Refresh([]model.RawInterface{{Name: "lo"}, {Name: "eth1"}, {Name: "eth0"}})

	if got := r.Names(); !reflect.DeepEqual(got, []string{"eth0", "eth1", "lo"}) {
		t.Errorf("Names() = %v", got)
	}
	if !r.Remove("lo") {
		t.Error("Remove(lo) = false, want true")
	}
	if r.Remove("lo") {
		t.Error("Remove(lo) twice = true, want false")
	}
	if views := r.Views(); len(views) != 2 || views[0].Name != "eth0" {
		t.Errorf("Views() = %+v", views)
	}
	r.Reset()
	if r.Len() != 0 {
		t.Errorf("Len() = %d after Reset, want 0", r.Len())
	}
}

func TestTracker_Wrapped(t *testing.T) {
	tr := NewTracker("eth0")
	tr.Update(model.RawInterface{RxErrors: 3})
	if tr.Wrapped() {
		t.Error("Wrapped() = true on first update")
	}
	tr.Update(model.RawInterface{RxErrors: 1})
	if !tr.Wrapped() {
		t.Error("Wrapped() = false after error counter reset")
	}
}
