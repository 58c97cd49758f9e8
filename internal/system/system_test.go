package system

import (
	"errors"
	"testing"

	"github.com/Dicklesworthstone/sysmoni/internal/apperrors"
	"github.com/Dicklesworthstone/sysmoni/internal/model"
)

func TestNewMemory(t *testing.T) {
	m, err := NewMemory(model.RawMemory{
		MemTotalKB: 16_000_000, MemFreeKB: 4_000_000,
		SwapTotalKB: 2_000_000, SwapFreeKB: 1_500_000,
	})
	if err != nil {
		t.Fatalf("NewMemory() error = %v", err)
	}
	if m.UsedKB != 12_000_000 {
		t.Errorf("UsedKB = %d, want 12000000", m.UsedKB)
	}
	if m.SwapUsedKB != 500_000 {
		t.Errorf("SwapUsedKB = %d, want 500000", m.SwapUsedKB)
	}
}

func TestNewMemory_RejectsFreeAboveTotal(t *testing.T) {
	tests := []struct {
		name  string
		raw   model.RawMemory
		field string
	}{
		{"memory", model.RawMemory{MemTotalKB: 16_000_000, MemFreeKB: 17_000_000}, "memory"},
		{"swap", model.RawMemory{MemTotalKB: 10, MemFreeKB: 5, SwapTotalKB: 1, SwapFreeKB: 2}, "swap"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMemory(tt.raw)
			if !errors.Is(err, apperrors.ErrInvalidAggregate) {
				t.Fatalf("NewMemory() error = %v, want ErrInvalidAggregate", err)
			}
			var ae *apperrors.AggregateError
			if !errors.As(err, &ae) || ae.Field != tt.field {
				t.Errorf("AggregateError = %+v, want field %q", ae, tt.field)
			}
			if m != (model.Memory{}) {
				t.Errorf("NewMemory() returned %+v alongside an error", m)
			}
		})
	}
}

func TestDisks(t *testing.T) {
	disks, rejected := Disks([]model.RawDisk{
		{Name: "/dev/sda2", MountPoint: "/home", TotalBytes: 1000, AvailableBytes: 250},
		{Name: "/dev/sda1", MountPoint: "/", TotalBytes: 500, AvailableBytes: 500, FileSystem: "ext4"},
		{Name: "broken", MountPoint: "/mnt/x", TotalBytes: 10, AvailableBytes: 11},
	})
	if len(disks) != 2 {
		t.Fatalf("len(disks) = %d, want 2", len(disks))
	}
	if disks[0].MountPoint != "/" || disks[0].UsedBytes != 0 {
		t.Errorf("disks[0] = %+v", disks[0])
	}
	if disks[1].UsedBytes != 750 {
		t.Errorf("disks[1].UsedBytes = %d, want 750", disks[1].UsedBytes)
	}
	if len(rejected) != 1 || rejected[0].Name != "broken" {
		t.Errorf("rejected = %+v", rejected)
	}
}

func TestComponents(t *testing.T) {
	got := Components([]model.RawTemperature{
		{Sensor: "coretemp_core_0", Celsius: 40},
		{Sensor: "coretemp_core_1", Celsius: 50, Critical: 100},
		{Sensor: "nvme_composite", Celsius: 35},
		{Sensor: "acpitz", Celsius: 0},
	})
	if len(got) != 2 {
		t.Fatalf("len(Components) = %d, want 2: %+v", len(got), got)
	}
	if got[0].Label != CPUTemperatureLabel || got[0].Average != 45 || got[0].Max != 50 || got[0].Critical != 100 {
		t.Errorf("cpu component = %+v", got[0])
	}
	if got[1].Label != "nvme_composite" {
		t.Errorf("second component = %+v", got[1])
	}
	if Components(nil) != nil {
		t.Error("Components(nil) should be nil")
	}
}
