package counter

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestDelta_Update(t *testing.T) {
	tests := []struct {
		name    string
		base    uint64
		updates []uint64
		delta   uint64
		total   uint64
		wrapped bool
	}{
		{"zero baseline first read", 0, []uint64{1000}, 1000, 1000, false},
		{"increasing", 0, []uint64{1000, 1500}, 500, 1500, false},
		{"unchanged", 0, []uint64{1000, 1000}, 0, 1000, false},
		{"reset clamps to zero", 0, []uint64{1000, 10}, 0, 10, true},
		{"recovers after reset", 0, []uint64{1000, 10, 40}, 30, 40, false},
		{"seeded baseline", 200, []uint64{250}, 50, 250, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDelta(tt.base)
			for _, v := range tt.updates {
				d.Update(v)
			}
			if got := d.Delta(); got != tt.delta {
				t.Errorf("Delta() = %d, want %d", got, tt.delta)
			}
			if got := d.Total(); got != tt.total {
				t.Errorf("Total() = %d, want %d", got, tt.total)
			}
			if got := d.Wrapped(); got != tt.wrapped {
				t.Errorf("Wrapped() = %v, want %v", got, tt.wrapped)
			}
		})
	}
}

func TestDelta_SmallWidthWraparound(t *testing.T) {
	d := NewDelta[uint8](250)
	d.Update(3)
	if d.Delta() != 0 {
		t.Errorf("Delta() = %d after uint8 wraparound, want 0", d.Delta())
	}
	if !d.Wrapped() {
		t.Error("Wrapped() = false, want true")
	}
	if d.Previous() != 250 {
		t.Errorf("Previous() = %d, want 250", d.Previous())
	}
}

func TestDelta_NeverExceedsTotal_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("delta is bounded by the current total", prop.ForAll(
		func(a, b uint64) bool {
			d := NewDelta[uint64](0)
			d.Update(a)
			d.Update(b)
			return d.Delta() <= d.Total()
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.Property("delta plus previous equals total when not wrapped", prop.ForAll(
		func(a, step uint32) bool {
			d := NewDelta[uint64](0)
			d.Update(uint64(a))
			d.Update(uint64(a) + uint64(step))
			return !d.Wrapped() && d.Previous()+d.Delta() == d.Total()
		},
		gen.UInt32(), gen.UInt32(),
	))

	properties.TestingRun(t)
}
