// Package system derives point-in-time host aggregates: memory and swap,
// disk occupancy and thermal components. None of these keep cross-refresh
// state; every refresh recomputes them wholesale.
package system

import (
	"github.com/Dicklesworthstone/sysmoni/internal/apperrors"
	"github.com/Dicklesworthstone/sysmoni/internal/model"
)

// NewMemory validates raw and derives used memory and swap. Free above total
// is a source error and is rejected instead of underflowing.
func NewMemory(raw model.RawMemory) (model.Memory, error) {
	if raw.MemFreeKB > raw.MemTotalKB {
		return model.Memory{}, &apperrors.AggregateError{Field: "memory", Free: raw.MemFreeKB, Total: raw.MemTotalKB}
	}
	if raw.SwapFreeKB > raw.SwapTotalKB {
		return model.Memory{}, &apperrors.AggregateError{Field: "swap", Free: raw.SwapFreeKB, Total: raw.SwapTotalKB}
	}
	return model.Memory{
		TotalKB:     raw.MemTotalKB,
		FreeKB:      raw.MemFreeKB,
		UsedKB:      raw.MemTotalKB - raw.MemFreeKB,
		SwapTotalKB: raw.SwapTotalKB,
		SwapFreeKB:  raw.SwapFreeKB,
		SwapUsedKB:  raw.SwapTotalKB - raw.SwapFreeKB,
	}, nil
}
