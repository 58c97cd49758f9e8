package exporter

import (
	"sort"

	"github.com/Dicklesworthstone/sysmoni/internal/model"
)

// TopByCPU returns up to n processes with the highest CPU percentage, ties
// broken by pid. The input is not modified.
func TopByCPU(procs []model.Process, n int) []model.Process {
	if n <= 0 || len(procs) == 0 {
		return nil
	}
	sorted := append([]model.Process(nil), procs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].CPUPercent != sorted[j].CPUPercent {
			return sorted[i].CPUPercent > sorted[j].CPUPercent
		}
		return sorted[i].PID < sorted[j].PID
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
