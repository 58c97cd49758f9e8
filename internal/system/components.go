package system

import (
	"sort"
	"strings"

	"github.com/Dicklesworthstone/sysmoni/internal/model"
)

// CPUTemperatureLabel is the component summarizing per-core sensors.
const CPUTemperatureLabel = "CPU Temperature"

// Components groups sensor readings. Sensors whose name looks like a CPU core
// package ("coretemp", "k10temp", "cpu") are averaged into one CPU component;
// every other sensor becomes its own component. Non-positive readings are
// ignored.
func Components(raw []model.RawTemperature) []model.Component {
	var (
		cpuSum   float64
		cpuMax   float64
		cpuCrit  float64
		cpuCount int
		out      []model.Component
	)
	for _, r := range raw {
		if r.Celsius <= 0 {
			continue
		}
		if isCPUSensor(r.Sensor) {
			cpuSum += r.Celsius
			cpuCount++
			if r.Celsius > cpuMax {
				cpuMax = r.Celsius
			}
			if r.Critical > cpuCrit {
				cpuCrit = r.Critical
			}
			continue
		}
		out = append(out, model.Component{Label: r.Sensor, Average: r.Celsius, Max: r.Celsius, Critical: r.Critical})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	if cpuCount > 0 {
		cpu := model.Component{Label: CPUTemperatureLabel, Average: cpuSum / float64(cpuCount), Max: cpuMax, Critical: cpuCrit}
		out = append([]model.Component{cpu}, out...)
	}
	return out
}

func isCPUSensor(name string) bool {
	name = strings.ToLower(name)
	for _, p := range []string{"coretemp", "k10temp", "cpu", "zenpower"} {
		if strings.Contains(name, p) {
			return true
		}
	}
	return false
}
