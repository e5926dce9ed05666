//go:build linux
// +build linux

package utils

import (
	perf "github.com/hodgesds/perf-utils"
)

// HardwareCounts holds CPU counter totals for a measured function.
type HardwareCounts struct {
	Instructions uint64
	Cycles       uint64
}

// MeasureHardwareCounts runs f twice under the kernel perf interface,
// once per counter. Requires perf_event_paranoid to permit
// process-scoped counters; callers should treat an error as "not
// available here" and fall back to wall-clock timing.
func MeasureHardwareCounts(f func()) (hc HardwareCounts, err error) {
	var (
		pv *perf.ProfileValue
	)
	wrapped := func() error {
		f()
		return nil
	}
	if pv, err = perf.CPUInstructions(wrapped); err != nil {
		return
	}
	hc.Instructions = pv.Value
	if pv, err = perf.CPUCycles(wrapped); err != nil {
		return
	}
	hc.Cycles = pv.Value
	return
}
