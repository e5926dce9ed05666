//go:build !linux
// +build !linux

package utils

import "fmt"

type HardwareCounts struct {
	Instructions uint64
	Cycles       uint64
}

func MeasureHardwareCounts(f func()) (hc HardwareCounts, err error) {
	f()
	err = fmt.Errorf("hardware counters are only available on linux")
	return
}
