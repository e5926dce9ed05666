package Cavity2D

import (
	"fmt"
	"testing"

	"github.com/mhw32/cavityflow/utils"
)

func BenchmarkStep(b *testing.B) {
	c, err := NewCavityFlow(41, 41, 700, 50, 0.001, 1, 0.1, 1)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		c.Step()
	}
}

func BenchmarkStepParallel(b *testing.B) {
	c, err := NewCavityFlow(161, 161, 700, 50, 0.001, 1, 0.025, 1)
	if err != nil {
		b.Fatal(err)
	}
	c.NParallel = 4
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		c.Step()
	}
}

func TestHardwareCounters(t *testing.T) {
	// Counter access needs a permissive perf_event_paranoid, so this is
	// informational only outside such environments.
	c, _ := NewCavityFlow(41, 41, 700, 50, 0.001, 1, 0.1, 1)
	hc, err := utils.MeasureHardwareCounts(func() {
		for n := 0; n < 10; n++ {
			c.Step()
		}
	})
	if err != nil {
		t.Skipf("hardware counters unavailable: %v", err)
	}
	fmt.Printf("10 steps: %d instructions, %d cycles\n", hc.Instructions, hc.Cycles)
	if hc.Instructions == 0 {
		t.Errorf("expected a nonzero instruction count")
	}
}
