package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/mhw32/cavityflow/InputParameters"
)

func TestRunCavity(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Test Case
Nx: 21
Ny: 31
Nt: 100
Nit: 25
Dt: 0.0005
Rho: 1.2
Nu: 0.05
LidSpeed: 1.5
Monitor: true
`)
	input := InputParameters.NewCavityParameters()
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, input.Nx, 21)
	assert.Equal(t, input.Ny, 31)
	assert.Equal(t, input.Rho, 1.2)
	assert.Equal(t, input.LidSpeed, 1.5)
	assert.Equal(t, input.Monitor, true)
	input.Print()
	if err = input.Validate(); err != nil {
		panic(err)
	}
	// Fields absent from the file keep their defaults
	assert.Equal(t, input.PlotSteps, 10)

	// A partial file only overrides what it names
	input2 := InputParameters.NewCavityParameters()
	if err = input2.Parse([]byte("Nu: 0.2\n")); err != nil {
		panic(err)
	}
	assert.Equal(t, input2.Nu, 0.2)
	assert.Equal(t, input2.Nx, 41)

	// Bad parameters are rejected before any timestep runs
	input3 := InputParameters.NewCavityParameters()
	if err = input3.Parse([]byte("Dt: -0.001\n")); err != nil {
		panic(err)
	}
	if err = input3.Validate(); err == nil {
		t.Errorf("expected validation failure for negative Dt")
	}
}
