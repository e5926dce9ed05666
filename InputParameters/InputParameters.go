package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type CavityParameters struct {
	Title     string  `yaml:"Title"`
	Nx        int     `yaml:"Nx"`
	Ny        int     `yaml:"Ny"`
	Nt        int     `yaml:"Nt"`
	Nit       int     `yaml:"Nit"`
	Dt        float64 `yaml:"Dt"`
	Rho       float64 `yaml:"Rho"`
	Nu        float64 `yaml:"Nu"`
	LidSpeed  float64 `yaml:"LidSpeed"`
	NParallel int     `yaml:"NParallel"`
	PlotSteps int     `yaml:"PlotSteps"`
	Monitor   bool    `yaml:"Monitor"` // log the Poisson residual diagnostic
}

// NewCavityParameters returns the reference-case defaults: a 41x41
// grid run for 700 steps with 50 pressure sweeps per step.
func NewCavityParameters() (ip *CavityParameters) {
	ip = &CavityParameters{
		Title:     "Lid-Driven Cavity",
		Nx:        41,
		Ny:        41,
		Nt:        700,
		Nit:       50,
		Dt:        0.001,
		Rho:       1.,
		Nu:        0.1,
		LidSpeed:  1.,
		PlotSteps: 10,
	}
	return
}

func (ip *CavityParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *CavityParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d x %d]\t\t= Grid\n", ip.Nx, ip.Ny)
	fmt.Printf("%8.5f\t\t= Dt\n", ip.Dt)
	fmt.Printf("[%d]\t\t\t= Nt\n", ip.Nt)
	fmt.Printf("[%d]\t\t\t= Nit\n", ip.Nit)
	fmt.Printf("%8.5f\t\t= Rho\n", ip.Rho)
	fmt.Printf("%8.5f\t\t= Nu\n", ip.Nu)
	fmt.Printf("%8.5f\t\t= LidSpeed\n", ip.LidSpeed)
}

// Validate rejects parameter sets that would make the scheme read
// garbage or divide by zero. It runs before the timestep loop; there is
// no in-loop guard against CFL-driven divergence, which remains the
// caller's tuning responsibility.
func (ip *CavityParameters) Validate() (err error) {
	switch {
	case ip.Nx < 3 || ip.Ny < 3:
		err = fmt.Errorf("grid must be at least 3x3, got %dx%d", ip.Nx, ip.Ny)
	case ip.Nt <= 0:
		err = fmt.Errorf("Nt must be positive, got %d", ip.Nt)
	case ip.Nit <= 0:
		err = fmt.Errorf("Nit must be positive, got %d", ip.Nit)
	case ip.Dt <= 0:
		err = fmt.Errorf("Dt must be positive, got %g", ip.Dt)
	case ip.Rho <= 0:
		err = fmt.Errorf("Rho must be positive, got %g", ip.Rho)
	case ip.Nu <= 0:
		err = fmt.Errorf("Nu must be positive, got %g", ip.Nu)
	}
	return
}
