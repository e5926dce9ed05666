package Cavity2D

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"

	"github.com/mhw32/cavityflow/utils"
)

/*
Lid-driven cavity flow via Chorin-style pressure projection on a uniform
ny x nx grid over [0,2] x [0,2].

The incompressible Navier-Stokes momentum equations are advanced with an
explicit scheme: backward-difference (upwind) advection, central
pressure gradient and central diffusion. The pressure field is not
advected; each step it is recovered from the velocity field by solving
the pressure Poisson equation

		∇²p = b(u, v)

with a fixed number of Jacobi sweeps (Nit). The fixed sweep count is a
deliberate property of the scheme, not a convergence criterion: the
reference solution is defined by exactly Nit sweeps per step.

Boundary conditions:
		u = LidSpeed on the lid (y = 2), u = v = 0 on the other walls
		dp/dn = 0 on left/right/floor walls, p = 0 on the lid row

Index convention: row i is the y direction, column j is the x direction,
so field matrices have dims (Ny, Nx) and DataP[i*Nx+j] addresses node
(i, j). Interior updates touch [1:-1,1:-1] only; every boundary value is
owned by the boundary condition rules.
*/

type CavityFlow struct {
	// Input parameters
	Nx, Ny   int     // number of grid nodes along x, y
	Nt, Nit  int     // timestep count, Jacobi sweeps per step
	Dt       float64 // timestep
	Rho, Nu  float64 // density, kinematic viscosity
	LidSpeed float64

	Dx, Dy float64
	X, Y   utils.Vector // node coordinates, linspace over [0,2]

	U, V, P utils.Matrix // velocity components and pressure, Ny x Nx
	B       utils.Matrix // Poisson source term, interior cells only

	// Snapshot buffers. The explicit scheme reads only previous-state
	// values, so each kernel copies into these before writing.
	Un, Vn, Pn utils.Matrix

	NParallel int // interior sweeps run serial when <= 1

	Monitor *ResidualMonitor // optional, see residual.go

	plotOnce   sync.Once
	chart      *chart2d.Chart2D
	colorMap   *utils2.ColorMap
	frameCount int
	PlotSteps  int
}

func NewCavityFlow(nx, ny, nt, nit int, dt, rho, nu, lidSpeed float64) (c *CavityFlow, err error) {
	switch {
	case nx < 3 || ny < 3:
		err = fmt.Errorf("grid must have at least one interior node, got nx=%d, ny=%d", nx, ny)
	case nt <= 0:
		err = fmt.Errorf("timestep count must be positive, got nt=%d", nt)
	case nit <= 0:
		err = fmt.Errorf("pressure iteration count must be positive, got nit=%d", nit)
	case dt <= 0:
		err = fmt.Errorf("timestep must be positive, got dt=%g", dt)
	case rho <= 0:
		err = fmt.Errorf("density must be positive, got rho=%g", rho)
	case nu <= 0:
		err = fmt.Errorf("viscosity must be positive, got nu=%g", nu)
	}
	if err != nil {
		return
	}
	c = &CavityFlow{
		Nx: nx, Ny: ny, Nt: nt, Nit: nit,
		Dt: dt, Rho: rho, Nu: nu, LidSpeed: lidSpeed,
		Dx:        2. / float64(nx-1),
		Dy:        2. / float64(ny-1),
		PlotSteps: 1,
	}
	c.X = utils.NewVectorLinspace(0, 2, nx)
	c.Y = utils.NewVectorLinspace(0, 2, ny)
	c.U = utils.NewMatrix(ny, nx)
	c.V = utils.NewMatrix(ny, nx)
	c.P = utils.NewMatrix(ny, nx)
	c.B = utils.NewMatrix(ny, nx)
	c.Un = utils.NewMatrix(ny, nx)
	c.Vn = utils.NewMatrix(ny, nx)
	c.Pn = utils.NewMatrix(ny, nx)
	return
}

// SetInitialState overwrites (U, V, P) from caller-supplied fields, for
// restarts and tests. Shapes must match the configured grid.
func (c *CavityFlow) SetInitialState(u0, v0, p0 utils.Matrix) (err error) {
	for _, f := range []utils.Matrix{u0, v0, p0} {
		nr, nc := f.Dims()
		if nr != c.Ny || nc != c.Nx {
			return fmt.Errorf("initial field shape [%d,%d] does not match grid [%d,%d]",
				nr, nc, c.Ny, c.Nx)
		}
	}
	u0.CopyInto(c.U)
	v0.CopyInto(c.V)
	p0.CopyInto(c.P)
	return
}

// Step advances the solution one timestep: source term, then the fixed
// Jacobi pressure solve, then the explicit velocity update.
func (c *CavityFlow) Step() {
	c.BuildSourceTerm()
	c.PressurePoisson()
	c.AdvanceVelocity()
}

// Run executes all Nt timesteps. The field matrices are owned by c and
// mutated in place; they are also returned for convenience.
func (c *CavityFlow) Run(showGraph bool, graphDelay ...time.Duration) (U, V, P utils.Matrix) {
	var (
		logFrequency = 100
	)
	fmt.Printf("Lid-Driven Cavity Flow in 2 Dimensions\n")
	fmt.Printf("Grid = %d x %d, dx = %8.5f, dy = %8.5f\n", c.Nx, c.Ny, c.Dx, c.Dy)
	fmt.Printf("dt = %8.5f, nt = %d, nit = %d, rho = %8.4f, nu = %8.4f, lid = %8.4f\n\n",
		c.Dt, c.Nt, c.Nit, c.Rho, c.Nu, c.LidSpeed)
	for tstep := 1; tstep <= c.Nt; tstep++ {
		c.Step()
		if showGraph && tstep%c.PlotSteps == 0 {
			c.Plot(graphDelay)
		}
		if tstep%logFrequency == 0 || tstep == c.Nt {
			msg := fmt.Sprintf("step = %6d, time = %8.4f, umax = %8.5f, vmin = %8.5f, pmax = %8.5f",
				tstep, float64(tstep)*c.Dt, c.U.Max(), c.V.Min(), c.P.Max())
			if c.Monitor != nil {
				msg += fmt.Sprintf(", poisson_resid = %10.3e", c.Monitor.Residual(c.P, c.B))
			}
			fmt.Println(msg)
		}
	}
	return c.U, c.V, c.P
}

// CenterlineProfiles returns u along the vertical centerline x=1 and v
// along the horizontal centerline y=1, the standard cavity benchmark
// profiles.
func (c *CavityFlow) CenterlineProfiles() (uProfile, vProfile utils.Vector) {
	uProfile = c.U.Col(c.Nx / 2)
	vProfile = c.V.Row(c.Ny / 2)
	return
}

// Speed returns the velocity magnitude field.
func (c *CavityFlow) Speed() (R utils.Matrix) {
	R = utils.NewMatrix(c.Ny, c.Nx)
	for i, u := range c.U.DataP {
		v := c.V.DataP[i]
		R.DataP[i] = math.Sqrt(u*u + v*v)
	}
	return
}
