package Cavity2D

import (
	"github.com/exascience/pargo/parallel"
)

// interiorRows applies f to the interior row range [1, Ny-1), either
// serially or split into barrier-synchronized chunks. Every kernel
// reads only snapshot buffers, so chunks never race; the barrier
// between sweeps is parallel.Range returning.
func (c *CavityFlow) interiorRows(f func(low, high int)) {
	if c.NParallel > 1 {
		parallel.Range(1, c.Ny-1, c.NParallel, f)
	} else {
		f(1, c.Ny-1)
	}
}

// BuildSourceTerm fills the interior of B with the divergence-like
// source of the pressure Poisson equation,
//
//	b = rho * ( (du/dx + dv/dy)/dt - (du/dx)² - 2 du/dy dv/dx - (dv/dy)² )
//
// using centered differences of the current velocity field. Boundary
// cells of B stay zero; the Poisson sweep never reads them.
func (c *CavityFlow) BuildSourceTerm() {
	var (
		nx       = c.Nx
		uD, vD   = c.U.DataP, c.V.DataP
		bD       = c.B.DataP
		rho, dt  = c.Rho, c.Dt
		tdx, tdy = 2 * c.Dx, 2 * c.Dy
	)
	c.interiorRows(func(low, high int) {
		for i := low; i < high; i++ {
			for j := 1; j < nx-1; j++ {
				ind := i*nx + j
				dudx := (uD[ind+1] - uD[ind-1]) / tdx
				dudy := (uD[ind+nx] - uD[ind-nx]) / tdy
				dvdx := (vD[ind+1] - vD[ind-1]) / tdx
				dvdy := (vD[ind+nx] - vD[ind-nx]) / tdy
				bD[ind] = rho * ((dudx+dvdy)/dt - dudx*dudx - 2*dudy*dvdx - dvdy*dvdy)
			}
		}
	})
}

// PressurePoisson runs exactly Nit Jacobi sweeps on P with B as the
// source, reapplying the pressure boundary conditions after every
// sweep. Each sweep reads the Pn snapshot only, so the update order
// within a sweep is immaterial. There is no convergence check; see the
// package comment.
func (c *CavityFlow) PressurePoisson() {
	var (
		nx       = c.Nx
		pD, pnD  = c.P.DataP, c.Pn.DataP
		bD       = c.B.DataP
		dx2, dy2 = c.Dx * c.Dx, c.Dy * c.Dy
		rDenom   = 1. / (2. * (dx2 + dy2))
	)
	for q := 0; q < c.Nit; q++ {
		c.P.CopyInto(c.Pn)
		c.interiorRows(func(low, high int) {
			for i := low; i < high; i++ {
				for j := 1; j < nx-1; j++ {
					ind := i*nx + j
					pD[ind] = ((pnD[ind+1]+pnD[ind-1])*dy2+
						(pnD[ind+nx]+pnD[ind-nx])*dx2-
						dx2*dy2*bD[ind]) * rDenom
				}
			}
		})
		c.applyPressureBCs()
	}
}

// AdvanceVelocity advances U and V one explicit timestep: upwind
// advection, central pressure gradient, central diffusion, then the
// wall and lid boundary conditions are overwritten. Both updates read
// the (Un, Vn) snapshots taken before any write.
func (c *CavityFlow) AdvanceVelocity() {
	var (
		nx         = c.Nx
		uD, vD     = c.U.DataP, c.V.DataP
		pD         = c.P.DataP
		dt, rho    = c.Dt, c.Rho
		dx, dy, nu = c.Dx, c.Dy, c.Nu
		cx, cy     = dt / dx, dt / dy
		px, py     = dt / (2 * rho * dx), dt / (2 * rho * dy)
		fx, fy     = nu * dt / (dx * dx), nu * dt / (dy * dy)
	)
	c.U.CopyInto(c.Un)
	c.V.CopyInto(c.Vn)
	var (
		unD, vnD = c.Un.DataP, c.Vn.DataP
	)
	c.interiorRows(func(low, high int) {
		for i := low; i < high; i++ {
			for j := 1; j < nx-1; j++ {
				ind := i*nx + j
				un, vn := unD[ind], vnD[ind]
				uD[ind] = un -
					un*cx*(un-unD[ind-1]) -
					vn*cy*(un-unD[ind-nx]) -
					px*(pD[ind+1]-pD[ind-1]) +
					fx*(unD[ind+1]-2*un+unD[ind-1]) +
					fy*(unD[ind+nx]-2*un+unD[ind-nx])
				vD[ind] = vn -
					un*cx*(vn-vnD[ind-1]) -
					vn*cy*(vn-vnD[ind-nx]) -
					py*(pD[ind+nx]-pD[ind-nx]) +
					fx*(vnD[ind+1]-2*vn+vnD[ind-1]) +
					fy*(vnD[ind+nx]-2*vn+vnD[ind-nx])
			}
		}
	})
	c.applyVelocityBCs()
}
