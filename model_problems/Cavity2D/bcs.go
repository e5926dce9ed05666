package Cavity2D

/*
Boundary conditions, reapplied by overwrite every pass. Array row 0 is
the wall at y=0, row Ny-1 is the moving lid at y=2.

Pressure: zero-gradient (Neumann) on the left, right and floor walls;
the lid row is pinned to p=0, which fixes the pressure reference the
pure-Neumann problem would otherwise lack.

Velocity: no-slip on the three stationary walls, u=LidSpeed on the lid.
The lid row is written last so it owns the two lid corners.
*/

func (c *CavityFlow) applyPressureBCs() {
	var (
		nx, ny = c.Nx, c.Ny
		pD     = c.P.DataP
	)
	for i := 0; i < ny; i++ {
		pD[i*nx+nx-1] = pD[i*nx+nx-2] // dp/dx = 0 at x = 2
		pD[i*nx] = pD[i*nx+1]         // dp/dx = 0 at x = 0
	}
	copy(pD[:nx], pD[nx:2*nx]) // dp/dy = 0 at y = 0
	c.P.SetRow(-1, 0.)         // p = 0 at y = 2
}

func (c *CavityFlow) applyVelocityBCs() {
	c.U.SetRow(0, 0.)
	c.U.SetCol(0, 0.)
	c.U.SetCol(-1, 0.)
	c.U.SetRow(-1, c.LidSpeed) // moving lid
	c.V.SetRow(0, 0.)
	c.V.SetRow(-1, 0.)
	c.V.SetCol(0, 0.)
	c.V.SetCol(-1, 0.)
}
