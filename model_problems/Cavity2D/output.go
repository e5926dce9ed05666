package Cavity2D

import (
	"bufio"
	"fmt"
	"os"

	"github.com/mhw32/cavityflow/utils"
)

// WriteVTK writes (u, v, p) as an ASCII VTK structured-points file,
// readable by ParaView/VisIt and by the surrogate-training loaders.
func (c *CavityFlow) WriteVTK(fileName string, step int) (err error) {
	var (
		f *os.File
	)
	if f, err = os.OpenFile(fileName, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0666); err != nil {
		return
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	defer w.Flush()

	fmt.Fprintf(w, "# vtk DataFile Version 2.0\n")
	fmt.Fprintf(w, "cavity flow, step %d, time %16.9e\n", step, float64(step)*c.Dt)
	fmt.Fprintf(w, "ASCII\n")
	fmt.Fprintf(w, "DATASET STRUCTURED_POINTS\n")
	fmt.Fprintf(w, "DIMENSIONS %d %d %d\n", c.Nx, c.Ny, 1)
	fmt.Fprintf(w, "ORIGIN  %16.9e %16.9e %16.9e\n", 0., 0., 0.)
	fmt.Fprintf(w, "SPACING %16.9e %16.9e %16.9e\n", c.Dx, c.Dy, 1.)
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "POINT_DATA %d\n", c.Nx*c.Ny)

	writeScalars := func(name string, field utils.Matrix) {
		fmt.Fprintf(w, "SCALARS %s float\n", name)
		fmt.Fprintf(w, "LOOKUP_TABLE default\n")
		for _, val := range field.DataP {
			fmt.Fprintf(w, "%16.9e\n", val)
		}
	}
	writeScalars("u", c.U)
	writeScalars("v", c.V)
	writeScalars("p", c.P)
	return
}

// WriteDataFile dumps a field as "x y value" rows with a blank line
// between grid rows, the gnuplot-friendly layout.
func (c *CavityFlow) WriteDataFile(fileName string, field utils.Matrix) (err error) {
	var (
		f *os.File
	)
	if f, err = os.Create(fileName); err != nil {
		return
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	defer w.Flush()
	for i := 0; i < c.Ny; i++ {
		for j := 0; j < c.Nx; j++ {
			fmt.Fprintf(w, "%f %f %f\n", c.X.AtVec(j), c.Y.AtVec(i), field.At(i, j))
		}
		fmt.Fprintln(w)
	}
	return
}
