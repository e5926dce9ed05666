package Cavity2D

import (
	"path/filepath"
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/mhw32/cavityflow/utils"
)

// Plot renders the centerline velocity profiles while the solver runs:
// u(y) on the vertical centerline and v(x) on the horizontal one. These
// are the standard cavity benchmark curves and show the primary vortex
// forming.
func (c *CavityFlow) Plot(graphDelay []time.Duration) {
	var (
		ymin, ymax = float32(-1.2), float32(1.2)
	)
	c.plotOnce.Do(func() {
		c.chart = chart2d.NewChart2D(1280, 1024, float32(0), float32(2), ymin, ymax)
		c.colorMap = utils2.NewColorMap(-1, 1, 1)
		go c.chart.Plot()
	})
	uProfile, vProfile := c.CenterlineProfiles()
	pSeries := func(name string, x, f []float64, color float32) {
		if err := c.chart.AddSeries(name, x, f,
			chart2d.NoGlyph, chart2d.Solid, c.colorMap.GetRGB(color)); err != nil {
			panic("unable to add graph series")
		}
	}
	pSeries("U centerline", c.Y.DataP, uProfile.DataP, -0.7)
	pSeries("V centerline", c.X.DataP, vProfile.DataP, 0.7)
	c.frameCount++
	if len(graphDelay) != 0 {
		time.Sleep(graphDelay[0])
	}
}

// fieldGrid adapts a field matrix plus node coordinates to
// plotter.GridXYZ.
type fieldGrid struct {
	f    utils.Matrix
	x, y utils.Vector
}

func (g fieldGrid) Dims() (cols, rows int) {
	rows, cols = g.f.Dims()
	return
}
func (g fieldGrid) Z(col, row int) float64 { return g.f.At(row, col) }
func (g fieldGrid) X(col int) float64      { return g.x.AtVec(col) }
func (g fieldGrid) Y(row int) float64      { return g.y.AtVec(row) }

// SavePlots writes the two summary plot files into dir: the pressure
// field as contours over a heatmap, and the velocity magnitude as a
// heatmap.
func (c *CavityFlow) SavePlots(dir string) (err error) {
	if err = c.savePressurePlot(filepath.Join(dir, "pressure.png")); err != nil {
		return
	}
	err = c.saveSpeedPlot(filepath.Join(dir, "velocity.png"))
	return
}

func (c *CavityFlow) savePressurePlot(fileName string) (err error) {
	var (
		grid = fieldGrid{f: c.P, x: c.X, y: c.Y}
		pal  = palette.Heat(16, 1)
	)
	plt := plot.New()
	plt.Title.Text = "Cavity Flow Pressure"
	plt.X.Label.Text = "X"
	plt.Y.Label.Text = "Y"
	plt.Add(plotter.NewHeatMap(grid, pal))
	plt.Add(plotter.NewContour(grid, nil, pal))
	err = plt.Save(7*vg.Inch, 7*vg.Inch, fileName)
	return
}

func (c *CavityFlow) saveSpeedPlot(fileName string) (err error) {
	var (
		grid = fieldGrid{f: c.Speed(), x: c.X, y: c.Y}
		pal  = palette.Heat(16, 1)
	)
	plt := plot.New()
	plt.Title.Text = "Cavity Flow Velocity Magnitude"
	plt.X.Label.Text = "X"
	plt.Y.Label.Text = "Y"
	plt.Add(plotter.NewHeatMap(grid, pal))
	err = plt.Save(7*vg.Inch, 7*vg.Inch, fileName)
	return
}
