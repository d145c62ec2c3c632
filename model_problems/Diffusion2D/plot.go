package Diffusion2D

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var ErrPlotResolution = errors.New("Diffusion2D: heat map needs at least 2 x 2 cells")

// phiGrid adapts a PhiState to plotter.GridXYZ. Columns are x cells and rows
// are y cells, located at their physical coordinates.
type phiGrid struct {
	ps *PhiState
}

func (pg phiGrid) Dims() (c, r int)   { return pg.ps.Resolution() }
func (pg phiGrid) Z(c, r int) float64 { return pg.ps.Value(c, r) }
func (pg phiGrid) X(c int) float64    { xc, _ := pg.ps.Coordinates(c, 0); return xc }
func (pg phiGrid) Y(r int) float64    { _, yc := pg.ps.Coordinates(0, r); return yc }

type PlotMeta struct {
	Title         string
	Width, Height vg.Length
	Colors        int
}

func NewPlotMeta(title string) *PlotMeta {
	return &PlotMeta{
		Title:  title,
		Width:  8 * vg.Inch,
		Height: 8 * vg.Inch,
		Colors: 24,
	}
}

// PlotHeatMap writes a heat map of phi to fileName, the image format following
// the file extension (.png, .svg, .pdf, ...).
func (ps *PhiState) PlotHeatMap(fileName string, pm *PlotMeta) (err error) {
	if ps.xRes < 2 || ps.yRes < 2 {
		err = fmt.Errorf("%w: have %d x %d", ErrPlotResolution, ps.xRes, ps.yRes)
		return
	}
	if ps.geometry.Lx() == 0 || ps.geometry.Ly() == 0 {
		err = fmt.Errorf("%w: zero extent domain Lx = %v, Ly = %v",
			ErrPlotResolution, ps.geometry.Lx(), ps.geometry.Ly())
		return
	}
	if pm == nil {
		pm = NewPlotMeta("Phi")
	}
	var (
		p  = plot.New()
		hm = plotter.NewHeatMap(phiGrid{ps: ps}, palette.Heat(pm.Colors, 1))
	)
	if hm.Min == hm.Max {
		// A flat field has no color range, widen it around the value
		hm.Min, hm.Max = hm.Min-0.5, hm.Max+0.5
	}
	p.Title.Text = pm.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(hm)
	if err = p.Save(pm.Width, pm.Height, fileName); err != nil {
		err = fmt.Errorf("unable to save heat map to %s: %w", fileName, err)
	}
	return
}
