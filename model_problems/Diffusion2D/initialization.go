package Diffusion2D

import (
	"math"

	"github.com/notargets/fluxinit/utils"
)

// CellCoordinate is the physical coordinate of grid index i along an axis of
// length l sampled with res cells: l/res*i.
func CellCoordinate(l float64, res, i int) float64 {
	return l / float64(res) * float64(i)
}

// CosineProfile is the separable lobe cos(π/2 x) * cos(π/2 y), unity at the
// origin.
func CosineProfile(x, y float64) float64 {
	return cosLobe(x) * cosLobe(y)
}

func cosLobe(s float64) float64 { return math.Cos(math.Pi / 2 * s) }

// InitialCosineField returns the yRes x xRes matrix of CosineProfile sampled at
// the cell coordinates. The profile is separable, so the field is the outer
// product of a column of y lobes and a row of x lobes.
func InitialCosineField(lx, ly float64, xRes, yRes int) (phi utils.Matrix) {
	var (
		xc = make([]float64, xRes)
		yc = make([]float64, yRes)
	)
	for i := range xc {
		xc[i] = CellCoordinate(lx, xRes, i)
	}
	for j := range yc {
		yc[j] = CellCoordinate(ly, yRes, j)
	}
	var (
		xLobe = utils.NewRowVector(xc).Map(cosLobe)
		yLobe = utils.NewColVector(yc).Map(cosLobe)
	)
	phi = yLobe.Mul(xLobe)
	return
}
