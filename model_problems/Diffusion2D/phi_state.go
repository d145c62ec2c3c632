package Diffusion2D

import (
	"errors"
	"fmt"
	"strings"

	"github.com/notargets/fluxinit/geometry2D"
	"github.com/notargets/fluxinit/types"
	"github.com/notargets/fluxinit/utils"
)

/*
The steady one group diffusion eigenvalue problem this state seeds is

			-∇⋅(D ∇φ) + Σa φ = (1/k) νΣf φ

with D, Σa and Σf piecewise constant over the core, core2 and reflector
regions of the piece. PhiState holds φ sampled on a regular
XRes x YRes grid over [0,Lx] x [0,Ly], stored as a YRes x XRes matrix so that
Phi().At(y, x) is the value of cell (x, y).
*/
type PhiState struct {
	geometry   geometry2D.Geometry
	xRes, yRes int
	phi        utils.Matrix
}

var ErrBadResolution = errors.New("Diffusion2D: grid resolution must be non negative")

// BuildPhiState samples the initial field over the geometry. A zero
// resolution on either axis gives an empty field of shape yRes x xRes.
func BuildPhiState(g geometry2D.Geometry, xRes, yRes int) (ps *PhiState, err error) {
	if xRes < 0 || yRes < 0 {
		err = fmt.Errorf("%w: xRes = %d, yRes = %d", ErrBadResolution, xRes, yRes)
		return
	}
	ps = &PhiState{
		geometry: g,
		xRes:     xRes,
		yRes:     yRes,
		phi:      InitialCosineField(g.Lx(), g.Ly(), xRes, yRes),
	}
	return
}

// NewPhiState is BuildPhiState with the grid resolution fixed by the types X and Y.
func NewPhiState[X, Y utils.Dim](g geometry2D.Geometry) (ps *PhiState, err error) {
	return BuildPhiState(g, utils.DimLen[X](), utils.DimLen[Y]())
}

func (ps *PhiState) Geometry() geometry2D.Geometry { return ps.geometry }
func (ps *PhiState) Resolution() (xRes, yRes int)  { return ps.xRes, ps.yRes }

// Phi returns the field as a YRes x XRes matrix.
func (ps *PhiState) Phi() utils.Matrix { return ps.phi }

// Value returns phi at grid cell (x, y).
func (ps *PhiState) Value(x, y int) float64 { return ps.phi.At(y, x) }

// Coordinates returns the physical coordinate of grid cell (x, y).
func (ps *PhiState) Coordinates(x, y int) (xc, yc float64) {
	return CellCoordinate(ps.geometry.Lx(), ps.xRes, x), CellCoordinate(ps.geometry.Ly(), ps.yRes, y)
}

// RegionMap classifies every grid cell by its material region, indexed [y][x].
// The initial field does not depend on it; it is the per cell material lookup
// a solver stage consumes.
func (ps *PhiState) RegionMap() (rm [][]types.Region) {
	rm = make([][]types.Region, ps.yRes)
	for y := range rm {
		rm[y] = make([]types.Region, ps.xRes)
		for x := range rm[y] {
			rm[y][x] = ps.geometry.GetRegion(ps.Coordinates(x, y))
		}
	}
	return
}

// RegionCounts tallies the number of grid cells in each region.
func (ps *PhiState) RegionCounts() (counts map[types.Region]int) {
	counts = make(map[types.Region]int, len(types.Regions))
	for _, row := range ps.RegionMap() {
		for _, r := range row {
			counts[r]++
		}
	}
	return
}

func (ps *PhiState) String() string {
	var (
		sb strings.Builder
	)
	sb.WriteString(ps.geometry.String())
	fmt.Fprintf(&sb, "Phi [%d x %d]:\n", ps.yRes, ps.xRes)
	for y := 0; y < ps.yRes; y++ {
		for x := 0; x < ps.xRes; x++ {
			if x != 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%8.5f", ps.Value(x, y))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
