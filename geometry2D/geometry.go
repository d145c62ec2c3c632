package geometry2D

import (
	"errors"
	"fmt"
	"math"

	"github.com/notargets/fluxinit/types"
)

var (
	ErrBadExtent           = errors.New("geometry2D: domain extent must be finite and non negative")
	ErrThresholdOutOfRange = errors.New("geometry2D: region threshold outside of the domain")
)

/*
Geometry describes the piece being simulated, a rectangle [0,Lx] x [0,Ly]
split into three material regions:

	x > A           -> reflector
	x <= A, y > B   -> core
	x <= A, y <= B  -> core2

A Geometry is immutable once constructed.
*/
type Geometry struct {
	a, b      float64 // x threshold between core and reflector, y threshold between the cores
	lx, ly    float64 // domain extent
	materials types.PieceMaterials
}

// NewGeometry validates 0 <= a <= lx and 0 <= b <= ly. Thresholds outside the
// domain are rejected rather than silently collapsing the piece to fewer regions.
func NewGeometry(a, b, lx, ly float64, materials types.PieceMaterials) (g Geometry, err error) {
	for _, l := range []float64{lx, ly} {
		if math.IsInf(l, 0) || !(l >= 0) {
			err = fmt.Errorf("%w: Lx = %v, Ly = %v", ErrBadExtent, lx, ly)
			return
		}
	}
	if !(a >= 0 && a <= lx) {
		err = fmt.Errorf("%w: A = %v not in [0,%v]", ErrThresholdOutOfRange, a, lx)
		return
	}
	if !(b >= 0 && b <= ly) {
		err = fmt.Errorf("%w: B = %v not in [0,%v]", ErrThresholdOutOfRange, b, ly)
		return
	}
	g = Geometry{a: a, b: b, lx: lx, ly: ly, materials: materials}
	return
}

func (g Geometry) A() float64                      { return g.a }
func (g Geometry) B() float64                      { return g.b }
func (g Geometry) Lx() float64                     { return g.lx }
func (g Geometry) Ly() float64                     { return g.ly }
func (g Geometry) Materials() types.PieceMaterials { return g.materials }

// GetRegion classifies (x,y). The comparisons are strict, so a point on x == A
// is not reflector and a point on y == B is core2.
func (g Geometry) GetRegion(x, y float64) types.Region {
	if x > g.a {
		return types.Reflector
	} else if y > g.b {
		return types.Core
	}
	return types.Core2
}

// GetMaterial returns the coefficients governing (x,y). The pointer refers to
// the geometry's own material set and must not be written through.
func (g *Geometry) GetMaterial(x, y float64) *types.Material {
	return g.materials.Get(g.GetRegion(x, y))
}

func (g Geometry) String() string {
	return fmt.Sprintf("Geometry: A = %8.5f, B = %8.5f, Lx = %8.5f, Ly = %8.5f\n%v",
		g.a, g.b, g.lx, g.ly, g.materials)
}
