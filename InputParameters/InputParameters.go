package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"

	"github.com/notargets/fluxinit/geometry2D"
	"github.com/notargets/fluxinit/types"
)

type MaterialParameters struct {
	DiffusionCoefficient float64 `json:"DiffusionCoefficient"`
	SigmaA               float64 `json:"SigmaA"`
	SigmaF               float64 `json:"SigmaF"`
}

// Parameters obtained from the YAML input file
type InputParameters2D struct {
	Title     string                        `json:"Title"`
	A         float64                       `json:"A"`  // x threshold, core to reflector
	B         float64                       `json:"B"`  // y threshold, core2 to core
	Lx        float64                       `json:"Lx"` // domain extent in x
	Ly        float64                       `json:"Ly"` // domain extent in y
	XRes      int                           `json:"XRes"`
	YRes      int                           `json:"YRes"`
	Materials map[string]MaterialParameters `json:"Materials"` // keyed by region name
}

const ExampleFile = `
########################################
Title: "Test Case"
A: 50.
B: 60.
Lx: 100.
Ly: 100.
XRes: 20
YRes: 20
Materials:
  reflector:
    DiffusionCoefficient: 0.65
    SigmaA: 0.12
    SigmaF: 0.185
  core2:
    DiffusionCoefficient: 0.12
    SigmaA: 0.10
    SigmaF: 0.01
  core:
    DiffusionCoefficient: 0.185
    SigmaA: 0.15
    SigmaF: 0.0
########################################
`

func (ip *InputParameters2D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// PieceMaterials maps the Materials section onto the three regions. Every
// region must be present exactly once and no other names are accepted.
func (ip *InputParameters2D) PieceMaterials() (pm types.PieceMaterials, err error) {
	var (
		seen = make(map[types.Region]bool)
	)
	for name, mp := range ip.Materials {
		var r types.Region
		if r, err = types.NewRegion(name); err != nil {
			err = fmt.Errorf("input Materials: %w", err)
			return
		}
		if seen[r] {
			err = fmt.Errorf("input Materials: region %s given more than once", r)
			return
		}
		seen[r] = true
		*pm.Get(r) = types.Material{
			DiffusionCoefficient: mp.DiffusionCoefficient,
			SigmaA:               mp.SigmaA,
			SigmaF:               mp.SigmaF,
		}
	}
	for _, r := range types.Regions {
		if !seen[r] {
			err = fmt.Errorf("input Materials: missing region %s", r)
			return
		}
	}
	return
}

func (ip *InputParameters2D) Geometry() (g geometry2D.Geometry, err error) {
	var (
		pm types.PieceMaterials
	)
	if pm, err = ip.PieceMaterials(); err != nil {
		return
	}
	return geometry2D.NewGeometry(ip.A, ip.B, ip.Lx, ip.Ly, pm)
}

func (ip *InputParameters2D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= A\n", ip.A)
	fmt.Printf("%8.5f\t\t= B\n", ip.B)
	fmt.Printf("%8.5f\t\t= Lx\n", ip.Lx)
	fmt.Printf("%8.5f\t\t= Ly\n", ip.Ly)
	fmt.Printf("[%d x %d]\t\t= Resolution\n", ip.XRes, ip.YRes)
	keys := make([]string, len(ip.Materials))
	i := 0
	for k := range ip.Materials {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("Materials[%s] = %+v\n", key, ip.Materials[key])
	}
}
