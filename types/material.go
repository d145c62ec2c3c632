package types

import "fmt"

// Material holds the coefficients governing diffusion in one region.
type Material struct {
	DiffusionCoefficient float64
	SigmaA               float64 // absorption cross section
	SigmaF               float64 // fission cross section
}

func (m Material) String() string {
	return fmt.Sprintf("{D: %8.5f, SigmaA: %8.5f, SigmaF: %8.5f}",
		m.DiffusionCoefficient, m.SigmaA, m.SigmaF)
}

// PieceMaterials is the material set of the three regions of a piece.
type PieceMaterials struct {
	Core, Core2, Reflector Material
}

// Get returns a pointer into the set for region r, nil for an unknown region.
func (pm *PieceMaterials) Get(r Region) *Material {
	switch r {
	case Core:
		return &pm.Core
	case Core2:
		return &pm.Core2
	case Reflector:
		return &pm.Reflector
	}
	return nil
}

func (pm PieceMaterials) String() string {
	var s string
	for _, r := range Regions {
		s += fmt.Sprintf("%-10s= %v\n", r, *pm.Get(r))
	}
	return s
}
