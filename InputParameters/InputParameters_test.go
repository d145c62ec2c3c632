package InputParameters

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/fluxinit/geometry2D"
	"github.com/notargets/fluxinit/types"
)

func TestInputParameters(t *testing.T) {
	{
		var ip InputParameters2D
		require.NoError(t, ip.Parse([]byte(ExampleFile)))
		assert.Equal(t, "Test Case", ip.Title)
		assert.Equal(t, 50., ip.A)
		assert.Equal(t, 60., ip.B)
		assert.Equal(t, 100., ip.Lx)
		assert.Equal(t, 100., ip.Ly)
		assert.Equal(t, 20, ip.XRes)
		assert.Equal(t, 20, ip.YRes)
		assert.Equal(t, 0.185, ip.Materials["reflector"].SigmaF)
		ip.Print()

		g, err := ip.Geometry()
		require.NoError(t, err)
		assert.Equal(t, 50., g.A())
		pm := g.Materials()
		assert.Equal(t, types.Material{DiffusionCoefficient: 0.65, SigmaA: 0.12, SigmaF: 0.185}, pm.Reflector)
		assert.Equal(t, types.Material{DiffusionCoefficient: 0.12, SigmaA: 0.10, SigmaF: 0.01}, pm.Core2)
		assert.Equal(t, types.Material{DiffusionCoefficient: 0.185, SigmaA: 0.15}, pm.Core)
	}
	// Region names are validated
	{
		var ip InputParameters2D
		require.NoError(t, ip.Parse([]byte(`
Lx: 1
Ly: 1
Materials:
  core: {DiffusionCoefficient: 1}
  regular: {DiffusionCoefficient: 1}
  reflector: {DiffusionCoefficient: 1}
`)))
		_, err := ip.Geometry()
		assert.True(t, errors.Is(err, types.ErrUnknownRegion))
	}
	{
		var ip InputParameters2D
		require.NoError(t, ip.Parse([]byte(`
Lx: 1
Ly: 1
Materials:
  core: {DiffusionCoefficient: 1}
  Core: {DiffusionCoefficient: 2}
  core2: {DiffusionCoefficient: 1}
  reflector: {DiffusionCoefficient: 1}
`)))
		_, err := ip.PieceMaterials()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "more than once")
	}
	{
		var ip InputParameters2D
		require.NoError(t, ip.Parse([]byte(`
Lx: 1
Ly: 1
Materials:
  core: {DiffusionCoefficient: 1}
`)))
		_, err := ip.PieceMaterials()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "missing region")
	}
	// Geometry validation surfaces through the mapper
	{
		var ip InputParameters2D
		require.NoError(t, ip.Parse([]byte(ExampleFile)))
		ip.A = 150
		_, err := ip.Geometry()
		assert.True(t, errors.Is(err, geometry2D.ErrThresholdOutOfRange))
	}
	assert.Error(t, (&InputParameters2D{}).Parse([]byte("Lx: [1, 2")))
}
