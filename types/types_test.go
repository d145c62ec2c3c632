package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypes(t *testing.T) {
	{
		tokens := []string{"core", "CORE2", " Reflector ", "Core"}
		regions := []Region{Core, Core2, Reflector, Core}
		for i, token := range tokens {
			r, err := NewRegion(token)
			require.NoError(t, err)
			assert.Equal(t, regions[i], r)
		}
		// "regular" is a superseded alias for core2 and is not accepted
		for _, token := range []string{"regular", "", "core3"} {
			_, err := NewRegion(token)
			assert.True(t, errors.Is(err, ErrUnknownRegion), "token %q", token)
		}
		assert.Equal(t, "core", Core.String())
		assert.Equal(t, "core2", Core2.String())
		assert.Equal(t, "reflector", Reflector.String())
		assert.Equal(t, "Region(9)", Region(9).String())
	}
	{
		pm := PieceMaterials{
			Core:      Material{DiffusionCoefficient: 0.185, SigmaA: 0.15},
			Core2:     Material{DiffusionCoefficient: 0.12, SigmaA: 0.10, SigmaF: 0.01},
			Reflector: Material{DiffusionCoefficient: 0.65, SigmaA: 0.12, SigmaF: 0.185},
		}
		assert.Equal(t, &pm.Core, pm.Get(Core))
		assert.Equal(t, &pm.Core2, pm.Get(Core2))
		assert.Equal(t, &pm.Reflector, pm.Get(Reflector))
		assert.Nil(t, pm.Get(Region(9)))
		// Get is a view into the set
		assert.True(t, pm.Get(Core2) == &pm.Core2)
		assert.Equal(t, "{D:  0.18500, SigmaA:  0.15000, SigmaF:  0.00000}", pm.Core.String())
		assert.Contains(t, pm.String(), "reflector = {D:  0.65000")
	}
}
