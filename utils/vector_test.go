package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinspace(t *testing.T) {
	{
		req, err := Linspace(0, 5, 6)
		require.NoError(t, err)
		assert.Equal(t, [][]float64{{0, 1, 2, 3, 4, 5}}, req.Rows())
	}
	{
		req, err := Linspace(0, 10, 11)
		require.NoError(t, err)
		nr, nc := req.Dims()
		assert.Equal(t, 1, nr)
		assert.Equal(t, 11, nc)
		for i := 0; i < nc; i++ {
			assert.Equal(t, float64(i), req.At(0, i))
		}
	}
	{
		req, err := Linspace(-1, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, -1., req.At(0, 0))
		assert.Equal(t, 1., req.At(0, 1))
		req, err = Linspace(1, -1, 3)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 0, -1}, req.Data())
	}
	{
		req, err := Linspace(0, 1, 7)
		require.NoError(t, err)
		assert.Equal(t, 0., req.At(0, 0))
		assert.InDelta(t, 1., req.At(0, 6), NODETOL)
	}
	for _, n := range []int{1, 0, -3} {
		_, err := Linspace(0, 1, n)
		assert.True(t, errors.Is(err, ErrDegenerateLinspace), "n = %d", n)
	}
	{
		F, err := LinspaceFixed[D4](0, 3)
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 1, 2, 3}, F.Matrix().Data())
		_, err = LinspaceFixed[D1](0, 3)
		assert.True(t, errors.Is(err, ErrDegenerateLinspace))
	}
}
