package artifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardScalerTransform(t *testing.T) {
	t.Run("standardizes each column independently", func(t *testing.T) {
		s, err := newStandardScaler(scalerFile{
			Mean:  []float64{10, 100},
			Scale: []float64{2, 50},
		})
		require.NoError(t, err)

		out, err := s.Transform([][]float64{{14, 0}, {10, 150}})
		require.NoError(t, err)
		assert.Equal(t, [][]float64{{2, -2}, {0, 1}}, out)
	})

	t.Run("zero scale falls back to unit scale", func(t *testing.T) {
		s, err := newStandardScaler(scalerFile{
			Mean:  []float64{5},
			Scale: []float64{0},
		})
		require.NoError(t, err)

		out, err := s.Transform([][]float64{{8}})
		require.NoError(t, err)
		assert.Equal(t, 3.0, out[0][0])
	})

	t.Run("input rows are not mutated", func(t *testing.T) {
		s, err := newStandardScaler(scalerFile{
			Mean:  []float64{1},
			Scale: []float64{2},
		})
		require.NoError(t, err)

		in := [][]float64{{5}}
		_, err = s.Transform(in)
		require.NoError(t, err)
		assert.Equal(t, 5.0, in[0][0])
	})

	t.Run("column count mismatch is an error", func(t *testing.T) {
		s, err := newStandardScaler(scalerFile{
			Mean:  []float64{1, 2},
			Scale: []float64{1, 1},
		})
		require.NoError(t, err)

		_, err = s.Transform([][]float64{{1}})
		assert.Error(t, err)
	})

	t.Run("default type name", func(t *testing.T) {
		s, err := newStandardScaler(scalerFile{Mean: []float64{0}, Scale: []float64{1}})
		require.NoError(t, err)
		assert.Equal(t, "StandardScaler", s.TypeName())
	})
}

func TestNewStandardScalerValidation(t *testing.T) {
	t.Run("empty mean", func(t *testing.T) {
		_, err := newStandardScaler(scalerFile{})
		assert.Error(t, err)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := newStandardScaler(scalerFile{Mean: []float64{1}, Scale: []float64{1, 2}})
		assert.Error(t, err)
	})
}
