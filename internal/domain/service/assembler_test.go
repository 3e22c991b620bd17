package service_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/service"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/testutil"
)

func fullVector(t *testing.T) service.FeatureVector {
	t.Helper()
	fv := service.FeatureVector{}
	for i, name := range testutil.CanonicalColumns()[:service.NumericColumnCount] {
		fv[name] = float64(i)
	}
	return fv
}

func TestAssembleRow(t *testing.T) {
	columns := testutil.CanonicalColumns()

	t.Run("row follows the canonical column order", func(t *testing.T) {
		fv := fullVector(t)
		indicators := map[string]bool{
			"payment_type_boleto": true,
			"customer_state_RJ":   true,
		}

		row, err := service.AssembleRow(fv, indicators, columns)
		require.NoError(t, err)
		require.Len(t, row, len(columns))

		for i := 0; i < service.NumericColumnCount; i++ {
			assert.Equal(t, float64(i), row[i], columns[i])
		}
		for i := service.NumericColumnCount; i < len(columns); i++ {
			want := 0.0
			if indicators[columns[i]] {
				want = 1.0
			}
			assert.Equal(t, want, row[i], columns[i])
		}
	})

	t.Run("missing numeric column is a schema mismatch", func(t *testing.T) {
		fv := fullVector(t)
		delete(fv, "net_revenue")

		_, err := service.AssembleRow(fv, nil, columns)
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrSchemaMismatch)
		assert.Contains(t, err.Error(), "net_revenue")
	})

	t.Run("NaN features pass through unchanged", func(t *testing.T) {
		fv := fullVector(t)
		fv["freight_percentage"] = math.NaN()

		row, err := service.AssembleRow(fv, nil, columns)
		require.NoError(t, err)
		assert.True(t, math.IsNaN(row[17]))
	})

	t.Run("no indicators yields an all-zero tail", func(t *testing.T) {
		row, err := service.AssembleRow(fullVector(t), nil, columns)
		require.NoError(t, err)
		for i := service.NumericColumnCount; i < len(columns); i++ {
			assert.Zero(t, row[i], columns[i])
		}
	})
}
