package service_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/service"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/testutil"
)

func TestDeriveDatetimeFeatures(t *testing.T) {
	t.Run("computes whole-day deltas against the purchase anchor", func(t *testing.T) {
		order := testutil.ValidOrder()
		fv := service.FeatureVector{}

		require.NoError(t, service.DeriveDatetimeFeatures(order, fv))

		// 2018-03-02 11:00 is 24.5h after purchase: one whole day.
		assert.Equal(t, 1.0, fv["delta_approved"])
		assert.Equal(t, 18.0, fv["delta_estimated_delivery"])
		assert.Equal(t, 6.0, fv["delta_shipping_limit"])
		assert.Equal(t, 9.0, fv["delta_delivered_customer"])
		assert.Equal(t, 4.0, fv["delta_delivered_carrier"])
	})

	t.Run("extracts purchase calendar components", func(t *testing.T) {
		fv := service.FeatureVector{}

		require.NoError(t, service.DeriveDatetimeFeatures(testutil.ValidOrder(), fv))

		assert.Equal(t, 2018.0, fv["purchase_year"])
		assert.Equal(t, 3.0, fv["purchase_month"])
		assert.Equal(t, 1.0, fv["purchase_day"])
	})

	t.Run("allows negative deltas without clamping", func(t *testing.T) {
		order := testutil.ValidOrder()
		order.OrderApprovedAt = testutil.Ptr("2018-02-27 10:00:00")
		fv := service.FeatureVector{}

		require.NoError(t, service.DeriveDatetimeFeatures(order, fv))

		// 48.5 hours before purchase truncates toward zero to -2 days.
		assert.Equal(t, -2.0, fv["delta_approved"])
	})

	t.Run("truncates sub-day differences toward zero in both directions", func(t *testing.T) {
		order := testutil.ValidOrder()
		order.OrderApprovedAt = testutil.Ptr("2018-03-01 08:30:00")
		fv := service.FeatureVector{}

		require.NoError(t, service.DeriveDatetimeFeatures(order, fv))

		// Two hours before purchase is zero whole days, not -1.
		assert.Equal(t, 0.0, fv["delta_approved"])
	})

	t.Run("absent timestamp propagates a missing delta", func(t *testing.T) {
		order := testutil.ValidOrder()
		order.OrderDeliveredCustomerDate = nil
		fv := service.FeatureVector{}

		require.NoError(t, service.DeriveDatetimeFeatures(order, fv))

		assert.True(t, math.IsNaN(fv["delta_delivered_customer"]))
		assert.Equal(t, 1.0, fv["delta_approved"])
	})

	t.Run("unparsable present timestamp is a date parse error", func(t *testing.T) {
		order := testutil.ValidOrder()
		order.ShippingLimitDate = testutil.Ptr("not-a-date")

		err := service.DeriveDatetimeFeatures(order, service.FeatureVector{})

		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrDateParse)
	})

	t.Run("missing purchase anchor is an error", func(t *testing.T) {
		order := testutil.ValidOrder()
		order.OrderPurchaseTimestamp = nil

		err := service.DeriveDatetimeFeatures(order, service.FeatureVector{})

		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrDateParse)
	})

	t.Run("accepts RFC3339 timestamps", func(t *testing.T) {
		order := testutil.ValidOrder()
		order.OrderPurchaseTimestamp = testutil.Ptr("2018-03-01T10:30:00Z")
		fv := service.FeatureVector{}

		require.NoError(t, service.DeriveDatetimeFeatures(order, fv))
		assert.Equal(t, 2018.0, fv["purchase_year"])
	})
}
