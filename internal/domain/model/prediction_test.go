package model_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/model"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/valueobject"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/testutil"
)

func TestNewOrderPrediction(t *testing.T) {
	t.Run("satisfied outcome", func(t *testing.T) {
		p, err := model.NewOrderPrediction(1, testutil.ValidOrder())
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, p.ID())
		assert.Equal(t, 1, p.Class())
		assert.Equal(t, valueobject.LabelSatisfied, p.Label())
		assert.True(t, p.Price().Equal(decimal.NewFromFloat(100)))
		assert.Equal(t, "SP", p.CustomerState())
		assert.Equal(t, "credit_card", p.PaymentType())
		assert.False(t, p.PredictedAt().IsZero())

		events := p.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "satisfaction.prediction.completed", events[0].EventType())
		assert.Equal(t, p.ID(), events[0].AggregateID())
	})

	t.Run("dissatisfied outcome emits a detection event", func(t *testing.T) {
		p, err := model.NewOrderPrediction(0, testutil.ValidOrder())
		require.NoError(t, err)

		assert.Equal(t, valueobject.LabelDissatisfied, p.Label())

		events := p.DomainEvents()
		require.Len(t, events, 2)
		assert.Equal(t, "satisfaction.prediction.completed", events[0].EventType())
		assert.Equal(t, "satisfaction.dissatisfaction.detected", events[1].EventType())
	})

	t.Run("domain events drain on read", func(t *testing.T) {
		p, err := model.NewOrderPrediction(1, testutil.ValidOrder())
		require.NoError(t, err)

		require.NotEmpty(t, p.DomainEvents())
		assert.Empty(t, p.DomainEvents())
	})

	t.Run("missing price is rejected", func(t *testing.T) {
		order := testutil.ValidOrder()
		order.Price = nil

		_, err := model.NewOrderPrediction(1, order)
		assert.Error(t, err)
	})

	t.Run("optional reporting fields default to empty", func(t *testing.T) {
		order := testutil.ValidOrder()
		order.CustomerState = nil
		order.PaymentType = nil

		p, err := model.NewOrderPrediction(1, order)
		require.NoError(t, err)
		assert.Empty(t, p.CustomerState())
		assert.Empty(t, p.PaymentType())
	})
}

func TestReconstructPrediction(t *testing.T) {
	id := uuid.New()
	predictedAt := time.Date(2018, 3, 10, 12, 0, 0, 0, time.UTC)
	createdAt := predictedAt.Add(time.Second)

	p := model.ReconstructPrediction(
		id, 0, valueobject.LabelDissatisfied, decimal.NewFromInt(75),
		"RJ", "boleto", predictedAt, createdAt,
	)

	assert.Equal(t, id, p.ID())
	assert.Equal(t, 0, p.Class())
	assert.Equal(t, valueobject.LabelDissatisfied, p.Label())
	assert.Equal(t, "RJ", p.CustomerState())
	assert.Equal(t, "boleto", p.PaymentType())
	assert.Equal(t, predictedAt, p.PredictedAt())
	assert.Equal(t, createdAt, p.CreatedAt())

	// Reconstruction replays persisted state, it is not a new decision.
	assert.Empty(t, p.DomainEvents())
}
