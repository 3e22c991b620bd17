package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/model"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/service"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/valueobject"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/testutil"
)

// capturingScaler keeps a copy of every matrix it is asked to transform.
type capturingScaler struct {
	testutil.IdentityScaler
	seen [][][]float64
}

func (s *capturingScaler) Transform(rows [][]float64) ([][]float64, error) {
	cp := make([][]float64, len(rows))
	for i, row := range rows {
		cp[i] = append([]float64(nil), row...)
	}
	s.seen = append(s.seen, cp)
	return s.IdentityScaler.Transform(rows)
}

func TestPipelineRun(t *testing.T) {
	pipeline := service.NewPipeline()

	t.Run("single order predicts the stubbed class", func(t *testing.T) {
		arts := testutil.Artifacts(1)

		res, err := pipeline.Run(arts, []model.Order{testutil.ValidOrder()})
		require.NoError(t, err)

		require.Len(t, res.Classes, 1)
		assert.Equal(t, 1, res.Classes[0])
		assert.Equal(t, valueobject.LabelSatisfied, res.Labels[0])
		assert.Zero(t, res.UnseenCategories)
	})

	t.Run("batch preserves input order", func(t *testing.T) {
		arts := testutil.Artifacts(0)
		orders := []model.Order{testutil.ValidOrder(), testutil.ValidOrder(), testutil.ValidOrder()}

		res, err := pipeline.Run(arts, orders)
		require.NoError(t, err)

		assert.Equal(t, []int{0, 0, 0}, res.Classes)
		require.Len(t, res.Labels, 3)
		for _, l := range res.Labels {
			assert.Equal(t, valueobject.LabelDissatisfied, l)
		}
	})

	t.Run("two runs over the same input build identical matrices", func(t *testing.T) {
		scaler := &capturingScaler{}
		arts := testutil.Artifacts(1)
		arts.Scaler = scaler
		orders := []model.Order{testutil.ValidOrder(), testutil.ValidOrder()}

		_, err := pipeline.Run(arts, orders)
		require.NoError(t, err)
		_, err = pipeline.Run(arts, orders)
		require.NoError(t, err)

		require.Len(t, scaler.seen, 2)
		assert.Equal(t, scaler.seen[0], scaler.seen[1])
	})

	t.Run("unseen categories are counted across the batch", func(t *testing.T) {
		arts := testutil.Artifacts(1)
		a := testutil.ValidOrder()
		a.PaymentType = testutil.Ptr("barter")
		b := testutil.ValidOrder()
		b.CustomerState = testutil.Ptr("XX")
		b.SellerState = testutil.Ptr("YY")

		res, err := pipeline.Run(arts, []model.Order{a, b})
		require.NoError(t, err)
		assert.Equal(t, 3, res.UnseenCategories)
	})

	t.Run("unparseable timestamp aborts the whole batch", func(t *testing.T) {
		arts := testutil.Artifacts(1)
		bad := testutil.ValidOrder()
		bad.OrderApprovedAt = testutil.Ptr("not-a-timestamp")

		_, err := pipeline.Run(arts, []model.Order{testutil.ValidOrder(), bad})
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrDateParse)
		assert.Contains(t, err.Error(), "row 1")
	})

	t.Run("empty batch is rejected", func(t *testing.T) {
		_, err := pipeline.Run(testutil.Artifacts(1), nil)
		assert.Error(t, err)
	})

	t.Run("classifier failure propagates", func(t *testing.T) {
		arts := testutil.Artifacts(1)
		arts.Classifier = &testutil.StubClassifier{Err: errors.New("model exploded")}

		_, err := pipeline.Run(arts, []model.Order{testutil.ValidOrder()})
		assert.Error(t, err)
	})
}
