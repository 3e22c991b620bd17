//go:build integration

package integration

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/model"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/port"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/valueobject"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/infrastructure/postgres"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/testutil"
)

func migrationsDir() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "..", "..", "migrations")
}

func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pg := testutil.NewPostgresContainer(ctx, t)
	t.Cleanup(func() { pg.Cleanup(t) })

	pg.RunMigrations(t, migrationsDir())

	return pg.Pool
}

func newTestPrediction(t *testing.T, class int) *model.OrderPrediction {
	t.Helper()

	p, err := model.NewOrderPrediction(class, testutil.ValidOrder())
	require.NoError(t, err)

	// Drain events so the repository roundtrip is the only thing under test.
	p.DomainEvents()
	return p
}

func TestPredictionRepository_SaveAndGet(t *testing.T) {
	pool := setupTestDB(t)
	repo := postgres.NewPredictionRepository(pool)
	ctx := context.Background()

	p := newTestPrediction(t, 1)

	err := repo.Save(ctx, p)
	require.NoError(t, err)

	retrieved, err := repo.FindByID(ctx, p.ID())
	require.NoError(t, err)

	assert.Equal(t, p.ID(), retrieved.ID())
	assert.Equal(t, p.Class(), retrieved.Class())
	assert.True(t, retrieved.Label().Equal(valueobject.LabelSatisfied))
	assert.True(t, retrieved.Price().Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "SP", retrieved.CustomerState())
	assert.Equal(t, "credit_card", retrieved.PaymentType())
	assert.WithinDuration(t, p.PredictedAt(), retrieved.PredictedAt(), time.Millisecond)
}

func TestPredictionRepository_FindByIDNotFound(t *testing.T) {
	pool := setupTestDB(t)
	repo := postgres.NewPredictionRepository(pool)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, port.ErrPredictionNotFound)
}

func TestPredictionRepository_FindRecent(t *testing.T) {
	pool := setupTestDB(t)
	repo := postgres.NewPredictionRepository(pool)
	ctx := context.Background()

	saved := make([]*model.OrderPrediction, 0, 5)
	for i := 0; i < 5; i++ {
		p := newTestPrediction(t, i%2)
		require.NoError(t, repo.Save(ctx, p))
		saved = append(saved, p)
		time.Sleep(5 * time.Millisecond)
	}

	recent, err := repo.FindRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)

	// Newest first.
	assert.Equal(t, saved[4].ID(), recent[0].ID())
	assert.Equal(t, saved[3].ID(), recent[1].ID())
	assert.Equal(t, saved[2].ID(), recent[2].ID())
}
