package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/model"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/port"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/valueobject"
)

// PredictionRepository implements port.PredictionRepository using PostgreSQL.
type PredictionRepository struct {
	pool *pgxpool.Pool
}

// NewPredictionRepository creates a new PostgreSQL-backed prediction repository.
func NewPredictionRepository(pool *pgxpool.Pool) *PredictionRepository {
	return &PredictionRepository{pool: pool}
}

// Save persists an order prediction.
func (r *PredictionRepository) Save(ctx context.Context, p *model.OrderPrediction) error {
	query := `
		INSERT INTO order_predictions (
			id, class, label, price, customer_state, payment_type,
			predicted_at, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		p.ID(),
		p.Class(),
		p.Label().String(),
		p.Price(),
		p.CustomerState(),
		p.PaymentType(),
		p.PredictedAt(),
		p.CreatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to save prediction: %w", err)
	}

	return nil
}

// FindByID retrieves a prediction by its unique identifier.
func (r *PredictionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.OrderPrediction, error) {
	query := `
		SELECT id, class, label, price, customer_state, payment_type,
			predicted_at, created_at
		FROM order_predictions
		WHERE id = $1
	`

	return scanPrediction(r.pool.QueryRow(ctx, query, id))
}

// FindRecent retrieves the most recent predictions, newest first.
func (r *PredictionRepository) FindRecent(ctx context.Context, limit int) ([]*model.OrderPrediction, error) {
	query := `
		SELECT id, class, label, price, customer_state, payment_type,
			predicted_at, created_at
		FROM order_predictions
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query predictions: %w", err)
	}
	defer rows.Close()

	var predictions []*model.OrderPrediction
	for rows.Next() {
		p, err := scanPrediction(rows)
		if err != nil {
			return nil, err
		}
		predictions = append(predictions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate predictions: %w", err)
	}

	return predictions, nil
}

func scanPrediction(row pgx.Row) (*model.OrderPrediction, error) {
	var (
		id            uuid.UUID
		class         int
		labelStr      string
		price         decimal.Decimal
		customerState string
		paymentType   string
		predictedAt   time.Time
		createdAt     time.Time
	)

	err := row.Scan(&id, &class, &labelStr, &price, &customerState, &paymentType, &predictedAt, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrPredictionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan prediction: %w", err)
	}

	label, err := valueobject.LabelFromString(labelStr)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct prediction %s: %w", id, err)
	}

	return model.ReconstructPrediction(id, class, label, price, customerState, paymentType, predictedAt, createdAt), nil
}
