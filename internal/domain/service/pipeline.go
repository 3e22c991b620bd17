package service

import (
	"fmt"

	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/model"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/valueobject"
)

// Pipeline is the deterministic transformation from raw order records to
// model-ready vectors plus the application of the persisted scaler/model
// pair. Both the single-record API path and the batch path run through it;
// the only batch-dependent step is the high-freight flag.
type Pipeline struct{}

// NewPipeline creates the feature/inference pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Result is the per-batch pipeline output, one class and label per input
// row in input order.
type Result struct {
	Classes []int
	Labels  []valueobject.Label

	// UnseenCategories counts categorical values across the batch that had
	// no matching indicator column.
	UnseenCategories int
}

// Run derives features for every order, assembles and scales the canonical
// matrix, and predicts. Errors are request-scoped: any derivation or
// assembly failure aborts the whole call, with no partial output, no
// default substitution and no retry.
func (p *Pipeline) Run(arts Artifacts, orders []model.Order) (Result, error) {
	if len(orders) == 0 {
		return Result{}, fmt.Errorf("no orders to predict")
	}

	// Pass one: per-row derivation.
	vectors := make([]FeatureVector, len(orders))
	for i, o := range orders {
		fv := baseNumericFeatures(o)
		if err := DeriveDatetimeFeatures(o, fv); err != nil {
			return Result{}, fmt.Errorf("row %d: %w", i, err)
		}
		DeriveProductFeatures(o, fv)
		vectors[i] = fv
	}

	// Pass two: the batch-median-dependent flag.
	ApplyHighFreightFlag(vectors)

	// Encode and assemble to the canonical column order.
	unseen := 0
	matrix := make([][]float64, len(orders))
	for i, o := range orders {
		indicators, u := EncodeCategoricals(o, arts.Vocabulary)
		unseen += u

		row, err := AssembleRow(vectors[i], indicators, arts.Columns)
		if err != nil {
			return Result{}, fmt.Errorf("row %d: %w", i, err)
		}
		matrix[i] = row
	}

	scaled, err := arts.Scaler.Transform(matrix)
	if err != nil {
		return Result{}, fmt.Errorf("scaler transform: %w", err)
	}

	classes, labels, err := Predict(arts.Classifier, scaled)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Classes:          classes,
		Labels:           labels,
		UnseenCategories: unseen,
	}, nil
}
