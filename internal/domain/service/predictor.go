package service

import (
	"fmt"

	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/port"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/valueobject"
)

// Predict invokes the trained classifier on the scaled matrix and maps each
// binary class to its human-readable label. Side-effect free.
func Predict(classifier port.Classifier, scaled [][]float64) ([]int, []valueobject.Label, error) {
	classes, err := classifier.Predict(scaled)
	if err != nil {
		return nil, nil, fmt.Errorf("classifier predict: %w", err)
	}
	if len(classes) != len(scaled) {
		return nil, nil, fmt.Errorf("classifier returned %d classes for %d rows", len(classes), len(scaled))
	}

	labels := make([]valueobject.Label, len(classes))
	for i, c := range classes {
		labels[i] = valueobject.LabelFromClass(c)
	}

	return classes, labels, nil
}
