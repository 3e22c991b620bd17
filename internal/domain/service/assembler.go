package service

import "fmt"

// AssembleRow concatenates the derived numeric vector with the one-hot
// indicators and orders the result strictly by the canonical column list.
// A canonical numeric column absent from the vector is an ErrSchemaMismatch:
// the contract with the trained model is violated and the row must not be
// silently zero-filled. Indicator columns default to false.
func AssembleRow(fv FeatureVector, indicators map[string]bool, columns []string) ([]float64, error) {
	row := make([]float64, len(columns))

	for i, name := range columns {
		if i < NumericColumnCount {
			v, ok := fv[name]
			if !ok {
				return nil, fmt.Errorf("%w: missing numeric column %q", ErrSchemaMismatch, name)
			}
			row[i] = v
			continue
		}

		if indicators[name] {
			row[i] = 1
		}
	}

	return row, nil
}
