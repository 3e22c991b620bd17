package artifact

import "fmt"

// StandardScaler applies the persisted per-column standardization
// ((x - mean) / scale) fitted at training time. Columns fitted with zero
// variance carry a unit scale, matching the fitted artifact.
type StandardScaler struct {
	typeName string
	mean     []float64
	scale    []float64
}

// scalerFile is the on-disk JSON shape of the scaler artifact.
type scalerFile struct {
	Type  string    `json:"type"`
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

func newStandardScaler(f scalerFile) (*StandardScaler, error) {
	if len(f.Mean) == 0 || len(f.Mean) != len(f.Scale) {
		return nil, fmt.Errorf("scaler mean/scale length mismatch: %d vs %d", len(f.Mean), len(f.Scale))
	}
	typeName := f.Type
	if typeName == "" {
		typeName = "StandardScaler"
	}
	return &StandardScaler{typeName: typeName, mean: f.Mean, scale: f.Scale}, nil
}

// Transform standardizes every row, preserving row and column order.
func (s *StandardScaler) Transform(rows [][]float64) ([][]float64, error) {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		if len(row) != len(s.mean) {
			return nil, fmt.Errorf("row %d has %d columns, scaler fitted on %d", i, len(row), len(s.mean))
		}
		scaled := make([]float64, len(row))
		for j, v := range row {
			sc := s.scale[j]
			if sc == 0 {
				sc = 1
			}
			scaled[j] = (v - s.mean[j]) / sc
		}
		out[i] = scaled
	}
	return out, nil
}

// TypeName reports the declared type of the persisted scaler.
func (s *StandardScaler) TypeName() string {
	return s.typeName
}

// FeatureCount returns the number of columns the scaler was fitted on.
func (s *StandardScaler) FeatureCount() int {
	return len(s.mean)
}
