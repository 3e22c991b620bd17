package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// WriteArtifactFiles writes a consistent model/scaler/columns artifact
// triple into dir, shaped like the training run's export. The model is a
// single-tree forest splitting on the price column: price <= 100 predicts
// class 1, otherwise class 0.
func WriteArtifactFiles(t *testing.T, dir string) {
	t.Helper()

	columns := CanonicalColumns()
	n := len(columns)

	model := map[string]any{
		"type":       "RandomForestClassifier",
		"n_features": n,
		"trees": []map[string]any{
			{
				"feature":        []int{4, -1, -1},
				"threshold":      []float64{100, 0, 0},
				"children_left":  []int{1, -1, -1},
				"children_right": []int{2, -1, -1},
				"leaf_class":     []int{0, 1, 0},
			},
		},
	}

	mean := make([]float64, n)
	scale := make([]float64, n)
	for i := range scale {
		scale[i] = 1
	}
	scaler := map[string]any{
		"type":  "StandardScaler",
		"mean":  mean,
		"scale": scale,
	}

	writeJSON(t, filepath.Join(dir, "model.json"), model)
	writeJSON(t, filepath.Join(dir, "scaler.json"), scaler)
	writeJSON(t, filepath.Join(dir, "columns.json"), columns)
}

func writeJSON(t *testing.T, path string, v any) {
	t.Helper()

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
