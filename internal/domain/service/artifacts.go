package service

import (
	"context"

	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/port"
)

// NumericColumnCount is the number of leading entries in the canonical
// column list that are numeric features; every entry beyond it is a one-hot
// category indicator. Fixed at training time.
const NumericColumnCount = 21

// Artifacts is the immutable triple persisted at training time, plus the
// category vocabulary derived from the column list at load time. It is
// shared read-only across all inference calls.
type Artifacts struct {
	Classifier port.Classifier
	Scaler     port.Scaler

	// Columns is the canonical ordered column list. The assembler's output
	// contains exactly these columns in exactly this order.
	Columns []string

	// Vocabulary indexes Columns[NumericColumnCount:] for exact-match
	// indicator lookup.
	Vocabulary Vocabulary
}

// ArtifactSource yields the cached artifact triple. The first call loads
// from storage; all later calls return the same value.
type ArtifactSource interface {
	Get(ctx context.Context) (Artifacts, error)
}

// Vocabulary is the set of one-hot indicator columns the model was trained
// with, built once from the canonical column list and queried by exact-match
// lookup thereafter.
type Vocabulary struct {
	columns []string
	known   map[string]struct{}
}

// NewVocabulary builds a Vocabulary from the indicator tail of the
// canonical column list.
func NewVocabulary(indicatorColumns []string) Vocabulary {
	known := make(map[string]struct{}, len(indicatorColumns))
	for _, c := range indicatorColumns {
		known[c] = struct{}{}
	}
	return Vocabulary{columns: indicatorColumns, known: known}
}

// Contains reports whether the exact column name is a known indicator.
func (v Vocabulary) Contains(name string) bool {
	_, ok := v.known[name]
	return ok
}

// Len returns the number of indicator columns.
func (v Vocabulary) Len() int {
	return len(v.columns)
}
