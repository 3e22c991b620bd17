package artifact

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/service"
)

// Artifact file names inside the model directory, as written by the
// training run's export step.
const (
	modelFileName   = "model.json"
	scalerFileName  = "scaler.json"
	columnsFileName = "columns.json"
)

var (
	// ErrArtifactNotFound indicates the primary model file is absent from
	// the configured directory. Fatal, surfaced to the caller, no retry.
	ErrArtifactNotFound = errors.New("model artifact not found")

	// ErrArtifactLoad wraps any deserialization or consistency failure in
	// the persisted artifacts.
	ErrArtifactLoad = errors.New("failed to load model artifacts")
)

// Provider loads the persisted artifact triple exactly once per process and
// caches it. Concurrent first callers serialize on the once-guard, so all
// of them observe the same consistent triple; after that the cache is
// read-only for the process lifetime. There is no invalidation or reload.
type Provider struct {
	dir    string
	logger *slog.Logger

	once sync.Once
	arts service.Artifacts
	err  error
}

// NewProvider creates a Provider reading from the given artifact directory.
func NewProvider(dir string, logger *slog.Logger) *Provider {
	return &Provider{dir: dir, logger: logger}
}

// Get returns the cached artifact triple, loading it on the first call.
func (p *Provider) Get(_ context.Context) (service.Artifacts, error) {
	p.once.Do(p.load)
	return p.arts, p.err
}

func (p *Provider) load() {
	modelPath := filepath.Join(p.dir, modelFileName)
	if _, err := os.Stat(modelPath); err != nil {
		p.err = fmt.Errorf("%w: %s", ErrArtifactNotFound, modelPath)
		return
	}

	var mf forestFile
	if err := decodeFile(modelPath, &mf); err != nil {
		p.err = err
		return
	}
	classifier, err := newRandomForest(mf)
	if err != nil {
		p.err = fmt.Errorf("%w: %s: %v", ErrArtifactLoad, modelFileName, err)
		return
	}

	var sf scalerFile
	if err := decodeFile(filepath.Join(p.dir, scalerFileName), &sf); err != nil {
		p.err = err
		return
	}
	scaler, err := newStandardScaler(sf)
	if err != nil {
		p.err = fmt.Errorf("%w: %s: %v", ErrArtifactLoad, scalerFileName, err)
		return
	}

	var columns []string
	if err := decodeFile(filepath.Join(p.dir, columnsFileName), &columns); err != nil {
		p.err = err
		return
	}

	if len(columns) <= service.NumericColumnCount {
		p.err = fmt.Errorf("%w: column list has %d entries, need more than %d",
			ErrArtifactLoad, len(columns), service.NumericColumnCount)
		return
	}
	if scaler.FeatureCount() != len(columns) {
		p.err = fmt.Errorf("%w: scaler fitted on %d columns, column list has %d",
			ErrArtifactLoad, scaler.FeatureCount(), len(columns))
		return
	}
	if classifier.FeatureCount() != len(columns) {
		p.err = fmt.Errorf("%w: model expects %d features, column list has %d",
			ErrArtifactLoad, classifier.FeatureCount(), len(columns))
		return
	}

	p.arts = service.Artifacts{
		Classifier: classifier,
		Scaler:     scaler,
		Columns:    columns,
		Vocabulary: service.NewVocabulary(columns[service.NumericColumnCount:]),
	}

	if p.logger != nil {
		p.logger.Info("model artifacts loaded",
			slog.String("dir", p.dir),
			slog.String("model_type", classifier.TypeName()),
			slog.String("scaler_type", scaler.TypeName()),
			slog.Int("columns", len(columns)),
		)
	}
}

func decodeFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrArtifactLoad, filepath.Base(path), err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrArtifactLoad, filepath.Base(path), err)
	}
	return nil
}
