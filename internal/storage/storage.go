package storage

import (
	"time"

	"btr/internal/config"
	"btr/internal/domain"
)

// Storage persists and loads suite run results (e.g. for the report viewer).
type Storage interface {
	Save(results []domain.TestResult, duration time.Duration, workers int) error
	Load() (*domain.RunOutput, error)
}

// JSONStorage stores results in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
