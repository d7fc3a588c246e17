package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Manifest records what one pipeline run did.
type Manifest struct {
	RunID          string         `yaml:"run_id"`
	StartedAt      time.Time      `yaml:"started_at"`
	FinishedAt     time.Time      `yaml:"finished_at"`
	Inputs         []InputFile    `yaml:"inputs"`
	RowsIn         int            `yaml:"rows_in"`
	RowsOut        int            `yaml:"rows_out"`
	DuplicatesDrop int            `yaml:"duplicates_dropped"`
	ImputeStrategy string         `yaml:"impute_strategy"`
	ImputedCells   map[string]int `yaml:"imputed_cells,omitempty"`
	Outputs        []string       `yaml:"outputs"`
	Warnings       []string       `yaml:"warnings,omitempty"`
}

// InputFile is one discovered source and its row contribution.
type InputFile struct {
	Path string `yaml:"path"`
	Rows int    `yaml:"rows"`
}

// NewManifest starts a manifest with a fresh run ID.
func NewManifest() *Manifest {
	return &Manifest{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
	}
}

// Save finalizes the timestamps and writes the manifest as YAML.
func (m *Manifest) Save(path string) error {
	m.FinishedAt = time.Now()
	b, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir manifest dir: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
