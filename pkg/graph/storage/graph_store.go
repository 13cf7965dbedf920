package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/usathyan/KG/pkg/graph"
)

// ResultStore defines an interface for persisting generation results.
type ResultStore interface {
	// Store persists a generation result.
	Store(ctx context.Context, result *graph.Result) error

	// Load loads a generation result from storage.
	Load(ctx context.Context) (*graph.Result, error)
}

// JSONResultStore implements ResultStore using JSON files.
type JSONResultStore struct {
	filePath string
}

// NewJSONResultStore creates a new JSON result store.
func NewJSONResultStore(filePath string) *JSONResultStore {
	return &JSONResultStore{
		filePath: filePath,
	}
}

// Store writes the result as indented JSON, creating parent directories as
// needed.
func (s *JSONResultStore) Store(ctx context.Context, result *graph.Result) error {
	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.filePath, data, 0644)
}

// Load reads a previously stored result.
func (s *JSONResultStore) Load(ctx context.Context) (*graph.Result, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return nil, err
	}

	var result graph.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
