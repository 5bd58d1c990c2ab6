// Package report serializes analysis results to and from JSON files.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/mpetrun5/formscout/internal/analyzer"
)

// WriteError marks a serialization target that could not be written.
// It is surfaced to the caller and never retried.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("could not write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Save writes the result as pretty-printed UTF-8 JSON, creating parent
// directories as needed.
func Save(res *analyzer.PageResult, path string) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &WriteError{Path: path, Err: err}
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	log.Info().Str("path", path).Msg("analysis result saved")
	return nil
}

// Load reads a previously saved result back.
func Load(path string) (*analyzer.PageResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}
	var res analyzer.PageResult
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", path, err)
	}
	return &res, nil
}
