// Package config locates and reads benchmark definitions and the optional
// settings file. It owns all I/O so the registry loader can stay a pure
// transform.
package config

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/spachava753/benchreg/internal/models"
)

// LoadBenchmarkPath reads an ordered benchmark record sequence from a
// local YAML file.
func LoadBenchmarkPath(path string) ([]models.RawTask, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading benchmark file: %w", err)
	}
	return parseBenchmark(data)
}

// LoadBenchmarkURL fetches a benchmark definition over HTTP.
func LoadBenchmarkURL(ctx context.Context, url string) ([]models.RawTask, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching benchmark: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching benchmark: HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return parseBenchmark(data)
}

func parseBenchmark(data []byte) ([]models.RawTask, error) {
	var records []models.RawTask
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing benchmark YAML: %w", err)
	}
	return records, nil
}
