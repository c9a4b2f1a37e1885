// Package suite loads a directory of benchmark definition files as one
// unit, the way a benchmark distribution ships small/medium/large variants
// side by side.
package suite

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/spachava753/benchreg/internal/config"
	"github.com/spachava753/benchreg/internal/registry"
)

// Benchmark is one resolved benchmark file within a suite.
type Benchmark struct {
	Name     string // file base name without extension
	Path     string
	Registry *registry.Registry
}

// Suite is a named set of benchmarks loaded from one directory.
type Suite struct {
	Name       string
	Benchmarks []Benchmark
}

// Benchmark returns the named benchmark, or false when the suite has no
// file of that name.
func (s *Suite) Benchmark(name string) (Benchmark, bool) {
	for _, b := range s.Benchmarks {
		if b.Name == name {
			return b, true
		}
	}
	return Benchmark{}, false
}

// LoadDir loads every .yaml/.yml file in dir concurrently and resolves
// each with the given loader. Benchmarks are reported in file-name order,
// so repeated loads of the same directory are deterministic. Any parse or
// validation failure aborts the whole load.
func LoadDir(ctx context.Context, dir string, loader *registry.Loader) (*Suite, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("getting absolute path: %w", err)
	}

	entries, err := os.ReadDir(absDir)
	if err != nil {
		return nil, fmt.Errorf("reading suite directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".yaml", ".yml":
			paths = append(paths, filepath.Join(absDir, entry.Name()))
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no benchmark files found in %s", absDir)
	}

	slog.Debug("loading benchmark suite", "dir", absDir, "files", len(paths))

	benchmarks := make([]Benchmark, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			records, err := config.LoadBenchmarkPath(path)
			if err != nil {
				return fmt.Errorf("loading %s: %w", filepath.Base(path), err)
			}
			reg, err := loader.Load(records)
			if err != nil {
				return fmt.Errorf("resolving %s: %w", filepath.Base(path), err)
			}
			name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			slog.Debug("loaded benchmark", "benchmark", name, "tasks", reg.Len())
			benchmarks[i] = Benchmark{Name: name, Path: path, Registry: reg}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Suite{
		Name:       filepath.Base(absDir),
		Benchmarks: benchmarks,
	}, nil
}
