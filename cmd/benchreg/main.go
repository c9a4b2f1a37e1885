package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spachava753/benchreg/internal/config"
	"github.com/spachava753/benchreg/internal/registry"
	"github.com/spachava753/benchreg/internal/suite"
)

func main() {
	settingsPath := flag.String("settings", "", "path to a settings.toml file")
	constraintName := flag.String("constraint", "", "constraint profile to apply")
	enabledOnly := flag.Bool("enabled-only", false, "show only enabled tasks")
	asJSON := flag.Bool("json", false, "print resolved tasks as JSON")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: benchreg [flags] <benchmark.yaml | dir | url>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	source := flag.Arg(0)

	// Setup context with manual signal handling
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	defer func() {
		signal.Stop(sigChan)
		cancel()
	}()

	go func() {
		sig := <-sigChan
		slog.Info("interrupt received, shutting down", "signal", sig)
		cancel()
	}()

	loader := registry.NewLoader()
	if *settingsPath != "" {
		settings, err := config.LoadSettings(*settingsPath)
		if err != nil {
			slog.Error("loading settings", "error", err)
			os.Exit(1)
		}
		c, err := settings.Constraint(*constraintName)
		if err != nil {
			slog.Error("selecting constraint", "error", err)
			os.Exit(1)
		}
		if c != nil {
			slog.Debug("applying constraint profile", "constraint", c.Name)
		}
		loader.Constraint = c
	} else if *constraintName != "" {
		slog.Error("-constraint requires -settings")
		os.Exit(1)
	}

	if err := run(ctx, loader, source, *enabledOnly, *asJSON); err != nil {
		slog.Error("loading benchmark", "source", source, "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, loader *registry.Loader, source string, enabledOnly, asJSON bool) error {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		records, err := config.LoadBenchmarkURL(ctx, source)
		if err != nil {
			return err
		}
		reg, err := loader.Load(records)
		if err != nil {
			return err
		}
		return printRegistry(source, reg, enabledOnly, asJSON)
	}

	info, err := os.Stat(source)
	if err != nil {
		return fmt.Errorf("inspecting source: %w", err)
	}

	if info.IsDir() {
		s, err := suite.LoadDir(ctx, source, loader)
		if err != nil {
			return err
		}
		for _, b := range s.Benchmarks {
			if err := printRegistry(b.Name, b.Registry, enabledOnly, asJSON); err != nil {
				return err
			}
		}
		return nil
	}

	records, err := config.LoadBenchmarkPath(source)
	if err != nil {
		return err
	}
	reg, err := loader.Load(records)
	if err != nil {
		return err
	}
	return printRegistry(source, reg, enabledOnly, asJSON)
}

func printRegistry(name string, reg *registry.Registry, enabledOnly, asJSON bool) error {
	if enabledOnly {
		reg = reg.FilterEnabled()
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(reg.Tasks())
	}

	fmt.Printf("\nBenchmark: %s (%d tasks)\n", name, reg.Len())
	fmt.Printf("%-24s %-8s %-14s %-10s %6s %10s %6s %12s\n",
		"NAME", "ENABLED", "PROBLEM", "METRIC", "FOLDS", "RUNTIME(S)", "CORES", "MEM(MB)")
	for _, t := range reg.Tasks() {
		fmt.Printf("%-24s %-8t %-14s %-10s %6d %10d %6d %12d\n",
			t.Name, t.Enabled, t.ProblemType, t.PrimaryMetric(),
			t.Folds, t.MaxRuntimeSeconds, t.Cores, t.MaxMemSizeMB)
	}
	return nil
}
