// Copyright 2025 go-parsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// parsortbench times the parallel radix sort across a size and thread matrix
// and cross-checks it against the standard library on randomized inputs.
//
// Usage:
//
//	parsortbench bench --sizes 100000 --sizes 1000000 --threads 1 --threads 8
//	parsortbench bench --config bench.toml --chart timings.html
//	parsortbench verify --trials 500 --workers 8
package main

import (
	"fmt"
	"os"

	cli "github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// Shared flag definitions to eliminate duplication
var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "Path to a TOML configuration file (overrides the other flags)",
	}
	seedFlag = &cli.Int64Flag{
		Name:  "seed",
		Usage: "Seed for the input generator",
		Value: 1,
	}

	// Bench-specific flags
	sizesFlag = &cli.IntSliceFlag{
		Name:  "sizes",
		Usage: "Input sizes to time (repeat the flag for a matrix)",
		Value: cli.NewIntSlice(100000, 1000000, 10000000),
	}
	threadsFlag = &cli.IntSliceFlag{
		Name:  "threads",
		Usage: "Goroutine budgets to time (repeat the flag for a matrix)",
		Value: cli.NewIntSlice(1, 2, 4, 8),
	}
	repetitionsFlag = &cli.IntFlag{
		Name:  "repetitions",
		Usage: "Timed repetitions per cell; the median is reported",
		Value: 5,
	}
	stableFlag = &cli.BoolFlag{
		Name:  "stable",
		Usage: "Time the stable key-value variant instead of bare keys",
	}
	chartFlag = &cli.StringFlag{
		Name:  "chart",
		Usage: "Path for an HTML timing chart (e.g. 'timings.html'). If not provided, no chart is generated.",
	}

	// Verify-specific flags
	trialsFlag = &cli.IntFlag{
		Name:  "trials",
		Usage: "Number of randomized cross-check trials",
		Value: 200,
	}
	maxSizeFlag = &cli.IntFlag{
		Name:  "maxSize",
		Usage: "Upper bound on the per-trial input size",
		Value: 500000,
	}
	workersFlag = &cli.IntFlag{
		Name:  "workers",
		Usage: "Concurrent trials",
		Value: 4,
	}
)

func handleBenchCommand(c *cli.Context, logger *zap.Logger) error {
	cfg := benchDefaults()
	if path := c.String("config"); path != "" {
		loaded, err := loadConfig(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if loaded.Bench != nil {
			cfg = loaded.Bench
		}
	} else {
		cfg.Sizes = c.IntSlice("sizes")
		cfg.Threads = c.IntSlice("threads")
		cfg.Repetitions = c.Int("repetitions")
		cfg.Seed = c.Int64("seed")
		cfg.Stable = c.Bool("stable")
	}
	if c.IsSet("chart") {
		cfg.ChartPath = c.String("chart")
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	results, err := runBench(logger, cfg)
	if err != nil {
		return err
	}
	printResults(os.Stdout, cfg, results)

	if cfg.ChartPath != "" {
		if err := renderChart(cfg, results, cfg.ChartPath); err != nil {
			return fmt.Errorf("rendering chart: %w", err)
		}
		logger.Info("chart written", zap.String("path", cfg.ChartPath))
	}
	return nil
}

func handleVerifyCommand(c *cli.Context, logger *zap.Logger) error {
	cfg := verifyDefaults()
	if path := c.String("config"); path != "" {
		loaded, err := loadConfig(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if loaded.Verify != nil {
			cfg = loaded.Verify
		}
	} else {
		cfg.Trials = c.Int("trials")
		cfg.MaxSize = c.Int("maxSize")
		cfg.Workers = c.Int("workers")
		cfg.Seed = c.Int64("seed")
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	return runVerify(logger, cfg)
}

func main() {
	logger := zap.Must(zap.NewProduction())
	defer logger.Sync()

	app := &cli.App{
		Name:  "parsortbench",
		Usage: "Benchmark and verify the parallel radix sort",
		Commands: []*cli.Command{
			{
				Name:  "bench",
				Usage: "Time the sort across a size and thread matrix",
				Flags: []cli.Flag{
					configFlag,
					sizesFlag,
					threadsFlag,
					repetitionsFlag,
					stableFlag,
					seedFlag,
					chartFlag,
				},
				Action: func(c *cli.Context) error { return handleBenchCommand(c, logger) },
			},
			{
				Name:  "verify",
				Usage: "Cross-check the sort against the standard library on random inputs",
				Flags: []cli.Flag{
					configFlag,
					trialsFlag,
					maxSizeFlag,
					workersFlag,
					seedFlag,
				},
				Action: func(c *cli.Context) error { return handleVerifyCommand(c, logger) },
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Fatal("command failed", zap.Error(err))
	}
}
