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

package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// BenchConfig describes one timing run. Every (size, threads) pair becomes a
// cell in the result matrix.
type BenchConfig struct {
	Sizes       []int  `toml:"sizes"`
	Threads     []int  `toml:"threads"`
	Repetitions int    `toml:"repetitions"`
	Seed        int64  `toml:"seed"`
	Stable      bool   `toml:"stable"`
	ChartPath   string `toml:"chartPath"`
}

// VerifyConfig describes a randomized cross-check run.
type VerifyConfig struct {
	Trials  int   `toml:"trials"`
	MaxSize int   `toml:"maxSize"`
	Workers int   `toml:"workers"`
	Seed    int64 `toml:"seed"`
}

type Config struct {
	Bench  *BenchConfig  `toml:"bench"`
	Verify *VerifyConfig `toml:"verify"`
}

func benchDefaults() *BenchConfig {
	return &BenchConfig{
		Sizes:       []int{100000, 1000000, 10000000},
		Threads:     []int{1, 2, 4, 8},
		Repetitions: 5,
		Seed:        1,
	}
}

func verifyDefaults() *VerifyConfig {
	return &VerifyConfig{
		Trials:  200,
		MaxSize: 500000,
		Workers: 4,
		Seed:    1,
	}
}

func loadConfig(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}

func (c *BenchConfig) validate() error {
	if len(c.Sizes) == 0 || len(c.Threads) == 0 {
		return fmt.Errorf("bench config needs at least one size and one thread count")
	}
	for _, n := range c.Sizes {
		if n < 0 {
			return fmt.Errorf("negative input size %d", n)
		}
	}
	for _, t := range c.Threads {
		if t < 1 {
			return fmt.Errorf("thread count %d is below 1", t)
		}
	}
	if c.Repetitions < 1 {
		return fmt.Errorf("repetitions %d is below 1", c.Repetitions)
	}
	return nil
}

func (c *VerifyConfig) validate() error {
	if c.Trials < 1 {
		return fmt.Errorf("trials %d is below 1", c.Trials)
	}
	if c.MaxSize < 1 {
		return fmt.Errorf("maxSize %d is below 1", c.MaxSize)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers %d is below 1", c.Workers)
	}
	return nil
}
