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
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// renderChart writes an interactive line chart of the timing matrix: one
// series per thread count plus the stdlib baseline, input size on the X axis.
func renderChart(cfg *BenchConfig, results []measurement, filename string) error {
	labels := make([]string, len(cfg.Sizes))
	for i, n := range cfg.Sizes {
		labels[i] = fmt.Sprintf("%d", n)
	}

	// results are ordered size-major; regroup them per thread count.
	byThreads := make(map[int][]opts.LineData)
	baseline := make([]opts.LineData, 0, len(cfg.Sizes))
	seenSize := make(map[int]bool)
	for _, m := range results {
		byThreads[m.Threads] = append(byThreads[m.Threads], opts.LineData{
			Value: m.Elapsed.Milliseconds(),
		})
		if !seenSize[m.Size] {
			seenSize[m.Size] = true
			baseline = append(baseline, opts.LineData{Value: m.Stdlib.Milliseconds()})
		}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Parallel radix sort timings",
			Width:     "120vh",
			Height:    "80vh",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Sort time by input size",
			Left:  "center",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Top:  "bottom",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "elements",
			Type: "category",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "ms",
		}),
	)
	line.SetXAxis(labels)
	for _, threads := range cfg.Threads {
		line.AddSeries(fmt.Sprintf("%d threads", threads), byThreads[threads])
	}
	line.AddSeries("slices.Sort", baseline)

	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(line)

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not create chart file %s: %w", filename, err)
	}
	defer f.Close()

	return page.Render(f)
}
