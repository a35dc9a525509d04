// Package report defines the chart groups benchviz ships: the before/after
// scale comparison figures, the README graph set and the passive ingestion
// graph set.
package report

import (
	"fmt"

	"github.com/scalebench/benchviz/src/chartkit"
	"github.com/scalebench/benchviz/src/dataset"
)

// Run couples one loaded result set with the legend label and style identity
// it keeps across every panel of a document.
type Run struct {
	Data     *dataset.Dataset
	Label    string
	StyleKey string
}

// Image is one named chart group, emitted as <Name> under the chosen output
// directory.
type Image struct {
	Name  string
	Group chartkit.Group
}

const kbToMB = 1.0 / 1024

// checkTargetPerSec is the throughput needed to complete 100k service checks
// inside a 60s interval.
const checkTargetPerSec = 1667

// panelDef describes one dependent-variable panel of a comparison figure.
type panelDef struct {
	title  string
	column string
	ylabel string
	factor float64
	yscale chartkit.Scale
}

var scalePanels = []panelDef{
	{"Check Throughput", "checks_per_sec", "Checks/sec", 1, chartkit.ScaleLinear},
	{"Memory Usage (RSS)", "mem_rss_kb", "MB", kbToMB, chartkit.ScaleLinear},
	{"Startup Time", "startup_ms", "ms", 1, chartkit.ScaleLinear},
	{"Hosts Query RPS", "query_hosts_rps", "Requests/sec", 1, chartkit.ScaleLog},
	{"Services Query RPS", "query_services_rps", "Requests/sec", 1, chartkit.ScaleLog},
	{"Stats Query RPS", "query_stats_rps", "Requests/sec", 1, chartkit.ScaleLog},
}

var latencyPanels = []panelDef{
	{"Hosts Query P95 Latency", "query_hosts_p95_ms", "P95 Latency (ms)", 1, chartkit.ScaleLog},
	{"Services Query P95 Latency", "query_services_p95_ms", "P95 Latency (ms)", 1, chartkit.ScaleLog},
}

// runSeries projects xCol and yCol from every run into one series per run,
// in run order. Runs may have different row counts; each series keeps its
// own x positions.
func runSeries(runs []Run, xCol, yCol string, factor float64) ([]chartkit.Series, error) {
	out := make([]chartkit.Series, 0, len(runs))
	for _, r := range runs {
		xs, err := r.Data.Column(xCol)
		if err != nil {
			return nil, err
		}
		ys, err := r.Data.ColumnScaled(yCol, factor)
		if err != nil {
			return nil, err
		}
		out = append(out, chartkit.Series{Label: r.Label, StyleKey: r.StyleKey, X: xs, Y: ys})
	}
	return out, nil
}

func comparisonPanels(runs []Run, defs []panelDef) ([]chartkit.Panel, error) {
	panels := make([]chartkit.Panel, 0, len(defs))
	for _, d := range defs {
		series, err := runSeries(runs, "services", d.column, d.factor)
		if err != nil {
			return nil, err
		}
		panels = append(panels, chartkit.Panel{
			Title:  d.title,
			XLabel: "Number of Services",
			YLabel: d.ylabel,
			XScale: chartkit.ScaleLog,
			YScale: d.yscale,
			Series: series,
		})
	}
	return panels, nil
}

// ScaleComparison builds the 2x3 before/after figure: throughput, memory,
// startup time and the three query RPS panels.
func ScaleComparison(before, after Run) (chartkit.Group, error) {
	panels, err := comparisonPanels([]Run{before, after}, scalePanels)
	if err != nil {
		return chartkit.Group{}, err
	}
	return chartkit.Group{
		Suptitle: fmt.Sprintf("Scale Benchmark: %s vs %s", before.Label, after.Label),
		WidthIn:  18,
		HeightIn: 10,
		Panels:   panels,
	}, nil
}

// LatencyComparison builds the 1x2 before/after P95 latency figure.
func LatencyComparison(before, after Run) (chartkit.Group, error) {
	panels, err := comparisonPanels([]Run{before, after}, latencyPanels)
	if err != nil {
		return chartkit.Group{}, err
	}
	return chartkit.Group{
		Suptitle: fmt.Sprintf("Query P95 Latency: %s vs %s", before.Label, after.Label),
		WidthIn:  14,
		HeightIn: 5,
		Panels:   panels,
	}, nil
}

// ReadmeImages builds the transparent single- and multi-panel graphs meant
// for embedding in the README.
func ReadmeImages(before, after Run) ([]Image, error) {
	runs := []Run{before, after}

	single := func(d panelDef, ref *chartkit.RefLine) (chartkit.Group, error) {
		series, err := runSeries(runs, "services", d.column, d.factor)
		if err != nil {
			return chartkit.Group{}, err
		}
		return chartkit.Group{
			WidthIn:  8,
			HeightIn: 4.5,
			Panels: []chartkit.Panel{{
				Title:   d.title,
				XLabel:  "Number of Services",
				YLabel:  d.ylabel,
				XScale:  chartkit.ScaleLog,
				YScale:  d.yscale,
				Series:  series,
				RefLine: ref,
			}},
		}, nil
	}

	var images []Image

	throughput, err := single(scalePanels[0], &chartkit.RefLine{
		Y:        checkTargetPerSec,
		Label:    "Target: 100k services in 60s",
		StyleKey: chartkit.StyleTarget,
	})
	if err != nil {
		return nil, err
	}
	images = append(images, Image{Name: "check_throughput.png", Group: throughput})

	memory, err := single(scalePanels[1], nil)
	if err != nil {
		return nil, err
	}
	images = append(images, Image{Name: "memory_usage.png", Group: memory})

	startup, err := single(scalePanels[2], nil)
	if err != nil {
		return nil, err
	}
	images = append(images, Image{Name: "startup_time.png", Group: startup})

	rps, err := comparisonPanels(runs, []panelDef{
		{"Hosts Query", "query_hosts_rps", "Requests/sec", 1, chartkit.ScaleLog},
		{"Services Query", "query_services_rps", "Requests/sec", 1, chartkit.ScaleLog},
		{"Stats Query", "query_stats_rps", "Requests/sec", 1, chartkit.ScaleLog},
	})
	if err != nil {
		return nil, err
	}
	images = append(images, Image{Name: "query_throughput.png", Group: chartkit.Group{
		Suptitle: "Query Throughput",
		WidthIn:  18,
		HeightIn: 5,
		Panels:   rps,
	}})

	latency, err := comparisonPanels(runs, []panelDef{
		{"Hosts Query", "query_hosts_p95_ms", "P95 Latency (ms)", 1, chartkit.ScaleLog},
		{"Services Query", "query_services_p95_ms", "P95 Latency (ms)", 1, chartkit.ScaleLog},
	})
	if err != nil {
		return nil, err
	}
	images = append(images, Image{Name: "query_latency.png", Group: chartkit.Group{
		Suptitle: "Query P95 Latency",
		WidthIn:  14,
		HeightIn: 5,
		Panels:   latency,
	}})

	return images, nil
}

// IngestImages builds the passive-result ingestion graphs from a single
// result set keyed by unique_services.
func IngestImages(results *dataset.Dataset) ([]Image, error) {
	run := Run{Data: results, StyleKey: chartkit.StyleAccent}

	defs := []struct {
		name  string
		panel panelDef
		label string
	}{
		{"ingest_throughput.png", panelDef{"Passive Result Ingestion Throughput", "results_per_sec", "Results/sec", 1, chartkit.ScaleLinear}, "Ingestion rate"},
		{"ingest_latency.png", panelDef{"P95 Batch Latency", "p95_batch_ms", "P95 Latency (ms)", 1, chartkit.ScaleLinear}, "P95 batch latency"},
		{"ingest_memory.png", panelDef{"Memory After Ingestion", "mem_rss_kb", "MB", kbToMB, chartkit.ScaleLinear}, "RSS after ingestion"},
	}

	var images []Image
	for _, d := range defs {
		run.Label = d.label
		series, err := runSeries([]Run{run}, "unique_services", d.panel.column, d.panel.factor)
		if err != nil {
			return nil, err
		}
		images = append(images, Image{Name: d.name, Group: chartkit.Group{
			WidthIn:  8,
			HeightIn: 4.5,
			Panels: []chartkit.Panel{{
				Title:  d.panel.title,
				XLabel: "Unique Services",
				YLabel: d.panel.ylabel,
				XScale: chartkit.ScaleLog,
				YScale: d.panel.yscale,
				Series: series,
			}},
		}})
	}
	return images, nil
}
