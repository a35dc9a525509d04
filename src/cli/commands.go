package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/scalebench/benchviz/src/chartkit"
	"github.com/scalebench/benchviz/src/dataset"
	"github.com/scalebench/benchviz/src/report"
)

// comparisonFlags holds the flag set shared by the scale and readme commands.
type comparisonFlags struct {
	beforePath  string
	afterPath   string
	beforeLabel string
	afterLabel  string
	outDir      string
}

func (f *comparisonFlags) register(cmd *cobra.Command, defaultOut string) {
	cmd.Flags().StringVar(&f.beforePath, "before", "bench/scale_results_before.csv", "CSV with the baseline run")
	cmd.Flags().StringVar(&f.afterPath, "after", "bench/scale_results_after.csv", "CSV with the optimized run")
	cmd.Flags().StringVar(&f.beforeLabel, "before-label", "Before", "legend label for the baseline run")
	cmd.Flags().StringVar(&f.afterLabel, "after-label", "After", "legend label for the optimized run")
	cmd.Flags().StringVar(&f.outDir, "out", defaultOut, "output directory for rendered PNGs")
}

// loadRuns loads both result sets and pins each to its fixed style identity.
func (f *comparisonFlags) loadRuns() (before, after report.Run, err error) {
	bd, err := dataset.Load(f.beforePath)
	if err != nil {
		return report.Run{}, report.Run{}, err
	}
	ad, err := dataset.Load(f.afterPath)
	if err != nil {
		return report.Run{}, report.Run{}, err
	}
	before = report.Run{Data: bd, Label: f.beforeLabel, StyleKey: chartkit.StyleBefore}
	after = report.Run{Data: ad, Label: f.afterLabel, StyleKey: chartkit.StyleAfter}
	return before, after, nil
}

func emitAll(outDir string, images []report.Image) error {
	for _, im := range images {
		if err := chartkit.Emit(im.Group, filepath.Join(outDir, im.Name)); err != nil {
			return err
		}
	}
	return nil
}

func newScaleCmd() *cobra.Command {
	var flags comparisonFlags
	cmd := &cobra.Command{
		Use:   "scale",
		Short: "Render the before/after scale comparison figures",
		RunE: func(_ *cobra.Command, _ []string) error {
			before, after, err := flags.loadRuns()
			if err != nil {
				return err
			}
			comparison, err := report.ScaleComparison(before, after)
			if err != nil {
				return err
			}
			latency, err := report.LatencyComparison(before, after)
			if err != nil {
				return err
			}
			return emitAll(flags.outDir, []report.Image{
				{Name: "scale_comparison.png", Group: comparison},
				{Name: "latency_comparison.png", Group: latency},
			})
		},
	}
	flags.register(cmd, "bench/graphs")
	return cmd
}

func newReadmeCmd() *cobra.Command {
	var flags comparisonFlags
	cmd := &cobra.Command{
		Use:   "readme",
		Short: "Render the README graph set",
		RunE: func(_ *cobra.Command, _ []string) error {
			before, after, err := flags.loadRuns()
			if err != nil {
				return err
			}
			images, err := report.ReadmeImages(before, after)
			if err != nil {
				return err
			}
			return emitAll(flags.outDir, images)
		},
	}
	flags.register(cmd, "assets/readme")
	return cmd
}

func newIngestCmd() *cobra.Command {
	var (
		resultsPath string
		outDir      string
	)
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Render the passive ingestion graph set",
		RunE: func(_ *cobra.Command, _ []string) error {
			d, err := dataset.Load(resultsPath)
			if err != nil {
				return err
			}
			images, err := report.IngestImages(d)
			if err != nil {
				return err
			}
			return emitAll(outDir, images)
		},
	}
	cmd.Flags().StringVar(&resultsPath, "results", "bench/ingest_results.csv", "CSV with the ingestion benchmark run")
	cmd.Flags().StringVar(&outDir, "out", "assets/readme", "output directory for rendered PNGs")
	return cmd
}
