package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/screensift/internal/database"
	"github.com/jonesrussell/screensift/internal/evaluation"
	"github.com/jonesrussell/screensift/internal/report"
)

func newSweepCommand() *cobra.Command {
	var (
		thresholds []float64
		full       bool
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate the corpus across candidate thresholds",
		Long: `Sweep runs the evaluation once per candidate threshold, reusing a single
scoring pass over the corpus, and prints the per-threshold comparison in the
order the candidates were given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps()
			if err != nil {
				return err
			}
			defer func() { _ = d.logger.Sync() }()

			db, err := d.openDatabase()
			if err != nil {
				return err
			}
			defer db.Close()

			samples, err := database.NewSamplesRepository(db).
				LoadCorpus(cmd.Context(), database.NewOCRCacheRepository(db))
			if err != nil {
				return err
			}
			if len(samples) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no labelled samples found; import some with `screensift samples import`")
				return nil
			}

			ev := evaluation.New(d.classifier, d.cfg.Service.Concurrency, d.logger, d.telemetry)
			reports := ev.Sweep(cmd.Context(), samples, thresholds)

			out := cmd.OutOrStdout()
			report.RenderSweep(out, reports)
			if full {
				for _, rep := range reports {
					fmt.Fprintln(out)
					report.Render(out, rep)
				}
			}
			return nil
		},
	}

	cmd.Flags().Float64SliceVar(&thresholds, "thresholds",
		[]float64{1, 2.5, 5, 7.5, 10}, "candidate thresholds, evaluated in order")
	cmd.Flags().BoolVar(&full, "full", false, "print the full report for every threshold")
	return cmd
}
