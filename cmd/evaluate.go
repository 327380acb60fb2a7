package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/screensift/internal/classifier"
	"github.com/jonesrussell/screensift/internal/database"
	"github.com/jonesrussell/screensift/internal/evaluation"
	"github.com/jonesrussell/screensift/internal/report"
)

func newEvaluateCommand() *cobra.Command {
	var threshold float64

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate the classifier against the labelled corpus",
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

			thresholds := d.cfg.DecisionThresholds()
			if cmd.Flags().Changed("threshold") {
				thresholds = classifier.NewThresholds(threshold)
			}

			ev := evaluation.New(d.classifier, d.cfg.Service.Concurrency, d.logger, d.telemetry)
			rep := ev.Evaluate(cmd.Context(), samples, thresholds)
			report.Render(cmd.OutOrStdout(), rep)
			return nil
		},
	}

	cmd.Flags().Float64Var(&threshold, "threshold", classifier.DefaultThreshold, "decision threshold override")
	return cmd
}
