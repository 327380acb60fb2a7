package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/screensift/internal/logger"
	"github.com/jonesrussell/screensift/internal/report"
)

func newClassifyCommand() *cobra.Command {
	var showBreakdown bool

	cmd := &cobra.Command{
		Use:   "classify IMAGE...",
		Short: "Classify screenshot images",
		Args:  cobra.MinimumNArgs(1),
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

			engine := d.ocrEngine(db)
			out := cmd.OutOrStdout()

			for _, path := range args {
				image, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read image %s: %w", path, err)
				}

				rec, err := engine.Recognize(cmd.Context(), image)
				if err != nil {
					d.logger.Error("ocr failed",
						logger.String("image", path),
						logger.Error(err),
					)
					fmt.Fprintf(out, "%s: unclassifiable (%v)\n", path, err)
					continue
				}

				result := d.classifier.Classify(rec)
				fmt.Fprintf(out, "%s: %s (confidence %.2f)\n", path, result.Predicted, result.Confidence)
				report.RenderClassification(out, result, showBreakdown)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showBreakdown, "breakdown", false, "show per-rule score contributions")
	return cmd
}
