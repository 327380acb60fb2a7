package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/screensift/internal/database"
	"github.com/jonesrussell/screensift/internal/domain"
	"github.com/jonesrussell/screensift/internal/logger"
	"github.com/jonesrussell/screensift/internal/ocr"
)

func newSamplesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "samples",
		Short: "Manage the labelled sample corpus",
	}
	cmd.AddCommand(newSamplesImportCommand())
	cmd.AddCommand(newSamplesListCommand())
	return cmd
}

// newSamplesImportCommand reads a CSV of image_path,true_label rows, runs
// OCR on each image, and stores the labelled sample with its cached record.
func newSamplesImportCommand() *cobra.Command {
	var imagesRoot string

	cmd := &cobra.Command{
		Use:   "import LABELS_CSV",
		Short: "Import labelled samples from a CSV file",
		Args:  cobra.ExactArgs(1),
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

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open labels file: %w", err)
			}
			defer f.Close()

			repo := database.NewSamplesRepository(db)
			engine := d.ocrEngine(db)

			imported, skipped := 0, 0
			reader := csv.NewReader(f)
			reader.FieldsPerRecord = 2
			for line := 1; ; line++ {
				row, err := reader.Read()
				if err == io.EOF {
					break
				}
				if err != nil {
					return fmt.Errorf("read labels file: %w", err)
				}
				// Tolerate a header row.
				if line == 1 && row[0] == "image_path" {
					continue
				}

				imagePath, rawLabel := row[0], row[1]
				label, err := domain.ParseLabel(rawLabel)
				if err != nil {
					d.logger.Warn("skipping row with invalid label",
						logger.Int("line", line),
						logger.String("label", rawLabel),
					)
					skipped++
					continue
				}

				fullPath := imagePath
				if imagesRoot != "" {
					fullPath = filepath.Join(imagesRoot, imagePath)
				}
				image, err := os.ReadFile(fullPath)
				if err != nil {
					d.logger.Warn("skipping unreadable image",
						logger.String("image", fullPath),
						logger.Error(err),
					)
					skipped++
					continue
				}

				sample := domain.LabelledSample{
					ImageID:    imagePath,
					Label:      label,
					ContentKey: ocr.ContentKey(image),
				}
				if _, err := engine.Recognize(cmd.Context(), image); err != nil {
					// Keep the sample: OCR failures are an evaluation outcome,
					// not an import error.
					sample.OCRError = err.Error()
					d.logger.Warn("ocr failed, sample marked unclassifiable",
						logger.String("image", fullPath),
						logger.Error(err),
					)
				}
				if err := repo.Upsert(cmd.Context(), &sample); err != nil {
					return err
				}
				imported++
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %d samples, skipped %d rows\n", imported, skipped)
			return nil
		},
	}

	cmd.Flags().StringVar(&imagesRoot, "images-root", "", "directory to resolve relative image paths against")
	return cmd
}

func newSamplesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the labelled samples",
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

			samples, err := database.NewSamplesRepository(db).List(cmd.Context())
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"image", "label", "content key", "ocr error"})
			for _, s := range samples {
				key := s.ContentKey
				if len(key) > 12 {
					key = key[:12]
				}
				t.AppendRow(table.Row{s.ImageID, string(s.Label), key, s.OCRError})
			}
			t.Render()
			fmt.Fprintf(cmd.OutOrStdout(), "%d samples\n", len(samples))
			return nil
		},
	}
}
