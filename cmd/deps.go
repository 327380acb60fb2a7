package cmd

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jonesrussell/screensift/internal/classifier"
	"github.com/jonesrussell/screensift/internal/config"
	"github.com/jonesrussell/screensift/internal/database"
	"github.com/jonesrussell/screensift/internal/logger"
	"github.com/jonesrussell/screensift/internal/ocr"
	"github.com/jonesrussell/screensift/internal/telemetry"
)

const version = "1.0.0"

// deps bundles the dependencies shared by the subcommands.
type deps struct {
	cfg        *config.Config
	logger     logger.Logger
	telemetry  *telemetry.Provider
	classifier *classifier.Classifier
}

func newDeps() (*deps, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if debug {
		cfg.Logging.Level = "debug"
		cfg.Logging.Format = "console"
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	tp := telemetry.NewProvider()
	cls := classifier.New(classifier.Config{
		Weights:    cfg.Classification.Weights,
		Thresholds: cfg.DecisionThresholds(),
	}, log, tp)

	return &deps{cfg: cfg, logger: log, telemetry: tp, classifier: cls}, nil
}

// openDatabase opens the sample and OCR cache store from config.
func (d *deps) openDatabase() (*sqlx.DB, error) {
	db, err := database.Open(d.cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", d.cfg.Database.Path, err)
	}
	return db, nil
}

// ocrEngine builds the tesseract engine wrapped in the sqlite cache.
func (d *deps) ocrEngine(db *sqlx.DB) ocr.Engine {
	return ocr.NewCachedEngine(
		ocr.NewTesseractEngine(d.cfg.OCR.Languages...),
		database.NewOCRCacheRepository(db),
		d.logger,
	)
}
