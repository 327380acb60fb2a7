package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jonesrussell/screensift/internal/domain"
)

// SamplesRepository stores the labelled samples produced by the labeling
// workflow. The evaluation harness only ever reads them.
type SamplesRepository struct {
	db *sqlx.DB
}

func NewSamplesRepository(db *sqlx.DB) *SamplesRepository {
	return &SamplesRepository{db: db}
}

type sampleRow struct {
	ImageID    string `db:"image_id"`
	Label      string `db:"label"`
	ContentKey string `db:"content_key"`
	OCRError   string `db:"ocr_error"`
}

// Upsert inserts or replaces the sample for an image. The label is validated
// before it touches the store; an invalid label never enters the corpus.
func (r *SamplesRepository) Upsert(ctx context.Context, s *domain.LabelledSample) error {
	label, err := domain.ParseLabel(string(s.Label))
	if err != nil {
		return fmt.Errorf("sample %s: %w", s.ImageID, err)
	}

	query := `
		INSERT INTO labelled_samples (image_id, label, content_key, ocr_error)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(image_id) DO UPDATE SET
			label = excluded.label,
			content_key = excluded.content_key,
			ocr_error = excluded.ocr_error,
			updated_at = CURRENT_TIMESTAMP`
	if _, err := r.db.ExecContext(ctx, query, s.ImageID, string(label), s.ContentKey, s.OCRError); err != nil {
		return fmt.Errorf("upsert sample %s: %w", s.ImageID, err)
	}
	return nil
}

// List returns all samples ordered by image id, without OCR records attached.
func (r *SamplesRepository) List(ctx context.Context) ([]domain.LabelledSample, error) {
	var rows []sampleRow
	query := `SELECT image_id, label, content_key, ocr_error FROM labelled_samples ORDER BY image_id`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list samples: %w", err)
	}

	samples := make([]domain.LabelledSample, 0, len(rows))
	for _, row := range rows {
		samples = append(samples, domain.LabelledSample{
			ImageID:    row.ImageID,
			Label:      domain.Label(row.Label),
			ContentKey: row.ContentKey,
			OCRError:   row.OCRError,
		})
	}
	return samples, nil
}

// LoadCorpus returns all samples with their cached OCR records attached.
// A sample whose record has gone missing from the cache is marked
// unclassifiable rather than dropped, so corpus totals stay stable.
func (r *SamplesRepository) LoadCorpus(ctx context.Context, cache *OCRCacheRepository) ([]domain.LabelledSample, error) {
	samples, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range samples {
		s := &samples[i]
		if s.OCRError != "" || s.ContentKey == "" {
			continue
		}
		rec, ok, err := cache.Get(ctx, s.ContentKey)
		if err != nil {
			return nil, fmt.Errorf("load ocr record for %s: %w", s.ImageID, err)
		}
		if !ok {
			s.OCRError = "ocr record missing from cache"
			continue
		}
		s.Record = rec
	}
	return samples, nil
}
