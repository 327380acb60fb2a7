package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jonesrussell/screensift/internal/domain"
)

// OCRCacheRepository is the sqlite implementation of the ocr.Cache contract:
// a content-addressed record store where the same key always yields the same
// record.
type OCRCacheRepository struct {
	db *sqlx.DB
}

func NewOCRCacheRepository(db *sqlx.DB) *OCRCacheRepository {
	return &OCRCacheRepository{db: db}
}

// Get fetches a cached record by content key.
func (r *OCRCacheRepository) Get(ctx context.Context, key string) (*domain.OCRRecord, bool, error) {
	var raw string
	err := r.db.GetContext(ctx, &raw, `SELECT record_json FROM ocr_cache WHERE content_key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get cached record: %w", err)
	}

	var rec domain.OCRRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, false, fmt.Errorf("decode cached record %s: %w", key, err)
	}
	return &rec, true, nil
}

// Put stores a record under its content key. Existing entries are left
// untouched: content addressing makes re-inserts idempotent.
func (r *OCRCacheRepository) Put(ctx context.Context, key string, rec *domain.OCRRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	query := `INSERT INTO ocr_cache (content_key, record_json) VALUES (?, ?)
		ON CONFLICT(content_key) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, query, key, string(raw)); err != nil {
		return fmt.Errorf("store record %s: %w", key, err)
	}
	return nil
}
