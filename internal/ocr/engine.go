// Package ocr is the OCR collaborator boundary: an engine contract, a
// tesseract-backed implementation, and a content-addressed cache wrapper.
package ocr

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/jonesrussell/screensift/internal/domain"
)

// Engine recognizes text lines in one encoded image.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, image []byte) (*domain.OCRRecord, error)
}

// Cache is a content-addressed store for OCR records. The same key must
// always yield the same record.
type Cache interface {
	Get(ctx context.Context, key string) (*domain.OCRRecord, bool, error)
	Put(ctx context.Context, key string, rec *domain.OCRRecord) error
}

// ContentKey derives the cache key from the image bytes, so a renamed or
// moved file still hits the same cache entry.
func ContentKey(image []byte) string {
	sum := sha256.Sum256(image)
	return hex.EncodeToString(sum[:])
}
