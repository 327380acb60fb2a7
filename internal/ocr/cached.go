package ocr

import (
	"context"
	"fmt"

	"github.com/jonesrussell/screensift/internal/domain"
	"github.com/jonesrussell/screensift/internal/logger"
)

// CachedEngine wraps an Engine with a content-addressed cache. Cache failures
// degrade to running the inner engine; they never fail the recognition.
type CachedEngine struct {
	inner  Engine
	cache  Cache
	logger logger.Logger
}

func NewCachedEngine(inner Engine, cache Cache, log logger.Logger) *CachedEngine {
	if log == nil {
		log = logger.NewNop()
	}
	return &CachedEngine{inner: inner, cache: cache, logger: log}
}

func (e *CachedEngine) Name() string {
	return e.inner.Name() + "+cache"
}

// Recognize returns the cached record when present, otherwise runs the inner
// engine and stores its output under the image's content key.
func (e *CachedEngine) Recognize(ctx context.Context, image []byte) (*domain.OCRRecord, error) {
	key := ContentKey(image)

	rec, ok, err := e.cache.Get(ctx, key)
	if err != nil {
		e.logger.Warn("ocr cache lookup failed", logger.String("key", key), logger.Error(err))
	} else if ok {
		e.logger.Debug("ocr cache hit", logger.String("key", key))
		return rec, nil
	}

	rec, err = e.inner.Recognize(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.inner.Name(), err)
	}
	if err := e.cache.Put(ctx, key, rec); err != nil {
		e.logger.Warn("ocr cache store failed", logger.String("key", key), logger.Error(err))
	}
	return rec, nil
}
