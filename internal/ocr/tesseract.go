package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/jonesrussell/screensift/internal/domain"
)

// TesseractEngine runs OCR through the tesseract C API. Each Recognize call
// uses a fresh client; the tesseract handle is not safe for concurrent use.
type TesseractEngine struct {
	languages []string
}

func NewTesseractEngine(languages ...string) *TesseractEngine {
	return &TesseractEngine{languages: languages}
}

func (e *TesseractEngine) Name() string { return "tesseract" }

// Recognize performs line-level OCR on one encoded image. Lines come back in
// the engine's top-to-bottom reading order with pixel-space bounding boxes.
func (e *TesseractEngine) Recognize(ctx context.Context, img []byte) (*domain.OCRRecord, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	width, height, err := imageSize(img)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if len(e.languages) > 0 {
		if err := client.SetLanguage(e.languages...); err != nil {
			return nil, fmt.Errorf("set languages: %w", err)
		}
	}
	if err := client.SetImageFromBytes(img); err != nil {
		return nil, fmt.Errorf("set image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, fmt.Errorf("recognize lines: %w", err)
	}

	rec := &domain.OCRRecord{ImageWidth: width, ImageHeight: height}
	for _, b := range boxes {
		text := strings.TrimSpace(b.Word)
		if text == "" {
			continue
		}
		rec.Lines = append(rec.Lines, domain.OCRLine{
			Text: text,
			Bounds: domain.Box{
				X:      float64(b.Box.Min.X),
				Y:      float64(b.Box.Min.Y),
				Width:  float64(b.Box.Dx()),
				Height: float64(b.Box.Dy()),
			},
			Confidence: b.Confidence / 100.0,
		})
	}
	return rec, nil
}

func imageSize(data []byte) (int, int, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
