package domain

import "errors"

// ErrMalformedRecord is returned when an OCR record is missing required
// geometry fields. Malformed samples are excluded from aggregate metrics.
var ErrMalformedRecord = errors.New("malformed ocr record")

// Box is a rectangle in pixel coordinates, origin at the upper-left corner.
type Box struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// OCRLine is a single recognized text line with its bounding geometry.
// Empty text is permitted; downstream stages must tolerate it.
type OCRLine struct {
	Text       string  `json:"text"`
	Bounds     Box     `json:"bounds"`
	Confidence float64 `json:"confidence"`
}

// OCRRecord is the structured output of the OCR collaborator for one image.
// Lines preserve the top-to-bottom reading order produced by the engine.
type OCRRecord struct {
	Lines       []OCRLine `json:"lines"`
	ImageWidth  int       `json:"image_width"`
	ImageHeight int       `json:"image_height"`
}

// Validate checks the geometry invariants. Zero lines is a degenerate but
// well-formed record; negative dimensions are not.
func (r *OCRRecord) Validate() error {
	if r == nil {
		return ErrMalformedRecord
	}
	if r.ImageWidth < 0 || r.ImageHeight < 0 {
		return ErrMalformedRecord
	}
	for i := range r.Lines {
		b := r.Lines[i].Bounds
		if b.Width < 0 || b.Height < 0 {
			return ErrMalformedRecord
		}
	}
	return nil
}

// LineTexts returns the text of every line in reading order.
func (r *OCRRecord) LineTexts() []string {
	texts := make([]string, len(r.Lines))
	for i := range r.Lines {
		texts[i] = r.Lines[i].Text
	}
	return texts
}
