package domain

import "fmt"

// LabelledSample pairs a cached OCR record with its human ground-truth label.
// Samples are produced by the labeling collaborator and are read-only here.
type LabelledSample struct {
	ImageID    string     `json:"image_id"`
	Label      Label      `json:"label"`
	ContentKey string     `json:"content_key,omitempty"`
	Record     *OCRRecord `json:"record,omitempty"`
	// OCRError carries the collaborator's failure signal. A non-empty value
	// marks the sample unclassifiable; it is never coerced to "none".
	OCRError string `json:"ocr_error,omitempty"`
}

// Unclassifiable reports whether the OCR collaborator failed to produce a
// record for this sample.
func (s *LabelledSample) Unclassifiable() bool {
	return s.OCRError != "" || s.Record == nil
}

// Validate checks that the sample can enter the evaluation pipeline.
// Unclassifiable samples are well-formed; they carry their own outcome bucket.
func (s *LabelledSample) Validate() error {
	if _, err := ParseLabel(string(s.Label)); err != nil {
		return fmt.Errorf("sample %s: %w", s.ImageID, err)
	}
	if s.Unclassifiable() {
		return nil
	}
	if err := s.Record.Validate(); err != nil {
		return fmt.Errorf("sample %s: %w", s.ImageID, err)
	}
	return nil
}
