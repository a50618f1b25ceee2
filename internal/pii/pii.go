// Package pii detects personally identifiable information in text.
package pii

import "context"

// Entity is a span of text classified as PII. JSON keys keep the
// provider's field names because existing clients read them as-is.
type Entity struct {
	Type        string  `json:"Type"`
	Score       float64 `json:"Score"`
	BeginOffset int     `json:"BeginOffset"`
	EndOffset   int     `json:"EndOffset"`
	Text        string  `json:"Text"`
}

// Detector defines the interface for PII detection providers.
type Detector interface {
	// DetectEntities returns the PII entities found in text, in provider order.
	DetectEntities(ctx context.Context, text string) ([]Entity, error)
}

// span returns the characters of text between begin and end, clamped to
// the text. Offsets count characters, not bytes.
func span(text string, begin, end int) string {
	runes := []rune(text)
	if begin < 0 {
		begin = 0
	}
	if end > len(runes) {
		end = len(runes)
	}
	if begin >= end {
		return ""
	}
	return string(runes[begin:end])
}
