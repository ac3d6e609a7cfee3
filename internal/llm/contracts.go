package llm

import (
	"context"
	"encoding/json"
)

// RecordFields is the flat shape a model-based extractor must return:
// the same keys the heuristic engine emits. Amount is a json.Number because
// models return both `"amount": "450.00"` and `"amount": 450`.
type RecordFields struct {
	Vendor   string      `json:"vendor"`
	Category string      `json:"category,omitempty"`
	Date     string      `json:"date"` // YYYY-MM-DD
	Amount   json.Number `json:"amount"`
	Currency string      `json:"currency,omitempty"`
}

// StructuredExtractor is the boundary to the external model collaborator:
// raw OCR text in, a JSON document (possibly wrapped in chatter) out. The
// engine never manages model inference itself.
type StructuredExtractor interface {
	ExtractJSON(ctx context.Context, rawText string) ([]byte, error)
}
