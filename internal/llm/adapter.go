package llm

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/shopspring/decimal"

	"github.com/receiptiq/receiptiq/internal/common"
	"github.com/receiptiq/receiptiq/internal/entity"
)

// Adapter wraps a StructuredExtractor behind the controller's alternate-source
// contract: it extracts the JSON object from the model reply, validates it
// against the record schema, and converts it into an ExtractedRecord.
type Adapter struct {
	model  StructuredExtractor
	schema *jsonschema.Schema
	logger *slog.Logger
}

func NewAdapter(model StructuredExtractor, schema *jsonschema.Schema, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{model: model, schema: schema, logger: logger}
}

func (a *Adapter) ExtractRecord(ctx context.Context, rawText string) (entity.ExtractedRecord, error) {
	reply, err := a.model.ExtractJSON(ctx, rawText)
	if err != nil {
		return entity.ExtractedRecord{}, common.WrapError(err, "model extract")
	}

	doc, err := ExtractJSONObject(string(reply))
	if err != nil {
		return entity.ExtractedRecord{}, err
	}
	if err := ValidateRecordJSON(a.schema, doc); err != nil {
		return entity.ExtractedRecord{}, err
	}

	var fields RecordFields
	if err := json.Unmarshal(doc, &fields); err != nil {
		return entity.ExtractedRecord{}, common.WrapError(err, "decode model fields")
	}
	return a.toRecord(rawText, fields), nil
}

// toRecord converts validated model fields into the engine's record shape.
// Individually malformed optionals are dropped, not fatal: the comparison
// policy will simply see a poorer record.
func (a *Adapter) toRecord(rawText string, fields RecordFields) entity.ExtractedRecord {
	record := entity.ExtractedRecord{
		RawText:  rawText,
		Currency: fields.Currency,
		Source:   entity.SourceModel,
	}
	if fields.Vendor != "" {
		record.SetVendor(fields.Vendor)
	}
	if fields.Category != "" {
		record.SetCategory(fields.Category)
	}
	if fields.Date != "" {
		record.SetDate(fields.Date)
	}
	if fields.Amount != "" {
		if value, err := decimal.NewFromString(fields.Amount.String()); err == nil && value.IsPositive() {
			record.SetAmount(value)
		} else {
			a.logger.Warn("model amount dropped", "amount", fields.Amount.String())
		}
	}
	return record
}
