package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/receiptiq/receiptiq/constants"
	"github.com/receiptiq/receiptiq/internal/entity"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		want    string
		wantErr bool
	}{
		{
			name:  "bare object",
			reply: `{"vendor":"DMart"}`,
			want:  `{"vendor":"DMart"}`,
		},
		{
			name:  "code fence and chatter",
			reply: "Here is the extraction:\n```json\n{\"vendor\":\"DMart\"}\n```\nLet me know!",
			want:  `{"vendor":"DMart"}`,
		},
		{
			name:  "nested braces survive",
			reply: `prefix {"a":{"b":1}} suffix`,
			want:  `{"a":{"b":1}}`,
		},
		{
			name:    "no object at all",
			reply:   "sorry, I could not read the document",
			wantErr: true,
		},
		{
			name:    "reversed braces",
			reply:   "} nothing here {",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSONObject(tt.reply)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractJSONObject() error = %v, wantErr %t", err, tt.wantErr)
			}
			if err == nil && string(got) != tt.want {
				t.Errorf("ExtractJSONObject() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRecordSchemaValidation(t *testing.T) {
	schema, err := CompileRecordSchema(constants.AsStringSlice())
	if err != nil {
		t.Fatalf("CompileRecordSchema() error = %v", err)
	}

	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{
			name: "complete record",
			doc:  `{"vendor":"DMart","category":"Groceries","date":"2025-07-19","amount":"1250.50","currency":"INR"}`,
		},
		{
			name: "numeric amount",
			doc:  `{"vendor":"BESCOM","date":"2025-06-20","amount":2345}`,
		},
		{
			name:    "missing vendor",
			doc:     `{"date":"2025-06-20","amount":2345}`,
			wantErr: true,
		},
		{
			name:    "date not iso shaped",
			doc:     `{"vendor":"BESCOM","date":"20/06/2025","amount":2345}`,
			wantErr: true,
		},
		{
			name:    "category outside the taxonomy",
			doc:     `{"vendor":"X Corp","category":"Gambling","date":"2025-06-20","amount":10}`,
			wantErr: true,
		},
		{
			name:    "unknown extra key",
			doc:     `{"vendor":"X Corp","date":"2025-06-20","amount":10,"notes":"hi"}`,
			wantErr: true,
		},
		{
			name:    "not json",
			doc:     `vendor: DMart`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRecordJSON(schema, []byte(tt.doc))
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRecordJSON() error = %v, wantErr %t", err, tt.wantErr)
			}
		})
	}
}

type stubModel struct {
	reply string
	err   error
}

func (s stubModel) ExtractJSON(_ context.Context, _ string) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []byte(s.reply), nil
}

func TestAdapterExtractRecord(t *testing.T) {
	schema, err := CompileRecordSchema(nil)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("valid reply becomes a record", func(t *testing.T) {
		model := stubModel{reply: "Sure!\n```json\n" +
			`{"vendor":"Hotel Paradise","category":"Restaurant","date":"2025-07-01","amount":"860.00","currency":"INR"}` +
			"\n```"}
		adapter := NewAdapter(model, schema, nil)

		record, err := adapter.ExtractRecord(context.Background(), "raw ocr text")
		if err != nil {
			t.Fatalf("ExtractRecord() error = %v", err)
		}
		if record.Source != entity.SourceModel {
			t.Errorf("source = %q, want %q", record.Source, entity.SourceModel)
		}
		if record.Vendor == nil || *record.Vendor != "Hotel Paradise" {
			t.Errorf("vendor = %v, want Hotel Paradise", record.Vendor)
		}
		if record.Amount == nil || !record.Amount.Equal(decimal.RequireFromString("860.00")) {
			t.Errorf("amount = %v, want 860.00", record.Amount)
		}
		if record.RawText != "raw ocr text" {
			t.Errorf("raw text = %q, want preserved input", record.RawText)
		}
	})

	t.Run("model error is wrapped", func(t *testing.T) {
		adapter := NewAdapter(stubModel{err: errors.New("timeout")}, schema, nil)
		if _, err := adapter.ExtractRecord(context.Background(), "raw"); err == nil {
			t.Error("ExtractRecord() error = nil, want wrapped model error")
		}
	})

	t.Run("schema violation is an error", func(t *testing.T) {
		adapter := NewAdapter(stubModel{reply: `{"amount":10}`}, schema, nil)
		if _, err := adapter.ExtractRecord(context.Background(), "raw"); err == nil {
			t.Error("ExtractRecord() error = nil, want validation error")
		}
	})

	t.Run("non positive amount is dropped", func(t *testing.T) {
		adapter := NewAdapter(stubModel{reply: `{"vendor":"X Corp","date":"2025-07-01","amount":"-5"}`}, schema, nil)
		record, err := adapter.ExtractRecord(context.Background(), "raw")
		if err != nil {
			t.Fatalf("ExtractRecord() error = %v", err)
		}
		if record.Amount != nil {
			t.Errorf("amount = %v, want dropped", record.Amount)
		}
	})
}

func TestRichnessPolicy(t *testing.T) {
	policy := NewRichnessPolicy()

	full := func(raw string) entity.ExtractedRecord {
		var r entity.ExtractedRecord
		r.SetVendor("DMart")
		r.SetCategory("Groceries")
		r.SetDate("2025-07-19")
		r.SetAmount(decimal.RequireFromString("1250.50"))
		r.RawText = raw
		r.Source = entity.SourceHeuristic
		return r
	}
	sparse := func(raw string) entity.ExtractedRecord {
		var r entity.ExtractedRecord
		r.SetVendor("DMart")
		r.RawText = raw
		r.Source = entity.SourceModel
		return r
	}

	t.Run("more fields win", func(t *testing.T) {
		alt := full("model text")
		alt.Source = entity.SourceModel
		got := policy.Prefer(sparse("short"), alt)
		if got.Source != entity.SourceModel {
			t.Errorf("preferred %q, want richer alternate", got.Source)
		}
	})

	t.Run("fewer fields lose regardless of text length", func(t *testing.T) {
		got := policy.Prefer(full("short"), sparse(strings.Repeat("long ", 100)))
		if got.Source != entity.SourceHeuristic {
			t.Errorf("preferred %q, want heuristic", got.Source)
		}
	})

	t.Run("field tie breaks on clearly longer text", func(t *testing.T) {
		got := policy.Prefer(full("short text"), func() entity.ExtractedRecord {
			r := full(strings.Repeat("much longer recovered text ", 10))
			r.Source = entity.SourceModel
			return r
		}())
		if got.Source != entity.SourceModel {
			t.Errorf("preferred %q, want alternate with longer text", got.Source)
		}
	})

	t.Run("full tie keeps heuristic", func(t *testing.T) {
		alt := full("same length")
		alt.Source = entity.SourceModel
		got := policy.Prefer(full("same length"), alt)
		if got.Source != entity.SourceHeuristic {
			t.Errorf("preferred %q, want heuristic on a dead tie", got.Source)
		}
	})
}
