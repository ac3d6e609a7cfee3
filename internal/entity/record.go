package entity

import (
	"github.com/shopspring/decimal"
)

// Provenance values for the Source fields.
const (
	SourceHeuristic = "heuristic"
	SourceModel     = "model_json"
)

// ExtractedRecord is the single structured result of one extraction call.
// Pointer fields encode "not found": the resolvers never fail, they go absent.
type ExtractedRecord struct {
	Vendor          *string          `json:"vendor"`
	Category        *string          `json:"category"`
	TransactionDate *string          `json:"transaction_date"` // YYYY-MM-DD
	Amount          *decimal.Decimal `json:"amount"`           // strictly positive when present
	Currency        string           `json:"currency"`
	RawText         string           `json:"raw_text"`
	Error           string           `json:"error,omitempty"`

	// Provenance, kept out of the external shape consumers forward as JSON.
	Source         string `json:"source,omitempty"`
	CategorySource string `json:"-"`
	AmountSource   string `json:"-"`
}

// FieldCount returns the number of populated structured fields. The controller
// uses it as the richness proxy when comparing extraction sources.
func (r ExtractedRecord) FieldCount() int {
	n := 0
	if r.Vendor != nil && *r.Vendor != "" {
		n++
	}
	if r.Category != nil && *r.Category != "" {
		n++
	}
	if r.TransactionDate != nil && *r.TransactionDate != "" {
		n++
	}
	if r.Amount != nil {
		n++
	}
	return n
}

// SetVendor, SetCategory, SetDate and SetAmount keep the pointer plumbing in
// one place so resolvers and tests can stay literal.

func (r *ExtractedRecord) SetVendor(name string) {
	r.Vendor = &name
}

func (r *ExtractedRecord) SetCategory(category string) {
	r.Category = &category
}

func (r *ExtractedRecord) SetDate(isoDate string) {
	r.TransactionDate = &isoDate
}

func (r *ExtractedRecord) SetAmount(v decimal.Decimal) {
	r.Amount = &v
}
