package parse

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/receiptiq/receiptiq/internal/entity"
)

// ErrInsufficientText is the marker stored on records whose input was too
// short to resolve anything. It is a field value, not a Go error: the engine
// never fails a call.
const ErrInsufficientText = "Insufficient text extracted from document"

// AlternateSource produces a structured record from the same raw text through
// a different mechanism (typically a vision model). The controller treats it
// as optional and compares its output against the heuristic result.
type AlternateSource interface {
	ExtractRecord(ctx context.Context, rawText string) (entity.ExtractedRecord, error)
}

// ComparisonPolicy decides between the heuristic record and an alternate one.
type ComparisonPolicy interface {
	Prefer(heuristic, alternate entity.ExtractedRecord) entity.ExtractedRecord
}

// Extractor turns one noisy multi-line OCR text blob into a single structured
// record. It holds only immutable configuration, so one instance is safe for
// concurrent use.
type Extractor struct {
	logger       *slog.Logger
	cfg          Thresholds
	baseCurrency string
	alternate    AlternateSource
	policy       ComparisonPolicy
	now          func() time.Time
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithAlternate plugs in a model-based extraction source and the policy that
// arbitrates between it and the heuristics.
func WithAlternate(src AlternateSource, policy ComparisonPolicy) Option {
	return func(e *Extractor) {
		e.alternate = src
		e.policy = policy
	}
}

// WithClock overrides the clock used by the date resolver's non-future rule.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) {
		e.now = now
	}
}

func NewExtractor(logger *slog.Logger, cfg Thresholds, baseCurrency string, opts ...Option) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if baseCurrency == "" {
		baseCurrency = "INR"
	}
	e := &Extractor{
		logger:       logger,
		cfg:          cfg,
		baseCurrency: baseCurrency,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract runs the three field resolvers over rawText and merges their output
// into one record. It always returns a record and never an error: resolvers
// signal failure by absence, and trivial input short-circuits with the
// insufficient-text marker.
func (e *Extractor) Extract(ctx context.Context, rawText string) entity.ExtractedRecord {
	runID := uuid.New()
	record := entity.ExtractedRecord{
		Currency: e.baseCurrency,
		RawText:  rawText,
		Source:   entity.SourceHeuristic,
	}

	if len(strings.TrimSpace(rawText)) < e.cfg.MinTextLength {
		record.Error = ErrInsufficientText
		e.logger.Warn("extract.insufficient_text", "run_id", runID, "text_len", len(rawText))
		return record
	}

	// The resolvers are pure functions of the same immutable text and the
	// shared read-only catalogs, so they run in parallel with no coordination.
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		vendor, category, source := e.findVendor(rawText)
		if vendor != "" {
			record.SetVendor(vendor)
		}
		if category != "" {
			record.SetCategory(category)
		}
		record.CategorySource = source
	}()
	go func() {
		defer wg.Done()
		if date := e.findDate(rawText); date != "" {
			record.SetDate(date)
		}
	}()
	go func() {
		defer wg.Done()
		if value, currency, source, ok := e.findAmount(rawText); ok {
			record.SetAmount(value)
			if currency != "" {
				record.Currency = currency
			}
			record.AmountSource = source
		}
	}()
	wg.Wait()

	record = e.maybePreferAlternate(ctx, runID, rawText, record)

	e.logger.Info("extract.ok",
		"run_id", runID,
		"vendor", deref(record.Vendor),
		"category", deref(record.Category),
		"date", deref(record.TransactionDate),
		"currency", record.Currency,
		"fields", record.FieldCount(),
		"source", record.Source,
	)
	return record
}

// maybePreferAlternate consults the alternate source, if any, and lets the
// comparison policy pick the richer record. Alternate failures are logged and
// otherwise invisible: the heuristic record always stands on its own.
func (e *Extractor) maybePreferAlternate(ctx context.Context, runID uuid.UUID, rawText string, heuristic entity.ExtractedRecord) entity.ExtractedRecord {
	if e.alternate == nil || e.policy == nil {
		return heuristic
	}
	alternate, err := e.alternate.ExtractRecord(ctx, rawText)
	if err != nil {
		e.logger.Warn("extract.alternate_failed", "run_id", runID, "error", err)
		return heuristic
	}
	if alternate.Currency == "" {
		alternate.Currency = e.baseCurrency
	}
	return e.policy.Prefer(heuristic, alternate)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
