package ingest

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/receiptiq/receiptiq/internal/common"
	"github.com/receiptiq/receiptiq/internal/parse"
)

// Runner consumes watcher events: it reads each OCR text dump, runs the
// extraction engine over it, and writes the record as a .json sidecar.
type Runner struct {
	extractor *parse.Extractor
	outputDir string // empty: sidecar next to the input file
	logger    *slog.Logger
}

func NewRunner(extractor *parse.Extractor, outputDir string, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{extractor: extractor, outputDir: outputDir, logger: logger}
}

// Run processes paths until the channel closes or ctx is cancelled. A failing
// file is logged and skipped; the loop never stops for one bad input.
func (r *Runner) Run(ctx context.Context, paths <-chan string) {
	for {
		select {
		case <-ctx.Done():
			return
		case path, ok := <-paths:
			if !ok {
				return
			}
			if err := r.ProcessFile(ctx, path); err != nil {
				r.logger.Error("ingest.process_failed", "path", path, "error", err)
			}
		}
	}
}

// ProcessFile extracts one text dump and writes its record sidecar.
func (r *Runner) ProcessFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return common.WrapError(err, "read text dump")
	}
	// OCR dumps occasionally carry stray bytes from upstream encodings.
	rawText := strings.ToValidUTF8(string(data), "")

	record := r.extractor.Extract(ctx, rawText)

	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return common.WrapError(err, "encode record")
	}
	target := r.sidecarPath(path)
	if err := os.WriteFile(target, out, 0o644); err != nil {
		return common.WrapError(err, "write record sidecar")
	}
	r.logger.Info("ingest.processed", "path", path, "record", target, "fields", record.FieldCount())
	return nil
}

func (r *Runner) sidecarPath(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".json"
	if r.outputDir != "" {
		return filepath.Join(r.outputDir, base)
	}
	return filepath.Join(filepath.Dir(path), base)
}
