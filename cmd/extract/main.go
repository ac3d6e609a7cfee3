package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/receiptiq/receiptiq/internal/common"
	"github.com/receiptiq/receiptiq/internal/entity"
	"github.com/receiptiq/receiptiq/internal/export"
	"github.com/receiptiq/receiptiq/internal/parse"
)

// extract runs the field-extraction engine over OCR text dumps and prints the
// structured records. With -xlsx or -csv it also writes a batch export.
func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	baseCurrency := flag.String("base-currency", cfg.Extract.BaseCurrency, "ISO 4217 code assumed when no currency is detected")
	thresholdsFile := flag.String("thresholds", cfg.Extract.ThresholdsFile, "optional YAML thresholds override")
	xlsxOut := flag.String("xlsx", "", "write all records to this XLSX workbook")
	csvOut := flag.String("csv", "", "write all records to this CSV file")
	flag.Parse()

	thresholds := parse.DefaultThresholds()
	if *thresholdsFile != "" {
		t, err := parse.LoadThresholds(*thresholdsFile)
		if err != nil {
			logger.Error("load thresholds", "error", err)
			os.Exit(2)
		}
		thresholds = t
	}

	extractor := parse.NewExtractor(logger, thresholds, *baseCurrency)
	ctx := context.Background()

	var records []entity.ExtractedRecord
	if flag.NArg() == 0 {
		text, err := io.ReadAll(os.Stdin)
		if err != nil {
			logger.Error("read stdin", "error", err)
			os.Exit(1)
		}
		records = append(records, extractor.Extract(ctx, string(text)))
	} else {
		for _, path := range flag.Args() {
			data, err := os.ReadFile(path)
			if err != nil {
				logger.Error("read file", "path", path, "error", err)
				os.Exit(1)
			}
			records = append(records, extractor.Extract(ctx, string(data)))
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	for _, record := range records {
		if err := enc.Encode(record); err != nil {
			logger.Error("encode record", "error", err)
			os.Exit(1)
		}
	}

	if *xlsxOut != "" || *csvOut != "" {
		svc := export.NewService(cfg.Export.SheetName, logger)
		if *xlsxOut != "" {
			data, err := svc.RecordsXLSX(records)
			if err != nil {
				logger.Error("export xlsx", "error", err)
				os.Exit(1)
			}
			if err := os.WriteFile(*xlsxOut, data, 0o644); err != nil {
				logger.Error("write xlsx", "path", *xlsxOut, "error", err)
				os.Exit(1)
			}
			fmt.Fprintf(os.Stderr, "wrote %s (%d records)\n", *xlsxOut, len(records))
		}
		if *csvOut != "" {
			data, err := svc.RecordsCSV(records)
			if err != nil {
				logger.Error("export csv", "error", err)
				os.Exit(1)
			}
			if err := os.WriteFile(*csvOut, data, 0o644); err != nil {
				logger.Error("write csv", "path", *csvOut, "error", err)
				os.Exit(1)
			}
			fmt.Fprintf(os.Stderr, "wrote %s (%d records)\n", *csvOut, len(records))
		}
	}
}
