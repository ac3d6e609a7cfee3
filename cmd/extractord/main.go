package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/receiptiq/receiptiq/internal/common"
	"github.com/receiptiq/receiptiq/internal/ingest"
	"github.com/receiptiq/receiptiq/internal/parse"
)

// extractord watches directories for OCR text dumps and writes a structured
// record sidecar next to each one as it appears.
func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(2)
	}
	if len(cfg.Ingest.WatchRoots) == 0 {
		logger.Error("WATCH_ROOTS env var is required (comma-separated directories)")
		os.Exit(2)
	}

	thresholds := parse.DefaultThresholds()
	if cfg.Extract.ThresholdsFile != "" {
		t, err := parse.LoadThresholds(cfg.Extract.ThresholdsFile)
		if err != nil {
			logger.Error("load thresholds", "error", err)
			os.Exit(2)
		}
		thresholds = t
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	paths, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       cfg.Ingest.WatchRoots,
		InitialScan: cfg.Ingest.InitialScan,
		Debounce:    cfg.Ingest.Debounce,
	}, logger)
	if err != nil {
		logger.Error("start watcher", "error", err)
		os.Exit(1)
	}
	go func() {
		for err := range errs {
			logger.Warn("watcher error", "error", err)
		}
	}()

	extractor := parse.NewExtractor(logger, thresholds, cfg.Extract.BaseCurrency)
	runner := ingest.NewRunner(extractor, cfg.Ingest.OutputDir, logger)

	logger.Info("extractord.start", "roots", cfg.Ingest.WatchRoots, "base_currency", cfg.Extract.BaseCurrency)
	runner.Run(ctx, paths)
	logger.Info("extractord.stop")
}
