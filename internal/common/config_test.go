package common

import (
	"reflect"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"BASE_CURRENCY", "WATCH_ROOTS", "WATCH_DEBOUNCE", "WATCH_INITIAL_SCAN", "EXPORT_SHEET_NAME"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	if cfg.Extract.BaseCurrency != "INR" {
		t.Errorf("BaseCurrency = %q, want INR", cfg.Extract.BaseCurrency)
	}
	if cfg.Ingest.Debounce != 500*time.Millisecond {
		t.Errorf("Debounce = %v, want 500ms", cfg.Ingest.Debounce)
	}
	if !cfg.Ingest.InitialScan {
		t.Error("InitialScan = false, want true by default")
	}
	if cfg.Export.SheetName != "Extractions" {
		t.Errorf("SheetName = %q, want Extractions", cfg.Export.SheetName)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v", err)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("BASE_CURRENCY", "USD")
	t.Setenv("WATCH_ROOTS", "/a, /b ,,/c")
	t.Setenv("WATCH_DEBOUNCE", "2s")
	t.Setenv("WATCH_INITIAL_SCAN", "false")
	t.Setenv("EXPORT_SHEET_NAME", "Receipts")

	cfg := LoadConfig()

	if cfg.Extract.BaseCurrency != "USD" {
		t.Errorf("BaseCurrency = %q, want USD", cfg.Extract.BaseCurrency)
	}
	if want := []string{"/a", "/b", "/c"}; !reflect.DeepEqual(cfg.Ingest.WatchRoots, want) {
		t.Errorf("WatchRoots = %v, want %v", cfg.Ingest.WatchRoots, want)
	}
	if cfg.Ingest.Debounce != 2*time.Second {
		t.Errorf("Debounce = %v, want 2s", cfg.Ingest.Debounce)
	}
	if cfg.Ingest.InitialScan {
		t.Error("InitialScan = true, want false")
	}
	if cfg.Export.SheetName != "Receipts" {
		t.Errorf("SheetName = %q, want Receipts", cfg.Export.SheetName)
	}
}

func TestValidate_BadCurrency(t *testing.T) {
	t.Setenv("BASE_CURRENCY", "RUPEES")
	cfg := LoadConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() = nil, want error for non 3-letter currency")
	}
}
