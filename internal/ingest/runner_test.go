package ingest

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/receiptiq/receiptiq/internal/entity"
	"github.com/receiptiq/receiptiq/internal/parse"
)

func writeDump(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readSidecar(t *testing.T, path string) entity.ExtractedRecord {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var record entity.ExtractedRecord
	if err := json.Unmarshal(data, &record); err != nil {
		t.Fatalf("decode sidecar: %v", err)
	}
	return record
}

func TestProcessFile_SidecarNextToInput(t *testing.T) {
	dir := t.TempDir()
	extractor := parse.NewExtractor(nil, parse.DefaultThresholds(), "INR")
	runner := NewRunner(extractor, "", nil)

	path := writeDump(t, dir, "receipt.txt", "DMART\nDate: 19/07/2025\nGrand Total   Rs. 1,250.50")
	if err := runner.ProcessFile(context.Background(), path); err != nil {
		t.Fatalf("ProcessFile() error = %v", err)
	}

	record := readSidecar(t, filepath.Join(dir, "receipt.json"))
	if record.Vendor == nil || *record.Vendor != "DMart" {
		t.Errorf("vendor = %v, want DMart", record.Vendor)
	}
	if record.Currency != "INR" {
		t.Errorf("currency = %q, want INR", record.Currency)
	}
}

func TestProcessFile_OutputDir(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()
	extractor := parse.NewExtractor(nil, parse.DefaultThresholds(), "INR")
	runner := NewRunner(extractor, outDir, nil)

	path := writeDump(t, inDir, "scan.txt", "BESCOM\nBill Date: 20-06-2025\nNet Amount Payable : ₹ 2345.00")
	if err := runner.ProcessFile(context.Background(), path); err != nil {
		t.Fatalf("ProcessFile() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "scan.json")); err != nil {
		t.Errorf("sidecar missing from output dir: %v", err)
	}
}

func TestProcessFile_ShortDumpGetsErrorMarker(t *testing.T) {
	dir := t.TempDir()
	extractor := parse.NewExtractor(nil, parse.DefaultThresholds(), "INR")
	runner := NewRunner(extractor, "", nil)

	path := writeDump(t, dir, "blank.txt", "x")
	if err := runner.ProcessFile(context.Background(), path); err != nil {
		t.Fatalf("ProcessFile() error = %v", err)
	}

	record := readSidecar(t, filepath.Join(dir, "blank.json"))
	if record.Error == "" {
		t.Error("record.Error empty, want insufficient-text marker")
	}
}

func TestProcessFile_MissingFile(t *testing.T) {
	extractor := parse.NewExtractor(nil, parse.DefaultThresholds(), "INR")
	runner := NewRunner(extractor, "", nil)

	if err := runner.ProcessFile(context.Background(), filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("ProcessFile(missing) error = nil, want error")
	}
}

func TestRun_DrainsChannelAndStops(t *testing.T) {
	dir := t.TempDir()
	extractor := parse.NewExtractor(nil, parse.DefaultThresholds(), "INR")
	runner := NewRunner(extractor, "", nil)

	paths := make(chan string, 2)
	paths <- writeDump(t, dir, "a.txt", "DMART\nDate: 19/07/2025\nGrand Total Rs. 1,250.50")
	paths <- writeDump(t, dir, "b.txt", "random unlabelled content here")
	close(paths)

	runner.Run(context.Background(), paths)

	for _, name := range []string{"a.json", "b.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("sidecar %s missing: %v", name, err)
		}
	}
}
