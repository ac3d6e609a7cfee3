package parse

import (
	"log/slog"
	"testing"
	"time"
)

func testClock() time.Time {
	return time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
}

func newTestExtractor() *Extractor {
	return NewExtractor(slog.Default(), DefaultThresholds(), "INR", WithClock(testClock))
}

func TestFindVendor_Catalog(t *testing.T) {
	e := newTestExtractor()

	tests := []struct {
		name         string
		text         string
		wantVendor   string
		wantCategory string
	}{
		{
			name:         "grocery chain by exact keyword",
			text:         "DMART\nDate: 19/07/2025\nGrand Total   Rs. 1,250.50",
			wantVendor:   "DMart",
			wantCategory: "Groceries",
		},
		{
			name:         "electricity board scoped by detected category",
			text:         "BESCOM\nBill Date: 20-06-2025\nNet Amount Payable : ₹ 2345.00",
			wantVendor:   "BESCOM",
			wantCategory: "Electricity",
		},
		{
			name:         "telecom vendor found without category hint",
			text:         "Welcome to Airtel\nInvoice Date : 01-07-2025\nTotal Amount Due 999.00",
			wantVendor:   "Airtel",
			wantCategory: "Internet & Telecom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vendor, category, source := e.findVendor(tt.text)
			if vendor != tt.wantVendor {
				t.Errorf("vendor = %q, want %q", vendor, tt.wantVendor)
			}
			if category != tt.wantCategory {
				t.Errorf("category = %q, want %q", category, tt.wantCategory)
			}
			if source != vendorSourceCatalog {
				t.Errorf("source = %q, want %q", source, vendorSourceCatalog)
			}
		})
	}
}

func TestFindVendor_SuffixFallback(t *testing.T) {
	e := newTestExtractor()

	t.Run("legal suffix yields pre-suffix name", func(t *testing.T) {
		vendor, category, source := e.findVendor("Krishna Bhavan Pvt Ltd\nReceipt no 4521\nThank you")
		if vendor != "Krishna Bhavan" {
			t.Errorf("vendor = %q, want %q", vendor, "Krishna Bhavan")
		}
		if category != "Business" {
			t.Errorf("category = %q, want %q", category, "Business")
		}
		if source != vendorSourceSuffix {
			t.Errorf("source = %q, want %q", source, vendorSourceSuffix)
		}
	})

	t.Run("suffix name sniffed into transportation", func(t *testing.T) {
		vendor, category, _ := e.findVendor("Hindustan Oilfields Ltd\nReceipt no 9921\nThank you")
		if vendor != "Hindustan Oilfields" {
			t.Errorf("vendor = %q, want %q", vendor, "Hindustan Oilfields")
		}
		if category != "Transportation" {
			t.Errorf("category = %q, want %q", category, "Transportation")
		}
	})

	t.Run("total-looking lines are skipped", func(t *testing.T) {
		vendor, _, _ := e.findVendor("Total Amount Co Ltd 500\nSunrise Traders Pvt Ltd\nThank you")
		if vendor != "Sunrise Traders" {
			t.Errorf("vendor = %q, want %q", vendor, "Sunrise Traders")
		}
	})
}

func TestFindVendor_GenericProvider(t *testing.T) {
	e := newTestExtractor()

	vendor, category, source := e.findVendor("Monthly broadband statement\nPlan: 100 Mbps\nThank you for your payment")
	if vendor != "Generic Internet & Telecom Provider" {
		t.Errorf("vendor = %q, want generic provider label", vendor)
	}
	if category != "Internet & Telecom" {
		t.Errorf("category = %q, want %q", category, "Internet & Telecom")
	}
	if source != vendorSourceGeneric {
		t.Errorf("source = %q, want %q", source, vendorSourceGeneric)
	}
}

func TestFindVendor_NothingRecognizable(t *testing.T) {
	e := newTestExtractor()

	vendor, category, source := e.findVendor("zzzz qqqq\nwwww vvvv\nyyyy xxxx")
	if vendor != "" || category != "" || source != "" {
		t.Errorf("got (%q, %q, %q), want all empty", vendor, category, source)
	}
}

func TestDetectCategory_FirstMatchWins(t *testing.T) {
	e := newTestExtractor()

	// "power" fixes Electricity before the later Shopping keywords are tried.
	cat, ok := e.detectCategory("power store monthly bill")
	if !ok || cat != "Electricity" {
		t.Errorf("detectCategory = (%q, %t), want (Electricity, true)", cat, ok)
	}
}

func TestExtractPreSuffixName(t *testing.T) {
	tests := []struct {
		line   string
		want   string
		wantOK bool
	}{
		{"Krishna Bhavan Pvt Ltd", "Krishna Bhavan", true},
		{"Sunrise Traders (India) Ltd", "Sunrise Traders India", true},
		{"Ltd", "", false},
		{"AB Ltd", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := extractPreSuffixName(tt.line)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("extractPreSuffixName(%q) = (%q, %t), want (%q, %t)", tt.line, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
