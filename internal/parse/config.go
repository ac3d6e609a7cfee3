package parse

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Thresholds holds every scoring constant the resolvers use. The values below
// were tuned against a sample OCR corpus; deployments can override any of them
// from a YAML file instead of recompiling.
type Thresholds struct {
	// Controller
	MinTextLength int `yaml:"min_text_length"` // inputs shorter than this short-circuit

	// Category & vendor resolver
	CategoryMatch       int `yaml:"category_match"`         // partial-ratio floor fixing a category
	VendorKeyword       int `yaml:"vendor_keyword"`         // acceptance floor for keywords >= VendorShortLen
	VendorShortKeyword  int `yaml:"vendor_short_keyword"`   // stricter floor for shorter keywords
	VendorShortLen      int `yaml:"vendor_short_len"`       // keywords below this length use the strict floor
	VendorMinKeywordLen int `yaml:"vendor_min_keyword_len"` // keywords below this length are skipped entirely
	HeaderLines         int `yaml:"header_lines"`           // lines scanned for suffix fallback and date labels

	// Date resolver
	DateKeyword   int `yaml:"date_keyword"`    // lenient fuzzy floor for date labels (OCR noise)
	DateScanLines int `yaml:"date_scan_lines"` // lines covered by the pattern cascade

	// Amount resolver
	AmountKeyword     int `yaml:"amount_keyword"`     // fuzzy floor before a keyword counts at all
	AmountDecision    int `yaml:"amount_decision"`    // combined score that triggers extraction
	SymbolPriority    int `yaml:"symbol_priority"`    // currency-symbol-adjacent candidates
	SameLineBonus     int `yaml:"same_line_bonus"`    // number on the keyword's own line
	NearbyLineBonus   int `yaml:"nearby_line_bonus"`  // number within +/-2 lines of the keyword
	SeparatorPriority int `yaml:"separator_priority"` // number next to a horizontal rule
	FallbackPriority  int `yaml:"fallback_priority"`  // last-resort tail scan
	TailLines         int `yaml:"tail_lines"`         // bottom-up keyword scan depth
	FallbackLines     int `yaml:"fallback_lines"`     // last-resort scan depth
	FallbackMinValue  int `yaml:"fallback_min_value"` // minimum plausible total for the tail scan

	// Calendar-year exclusion: integers in this range are date noise, never money.
	YearMin int `yaml:"year_min"`
	YearMax int `yaml:"year_max"`
}

// DefaultThresholds returns the reference baseline.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinTextLength:       10,
		CategoryMatch:       85,
		VendorKeyword:       85,
		VendorShortKeyword:  90,
		VendorShortLen:      6,
		VendorMinKeywordLen: 4,
		HeaderLines:         15,
		DateKeyword:         70,
		DateScanLines:       20,
		AmountKeyword:       80,
		AmountDecision:      130,
		SymbolPriority:      500,
		SameLineBonus:       200,
		NearbyLineBonus:     50,
		SeparatorPriority:   75,
		FallbackPriority:    10,
		TailLines:           25,
		FallbackLines:       10,
		FallbackMinValue:    10,
		YearMin:             1900,
		YearMax:             2100,
	}
}

// LoadThresholds reads a YAML override file on top of the defaults. Missing
// keys keep their default; a missing file is an error so a typoed path does
// not silently run with defaults.
func LoadThresholds(path string) (Thresholds, error) {
	t := DefaultThresholds()
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read thresholds file: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse thresholds file: %w", err)
	}
	return t, nil
}
