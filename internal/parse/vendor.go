package parse

import (
	"regexp"
	"strings"

	"github.com/receiptiq/receiptiq/constants"
	"github.com/receiptiq/receiptiq/internal/catalog"
	"github.com/receiptiq/receiptiq/internal/textmatch"
)

// VendorMatch is the best-scoring catalog hit found during a scan. Transient:
// it only lives long enough to set the vendor/category fields.
type VendorMatch struct {
	Vendor   string
	Category constants.Category
	Score    int
}

// vendor source tags recorded for provenance.
const (
	vendorSourceCatalog = "catalog"
	vendorSourceSuffix  = "suffix"
	vendorSourceGeneric = "generic"
)

var (
	// Lines the suffix fallback must not mistake for a vendor header.
	reSuffixSkipLine = regexp.MustCompile(`(?i)^\d+$|total|amount|₹|\$|invoice|bill|date.*\d{4}|account|number|rr\s+number|tariff|reading`)
	reSuffixToken    = regexp.MustCompile(`(?i)\b(?:` + strings.Join(catalog.BusinessSuffixes, "|") + `)\b`)
	rePunctuation    = regexp.MustCompile(`[(),]`)
	reNameChars      = regexp.MustCompile(`[^\w\s&-]`)
)

// findVendor resolves (vendor, category) from the raw text: category sniffing
// first, then a catalog scan scoped to the detected category, then the
// legal-suffix and generic-provider fallbacks. Absence is the only failure
// signal; it never errors.
func (e *Extractor) findVendor(text string) (vendor, category, source string) {
	textLower := strings.ToLower(text)
	lines := strings.Split(text, "\n")

	detected, detectedOK := e.detectCategory(textLower)

	scope := catalog.Vendors
	if detectedOK {
		scope = catalog.VendorsFor(detected)
	}

	if m, ok := e.scanCatalog(scope, textLower); ok {
		return m.Vendor, string(m.Category), vendorSourceCatalog
	}

	if name, cat, ok := e.suffixFallback(lines, detected, detectedOK); ok {
		return name, string(cat), vendorSourceSuffix
	}

	if detectedOK {
		return "Generic " + string(detected) + " Provider", string(detected), vendorSourceGeneric
	}

	return "", "", ""
}

// detectCategory scans the category keyword catalog in order; the first
// keyword clearing the threshold fixes the category and stops the scan.
func (e *Extractor) detectCategory(textLower string) (constants.Category, bool) {
	for _, ck := range catalog.Categories {
		for _, keyword := range ck.Keywords {
			if textmatch.PartialRatio(keyword, textLower) >= e.cfg.CategoryMatch {
				return ck.Category, true
			}
		}
	}
	return "", false
}

// scanCatalog tracks the single best-scoring vendor across the scope. The
// comparison is strictly greater, so ties keep the first entry found.
func (e *Extractor) scanCatalog(scope []catalog.CategoryVendors, textLower string) (VendorMatch, bool) {
	var best VendorMatch
	for _, cv := range scope {
		for _, entry := range cv.Entries {
			if len(entry.Keyword) < e.cfg.VendorMinKeywordLen {
				continue
			}
			score := textmatch.BestScore(entry.Keyword, textLower)
			minScore := e.cfg.VendorKeyword
			if len(entry.Keyword) < e.cfg.VendorShortLen {
				minScore = e.cfg.VendorShortKeyword
			}
			if score <= best.Score || score < minScore {
				continue
			}
			// Fuzzy guard: the keyword (or one of its words) must literally
			// occur somewhere in the text.
			if !keywordOccurs(entry.Keyword, textLower) {
				continue
			}
			best = VendorMatch{Vendor: entry.Name, Category: cv.Category, Score: score}
		}
	}
	return best, best.Vendor != ""
}

func keywordOccurs(keyword, textLower string) bool {
	if strings.Contains(textLower, keyword) {
		return true
	}
	for _, part := range strings.Fields(keyword) {
		if strings.Contains(textLower, part) {
			return true
		}
	}
	return false
}

// suffixFallback scans the top header lines for a legal-entity suffix token
// (Ltd/Pvt/Corp/...) and extracts the text before it as the vendor name.
func (e *Extractor) suffixFallback(lines []string, detected constants.Category, detectedOK bool) (string, constants.Category, bool) {
	limit := min(len(lines), e.cfg.HeaderLines)
	for _, line := range lines[:limit] {
		clean := strings.TrimSpace(line)
		if len(clean) < 5 {
			continue
		}
		if reSuffixSkipLine.MatchString(clean) {
			continue
		}
		if !reSuffixToken.MatchString(strings.ToLower(clean)) {
			continue
		}

		name, ok := extractPreSuffixName(clean)
		if !ok {
			continue
		}

		category := constants.Business
		if detectedOK {
			category = detected
		} else if cat, ok := sniffCategoryFromName(name); ok {
			category = cat
		}
		return name, category, true
	}
	return "", "", false
}

// extractPreSuffixName splits the line at the leftmost word-bounded legal
// suffix and cleans the leading part down to word characters, spaces, '&'
// and '-'. "Krishna Bhavan Pvt Ltd" yields "Krishna Bhavan".
func extractPreSuffixName(line string) (string, bool) {
	cleaned := rePunctuation.ReplaceAllString(line, " ")
	loc := reSuffixToken.FindStringIndex(strings.ToLower(cleaned))
	if loc == nil {
		return "", false
	}
	head := strings.TrimSpace(cleaned[:loc[0]])
	if len(head) < 3 {
		return "", false
	}
	name := strings.Join(strings.Fields(reNameChars.ReplaceAllString(head, "")), " ")
	if len(name) < 3 {
		return "", false
	}
	return name, true
}

func sniffCategoryFromName(name string) (constants.Category, bool) {
	nameLower := strings.ToLower(name)
	for _, sniff := range catalog.NameSniffKeywords {
		for _, word := range sniff.Words {
			if strings.Contains(nameLower, word) {
				return sniff.Category, true
			}
		}
	}
	return "", false
}
