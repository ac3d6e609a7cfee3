package parse

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/receiptiq/receiptiq/internal/catalog"
	"github.com/receiptiq/receiptiq/internal/textmatch"
)

const isoDate = "2006-01-02"

// Date patterns tried in order. The first pattern producing a parseable date
// wins, so the stricter shapes come first.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{4}[-/.]\d{1,2}[-/.]\d{1,2}\b`),   // YYYY-MM-DD
	regexp.MustCompile(`\b\d{1,2}[-/.]\d{1,2}[-/.]\d{4}\b`),   // DD/MM/YYYY or MM/DD/YYYY
	regexp.MustCompile(`\b\d{1,2}[-/.]\d{1,2}[-/.]\d{2}\b`),   // DD/MM/YY
	regexp.MustCompile(`\b\d{8}\b`),                           // YYYYMMDD
	regexp.MustCompile(`(?i)\b\d{1,2}[-/.\s]+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\w*[-/.\s]+\d{2,4}\b`),
}

// Loosest tier: bare "12 January 2024" style with no separator discipline.
var reMonthName = regexp.MustCompile(`(?i)\b\d{1,2}\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\w*\s+\d{2,4}\b`)

var reSeparators = regexp.MustCompile(`[/.\s]+`)

// Layouts tried against the separator-normalized string. Day-first comes
// before month-first: the target corpus is predominantly DD-MM-YYYY.
var dateLayouts = []string{
	"2006-1-2",   // 2024-01-15
	"2-1-2006",   // 15-01-2024
	"1-2-2006",   // 01-15-2024
	"2-Jan-2006", // 15-Jan-2024
	"Jan-2-2006", // Jan-15-2024
	"January-2-2006",
}

// findDate locates the transaction date via a three-tier cascade: keyword
// anchors in the header, then the pattern cascade, then the loose month-name
// sweep. Returns "" when no tier succeeds.
func (e *Extractor) findDate(text string) string {
	lines := strings.Split(text, "\n")

	// Tier 1: a date label fixes the search area to its line plus the next two.
	limit := min(len(lines), e.cfg.HeaderLines)
	for i, line := range lines[:limit] {
		lineLower := strings.ToLower(strings.TrimSpace(line))
		for _, keyword := range catalog.DateKeywords {
			if textmatch.PartialRatio(keyword, lineLower) < e.cfg.DateKeyword {
				continue
			}
			area := strings.Join(lines[i:min(len(lines), i+3)], " ")
			if found := e.bestDateIn(area); found != "" {
				return found
			}
		}
	}

	// Tier 2: pattern cascade over the top of the document. The first pattern
	// producing any parseable date wins; if it produced several, the earliest
	// non-future one is the most defensible transaction date.
	limit = min(len(lines), e.cfg.DateScanLines)
	for _, pattern := range datePatterns {
		var found []time.Time
		for _, line := range lines[:limit] {
			for _, match := range pattern.FindAllString(line, -1) {
				if d, ok := parseDateString(match); ok {
					found = append(found, d)
				}
			}
		}
		if len(found) > 0 {
			return e.earliestPreferred(found).Format(isoDate)
		}
	}

	// Tier 3: loose month-name sweep.
	for _, line := range lines[:limit] {
		for _, match := range reMonthName.FindAllString(line, -1) {
			if d, ok := parseDateString(match); ok {
				return d.Format(isoDate)
			}
		}
	}

	return ""
}

// bestDateIn collects every date in a block of text and picks the most
// defensible one: the most recent date not in the future, or the earliest
// when everything found is in the future.
func (e *Extractor) bestDateIn(area string) string {
	var found []time.Time
	for _, pattern := range datePatterns {
		for _, match := range pattern.FindAllString(area, -1) {
			if d, ok := parseDateString(strings.TrimSpace(match)); ok {
				found = append(found, d)
			}
		}
	}
	if len(found) == 0 {
		return ""
	}

	now := e.now()
	var best time.Time
	for _, d := range found {
		if d.After(now) {
			continue
		}
		if best.IsZero() || d.After(best) {
			best = d
		}
	}
	if best.IsZero() {
		// Everything is in the future; take the earliest.
		best = earliest(found)
	}
	return best.Format(isoDate)
}

// earliestPreferred picks the earliest date that is not in the future, or the
// earliest overall when everything found lies ahead of the clock.
func (e *Extractor) earliestPreferred(found []time.Time) time.Time {
	now := e.now()
	var past []time.Time
	for _, d := range found {
		if !d.After(now) {
			past = append(past, d)
		}
	}
	if len(past) > 0 {
		return earliest(past)
	}
	return earliest(found)
}

func earliest(dates []time.Time) time.Time {
	best := dates[0]
	for _, d := range dates[1:] {
		if d.Before(best) {
			best = d
		}
	}
	return best
}

// parseDateString tries, in order: exact compact numeric, the normalized
// layout list, then a manual day/month-name/year split. A failure at every
// stage means the candidate does not count; it is never an error.
func parseDateString(dateStr string) (time.Time, bool) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, false
	}

	if len(dateStr) == 8 && isDigits(dateStr) {
		if d, err := time.Parse("20060102", dateStr); err == nil {
			return d, true
		}
		return time.Time{}, false
	}

	normalized := reSeparators.ReplaceAllString(dateStr, "-")
	normalized = expandTwoDigitYear(normalized)
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, normalized); err == nil {
			return d, true
		}
	}

	return parseDayMonthNameYear(dateStr)
}

// expandTwoDigitYear rewrites a trailing two-digit year: values below 50 land
// in the 2000s, the rest in the 1900s. Only day-first/month-first shapes
// qualify; a four-digit leading component is already a year (ISO), and its
// trailing day must not be rewritten.
func expandTwoDigitYear(normalized string) string {
	parts := strings.Split(normalized, "-")
	if len(parts) != 3 {
		return normalized
	}
	if len(parts[0]) > 2 {
		return normalized
	}
	last := parts[2]
	if len(last) != 2 || !isDigits(last) {
		return normalized
	}
	year, _ := strconv.Atoi(last)
	if year < 50 {
		parts[2] = strconv.Itoa(2000 + year)
	} else {
		parts[2] = strconv.Itoa(1900 + year)
	}
	return strings.Join(parts, "-")
}

// parseDayMonthNameYear handles "15 Jan 2024" and OCR-mangled variants the
// layout list missed.
func parseDayMonthNameYear(dateStr string) (time.Time, bool) {
	parts := strings.Fields(dateStr)
	if len(parts) != 3 {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false
	}
	monthKey := strings.ToLower(parts[1])
	if len(monthKey) > 3 {
		monthKey = monthKey[:3]
	}
	month, ok := catalog.MonthNumbers[monthKey]
	if !ok {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, false
	}
	if year < 100 {
		if year < 50 {
			year += 2000
		} else {
			year += 1900
		}
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (e.g. day 32 -> next month); reject it.
	if d.Day() != day || d.Month() != time.Month(month) {
		return time.Time{}, false
	}
	return d, true
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
