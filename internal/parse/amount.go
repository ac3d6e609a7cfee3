package parse

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/receiptiq/receiptiq/internal/catalog"
	"github.com/receiptiq/receiptiq/internal/textmatch"
)

// AmountCandidate is an ephemeral scoring tuple. Several generators append
// candidates for one input and exactly one survives selection; candidates
// never escape the call.
type AmountCandidate struct {
	Value    decimal.Decimal
	Currency string
	Priority int
}

// amount source tags recorded for provenance.
const (
	amountSourceSymbol    = "currency_symbol"
	amountSourceKeyword   = "keyword"
	amountSourceSeparator = "separator"
	amountSourceFallback  = "fallback"
)

var (
	// A number with optional thousands separators and an optional currency
	// prefix the regex consumes but does not capture.
	reAmount = regexp.MustCompile(`(?i)(?:rs\.?\s*|₹\s*|¥\s*|inr\s*|\$\s*|€\s*|£\s*)?(\d+(?:,\d{3})*(?:\.\d{2})?)`)

	// A currency symbol directly touching a number, in either order.
	reSymbolThenNumber = regexp.MustCompile(`([₹¥$€£])\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)
	reNumberThenSymbol = regexp.MustCompile(`(\d+(?:,\d{3})*(?:\.\d{2})?)\s*([₹¥$€£])`)

	// Horizontal rules that usually precede a totals block.
	reSeparatorLine = regexp.MustCompile(`^[-=_*.]{3,}$`)
)

// findAmount resolves the single most defensible (amount, currency) pair via
// candidate generation then selection. Empty results mean nothing plausible
// was found; the resolver never errors.
func (e *Extractor) findAmount(text string) (decimal.Decimal, string, string, bool) {
	lines := strings.Split(text, "\n")

	var candidates []AmountCandidate
	var sources []string
	add := func(c AmountCandidate, source string) {
		candidates = append(candidates, c)
		sources = append(sources, source)
	}

	e.scanSymbolAdjacent(lines, func(c AmountCandidate) { add(c, amountSourceSymbol) })
	e.scanKeywordAdjacent(lines, func(c AmountCandidate) { add(c, amountSourceKeyword) }, func(c AmountCandidate) { add(c, amountSourceSeparator) })

	if len(candidates) == 0 {
		e.scanTailFallback(lines, func(c AmountCandidate) { add(c, amountSourceFallback) })
	}

	if len(candidates) == 0 {
		return decimal.Decimal{}, "", "", false
	}

	// Highest (priority, value) wins: priority dominates, and among equally
	// prioritized figures the grand total is typically the largest.
	bestIdx := 0
	for i := 1; i < len(candidates); i++ {
		b, c := candidates[bestIdx], candidates[i]
		if c.Priority > b.Priority || (c.Priority == b.Priority && c.Value.GreaterThan(b.Value)) {
			bestIdx = i
		}
	}
	best := candidates[bestIdx]
	return best.Value, best.Currency, sources[bestIdx], true
}

// scanSymbolAdjacent emits the highest-baseline-priority candidates: a
// currency symbol directly touching a number is the strongest money signal
// OCR text offers.
func (e *Extractor) scanSymbolAdjacent(lines []string, emit func(AmountCandidate)) {
	for _, line := range lines {
		for _, m := range reSymbolThenNumber.FindAllStringSubmatch(line, -1) {
			e.emitSymbolCandidate(m[1], m[2], emit)
		}
		for _, m := range reNumberThenSymbol.FindAllStringSubmatch(line, -1) {
			e.emitSymbolCandidate(m[2], m[1], emit)
		}
	}
}

func (e *Extractor) emitSymbolCandidate(symbol, numberStr string, emit func(AmountCandidate)) {
	value, ok := e.parseMoney(numberStr)
	if !ok {
		return
	}
	emit(AmountCandidate{
		Value:    value,
		Currency: catalog.CodeForSymbol(symbol),
		Priority: e.cfg.SymbolPriority,
	})
}

// scanKeywordAdjacent walks the tail of the document bottom-up. A line whose
// fuzzy keyword score plus priority bonus clears the decision threshold gets
// its numbers harvested: same-line numbers at keyword score + SameLineBonus,
// and only if the keyword's own line has none, +/-2 neighbor lines at the
// lower bonus. A horizontal rule above a line triggers the separator scan.
func (e *Extractor) scanKeywordAdjacent(lines []string, emit, emitSeparator func(AmountCandidate)) {
	floor := len(lines) - e.cfg.TailLines
	if floor < 0 {
		floor = 0
	}
	// The floor line itself is excluded on purpose: in a short document that
	// leaves the top line (almost always the vendor header) to the vendor
	// resolver, and a labelled total there still surfaces via the tail
	// fallback.
	for i := len(lines) - 1; i > floor; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		lineLower := strings.ToLower(line)

		bestScore := 0
		for _, keyword := range catalog.AmountKeywords {
			score := textmatch.PartialRatio(keyword, lineLower)
			if score < e.cfg.AmountKeyword {
				continue
			}
			bonus, ok := catalog.KeywordPriorities[keyword]
			if !ok {
				bonus = catalog.DefaultKeywordPriority
			}
			if adjusted := score + bonus; adjusted > bestScore {
				bestScore = adjusted
			}
		}

		separatorAbove := i > 0 && reSeparatorLine.MatchString(strings.TrimSpace(lines[i-1]))

		switch {
		case bestScore >= e.cfg.AmountDecision:
			if !e.harvestLine(lines[i], bestScore+e.cfg.SameLineBonus, emit) {
				// Nothing on the keyword line itself; probe the neighbors.
				for j := max(0, i-2); j < min(len(lines), i+3); j++ {
					if j == i || strings.TrimSpace(lines[j]) == "" {
						continue
					}
					e.harvestLine(lines[j], bestScore+e.cfg.NearbyLineBonus, emit)
				}
			}
		case separatorAbove:
			// A horizontal rule signals the totals block follows it.
			for j := i; j < min(len(lines), i+2); j++ {
				if strings.TrimSpace(lines[j]) == "" {
					continue
				}
				e.harvestLine(lines[j], e.cfg.SeparatorPriority, emitSeparator)
			}
		}
	}
}

// harvestLine emits every plausible number on a line at the given priority and
// reports whether it found any.
func (e *Extractor) harvestLine(line string, priority int, emit func(AmountCandidate)) bool {
	found := false
	for _, m := range reAmount.FindAllStringSubmatch(line, -1) {
		value, ok := e.parseMoney(m[1])
		if !ok {
			continue
		}
		emit(AmountCandidate{
			Value:    value,
			Currency: currencyOnLine(line),
			Priority: priority,
		})
		found = true
	}
	return found
}

// scanTailFallback is the last resort: any number of plausible-total size in
// the bottom lines, at rock-bottom priority.
func (e *Extractor) scanTailFallback(lines []string, emit func(AmountCandidate)) {
	start := len(lines) - e.cfg.FallbackLines
	if start < 0 {
		start = 0
	}
	minValue := decimal.NewFromInt(int64(e.cfg.FallbackMinValue))
	for _, line := range lines[start:] {
		for _, m := range reAmount.FindAllStringSubmatch(line, -1) {
			value, ok := e.parseMoney(m[1])
			if !ok || value.LessThan(minValue) {
				continue
			}
			emit(AmountCandidate{
				Value:    value,
				Currency: currencyOnLine(line),
				Priority: e.cfg.FallbackPriority,
			})
		}
	}
}

// parseMoney applies the two shared filters: values below 1 are noise, and
// integers in the plausible-calendar-year range are dates, never money.
func (e *Extractor) parseMoney(numberStr string) (decimal.Decimal, bool) {
	value, err := decimal.NewFromString(strings.ReplaceAll(numberStr, ",", ""))
	if err != nil {
		return decimal.Decimal{}, false
	}
	if value.LessThan(decimal.New(1, 0)) {
		return decimal.Decimal{}, false
	}
	if value.IsInteger() {
		year := value.IntPart()
		if year >= int64(e.cfg.YearMin) && year <= int64(e.cfg.YearMax) {
			return decimal.Decimal{}, false
		}
	}
	return value, true
}

// currencyOnLine resolves the currency signal on a line via the ordered symbol
// table; empty means the caller should fall back to the base code.
func currencyOnLine(line string) string {
	lineLower := strings.ToLower(line)
	for _, cs := range catalog.CurrencySymbols {
		if strings.Contains(lineLower, cs.Symbol) {
			return cs.Code
		}
	}
	return ""
}
