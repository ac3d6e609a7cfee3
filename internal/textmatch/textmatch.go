// Package textmatch scores how closely two strings resemble each other on a
// 0..100 scale. OCR output is noisy, so every resolver in this repo compares
// keywords through these tolerant modes instead of exact string matching.
package textmatch

import (
	"math"
	"sort"
	"strings"

	"github.com/agext/levenshtein"
)

// Ratio is the whole-string similarity: normalized edit distance over the two
// lower-cased inputs. Empty input on either side scores 0.
func Ratio(a, b string) int {
	a, b = normalize(a), normalize(b)
	if a == "" || b == "" {
		return 0
	}
	return toScore(levenshtein.Similarity(a, b, nil))
}

// PartialRatio rewards the shorter string appearing as a contiguous near-match
// inside the longer one: the best Ratio of the shorter string against every
// equally sized window of the longer.
func PartialRatio(a, b string) int {
	a, b = normalize(a), normalize(b)
	if a == "" || b == "" {
		return 0
	}
	shorter, longer := []rune(a), []rune(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if strings.Contains(string(longer), string(shorter)) {
		return 100
	}
	best := 0.0
	for i := 0; i+len(shorter) <= len(longer); i++ {
		window := string(longer[i : i+len(shorter)])
		if s := levenshtein.Similarity(string(shorter), window, nil); s > best {
			best = s
		}
	}
	return toScore(best)
}

// TokenSortRatio compares the two strings with their words sorted, so the same
// tokens in any order score as equal.
func TokenSortRatio(a, b string) int {
	return Ratio(sortTokens(a), sortTokens(b))
}

// BestScore is the maximum of the three modes. Catalog scans use it so a
// keyword can match whole, embedded, or with its words reordered.
func BestScore(a, b string) int {
	best := Ratio(a, b)
	if s := PartialRatio(a, b); s > best {
		best = s
	}
	if s := TokenSortRatio(a, b); s > best {
		best = s
	}
	return best
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func sortTokens(s string) string {
	tokens := strings.Fields(normalize(s))
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func toScore(similarity float64) int {
	return int(math.Round(similarity * 100))
}
