package llm

import (
	"strings"

	"github.com/receiptiq/receiptiq/internal/entity"
)

// RichnessPolicy prefers whichever record carries more structured content:
// primarily the populated-field count, with raw-text length as the secondary
// proxy. The heuristic record wins ties — it is reproducible, the model is
// not.
type RichnessPolicy struct {
	// MinLengthRatio guards the length proxy: the alternate's raw text must be
	// at least this fraction of the heuristic's before length counts for it.
	MinLengthRatio float64
}

func NewRichnessPolicy() RichnessPolicy {
	return RichnessPolicy{MinLengthRatio: 0.8}
}

func (p RichnessPolicy) Prefer(heuristic, alternate entity.ExtractedRecord) entity.ExtractedRecord {
	hf, af := heuristic.FieldCount(), alternate.FieldCount()
	if af > hf {
		return alternate
	}
	if af < hf {
		return heuristic
	}

	hl := len(strings.TrimSpace(heuristic.RawText))
	al := len(strings.TrimSpace(alternate.RawText))
	if float64(al) > float64(hl)*p.MinLengthRatio && al > hl {
		return alternate
	}
	return heuristic
}
