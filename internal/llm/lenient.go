package llm

import (
	"strings"

	"github.com/receiptiq/receiptiq/internal/common"
)

// ExtractJSONObject pulls the first-to-last-brace span out of a model reply.
// Models wrap JSON in prose and code fences often enough that strict decoding
// of the whole reply would reject most otherwise usable answers.
func ExtractJSONObject(reply string) ([]byte, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start == -1 || end <= start {
		return nil, common.NewAppError("MODEL_REPLY", "no JSON object in model reply", common.ErrNotFound)
	}
	return []byte(reply[start : end+1]), nil
}
