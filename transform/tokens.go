package transform

import (
	"github.com/relaymesh/llmgateway/protocol"
)

// nonTextPartTokenEstimate is the fixed token cost assigned to each
// non-text content part, since an image/audio payload's true token cost
// depends on provider-specific encoding this estimator does not model.
const nonTextPartTokenEstimate = 1000

// EstimateTokens is a deliberately crude, deliberately conservative token
// estimator: ceil(total characters / 4), plus a fixed per-part cost for
// every non-text content part. It is documented to over-estimate, never
// under-estimate, so callers that gate on it fail closed.
func EstimateTokens(messages []protocol.Message) int64 {
	var chars int64

	var nonTextParts int64

	for _, m := range messages {
		if m.Parts != nil {
			for _, p := range m.Parts {
				if p.Type == protocol.ContentPartText {
					chars += int64(len(p.Text))
				} else {
					nonTextParts++
				}
			}

			continue
		}

		if m.Text != nil {
			chars += int64(len(*m.Text))
		}
	}

	return ceilDiv(chars, 4) + nonTextParts*nonTextPartTokenEstimate
}

func ceilDiv(a, b int64) int64 {
	if a <= 0 {
		return 0
	}

	return (a + b - 1) / b
}
