package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/relaymesh/llmgateway/protocol"
)

func TestEstimateTokensCeilsCharsByFour(t *testing.T) {
	messages := []protocol.Message{
		protocol.NewTextMessage(protocol.RoleUser, "1234567"), // 7 chars -> ceil(7/4) = 2
	}

	assert.Equal(t, int64(2), EstimateTokens(messages))
}

func TestEstimateTokensCountsNonTextPartsFixedCost(t *testing.T) {
	messages := []protocol.Message{
		protocol.NewPartsMessage(protocol.RoleUser,
			protocol.ContentPart{Type: protocol.ContentPartText, Text: "1234"},
			protocol.ContentPart{Type: protocol.ContentPartImage, Image: &protocol.MediaRef{URL: "x"}},
		),
	}

	assert.Equal(t, int64(1001), EstimateTokens(messages))
}

func TestEstimateTokensEmpty(t *testing.T) {
	assert.Equal(t, int64(0), EstimateTokens(nil))
}
