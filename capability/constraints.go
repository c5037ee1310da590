package capability

// Constraints bundles the limits a provider enforces around tokens, rate,
// message shape, and timeouts.
type Constraints struct {
	Tokens   TokenLimits        `json:"tokens"`
	Rate     RateLimits         `json:"rate_limits"`
	Messages MessageConstraints `json:"messages"`
	Timeouts TimeoutConstraints `json:"timeouts"`
}

// TokenLimits bounds context-window and per-call token usage.
type TokenLimits struct {
	MaxContextWindow *int64  `json:"max_context_window,omitempty"`
	MaxInputTokens   *int64  `json:"max_input_tokens,omitempty"`
	MaxOutputTokens  *int64  `json:"max_output_tokens,omitempty"`
	MaxTokensPerMsg  *int64  `json:"max_tokens_per_message,omitempty"`
	Encoding         *string `json:"encoding,omitempty"`
}

// RateLimits bounds request/token throughput.
type RateLimits struct {
	RequestsPerMinute     *int64 `json:"requests_per_minute,omitempty"`
	RequestsPerDay        *int64 `json:"requests_per_day,omitempty"`
	TokensPerMinute       *int64 `json:"tokens_per_minute,omitempty"`
	MaxConcurrentRequests *int64 `json:"max_concurrent_requests,omitempty"`
}

// MessageConstraints bounds conversation shape.
type MessageConstraints struct {
	MaxMessagesPerConversation *int64 `json:"max_messages_per_conversation,omitempty"`
	MinMessagesRequired        *int64 `json:"min_messages_required,omitempty"`
	AllowEmptyMessages         bool   `json:"allow_empty_messages"`
	AllowConsecutiveSameRole   bool   `json:"allow_consecutive_same_role"`
}

// TimeoutConstraints bounds how long a call may run.
type TimeoutConstraints struct {
	DefaultTimeoutSeconds    *int64 `json:"default_timeout_seconds,omitempty"`
	MaxRequestTimeoutSeconds *int64 `json:"max_request_timeout_seconds,omitempty"`
}

func defaultConstraints() Constraints {
	minMessages := int64(1)
	contextWindow := int64(4096)
	outputTokens := int64(4096)
	defaultTimeout := int64(30)
	maxTimeout := int64(600)

	return Constraints{
		Tokens: TokenLimits{
			MaxContextWindow: &contextWindow,
			MaxOutputTokens:  &outputTokens,
		},
		Messages: MessageConstraints{
			MinMessagesRequired: &minMessages,
		},
		Timeouts: TimeoutConstraints{
			DefaultTimeoutSeconds:    &defaultTimeout,
			MaxRequestTimeoutSeconds: &maxTimeout,
		},
	}
}
