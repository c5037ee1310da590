package transform

import (
	"strings"

	"github.com/relaymesh/llmgateway/protocol"
)

// hasSystemMessage reports whether any message uses the system role.
func hasSystemMessage(messages []protocol.Message) bool {
	for _, m := range messages {
		if m.Role == protocol.RoleSystem {
			return true
		}
	}

	return false
}

// systemPartPlaceholder is substituted for each non-text content part of a
// system message, since the merged result is always plain text (spec §4.3
// "degrades to a placeholder string").
const systemPartPlaceholder = "[non-text content omitted]"

// systemMessageText flattens a system message to plain text, substituting
// systemPartPlaceholder for any non-text Parts rather than silently
// dropping them. hadNonText reports whether any substitution occurred.
func systemMessageText(m protocol.Message) (text string, hadNonText bool) {
	if m.Parts == nil {
		return m.PlainText(), false
	}

	segments := make([]string, 0, len(m.Parts))

	for _, p := range m.Parts {
		if p.Type == protocol.ContentPartText {
			segments = append(segments, p.Text)
			continue
		}

		segments = append(segments, systemPartPlaceholder)
		hadNonText = true
	}

	return strings.Join(segments, "\n"), hadNonText
}

// mergeSystemMessages concatenates all system-role message text, in order,
// separated by a blank line, and prepends the result to the next user-role
// message. If no user message follows a run of system content, a new
// leading user message is synthesized to carry it (spec §4.3).
//
// A user message that carries structured Parts rather than plain text
// cannot have text prepended in place; the merged system content becomes
// its own leading user message instead, and the degradation is reported.
// A system message that itself carries non-text Parts is also degraded to
// a placeholder string, reported separately.
func mergeSystemMessages(messages []protocol.Message) (merged []protocol.Message, degradedForMerge, partsDegradedToText bool) {
	merged = make([]protocol.Message, 0, len(messages))

	var pendingSystem []string

	flushAsStandaloneMessage := func() {
		if len(pendingSystem) == 0 {
			return
		}

		text := strings.Join(pendingSystem, "\n\n")
		merged = append(merged, protocol.NewTextMessage(protocol.RoleUser, text))
		pendingSystem = nil
	}

	for _, m := range messages {
		switch m.Role {
		case protocol.RoleSystem:
			text, hadNonText := systemMessageText(m)
			if hadNonText {
				partsDegradedToText = true
			}

			if text != "" {
				pendingSystem = append(pendingSystem, text)
			}
		case protocol.RoleUser:
			if len(pendingSystem) == 0 {
				merged = append(merged, m.Clone())
				continue
			}

			systemText := strings.Join(pendingSystem, "\n\n")
			pendingSystem = nil

			if m.Text != nil {
				combined := systemText + "\n\n" + *m.Text
				next := m.Clone()
				next.Text = &combined
				merged = append(merged, next)
			} else {
				degradedForMerge = true
				merged = append(merged, protocol.NewTextMessage(protocol.RoleUser, systemText))
				merged = append(merged, m.Clone())
			}
		default:
			flushAsStandaloneMessage()
			merged = append(merged, m.Clone())
		}
	}

	flushAsStandaloneMessage()

	return merged, degradedForMerge, partsDegradedToText
}
