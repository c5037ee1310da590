package transform

import (
	"github.com/relaymesh/llmgateway/protocol"
)

// hasConsecutiveSameRole reports whether any two adjacent non-system-role
// messages share a role.
func hasConsecutiveSameRole(messages []protocol.Message) bool {
	var prev protocol.Role

	havePrev := false

	for _, m := range messages {
		if havePrev && prev == m.Role && m.Role != protocol.RoleSystem {
			return true
		}

		prev = m.Role
		havePrev = true
	}

	return false
}

// mergeConsecutiveSameRole concatenates each maximal run of adjacent
// non-system messages sharing a role into a single message, joining text
// with a blank-line separator (spec §4.3). System-role messages are never
// merged by this pass (system-role handling is mergeSystemMessages's job).
//
// A merged run in which any message uses Parts degrades to plain text
// (PlainText of each message, so non-text parts are dropped); the return
// value counts how many runs degraded, so the caller can choose
// between a single "degraded in merge" reason and a "multiple degraded" one.
func mergeConsecutiveSameRole(messages []protocol.Message) ([]protocol.Message, int) {
	if len(messages) == 0 {
		return messages, 0
	}

	merged := make([]protocol.Message, 0, len(messages))

	degradedGroups := 0

	group := messages[0].Clone()
	groupMixed := false

	flush := func() {
		if groupMixed {
			degradedGroups++
		}

		merged = append(merged, group)
	}

	for i := 1; i < len(messages); i++ {
		m := messages[i]

		if m.Role == group.Role && m.Role != protocol.RoleSystem {
			if group.Parts != nil || m.Parts != nil {
				groupMixed = true
			}

			combined := group.PlainText() + "\n\n" + m.PlainText()
			group.Text = &combined
			group.Parts = nil

			continue
		}

		flush()

		group = m.Clone()
		groupMixed = false
	}

	flush()

	return merged, degradedGroups
}
