package flow

import "strings"

// isStepDelimiter reports whether r terminates a step fragment.
// The delimiter set is fixed; no escaping is supported, so a delimiter
// inside quoted text still splits the description.
func isStepDelimiter(r rune) bool {
	return r == '.' || r == ',' || r == '\n'
}

// SplitSteps splits a description into its ordered step fragments.
// Fragments are trimmed of surrounding whitespace and empty ones are
// dropped. Surviving fragments keep their left-to-right source order.
func SplitSteps(description string) []string {
	parts := strings.FieldsFunc(description, isStepDelimiter)

	steps := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			steps = append(steps, s)
		}
	}
	return steps
}
