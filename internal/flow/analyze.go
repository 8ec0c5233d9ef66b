package flow

import (
	"fmt"
	"strings"

	"github.com/rendis/flowsmith/pkg/schema"
)

// Missing-category messages reported in AnalysisResult.MissingInfo.
const (
	MissingStart      = "Starting point of the flowchart"
	MissingConnectors = "Connections between steps (e.g. 'then', 'next', 'after')"
	MissingDecisions  = "Decision points (optional: not every flowchart branches)"
)

var (
	startMarkers     = []string{"start", "begin", "first"}
	connectorMarkers = []string{"then", "next", "after", "followed by", "goes to", "leads to", "connects to", "->"}
	decisionMarkers  = []string{"if", "else", "otherwise", "when", "case", "condition", "decision"}
)

// Analyze checks whether a raw description carries enough structural
// signal to produce a meaningful flowchart. Each check is an independent
// case-insensitive substring match against the full description, not
// against the extracted steps.
func Analyze(description string) schema.AnalysisResult {
	lower := strings.ToLower(description)

	missing := make([]string, 0, 3)
	if !containsAny(lower, startMarkers) {
		missing = append(missing, MissingStart)
	}
	if !containsAny(lower, connectorMarkers) {
		missing = append(missing, MissingConnectors)
	}
	// Advisory: a linear flowchart is valid without branching, but the
	// caller is told so it can ask the user for decision points.
	if !containsAny(lower, decisionMarkers) {
		missing = append(missing, MissingDecisions)
	}

	return schema.AnalysisResult{
		IsComplete:  len(missing) == 0,
		MissingInfo: missing,
		Preview:     buildPreview(description),
	}
}

func containsAny(lower string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// buildPreview renders the numbered step listing shown to the caller
// for human review before diagram generation.
func buildPreview(description string) string {
	var b strings.Builder
	b.WriteString("Flow preview:\n")
	for i, step := range SplitSteps(description) {
		fmt.Fprintf(&b, "%d. %s\n", i+1, StripQuotes(step))
	}
	return b.String()
}
