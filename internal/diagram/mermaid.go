package diagram

import (
	"fmt"
	"strings"
)

// RenderMermaid serializes a Model as Mermaid flowchart source: the
// top-down direction header, one declaration line per node, then one
// line per edge. Labels are quote-free by construction (Build strips
// them), so the emitted syntax is always well formed.
func RenderMermaid(model *Model) string {
	var b strings.Builder

	b.WriteString("flowchart TD\n")

	for _, node := range model.Nodes {
		b.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", node.ID, node.Label))
	}

	for _, edge := range model.Edges {
		label := ""
		if edge.Label != "" {
			label = fmt.Sprintf("|%s|", edge.Label)
		}
		b.WriteString(fmt.Sprintf("    %s -->%s %s\n", edge.From, label, edge.To))
	}

	return b.String()
}

// Generate compiles a description straight to Mermaid source. It never
// returns an error for any string input; an empty description yields
// the header line only.
func Generate(description string) string {
	return RenderMermaid(Build(description))
}
