package diagram

import (
	"fmt"
	"strings"

	"github.com/rendis/flowsmith/internal/flow"
)

// Label keywords that classify a node as a decision or an else target.
var (
	decisionMarkers = []string{"if", "decide", "check"}
	elseMarkers     = []string{"else", "otherwise"}
)

// Build constructs a Model from a free-form description. Each extracted
// step becomes one node, in extraction order, with the deterministic ID
// step<N> (1-based) and a label stripped of quote characters. Build
// never fails: an empty description yields an empty model.
func Build(description string) *Model {
	steps := flow.SplitSteps(description)

	nodes := make([]*Node, 0, len(steps))
	for i, step := range steps {
		label := flow.StripQuotes(step)
		lower := strings.ToLower(label)
		nodes = append(nodes, &Node{
			ID:       fmt.Sprintf("step%d", i+1),
			Label:    label,
			Decision: containsAny(lower, decisionMarkers),
			Else:     containsAny(lower, elseMarkers),
		})
	}

	return &Model{Nodes: nodes, Edges: buildEdges(nodes)}
}

// buildEdges derives the connections between consecutive nodes.
//
// A decision node pairs with the first else node anywhere later in the
// sequence: a Yes edge to its immediate successor and a No edge to the
// else node, replacing the plain sequential edge. The scan is
// deliberately unbounded forward, so several decisions before the first
// else all pair with that same else node. This mirrors long-standing
// behavior that callers depend on; do not tighten the scan.
func buildEdges(nodes []*Node) []Edge {
	if len(nodes) < 2 {
		return nil
	}

	edges := make([]Edge, 0, len(nodes)-1)
	for i := 0; i < len(nodes)-1; i++ {
		cur, next := nodes[i], nodes[i+1]
		if cur.Decision {
			if j := firstElseAfter(nodes, i+1); j >= 0 {
				edges = append(edges,
					Edge{From: cur.ID, To: next.ID, Label: "Yes"},
					Edge{From: cur.ID, To: nodes[j].ID, Label: "No"},
				)
				continue
			}
			// No else target anywhere later: fall through to a plain edge.
		}
		edges = append(edges, Edge{From: cur.ID, To: next.ID})
	}
	return edges
}

// firstElseAfter returns the index of the first else node at or after
// start, or -1 if none exists.
func firstElseAfter(nodes []*Node, start int) int {
	for j := start; j < len(nodes); j++ {
		if nodes[j].Else {
			return j
		}
	}
	return -1
}

func containsAny(lower string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}
