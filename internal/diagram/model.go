package diagram

// Model is the intermediate representation produced by Build and
// consumed by RenderMermaid. It separates which connections exist from
// how they are printed.
type Model struct {
	Nodes []*Node
	Edges []Edge
}

// Node represents a single flowchart box. Decision and Else are
// independent label classifications: Decision drives branch-edge
// emission, Else marks the node as a "No" branch target.
type Node struct {
	ID       string
	Label    string
	Decision bool
	Else     bool
}

// Edge represents a directed connection between two nodes. Label is
// "Yes" or "No" for decision branches and empty for plain edges.
type Edge struct {
	From  string
	To    string
	Label string
}
