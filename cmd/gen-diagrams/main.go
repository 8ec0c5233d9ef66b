// gen-diagrams generates sample diagram outputs for README documentation.
// Run: go run ./cmd/gen-diagrams
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rendis/flowsmith/internal/diagram"
	"github.com/rendis/flowsmith/internal/flow"
)

func main() {
	samples := []struct {
		name        string
		description string
	}{
		{
			name:        "linear",
			description: "Start with the order. Then validate the address. Then ship the package.",
		},
		{
			name:        "branching",
			description: "Start intake, then check the payment, approve and ship, otherwise cancel the order",
		},
	}

	outDir := filepath.Join("docs", "assets")
	os.MkdirAll(outDir, 0o755)

	for _, sample := range samples {
		analysis := flow.Analyze(sample.description)
		mermaid := diagram.Generate(sample.description)

		path := filepath.Join(outDir, fmt.Sprintf("sample-%s.md", sample.name))
		content := fmt.Sprintf("Description:\n\n> %s\n\n%s\n```mermaid\n%s```\n",
			sample.description, analysis.Preview, mermaid)
		os.WriteFile(path, []byte(content), 0o644)

		fmt.Printf("=== %s ===\n", sample.name)
		fmt.Println(mermaid)
	}
}
