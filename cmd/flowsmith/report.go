package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/rendis/flowsmith/internal/diagram"
	"github.com/rendis/flowsmith/internal/flow"
	"github.com/rendis/flowsmith/pkg/schema"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
	headerColor  = color.New(color.FgCyan, color.Bold)
)

// runCheck analyzes a description from argv (or stdin) and prints a
// colored completeness report with the step preview.
func runCheck(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	description, err := readDescription(fs.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result := flow.Analyze(description)

	headerColor.Println("Description analysis")
	if result.IsComplete {
		successColor.Println("Complete: all structural elements present")
	} else {
		errorColor.Println("Missing elements:")
		for _, m := range result.MissingInfo {
			warningColor.Printf("  - %s\n", m)
		}
	}
	fmt.Print(result.Preview)
}

// runRender compiles a description to Mermaid flowchart source on stdout.
func runRender(args []string) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	description, err := readDescription(fs.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(diagram.Generate(description))
}

// readDescription joins argv into the description, or reads it from
// stdin when no args are given.
func readDescription(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", schema.NewError(schema.ErrCodeValidation, "cannot read description from stdin").WithCause(err)
	}
	return string(data), nil
}
