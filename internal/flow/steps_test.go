package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSteps(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        []string
	}{
		{
			name:        "periods",
			description: "Start. Then next step.",
			want:        []string{"Start", "Then next step"},
		},
		{
			name:        "mixed delimiters",
			description: "First, fetch data.\nThen validate",
			want:        []string{"First", "fetch data", "Then validate"},
		},
		{
			name:        "whitespace fragments dropped",
			description: "a, ,  ,b",
			want:        []string{"a", "b"},
		},
		{
			name:        "empty input",
			description: "",
			want:        []string{},
		},
		{
			name:        "delimiters only",
			description: ".,.\n,.",
			want:        []string{},
		},
		{
			name:        "no delimiters",
			description: "single step only",
			want:        []string{"single step only"},
		},
		{
			// No escaping: a delimiter inside quoted text still splits.
			name:        "delimiter inside quotes still splits",
			description: `say "hello, world" to the user`,
			want:        []string{`say "hello`, `world" to the user`},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SplitSteps(tc.description))
		})
	}
}

func TestSplitStepsPreservesOrder(t *testing.T) {
	steps := SplitSteps("one. two, three\nfour")
	assert.Equal(t, []string{"one", "two", "three", "four"}, steps)
}

func TestSplitStepsDeterministic(t *testing.T) {
	description := "Start here. Then branch, if valid\nelse stop."
	first := SplitSteps(description)
	second := SplitSteps(description)
	assert.Equal(t, first, second)
}
