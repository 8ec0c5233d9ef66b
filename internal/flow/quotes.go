package flow

import (
	"strings"

	"github.com/rendis/flowsmith/pkg/schema"
)

const quoteChars = `"'`

// StripQuotes removes every single- and double-quote character from s.
func StripQuotes(s string) string {
	if !strings.ContainsAny(s, quoteChars) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r != '"' && r != '\'' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeQuotes returns text wrapped in a single pair of double quotes
// with every internal quote character removed, plus the number removed.
// An existing outer double-quote pair counts as the wrapper rather than
// as internal quotes, which keeps the operation stable under repeated
// application: a second pass removes nothing and changes nothing.
func NormalizeQuotes(text string) schema.QuoteNormalization {
	inner := text
	if len(inner) >= 2 && strings.HasPrefix(inner, `"`) && strings.HasSuffix(inner, `"`) {
		inner = inner[1 : len(inner)-1]
	}

	removed := strings.Count(inner, `"`) + strings.Count(inner, `'`)
	return schema.QuoteNormalization{
		ConvertedDescription: `"` + StripQuotes(inner) + `"`,
		ReplacementCount:     removed,
	}
}
