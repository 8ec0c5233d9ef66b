package schema

// AnalysisResult reports whether a process description carries enough
// structural signal to produce a meaningful flowchart.
type AnalysisResult struct {
	// IsComplete is true iff no missing-element categories were found.
	IsComplete bool `json:"isComplete"`
	// MissingInfo lists the missing structural categories, in check order.
	MissingInfo []string `json:"missingInfo"`
	// Preview is a numbered plain-text listing of the extracted steps.
	Preview string `json:"preview"`
}

// QuoteNormalization is the result of stripping embedded quote
// characters from a description.
type QuoteNormalization struct {
	ConvertedDescription string `json:"convertedDescription"`
	ReplacementCount     int    `json:"replacementCount"`
}
