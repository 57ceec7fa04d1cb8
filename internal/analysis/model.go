package analysis

// Result is the combined output of one analysis request.
type Result struct {
	SimplifiedText string   `json:"simplifiedText"`
	KeyPoints      []string `json:"keyPoints"`
	MaskedText     string   `json:"maskedText"`
}

// Summary is the parsed reply to the summarization prompt.
type Summary struct {
	SimplifiedText string   `json:"simplifiedText"`
	KeyPoints      []string `json:"keyPoints"`
}

// Outcome carries a Result plus how the summary was obtained.
type Outcome struct {
	Result         Result
	Fallback       bool
	FallbackReason string
}

type analyzeRequest struct {
	Content string `json:"content"`
}
