package llm

import (
	_ "embed"
	"strings"
)

const documentPlaceholder = "{{DOCUMENT}}"

var (
	//go:embed prompts/summarize.txt
	summarizeTemplate string
	//go:embed prompts/mask.txt
	maskTemplate string
)

// SummaryPrompt asks for a plain-English explanation and key points as JSON.
func SummaryPrompt(content string) string {
	return strings.ReplaceAll(summarizeTemplate, documentPlaceholder, content)
}

// MaskingPrompt asks for the document with PII replaced by placeholder tokens.
func MaskingPrompt(content string) string {
	return strings.ReplaceAll(maskTemplate, documentPlaceholder, content)
}
