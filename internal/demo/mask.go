package demo

import "regexp"

type substitution struct {
	pattern     *regexp.Regexp
	replacement string
}

// Substitutions run in this order; later patterns see the output of earlier
// ones, so a capitalized street name is already [NAME] by the time the address
// pattern runs.
var substitutions = []substitution{
	{regexp.MustCompile(`[A-Z][a-z]+ [A-Z][a-z]+`), "[NAME]"},
	{regexp.MustCompile(`\d{3}-\d{2}-\d{4}`), "[SSN]"},
	{regexp.MustCompile(`\d{3}[-.]?\d{3}[-.]?\d{4}`), "[PHONE]"},
	{regexp.MustCompile(`(?i)\b[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}\b`), "[EMAIL]"},
	{regexp.MustCompile(`(?i)\d{1,5}\s\w+\s(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd)`), "[ADDRESS]"},
}

// Mask replaces names, SSNs, phone numbers, emails and street addresses with
// bracketed placeholders. It is a heuristic for demos, not a privacy guarantee.
func Mask(text string) string {
	for _, s := range substitutions {
		text = s.pattern.ReplaceAllLiteralString(text, s.replacement)
	}
	return text
}
