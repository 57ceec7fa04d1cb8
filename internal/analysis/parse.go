package analysis

import (
	"encoding/json"
	"strings"
)

// PlaceholderKeyPoint is the single key point used when the summary reply
// cannot be read as JSON.
const PlaceholderKeyPoint = "Analysis generated successfully"

const (
	reasonNoJSON        = "no_json"
	reasonInvalidJSON   = "invalid_json"
	reasonMissingFields = "missing_fields"
)

type summaryReply struct {
	SimplifiedText string   `json:"simplifiedText"`
	KeyPoints      []string `json:"keyPoints"`
}

// ParseSummary reads the span from the first '{' to the last '}' of raw as a
// Summary. When there is no such span or it does not decode, the raw text
// becomes the summary with a single placeholder key point. The returned reason
// is empty when the reply parsed cleanly.
func ParseSummary(raw string) (Summary, string) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return fallbackSummary(raw), reasonNoJSON
	}

	var reply summaryReply
	if err := json.Unmarshal([]byte(raw[start:end+1]), &reply); err != nil {
		return fallbackSummary(raw), reasonInvalidJSON
	}

	out := Summary{SimplifiedText: reply.SimplifiedText, KeyPoints: reply.KeyPoints}
	reason := ""
	if strings.TrimSpace(out.SimplifiedText) == "" {
		out.SimplifiedText = raw
		reason = reasonMissingFields
	}
	if out.KeyPoints == nil {
		out.KeyPoints = []string{PlaceholderKeyPoint}
		reason = reasonMissingFields
	}
	return out, reason
}

func fallbackSummary(raw string) Summary {
	return Summary{
		SimplifiedText: raw,
		KeyPoints:      []string{PlaceholderKeyPoint},
	}
}
