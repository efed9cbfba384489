package ai

// FallbackReply is returned when the service answered without usable text.
const FallbackReply = "I'm here with you. Let's take a slow breath together. Could you share a bit more?"

// Result is the decoded response of one generation call.
type Result struct {
	// Text is the provider's aggregated top-level text, if it exposes one.
	Text       string
	Candidates []Candidate
}

// Candidate is one alternative completion, as ordered text parts.
type Candidate struct {
	Parts []string
}

// Extract returns the user-facing text of a result. The top-level text wins,
// then the first part of the first candidate, then FallbackReply.
func Extract(result Result) string {
	if result.Text != "" {
		return result.Text
	}
	if len(result.Candidates) > 0 {
		if parts := result.Candidates[0].Parts; len(parts) > 0 && parts[0] != "" {
			return parts[0]
		}
	}
	return FallbackReply
}
