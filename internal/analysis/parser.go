package analysis

import (
	"encoding/json"

	"github.com/abhisek/formcheck/internal/pose"
)

const snippetLimit = 120

// parseAssessment turns raw completion text into a validated assessment.
// The text is fence-stripped first; the remainder must be valid JSON that
// satisfies the assessment schema.
func parseAssessment(raw string) (*pose.AnalysisResponse, error) {
	cleaned := stripFence(raw)

	var probe any
	if err := json.Unmarshal([]byte(cleaned), &probe); err != nil {
		return nil, &MalformedError{Snippet: snippet(cleaned), Err: err}
	}

	resp, err := pose.ValidateResponse([]byte(cleaned))
	if err != nil {
		return nil, &SchemaMismatchError{Err: err}
	}

	return resp, nil
}

// snippet truncates raw text for inclusion in error messages and logs.
func snippet(s string) string {
	if len(s) <= snippetLimit {
		return s
	}
	return s[:snippetLimit] + "..."
}
