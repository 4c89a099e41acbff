package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/formcheck/internal/pose"
)

const analysisSystemPrompt = `You are a professional movement analyst who specializes in assessing human pose data and athletic performance.`

const exampleAssessment = `{
  "overall": 85,
  "accuracy": 88,
  "coordination": 82,
  "stability": 85,
  "feedback": [
    {"type": "good", "text": "Movement accuracy is high and close to the reference form", "icon": "✅"},
    {"type": "improve", "text": "Coordination between upper and lower body can be improved", "icon": "⚡"}
  ],
  "suggestions": [
    "Keep your core braced to reduce body sway",
    "Slow the movement down and feel the order in which muscles engage"
  ]
}`

// buildAnalysisUserMessage serializes the pose sequence and the scoring
// rubric into a single prompt. It is pure: identical pose input always
// yields a byte-identical prompt.
func buildAnalysisUserMessage(poses []pose.Pose) (string, error) {
	posesJSON, err := json.Marshal(poses)
	if err != nil {
		return "", fmt.Errorf("serialize poses: %w", err)
	}

	var b strings.Builder

	b.WriteString("Analyze the following human pose data.\n\n")
	b.WriteString("Pose data (JSON):\n")
	b.Write(posesJSON)
	b.WriteString("\n\nReturn JSON in exactly this shape (JSON only, no other text):\n")
	b.WriteString(exampleAssessment)

	b.WriteString(`

Scoring scale (0-100):
- accuracy: movement accuracy, whether keypoints are positioned correctly
- coordination: body coordination, left-right symmetry and movement flow
- stability: movement stability, degree of body sway
- overall: overall movement quality across all three dimensions

Give a professional assessment and concrete suggestions based on the pose data.
`)

	return b.String(), nil
}
