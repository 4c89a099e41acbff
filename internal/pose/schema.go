package pose

// JSON Schema definitions for the wire formats. Validation is structural
// only: field presence and primitive types. Numeric ranges and keypoint
// naming are deliberately not checked.

var keypointSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name":  map[string]any{"type": "string"},
		"x":     map[string]any{"type": "number"},
		"y":     map[string]any{"type": "number"},
		"score": map[string]any{"type": "number"},
	},
	"required": []any{"name", "x", "y", "score"},
}

var poseSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"keypoints": map[string]any{
			"type":  "array",
			"items": keypointSchema,
		},
		"score": map[string]any{"type": "number"},
	},
	"required": []any{"keypoints", "score"},
}

// RequestSchema describes a valid AnalysisRequest body.
var RequestSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"poses": map[string]any{
			"type":  "array",
			"items": poseSchema,
		},
		"timestamp": map[string]any{"type": "integer"},
	},
	"required": []any{"poses", "timestamp"},
}

var feedbackItemSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"type": map[string]any{"type": "string"},
		"text": map[string]any{"type": "string"},
		"icon": map[string]any{"type": "string"},
	},
	"required": []any{"type", "text", "icon"},
}

// ResponseSchema describes a valid AnalysisResponse. It is applied to the
// orchestrator's result before it leaves the process, whichever path
// produced it.
var ResponseSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"overall":      map[string]any{"type": "integer"},
		"accuracy":     map[string]any{"type": "integer"},
		"coordination": map[string]any{"type": "integer"},
		"stability":    map[string]any{"type": "integer"},
		"feedback": map[string]any{
			"type":  "array",
			"items": feedbackItemSchema,
		},
		"suggestions": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
	},
	"required": []any{"overall", "accuracy", "coordination", "stability", "feedback", "suggestions"},
}
