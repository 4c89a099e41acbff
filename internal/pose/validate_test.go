package pose

import (
	"errors"
	"testing"
)

const validRequest = `{
	"poses": [
		{
			"keypoints": [
				{"name": "nose", "x": 0.51, "y": 0.22, "score": 0.98},
				{"name": "left_shoulder", "x": 0.42, "y": 0.35, "score": 0.91}
			],
			"score": 0.95
		}
	],
	"timestamp": 1700000000
}`

func TestValidateRequest_Valid(t *testing.T) {
	req, err := ValidateRequest([]byte(validRequest))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(req.Poses) != 1 {
		t.Fatalf("expected 1 pose, got %d", len(req.Poses))
	}
	if req.Poses[0].Keypoints[0].Name != "nose" {
		t.Fatalf("expected first keypoint 'nose', got %q", req.Poses[0].Keypoints[0].Name)
	}
	if req.Timestamp != 1700000000 {
		t.Fatalf("unexpected timestamp: %d", req.Timestamp)
	}
}

func TestValidateRequest_EmptyPosesIsStructurallyValid(t *testing.T) {
	// An empty pose list passes the structural check; rejecting it is the
	// orchestrator's job, not the schema's.
	req, err := ValidateRequest([]byte(`{"poses": [], "timestamp": 0}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(req.Poses) != 0 {
		t.Fatalf("expected 0 poses, got %d", len(req.Poses))
	}
}

func TestValidateRequest_MissingTimestamp(t *testing.T) {
	_, err := ValidateRequest([]byte(`{"poses": []}`))
	if err == nil {
		t.Fatal("expected error for missing timestamp")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got: %T", err)
	}
}

func TestValidateRequest_WrongKeypointType(t *testing.T) {
	raw := `{
		"poses": [{"keypoints": [{"name": "nose", "x": "left", "y": 0.2, "score": 0.9}], "score": 0.9}],
		"timestamp": 1
	}`
	_, err := ValidateRequest([]byte(raw))
	if err == nil {
		t.Fatal("expected error for string x coordinate")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got: %T", err)
	}
	if ve.Field == "" {
		t.Fatal("expected offending field to be named")
	}
}

func TestValidateRequest_NotJSON(t *testing.T) {
	_, err := ValidateRequest([]byte("poses: nope"))
	if err == nil {
		t.Fatal("expected error for non-JSON body")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got: %T", err)
	}
}

const validResponse = `{
	"overall": 85,
	"accuracy": 88,
	"coordination": 82,
	"stability": 85,
	"feedback": [
		{"type": "good", "text": "Nice depth", "icon": "✅"},
		{"type": "improve", "text": "Watch your knees", "icon": "⚡"}
	],
	"suggestions": ["Slow down", "Brace your core"]
}`

func TestValidateResponse_Valid(t *testing.T) {
	resp, err := ValidateResponse([]byte(validResponse))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Overall != 85 || resp.Coordination != 82 {
		t.Fatalf("unexpected scores: %+v", resp)
	}
	if len(resp.Feedback) != 2 || len(resp.Suggestions) != 2 {
		t.Fatalf("unexpected feedback/suggestions: %+v", resp)
	}
}

func TestValidateResponse_MissingScore(t *testing.T) {
	raw := `{"overall": 85, "accuracy": 88, "stability": 85, "feedback": [], "suggestions": []}`
	_, err := ValidateResponse([]byte(raw))
	if err == nil {
		t.Fatal("expected error for missing coordination")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got: %T", err)
	}
}

func TestValidateResponse_NonIntegerScore(t *testing.T) {
	raw := `{"overall": "high", "accuracy": 88, "coordination": 82, "stability": 85, "feedback": [], "suggestions": []}`
	_, err := ValidateResponse([]byte(raw))
	if err == nil {
		t.Fatal("expected error for string score")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got: %T", err)
	}
	if ve.Field != "/overall" {
		t.Fatalf("expected field /overall, got %q", ve.Field)
	}
}

func TestValidateResponse_MalformedFeedbackItem(t *testing.T) {
	raw := `{"overall": 85, "accuracy": 88, "coordination": 82, "stability": 85,
		"feedback": [{"type": "good", "text": "ok"}], "suggestions": []}`
	_, err := ValidateResponse([]byte(raw))
	if err == nil {
		t.Fatal("expected error for feedback item missing icon")
	}
}
