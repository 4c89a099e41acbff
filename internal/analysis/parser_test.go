package analysis

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

const assessmentJSON = `{
	"overall": 85,
	"accuracy": 88,
	"coordination": 82,
	"stability": 85,
	"feedback": [
		{"type": "good", "text": "Solid base position", "icon": "✅"},
		{"type": "improve", "text": "Left arm lags the right", "icon": "⚡"}
	],
	"suggestions": ["Slow the descent", "Keep your gaze forward"]
}`

func TestParseAssessment_Plain(t *testing.T) {
	resp, err := parseAssessment(assessmentJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Overall != 85 || resp.Accuracy != 88 {
		t.Fatalf("unexpected scores: %+v", resp)
	}
}

func TestParseAssessment_FencedEqualsPlain(t *testing.T) {
	plain, err := parseAssessment(assessmentJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fenced, err := parseAssessment("```json\n" + assessmentJSON + "\n```")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(plain, fenced) {
		t.Fatalf("fenced parse differs from plain parse:\n%+v\n%+v", plain, fenced)
	}
}

func TestParseAssessment_Malformed(t *testing.T) {
	_, err := parseAssessment("not json")
	if err == nil {
		t.Fatal("expected error for non-JSON completion")
	}
	var malformed *MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedError, got: %T (%v)", err, err)
	}
	if malformed.Snippet != "not json" {
		t.Fatalf("expected snippet 'not json', got %q", malformed.Snippet)
	}
}

func TestParseAssessment_SnippetTruncated(t *testing.T) {
	long := "the model rambled on " + strings.Repeat("and on ", 50)
	_, err := parseAssessment(long)
	var malformed *MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedError, got: %T", err)
	}
	if len(malformed.Snippet) > snippetLimit+3 {
		t.Fatalf("snippet not truncated: %d bytes", len(malformed.Snippet))
	}
}

func TestParseAssessment_SchemaMismatch(t *testing.T) {
	// Valid JSON, wrong shape.
	_, err := parseAssessment(`{"overall": 85, "accuracy": 88}`)
	if err == nil {
		t.Fatal("expected error for schema-incompatible payload")
	}
	var mismatch *SchemaMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected SchemaMismatchError, got: %T (%v)", err, err)
	}
}

func TestParseAssessment_ValidJSONStringIsMismatch(t *testing.T) {
	// A quoted string is syntactically valid JSON but not an assessment.
	_, err := parseAssessment(`"not an assessment"`)
	var mismatch *SchemaMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected SchemaMismatchError, got: %T (%v)", err, err)
	}
}
