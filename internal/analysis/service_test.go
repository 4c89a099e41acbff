package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/formcheck/internal/llm"
	"github.com/abhisek/formcheck/internal/pose"
)

func testRequest() *pose.AnalysisRequest {
	return &pose.AnalysisRequest{
		Poses:     testPoses(),
		Timestamp: 1700000000,
	}
}

func TestAnalyze_EmptyPoses(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig())
	_, err := svc.Analyze(context.Background(), &pose.AnalysisRequest{Timestamp: 1})
	if !errors.Is(err, ErrEmptyPoses) {
		t.Fatalf("expected ErrEmptyPoses, got: %v", err)
	}
}

func TestAnalyze_EmptyPosesWithoutProvider(t *testing.T) {
	svc := NewService(nil, DefaultConfig())
	_, err := svc.Analyze(context.Background(), &pose.AnalysisRequest{Timestamp: 1})
	if !errors.Is(err, ErrEmptyPoses) {
		t.Fatalf("expected ErrEmptyPoses, got: %v", err)
	}
}

func TestAnalyze_FallbackWithoutProvider(t *testing.T) {
	svc := NewService(nil, DefaultConfig())
	if svc.Configured() {
		t.Fatal("expected unconfigured service")
	}

	resp, err := svc.Analyze(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Overall < fallbackScoreMin || resp.Overall > fallbackScoreMax {
		t.Fatalf("fallback overall %d outside range", resp.Overall)
	}
	if len(resp.Feedback) == 0 || len(resp.Suggestions) == 0 {
		t.Fatal("expected non-empty feedback and suggestions")
	}
}

func TestAnalyze_Delegated(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: assessmentJSON})
	svc := NewService(mock, DefaultConfig())

	resp, err := svc.Analyze(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Overall != 85 {
		t.Fatalf("expected overall 85, got %d", resp.Overall)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.System != analysisSystemPrompt {
		t.Fatal("system prompt not passed through")
	}
	if req.Temperature != 0.7 {
		t.Fatalf("expected temperature 0.7, got %v", req.Temperature)
	}
}

func TestAnalyze_DelegatedFencedCompletion(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: "```json\n" + assessmentJSON + "\n```"})
	svc := NewService(mock, DefaultConfig())

	resp, err := svc.Analyze(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Accuracy != 88 {
		t.Fatalf("expected accuracy 88, got %d", resp.Accuracy)
	}
}

func TestAnalyze_MalformedCompletionFailsLoudly(t *testing.T) {
	// A configured-but-misbehaving model must fail, not silently degrade
	// to random fallback output.
	mock := llm.NewMockProvider(llm.MockResponse{Content: "not json"})
	svc := NewService(mock, DefaultConfig())

	resp, err := svc.Analyze(context.Background(), testRequest())
	if err == nil {
		t.Fatalf("expected error, got response: %+v", resp)
	}
	var malformed *MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedError, got: %T (%v)", err, err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected a single attempt, got %d", mock.CallCount())
	}
}

func TestAnalyze_SchemaMismatchFailsLoudly(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: `{"overall": 85}`})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Analyze(context.Background(), testRequest())
	var mismatch *SchemaMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected SchemaMismatchError, got: %T (%v)", err, err)
	}
}

func TestAnalyze_ProviderFailureFailsLoudly(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("connection refused")},
	})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Analyze(context.Background(), testRequest())
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T (%v)", err, err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected a single attempt, got %d", mock.CallCount())
	}
}
