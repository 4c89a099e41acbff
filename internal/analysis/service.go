package analysis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/formcheck/internal/llm"
	"github.com/abhisek/formcheck/internal/pose"
)

// Config tunes the delegated analysis call.
type Config struct {
	// MaxTokens bounds the completion length.
	MaxTokens int

	// Temperature is passed through to the provider. A tuning knob, not
	// a correctness requirement.
	Temperature float64
}

// DefaultConfig returns the standard analysis configuration.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}

// Service orchestrates a single assessment: validate, delegate to the
// completion provider when one is configured, fall back to the local
// generator otherwise. It holds no mutable state and is safe for
// concurrent use.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an analysis service. A nil provider selects the
// fallback path for every request.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Configured reports whether a completion provider is available.
func (s *Service) Configured() bool {
	return s.provider != nil
}

// ModelID returns the configured provider's model identifier, or "" when
// running on the fallback path.
func (s *Service) ModelID() string {
	if s.provider == nil {
		return ""
	}
	return s.provider.ModelID()
}

// Analyze produces a movement assessment for the request. An empty pose
// list is rejected with ErrEmptyPoses. When a provider is configured, a
// delegated-path failure is returned as-is — it is never masked by the
// fallback generator, so a misconfigured model stays visible.
func (s *Service) Analyze(ctx context.Context, req *pose.AnalysisRequest) (*pose.AnalysisResponse, error) {
	if len(req.Poses) == 0 {
		return nil, ErrEmptyPoses
	}

	if s.provider == nil {
		out := fallbackAssessment()
		if err := validateOutgoing(out); err != nil {
			return nil, err
		}
		return out, nil
	}

	return s.analyzeWithModel(ctx, req.Poses)
}

func (s *Service) analyzeWithModel(ctx context.Context, poses []pose.Pose) (*pose.AnalysisResponse, error) {
	ctx = llm.WithPurpose(ctx, "analysis")

	userMsg, err := buildAnalysisUserMessage(poses)
	if err != nil {
		return nil, err
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: analysisSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("movement analysis: %w", err)
	}

	return parseAssessment(resp.Content)
}

// validateOutgoing applies the response schema to a locally constructed
// assessment, so both paths leave the orchestrator through the same check.
func validateOutgoing(resp *pose.AnalysisResponse) error {
	raw, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("serialize assessment: %w", err)
	}
	if _, err := pose.ValidateResponse(raw); err != nil {
		return err
	}
	return nil
}
