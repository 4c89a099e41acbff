package llm

import (
	"context"
	"log"
	"time"
)

// LoggingProvider is a decorator that logs every completion request:
// purpose, model, latency, token usage, and failure detail. The raw
// prompt and completion are not logged.
type LoggingProvider struct {
	inner Provider
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider) Provider {
	return &LoggingProvider{inner: p}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	latencyMs := time.Since(start).Milliseconds()

	if err != nil {
		log.Printf("llm: purpose=%s model=%s latency=%dms error=%v",
			purpose, l.inner.ModelID(), latencyMs, err)
		return nil, err
	}

	log.Printf("llm: purpose=%s model=%s latency=%dms tokens=%d/%d stop=%s",
		purpose, resp.Model, latencyMs,
		resp.Usage.InputTokens, resp.Usage.OutputTokens, resp.StopReason)

	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
