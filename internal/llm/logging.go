package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/thanvish21/systemx/internal/store"
)

// LoggingProvider is a decorator that records request metadata to the
// request log. Message content is never recorded: the conversation
// transcript stays in memory only.
type LoggingProvider struct {
	inner Provider
	log   store.RequestLog
}

// WithLogging wraps a Provider with request-log recording.
func WithLogging(p Provider, log store.RequestLog) Provider {
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	rec := store.RequestRecord{
		SessionID: SessionFrom(ctx),
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if resp != nil {
		rec.InputTokens = resp.Usage.InputTokens
		rec.OutputTokens = resp.Usage.OutputTokens
		rec.Model = resp.Model
	}
	if err != nil {
		rec.ErrorMessage = err.Error()
	}

	// Record the call but don't fail the request if logging fails.
	if logErr := l.log.Append(ctx, rec); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record LLM request: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
