// Package mentor adapts the conversation to the external LLM service.
// The adapter's contract is a string result, never an error: any transport
// or service failure becomes one fixed fallback message.
package mentor

import (
	"context"

	"github.com/thanvish21/systemx/internal/conversation"
	"github.com/thanvish21/systemx/internal/llm"
	"github.com/thanvish21/systemx/internal/profile"
)

// Fallback is returned verbatim whenever the mentor service fails.
const Fallback = "API Error. System in recovery mode. Do not panic, stay on track."

// Sampling configuration biased toward deterministic, protocol-compliant
// output.
const (
	temperature = 0.3
	topP        = 0.9
	maxTokens   = 1024
)

// Adapter builds mentor requests and calls the configured LLM provider.
type Adapter struct {
	provider llm.Provider
}

// New creates an Adapter. A nil provider is allowed: every call then
// returns the fallback message, keeping the app usable offline.
func New(provider llm.Provider) *Adapter {
	return &Adapter{provider: provider}
}

// Ready reports whether a provider is configured.
func (a *Adapter) Ready() bool {
	return a.provider != nil
}

// Respond sends the prior transcript plus the augmented message to the
// mentor service and returns the response text verbatim. It never fails:
// errors collapse into Fallback.
func (a *Adapter) Respond(ctx context.Context, p profile.Profile, history []conversation.Turn, message string) string {
	if a.provider == nil {
		return Fallback
	}

	messages := make([]llm.Message, 0, len(history)+1)
	for _, turn := range history {
		role := llm.RoleUser
		if turn.Role == conversation.RoleAssistant {
			role = llm.RoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: turn.Text})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: message})

	req := llm.Request{
		System:      SystemInstruction(p),
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		TopP:        topP,
	}

	resp, err := a.provider.Generate(llm.WithPurpose(ctx, "mentor"), req)
	if err != nil || resp == nil || resp.Text == "" {
		return Fallback
	}
	return resp.Text
}
