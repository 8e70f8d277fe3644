package inference

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// Provider abstracts an OpenAI-compatible chat completion backend. Provider
// failures propagate unchanged; callers decide whether and how to retry.
type Provider interface {
	CreateCompletion(ctx context.Context, request openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error)
	Name() string
}
