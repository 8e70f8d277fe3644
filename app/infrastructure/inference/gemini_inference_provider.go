package inference

import (
	"context"
	"fmt"
	"sync"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
	"edukasi.ai/edu-api-gateway/app/utils/httpclients/gemini"
	"edukasi.ai/edu-api-gateway/app/utils/logger"
	"edukasi.ai/edu-api-gateway/config/environment_variables"
)

const GeminiDefaultModel = "gemini-2.0-flash"

// GeminiProvider answers completions through the Gemini OpenAI-compatible
// endpoint. Several API keys can be configured; on a failed call the provider
// moves to the next key so one exhausted quota does not take the vendor down.
type GeminiProvider struct {
	client *gemini.Client
	keys   []string
	mu     sync.Mutex
	next   int
}

func NewGeminiProvider(client *gemini.Client) *GeminiProvider {
	env := environment_variables.EnvironmentVariables
	keys := make([]string, 0, 3)
	for _, k := range []string{env.GEMINI_API_KEY, env.GEMINI_API_KEY_2, env.GEMINI_API_KEY_3} {
		if k != "" {
			keys = append(keys, k)
		}
	}
	return &GeminiProvider{
		client: client,
		keys:   keys,
	}
}

func (p *GeminiProvider) Name() string {
	return "gemini"
}

func (p *GeminiProvider) CreateCompletion(ctx context.Context, request openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error) {
	if len(p.keys) == 0 {
		return nil, fmt.Errorf("gemini: no API keys configured")
	}
	if request.Model == "" {
		request.Model = GeminiDefaultModel
	}

	var lastErr error
	for attempt := 0; attempt < len(p.keys); attempt++ {
		resp, err := p.client.CreateChatCompletion(ctx, p.currentKey(), request)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		logger.GetLogger().WithFields(logrus.Fields{
			"provider": p.Name(),
			"attempt":  attempt + 1,
		}).Warnf("completion failed, rotating API key: %v", err)
		p.rotate()
	}
	return nil, lastErr
}

func (p *GeminiProvider) currentKey() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.keys[p.next]
}

func (p *GeminiProvider) rotate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.next = (p.next + 1) % len(p.keys)
}
