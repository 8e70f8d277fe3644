package inference

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
	inference "edukasi.ai/edu-api-gateway/app/domain/inference"
	"edukasi.ai/edu-api-gateway/app/utils/logger"
)

// MultiProviderInference tries each configured vendor in order and answers
// from the first that succeeds. Gemini is preferred; OpenAI is the fallback.
type MultiProviderInference struct {
	providers []inference.Provider
}

func NewMultiProviderInference(geminiProvider *GeminiProvider, openaiProvider *OpenAIProvider) *MultiProviderInference {
	return &MultiProviderInference{
		providers: []inference.Provider{geminiProvider, openaiProvider},
	}
}

func (m *MultiProviderInference) Name() string {
	return "multi"
}

func (m *MultiProviderInference) CreateCompletion(ctx context.Context, request openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error) {
	var lastErr error
	for _, provider := range m.providers {
		resp, err := provider.CreateCompletion(ctx, request)
		if err == nil {
			logger.GetLogger().WithFields(logrus.Fields{
				"provider": provider.Name(),
			}).Info("multi-provider inference: CreateCompletion")
			return resp, nil
		}
		lastErr = err
		logger.GetLogger().WithFields(logrus.Fields{
			"provider": provider.Name(),
		}).Warnf("provider failed, trying next: %v", err)
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("inference: no providers configured")
	}
	return nil, lastErr
}
