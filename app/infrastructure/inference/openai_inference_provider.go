package inference

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"edukasi.ai/edu-api-gateway/config/environment_variables"
)

const OpenAIDefaultModel = "gpt-4o-mini"

type OpenAIProvider struct {
	client *openai.Client
}

func NewOpenAIProvider() *OpenAIProvider {
	var client *openai.Client
	if key := environment_variables.EnvironmentVariables.OPENAI_API_KEY; key != "" {
		client = openai.NewClient(key)
	}
	return &OpenAIProvider{
		client: client,
	}
}

func (p *OpenAIProvider) Name() string {
	return "openai"
}

func (p *OpenAIProvider) CreateCompletion(ctx context.Context, request openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error) {
	if p.client == nil {
		return nil, fmt.Errorf("openai: no API key configured")
	}
	if request.Model == "" {
		request.Model = OpenAIDefaultModel
	}
	resp, err := p.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
