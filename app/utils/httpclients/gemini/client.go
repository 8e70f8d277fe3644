package gemini

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"edukasi.ai/edu-api-gateway/app/utils/httpclients"
	"edukasi.ai/edu-api-gateway/config/environment_variables"
	"resty.dev/v3"
)

var RestyClient *resty.Client

func Init() {
	RestyClient = httpclients.NewClient("GeminiClient")
}

type Client struct {
	baseURL string
}

func NewClient() *Client {
	base := environment_variables.EnvironmentVariables.GEMINI_BASE_URL
	if base == "" {
		base = "https://generativelanguage.googleapis.com/v1beta/openai"
	}
	return &Client{baseURL: base}
}

func (c *Client) CreateChatCompletion(ctx context.Context, apiKey string, request openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error) {
	var resp openai.ChatCompletionResponse
	res, err := RestyClient.R().
		SetContext(ctx).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", apiKey)).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&resp).
		Post(c.baseURL + "/chat/completions")
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("gemini: unexpected status %s", res.Status())
	}
	return &resp, nil
}
