package chatbot

import (
	"context"

	"mindmeter/config"

	"github.com/sashabaranov/go-openai"
)

// Provider 对话补全
type Provider interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

type openAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider BaseURL 为空时使用官方地址
func NewOpenAIProvider(cfg config.OpenAIConfig) Provider {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &openAIProvider{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}
}

// Complete 没有候选回复时返回空串
func (p *openAIProvider) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
