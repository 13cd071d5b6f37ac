// File: internal/services/ai/openai_provider.go
package ai

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"foodmate-server/internal/domain"
)

const systemPrompt = "You are FoodMate, a friendly food assistant. " +
	"Help the user find restaurants, deals and desserts nearby. Keep answers short."

// OpenAIProvider answers through a real LLM behind the same contract as
// RuleProvider. Structured recommendations are not available in this mode.
type OpenAIProvider struct {
	config *Config
	client *openai.Client
}

func NewOpenAIProvider(config *Config) *OpenAIProvider {
	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}
	return &OpenAIProvider{
		config: config,
		client: openai.NewClientWithConfig(clientConfig),
	}
}

func (p *OpenAIProvider) Reply(ctx context.Context, message string) (*Reply, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
		Temperature: p.config.Temperature,
	})
	if err != nil {
		return nil, NewProviderError("completion", "failed to create completion", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, &Error{
			Type:      ErrTypeProvider,
			Operation: "completion",
			Message:   "empty completion response",
		}
	}

	return &Reply{
		Content:         resp.Choices[0].Message.Content,
		Recommendations: []domain.Recommendation{},
	}, nil
}
