package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type AnthropicClient struct {
	client           *anthropic.Client
	model            anthropic.Model
	categoriesPrompt string
}

func NewAnthropicClient(apiKey, modelName string, categories []string, opts ...option.RequestOption) *AnthropicClient {
	model := anthropic.ModelClaudeHaiku4_5
	if modelName != "" {
		model = anthropic.Model(modelName)
	}

	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	client := anthropic.NewClient(opts...)

	return &AnthropicClient{
		client:           &client,
		model:            model,
		categoriesPrompt: categoriesSystemPrompt(categories),
	}
}

func (c *AnthropicClient) Name() string {
	return ProviderAnthropic
}

func (c *AnthropicClient) Close() error {
	return nil
}

func (c *AnthropicClient) Summarize(ctx context.Context, description string) (string, error) {
	content, err := c.complete(ctx, summarySystemPrompt, summaryUserPrompt(description))
	if err != nil {
		return "", err
	}
	return parseSummary(content)
}

func (c *AnthropicClient) SuggestCategories(ctx context.Context, description string) ([]string, error) {
	content, err := c.complete(ctx, c.categoriesPrompt, categoriesUserPrompt(description))
	if err != nil {
		return nil, err
	}
	return parseCategories(content)
}

func (c *AnthropicClient) complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})

	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		sb.WriteString(block.Text)
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("%w: no response from anthropic", ErrSchemaViolation)
	}

	return sb.String(), nil
}
