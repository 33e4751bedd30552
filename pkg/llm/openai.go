package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type OpenAIClient struct {
	client           *openai.Client
	model            openai.ChatModel
	categoriesPrompt string
}

func NewOpenAIClient(apiKey, modelName string, categories []string, opts ...option.RequestOption) *OpenAIClient {
	if modelName == "" {
		modelName = string(openai.ChatModelGPT4oMini)
	}

	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	client := openai.NewClient(opts...)

	return &OpenAIClient{
		client:           &client,
		model:            openai.ChatModel(modelName),
		categoriesPrompt: categoriesSystemPrompt(categories),
	}
}

func (c *OpenAIClient) Name() string {
	return ProviderOpenAI
}

func (c *OpenAIClient) Close() error {
	return nil
}

func (c *OpenAIClient) Summarize(ctx context.Context, description string) (string, error) {
	content, err := c.complete(ctx, summarySystemPrompt, summaryUserPrompt(description))
	if err != nil {
		return "", err
	}
	return parseSummary(content)
}

func (c *OpenAIClient) SuggestCategories(ctx context.Context, description string) ([]string, error) {
	content, err := c.complete(ctx, c.categoriesPrompt, categoriesUserPrompt(description))
	if err != nil {
		return nil, err
	}
	return parseCategories(content)
}

func (c *OpenAIClient) complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})

	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no response from openai", ErrSchemaViolation)
	}

	return resp.Choices[0].Message.Content, nil
}
