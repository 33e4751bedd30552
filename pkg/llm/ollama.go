package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	olla "github.com/ollama/ollama/api"
)

const (
	defaultOllamaURL   = "http://localhost:11434"
	defaultOllamaModel = "llama3.1"
)

type OllamaClient struct {
	client           *olla.Client
	model            string
	categoriesPrompt string
}

func NewOllamaClient(baseURL, modelName string, categories []string) (*OllamaClient, error) {
	if baseURL == "" {
		baseURL = defaultOllamaURL
	}

	if modelName == "" {
		modelName = defaultOllamaModel
	}

	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama base URL: %w", err)
	}

	hc := &http.Client{
		Timeout: 120 * time.Second,
	}

	return &OllamaClient{
		client:           olla.NewClient(parsedURL, hc),
		model:            modelName,
		categoriesPrompt: categoriesSystemPrompt(categories),
	}, nil
}

func (c *OllamaClient) Name() string {
	return ProviderOllama
}

func (c *OllamaClient) Close() error {
	return nil
}

func (c *OllamaClient) Summarize(ctx context.Context, description string) (string, error) {
	content, err := c.generate(ctx, summarySystemPrompt, summaryUserPrompt(description))
	if err != nil {
		return "", err
	}
	return parseSummary(content)
}

func (c *OllamaClient) SuggestCategories(ctx context.Context, description string) ([]string, error) {
	content, err := c.generate(ctx, c.categoriesPrompt, categoriesUserPrompt(description))
	if err != nil {
		return nil, err
	}
	return parseCategories(content)
}

func (c *OllamaClient) generate(ctx context.Context, systemPrompt, prompt string) (string, error) {
	stream := false

	var result *olla.GenerateResponse
	err := c.client.Generate(ctx, &olla.GenerateRequest{
		Model:  c.model,
		System: systemPrompt,
		Prompt: prompt,
		Format: json.RawMessage(`"json"`),
		Stream: &stream,
	}, func(resp olla.GenerateResponse) error {
		result = &resp
		return nil
	})

	if err != nil {
		return "", fmt.Errorf("ollama API error: %w", err)
	}

	if result == nil || result.Response == "" {
		return "", fmt.Errorf("%w: no response from ollama", ErrSchemaViolation)
	}

	return result.Response, nil
}
