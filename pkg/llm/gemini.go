package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-2.0-flash"

// GeminiClient relies on Gemini's response schema support, so the returned
// JSON is already constrained server-side. It still goes through the same
// parse helpers as the other providers.
type GeminiClient struct {
	client          *genai.Client
	summaryModel    *genai.GenerativeModel
	categoriesModel *genai.GenerativeModel
}

func NewGeminiClient(ctx context.Context, apiKey, modelName string, categories []string, opts ...option.ClientOption) (*GeminiClient, error) {
	if modelName == "" {
		modelName = defaultGeminiModel
	}

	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gemini client error: %w", err)
	}

	summaryModel := client.GenerativeModel(modelName)
	summaryModel.SystemInstruction = genai.NewUserContent(genai.Text(summarySystemPrompt))
	summaryModel.ResponseMIMEType = "application/json"
	summaryModel.ResponseSchema = summarySchema()

	categoriesModel := client.GenerativeModel(modelName)
	categoriesModel.SystemInstruction = genai.NewUserContent(genai.Text(categoriesSystemPrompt(categories)))
	categoriesModel.ResponseMIMEType = "application/json"
	categoriesModel.ResponseSchema = categoriesSchema()

	return &GeminiClient{
		client:          client,
		summaryModel:    summaryModel,
		categoriesModel: categoriesModel,
	}, nil
}

func (c *GeminiClient) Name() string {
	return ProviderGemini
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}

func (c *GeminiClient) Summarize(ctx context.Context, description string) (string, error) {
	content, err := c.generate(ctx, c.summaryModel, summaryUserPrompt(description))
	if err != nil {
		return "", err
	}
	return parseSummary(content)
}

func (c *GeminiClient) SuggestCategories(ctx context.Context, description string) ([]string, error) {
	content, err := c.generate(ctx, c.categoriesModel, categoriesUserPrompt(description))
	if err != nil {
		return nil, err
	}
	return parseCategories(content)
}

func (c *GeminiClient) generate(ctx context.Context, model *genai.GenerativeModel, prompt string) (string, error) {
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	text := candidateText(resp)
	if text == "" {
		return "", fmt.Errorf("%w: no response from gemini", ErrSchemaViolation)
	}

	return text, nil
}

func candidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	content := resp.Candidates[0].Content
	if content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}

func summarySchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary": {
				Type:        genai.TypeString,
				Description: "A concise summary of the event.",
			},
		},
		Required: []string{"summary"},
	}
}

func categoriesSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"categories": {
				Type:        genai.TypeArray,
				Description: "An array of suggested categories for the event.",
				Items:       &genai.Schema{Type: genai.TypeString},
			},
		},
		Required: []string{"categories"},
	}
}
