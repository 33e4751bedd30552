package llm

import (
	"context"
	"errors"
	"fmt"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
	ProviderOllama    = "ollama"
)

// ErrSchemaViolation is returned when the provider answers but the answer does
// not carry the expected structured field.
var ErrSchemaViolation = errors.New("response does not match schema")

type Summarizer interface {
	Summarize(ctx context.Context, description string) (string, error)
}

type CategorySuggester interface {
	SuggestCategories(ctx context.Context, description string) ([]string, error)
}

type Client interface {
	Summarizer
	CategorySuggester
	Name() string
	Close() error
}

type Config struct {
	Provider string
	Model    string
	APIKey   string
	// BaseURL is only used by ollama.
	BaseURL string
	// Categories are the candidate labels offered to SuggestCategories.
	Categories []string
}

func NewClient(ctx context.Context, cfg Config) (Client, error) {
	switch cfg.Provider {
	case ProviderOpenAI:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for provider %s", cfg.Provider)
		}
		return NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.Categories), nil
	case ProviderAnthropic:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is required for provider %s", cfg.Provider)
		}
		return NewAnthropicClient(cfg.APIKey, cfg.Model, cfg.Categories), nil
	case ProviderGemini:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for provider %s", cfg.Provider)
		}
		return NewGeminiClient(ctx, cfg.APIKey, cfg.Model, cfg.Categories)
	case ProviderOllama:
		return NewOllamaClient(cfg.BaseURL, cfg.Model, cfg.Categories)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
