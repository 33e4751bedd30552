package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/abhscancode/cluedin/internal/model"
	"github.com/abhscancode/cluedin/pkg/llm"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port        string
	FrontendURL string

	LLMProvider     string
	LLMModel        string
	OpenAIAPIKey    string
	AnthropicAPIKey string
	GeminiAPIKey    string
	OllamaURL       string

	DatabaseURL string
	RedisURL    string

	EnrichConcurrency int

	DataCategories   *model.CategorySet
	FilterCategories *model.CategorySet
}

type categoriesFile struct {
	DataCategories   []string `yaml:"data_categories"`
	FilterCategories []string `yaml:"filter_categories"`
}

// Load reads the configuration from the environment. Call godotenv.Load first
// when a .env file should be honoured.
func Load() (*Config, error) {
	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		FrontendURL:      os.Getenv("FRONTEND_URL"),
		LLMProvider:      getEnv("LLM_PROVIDER", llm.ProviderGemini),
		LLMModel:         os.Getenv("LLM_MODEL"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey:  os.Getenv("ANTHROPIC_API_KEY"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		OllamaURL:        os.Getenv("OLLAMA_URL"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisURL:         os.Getenv("REDIS_URL"),
		DataCategories:   model.DefaultDataCategories(),
		FilterCategories: model.DefaultFilterCategories(),
	}

	if v := os.Getenv("ENRICH_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid ENRICH_CONCURRENCY %q: %w", v, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("invalid ENRICH_CONCURRENCY %d: must not be negative", n)
		}
		cfg.EnrichConcurrency = n
	}

	if path := os.Getenv("CATEGORIES_FILE"); path != "" {
		if err := cfg.loadCategories(path); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// LLM returns the provider settings for the configured provider.
func (c *Config) LLM() llm.Config {
	cfg := llm.Config{
		Provider:   c.LLMProvider,
		Model:      c.LLMModel,
		Categories: c.FilterCategories.Strings(),
	}

	switch c.LLMProvider {
	case llm.ProviderOpenAI:
		cfg.APIKey = c.OpenAIAPIKey
	case llm.ProviderAnthropic:
		cfg.APIKey = c.AnthropicAPIKey
	case llm.ProviderGemini:
		cfg.APIKey = c.GeminiAPIKey
	case llm.ProviderOllama:
		cfg.BaseURL = c.OllamaURL
	}

	return cfg
}

func (c *Config) loadCategories(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading categories file: %w", err)
	}

	var file categoriesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("error parsing categories file: %w", err)
	}

	if len(file.DataCategories) > 0 {
		set, err := categorySet("data_categories", file.DataCategories)
		if err != nil {
			return err
		}
		c.DataCategories = set
	}

	if len(file.FilterCategories) > 0 {
		set, err := categorySet("filter_categories", file.FilterCategories)
		if err != nil {
			return err
		}
		c.FilterCategories = set
	}

	return nil
}

func categorySet(field string, names []string) (*model.CategorySet, error) {
	seen := make(map[string]struct{}, len(names))
	categories := make([]model.Category, 0, len(names))

	for _, name := range names {
		if name == "" {
			return nil, fmt.Errorf("%s: empty category name", field)
		}
		if name == model.AllCategories {
			return nil, fmt.Errorf("%s: %q is reserved", field, name)
		}
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("%s: duplicate category %q", field, name)
		}
		seen[name] = struct{}{}
		categories = append(categories, model.Category(name))
	}

	return model.NewCategorySet(categories...), nil
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
