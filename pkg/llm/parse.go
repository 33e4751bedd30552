package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}

func parseSummary(content string) (string, error) {
	content = cleanJSONResponse(content)

	var parsed struct {
		Summary *string `json:"summary"`
	}

	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return "", fmt.Errorf("%w: failed to parse response: %v, content: %s", ErrSchemaViolation, err, content)
	}

	if parsed.Summary == nil {
		return "", fmt.Errorf("%w: missing summary field, content: %s", ErrSchemaViolation, content)
	}

	return *parsed.Summary, nil
}

func parseCategories(content string) ([]string, error) {
	content = cleanJSONResponse(content)

	var parsed struct {
		Categories *[]string `json:"categories"`
	}

	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to parse response: %v, content: %s", ErrSchemaViolation, err, content)
	}

	if parsed.Categories == nil {
		return nil, fmt.Errorf("%w: missing categories field, content: %s", ErrSchemaViolation, content)
	}

	return *parsed.Categories, nil
}
