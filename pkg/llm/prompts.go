package llm

import (
	"fmt"
	"strings"
)

const summarySystemPrompt = `You are an events editor. You summarize event descriptions for a public events listing.

Rules:
- Keep it concise, one or two sentences
- Keep names, places and dates that appear in the description
- Do not add facts that are not in the description

Output as JSON only, no other text:
{
  "summary": "concise summary of the event"
}`

const categoriesSystemPromptTemplate = `You are an event categorization expert. Given an event description, suggest a list of relevant categories. Possible categories include: %s.

Output as JSON only, no other text:
{
  "categories": ["category 1", "category 2"]
}`

func summaryUserPrompt(description string) string {
	return fmt.Sprintf("Summarize the following event description in a concise manner:\n\n%s", description)
}

func categoriesSystemPrompt(categories []string) string {
	return fmt.Sprintf(categoriesSystemPromptTemplate, strings.Join(categories, ", "))
}

func categoriesUserPrompt(description string) string {
	return fmt.Sprintf("Event Description: %s\n\nCategories:", description)
}
