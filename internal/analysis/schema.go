package analysis

import "github.com/azizk/campulse/internal/llm"

// FeedbackSchema defines the JSON schema for feedback analysis responses.
var FeedbackSchema = &llm.Schema{
	Name:        "feedback-analysis",
	Description: "Structured analysis of one student satisfaction submission",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "Two or three sentence summary of the submission, in French",
			},
			"sentiment": map[string]any{
				"type":        "string",
				"enum":        []any{"positive", "mixed", "negative"},
				"description": "Overall sentiment of the answers and comments",
			},
			"themes": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Up to three short theme labels worth the department's attention",
			},
		},
		"required":             []any{"summary", "sentiment", "themes"},
		"additionalProperties": false,
	},
}
