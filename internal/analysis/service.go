// Package analysis turns a completed submission into a short structured
// report for the department admin. It is strictly best-effort: the caller
// treats any error as "no analysis" and carries on.
package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/azizk/campulse/internal/llm"
	"github.com/azizk/campulse/internal/survey"
)

// Analysis is the structured report produced for one submission.
type Analysis struct {
	Summary   string   `json:"summary"`
	Sentiment string   `json:"sentiment"`
	Themes    []string `json:"themes"`
}

// ServiceConfig holds configuration for the analysis service.
type ServiceConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultServiceConfig returns sensible defaults.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		MaxTokens:   512,
		Temperature: 0.3,
	}
}

// Service performs LLM-based feedback analysis.
type Service struct {
	provider llm.Provider
	cfg      ServiceConfig
}

// NewService creates an analysis service backed by the given provider.
func NewService(provider llm.Provider, cfg ServiceConfig) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Analyze sends one submission to the model and parses the report.
func (s *Service) Analyze(ctx context.Context, data *survey.FeedbackData) (*Analysis, error) {
	ctx = llm.WithPurpose(ctx, "feedback-analysis")

	userMsg, err := buildAnalysisMessage(data)
	if err != nil {
		return nil, fmt.Errorf("build analysis prompt: %w", err)
	}

	req := llm.Request{
		System: analysisSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      FeedbackSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("feedback analysis failed: %w", err)
	}

	var out Analysis
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("failed to parse analysis response: %w", err)
	}
	if len(out.Themes) > 3 {
		out.Themes = out.Themes[:3]
	}
	return &out, nil
}

const analysisSystemPrompt = `You are an assistant for a university department collecting student satisfaction surveys. You receive one submission: rated questions with their answers, plus optional free-text comments, all in French.

Instructions:
- Summarize the submission in two or three French sentences.
- Judge the overall sentiment: "positive", "mixed" or "negative".
- List at most three short theme labels the department should look at.
- Base everything strictly on the provided answers. Do not invent details.`

type promptInput struct {
	Subject string
	Answers []promptAnswer
	Comment string
}

type promptAnswer struct {
	Label string
	Value string
}

var analysisUserTemplate = template.Must(template.New("analysis").Parse(`Subject: {{.Subject}}

Answers:
{{range .Answers}}- {{.Label}}: {{.Value}}
{{end}}{{if .Comment}}
Comments: {{.Comment}}
{{end}}`))

func buildAnalysisMessage(data *survey.FeedbackData) (string, error) {
	in := promptInput{
		Subject: data.Subject,
		Comment: data.Comments,
	}
	if data.IsEnvironment() {
		in.Subject = "Environnement d'études (audit global)"
	}
	for _, q := range survey.QuestionsFor(data.Subject) {
		v, ok := data.Answer(q.ID)
		if !ok {
			continue
		}
		in.Answers = append(in.Answers, promptAnswer{Label: q.Label, Value: v})
	}

	var buf bytes.Buffer
	if err := analysisUserTemplate.Execute(&buf, in); err != nil {
		return "", err
	}
	return buf.String(), nil
}
