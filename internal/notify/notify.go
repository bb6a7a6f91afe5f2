// Package notify delivers submission reports to the department admin.
// Delivery is best-effort: the submission pipeline logs failures and moves
// on, it never blocks a student on the admin's inbox.
package notify

import (
	"bytes"
	"context"
	"fmt"
	"text/template"
	"time"

	"github.com/azizk/campulse/internal/analysis"
	"github.com/azizk/campulse/internal/survey"
)

// Notifier delivers one submission report to the admin.
type Notifier interface {
	// SendAnalysisToAdmin sends the submission and, when available, its
	// analysis. report may be nil when analysis was skipped or failed.
	SendAnalysisToAdmin(ctx context.Context, data *survey.FeedbackData, report *analysis.Analysis) error
}

var reportTemplate = template.Must(template.New("report").Parse(`Nouvelle soumission — {{.Subject}}
Reçue le {{.When}}

Réponses:
{{range .Answers}}- {{.Label}}: {{.Value}}
{{end}}{{if .Comments}}
Commentaires: {{.Comments}}
{{end}}{{if .Report}}
Analyse:
  Sentiment: {{.Report.Sentiment}}
  Résumé: {{.Report.Summary}}
{{- if .Report.Themes}}
  Thèmes: {{range $i, $t := .Report.Themes}}{{if $i}}, {{end}}{{$t}}{{end}}
{{- end}}
{{else}}
Analyse indisponible pour cette soumission.
{{end}}`))

type reportInput struct {
	Subject  string
	When     string
	Answers  []reportAnswer
	Comments string
	Report   *analysis.Analysis
}

type reportAnswer struct {
	Label string
	Value string
}

// RenderReport produces the plain-text admin report shared by every
// notifier implementation.
func RenderReport(data *survey.FeedbackData, report *analysis.Analysis) (subject, body string, err error) {
	in := reportInput{
		Subject:  data.Subject,
		When:     time.Now().Format("02/01/2006 15:04"),
		Comments: data.Comments,
		Report:   report,
	}
	if data.IsEnvironment() {
		in.Subject = "Environnement d'études"
	}
	for _, q := range survey.QuestionsFor(data.Subject) {
		v, ok := data.Answer(q.ID)
		if !ok {
			continue
		}
		in.Answers = append(in.Answers, reportAnswer{Label: q.Label, Value: v})
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, in); err != nil {
		return "", "", fmt.Errorf("render report: %w", err)
	}
	return "Nouvelle soumission — " + in.Subject, buf.String(), nil
}
