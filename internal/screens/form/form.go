// Package form renders one questionnaire: the five pedagogy questions for a
// course, or the five environment questions for the global audit. Every
// edit is written to the draft store; submission is only offered once all
// five answers are in.
package form

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/azizk/campulse/internal/draft"
	"github.com/azizk/campulse/internal/router"
	"github.com/azizk/campulse/internal/screen"
	"github.com/azizk/campulse/internal/screens/submitting"
	"github.com/azizk/campulse/internal/survey"
	"github.com/azizk/campulse/internal/ui/components"
	"github.com/azizk/campulse/internal/ui/layout"
	"github.com/azizk/campulse/internal/ui/theme"
)

// Deps carries what a form needs beyond its subject. The hub and the
// scanner both open forms, so they share this.
type Deps struct {
	Pipeline  submitting.Submitter
	Drafts    *draft.Store
	StudentID uint
}

type row struct {
	question survey.Question
	scale    components.Scale
	choice   components.Choice
}

// FormScreen is one questionnaire.
type FormScreen struct {
	deps       Deps
	data       *survey.FeedbackData
	rows       []row
	comments   components.TextInput
	focus      int // rows, then comments
	incomplete bool
}

var _ screen.Screen = (*FormScreen)(nil)

// New creates a form for subject, resuming the local draft when one exists
// for the same subject.
func New(deps Deps, subject string) *FormScreen {
	data := survey.NewFeedbackData(subject)
	if deps.Drafts != nil {
		if saved, err := deps.Drafts.LoadFor(subject); err == nil && saved != nil {
			data = saved
		}
	}

	questions := survey.QuestionsFor(subject)
	rows := make([]row, len(questions))
	for i, q := range questions {
		r := row{question: q}
		switch q.Kind {
		case survey.KindScale:
			r.scale = components.NewScale(q.Min, q.Max)
		case survey.KindChoice:
			r.choice = components.NewChoice(q.Options)
		}
		if v, ok := data.Answer(q.ID); ok {
			switch q.Kind {
			case survey.KindScale:
				var n int
				fmt.Sscanf(v, "%d", &n)
				r.scale.SetValue(n)
			case survey.KindChoice:
				r.choice.SetValue(v)
			}
		}
		rows[i] = r
	}

	comments := components.NewTextInput("commentaires libres (optionnel)", 500)
	comments.SetValue(data.Comments)

	return &FormScreen{
		deps:     deps,
		data:     data,
		rows:     rows,
		comments: comments,
	}
}

func (f *FormScreen) Step() survey.Step {
	if f.data.IsEnvironment() {
		return survey.StepFormEnv
	}
	return survey.StepFormPedagogy
}

func (f *FormScreen) Title() string {
	if f.data.IsEnvironment() {
		return "Audit environnement"
	}
	return f.data.Subject
}

func (f *FormScreen) Init() tea.Cmd {
	return nil
}

func (f *FormScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Question suivante"},
		{Key: "Ctrl+S", Description: "Envoyer"},
		{Key: "Esc", Description: "Retour"},
	}
}

func (f *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		var cmd tea.Cmd
		if f.focus == len(f.rows) {
			f.comments, cmd = f.comments.Update(msg)
		}
		return f, cmd
	}

	switch kmsg.String() {
	case "tab", "shift+tab":
		if kmsg.String() == "tab" {
			f.focus++
			if f.focus > len(f.rows) {
				f.focus = 0
			}
		} else {
			f.focus--
			if f.focus < 0 {
				f.focus = len(f.rows)
			}
		}
		f.syncCommentsFocus()
		return f, nil

	case "ctrl+s":
		return f, f.trySubmit()
	}

	if f.focus < len(f.rows) {
		// Up/down also moves between questions when no text field is active.
		switch kmsg.String() {
		case "down":
			f.focus++
			f.syncCommentsFocus()
			return f, nil
		case "up":
			if f.focus > 0 {
				f.focus--
			}
			return f, nil
		}

		r := &f.rows[f.focus]
		var changed bool
		switch r.question.Kind {
		case survey.KindScale:
			r.scale, changed = r.scale.Update(msg)
			if changed {
				f.data.SetScale(r.question.ID, r.scale.Value)
			}
		case survey.KindChoice:
			r.choice, changed = r.choice.Update(msg)
			if changed {
				f.data.SetChoice(r.question.ID, r.choice.Value)
			}
		}
		if changed {
			if f.data.Complete() {
				f.incomplete = false
			}
			f.saveDraft()
		}
		return f, nil
	}

	// Comments field has focus.
	var cmd tea.Cmd
	f.comments, cmd = f.comments.Update(msg)
	if f.data.Comments != f.comments.Value() {
		f.data.Comments = f.comments.Value()
		f.saveDraft()
	}
	return f, cmd
}

func (f *FormScreen) syncCommentsFocus() {
	if f.focus == len(f.rows) {
		f.comments.Focus()
	} else {
		f.comments.Blur()
	}
}

func (f *FormScreen) saveDraft() {
	if f.deps.Drafts != nil {
		// Draft errors never interrupt the student.
		_ = f.deps.Drafts.Save(f.data)
	}
}

func (f *FormScreen) trySubmit() tea.Cmd {
	if !f.data.Complete() {
		f.incomplete = true
		return nil
	}
	next := submitting.New(f.deps.Pipeline, f.deps.StudentID, f.data)
	return func() tea.Msg {
		return router.NavigateMsg{Event: survey.EventSubmitAccepted, Screen: next}
	}
}

func (f *FormScreen) View(width, height int) string {
	var sections []string

	bar := components.NewProgressBar(
		"Progression",
		float64(f.data.CompletionPercent())/100,
		true,
		min(width-8, 60),
	)
	sections = append(sections, bar.View(), "")

	for i, r := range f.rows {
		focused := i == f.focus
		label := r.question.Label
		if focused {
			label = "▸ " + label
		} else {
			label = "  " + label
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if focused {
			style = style.Bold(true)
		}
		sections = append(sections, style.Render(label))

		var answer string
		switch r.question.Kind {
		case survey.KindScale:
			answer = r.scale.View(focused)
		case survey.KindChoice:
			answer = r.choice.View(focused)
		}
		sections = append(sections, "    "+answer, "")
	}

	commentsLabel := "  Commentaires"
	if f.focus == len(f.rows) {
		commentsLabel = "▸ Commentaires"
	}
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Text).Render(commentsLabel))
	sections = append(sections, "    "+f.comments.View())

	if f.incomplete {
		sections = append(sections, "")
		sections = append(sections, theme.Invalid.Render(
			fmt.Sprintf("  Répondez aux %d questions avant d'envoyer (%d/%d).",
				survey.AnswersPerForm, f.data.AnsweredCount(), survey.AnswersPerForm)))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.NewStyle().Padding(1, 4).Width(width).Render(content)
}
