// Package submitting runs the submission pipeline while showing a spinner.
// Keys are ignored until the pipeline settles, then the screen replaces
// itself with the thank-you screen.
package submitting

import (
	"context"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/azizk/campulse/internal/router"
	"github.com/azizk/campulse/internal/screen"
	"github.com/azizk/campulse/internal/screens/thanks"
	"github.com/azizk/campulse/internal/submit"
	"github.com/azizk/campulse/internal/survey"
	"github.com/azizk/campulse/internal/ui/theme"
)

const pipelineTimeout = 45 * time.Second

type doneMsg struct {
	outcome submit.Outcome
}

// Submitter runs the submission pipeline. *submit.Pipeline implements it.
type Submitter interface {
	Submit(ctx context.Context, studentID uint, data *survey.FeedbackData) submit.Outcome
}

// SubmittingScreen drives one pipeline run.
type SubmittingScreen struct {
	pipeline  Submitter
	studentID uint
	data      *survey.FeedbackData
	spin      spinner.Model
}

var _ screen.Screen = (*SubmittingScreen)(nil)

// New creates a SubmittingScreen for one completed form.
func New(pipeline Submitter, studentID uint, data *survey.FeedbackData) *SubmittingScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return &SubmittingScreen{
		pipeline:  pipeline,
		studentID: studentID,
		data:      data,
		spin:      sp,
	}
}

func (s *SubmittingScreen) Title() string {
	return "Envoi"
}

func (s *SubmittingScreen) Step() survey.Step {
	return survey.StepSubmitting
}

func (s *SubmittingScreen) Init() tea.Cmd {
	run := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), pipelineTimeout)
		defer cancel()
		return doneMsg{outcome: s.pipeline.Submit(ctx, s.studentID, s.data)}
	}
	return tea.Batch(run, s.spin.Tick)
}

func (s *SubmittingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		return s, func() tea.Msg {
			return router.NavigateMsg{Event: survey.EventSubmitted, Screen: thanks.New(msg.outcome)}
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd
	}
	// Keys are swallowed while the pipeline runs.
	return s, nil
}

func (s *SubmittingScreen) View(width, height int) string {
	var sections []string
	sections = append(sections, s.spin.View()+"  Envoi de vos réponses...")
	sections = append(sections, "")
	sections = append(sections, theme.Hint.Render("un instant"))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
