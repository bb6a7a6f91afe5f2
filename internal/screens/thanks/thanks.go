// Package thanks closes the wizard loop: it acknowledges the submission and
// returns to the hub. The wording follows the pipeline outcome, a student
// whose answers could not be stored is told their draft is safe instead of
// being shown an error.
package thanks

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/azizk/campulse/internal/router"
	"github.com/azizk/campulse/internal/screen"
	"github.com/azizk/campulse/internal/submit"
	"github.com/azizk/campulse/internal/survey"
	"github.com/azizk/campulse/internal/ui/layout"
	"github.com/azizk/campulse/internal/ui/theme"
)

// ThanksScreen acknowledges one submission.
type ThanksScreen struct {
	outcome submit.Outcome
}

var _ screen.Screen = (*ThanksScreen)(nil)

// New creates a ThanksScreen for the given pipeline outcome.
func New(outcome submit.Outcome) *ThanksScreen {
	return &ThanksScreen{outcome: outcome}
}

func (t *ThanksScreen) Title() string {
	return "Merci"
}

func (t *ThanksScreen) Step() survey.Step {
	return survey.StepThanks
}

func (t *ThanksScreen) Init() tea.Cmd {
	return nil
}

func (t *ThanksScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyPressMsg); ok {
		return t, func() tea.Msg {
			return router.NavigateMsg{Event: survey.EventAcknowledge}
		}
	}
	return t, nil
}

func (t *ThanksScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Entrée", Description: "Retour à l'accueil"},
	}
}

func (t *ThanksScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Success).
		Bold(true).
		Render("✓  Merci pour votre participation !")

	var detail string
	switch t.outcome.Status {
	case submit.StatusConfirmed:
		detail = "Vos réponses ont bien été enregistrées."
	default:
		detail = "Vos réponses sont conservées en brouillon et seront\nenregistrées lors d'une prochaine tentative."
	}

	sections = append(sections, title, "")
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Text).Render(detail))
	sections = append(sections, "")
	sections = append(sections, theme.Hint.Render("appuyez sur une touche pour revenir à l'accueil"))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
