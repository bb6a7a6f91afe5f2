// Package hub is the campaign home: one entry per course, the environment
// audit, and the badge scanner. Entries already answered are checked off
// and disabled; submissions from other screens show up when the hub is
// restored.
package hub

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/azizk/campulse/internal/qr"
	"github.com/azizk/campulse/internal/router"
	"github.com/azizk/campulse/internal/screen"
	"github.com/azizk/campulse/internal/screens/form"
	"github.com/azizk/campulse/internal/screens/scanner"
	"github.com/azizk/campulse/internal/survey"
	"github.com/azizk/campulse/internal/ui/components"
	"github.com/azizk/campulse/internal/ui/theme"
)

// Completer reports which subjects the student already submitted.
// *store.Store implements it.
type Completer interface {
	CompletedSubjects(ctx context.Context, studentID uint) (map[string]bool, error)
}

// Deps carries the hub's collaborators.
type Deps struct {
	Completer  Completer
	StudentID  uint
	Subjects   []string
	CaptureDir string
	Form       form.Deps
}

// HubScreen is the campaign home screen.
type HubScreen struct {
	deps     Deps
	menu     components.Menu
	done     map[string]bool
	progress int
	loadErr  bool
}

var _ screen.Screen = (*HubScreen)(nil)

// New creates the hub and loads the student's completion state.
func New(deps Deps) *HubScreen {
	h := &HubScreen{deps: deps}
	h.reload()
	return h
}

func (h *HubScreen) reload() {
	done := map[string]bool{}
	h.loadErr = false
	if h.deps.Completer != nil && h.deps.StudentID != 0 {
		loaded, err := h.deps.Completer.CompletedSubjects(context.Background(), h.deps.StudentID)
		if err != nil {
			h.loadErr = true
		} else {
			done = loaded
		}
	}
	h.done = done

	completed := 0
	for _, subject := range h.deps.Subjects {
		if done[subject] {
			completed++
		}
	}
	h.progress = survey.GlobalProgress(completed, done[survey.EnvironmentSubject], len(h.deps.Subjects))

	h.menu = components.NewMenu(h.buildItems())
}

func (h *HubScreen) buildItems() []components.MenuItem {
	var items []components.MenuItem

	for _, subject := range h.deps.Subjects {
		subject := subject
		label := "  " + subject
		if h.done[subject] {
			label = "✓ " + subject
		}
		items = append(items, components.MenuItem{
			Label:    label,
			Disabled: h.done[subject],
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.NavigateMsg{
						Event:  survey.EventSubjectChosen,
						Screen: form.New(h.deps.Form, subject),
					}
				}
			},
		})
	}

	envLabel := "  Audit de l'environnement d'études"
	if h.done[survey.EnvironmentSubject] {
		envLabel = "✓ Audit de l'environnement d'études"
	}
	items = append(items, components.MenuItem{
		Label:    envLabel,
		Disabled: h.done[survey.EnvironmentSubject],
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.NavigateMsg{
					Event:  survey.EventEnvChosen,
					Screen: form.New(h.deps.Form, survey.EnvironmentSubject),
				}
			}
		},
	})

	items = append(items, components.MenuItem{
		Label: "  Scanner un badge QR",
		Action: func() tea.Cmd {
			deps := h.deps
			return func() tea.Msg {
				src, err := qr.NewDirSource(deps.CaptureDir)
				if err != nil {
					return scannerUnavailableMsg{}
				}
				return router.NavigateMsg{
					Event:  survey.EventOpenScanner,
					Screen: scanner.New(src, deps.Subjects, deps.Form),
				}
			}
		},
	})

	items = append(items, components.MenuItem{
		Label: "  Quitter",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	return items
}

type scannerUnavailableMsg struct{}

func (h *HubScreen) Title() string {
	return "Accueil"
}

func (h *HubScreen) Step() survey.Step {
	return survey.StepHub
}

func (h *HubScreen) Init() tea.Cmd {
	return nil
}

// Progress returns the campaign completion percent for the header.
func (h *HubScreen) Progress() int {
	return h.progress
}

func (h *HubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case router.ScreenRestoredMsg:
		h.reload()
		return h, nil
	case scannerUnavailableMsg:
		h.loadErr = true
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HubScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Votre avis sur le semestre")
	sections = append(sections, title, "")

	bar := components.NewProgressBar(
		"Campagne",
		float64(h.progress)/100,
		true,
		min(width-8, 56),
	)
	sections = append(sections, bar.View(), "")

	sections = append(sections, h.menu.View())

	if h.loadErr {
		sections = append(sections, theme.Hint.Render("certaines données locales sont indisponibles"))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
