// Package scanner resolves a course badge to its questionnaire. Captures
// dropped into the watch directory are decoded on a poll timer; the first
// payload matching a known subject opens that subject's form. The capture
// source is released when the screen leaves the stack.
package scanner

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/azizk/campulse/internal/qr"
	"github.com/azizk/campulse/internal/router"
	"github.com/azizk/campulse/internal/screen"
	"github.com/azizk/campulse/internal/screens/form"
	"github.com/azizk/campulse/internal/survey"
	"github.com/azizk/campulse/internal/ui/layout"
	"github.com/azizk/campulse/internal/ui/theme"
)

const pollInterval = 500 * time.Millisecond

type pollMsg time.Time

// Source yields capture file paths. *qr.DirSource implements it.
type Source interface {
	Next() (string, error)
	Close() error
}

// ScannerScreen polls the capture source and matches decoded payloads.
type ScannerScreen struct {
	source   Source
	decoder  interface{ DecodeFile(string) (string, error) }
	subjects []string
	formDeps form.Deps

	lastErr string
	scanned int
	done    bool
}

var _ screen.Screen = (*ScannerScreen)(nil)

// New creates a scanner over src. subjects is the list of known course
// names the payload is matched against.
func New(src Source, subjects []string, formDeps form.Deps) *ScannerScreen {
	return &ScannerScreen{
		source:   src,
		decoder:  qr.NewDecoder(),
		subjects: subjects,
		formDeps: formDeps,
	}
}

func (s *ScannerScreen) Title() string {
	return "Scanner"
}

func (s *ScannerScreen) Step() survey.Step {
	return survey.StepScanner
}

func (s *ScannerScreen) Init() tea.Cmd {
	return s.poll()
}

func (s *ScannerScreen) poll() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return pollMsg(t)
	})
}

// Close releases the capture source. The router calls it on pop or replace.
func (s *ScannerScreen) Close() {
	s.done = true
	_ = s.source.Close()
}

func (s *ScannerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Retour"},
	}
}

func (s *ScannerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(pollMsg); !ok {
		return s, nil
	}
	if s.done {
		return s, nil
	}

	path, err := s.source.Next()
	if err != nil {
		s.lastErr = "Source de capture indisponible."
		return s, s.poll()
	}
	if path == "" {
		return s, s.poll()
	}

	s.scanned++
	payload, err := s.decoder.DecodeFile(path)
	if err != nil {
		s.lastErr = "QR illisible, présentez à nouveau le badge."
		return s, s.poll()
	}

	subject := qr.Match(payload, s.subjects)
	if subject == "" {
		s.lastErr = "Badge inconnu, matière non reconnue."
		return s, s.poll()
	}

	next := form.New(s.formDeps, subject)
	return s, func() tea.Msg {
		return router.NavigateMsg{Event: survey.EventSubjectChosen, Screen: next}
	}
}

func (s *ScannerScreen) View(width, height int) string {
	var sections []string

	art := lipgloss.NewStyle().Foreground(theme.Primary).Render(`
  ┌─────────────┐
  │ ▄▄▄▄  ▄▄▄▄  │
  │ █  █  █  █  │
  │ ▀▀▀▀  ▀▀▀▀  │
  │ ▄▄▄▄  ▄  ▄  │
  │ █  █   ▀▀   │
  │ ▀▀▀▀  ▀ ▀▀  │
  └─────────────┘`)
	sections = append(sections, art, "")

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Présentez le badge QR de la matière"))
	sections = append(sections, theme.Hint.Render("en attente d'une capture..."))

	if s.lastErr != "" {
		sections = append(sections, "", theme.Invalid.Render(s.lastErr))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
