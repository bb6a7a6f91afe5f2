package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/azizk/campulse/internal/draft"
	"github.com/azizk/campulse/internal/router"
	"github.com/azizk/campulse/internal/screen"
	"github.com/azizk/campulse/internal/screens/form"
	"github.com/azizk/campulse/internal/screens/hub"
	"github.com/azizk/campulse/internal/screens/submitting"
	"github.com/azizk/campulse/internal/screens/welcome"
	"github.com/azizk/campulse/internal/survey"
	"github.com/azizk/campulse/internal/ui/layout"
)

// Options wires the assembled services into the TUI.
type Options struct {
	Stats         StatsProvider
	Completer     hub.Completer
	Drafts        *draft.Store
	Pipeline      submitting.Submitter
	Subjects      []string
	StudentID     uint
	CaptureDir    string
	AdminPassword string
	ExportDir     string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	admin  adminPanel
	width  int
	height int
}

// newAppModel creates a new AppModel with the welcome screen.
func newAppModel(opts Options) AppModel {
	hubFactory := func() screen.Screen {
		return hub.New(hub.Deps{
			Completer:  opts.Completer,
			StudentID:  opts.StudentID,
			Subjects:   opts.Subjects,
			CaptureDir: opts.CaptureDir,
			Form: form.Deps{
				Pipeline:  opts.Pipeline,
				Drafts:    opts.Drafts,
				StudentID: opts.StudentID,
			},
		})
	}
	return AppModel{
		router: router.New(welcome.New(hubFactory)),
		admin:  newAdminPanel(opts.Stats, opts.AdminPassword, opts.ExportDir),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+a":
			return m, m.admin.toggle()
		case "esc":
			if m.admin.open {
				break
			}
			// Esc is a wizard event. The transition table rejects it on
			// welcome, hub and submitting, so those screens stay put; on
			// thanks it reads as the acknowledge any key produces.
			ev := survey.EventBack
			if st, ok := m.router.Active().(router.Stepper); ok && st.Step() == survey.StepThanks {
				ev = survey.EventAcknowledge
			}
			return m, func() tea.Msg { return router.NavigateMsg{Event: ev} }
		}
	}

	if handled, cmd := m.admin.update(msg); handled {
		return m, cmd
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	progress := 0
	if h, ok := active.(*hub.HubScreen); ok {
		progress = h.Progress()
	}

	if m.admin.open {
		title = "Administration"
	}

	header := layout.RenderHeader(title, progress, m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	var content string
	if m.admin.open {
		content = m.admin.view(m.width, contentHeight)
	} else {
		content = m.router.View(m.width, contentHeight)
	}
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints() []layout.KeyHint {
	if m.admin.open {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Fermer"},
			{Key: "Ctrl+C", Description: "Quitter"},
		}
	}
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Retour"},
			{Key: "Ctrl+C", Description: "Quitter"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Naviguer"},
		{Key: "Entrée", Description: "Valider"},
		{Key: "Ctrl+C", Description: "Quitter"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
