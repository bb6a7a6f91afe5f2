package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"charm.land/bubbles/v2/cursor"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/azizk/campulse/internal/store"
	"github.com/azizk/campulse/internal/ui/components"
	"github.com/azizk/campulse/internal/ui/theme"
)

// StatsProvider serves the admin panel's aggregates. *store.Store
// implements it.
type StatsProvider interface {
	GlobalStats(ctx context.Context) (*store.GlobalStats, error)
	EnvironmentStats(ctx context.Context) (*store.EnvironmentStats, error)
	SubjectsBreakdown(ctx context.Context) ([]store.SubjectCount, error)
	WriteHistoryCSV(ctx context.Context, w io.Writer) (int, error)
}

type globalStatsMsg struct {
	stats *store.GlobalStats
	err   error
}

type envStatsMsg struct {
	stats *store.EnvironmentStats
	err   error
}

type breakdownMsg struct {
	rows []store.SubjectCount
	err  error
}

type exportDoneMsg struct {
	path string
	rows int
	err  error
}

// adminPanel is the password-gated statistics sidebar.
type adminPanel struct {
	stats     StatsProvider
	password  string
	exportDir string

	open    bool
	authed  bool
	input   components.TextInput
	authErr bool

	loading   int
	global    *store.GlobalStats
	env       *store.EnvironmentStats
	breakdown []store.SubjectCount
	statsErr  bool

	exportNote string
}

func newAdminPanel(stats StatsProvider, password, exportDir string) adminPanel {
	return adminPanel{
		stats:     stats,
		password:  password,
		exportDir: exportDir,
		input:     components.NewPasswordInput(),
	}
}

// toggle opens or closes the panel. Opening always re-asks the password.
func (a *adminPanel) toggle() tea.Cmd {
	if a.open {
		a.close()
		return nil
	}
	a.open = true
	a.authed = false
	a.authErr = false
	a.exportNote = ""
	a.input.Reset()
	return a.input.Focus()
}

func (a *adminPanel) close() {
	a.open = false
	a.authed = false
	a.input.Reset()
}

// refresh fires the aggregate queries. They settle independently, the view
// shows a spinner note until all three are in.
func (a *adminPanel) refresh() tea.Cmd {
	a.loading = 3
	a.statsErr = false
	stats := a.stats
	return tea.Batch(
		func() tea.Msg {
			s, err := stats.GlobalStats(context.Background())
			return globalStatsMsg{stats: s, err: err}
		},
		func() tea.Msg {
			s, err := stats.EnvironmentStats(context.Background())
			return envStatsMsg{stats: s, err: err}
		},
		func() tea.Msg {
			rows, err := stats.SubjectsBreakdown(context.Background())
			return breakdownMsg{rows: rows, err: err}
		},
	)
}

func (a *adminPanel) export() tea.Cmd {
	stats := a.stats
	dir := a.exportDir
	return func() tea.Msg {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return exportDoneMsg{err: err}
		}
		path := filepath.Join(dir, fmt.Sprintf("campulse-export-%s.csv", time.Now().Format("20060102-150405")))
		f, err := os.Create(path)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		rows, err := stats.WriteHistoryCSV(context.Background(), f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: path, rows: rows}
	}
}

// update handles messages while the panel is open. handled reports whether
// the message was consumed.
func (a *adminPanel) update(msg tea.Msg) (handled bool, cmd tea.Cmd) {
	switch msg := msg.(type) {
	case globalStatsMsg:
		a.loading--
		if msg.err != nil {
			a.statsErr = true
		} else {
			a.global = msg.stats
		}
		return true, nil
	case envStatsMsg:
		a.loading--
		if msg.err != nil {
			a.statsErr = true
		} else {
			a.env = msg.stats
		}
		return true, nil
	case breakdownMsg:
		a.loading--
		if msg.err != nil {
			a.statsErr = true
		} else {
			a.breakdown = msg.rows
		}
		return true, nil
	case exportDoneMsg:
		if msg.err != nil {
			a.exportNote = "export impossible: " + msg.err.Error()
		} else {
			a.exportNote = fmt.Sprintf("%d lignes exportées vers %s", msg.rows, msg.path)
		}
		return true, nil
	}

	if !a.open {
		return false, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		// Only the password input's own cursor messages belong to the
		// overlay. Everything else (pipeline results, spinner ticks,
		// navigation) must still reach the router underneath.
		if _, blink := msg.(cursor.BlinkMsg); blink && !a.authed {
			a.input, cmd = a.input.Update(msg)
			return true, cmd
		}
		return false, nil
	}

	if !a.authed {
		switch kmsg.String() {
		case "enter":
			if a.input.Value() == a.password {
				a.authed = true
				a.authErr = false
				return true, a.refresh()
			}
			a.authErr = true
			a.input.Reset()
			return true, nil
		case "esc":
			a.close()
			return true, nil
		}
		a.input, cmd = a.input.Update(msg)
		return true, cmd
	}

	switch kmsg.String() {
	case "e":
		return true, a.export()
	case "r":
		return true, a.refresh()
	case "esc":
		a.close()
		return true, nil
	}
	return true, nil
}

func (a *adminPanel) view(width, height int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render("Administration")

	var body []string
	body = append(body, title, "")

	if !a.authed {
		body = append(body, theme.Body.Render("Mot de passe requis"))
		body = append(body, "", a.input.View())
		if a.authErr {
			body = append(body, "", theme.Invalid.Render("mot de passe incorrect"))
		}
		body = append(body, "", theme.Hint.Render("entrée valider · esc fermer"))
	} else {
		body = append(body, a.statsView()...)
		body = append(body, "", theme.Hint.Render("e exporter · r actualiser · esc fermer"))
		if a.exportNote != "" {
			body = append(body, "", theme.Hint.Render(a.exportNote))
		}
	}

	panel := theme.Card.Width(width - 4).Render(strings.Join(body, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, panel)
}

func (a *adminPanel) statsView() []string {
	if a.loading > 0 {
		return []string{theme.Hint.Render("chargement des statistiques...")}
	}
	if a.statsErr {
		return []string{theme.Invalid.Render("statistiques indisponibles")}
	}

	var out []string

	if a.global != nil {
		out = append(out,
			theme.Body.Render(fmt.Sprintf("Soumissions        %d", a.global.TotalFeedbacks)),
			theme.Body.Render(fmt.Sprintf("Matières couvertes %d", a.global.DistinctSubjects)),
			theme.Body.Render(fmt.Sprintf("Satisfaction       %.2f / 5", a.global.AverageSatisfaction)),
		)
	}

	if a.env != nil {
		out = append(out, "", theme.Subtitle.Render("Environnement"))
		out = append(out, theme.Body.Render(fmt.Sprintf("Audits             %d", a.env.AuditCount)))
		if a.env.AuditCount > 0 {
			out = append(out, theme.Body.Render(fmt.Sprintf("Ordinateur portable %.0f%%", a.env.LaptopRate)))
			modes := make([]string, 0, len(a.env.TransportModes))
			for mode := range a.env.TransportModes {
				modes = append(modes, mode)
			}
			sort.Strings(modes)
			for _, mode := range modes {
				out = append(out, theme.Body.Render(fmt.Sprintf("  %-20s %d", mode, a.env.TransportModes[mode])))
			}
		}
	}

	if len(a.breakdown) > 0 {
		out = append(out, "", theme.Subtitle.Render("Par matière"))
		for _, row := range a.breakdown {
			out = append(out, theme.Body.Render(fmt.Sprintf("  %-24s %d", row.Subject, row.Count)))
		}
	}

	if len(out) == 0 {
		out = append(out, theme.Hint.Render("aucune donnée pour le moment"))
	}
	return out
}
