package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/azizk/campulse/internal/identity"
	"github.com/azizk/campulse/internal/store"
	"github.com/azizk/campulse/internal/survey"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List this device's past submissions",
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := store.DefaultDataDir()
		if err != nil {
			return fmt.Errorf("resolve data dir: %w", err)
		}
		deviceID, err := identity.DeviceID(dataDir)
		if err != nil {
			return fmt.Errorf("resolve device identity: %w", err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		student, err := st.EnsureStudent(ctx, deviceID)
		if err != nil {
			return fmt.Errorf("resolve student: %w", err)
		}
		rows, err := st.History(ctx, student.ID)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}

		fmt.Print(formatHistory(rows))
		return nil
	},
}

// formatHistory renders one line per submission, newest first. The
// environment sentinel gets its display label.
func formatHistory(rows []store.FeedbackSummary) string {
	if len(rows) == 0 {
		return "Aucune soumission pour le moment.\n"
	}
	var b strings.Builder
	for _, r := range rows {
		subject := r.Subject
		if subject == survey.EnvironmentSubject {
			subject = "Audit environnement"
		}
		fmt.Fprintf(&b, "%s  %s\n", r.CreatedAt.Format("2006-01-02 15:04"), subject)
	}
	return b.String()
}
