package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print campaign aggregates",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()
		ctx := cmd.Context()

		global, err := st.GlobalStats(ctx)
		if err != nil {
			return fmt.Errorf("global stats: %w", err)
		}
		fmt.Printf("Soumissions          %d\n", global.TotalFeedbacks)
		fmt.Printf("Matières couvertes   %d\n", global.DistinctSubjects)
		fmt.Printf("Satisfaction moyenne %.2f / 5\n", global.AverageSatisfaction)

		env, err := st.EnvironmentStats(ctx)
		if err != nil {
			return fmt.Errorf("environment stats: %w", err)
		}
		fmt.Printf("\nAudits environnement %d\n", env.AuditCount)
		if env.AuditCount > 0 {
			fmt.Printf("Ordinateur portable  %.0f%%\n", env.LaptopRate)
			modes := make([]string, 0, len(env.TransportModes))
			for m := range env.TransportModes {
				modes = append(modes, m)
			}
			sort.Strings(modes)
			for _, m := range modes {
				fmt.Printf("  %-20s %d\n", m, env.TransportModes[m])
			}
		}

		breakdown, err := st.SubjectsBreakdown(ctx)
		if err != nil {
			return fmt.Errorf("subjects breakdown: %w", err)
		}
		if len(breakdown) > 0 {
			fmt.Println("\nPar matière")
			for _, row := range breakdown {
				fmt.Printf("  %-24s %d\n", row.Subject, row.Count)
			}
		}
		return nil
	},
}
