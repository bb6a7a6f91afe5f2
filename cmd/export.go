package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the feedback history as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		var w io.Writer = os.Stdout
		out, _ := cmd.Flags().GetString("output")
		if out != "" {
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create output file: %w", err)
			}
			defer f.Close()
			w = f
		}

		rows, err := st.WriteHistoryCSV(cmd.Context(), w)
		if err != nil {
			return fmt.Errorf("write CSV: %w", err)
		}
		if out != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "%d rows written to %s\n", rows, out)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Write CSV to a file instead of stdout")
}
