package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shamsu/conops/internal/cli/formatter"
)

func newExplainCmd(app *App) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "explain FILE ACTIVITY",
		Short: "Explain why one activity placement is legal or not",
		Long: `Explain resolves ACTIVITY against the document by id first, then by
case-insensitive name, and reports every placement violation it finds.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(cmd, args[0])
			if err != nil {
				return err
			}
			rep, err := app.Validation.ExplainActivity(cmd.Context(), *doc, args[1])
			if err != nil {
				return err
			}

			if jsonOut {
				return printJSON(cmd.OutOrStdout(), rep)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatActivityReport(rep))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the report as JSON")

	return cmd
}
