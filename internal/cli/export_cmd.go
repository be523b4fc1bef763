package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shamsu/conops/internal/cli/formatter"
)

func newExportCmd(app *App) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Export the full mission spec, conops patch, and summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(cmd, args[0])
			if err != nil {
				return err
			}
			res, err := app.Export.Export(cmd.Context(), *doc)
			if err != nil {
				return err
			}

			if jsonOut {
				return printJSON(cmd.OutOrStdout(), res)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatExportResult(res))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the artifact names as JSON")

	return cmd
}
