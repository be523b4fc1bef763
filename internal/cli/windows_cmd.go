package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shamsu/conops/internal/cli/formatter"
	"github.com/shamsu/conops/internal/contract"
)

func newWindowsCmd(app *App) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "windows FILE",
		Short: "Show the derived phase layout and allowed windows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(cmd, args[0])
			if err != nil {
				return err
			}
			allowed, err := app.Validation.AllowedWindows(cmd.Context(), *doc)
			if err != nil {
				return err
			}

			if jsonOut {
				return printJSON(cmd.OutOrStdout(), struct {
					TotalDuration float64              `json:"total_duration"`
					Phases        []contract.PhaseSpan `json:"phases"`
					Allowed       []contract.Interval  `json:"allowed"`
				}{doc.TotalDuration(), doc.PhaseSpans(), allowed})
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatWindows(doc.TotalDuration(), doc.PhaseSpans(), allowed))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the windows as JSON")

	return cmd
}
