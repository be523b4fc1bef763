package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shamsu/conops/internal/cli/formatter"
)

func newTemplateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "templates",
		Aliases: []string{"profiles"},
		Short:   "List installed base spec profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := app.Templates.List()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfileList(profiles, app.Config.BaseSpec))
			return nil
		},
	}
}
