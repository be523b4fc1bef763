package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shamsu/conops/internal/cli/formatter"
	"github.com/shamsu/conops/internal/contract"
)

func newSnapCmd(app *App) *cobra.Command {
	var desired, duration, grid float64
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "snap FILE",
		Short: "Find the nearest legal start for a proposed placement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(cmd, args[0])
			if err != nil {
				return err
			}

			req := contract.SnapRequest{Desired: desired, Duration: duration, GridStep: grid}
			res, err := app.Validation.NearestStart(cmd.Context(), *doc, req)
			if err != nil {
				return err
			}

			if jsonOut {
				return printJSON(cmd.OutOrStdout(), res)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSnapResult(req, res))
			return nil
		},
	}

	cmd.Flags().Float64Var(&desired, "desired", 0, "desired start in mission days")
	cmd.Flags().Float64Var(&duration, "duration", 0, "activity duration in mission days")
	cmd.Flags().Float64Var(&grid, "grid", contract.DefaultGridStep, "snap grid step in days (0 disables)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the result as JSON")
	_ = cmd.MarkFlagRequired("desired")
	_ = cmd.MarkFlagRequired("duration")

	return cmd
}
