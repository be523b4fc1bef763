package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shamsu/conops/internal/cli/formatter"
	"github.com/shamsu/conops/internal/contract"
	"github.com/shamsu/conops/internal/watch"
)

func newValidateCmd(app *App) *cobra.Command {
	var watchMode bool
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Check every activity placement in a mission document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if watchMode {
				return runValidateWatch(cmd, app, args[0], jsonOut)
			}

			doc, err := loadDocument(cmd, args[0])
			if err != nil {
				return err
			}
			rep, err := app.Validation.Validate(cmd.Context(), *doc)
			if err != nil {
				return err
			}
			if err := printReport(cmd, rep, jsonOut); err != nil {
				return err
			}
			if !rep.OK {
				return fmt.Errorf("validation failed with %d violation(s)", rep.ViolationCount())
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "revalidate whenever the file changes")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the report as JSON")

	return cmd
}

// runValidateWatch validates once up front, then blocks revalidating on
// every save until the context is cancelled or the file disappears.
func runValidateWatch(cmd *cobra.Command, app *App, path string, jsonOut bool) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, formatter.Dim("Watching "+path+" (ctrl-c to stop)"))
	printWatchResult(cmd, validateOnce(ctx, app, cmd, path), jsonOut)

	return watch.Run(ctx, path, app.Validation.Validate, func(res watch.Result) {
		fmt.Fprintln(out, formatter.Dim(time.Now().Format("15:04:05")+" "+path))
		printWatchResult(cmd, res, jsonOut)
	})
}

func validateOnce(ctx context.Context, app *App, cmd *cobra.Command, path string) watch.Result {
	doc, err := loadDocument(cmd, path)
	if err != nil {
		return watch.Result{Err: err}
	}
	rep, err := app.Validation.Validate(ctx, *doc)
	if err != nil {
		return watch.Result{Err: err}
	}
	return watch.Result{Report: rep}
}

func printWatchResult(cmd *cobra.Command, res watch.Result, jsonOut bool) {
	if res.Err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleRed.Render(res.Err.Error()))
		return
	}
	_ = printReport(cmd, res.Report, jsonOut)
}

func printReport(cmd *cobra.Command, rep *contract.ValidationReport, jsonOut bool) error {
	if jsonOut {
		return printJSON(cmd.OutOrStdout(), rep)
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatValidationReport(rep))
	return nil
}
