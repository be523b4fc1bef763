package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shamsu/conops/internal/cli/formatter"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage saved mission documents",
	}

	cmd.AddCommand(
		newProjectSaveCmd(app),
		newProjectListCmd(app),
		newProjectShowCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func parseProjectID(input string) (int64, error) {
	id, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid project id %q", input)
	}
	return id, nil
}

func newProjectSaveCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "save FILE",
		Short: "Save a mission document as a named project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(cmd, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.Save(cmd.Context(), name, *doc)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectSaved(p))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "project name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectList(projects))
			return nil
		},
	}
}

func newProjectShowCmd(app *App) *cobra.Command {
	var outFile string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show a saved project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProjectID(args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			if outFile != "" {
				f, err := os.Create(outFile)
				if err != nil {
					return fmt.Errorf("creating %s: %w", outFile, err)
				}
				defer f.Close()
				if err := printJSON(f, p.Doc); err != nil {
					return fmt.Errorf("writing %s: %w", outFile, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Wrote document to "+outFile))
				return nil
			}

			if jsonOut {
				return printJSON(cmd.OutOrStdout(), p)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectDetail(p))
			return nil
		},
	}

	cmd.Flags().StringVar(&outFile, "out", "", "write the document JSON to a file")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the project as JSON")

	return cmd
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a saved project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProjectID(args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed project %d\n", id)
			return nil
		},
	}
}
