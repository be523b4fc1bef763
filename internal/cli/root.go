package cli

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/shamsu/conops/internal/basespec"
	"github.com/shamsu/conops/internal/cli/formatter"
	"github.com/shamsu/conops/internal/config"
	"github.com/shamsu/conops/internal/service"
)

// App holds the configuration and service interfaces the CLI commands
// run against. Wire, when set, is called after config load to connect
// the services; tests pre-wire the App and leave it nil.
type App struct {
	Config     config.Config
	Validation service.ValidationService
	Projects   service.ProjectService
	Export     service.ExportService
	Templates  *basespec.Store
	Wire       func(app *App) error
}

// NewRootCmd creates the top-level "conops" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var cfgFile string
	var noColor bool
	var verbose bool

	root := &cobra.Command{
		Use:          "conops",
		Short:        "Mission timeline validator and ConOps exporter",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.Init(cfgFile)
			app.Config = config.Load()
			if noColor {
				app.Config.NoColor = true
			}
			if verbose {
				app.Config.Verbose = true
			}
			if app.Config.NoColor || !isatty.IsTerminal(os.Stdout.Fd()) {
				formatter.DisableStyles()
			}
			if app.Wire != nil {
				return app.Wire(app)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default .conops.yaml)")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log service activity to stderr")

	root.AddCommand(
		newValidateCmd(app),
		newWindowsCmd(app),
		newExplainCmd(app),
		newSnapCmd(app),
		newProjectCmd(app),
		newExportCmd(app),
		newTemplateCmd(app),
		newServeCmd(app),
	)

	return root
}
