package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shamsu/conops/internal/cli/formatter"
	"github.com/shamsu/conops/internal/server"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			listen := app.Config.ListenAddr
			if cmd.Flags().Changed("addr") {
				listen = addr
			}

			srv := server.New(server.Config{
				Addr:       listen,
				Validation: app.Validation,
				Projects:   app.Projects,
				Exporter:   app.Export,
				ExportsDir: app.Config.ExportsDir,
			})

			go func() {
				<-srv.Ready()
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Listening on "+srv.Addr().String()))
			}()

			return srv.Serve(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8340", "listen address")

	return cmd
}
