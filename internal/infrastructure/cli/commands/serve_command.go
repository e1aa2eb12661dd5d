package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/doeshing/movierec-go/internal/infrastructure/httpapi"
)

// NewServeCommand starts the HTTP API and blocks until SIGINT or SIGTERM.
func NewServeCommand(session Session) *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the recommendation HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := session.Container(cmd.Context())
			if err != nil {
				return err
			}

			settings := container.Config.Server
			if cmd.Flags().Changed("host") {
				settings.Host = host
			}
			if cmd.Flags().Changed("port") {
				settings.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			server := httpapi.NewServer(settings, container.Config.Generative.Timeout(), container.HTTPHandler(), container.Logger)
			return server.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Override the listen host")
	cmd.Flags().IntVar(&port, "port", 0, "Override the listen port")
	return cmd
}
