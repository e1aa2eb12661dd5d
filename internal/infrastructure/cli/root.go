package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/doeshing/movierec-go/internal/app"
	"github.com/doeshing/movierec-go/internal/infrastructure/cli/commands"
	configinfra "github.com/doeshing/movierec-go/internal/infrastructure/config"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose    bool
	ConfigPath string
	// Stderr receives persistence warnings after a command finishes.
	Stderr io.Writer
}

// session builds the container on first use and keeps it for Close.
type session struct {
	opts      Options
	container *app.Container
}

func (s *session) Container(ctx context.Context) (*app.Container, error) {
	if s.container != nil {
		return s.container, nil
	}
	container, err := app.BuildContainer(ctx, app.Options{
		ConfigPath: s.opts.ConfigPath,
		Verbose:    s.opts.Verbose,
	})
	if err != nil {
		return nil, err
	}
	s.container = container
	return container, nil
}

func (s *session) ConfigLoader() *configinfra.FileLoader {
	if s.container != nil {
		return s.container.ConfigLoader
	}
	return configinfra.NewFileLoader(s.opts.ConfigPath)
}

// Close drains queued log writes and surfaces any that failed.
func (s *session) Close(ctx context.Context) error {
	if s.container == nil {
		return nil
	}
	err := s.container.Close(ctx)
	if s.container.Recorder != nil {
	drain:
		for {
			select {
			case perr := <-s.container.Recorder.Errors():
				fmt.Fprintln(s.stderr(), "warning:", perr)
			default:
				break drain
			}
		}
	}
	s.container = nil
	return err
}

func (s *session) stderr() io.Writer {
	if s.opts.Stderr != nil {
		return s.opts.Stderr
	}
	return os.Stderr
}

// NewRootCmd wires the cobra root command. The returned closer releases
// whatever the executed command opened.
func NewRootCmd(opts Options) (*cobra.Command, func(context.Context) error) {
	sess := &session{opts: opts}

	root := &cobra.Command{
		Use:   "movierec",
		Short: "movierec - movie recommendations from a free-text preference",
		Long: "movierec asks a generative model for five movie titles and falls back to a\n" +
			"curated genre table whenever the model is unavailable.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&sess.opts.ConfigPath, "config", opts.ConfigPath, "Path to movierec.yaml (default $MOVIEREC_CONFIG or ./movierec.yaml)")
	root.PersistentFlags().BoolVarP(&sess.opts.Verbose, "verbose", "v", opts.Verbose, "Enable debug logging")

	root.AddCommand(
		commands.NewServeCommand(sess),
		commands.NewRecommendCommand(sess),
		commands.NewTestOpenAICommand(sess),
		commands.NewHistoryCommand(sess),
		commands.NewDoctorCommand(sess),
		commands.NewConfigCommand(sess),
		commands.NewVersionCommand(),
	)
	return root, sess.Close
}

// Execute runs the root command with args and always releases resources.
func Execute(ctx context.Context, opts Options, args []string) error {
	root, closer := NewRootCmd(opts)
	root.SetArgs(args)
	runErr := root.ExecuteContext(ctx)
	closeErr := closer(context.Background())
	return errors.Join(runErr, closeErr)
}
