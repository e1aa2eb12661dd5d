package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"

	configapp "github.com/doeshing/movierec-go/internal/application/config"
	configinfra "github.com/doeshing/movierec-go/internal/infrastructure/config"
)

const (
	msgConfigurationValid       = "Configuration valid"
	msgNoDifferencesFromDefault = "No differences from default configuration."
)

// NewConfigCommand creates the config command with all subcommands
func NewConfigCommand(session Session) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect movierec configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfiguration(cmd, session)
		},
	}

	configCmd.AddCommand(
		newConfigShowCommand(session),
		newConfigInitCommand(session),
		newConfigPathCommand(session),
		newConfigValidateCommand(session),
		newConfigDiffCommand(session),
	)

	return configCmd
}

// newConfigShowCommand creates the 'config show' subcommand
func newConfigShowCommand(session Session) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration (file, .env and environment merged)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfiguration(cmd, session)
		},
	}
}

// newConfigInitCommand creates the 'config init' subcommand
func newConfigInitCommand(session Session) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default movierec.yaml",
		Long: `Write a configuration file with default settings.

Credentials are never written to the file. Set OPENAI_API_KEY in the
environment or in a .env file next to the binary, then run
'movierec doctor --probe' to verify the setup.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, err := configLoader(session)
			if err != nil {
				return err
			}
			path, err := loader.WriteDefault(force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

// newConfigPathCommand creates the 'config path' subcommand
func newConfigPathCommand(session Session) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, err := configLoader(session)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), loader.Path())
			return nil
		},
	}
}

// newConfigValidateCommand creates the 'config validate' subcommand
func newConfigValidateCommand(session Session) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, err := configLoader(session)
			if err != nil {
				return err
			}
			cfg, err := loader.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}
			if err := configapp.Validate(cfg); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), msgConfigurationValid)
			return nil
		},
	}
}

// newConfigDiffCommand creates the 'config diff' subcommand
func newConfigDiffCommand(session Session) *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Show diff versus default configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigurationDiff(cmd, session)
		},
	}
}

func configLoader(session Session) (*configinfra.FileLoader, error) {
	loader := session.ConfigLoader()
	if loader == nil {
		return nil, errors.New(ErrConfigLoaderUnavailable)
	}
	return loader, nil
}

// showConfiguration displays the full configuration in YAML format
func showConfiguration(cmd *cobra.Command, session Session) error {
	loader, err := configLoader(session)
	if err != nil {
		return err
	}
	cfg, err := loader.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	data, err := configinfra.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# %s\n", loader.Path())
	fmt.Fprint(out, string(data))
	return nil
}

// showConfigurationDiff shows the difference between current and default configuration
func showConfigurationDiff(cmd *cobra.Command, session Session) error {
	loader, err := configLoader(session)
	if err != nil {
		return err
	}
	currentConfig, err := loader.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load current configuration: %w", err)
	}

	// Credentials are not part of the file; leave them out of the comparison.
	currentConfig.Generative.APIKey = ""
	currentConfig.Generative.OrganizationID = ""

	printDiff(cmd.OutOrStdout(), cmp.Diff(configinfra.DefaultConfig(), currentConfig))
	return nil
}

func printDiff(out io.Writer, diff string) {
	if diff == "" {
		fmt.Fprintln(out, msgNoDifferencesFromDefault)
		return
	}
	fmt.Fprintln(out, diff)
}
