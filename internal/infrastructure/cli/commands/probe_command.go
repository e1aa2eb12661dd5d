package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// NewTestOpenAICommand makes one diagnostic call to the generative service.
func NewTestOpenAICommand(session Session) *cobra.Command {
	return &cobra.Command{
		Use:   "test-openai",
		Short: "Check connectivity to the generative service",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := session.Container(cmd.Context())
			if err != nil {
				return err
			}
			if container.Prober == nil {
				return errors.New(ErrProberUnavailable)
			}

			res := container.Prober.Probe(cmd.Context())
			renderProbe(cmd.OutOrStdout(), res)
			if !res.Success() {
				return fmt.Errorf("generative service check %s", res.Outcome)
			}
			return nil
		},
	}
}
