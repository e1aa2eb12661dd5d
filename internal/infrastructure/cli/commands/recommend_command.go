package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/doeshing/movierec-go/internal/domain"
)

// NewRecommendCommand runs one recommendation through the full pipeline.
func NewRecommendCommand(session Session) *cobra.Command {
	var (
		asJSON  bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "recommend <preference...>",
		Short: "Recommend movies for a free-text preference",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := session.Container(cmd.Context())
			if err != nil {
				return err
			}
			if container.Resolver == nil {
				return errors.New(ErrResolverUnavailable)
			}

			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			req, err := domain.NewPreferenceRequest(strings.Join(args, " "))
			if err != nil {
				return err
			}
			res, err := container.Resolver.Resolve(ctx, req)
			if err != nil {
				return err
			}
			if asJSON {
				return renderRecommendationJSON(cmd.OutOrStdout(), res)
			}
			renderRecommendation(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the API response body instead of a list")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Overall deadline for the request (0 means none)")
	return cmd
}
