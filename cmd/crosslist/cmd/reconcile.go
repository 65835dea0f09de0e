package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sellerstack/crosslist/internal/cmd/output"
	"github.com/sellerstack/crosslist/pkg/logging"
)

// NewReconcileCommand creates the reconcile command.
func NewReconcileCommand(application Application) *cobra.Command {
	var flags sessionFlags

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Find marketplace listings missing from the storefront",
		Long: `Reconcile compares the marketplace CSV export against the storefront
catalog. Items are matched by name identity; active marketplace
listings with no storefront counterpart are reported as needing
publishing. Nothing is written anywhere.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := logging.WithLogger(cmd.Context(), application.Logger())

			session, err := buildSession(ctx, application, flags)
			if err != nil {
				return err
			}

			result := session.Reconcile()
			logging.Ctx(ctx).Info().
				Str("session_id", session.ID().String()).
				Int("matched", result.MatchedCount).
				Int("needs_publishing", len(result.NeedsPublishing)).
				Msg("reconciled catalogs")

			if tableOutput(cmd) {
				return render(cmd, output.ReconcileData(result, wideOutput(cmd)))
			}
			return render(cmd, result)
		},
	}

	addSessionFlags(cmd, &flags)
	return cmd
}
