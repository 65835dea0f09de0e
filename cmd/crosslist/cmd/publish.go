package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sellerstack/crosslist/internal/cmd/output"
	"github.com/sellerstack/crosslist/pkg/errors"
	"github.com/sellerstack/crosslist/pkg/logging"
	"github.com/sellerstack/crosslist/pkg/publish"
)

// NewPublishCommand creates the publish command.
func NewPublishCommand(application Application) *cobra.Command {
	var (
		flags  sessionFlags
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish missing marketplace listings to the storefront",
		Long: `Publish reconciles the two catalogs and then creates each missing
active listing in the storefront, one at a time. A failed item is
recorded and the batch continues; the command exits non-zero only
when every attempted item failed.

With --dry-run the items are reported but nothing is written.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := logging.WithLogger(cmd.Context(), application.Logger())

			session, err := buildSession(ctx, application, flags)
			if err != nil {
				return err
			}

			result := session.Reconcile()
			if len(result.NeedsPublishing) == 0 {
				logging.Ctx(ctx).Info().Msg("storefront is up to date, nothing to publish")
				return render(cmd, publish.NewReport())
			}

			// Dry runs never touch the API, so no client is needed.
			var creator publish.Creator
			if !dryRun {
				client, err := application.Storefront()
				if err != nil {
					return err
				}
				creator = client
			}

			publisher := publish.New(creator, publish.WithDryRun(dryRun))
			report := publisher.PublishAll(ctx, result.NeedsPublishing)

			logging.Ctx(ctx).Info().
				Str("report_id", report.ID.String()).
				Int("attempted", report.Attempted).
				Int("succeeded", report.Succeeded).
				Int("failed", report.Failed).
				Msg("publish batch finished")

			if tableOutput(cmd) {
				if err := render(cmd, output.ReportData(report)); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Published %d of %d items (%d failed)\n",
					report.Succeeded, report.Attempted, report.Failed)
			} else if err := render(cmd, report); err != nil {
				return err
			}

			if report.AllFailed() {
				return errors.New("all publish attempts failed")
			}
			return nil
		},
	}

	addSessionFlags(cmd, &flags)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would be published without writing")

	return cmd
}
