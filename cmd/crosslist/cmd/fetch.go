package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sellerstack/crosslist/internal/cmd/output"
	"github.com/sellerstack/crosslist/internal/snapshot"
	"github.com/sellerstack/crosslist/pkg/logging"
)

// NewFetchCommand creates the fetch command.
func NewFetchCommand(application Application) *cobra.Command {
	var (
		save     bool
		savePath string
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch the storefront catalog",
		Long: `Fetch retrieves the product catalog from the storefront REST API
and renders it in the selected output format.

With --save the fetched catalog is also written to a local snapshot,
which reconcile and publish can later read with --snapshot to avoid
hitting the API again.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := logging.WithLogger(cmd.Context(), application.Logger())

			client, err := application.Storefront()
			if err != nil {
				return err
			}

			items, err := client.ListItems(ctx)
			if err != nil {
				return err
			}
			logging.Ctx(ctx).Info().
				Int("items", len(items)).
				Msg("fetched storefront catalog")

			if save {
				path := savePath
				if path == "" {
					path = application.Engine().SnapshotPath
				}
				if err := snapshot.Save(ctx, path, items); err != nil {
					return err
				}
			}

			if tableOutput(cmd) {
				return render(cmd, output.ItemsData(items, wideOutput(cmd)))
			}
			return render(cmd, items)
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Write the fetched catalog to a snapshot file")
	cmd.Flags().StringVar(&savePath, "save-path", "", "Snapshot file location (overrides configuration)")

	return cmd
}
