package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sellerstack/crosslist/internal/cmd/globals"
	"github.com/sellerstack/crosslist/internal/cmd/output"
	"github.com/sellerstack/crosslist/internal/snapshot"
	"github.com/sellerstack/crosslist/internal/sources/marketplace"
	"github.com/sellerstack/crosslist/pkg/catalog"
	"github.com/sellerstack/crosslist/pkg/logging"
)

// sessionFlags configure where the two catalogs come from.
type sessionFlags struct {
	csvPath      string
	snapshotPath string
	useSnapshot  bool
}

func addSessionFlags(cmd *cobra.Command, flags *sessionFlags) {
	cmd.Flags().StringVar(&flags.csvPath, "csv", "",
		"Marketplace CSV export (overrides configuration)")
	cmd.Flags().BoolVar(&flags.useSnapshot, "snapshot", false,
		"Read storefront items from the local snapshot instead of the API")
	cmd.Flags().StringVar(&flags.snapshotPath, "snapshot-path", "",
		"Snapshot file location (overrides configuration)")
}

// buildSession assembles a reconciliation session from the storefront
// (live API or snapshot) and the marketplace CSV export.
func buildSession(ctx context.Context, application Application, flags sessionFlags) (*catalog.Session, error) {
	cfg := application.Engine()

	csvPath := flags.csvPath
	if csvPath == "" {
		csvPath = cfg.Marketplace.CSVPath
	}
	if csvPath == "" {
		if err := cfg.ValidateMarketplace(); err != nil {
			return nil, err
		}
	}

	var storefrontItems []catalog.Item
	if flags.useSnapshot {
		path := flags.snapshotPath
		if path == "" {
			path = cfg.SnapshotPath
		}
		items, err := snapshot.Load(ctx, path)
		if err != nil {
			return nil, err
		}
		storefrontItems = items
	} else {
		client, err := application.Storefront()
		if err != nil {
			return nil, err
		}
		items, err := client.ListItems(ctx)
		if err != nil {
			return nil, err
		}
		storefrontItems = items
	}

	rows, stats, err := marketplace.ReadFile(ctx, csvPath)
	if err != nil {
		return nil, err
	}
	marketplaceItems := marketplace.ToItems(rows)

	session := catalog.NewSession(storefrontItems, marketplaceItems)
	logging.Ctx(ctx).Debug().
		Str("session_id", session.ID().String()).
		Int("storefront_items", len(storefrontItems)).
		Int("marketplace_rows_seen", stats.RowsSeen).
		Int("marketplace_rows_parsed", stats.RowsParsed).
		Msg("session assembled")
	return session, nil
}

// render writes data in the format selected by the global flags.
func render(cmd *cobra.Command, data any) error {
	flags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}
	format := output.DetectFormat(flags.Output)
	return output.NewFormatter(format).Format(cmd.OutOrStdout(), data)
}

// wideOutput reports whether the wide table format was requested.
func wideOutput(cmd *cobra.Command) bool {
	flags, err := globals.Parse(cmd)
	if err != nil {
		return false
	}
	return output.DetectFormat(flags.Output) == output.FormatWide
}

// tableOutput reports whether a table variant was selected, in which
// case commands render domain tables instead of raw structures.
func tableOutput(cmd *cobra.Command) bool {
	flags, err := globals.Parse(cmd)
	if err != nil {
		return false
	}
	format := output.DetectFormat(flags.Output)
	return format == output.FormatTable || format == output.FormatWide
}
