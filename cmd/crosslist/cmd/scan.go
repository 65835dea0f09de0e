package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sellerstack/crosslist/internal/cmd/output"
	"github.com/sellerstack/crosslist/internal/sources/marketplace"
	"github.com/sellerstack/crosslist/pkg/logging"
)

// scanResult is the machine-readable shape of a scan run.
type scanResult struct {
	File       string `json:"file"`
	RowsSeen   int    `json:"rows_seen"`
	RowsParsed int    `json:"rows_parsed"`
	Active     int    `json:"active"`
}

// NewScanCommand creates the scan command.
func NewScanCommand(application Application) *cobra.Command {
	var showItems bool

	cmd := &cobra.Command{
		Use:   "scan <csv>",
		Short: "Parse a marketplace CSV export",
		Long: `Scan parses a marketplace CSV export and reports how many rows were
seen, how many parsed cleanly, and how many listings are active.
Malformed rows are logged and skipped, never fatal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logging.WithLogger(cmd.Context(), application.Logger())

			rows, stats, err := marketplace.ReadFile(ctx, args[0])
			if err != nil {
				return err
			}

			items := marketplace.ToItems(rows)
			active := 0
			for _, item := range items {
				if item.ActiveListing() {
					active++
				}
			}

			logging.Ctx(ctx).Info().
				Str("file", args[0]).
				Int("rows_seen", stats.RowsSeen).
				Int("rows_parsed", stats.RowsParsed).
				Int("active", active).
				Msg("scanned marketplace export")

			if showItems {
				if tableOutput(cmd) {
					return render(cmd, output.ItemsData(items, wideOutput(cmd)))
				}
				return render(cmd, items)
			}

			return render(cmd, scanResult{
				File:       args[0],
				RowsSeen:   stats.RowsSeen,
				RowsParsed: stats.RowsParsed,
				Active:     active,
			})
		},
	}

	cmd.Flags().BoolVar(&showItems, "items", false, "List the parsed items instead of summary counts")

	return cmd
}
