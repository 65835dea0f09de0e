package marketplace

import (
	"context"
	"encoding/csv"
	stderrors "errors"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/sellerstack/crosslist/pkg/errors"
	"github.com/sellerstack/crosslist/pkg/logging"
)

// Recognized column headers, matched exactly.
const (
	columnTitle        = "Title"
	columnDescription  = "Description"
	columnCategory     = "Category"
	columnPrice        = "Price"
	columnSKU          = "SKU"
	columnStatus       = "Status"
	columnImages       = "Images"
	columnQuantityLeft = "Quantity Left"
)

// ReadFile reads a marketplace CSV export from disk.
func ReadFile(ctx context.Context, path string) ([]Row, ParseStats, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, ParseStats{}, errors.WrapIO("open", path, err)
	}
	defer func() { _ = file.Close() }()

	return Read(ctx, file, path)
}

// Read parses a marketplace CSV export from r. The first record is the
// header row; every data row is matched against the recognized columns.
// Malformed rows are logged and skipped — a bad row never aborts the rest
// of the file. The name is used for diagnostics only.
func Read(ctx context.Context, r io.Reader, name string) ([]Row, ParseStats, error) {
	logger := logging.FromContext(ctx)

	// Marketplace exports routinely carry a UTF-8 BOM; strip it before the
	// header row is matched.
	decoded := transform.NewReader(r, unicode.UTF8BOM.NewDecoder())

	reader := csv.NewReader(decoded)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, ParseStats{}, nil
		}
		return nil, ParseStats{}, errors.WrapParse("csv", name, err)
	}

	columns := make(map[string]int, len(header))
	for i, h := range header {
		columns[h] = i
	}

	var (
		rows  []Row
		stats ParseStats
	)

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			stats.RowsSeen++
			logger.Warn().
				Err(err).
				Str("file", name).
				Int("line", line).
				Msg("Skipping malformed export row")

			var parseErr *csv.ParseError
			if stderrors.As(err, &parseErr) || record != nil {
				continue
			}
			// Reader cannot recover; report what was parsed so far.
			return rows, stats, errors.WrapParse("csv", name, err)
		}

		stats.RowsSeen++
		rows = append(rows, Row{
			Title:        field(record, columns, columnTitle),
			Description:  field(record, columns, columnDescription),
			Category:     field(record, columns, columnCategory),
			Price:        field(record, columns, columnPrice),
			SKU:          field(record, columns, columnSKU),
			Status:       field(record, columns, columnStatus),
			Images:       field(record, columns, columnImages),
			QuantityLeft: field(record, columns, columnQuantityLeft),
		})
		stats.RowsParsed++
	}

	logger.Info().
		Str("file", name).
		Int("rows_seen", stats.RowsSeen).
		Int("rows_parsed", stats.RowsParsed).
		Msg("Parsed marketplace export")

	return rows, stats, nil
}

// field returns the named column's value for a record, or "" when the
// column is absent from the export or the record is short.
func field(record []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return record[idx]
}
