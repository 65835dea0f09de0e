package marketplace

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sellerstack/crosslist/pkg/catalog"
)

// ToItem converts an export row into a canonical item. Defaults apply per
// column: empty strings for text fields, "0" for price, no value for
// stock. Identity is computed from the raw title, the same policy the
// storefront adapter uses.
func ToItem(row Row) catalog.Item {
	var categories []string
	if row.Category != "" {
		categories = []string{row.Category}
	}

	// The export carries one combined image reference per row, not a list.
	var images []string
	if row.Images != "" {
		images = []string{row.Images}
	}

	return catalog.Item{
		Origin:        catalog.OriginMarketplace,
		Identity:      catalog.Identity(row.Title),
		Name:          row.Title,
		Description:   row.Description,
		SKU:           row.SKU,
		Status:        row.Status,
		Price:         normalizePrice(row.Price),
		Categories:    categories,
		Images:        images,
		StockQuantity: parseQuantity(row.QuantityLeft),
	}
}

// ToItems converts a parsed export into canonical items, preserving row
// order.
func ToItems(rows []Row) []catalog.Item {
	items := make([]catalog.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, ToItem(row))
	}
	return items
}

// normalizePrice parses the export's numeric price and formats it back to a
// decimal string. Prices never pass through floats. Missing or unparsable
// prices default to "0".
func normalizePrice(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "0"
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return "0"
	}
	return d.String()
}

// parseQuantity maps the "Quantity Left" column to the canonical optional
// stock quantity. Zero folds to no value.
func parseQuantity(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	qty, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return catalog.NormalizeStock(qty)
}
