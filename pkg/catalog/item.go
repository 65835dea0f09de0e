// Package catalog defines the canonical product representation shared by the
// storefront and marketplace source systems, along with the identity hashing
// and reconciliation logic that joins the two catalogs.
//
// Both sources are normalized into Item values tagged with an Origin. Items
// are immutable once constructed; updates produce a new value. Reconciliation
// is a pure function over the two partitions and is safe to run concurrently
// from independent sessions.
package catalog

import "strings"

// Origin identifies which source system produced a canonical item.
// An item never changes origin after construction.
type Origin string

const (
	// OriginStorefront marks items fetched from the storefront product API.
	OriginStorefront Origin = "storefront"
	// OriginMarketplace marks items parsed from a marketplace CSV export.
	OriginMarketplace Origin = "marketplace"
)

// String returns the origin as a string.
func (o Origin) String() string {
	return string(o)
}

// Item is the canonical product representation both source systems normalize
// into. Price stays a decimal-as-string to preserve source formatting; it is
// never parsed as a float for identity or storage. A nil StockQuantity means
// unlimited/unspecified stock.
type Item struct {
	Origin        Origin   `json:"origin"`
	Identity      string   `json:"identity"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	SKU           string   `json:"sku"`
	Status        string   `json:"status"`
	Price         string   `json:"price"`
	Categories    []string `json:"categories"`
	Images        []string `json:"images"`
	StockQuantity *int     `json:"stock_quantity,omitempty"`
}

// ActiveListing reports whether the item's status marks it as an active
// marketplace listing. The comparison is case-insensitive; marketplace
// exports are inconsistent about "active" vs "Active".
func (i Item) ActiveListing() bool {
	return strings.EqualFold(i.Status, "active")
}

// JoinedCategories returns the category sequence as a single comma-joined
// string, the flat storage form used for display.
func (i Item) JoinedCategories() string {
	return strings.Join(i.Categories, ", ")
}

// NormalizeStock folds a source quantity into the canonical optional form.
// A quantity of exactly zero becomes nil (unlimited/unspecified), not zero.
// This is deliberate adapter policy shared by both sources.
func NormalizeStock(quantity int) *int {
	if quantity <= 0 {
		return nil
	}
	q := quantity
	return &q
}
