// Package storefront fetches and creates products on the self-hosted
// storefront via its REST product API, and converts between the
// storefront-native record shape and the canonical catalog item.
package storefront

// Product is the storefront-native product record as served by the
// products resource. The same shape, minus generated fields, is posted
// back when creating a product.
type Product struct {
	Name          string     `json:"name"`
	RegularPrice  string     `json:"regular_price"`
	Description   string     `json:"description"`
	Categories    []Category `json:"categories"`
	Images        []Image    `json:"images"`
	StockQuantity *int       `json:"stock_quantity,omitempty"`
	Status        string     `json:"status"`
	SKU           string     `json:"sku"`
}

// Category is a named category sub-object on a storefront product.
type Category struct {
	Name string `json:"name"`
}

// Image is an image sub-object carrying a source URL.
type Image struct {
	Src string `json:"src"`
}
