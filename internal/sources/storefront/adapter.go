package storefront

import (
	"github.com/sellerstack/crosslist/pkg/catalog"
)

// ToItem converts a storefront-native product into a canonical item.
// Stock quantity zero folds to unspecified, the same policy the
// marketplace adapter applies. Identity is computed from the raw name.
func ToItem(p Product) catalog.Item {
	categories := make([]string, 0, len(p.Categories))
	for _, c := range p.Categories {
		categories = append(categories, c.Name)
	}

	images := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, img.Src)
	}

	var stock *int
	if p.StockQuantity != nil {
		stock = catalog.NormalizeStock(*p.StockQuantity)
	}

	return catalog.Item{
		Origin:        catalog.OriginStorefront,
		Identity:      catalog.Identity(p.Name),
		Name:          p.Name,
		Description:   p.Description,
		SKU:           p.SKU,
		Status:        p.Status,
		Price:         p.RegularPrice,
		Categories:    categories,
		Images:        images,
		StockQuantity: stock,
	}
}

// ToItems converts a fetched product list into canonical items.
func ToItems(products []Product) []catalog.Item {
	items := make([]catalog.Item, 0, len(products))
	for _, p := range products {
		items = append(items, ToItem(p))
	}
	return items
}

// CreateRequest converts a canonical item back into the storefront-native
// create-request shape. Created products are published immediately; the
// marketplace listing status does not carry over to the storefront's
// status domain.
func CreateRequest(item catalog.Item) Product {
	categories := make([]Category, 0, len(item.Categories))
	for _, name := range item.Categories {
		categories = append(categories, Category{Name: name})
	}

	images := make([]Image, 0, len(item.Images))
	for _, src := range item.Images {
		images = append(images, Image{Src: src})
	}

	return Product{
		Name:          item.Name,
		RegularPrice:  item.Price,
		Description:   item.Description,
		Categories:    categories,
		Images:        images,
		StockQuantity: item.StockQuantity,
		Status:        "publish",
		SKU:           item.SKU,
	}
}
