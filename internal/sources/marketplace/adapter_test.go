package marketplace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellerstack/crosslist/internal/sources/marketplace"
	"github.com/sellerstack/crosslist/pkg/catalog"
)

func TestToItemFieldMapping(t *testing.T) {
	row := marketplace.Row{
		Title:        "Blue Mug",
		Description:  "A nice mug",
		Category:     "Kitchen",
		Price:        "12.50",
		SKU:          "MUG-1",
		Status:       "Active",
		Images:       "https://img.example/mug.jpg",
		QuantityLeft: "3",
	}

	item := marketplace.ToItem(row)

	assert.Equal(t, catalog.OriginMarketplace, item.Origin)
	assert.Equal(t, catalog.Identity("Blue Mug"), item.Identity)
	assert.Equal(t, "Blue Mug", item.Name)
	assert.Equal(t, "A nice mug", item.Description)
	assert.Equal(t, []string{"Kitchen"}, item.Categories)
	assert.Equal(t, []string{"https://img.example/mug.jpg"}, item.Images)
	assert.Equal(t, "MUG-1", item.SKU)
	assert.Equal(t, "Active", item.Status)
	assert.Equal(t, "12.5", item.Price)
	require.NotNil(t, item.StockQuantity)
	assert.Equal(t, 3, *item.StockQuantity)
}

func TestToItemDefaults(t *testing.T) {
	item := marketplace.ToItem(marketplace.Row{})

	assert.Equal(t, catalog.SentinelIdentity, item.Identity)
	assert.Empty(t, item.Name)
	assert.Empty(t, item.Description)
	assert.Empty(t, item.Categories)
	assert.Empty(t, item.Images)
	assert.Empty(t, item.SKU)
	assert.Empty(t, item.Status)
	assert.Equal(t, "0", item.Price)
	assert.Nil(t, item.StockQuantity)
}

func TestToItemPriceNormalization(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"12.50", "12.5"},
		{"19.99", "19.99"},
		{"8", "8"},
		{" 7.25 ", "7.25"},
		{"", "0"},
		{"not a price", "0"},
	}

	for _, tt := range tests {
		item := marketplace.ToItem(marketplace.Row{Title: "X", Price: tt.raw})
		assert.Equal(t, tt.want, item.Price, "price %q", tt.raw)
	}
}

func TestToItemQuantityZeroFolding(t *testing.T) {
	zero := marketplace.ToItem(marketplace.Row{Title: "X", QuantityLeft: "0"})
	assert.Nil(t, zero.StockQuantity, "quantity zero is unspecified stock, not zero")

	five := marketplace.ToItem(marketplace.Row{Title: "X", QuantityLeft: "5"})
	require.NotNil(t, five.StockQuantity)
	assert.Equal(t, 5, *five.StockQuantity)

	garbage := marketplace.ToItem(marketplace.Row{Title: "X", QuantityLeft: "many"})
	assert.Nil(t, garbage.StockQuantity)
}

func TestToItemsPreservesOrder(t *testing.T) {
	rows := []marketplace.Row{
		{Title: "Zebra Print"},
		{Title: "Apple Bowl"},
	}

	items := marketplace.ToItems(rows)
	require.Len(t, items, 2)
	assert.Equal(t, "Zebra Print", items[0].Name)
	assert.Equal(t, "Apple Bowl", items[1].Name)
}
