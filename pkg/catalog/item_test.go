package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellerstack/crosslist/pkg/catalog"
)

func TestNormalizeStockZeroFolding(t *testing.T) {
	assert.Nil(t, catalog.NormalizeStock(0), "quantity zero folds to unspecified")
	assert.Nil(t, catalog.NormalizeStock(-3))

	five := catalog.NormalizeStock(5)
	require.NotNil(t, five)
	assert.Equal(t, 5, *five)
}

func TestActiveListing(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"active", true},
		{"Active", true},
		{"ACTIVE", true},
		{"Sold", false},
		{"draft", false},
		{"", false},
	}

	for _, tt := range tests {
		item := catalog.Item{Status: tt.status}
		assert.Equal(t, tt.want, item.ActiveListing(), "status %q", tt.status)
	}
}

func TestJoinedCategories(t *testing.T) {
	item := catalog.Item{Categories: []string{"Kitchen", "Ceramics"}}
	assert.Equal(t, "Kitchen, Ceramics", item.JoinedCategories())

	assert.Empty(t, catalog.Item{}.JoinedCategories())
}
