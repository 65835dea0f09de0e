package storefront

import (
	"context"

	"github.com/sellerstack/crosslist/pkg/catalog"
)

// ListItems fetches the storefront catalog and returns it in canonical form.
func (c *Client) ListItems(ctx context.Context) ([]catalog.Item, error) {
	products, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	return ToItems(products), nil
}

// CreateItem converts a canonical item to the storefront create-request
// shape and posts it. This is the publisher's write path.
func (c *Client) CreateItem(ctx context.Context, item catalog.Item) error {
	_, err := c.Create(ctx, CreateRequest(item))
	return err
}
