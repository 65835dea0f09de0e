package storefront

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/sellerstack/crosslist/internal/transport"
	"github.com/sellerstack/crosslist/pkg/errors"
	"github.com/sellerstack/crosslist/pkg/logging"
)

// markupPattern matches stray HTML tags. Some storefront installs leak
// warning markup into JSON response bodies; tags are stripped before
// decoding.
var markupPattern = regexp.MustCompile(`<[^>]*>`)

// Client talks to the storefront product API.
type Client struct {
	baseURL   string
	transport *transport.Client
}

// NewClient creates a storefront API client for the given base URL,
// authenticating with the consumer key/secret pair.
func NewClient(baseURL, consumerKey, consumerSecret string) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		transport: transport.New(&transport.BasicAuth{Key: consumerKey, Secret: consumerSecret}),
	}
}

// productsURL returns the products resource URL.
func (c *Client) productsURL() string {
	return c.baseURL + "/products"
}

// List fetches all products from the storefront. Any non-success HTTP
// status is a fetch failure.
func (c *Client) List(ctx context.Context) ([]Product, error) {
	url := c.productsURL()

	resp, err := c.transport.Get(ctx, url)
	if err != nil {
		return nil, errors.WrapAPI(url, 0, err)
	}

	body, err := transport.ReadBody(resp)
	if err != nil {
		return nil, err
	}

	var products []Product
	if err := json.Unmarshal(sanitize(body), &products); err != nil {
		return nil, errors.WrapParse("json", url, err)
	}

	logging.FromContext(ctx).Debug().
		Int("count", len(products)).
		Str("url", url).
		Msg("Fetched storefront products")

	return products, nil
}

// Create posts a new product to the storefront. Success is any 2xx; the
// created record is returned when the response body contains one, but the
// confirmation body is optional.
func (c *Client) Create(ctx context.Context, product Product) (*Product, error) {
	url := c.productsURL()

	resp, err := c.transport.Post(ctx, url, product)
	if err != nil {
		return nil, errors.WrapAPI(url, 0, err)
	}

	body, err := transport.ReadBody(resp)
	if err != nil {
		return nil, err
	}

	var created Product
	if err := json.Unmarshal(sanitize(body), &created); err != nil {
		// The create succeeded; a confirmation body is optional.
		logging.FromContext(ctx).Debug().
			Str("url", url).
			Msg("Created product returned no decodable body")
		return nil, nil
	}

	return &created, nil
}

// sanitize strips stray HTML markup from a response body.
func sanitize(body []byte) []byte {
	return markupPattern.ReplaceAll(body, nil)
}
