package wms

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/wmspro/wmsui/internal/errors"
	"github.com/wmspro/wmsui/pkg/api"
)

// APIPrefix is where the backend mounts its inventory JSON endpoints.
const APIPrefix = "/inventory/api"

// Client calls the inventory endpoints.
type Client struct {
	api *api.Client
}

// New creates a Client over c.
func New(c *api.Client) *Client {
	return &Client{api: c}
}

// ListProducts returns the products matching opts.
func (c *Client) ListProducts(ctx context.Context, opts ListOptions) ([]Product, error) {
	q := url.Values{}
	if opts.Search != "" {
		q.Set("search", opts.Search)
	}
	if opts.CategoryID != 0 {
		q.Set("category_id", strconv.Itoa(opts.CategoryID))
	}
	if opts.Status != "" {
		q.Set("status", opts.Status)
	}
	if opts.SortBy != "" {
		q.Set("sort_by", opts.SortBy)
	}
	if opts.Desc {
		q.Set("sort_order", "desc")
	}

	path := APIPrefix + "/products"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	return api.GetJSON[[]Product](ctx, c.api, path)
}

// GetProduct returns one product.
func (c *Client) GetProduct(ctx context.Context, id int) (*Product, error) {
	return getPtr[Product](ctx, c.api, productPath(id))
}

// CreateProduct creates a product. Name is required.
func (c *Client) CreateProduct(ctx context.Context, in ProductInput) (*Product, error) {
	if in.Name == "" {
		return nil, errors.New("W040").WithMessage("Product name is required")
	}
	p, err := api.PostJSON[Product](ctx, c.api, APIPrefix+"/products", in)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProduct changes the fields set in in.
func (c *Client) UpdateProduct(ctx context.Context, id int, in ProductInput) (*Product, error) {
	p, err := api.PutJSON[Product](ctx, c.api, productPath(id), in)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteProduct deletes a product.
func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.api.Delete(ctx, productPath(id), nil)
}

// AdjustStock adds or removes stock and returns the updated product.
func (c *Client) AdjustStock(ctx context.Context, id int, adj Adjustment) (*Product, error) {
	if adj.Type != AdjustAdd && adj.Type != AdjustRemove {
		return nil, errors.New("W040").WithMessage(fmt.Sprintf("Unknown adjustment type %q", adj.Type))
	}
	if adj.Quantity <= 0 {
		return nil, errors.New("W040").WithMessage("Quantity must be positive")
	}
	p, err := api.PostJSON[Product](ctx, c.api, productPath(id)+"/adjust", adj)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListCategories returns all categories.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	return api.GetJSON[[]Category](ctx, c.api, APIPrefix+"/categories")
}

func productPath(id int) string {
	return fmt.Sprintf("%s/products/%d", APIPrefix, id)
}

func getPtr[T any](ctx context.Context, c *api.Client, path string) (*T, error) {
	v, err := api.GetJSON[T](ctx, c, path)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
