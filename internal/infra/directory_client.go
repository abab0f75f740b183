package infra

import (
	"context"
	"net/url"
	"time"

	"food-order-service/internal/domain"
)

// DirectoryClient talks to the user/vendor directory over REST.
type DirectoryClient struct {
	restClient
}

func NewDirectoryClient(baseURL string, timeout time.Duration) *DirectoryClient {
	return &DirectoryClient{restClient: newRestClient(baseURL, timeout)}
}

func (c *DirectoryClient) VendorExists(ctx context.Context, vendorID string) (bool, error) {
	return c.exists(ctx, "/vendors/"+url.PathEscape(vendorID))
}

func (c *DirectoryClient) CustomerExists(ctx context.Context, customerID string) (bool, error) {
	return c.exists(ctx, "/customers/"+url.PathEscape(customerID))
}

// OrdersByCustomerID returns the directory's copy of a customer's orders, empty on 404.
// It completes the directory contract; OrderService does not call it.
func (c *DirectoryClient) OrdersByCustomerID(ctx context.Context, customerID string) ([]domain.Order, error) {
	var orders []domain.Order
	found, err := c.getJSON(ctx, "/customers/"+url.PathEscape(customerID)+"/orders", &orders)
	if err != nil {
		return nil, err
	}
	if !found {
		return []domain.Order{}, nil
	}
	return orders, nil
}
