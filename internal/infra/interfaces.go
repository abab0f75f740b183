package infra

import (
	"context"

	"food-order-service/internal/domain"
)

// DirectoryClientInterface answers identity questions about vendors and customers.
type DirectoryClientInterface interface {
	VendorExists(ctx context.Context, vendorID string) (bool, error)
	CustomerExists(ctx context.Context, customerID string) (bool, error)
	// OrdersByCustomerID is part of the directory contract only. OrderService
	// reads customer history from its own store and never calls it.
	OrdersByCustomerID(ctx context.Context, customerID string) ([]domain.Order, error)
}

type DishClientInterface interface {
	DishExists(ctx context.Context, dishID uint64) (bool, error)
}

var (
	_ DirectoryClientInterface = (*DirectoryClient)(nil)
	_ DishClientInterface      = (*DishClient)(nil)
)
