package repository

import (
	"context"

	"food-order-service/internal/domain"

	"github.com/pkg/errors"
)

var ErrDuplicateID = errors.New("order id already stored")

// OrderRepository is the Order Store. Lookups return (nil, nil) when the row is absent
// and derived queries return an empty slice when nothing matches.
type OrderRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	Create(ctx context.Context, order *domain.Order) error
	Save(ctx context.Context, order *domain.Order) error
	DeleteByID(ctx context.Context, id string) error

	CountByVendor(ctx context.Context, vendorID string) (int64, error)
	FindByVendor(ctx context.Context, vendorID string) ([]domain.Order, error)
	FindByVendorAndCustomer(ctx context.Context, vendorID, customerID string) ([]domain.Order, error)
	FindByCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
	// DishOccurrenceRanking returns the vendor's ordered dishes, most frequent first.
	DishOccurrenceRanking(ctx context.Context, vendorID string) ([]domain.Dish, error)
}
