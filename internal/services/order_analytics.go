package services

import (
	"context"

	"food-order-service/internal/domain"

	"github.com/pkg/errors"
)

const hoursPerDay = 24

func (s *OrderService) GetOrderVolume(ctx context.Context, vendorID string) (int64, error) {
	if err := s.requireVendor(ctx, vendorID); err != nil {
		return 0, err
	}
	n, err := s.repo.CountByVendor(ctx, vendorID)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, errors.Wrapf(ErrNoOrders, "vendor %q", vendorID)
	}
	return n, nil
}

// GetOrderVolumeByTime returns 24 counters, index 0 being midnight to 1am in the
// service location.
func (s *OrderService) GetOrderVolumeByTime(ctx context.Context, vendorID string) ([]int, error) {
	if err := s.requireVendor(ctx, vendorID); err != nil {
		return nil, err
	}
	orders, err := s.repo.FindByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, errors.Wrapf(ErrNoOrders, "vendor %q", vendorID)
	}

	buckets := make([]int, hoursPerDay)
	for i := range orders {
		buckets[orders[i].HourOfDay(s.loc)]++
	}
	return buckets, nil
}

// GetDishesSortedByVolume returns the vendor's dishes, most ordered first.
// A vendor without orders gets an empty list.
func (s *OrderService) GetDishesSortedByVolume(ctx context.Context, vendorID string) ([]domain.Dish, error) {
	if err := s.requireVendor(ctx, vendorID); err != nil {
		return nil, err
	}
	dishes, err := s.repo.DishOccurrenceRanking(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if dishes == nil {
		dishes = []domain.Dish{}
	}
	return dishes, nil
}

func (s *OrderService) GetOrdersFromCustomerAtVendor(ctx context.Context, vendorID, customerID string) ([]domain.Order, error) {
	if err := s.requireVendor(ctx, vendorID); err != nil {
		return nil, err
	}
	if err := s.requireCustomer(ctx, customerID); err != nil {
		return nil, err
	}
	orders, err := s.repo.FindByVendorAndCustomer(ctx, vendorID, customerID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, errors.Wrapf(ErrNoOrders, "customer %q at vendor %q", customerID, vendorID)
	}
	return orders, nil
}

// GetPastOrdersByCustomerID returns the customer's orders accepted by filter.
// A nil filter accepts every order.
func (s *OrderService) GetPastOrdersByCustomerID(ctx context.Context, customerID string, filter FilteringParam) ([]domain.Order, error) {
	if err := s.requireCustomer(ctx, customerID); err != nil {
		return nil, err
	}
	orders, err := s.repo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, errors.Wrapf(ErrNoOrders, "customer %q", customerID)
	}
	if filter == nil {
		return orders, nil
	}

	var out []domain.Order
	for _, o := range orders {
		if filter(o) {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return nil, errors.Wrapf(ErrNoOrders, "customer %q matching filter", customerID)
	}
	return out, nil
}
