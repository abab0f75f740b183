package services

import (
	"context"

	"food-order-service/internal/domain"

	"github.com/pkg/errors"
)

func (s *OrderService) OrderIsPaid(ctx context.Context, id string) (bool, error) {
	o, err := s.loadOrder(ctx, id)
	if err != nil {
		return false, err
	}
	return o.OrderPaid, nil
}

// OrderIsPaidUpdate flips the paid flag.
func (s *OrderService) OrderIsPaidUpdate(ctx context.Context, id string) (*domain.Order, error) {
	o, err := s.loadOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	o.OrderPaid = !o.OrderPaid
	if err := s.repo.Save(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *OrderService) GetStatusOfOrderByID(ctx context.Context, id string) (domain.OrderStatus, error) {
	o, err := s.loadOrder(ctx, id)
	if err != nil {
		return "", err
	}
	return o.Status, nil
}

// UpdateStatusOfOrderByID sets any known status regardless of the current one.
func (s *OrderService) UpdateStatusOfOrderByID(ctx context.Context, id, text string) (*domain.Order, error) {
	o, err := s.loadOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	status, ok := domain.ParseOrderStatus(text)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidOrderStatus, "status %q", text)
	}
	o.Status = status
	if err := s.repo.Save(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// GetOrderRatingByID returns nil when the order has not been rated.
func (s *OrderService) GetOrderRatingByID(ctx context.Context, id string) (*int, error) {
	o, err := s.loadOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.Rating == nil {
		return nil, nil
	}
	r := *o.Rating
	return &r, nil
}

func (s *OrderService) EditOrderRatingByID(ctx context.Context, id string, rating int) (*domain.Order, error) {
	o, err := s.loadOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.ValidRating(rating) {
		return nil, errors.Wrapf(ErrInvalidOrderRating, "rating %d", rating)
	}
	o.Rating = &rating
	if err := s.repo.Save(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}
