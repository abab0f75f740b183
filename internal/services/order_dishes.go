package services

import (
	"context"

	"food-order-service/internal/domain"

	"github.com/pkg/errors"
)

// AddDishToOrder appends dishID to the order. The same dish may appear many times.
func (s *OrderService) AddDishToOrder(ctx context.Context, orderID string, dishID uint64) (*domain.Order, error) {
	if orderID == "" || dishID == 0 {
		return nil, errors.Wrap(ErrNullField, "order id and dish id")
	}
	o, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := s.requireDish(ctx, dishID); err != nil {
		return nil, err
	}

	o.ListOfDishes = append(o.ListOfDishes, dishID)
	if err := s.repo.Save(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// RemoveDishFromOrder drops one occurrence of dishID, the last one added. The dish
// must exist in the catalog even when the order does not contain it.
func (s *OrderService) RemoveDishFromOrder(ctx context.Context, orderID string, dishID uint64) (*domain.Order, error) {
	if orderID == "" || dishID == 0 {
		return nil, errors.Wrap(ErrNullField, "order id and dish id")
	}
	o, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.ListOfDishes == nil {
		return nil, errors.Wrapf(ErrNullField, "dish list of order %q", orderID)
	}
	if err := s.requireDish(ctx, dishID); err != nil {
		return nil, err
	}

	if !o.RemoveDish(dishID) {
		return o, nil
	}
	if err := s.repo.Save(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// AreAllDishesAvailable stops at the first dish the catalog no longer has.
func (s *OrderService) AreAllDishesAvailable(ctx context.Context, orderID string) (bool, error) {
	o, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return false, err
	}
	for _, id := range o.ListOfDishes {
		ok, err := s.dishes.DishExists(ctx, id)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// IsOrderValid reports whether the order is paid and every dish is available.
// Service failures such as a missing order count as invalid; collaborator
// failures are returned.
func (s *OrderService) IsOrderValid(ctx context.Context, orderID string) (bool, error) {
	paid, err := s.OrderIsPaid(ctx, orderID)
	if err != nil {
		return false, unlessOrderError(err)
	}
	if !paid {
		return false, nil
	}

	available, err := s.AreAllDishesAvailable(ctx, orderID)
	if err != nil {
		return false, unlessOrderError(err)
	}
	return available, nil
}

func (s *OrderService) requireDish(ctx context.Context, dishID uint64) error {
	ok, err := s.dishes.DishExists(ctx, dishID)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(ErrDishNotFound, "dish %d", dishID)
	}
	return nil
}

func unlessOrderError(err error) error {
	if IsOrderError(err) {
		return nil
	}
	return err
}
