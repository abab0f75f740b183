package services

import (
	"context"
	"time"

	"food-order-service/internal/domain"
	"food-order-service/internal/infra"
	"food-order-service/internal/repository"

	"github.com/pkg/errors"
)

// OrderService owns order mutation rules and vendor analytics. It keeps no state
// between calls; every operation is a read-modify-write against the repository.
type OrderService struct {
	repo      repository.OrderRepository
	directory infra.DirectoryClientInterface
	dishes    infra.DishClientInterface
	loc       *time.Location
}

func NewOrderService(r repository.OrderRepository, d infra.DirectoryClientInterface, dc infra.DishClientInterface) *OrderService {
	return &OrderService{
		repo:      r,
		directory: d,
		dishes:    dc,
		loc:       time.Local,
	}
}

// SetLocation sets the zone used to bucket order dates by hour of day.
func (s *OrderService) SetLocation(loc *time.Location) {
	if loc != nil {
		s.loc = loc
	}
}

func (s *OrderService) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.Wrap(ErrNullField, "order")
	}
	stored := *order
	if err := s.validateOrder(ctx, &stored); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByID(ctx, stored.OrderID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.Wrapf(ErrOrderIDAlreadyInUse, "order %q", stored.OrderID)
	}

	if err := s.repo.Create(ctx, &stored); err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			return nil, errors.Wrapf(ErrOrderIDAlreadyInUse, "order %q", stored.OrderID)
		}
		return nil, err
	}
	return &stored, nil
}

func (s *OrderService) GetOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	return s.loadOrder(ctx, id)
}

func (s *OrderService) GetAllOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, ErrNoOrders
	}
	return orders, nil
}

func (s *OrderService) DeleteOrderByID(ctx context.Context, id string) error {
	if id == "" {
		return errors.Wrap(ErrNullField, "order id")
	}
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errors.Wrapf(ErrOrderNotFound, "order %q", id)
	}
	return s.repo.DeleteByID(ctx, id)
}

// EditOrderByID replaces every field of the stored order with newOrder's.
// The order id itself cannot change.
func (s *OrderService) EditOrderByID(ctx context.Context, id string, newOrder *domain.Order) (*domain.Order, error) {
	if id == "" {
		return nil, errors.Wrap(ErrNullField, "order id")
	}
	if newOrder == nil {
		return nil, errors.Wrap(ErrNullField, "order")
	}
	replacement := *newOrder
	replacement.OrderID = id
	if err := s.validateOrder(ctx, &replacement); err != nil {
		return nil, err
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, errors.Wrapf(ErrOrderNotFound, "order %q", id)
	}
	replacement.CreatedAt = current.CreatedAt

	if err := s.repo.Save(ctx, &replacement); err != nil {
		return nil, err
	}
	return &replacement, nil
}

// validateOrder checks required ids, canonicalizes the status, checks the rating,
// and confirms vendor and customer against the directory, in that order.
func (s *OrderService) validateOrder(ctx context.Context, o *domain.Order) error {
	switch {
	case o.OrderID == "":
		return errors.Wrap(ErrNullField, "order id")
	case o.VendorID == "":
		return errors.Wrap(ErrNullField, "vendor id")
	case o.CustomerID == "":
		return errors.Wrap(ErrNullField, "customer id")
	}

	status, ok := domain.ParseOrderStatus(string(o.Status))
	if !ok {
		return errors.Wrapf(ErrInvalidOrderStatus, "status %q", o.Status)
	}
	o.Status = status

	if o.Rating != nil && !domain.ValidRating(*o.Rating) {
		return errors.Wrapf(ErrInvalidOrderRating, "rating %d", *o.Rating)
	}

	if err := s.requireVendor(ctx, o.VendorID); err != nil {
		return err
	}
	return s.requireCustomer(ctx, o.CustomerID)
}

func (s *OrderService) requireVendor(ctx context.Context, vendorID string) error {
	if vendorID == "" {
		return errors.Wrap(ErrNullField, "vendor id")
	}
	ok, err := s.directory.VendorExists(ctx, vendorID)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(ErrVendorNotFound, "vendor %q", vendorID)
	}
	return nil
}

func (s *OrderService) requireCustomer(ctx context.Context, customerID string) error {
	if customerID == "" {
		return errors.Wrap(ErrNullField, "customer id")
	}
	ok, err := s.directory.CustomerExists(ctx, customerID)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(ErrCustomerNotFound, "customer %q", customerID)
	}
	return nil
}

func (s *OrderService) loadOrder(ctx context.Context, id string) (*domain.Order, error) {
	if id == "" {
		return nil, errors.Wrap(ErrNullField, "order id")
	}
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, errors.Wrapf(ErrOrderNotFound, "order %q", id)
	}
	return o, nil
}
