package services

import (
	"context"
	"time"

	"food-order-service/internal/domain"
	"food-order-service/internal/mocks"
	"food-order-service/internal/repository"

	"github.com/shopspring/decimal"
)

const (
	TestVendorID   = "vendor-1"
	TestCustomerID = "customer-1"
	TestOrderID    = "order-1"
)

func CreateTestOrder(id string, dishes ...uint64) *domain.Order {
	rating := 4
	return &domain.Order{
		OrderID:    id,
		VendorID:   TestVendorID,
		CustomerID: TestCustomerID,
		Address: domain.Address{
			Street:  "1 Market St",
			City:    "Springfield",
			Country: "US",
			Zip:     "12345",
		},
		Date:                decimal.NewFromInt(time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC).UnixMilli()),
		ListOfDishes:        dishes,
		SpecialRequirements: "no onions",
		Status:              domain.StatusPending,
		Rating:              &rating,
	}
}

func newMockedService() (*OrderService, *mocks.MockOrderRepository, *mocks.MockDirectoryClient, *mocks.MockDishClient) {
	repo := new(mocks.MockOrderRepository)
	dir := new(mocks.MockDirectoryClient)
	dishes := new(mocks.MockDishClient)
	return NewOrderService(repo, dir, dishes), repo, dir, dishes
}

// memoryRepo is an in-memory Order Store that copies orders in and out.
type memoryRepo struct {
	orders map[string]domain.Order
	ids    []string
	dishes map[uint64]domain.Dish
}

var _ repository.OrderRepository = (*memoryRepo)(nil)

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		orders: make(map[string]domain.Order),
		dishes: make(map[uint64]domain.Dish),
	}
}

func cloneOrder(o domain.Order) domain.Order {
	if o.ListOfDishes != nil {
		o.ListOfDishes = append(make([]uint64, 0, len(o.ListOfDishes)), o.ListOfDishes...)
	}
	if o.Rating != nil {
		r := *o.Rating
		o.Rating = &r
	}
	return o
}

func (m *memoryRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	c := cloneOrder(o)
	return &c, nil
}

func (m *memoryRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	_, ok := m.orders[id]
	return ok, nil
}

func (m *memoryRepo) FindAll(_ context.Context) ([]domain.Order, error) {
	return m.filter(func(domain.Order) bool { return true }), nil
}

func (m *memoryRepo) Create(_ context.Context, order *domain.Order) error {
	if _, ok := m.orders[order.OrderID]; ok {
		return repository.ErrDuplicateID
	}
	m.ids = append(m.ids, order.OrderID)
	m.orders[order.OrderID] = cloneOrder(*order)
	return nil
}

func (m *memoryRepo) Save(_ context.Context, order *domain.Order) error {
	if _, ok := m.orders[order.OrderID]; !ok {
		m.ids = append(m.ids, order.OrderID)
	}
	m.orders[order.OrderID] = cloneOrder(*order)
	return nil
}

func (m *memoryRepo) DeleteByID(_ context.Context, id string) error {
	delete(m.orders, id)
	for i, v := range m.ids {
		if v == id {
			m.ids = append(m.ids[:i], m.ids[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memoryRepo) CountByVendor(_ context.Context, vendorID string) (int64, error) {
	return int64(len(m.filter(func(o domain.Order) bool { return o.VendorID == vendorID }))), nil
}

func (m *memoryRepo) FindByVendor(_ context.Context, vendorID string) ([]domain.Order, error) {
	return m.filter(func(o domain.Order) bool { return o.VendorID == vendorID }), nil
}

func (m *memoryRepo) FindByVendorAndCustomer(_ context.Context, vendorID, customerID string) ([]domain.Order, error) {
	return m.filter(func(o domain.Order) bool {
		return o.VendorID == vendorID && o.CustomerID == customerID
	}), nil
}

func (m *memoryRepo) FindByCustomer(_ context.Context, customerID string) ([]domain.Order, error) {
	return m.filter(func(o domain.Order) bool { return o.CustomerID == customerID }), nil
}

func (m *memoryRepo) DishOccurrenceRanking(ctx context.Context, vendorID string) ([]domain.Dish, error) {
	orders, _ := m.FindByVendor(ctx, vendorID)
	out := []domain.Dish{}
	for _, id := range domain.RankDishIDs(orders) {
		if d, ok := m.dishes[id]; ok && d.VendorID == vendorID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memoryRepo) filter(keep func(domain.Order) bool) []domain.Order {
	out := []domain.Order{}
	for _, id := range m.ids {
		if o := m.orders[id]; keep(o) {
			out = append(out, cloneOrder(o))
		}
	}
	return out
}

type fakeDirectory struct {
	vendors   map[string]bool
	customers map[string]bool
}

func (f fakeDirectory) VendorExists(_ context.Context, id string) (bool, error) {
	return f.vendors[id], nil
}

func (f fakeDirectory) CustomerExists(_ context.Context, id string) (bool, error) {
	return f.customers[id], nil
}

func (f fakeDirectory) OrdersByCustomerID(_ context.Context, _ string) ([]domain.Order, error) {
	return []domain.Order{}, nil
}

type fakeCatalog map[uint64]bool

func (f fakeCatalog) DishExists(_ context.Context, id uint64) (bool, error) {
	return f[id], nil
}

func newMemoryService() (*OrderService, *memoryRepo, fakeCatalog) {
	repo := newMemoryRepo()
	dir := fakeDirectory{
		vendors:   map[string]bool{TestVendorID: true, "vendor-2": true},
		customers: map[string]bool{TestCustomerID: true, "customer-2": true, "customer-empty": true},
	}
	catalog := fakeCatalog{1: true, 2: true, 3: true}
	svc := NewOrderService(repo, dir, catalog)
	svc.SetLocation(time.UTC)
	return svc, repo, catalog
}
