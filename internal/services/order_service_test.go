package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"food-order-service/internal/domain"
	"food-order-service/internal/mocks"
	"food-order-service/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_CreateOrder(t *testing.T) {
	tests := []struct {
		name          string
		order         func() *domain.Order
		setupMocks    func(*mocks.MockOrderRepository, *mocks.MockDirectoryClient)
		expectedError error
		expectedMsg   string
	}{
		{
			name:  "successful order creation",
			order: func() *domain.Order { return CreateTestOrder(TestOrderID, 1, 2) },
			setupMocks: func(repo *mocks.MockOrderRepository, dir *mocks.MockDirectoryClient) {
				dir.On("VendorExists", mock.Anything, TestVendorID).Return(true, nil)
				dir.On("CustomerExists", mock.Anything, TestCustomerID).Return(true, nil)
				repo.On("ExistsByID", mock.Anything, TestOrderID).Return(false, nil)
				repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
			},
		},
		{
			name:          "nil order",
			order:         func() *domain.Order { return nil },
			setupMocks:    func(*mocks.MockOrderRepository, *mocks.MockDirectoryClient) {},
			expectedError: ErrNullField,
		},
		{
			name: "missing vendor id",
			order: func() *domain.Order {
				o := CreateTestOrder(TestOrderID)
				o.VendorID = ""
				return o
			},
			setupMocks:    func(*mocks.MockOrderRepository, *mocks.MockDirectoryClient) {},
			expectedError: ErrNullField,
		},
		{
			name: "unknown status",
			order: func() *domain.Order {
				o := CreateTestOrder(TestOrderID)
				o.Status = "GREEN"
				return o
			},
			setupMocks:    func(*mocks.MockOrderRepository, *mocks.MockDirectoryClient) {},
			expectedError: ErrInvalidOrderStatus,
		},
		{
			name: "rating out of range",
			order: func() *domain.Order {
				o := CreateTestOrder(TestOrderID)
				r := 6
				o.Rating = &r
				return o
			},
			setupMocks:    func(*mocks.MockOrderRepository, *mocks.MockDirectoryClient) {},
			expectedError: ErrInvalidOrderRating,
		},
		{
			name:  "vendor not found skips customer lookup",
			order: func() *domain.Order { return CreateTestOrder(TestOrderID) },
			setupMocks: func(repo *mocks.MockOrderRepository, dir *mocks.MockDirectoryClient) {
				dir.On("VendorExists", mock.Anything, TestVendorID).Return(false, nil)
			},
			expectedError: ErrVendorNotFound,
		},
		{
			name:  "customer not found",
			order: func() *domain.Order { return CreateTestOrder(TestOrderID) },
			setupMocks: func(repo *mocks.MockOrderRepository, dir *mocks.MockDirectoryClient) {
				dir.On("VendorExists", mock.Anything, TestVendorID).Return(true, nil)
				dir.On("CustomerExists", mock.Anything, TestCustomerID).Return(false, nil)
			},
			expectedError: ErrCustomerNotFound,
		},
		{
			name:  "directory unavailable",
			order: func() *domain.Order { return CreateTestOrder(TestOrderID) },
			setupMocks: func(repo *mocks.MockOrderRepository, dir *mocks.MockDirectoryClient) {
				dir.On("VendorExists", mock.Anything, TestVendorID).Return(false, errors.New("connection refused"))
			},
			expectedMsg: "connection refused",
		},
		{
			name:  "order id already in use",
			order: func() *domain.Order { return CreateTestOrder(TestOrderID) },
			setupMocks: func(repo *mocks.MockOrderRepository, dir *mocks.MockDirectoryClient) {
				dir.On("VendorExists", mock.Anything, TestVendorID).Return(true, nil)
				dir.On("CustomerExists", mock.Anything, TestCustomerID).Return(true, nil)
				repo.On("ExistsByID", mock.Anything, TestOrderID).Return(true, nil)
			},
			expectedError: ErrOrderIDAlreadyInUse,
		},
		{
			name:  "duplicate key on insert",
			order: func() *domain.Order { return CreateTestOrder(TestOrderID) },
			setupMocks: func(repo *mocks.MockOrderRepository, dir *mocks.MockDirectoryClient) {
				dir.On("VendorExists", mock.Anything, TestVendorID).Return(true, nil)
				dir.On("CustomerExists", mock.Anything, TestCustomerID).Return(true, nil)
				repo.On("ExistsByID", mock.Anything, TestOrderID).Return(false, nil)
				repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(repository.ErrDuplicateID)
			},
			expectedError: ErrOrderIDAlreadyInUse,
		},
		{
			name:  "database error",
			order: func() *domain.Order { return CreateTestOrder(TestOrderID) },
			setupMocks: func(repo *mocks.MockOrderRepository, dir *mocks.MockDirectoryClient) {
				dir.On("VendorExists", mock.Anything, TestVendorID).Return(true, nil)
				dir.On("CustomerExists", mock.Anything, TestCustomerID).Return(true, nil)
				repo.On("ExistsByID", mock.Anything, TestOrderID).Return(false, nil)
				repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(errors.New("database error"))
			},
			expectedMsg: "database error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, dir, _ := newMockedService()
			tt.setupMocks(repo, dir)

			result, err := svc.CreateOrder(context.Background(), tt.order())

			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			case tt.expectedMsg != "":
				assert.ErrorContains(t, err, tt.expectedMsg)
				assert.Nil(t, result)
			default:
				require.NoError(t, err)
				assert.Equal(t, TestOrderID, result.OrderID)
			}

			repo.AssertExpectations(t)
			dir.AssertExpectations(t)
		})
	}
}

func TestOrderService_CreateOrderCanonicalizesStatus(t *testing.T) {
	svc, repo, _ := newMemoryService()
	ctx := context.Background()

	o := CreateTestOrder(TestOrderID)
	o.Status = "Given To Courier"

	created, err := svc.CreateOrder(ctx, o)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusGivenToCourier, created.Status)
	assert.Equal(t, domain.OrderStatus("Given To Courier"), o.Status, "caller's order is not mutated")

	stored, _ := repo.FindByID(ctx, TestOrderID)
	assert.Equal(t, domain.StatusGivenToCourier, stored.Status)
}

func TestOrderService_CreateThenGetReturnsEqualOrder(t *testing.T) {
	svc, _, _ := newMemoryService()
	ctx := context.Background()

	in := CreateTestOrder(TestOrderID, 1, 2, 1)
	_, err := svc.CreateOrder(ctx, in)
	require.NoError(t, err)

	got, err := svc.GetOrderByID(ctx, TestOrderID)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestOrderService_CreateDuplicateLeavesStoreUnchanged(t *testing.T) {
	svc, repo, _ := newMemoryService()
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, CreateTestOrder(TestOrderID, 1))
	require.NoError(t, err)

	dup := CreateTestOrder(TestOrderID, 2, 3)
	dup.SpecialRequirements = "extra spicy"
	_, err = svc.CreateOrder(ctx, dup)
	assert.ErrorIs(t, err, ErrOrderIDAlreadyInUse)

	stored, _ := repo.FindByID(ctx, TestOrderID)
	assert.Equal(t, []uint64{1}, stored.ListOfDishes)
	assert.Equal(t, "no onions", stored.SpecialRequirements)
	all, _ := repo.FindAll(ctx)
	assert.Len(t, all, 1)
}

func TestOrderService_GetOrderByID(t *testing.T) {
	tests := []struct {
		name          string
		id            string
		setupMocks    func(*mocks.MockOrderRepository)
		expectedError error
		expectedMsg   string
	}{
		{
			name: "found",
			id:   TestOrderID,
			setupMocks: func(repo *mocks.MockOrderRepository) {
				repo.On("FindByID", mock.Anything, TestOrderID).Return(CreateTestOrder(TestOrderID), nil)
			},
		},
		{
			name:          "empty id",
			id:            "",
			setupMocks:    func(*mocks.MockOrderRepository) {},
			expectedError: ErrNullField,
		},
		{
			name: "not found",
			id:   "missing",
			setupMocks: func(repo *mocks.MockOrderRepository) {
				repo.On("FindByID", mock.Anything, "missing").Return(nil, nil)
			},
			expectedError: ErrOrderNotFound,
		},
		{
			name: "database error",
			id:   TestOrderID,
			setupMocks: func(repo *mocks.MockOrderRepository) {
				repo.On("FindByID", mock.Anything, TestOrderID).Return(nil, errors.New("database error"))
			},
			expectedMsg: "database error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _, _ := newMockedService()
			tt.setupMocks(repo)

			result, err := svc.GetOrderByID(context.Background(), tt.id)

			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			case tt.expectedMsg != "":
				assert.ErrorContains(t, err, tt.expectedMsg)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.id, result.OrderID)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestOrderService_GetAllOrders(t *testing.T) {
	t.Run("returns stored orders", func(t *testing.T) {
		svc, repo, _, _ := newMockedService()
		repo.On("FindAll", mock.Anything).Return([]domain.Order{*CreateTestOrder("a"), *CreateTestOrder("b")}, nil)

		orders, err := svc.GetAllOrders(context.Background())

		require.NoError(t, err)
		assert.Len(t, orders, 2)
	})

	t.Run("empty store", func(t *testing.T) {
		svc, repo, _, _ := newMockedService()
		repo.On("FindAll", mock.Anything).Return([]domain.Order{}, nil)

		_, err := svc.GetAllOrders(context.Background())

		assert.ErrorIs(t, err, ErrNoOrders)
	})
}

func TestOrderService_DeleteOrderByID(t *testing.T) {
	tests := []struct {
		name          string
		id            string
		setupMocks    func(*mocks.MockOrderRepository)
		expectedError error
	}{
		{
			name: "deletes existing order",
			id:   TestOrderID,
			setupMocks: func(repo *mocks.MockOrderRepository) {
				repo.On("ExistsByID", mock.Anything, TestOrderID).Return(true, nil)
				repo.On("DeleteByID", mock.Anything, TestOrderID).Return(nil)
			},
		},
		{
			name:          "empty id",
			setupMocks:    func(*mocks.MockOrderRepository) {},
			expectedError: ErrNullField,
		},
		{
			name: "unknown id",
			id:   "missing",
			setupMocks: func(repo *mocks.MockOrderRepository) {
				repo.On("ExistsByID", mock.Anything, "missing").Return(false, nil)
			},
			expectedError: ErrOrderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _, _ := newMockedService()
			tt.setupMocks(repo)

			err := svc.DeleteOrderByID(context.Background(), tt.id)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestOrderService_DeleteThenGetIsNotFound(t *testing.T) {
	svc, _, _ := newMemoryService()
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, CreateTestOrder(TestOrderID))
	require.NoError(t, err)
	require.NoError(t, svc.DeleteOrderByID(ctx, TestOrderID))

	_, err = svc.GetOrderByID(ctx, TestOrderID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.ErrorIs(t, svc.DeleteOrderByID(ctx, TestOrderID), ErrOrderNotFound)
}

func TestOrderService_EditOrderByID(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name          string
		id            string
		order         func() *domain.Order
		setupMocks    func(*mocks.MockOrderRepository, *mocks.MockDirectoryClient)
		expectedError error
	}{
		{
			name: "replaces stored order and keeps its id",
			id:   TestOrderID,
			order: func() *domain.Order {
				o := CreateTestOrder("other-id", 3)
				o.Status = "Delivered"
				return o
			},
			setupMocks: func(repo *mocks.MockOrderRepository, dir *mocks.MockDirectoryClient) {
				dir.On("VendorExists", mock.Anything, TestVendorID).Return(true, nil)
				dir.On("CustomerExists", mock.Anything, TestCustomerID).Return(true, nil)
				current := CreateTestOrder(TestOrderID, 1)
				current.CreatedAt = created
				repo.On("FindByID", mock.Anything, TestOrderID).Return(current, nil)
				repo.On("Save", mock.Anything, mock.MatchedBy(func(o *domain.Order) bool {
					return o.OrderID == TestOrderID &&
						o.Status == domain.StatusDelivered &&
						o.CreatedAt.Equal(created) &&
						len(o.ListOfDishes) == 1 && o.ListOfDishes[0] == 3
				})).Return(nil)
			},
		},
		{
			name:          "empty id",
			order:         func() *domain.Order { return CreateTestOrder(TestOrderID) },
			setupMocks:    func(*mocks.MockOrderRepository, *mocks.MockDirectoryClient) {},
			expectedError: ErrNullField,
		},
		{
			name:          "nil replacement",
			id:            TestOrderID,
			order:         func() *domain.Order { return nil },
			setupMocks:    func(*mocks.MockOrderRepository, *mocks.MockDirectoryClient) {},
			expectedError: ErrNullField,
		},
		{
			name: "vendor not found",
			id:   TestOrderID,
			order: func() *domain.Order {
				o := CreateTestOrder(TestOrderID)
				o.VendorID = "ghost"
				return o
			},
			setupMocks: func(repo *mocks.MockOrderRepository, dir *mocks.MockDirectoryClient) {
				dir.On("VendorExists", mock.Anything, "ghost").Return(false, nil)
			},
			expectedError: ErrVendorNotFound,
		},
		{
			name:  "order not found",
			id:    "missing",
			order: func() *domain.Order { return CreateTestOrder(TestOrderID) },
			setupMocks: func(repo *mocks.MockOrderRepository, dir *mocks.MockDirectoryClient) {
				dir.On("VendorExists", mock.Anything, TestVendorID).Return(true, nil)
				dir.On("CustomerExists", mock.Anything, TestCustomerID).Return(true, nil)
				repo.On("FindByID", mock.Anything, "missing").Return(nil, nil)
			},
			expectedError: ErrOrderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, dir, _ := newMockedService()
			tt.setupMocks(repo, dir)

			result, err := svc.EditOrderByID(context.Background(), tt.id, tt.order())

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.id, result.OrderID)
			}
			repo.AssertExpectations(t)
			dir.AssertExpectations(t)
		})
	}
}

func TestErrorClassification(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), ErrDishNotFound)

	assert.True(t, IsNotFound(wrapped))
	assert.True(t, IsOrderError(wrapped))
	assert.True(t, IsInvalidInput(ErrInvalidOrderRating))
	assert.False(t, IsInvalidInput(ErrOrderNotFound))
	assert.True(t, IsOrderError(ErrNoOrders))
	assert.False(t, IsOrderError(errors.New("timeout")))
}
