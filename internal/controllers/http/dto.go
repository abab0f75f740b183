package http

import (
	"food-order-service/internal/domain"

	"github.com/shopspring/decimal"
)

type OrderRequest struct {
	OrderID             string          `json:"orderId"`
	VendorID            string          `json:"vendorId" binding:"required"`
	CustomerID          string          `json:"customerId" binding:"required"`
	Address             domain.Address  `json:"address"`
	Date                decimal.Decimal `json:"date"`
	ListOfDishes        []uint64        `json:"listOfDishes"`
	SpecialRequirements string          `json:"specialRequirements"`
	OrderPaid           bool            `json:"orderPaid"`
	Status              string          `json:"status"`
	Rating              *int            `json:"rating"`
}

// ToOrder builds the domain order. A missing status means a new, pending order.
func (r OrderRequest) ToOrder() *domain.Order {
	status := domain.OrderStatus(r.Status)
	if r.Status == "" {
		status = domain.StatusPending
	}
	return &domain.Order{
		OrderID:             r.OrderID,
		VendorID:            r.VendorID,
		CustomerID:          r.CustomerID,
		Address:             r.Address,
		Date:                r.Date,
		ListOfDishes:        r.ListOfDishes,
		SpecialRequirements: r.SpecialRequirements,
		OrderPaid:           r.OrderPaid,
		Status:              status,
		Rating:              r.Rating,
	}
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type RatingRequest struct {
	Rating *int `json:"rating" binding:"required"`
}

type StatusResponse struct {
	OrderID     string             `json:"orderId"`
	Status      domain.OrderStatus `json:"status"`
	DisplayName string             `json:"displayName"`
}

type PaidResponse struct {
	OrderID   string `json:"orderId"`
	OrderPaid bool   `json:"orderPaid"`
}

type RatingResponse struct {
	OrderID string `json:"orderId"`
	Rating  *int   `json:"rating"`
}

type CheckResponse struct {
	OrderID string `json:"orderId"`
	Result  bool   `json:"result"`
}

type VolumeResponse struct {
	VendorID string `json:"vendorId"`
	Volume   int64  `json:"volume"`
}

type PeakTimesResponse struct {
	VendorID string `json:"vendorId"`
	Hours    []int  `json:"hours"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
