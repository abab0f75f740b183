package domain

import "time"

const (
	EventOrderCreated        = "order.created"
	EventOrderUpdated        = "order.updated"
	EventOrderDeleted        = "order.deleted"
	EventOrderStatusChanged  = "order.status_changed"
	EventOrderPaymentToggled = "order.payment_toggled"
	EventOrderRatingChanged  = "order.rating_changed"
	EventOrderDishesChanged  = "order.dishes_changed"
)

type OrderEvent struct {
	OrderID      string      `json:"orderId"`
	VendorID     string      `json:"vendorId,omitempty"`
	CustomerID   string      `json:"customerId,omitempty"`
	Status       OrderStatus `json:"status,omitempty"`
	OrderPaid    bool        `json:"orderPaid"`
	Rating       *int        `json:"rating,omitempty"`
	ListOfDishes []uint64    `json:"listOfDishes,omitempty"`
	OccurredAt   time.Time   `json:"occurredAt"`
}

func NewOrderEvent(o *Order, at time.Time) OrderEvent {
	return OrderEvent{
		OrderID:      o.OrderID,
		VendorID:     o.VendorID,
		CustomerID:   o.CustomerID,
		Status:       o.Status,
		OrderPaid:    o.OrderPaid,
		Rating:       o.Rating,
		ListOfDishes: o.ListOfDishes,
		OccurredAt:   at,
	}
}
