package services

import "food-order-service/internal/domain"

// FilteringParam selects orders from a customer's history.
type FilteringParam func(domain.Order) bool

func DeliveredOnly(o domain.Order) bool {
	return o.Status == domain.StatusDelivered
}

func PaidOnly(o domain.Order) bool {
	return o.OrderPaid
}

func WithStatus(status domain.OrderStatus) FilteringParam {
	return func(o domain.Order) bool {
		return o.Status == status
	}
}

// AllOf matches orders accepted by every filter. With no filters it matches everything.
func AllOf(filters ...FilteringParam) FilteringParam {
	return func(o domain.Order) bool {
		for _, f := range filters {
			if !f(o) {
				return false
			}
		}
		return true
	}
}
