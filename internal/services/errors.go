package services

import "github.com/pkg/errors"

var (
	ErrNullField           = errors.New("required field is missing")
	ErrOrderNotFound       = errors.New("order not found")
	ErrVendorNotFound      = errors.New("vendor not found")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrDishNotFound        = errors.New("dish not found")
	ErrOrderIDAlreadyInUse = errors.New("order id already in use")
	ErrInvalidOrderStatus  = errors.New("invalid order status")
	ErrInvalidOrderRating  = errors.New("invalid order rating")
	ErrNoOrders            = errors.New("no orders found")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrVendorNotFound) ||
		errors.Is(err, ErrCustomerNotFound) ||
		errors.Is(err, ErrDishNotFound)
}

func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidOrderStatus) || errors.Is(err, ErrInvalidOrderRating)
}

// IsOrderError reports whether err is one of the service's own failure kinds,
// as opposed to a collaborator or store failure.
func IsOrderError(err error) bool {
	return IsNotFound(err) ||
		IsInvalidInput(err) ||
		errors.Is(err, ErrNullField) ||
		errors.Is(err, ErrOrderIDAlreadyInUse) ||
		errors.Is(err, ErrNoOrders)
}
