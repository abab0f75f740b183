package domain

import "strings"

type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusAccepted       OrderStatus = "accepted"
	StatusRejected       OrderStatus = "rejected"
	StatusPreparing      OrderStatus = "preparing"
	StatusGivenToCourier OrderStatus = "given_to_courier"
	StatusOnTransit      OrderStatus = "on_transit"
	StatusDelivered      OrderStatus = "delivered"
)

// OrderStatuses lists every status in lifecycle order. Any status may follow any other.
var OrderStatuses = []OrderStatus{
	StatusPending,
	StatusAccepted,
	StatusRejected,
	StatusPreparing,
	StatusGivenToCourier,
	StatusOnTransit,
	StatusDelivered,
}

var displayNames = map[OrderStatus]string{
	StatusPending:        "pending",
	StatusAccepted:       "accepted",
	StatusRejected:       "rejected",
	StatusPreparing:      "preparing",
	StatusGivenToCourier: "given to courier",
	StatusOnTransit:      "on-transit",
	StatusDelivered:      "delivered",
}

var statusLookup = func() map[string]OrderStatus {
	m := make(map[string]OrderStatus, 2*len(displayNames))
	for s, name := range displayNames {
		m[name] = s
		m[string(s)] = s
	}
	return m
}()

// ParseOrderStatus canonicalizes free text. Matching is case-insensitive against
// both the display form and the stored value.
func ParseOrderStatus(text string) (OrderStatus, bool) {
	s, ok := statusLookup[strings.ToLower(strings.TrimSpace(text))]
	return s, ok
}

func (s OrderStatus) Valid() bool {
	_, ok := displayNames[s]
	return ok
}

func (s OrderStatus) DisplayName() string {
	if name, ok := displayNames[s]; ok {
		return name
	}
	return string(s)
}
