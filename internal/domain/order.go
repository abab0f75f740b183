package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Address struct {
	Street  string `json:"street" gorm:"size:255"`
	City    string `json:"city" gorm:"size:128"`
	Country string `json:"country" gorm:"size:128"`
	Zip     string `json:"zip" gorm:"size:32"`
}

// Order is a customer's purchase at a vendor. Date holds epoch milliseconds.
// A nil ListOfDishes means the list is absent, an empty one means no dishes yet.
type Order struct {
	OrderID             string          `json:"orderId" gorm:"primaryKey;size:64"`
	VendorID            string          `json:"vendorId" gorm:"size:64;not null;index;index:idx_vendor_customer,priority:1"`
	CustomerID          string          `json:"customerId" gorm:"size:64;not null;index;index:idx_vendor_customer,priority:2"`
	Address             Address         `json:"address" gorm:"embedded;embeddedPrefix:address_"`
	Date                decimal.Decimal `json:"date" gorm:"type:decimal(24,3)"`
	ListOfDishes        []uint64        `json:"listOfDishes" gorm:"serializer:json"`
	SpecialRequirements string          `json:"specialRequirements" gorm:"type:text"`
	OrderPaid           bool            `json:"orderPaid" gorm:"not null;default:false"`
	Status              OrderStatus     `json:"status" gorm:"size:32;not null;default:'pending'"`
	Rating              *int            `json:"rating,omitempty"`
	CreatedAt           time.Time       `json:"-" gorm:"autoCreateTime"`
}

func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

// RemoveDish drops the most recently added occurrence of dishID and reports whether
// it was present, so an append followed by RemoveDish restores the list.
func (o *Order) RemoveDish(dishID uint64) bool {
	for i := len(o.ListOfDishes) - 1; i >= 0; i-- {
		if o.ListOfDishes[i] == dishID {
			o.ListOfDishes = append(o.ListOfDishes[:i:i], o.ListOfDishes[i+1:]...)
			return true
		}
	}
	return false
}

// HourOfDay returns the hour of the order date in loc.
func (o *Order) HourOfDay(loc *time.Location) int {
	if loc == nil {
		loc = time.Local
	}
	return time.UnixMilli(o.Date.IntPart()).In(loc).Hour()
}
