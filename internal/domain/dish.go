package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Dish is owned by the catalog service; orders only reference it by ID.
type Dish struct {
	ID       uint64          `json:"dishId" gorm:"primaryKey"`
	VendorID string          `json:"vendorId" gorm:"size:64;not null;index"`
	Name     string          `json:"name" gorm:"size:255"`
	Price    decimal.Decimal `json:"price" gorm:"type:decimal(12,2)"`
}

// RankDishIDs counts dish occurrences across orders and returns the IDs by descending
// count. Ties keep the order in which dishes were first seen.
func RankDishIDs(orders []Order) []uint64 {
	counts := make(map[uint64]int)
	var seen []uint64
	for _, o := range orders {
		for _, id := range o.ListOfDishes {
			if _, ok := counts[id]; !ok {
				seen = append(seen, id)
			}
			counts[id]++
		}
	}

	sort.SliceStable(seen, func(i, j int) bool {
		return counts[seen[i]] > counts[seen[j]]
	})
	return seen
}
