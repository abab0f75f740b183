package infra

import (
	"context"
	"strconv"
	"time"
)

// DishClient asks the dish catalog whether a dish exists.
type DishClient struct {
	restClient
}

func NewDishClient(baseURL string, timeout time.Duration) *DishClient {
	return &DishClient{restClient: newRestClient(baseURL, timeout)}
}

func (c *DishClient) DishExists(ctx context.Context, dishID uint64) (bool, error) {
	return c.exists(ctx, "/dishes/"+strconv.FormatUint(dishID, 10))
}
