package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"food-order-service/internal/domain"
	"food-order-service/internal/infra/rabbitmq"
	"food-order-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service   *services.OrderService
	publisher rabbitmq.PublisherInterface
	now       func() time.Time
}

func NewHandler(s *services.OrderService, p rabbitmq.PublisherInterface) *Handler {
	if p == nil {
		p = rabbitmq.NopPublisher{}
	}
	return &Handler{service: s, publisher: p, now: time.Now}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	orders := r.Group("/orders")
	orders.POST("", h.CreateOrder)
	orders.GET("", h.GetAllOrders)
	orders.GET("/:id", h.GetOrder)
	orders.PUT("/:id", h.EditOrder)
	orders.DELETE("/:id", h.DeleteOrder)
	orders.GET("/:id/paid", h.GetPaid)
	orders.PATCH("/:id/paid", h.TogglePaid)
	orders.GET("/:id/status", h.GetStatus)
	orders.PUT("/:id/status", h.UpdateStatus)
	orders.GET("/:id/rating", h.GetRating)
	orders.PUT("/:id/rating", h.EditRating)
	orders.POST("/:id/dishes/:dishId", h.AddDish)
	orders.DELETE("/:id/dishes/:dishId", h.RemoveDish)
	orders.GET("/:id/dishes/available", h.DishesAvailable)
	orders.GET("/:id/valid", h.IsValid)

	vendors := r.Group("/vendors/:vendorId")
	vendors.GET("/analytics/volume", h.OrderVolume)
	vendors.GET("/analytics/peak-times", h.PeakTimes)
	vendors.GET("/analytics/popular-dishes", h.PopularDishes)
	vendors.GET("/customers/:customerId/orders", h.CustomerOrdersAtVendor)

	r.GET("/customers/:customerId/orders", h.CustomerHistory)
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	order, err := h.service.CreateOrder(c.Request.Context(), req.ToOrder())
	if err != nil {
		writeError(c, err)
		return
	}
	h.publish(c.Request.Context(), domain.EventOrderCreated, order)
	c.JSON(http.StatusCreated, order)
}

func (h *Handler) GetAllOrders(c *gin.Context) {
	orders, err := h.service.GetAllOrders(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.service.GetOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) EditOrder(c *gin.Context) {
	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	order, err := h.service.EditOrderByID(c.Request.Context(), c.Param("id"), req.ToOrder())
	if err != nil {
		writeError(c, err)
		return
	}
	h.publish(c.Request.Context(), domain.EventOrderUpdated, order)
	c.JSON(http.StatusOK, order)
}

func (h *Handler) DeleteOrder(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.DeleteOrderByID(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	h.publish(c.Request.Context(), domain.EventOrderDeleted, &domain.Order{OrderID: id})
	c.Status(http.StatusNoContent)
}

func (h *Handler) GetPaid(c *gin.Context) {
	id := c.Param("id")
	paid, err := h.service.OrderIsPaid(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, PaidResponse{OrderID: id, OrderPaid: paid})
}

func (h *Handler) TogglePaid(c *gin.Context) {
	order, err := h.service.OrderIsPaidUpdate(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	h.publish(c.Request.Context(), domain.EventOrderPaymentToggled, order)
	c.JSON(http.StatusOK, order)
}

func (h *Handler) GetStatus(c *gin.Context) {
	id := c.Param("id")
	status, err := h.service.GetStatusOfOrderByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, StatusResponse{OrderID: id, Status: status, DisplayName: status.DisplayName()})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	order, err := h.service.UpdateStatusOfOrderByID(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	h.publish(c.Request.Context(), domain.EventOrderStatusChanged, order)
	c.JSON(http.StatusOK, order)
}

func (h *Handler) GetRating(c *gin.Context) {
	id := c.Param("id")
	rating, err := h.service.GetOrderRatingByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, RatingResponse{OrderID: id, Rating: rating})
}

func (h *Handler) EditRating(c *gin.Context) {
	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	order, err := h.service.EditOrderRatingByID(c.Request.Context(), c.Param("id"), *req.Rating)
	if err != nil {
		writeError(c, err)
		return
	}
	h.publish(c.Request.Context(), domain.EventOrderRatingChanged, order)
	c.JSON(http.StatusOK, order)
}

func (h *Handler) AddDish(c *gin.Context) {
	dishID, ok := dishParam(c)
	if !ok {
		return
	}
	order, err := h.service.AddDishToOrder(c.Request.Context(), c.Param("id"), dishID)
	if err != nil {
		writeError(c, err)
		return
	}
	h.publish(c.Request.Context(), domain.EventOrderDishesChanged, order)
	c.JSON(http.StatusOK, order)
}

func (h *Handler) RemoveDish(c *gin.Context) {
	dishID, ok := dishParam(c)
	if !ok {
		return
	}
	order, err := h.service.RemoveDishFromOrder(c.Request.Context(), c.Param("id"), dishID)
	if err != nil {
		writeError(c, err)
		return
	}
	h.publish(c.Request.Context(), domain.EventOrderDishesChanged, order)
	c.JSON(http.StatusOK, order)
}

func (h *Handler) DishesAvailable(c *gin.Context) {
	id := c.Param("id")
	ok, err := h.service.AreAllDishesAvailable(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, CheckResponse{OrderID: id, Result: ok})
}

func (h *Handler) IsValid(c *gin.Context) {
	id := c.Param("id")
	ok, err := h.service.IsOrderValid(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, CheckResponse{OrderID: id, Result: ok})
}

func (h *Handler) OrderVolume(c *gin.Context) {
	vendorID := c.Param("vendorId")
	n, err := h.service.GetOrderVolume(c.Request.Context(), vendorID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, VolumeResponse{VendorID: vendorID, Volume: n})
}

func (h *Handler) PeakTimes(c *gin.Context) {
	vendorID := c.Param("vendorId")
	hours, err := h.service.GetOrderVolumeByTime(c.Request.Context(), vendorID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, PeakTimesResponse{VendorID: vendorID, Hours: hours})
}

func (h *Handler) PopularDishes(c *gin.Context) {
	dishes, err := h.service.GetDishesSortedByVolume(c.Request.Context(), c.Param("vendorId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dishes)
}

func (h *Handler) CustomerOrdersAtVendor(c *gin.Context) {
	orders, err := h.service.GetOrdersFromCustomerAtVendor(c.Request.Context(), c.Param("vendorId"), c.Param("customerId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// CustomerHistory accepts optional status and paid query filters.
func (h *Handler) CustomerHistory(c *gin.Context) {
	var filters []services.FilteringParam
	if text := c.Query("status"); text != "" {
		status, ok := domain.ParseOrderStatus(text)
		if !ok {
			writeError(c, errors.Wrapf(services.ErrInvalidOrderStatus, "status %q", text))
			return
		}
		filters = append(filters, services.WithStatus(status))
	}
	if text := c.Query("paid"); text != "" {
		paid, err := strconv.ParseBool(text)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "paid must be a boolean"})
			return
		}
		if paid {
			filters = append(filters, services.PaidOnly)
		} else {
			filters = append(filters, func(o domain.Order) bool { return !o.OrderPaid })
		}
	}

	var filter services.FilteringParam
	if len(filters) > 0 {
		filter = services.AllOf(filters...)
	}

	orders, err := h.service.GetPastOrdersByCustomerID(c.Request.Context(), c.Param("customerId"), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) publish(ctx context.Context, pattern string, o *domain.Order) {
	if err := h.publisher.Publish(ctx, pattern, domain.NewOrderEvent(o, h.now())); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"pattern":  pattern,
			"order_id": o.OrderID,
		}).Warn("failed to publish order event")
	}
}

func dishParam(c *gin.Context) (uint64, bool) {
	dishID, err := strconv.ParseUint(c.Param("dishId"), 10, 64)
	if err != nil || dishID == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "dishId must be a positive integer"})
		return 0, false
	}
	return dishID, true
}

func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.WithError(err).WithFields(log.Fields{
			"request_id": c.GetString(requestIDKey),
			"path":       c.FullPath(),
		}).Error("request failed")
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrNullField), services.IsInvalidInput(err):
		return http.StatusBadRequest
	case services.IsNotFound(err), errors.Is(err, services.ErrNoOrders):
		return http.StatusNotFound
	case errors.Is(err, services.ErrOrderIDAlreadyInUse):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
