package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/parkops/themepark-backend/internal/database"
	"github.com/parkops/themepark-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// OrderHandler serves store order writes and reads.
type OrderHandler struct {
	orderRepo *database.OrderRepository
	storeRepo *database.StoreRepository
	logger    *logrus.Logger
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderRepo *database.OrderRepository, storeRepo *database.StoreRepository, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{
		orderRepo: orderRepo,
		storeRepo: storeRepo,
		logger:    logger,
	}
}

// CreateOrder records an order with its line items in one transaction. The
// store must belong to the department in the path.
// POST /manager/:department/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	dept, ok := parseDepartment(c)
	if !ok {
		return
	}
	storeType, hasStores := dept.StoreType()
	if !hasStores {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_department", "message": "Maintenance has no orders"})
		return
	}

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload", "message": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_error", "message": err.Error()})
		return
	}

	store, err := h.storeRepo.GetByID(req.StoreID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Store not found"})
			return
		}
		h.logger.WithError(err).Error("Failed to fetch store")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database_error", "message": "Failed to create order"})
		return
	}
	if store.Type != storeType {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_error", "message": "Store does not belong to this department"})
		return
	}

	orderID, err := h.orderRepo.CreateWithDetails(&req)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create order")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database_error", "message": "Failed to create order"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"store_order_id": orderID})
}

// GetOrder retrieves one order with its line items.
// GET /manager/:department/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	if _, ok := parseDepartment(c); !ok {
		return
	}
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Order not found"})
			return
		}
		h.logger.WithError(err).Error("Failed to fetch order")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database_error", "message": "Failed to fetch order"})
		return
	}
	c.JSON(http.StatusOK, order)
}
