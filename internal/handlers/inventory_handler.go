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

// InventoryHandler serves the manager store and stock endpoints.
type InventoryHandler struct {
	storeRepo       *database.StoreRepository
	inventoryRepo   *database.InventoryRepository
	merchandiseRepo *database.MerchandiseRepository
	logger          *logrus.Logger
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(
	storeRepo *database.StoreRepository,
	inventoryRepo *database.InventoryRepository,
	merchandiseRepo *database.MerchandiseRepository,
	logger *logrus.Logger,
) *InventoryHandler {
	return &InventoryHandler{
		storeRepo:       storeRepo,
		inventoryRepo:   inventoryRepo,
		merchandiseRepo: merchandiseRepo,
		logger:          logger,
	}
}

// GetStores lists the department's stores. Maintenance has no stores and
// returns an empty list.
// GET /manager/:department/stores
func (h *InventoryHandler) GetStores(c *gin.Context) {
	dept, ok := parseDepartment(c)
	if !ok {
		return
	}

	if dept.IsMaintenance() {
		c.JSON(http.StatusOK, []models.Store{})
		return
	}

	storeType, _ := dept.StoreType()
	stores, err := h.storeRepo.ListByType(storeType)
	if err != nil {
		h.logger.WithError(err).Error("Failed to fetch stores")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database_error", "message": "Failed to fetch stores"})
		return
	}
	c.JSON(http.StatusOK, stores)
}

// GetInventory lists the stocked items of the department, or of one store
// when a store_id query parameter is present.
// GET /manager/:department/inventory
func (h *InventoryHandler) GetInventory(c *gin.Context) {
	dept, ok := parseDepartment(c)
	if !ok {
		return
	}

	if dept.IsMaintenance() {
		c.JSON(http.StatusOK, []models.StockItem{})
		return
	}

	var items []models.StockItem
	var err error
	if c.Query("store_id") != "" {
		storeID, ok := parseIDQuery(c, "store_id")
		if !ok {
			return
		}
		items, err = h.inventoryRepo.ListByStore(storeID)
	} else {
		storeType, _ := dept.StoreType()
		items, err = h.inventoryRepo.ListByStoreType(storeType)
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to fetch inventory")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database_error", "message": "Failed to fetch inventory"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// UpsertInventory stocks an item at a store or updates its stock level.
// POST /manager/:department/inventory
func (h *InventoryHandler) UpsertInventory(c *gin.Context) {
	dept, ok := parseDepartment(c)
	if !ok {
		return
	}
	if dept.IsMaintenance() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_department", "message": "Maintenance has no inventory"})
		return
	}

	var req models.UpsertStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload", "message": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_error", "message": err.Error()})
		return
	}

	if err := h.inventoryRepo.UpsertStock(&req); err != nil {
		h.logger.WithError(err).Error("Failed to upsert stock")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database_error", "message": "Failed to save stock"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stock saved"})
}

// RemoveInventory removes an item from a store, identified by store_id and
// item_id query parameters.
// DELETE /manager/:department/inventory
func (h *InventoryHandler) RemoveInventory(c *gin.Context) {
	if _, ok := parseDepartment(c); !ok {
		return
	}
	storeID, ok := parseIDQuery(c, "store_id")
	if !ok {
		return
	}
	itemID, ok := parseIDQuery(c, "item_id")
	if !ok {
		return
	}

	if err := h.inventoryRepo.Remove(storeID, itemID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Inventory row not found"})
			return
		}
		h.logger.WithError(err).Error("Failed to remove stock")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database_error", "message": "Failed to remove stock"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stock removed"})
}

// GetAvailableMerchandise lists catalog items not yet stocked at the store
// named by the store_id query parameter.
// GET /manager/:department/available-merchandise
func (h *InventoryHandler) GetAvailableMerchandise(c *gin.Context) {
	dept, ok := parseDepartment(c)
	if !ok {
		return
	}
	if dept.IsMaintenance() {
		c.JSON(http.StatusOK, []models.Merchandise{})
		return
	}

	storeID, ok := parseIDQuery(c, "store_id")
	if !ok {
		return
	}

	items, err := h.merchandiseRepo.ListAvailableForStore(storeID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to fetch available merchandise")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database_error", "message": "Failed to fetch available merchandise"})
		return
	}
	c.JSON(http.StatusOK, items)
}
