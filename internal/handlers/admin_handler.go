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

// AdminHandler serves the admin collection and CRUD endpoints for rides,
// stores, employees, maintenance and the merchandise catalog.
type AdminHandler struct {
	rideRepo        *database.RideRepository
	storeRepo       *database.StoreRepository
	employeeRepo    *database.EmployeeRepository
	maintenanceRepo *database.MaintenanceRepository
	merchandiseRepo *database.MerchandiseRepository
	logger          *logrus.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(
	rideRepo *database.RideRepository,
	storeRepo *database.StoreRepository,
	employeeRepo *database.EmployeeRepository,
	maintenanceRepo *database.MaintenanceRepository,
	merchandiseRepo *database.MerchandiseRepository,
	logger *logrus.Logger,
) *AdminHandler {
	return &AdminHandler{
		rideRepo:        rideRepo,
		storeRepo:       storeRepo,
		employeeRepo:    employeeRepo,
		maintenanceRepo: maintenanceRepo,
		merchandiseRepo: merchandiseRepo,
		logger:          logger,
	}
}

func (h *AdminHandler) dbError(c *gin.Context, err error, what string) {
	h.logger.WithError(err).Error("Failed to " + what)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "database_error", "message": "Failed to " + what})
}

// GetRides lists all rides.
// GET /rides
func (h *AdminHandler) GetRides(c *gin.Context) {
	rides, err := h.rideRepo.List()
	if err != nil {
		h.dbError(c, err, "fetch rides")
		return
	}
	c.JSON(http.StatusOK, rides)
}

// CreateRide adds a ride.
// POST /rides
func (h *AdminHandler) CreateRide(c *gin.Context) {
	var req models.CreateRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload", "message": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_error", "message": err.Error()})
		return
	}

	id, err := h.rideRepo.Create(&req)
	if err != nil {
		h.dbError(c, err, "create ride")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ride_id": id})
}

// UpdateRide edits a ride.
// PUT /rides/:id
func (h *AdminHandler) UpdateRide(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.CreateRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload", "message": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_error", "message": err.Error()})
		return
	}

	if err := h.rideRepo.Update(id, &req); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Ride not found"})
			return
		}
		h.dbError(c, err, "update ride")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ride updated"})
}

// DeleteRide removes a ride.
// DELETE /rides/:id
func (h *AdminHandler) DeleteRide(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.rideRepo.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Ride not found"})
			return
		}
		h.dbError(c, err, "delete ride")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ride deleted"})
}

// GetStores lists all stores.
// GET /stores
func (h *AdminHandler) GetStores(c *gin.Context) {
	stores, err := h.storeRepo.List()
	if err != nil {
		h.dbError(c, err, "fetch stores")
		return
	}
	c.JSON(http.StatusOK, stores)
}

// CreateStore opens a store.
// POST /stores
func (h *AdminHandler) CreateStore(c *gin.Context) {
	var req models.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload", "message": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_error", "message": err.Error()})
		return
	}

	id, err := h.storeRepo.Create(&req)
	if err != nil {
		h.dbError(c, err, "create store")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"store_id": id})
}

// UpdateStore edits a store.
// PUT /stores/:id
func (h *AdminHandler) UpdateStore(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload", "message": err.Error()})
		return
	}

	if err := h.storeRepo.Update(id, &req); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Store not found"})
			return
		}
		h.dbError(c, err, "update store")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Store updated"})
}

// DeleteStore removes a store.
// DELETE /stores/:id
func (h *AdminHandler) DeleteStore(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.storeRepo.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Store not found"})
			return
		}
		h.dbError(c, err, "delete store")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Store deleted"})
}

// GetEmployees lists all employees, including terminated ones.
// GET /employees
func (h *AdminHandler) GetEmployees(c *gin.Context) {
	employees, err := h.employeeRepo.List()
	if err != nil {
		h.dbError(c, err, "fetch employees")
		return
	}
	c.JSON(http.StatusOK, employees)
}

// CreateEmployee hires an employee.
// POST /employees
func (h *AdminHandler) CreateEmployee(c *gin.Context) {
	var req models.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload", "message": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_error", "message": err.Error()})
		return
	}

	id, err := h.employeeRepo.Create(&req)
	if err != nil {
		if errors.Is(err, database.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation_error", "message": "Email already in use"})
			return
		}
		h.dbError(c, err, "create employee")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"employee_id": id})
}

// UpdateEmployee edits an employee.
// PUT /employees/:id
func (h *AdminHandler) UpdateEmployee(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload", "message": err.Error()})
		return
	}

	if err := h.employeeRepo.Update(id, &req); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Employee not found"})
			return
		}
		if errors.Is(err, database.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation_error", "message": "Email already in use"})
			return
		}
		h.dbError(c, err, "update employee")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee updated"})
}

// TerminateEmployee soft-deletes an employee by setting terminate_date. The
// row stays so historical assignments keep resolving.
// DELETE /employees/:id
func (h *AdminHandler) TerminateEmployee(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.employeeRepo.Terminate(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Employee not found or already terminated"})
			return
		}
		h.dbError(c, err, "terminate employee")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee terminated"})
}

// GetMaintenances lists all maintenance records.
// GET /maintenances
func (h *AdminHandler) GetMaintenances(c *gin.Context) {
	records, err := h.maintenanceRepo.List()
	if err != nil {
		h.dbError(c, err, "fetch maintenance records")
		return
	}
	c.JSON(http.StatusOK, records)
}

// CreateMaintenance schedules maintenance.
// POST /maintenances
func (h *AdminHandler) CreateMaintenance(c *gin.Context) {
	var req models.CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload", "message": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_error", "message": err.Error()})
		return
	}

	id, err := h.maintenanceRepo.Create(&req)
	if err != nil {
		h.dbError(c, err, "create maintenance")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"maintenance_id": id})
}

// UpdateMaintenance edits a maintenance record.
// PUT /maintenances/:id
func (h *AdminHandler) UpdateMaintenance(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload", "message": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_error", "message": err.Error()})
		return
	}

	if err := h.maintenanceRepo.Update(id, &req); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Maintenance record not found"})
			return
		}
		h.dbError(c, err, "update maintenance")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Maintenance updated"})
}

// GetMerchandise lists the catalog.
// GET /merchandise
func (h *AdminHandler) GetMerchandise(c *gin.Context) {
	items, err := h.merchandiseRepo.List()
	if err != nil {
		h.dbError(c, err, "fetch merchandise")
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateMerchandise adds a catalog item.
// POST /merchandise
func (h *AdminHandler) CreateMerchandise(c *gin.Context) {
	var req models.CreateMerchandiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload", "message": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_error", "message": err.Error()})
		return
	}

	id, err := h.merchandiseRepo.Create(&req)
	if err != nil {
		h.dbError(c, err, "create merchandise")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item_id": id})
}

// UpdateMerchandise edits a catalog item. Price edits retroactively change
// historical revenue figures, a documented tradeoff of the schema.
// PUT /merchandise/:id
func (h *AdminHandler) UpdateMerchandise(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.CreateMerchandiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload", "message": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_error", "message": err.Error()})
		return
	}

	if err := h.merchandiseRepo.Update(id, &req); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Merchandise not found"})
			return
		}
		h.dbError(c, err, "update merchandise")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Merchandise updated"})
}

// DeleteMerchandise removes a catalog item.
// DELETE /merchandise/:id
func (h *AdminHandler) DeleteMerchandise(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.merchandiseRepo.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Merchandise not found"})
			return
		}
		h.dbError(c, err, "delete merchandise")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Merchandise deleted"})
}
