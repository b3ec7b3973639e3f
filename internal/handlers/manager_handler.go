package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/parkops/themepark-backend/internal/database"
	"github.com/parkops/themepark-backend/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ManagerHandler serves the manager dashboard and its derived views.
type ManagerHandler struct {
	employeeRepo  *database.EmployeeRepository
	dashboardRepo *database.DashboardRepository
	logger        *logrus.Logger
}

// NewManagerHandler creates a new ManagerHandler
func NewManagerHandler(employeeRepo *database.EmployeeRepository, dashboardRepo *database.DashboardRepository, logger *logrus.Logger) *ManagerHandler {
	return &ManagerHandler{
		employeeRepo:  employeeRepo,
		dashboardRepo: dashboardRepo,
		logger:        logger,
	}
}

// GetManagerInfo returns the manager record with their derived department.
// GET /manager-info/:email
func (h *ManagerHandler) GetManagerInfo(c *gin.Context) {
	email := c.Param("email")

	employee, err := h.employeeRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Manager not found"})
			return
		}
		h.logger.WithError(err).Error("Failed to fetch manager info")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database_error", "message": "Failed to fetch manager info"})
		return
	}

	c.JSON(http.StatusOK, models.ManagerInfo{
		EmployeeID: employee.EmployeeID,
		FirstName:  employee.FirstName,
		LastName:   employee.LastName,
		JobTitle:   employee.JobTitle,
		Email:      employee.Email,
		Department: models.DepartmentForJobTitle(employee.JobTitle),
	})
}

// GetDashboard returns the composite department view: staff, inventory and
// the sales rollup. The three reads run concurrently; they are independent
// queries, not one snapshot, which is acceptable for a reporting view.
// GET /manager/:department
func (h *ManagerHandler) GetDashboard(c *gin.Context) {
	dept, ok := parseDepartment(c)
	if !ok {
		return
	}

	dashboard := models.Dashboard{
		Staff:     []models.StaffMember{},
		Inventory: []models.InventoryItem{},
	}

	if dept.IsMaintenance() {
		// Inventory and sales do not apply to maintenance.
		staff, err := h.dashboardRepo.MaintenanceStaff()
		if err != nil {
			h.logger.WithError(err).Error("Failed to fetch maintenance staff")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database_error", "message": "Failed to fetch dashboard"})
			return
		}
		dashboard.Staff = staff
		c.JSON(http.StatusOK, dashboard)
		return
	}

	storeType, _ := dept.StoreType()

	var g errgroup.Group
	g.Go(func() error {
		staff, err := h.dashboardRepo.Staff(storeType)
		if err == nil {
			dashboard.Staff = staff
		}
		return err
	})
	g.Go(func() error {
		inventory, err := h.dashboardRepo.Inventory(storeType)
		if err == nil {
			dashboard.Inventory = inventory
		}
		return err
	})
	g.Go(func() error {
		sales, err := h.dashboardRepo.SalesSummary(storeType)
		if err == nil {
			dashboard.Sales = *sales
		}
		return err
	})

	if err := g.Wait(); err != nil {
		h.logger.WithError(err).Error("Failed to fetch dashboard")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database_error", "message": "Failed to fetch dashboard"})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// GetStaffDetails returns the per-employee assignment summary: one row per
// employee with a distinct store (or job) count.
// GET /manager/:department/staff-details
func (h *ManagerHandler) GetStaffDetails(c *gin.Context) {
	dept, ok := parseDepartment(c)
	if !ok {
		return
	}

	if dept.IsMaintenance() {
		summaries, err := h.dashboardRepo.MaintenanceStaffSummary()
		if err != nil {
			h.logger.WithError(err).Error("Failed to fetch maintenance staff details")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database_error", "message": "Failed to fetch staff details"})
			return
		}
		c.JSON(http.StatusOK, summaries)
		return
	}

	storeType, _ := dept.StoreType()
	summaries, err := h.dashboardRepo.StoreStaffSummary(storeType)
	if err != nil {
		h.logger.WithError(err).Error("Failed to fetch staff details")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database_error", "message": "Failed to fetch staff details"})
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// GetRecentTransactions returns the latest 20 orders, or the latest 20
// maintenance records for the maintenance department.
// GET /manager/:department/recent-transactions
func (h *ManagerHandler) GetRecentTransactions(c *gin.Context) {
	dept, ok := parseDepartment(c)
	if !ok {
		return
	}

	if dept.IsMaintenance() {
		records, err := h.dashboardRepo.RecentMaintenance()
		if err != nil {
			h.logger.WithError(err).Error("Failed to fetch recent maintenance")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database_error", "message": "Failed to fetch transactions"})
			return
		}
		c.JSON(http.StatusOK, records)
		return
	}

	storeType, _ := dept.StoreType()
	orders, err := h.dashboardRepo.RecentOrders(storeType)
	if err != nil {
		h.logger.WithError(err).Error("Failed to fetch recent orders")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database_error", "message": "Failed to fetch transactions"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetLowStock returns items below the stock threshold, lowest first. The
// concept does not apply to maintenance, which short-circuits to an empty
// list without touching the database.
// GET /manager/:department/low-stock
func (h *ManagerHandler) GetLowStock(c *gin.Context) {
	dept, ok := parseDepartment(c)
	if !ok {
		return
	}

	if dept.IsMaintenance() {
		c.JSON(http.StatusOK, []models.LowStockItem{})
		return
	}

	storeType, _ := dept.StoreType()
	items, err := h.dashboardRepo.LowStock(storeType)
	if err != nil {
		h.logger.WithError(err).Error("Failed to fetch low stock")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database_error", "message": "Failed to fetch low stock"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetTopItems returns the department's top 5 sellers. Maintenance
// short-circuits to an empty list.
// GET /manager/:department/top-items
func (h *ManagerHandler) GetTopItems(c *gin.Context) {
	dept, ok := parseDepartment(c)
	if !ok {
		return
	}

	if dept.IsMaintenance() {
		c.JSON(http.StatusOK, []models.TopItem{})
		return
	}

	storeType, _ := dept.StoreType()
	items, err := h.dashboardRepo.TopItems(storeType)
	if err != nil {
		h.logger.WithError(err).Error("Failed to fetch top items")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database_error", "message": "Failed to fetch top items"})
		return
	}
	c.JSON(http.StatusOK, items)
}
