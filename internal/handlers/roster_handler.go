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

// RosterHandler serves employee-to-store assignments and shift schedules.
type RosterHandler struct {
	assignmentRepo *database.AssignmentRepository
	scheduleRepo   *database.ScheduleRepository
	logger         *logrus.Logger
}

// NewRosterHandler creates a new RosterHandler
func NewRosterHandler(assignmentRepo *database.AssignmentRepository, scheduleRepo *database.ScheduleRepository, logger *logrus.Logger) *RosterHandler {
	return &RosterHandler{
		assignmentRepo: assignmentRepo,
		scheduleRepo:   scheduleRepo,
		logger:         logger,
	}
}

// GetSalesEmployees lists the department's store assignments. Maintenance
// has no store assignments and returns an empty list.
// GET /manager/:department/sales-employees
func (h *RosterHandler) GetSalesEmployees(c *gin.Context) {
	dept, ok := parseDepartment(c)
	if !ok {
		return
	}

	if dept.IsMaintenance() {
		c.JSON(http.StatusOK, []models.SalesEmployee{})
		return
	}

	storeType, _ := dept.StoreType()
	employees, err := h.assignmentRepo.ListSalesEmployeesByType(storeType)
	if err != nil {
		h.logger.WithError(err).Error("Failed to fetch sales employees")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database_error", "message": "Failed to fetch sales employees"})
		return
	}
	c.JSON(http.StatusOK, employees)
}

// RemoveSalesEmployee removes one assignment, identified by employee_id and
// store_id query parameters.
// DELETE /manager/:department/sales-employees
func (h *RosterHandler) RemoveSalesEmployee(c *gin.Context) {
	if _, ok := parseDepartment(c); !ok {
		return
	}
	employeeID, ok := parseIDQuery(c, "employee_id")
	if !ok {
		return
	}
	storeID, ok := parseIDQuery(c, "store_id")
	if !ok {
		return
	}

	if err := h.assignmentRepo.RemoveStoreAssignment(employeeID, storeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Assignment not found"})
			return
		}
		h.logger.WithError(err).Error("Failed to remove assignment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database_error", "message": "Failed to remove assignment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Assignment removed"})
}

// AssignEmployee assigns an employee to a store, updating the existing row
// when the pair is already assigned. worked_hour defaults to 8.
// POST /manager/assign-employee
func (h *RosterHandler) AssignEmployee(c *gin.Context) {
	var req models.AssignEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload", "message": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_error", "message": err.Error()})
		return
	}

	if err := h.assignmentRepo.UpsertStoreAssignment(&req); err != nil {
		h.logger.WithError(err).Error("Failed to assign employee")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database_error", "message": "Failed to assign employee"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee assigned"})
}

// AssignMaintenanceJob assigns an employee to a maintenance job.
// POST /manager/assign-maintenance
func (h *RosterHandler) AssignMaintenanceJob(c *gin.Context) {
	var req models.AssignMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload", "message": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_error", "message": err.Error()})
		return
	}

	if err := h.assignmentRepo.UpsertMaintenanceAssignment(&req); err != nil {
		h.logger.WithError(err).Error("Failed to assign maintenance job")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database_error", "message": "Failed to assign maintenance job"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Maintenance job assigned"})
}

// GetSchedules lists the department's shifts. Maintenance has no store
// shifts and returns an empty list.
// GET /manager/:department/schedules
func (h *RosterHandler) GetSchedules(c *gin.Context) {
	dept, ok := parseDepartment(c)
	if !ok {
		return
	}

	if dept.IsMaintenance() {
		c.JSON(http.StatusOK, []models.ScheduleEntry{})
		return
	}

	storeType, _ := dept.StoreType()
	entries, err := h.scheduleRepo.ListByStoreType(storeType)
	if err != nil {
		h.logger.WithError(err).Error("Failed to fetch schedules")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database_error", "message": "Failed to fetch schedules"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// UpsertSchedule creates or replaces a shift. Scheduling the same employee at
// the same store on the same date again updates the existing row.
// POST /manager/schedule
func (h *RosterHandler) UpsertSchedule(c *gin.Context) {
	var req models.UpsertScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload", "message": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_error", "message": err.Error()})
		return
	}

	scheduleID, err := h.scheduleRepo.Upsert(&req)
	if err != nil {
		h.logger.WithError(err).Error("Failed to upsert schedule")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database_error", "message": "Failed to save schedule"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule_id": scheduleID})
}

// UpdateSchedule edits the shift times and status of an existing shift.
// PUT /manager/schedule/:id
func (h *RosterHandler) UpdateSchedule(c *gin.Context) {
	scheduleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload", "message": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_error", "message": err.Error()})
		return
	}

	if err := h.scheduleRepo.UpdateShift(scheduleID, &req); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Schedule not found"})
			return
		}
		h.logger.WithError(err).Error("Failed to update schedule")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database_error", "message": "Failed to update schedule"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule updated"})
}

// DeleteSchedule removes a shift.
// DELETE /manager/schedule/:id
func (h *RosterHandler) DeleteSchedule(c *gin.Context) {
	scheduleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.scheduleRepo.Delete(scheduleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Schedule not found"})
			return
		}
		h.logger.WithError(err).Error("Failed to delete schedule")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database_error", "message": "Failed to delete schedule"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted"})
}
