package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/parkops/themepark-backend/internal/database"
	"github.com/parkops/themepark-backend/internal/models"
)

func setupRosterRouter(db database.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewRosterHandler(
		database.NewAssignmentRepository(db),
		database.NewScheduleRepository(db),
		testLogger(),
	)

	router := gin.New()
	router.GET("/manager/:department/sales-employees", handler.GetSalesEmployees)
	router.DELETE("/manager/:department/sales-employees", handler.RemoveSalesEmployee)
	router.POST("/manager/assign-employee", handler.AssignEmployee)
	router.POST("/manager/assign-maintenance", handler.AssignMaintenanceJob)
	router.GET("/manager/:department/schedules", handler.GetSchedules)
	router.POST("/manager/schedule", handler.UpsertSchedule)
	router.PUT("/manager/schedule/:id", handler.UpdateSchedule)
	router.DELETE("/manager/schedule/:id", handler.DeleteSchedule)
	return router
}

func TestAssignEmployee(t *testing.T) {
	db, mock := setupTestDB(t)
	router := setupRosterRouter(db)

	t.Run("Worked Hour Defaults To Eight", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO employee_store_job`).
			WithArgs(7, 3, time.Now().Format("2006-01-02"), models.DefaultWorkedHours).
			WillReturnResult(sqlmock.NewResult(0, 1))

		w := postJSON(router, "/manager/assign-employee", models.AssignEmployeeRequest{
			EmployeeID: 7,
			StoreID:    3,
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing Key Fields", func(t *testing.T) {
		w := postJSON(router, "/manager/assign-employee", models.AssignEmployeeRequest{
			EmployeeID: 7,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "validation_error")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetSalesEmployeesMaintenance(t *testing.T) {
	db, mock := setupTestDB(t)
	router := setupRosterRouter(db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/manager/maintenance/sales-employees", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveSalesEmployee(t *testing.T) {
	db, mock := setupTestDB(t)
	router := setupRosterRouter(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM employee_store_job`).
			WithArgs(7, 3).
			WillReturnResult(sqlmock.NewResult(0, 1))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete,
			"/manager/giftshop/sales-employees?employee_id=7&store_id=3", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM employee_store_job`).
			WithArgs(7, 99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete,
			"/manager/giftshop/sales-employees?employee_id=7&store_id=99", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing Query Params", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete,
			"/manager/giftshop/sales-employees", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpsertScheduleHandler(t *testing.T) {
	db, mock := setupTestDB(t)
	router := setupRosterRouter(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO employee_schedule`).
			WithArgs(7, 3, "2026-09-01", "09:00", "17:00", models.ShiftStatusScheduled).
			WillReturnRows(sqlmock.NewRows([]string{"schedule_id"}).AddRow(15))

		w := postJSON(router, "/manager/schedule", models.UpsertScheduleRequest{
			EmployeeID: 7,
			StoreID:    3,
			WorkDate:   "2026-09-01",
			ShiftStart: "09:00",
			ShiftEnd:   "17:00",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"schedule_id":15`)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Bad Work Date", func(t *testing.T) {
		w := postJSON(router, "/manager/schedule", models.UpsertScheduleRequest{
			EmployeeID: 7,
			StoreID:    3,
			WorkDate:   "September 1st",
			ShiftStart: "09:00",
			ShiftEnd:   "17:00",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateScheduleNotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	router := setupRosterRouter(db)

	mock.ExpectExec(`UPDATE employee_schedule SET`).
		WithArgs(99, "10:00", "18:00", "").
		WillReturnResult(sqlmock.NewResult(0, 0))

	w := putJSON(router, "/manager/schedule/99",
		models.UpdateShiftRequest{ShiftStart: "10:00", ShiftEnd: "18:00"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
