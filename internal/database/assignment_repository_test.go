package database

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkops/themepark-backend/internal/models"
)

func TestUpsertStoreAssignment(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAssignmentRepository(db)

	t.Run("Success", func(t *testing.T) {
		req := &models.AssignEmployeeRequest{
			EmployeeID: 7,
			StoreID:    3,
			WorkDate:   "2026-09-01",
			WorkedHour: 6,
		}

		mock.ExpectExec(`INSERT INTO employee_store_job`).
			WithArgs(7, 3, "2026-09-01", 6).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpsertStoreAssignment(req)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Work Date Defaults To Today", func(t *testing.T) {
		req := &models.AssignEmployeeRequest{
			EmployeeID: 7,
			StoreID:    4,
			WorkedHour: 8,
		}

		mock.ExpectExec(`INSERT INTO employee_store_job`).
			WithArgs(7, 4, time.Now().Format("2006-01-02"), 8).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpsertStoreAssignment(req)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Reassignment Updates In Place", func(t *testing.T) {
		// Same (employee, store) pair: the conflict clause rewrites the row.
		req := &models.AssignEmployeeRequest{
			EmployeeID: 7,
			StoreID:    3,
			WorkDate:   "2026-09-02",
			WorkedHour: 4,
		}

		mock.ExpectExec(`INSERT INTO employee_store_job`).
			WithArgs(7, 3, "2026-09-02", 4).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpsertStoreAssignment(req)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRemoveStoreAssignment(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAssignmentRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM employee_store_job`).
			WithArgs(7, 3).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.RemoveStoreAssignment(7, 3)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM employee_store_job`).
			WithArgs(7, 99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.RemoveStoreAssignment(7, 99)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListSalesEmployeesByType(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAssignmentRepository(db)

	workDate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM employee_store_job esj`).
		WithArgs(models.StoreTypeFood).
		WillReturnRows(sqlmock.NewRows([]string{
			"employee_id", "first_name", "last_name", "job_title",
			"store_id", "store_name", "work_date", "worked_hour",
		}).
			AddRow(9, "Liam", "Fernando", "Cook", 5, "Lakeside Grill", workDate, 8))

	employees, err := repo.ListSalesEmployeesByType(models.StoreTypeFood)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "Lakeside Grill", employees[0].StoreName)
	assert.Equal(t, 8, employees[0].WorkedHour)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertMaintenanceAssignment(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAssignmentRepository(db)

	t.Run("Success", func(t *testing.T) {
		req := &models.AssignMaintenanceRequest{EmployeeID: 12, MaintenanceID: 4}

		mock.ExpectExec(`INSERT INTO employee_maintenance_job`).
			WithArgs(12, 4).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpsertMaintenanceAssignment(req)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate Is A No-Op", func(t *testing.T) {
		req := &models.AssignMaintenanceRequest{EmployeeID: 12, MaintenanceID: 4}

		mock.ExpectExec(`INSERT INTO employee_maintenance_job`).
			WithArgs(12, 4).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpsertMaintenanceAssignment(req)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRemoveMaintenanceAssignment(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAssignmentRepository(db)

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM employee_maintenance_job`).
			WithArgs(12, 99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.RemoveMaintenanceAssignment(12, 99)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
