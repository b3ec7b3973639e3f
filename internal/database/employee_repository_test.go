package database

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkops/themepark-backend/internal/models"
)

// newTestDB wires sqlmock behind the sqlx-backed DB implementation so
// repository tests exercise the same Get/Select scanning as production.
func newTestDB(t *testing.T) (DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &PostgresDB{DB: sqlx.NewDb(db, "sqlmock")}, mock
}

func employeeRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"employee_id", "first_name", "last_name", "gender", "email", "password",
		"job_title", "phone", "ssn", "hire_date", "terminate_date",
	})
}

func TestCreateEmployee(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewEmployeeRepository(db)

	t.Run("Success", func(t *testing.T) {
		req := &models.CreateEmployeeRequest{
			FirstName: "Maya",
			LastName:  "Sato",
			Email:     "maya.sato@park.test",
			Password:  "hashed",
			JobTitle:  "Gift Shop Clerk",
			HireDate:  "2026-03-01",
		}

		mock.ExpectQuery(`INSERT INTO employee`).
			WithArgs(req.FirstName, req.LastName, "", req.Email, req.Password,
				req.JobTitle, "", "", req.HireDate).
			WillReturnRows(sqlmock.NewRows([]string{"employee_id"}).AddRow(7))

		id, err := repo.Create(req)
		require.NoError(t, err)
		assert.Equal(t, 7, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Hire Date Defaults To Today", func(t *testing.T) {
		req := &models.CreateEmployeeRequest{
			FirstName: "Liam",
			LastName:  "Fernando",
			Email:     "liam@park.test",
			Password:  "hashed",
			JobTitle:  "Cook",
		}

		mock.ExpectQuery(`INSERT INTO employee`).
			WithArgs(req.FirstName, req.LastName, "", req.Email, req.Password,
				req.JobTitle, "", "", time.Now().Format("2006-01-02")).
			WillReturnRows(sqlmock.NewRows([]string{"employee_id"}).AddRow(8))

		id, err := repo.Create(req)
		require.NoError(t, err)
		assert.Equal(t, 8, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		req := &models.CreateEmployeeRequest{
			FirstName: "Maya",
			LastName:  "Sato",
			Email:     "maya.sato@park.test",
			Password:  "hashed",
			JobTitle:  "Gift Shop Clerk",
			HireDate:  "2026-03-01",
		}

		mock.ExpectQuery(`INSERT INTO employee`).
			WithArgs(req.FirstName, req.LastName, "", req.Email, req.Password,
				req.JobTitle, "", "", req.HireDate).
			WillReturnError(&pq.Error{Code: "23505"})

		_, err := repo.Create(req)
		assert.ErrorIs(t, err, ErrDuplicateEmail)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetEmployeeByEmail(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewEmployeeRepository(db)

	t.Run("Success", func(t *testing.T) {
		hireDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(`SELECT (.+) FROM employee WHERE email`).
			WithArgs("maya.sato@park.test").
			WillReturnRows(employeeRows().AddRow(
				7, "Maya", "Sato", "female", "maya.sato@park.test", "hashed",
				"Gift Shop Manager", "0771234567", nil, hireDate, nil,
			))

		employee, err := repo.GetByEmail("maya.sato@park.test")
		require.NoError(t, err)
		assert.Equal(t, 7, employee.EmployeeID)
		assert.Equal(t, "Gift Shop Manager", employee.JobTitle)
		assert.False(t, employee.TerminateDate.Valid)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM employee WHERE email`).
			WithArgs("nobody@park.test").
			WillReturnError(sql.ErrNoRows)

		employee, err := repo.GetByEmail("nobody@park.test")
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, employee)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateEmployee(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewEmployeeRepository(db)

	t.Run("Success", func(t *testing.T) {
		req := &models.UpdateEmployeeRequest{JobTitle: "Shift Lead"}

		mock.ExpectExec(`UPDATE employee SET`).
			WithArgs(7, "", "", "", "", "Shift Lead", "").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(7, req)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		req := &models.UpdateEmployeeRequest{JobTitle: "Shift Lead"}

		mock.ExpectExec(`UPDATE employee SET`).
			WithArgs(99, "", "", "", "", "Shift Lead", "").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(99, req)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTerminateEmployee(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewEmployeeRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE employee`).
			WithArgs(7).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Terminate(7)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Already Terminated Or Missing", func(t *testing.T) {
		// Soft delete matches nothing when terminate_date is already set.
		mock.ExpectExec(`UPDATE employee`).
			WithArgs(7).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Terminate(7)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		mock.ExpectExec(`UPDATE employee`).
			WithArgs(7).
			WillReturnError(fmt.Errorf("database error"))

		err := repo.Terminate(7)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to terminate employee")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
