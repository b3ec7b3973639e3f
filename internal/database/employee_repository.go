package database

import (
	"fmt"
	"time"

	"github.com/parkops/themepark-backend/internal/models"
)

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db DB
}

// NewEmployeeRepository creates a new EmployeeRepository
func NewEmployeeRepository(db DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create inserts a new employee and returns the generated id.
func (r *EmployeeRepository) Create(req *models.CreateEmployeeRequest) (int, error) {
	hireDate := req.HireDate
	if hireDate == "" {
		hireDate = time.Now().Format("2006-01-02")
	}

	query := `
		INSERT INTO employee (
			first_name, last_name, gender, email, password,
			job_title, phone, ssn, hire_date
		) VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), $9)
		RETURNING employee_id
	`

	var id int
	err := r.db.QueryRow(
		query,
		req.FirstName, req.LastName, req.Gender, req.Email, req.Password,
		req.JobTitle, req.Phone, req.SSN, hireDate,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateEmail
		}
		return 0, fmt.Errorf("failed to create employee: %w", err)
	}

	return id, nil
}

// GetByID retrieves an employee by id.
func (r *EmployeeRepository) GetByID(employeeID int) (*models.Employee, error) {
	query := `
		SELECT employee_id, first_name, last_name, gender, email, password,
			job_title, phone, ssn, hire_date, terminate_date
		FROM employee
		WHERE employee_id = $1
	`

	employee := &models.Employee{}
	if err := r.db.Get(employee, query, employeeID); err != nil {
		return nil, err
	}
	return employee, nil
}

// GetByEmail retrieves an employee by email.
func (r *EmployeeRepository) GetByEmail(email string) (*models.Employee, error) {
	query := `
		SELECT employee_id, first_name, last_name, gender, email, password,
			job_title, phone, ssn, hire_date, terminate_date
		FROM employee
		WHERE email = $1
	`

	employee := &models.Employee{}
	if err := r.db.Get(employee, query, email); err != nil {
		return nil, err
	}
	return employee, nil
}

// List retrieves all employees, most recent hires first.
func (r *EmployeeRepository) List() ([]models.Employee, error) {
	query := `
		SELECT employee_id, first_name, last_name, gender, email, password,
			job_title, phone, ssn, hire_date, terminate_date
		FROM employee
		ORDER BY hire_date DESC, employee_id DESC
	`

	employees := []models.Employee{}
	if err := r.db.Select(&employees, query); err != nil {
		return nil, err
	}
	return employees, nil
}

// Update edits the mutable employee columns. Empty request fields leave the
// column untouched.
func (r *EmployeeRepository) Update(employeeID int, req *models.UpdateEmployeeRequest) error {
	query := `
		UPDATE employee SET
			first_name = COALESCE(NULLIF($2, ''), first_name),
			last_name  = COALESCE(NULLIF($3, ''), last_name),
			gender     = COALESCE(NULLIF($4, ''), gender),
			email      = COALESCE(NULLIF($5, ''), email),
			job_title  = COALESCE(NULLIF($6, ''), job_title),
			phone      = COALESCE(NULLIF($7, ''), phone)
		WHERE employee_id = $1
	`

	result, err := r.db.Exec(query, employeeID,
		req.FirstName, req.LastName, req.Gender, req.Email, req.JobTitle, req.Phone)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}
	return requireRowsAffected(result)
}

// Terminate soft-deletes an employee by setting terminate_date. The row is
// never removed so historical assignment joins keep working.
func (r *EmployeeRepository) Terminate(employeeID int) error {
	query := `
		UPDATE employee
		SET terminate_date = CURRENT_DATE
		WHERE employee_id = $1 AND terminate_date IS NULL
	`

	result, err := r.db.Exec(query, employeeID)
	if err != nil {
		return fmt.Errorf("failed to terminate employee: %w", err)
	}
	return requireRowsAffected(result)
}
