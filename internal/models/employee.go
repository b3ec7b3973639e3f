package models

import (
	"database/sql"
	"fmt"
	"time"
)

// Employee represents a park employee. Termination is a soft delete:
// terminate_date is set and the row is kept so historical assignment and
// schedule joins stay intact.
type Employee struct {
	EmployeeID    int            `db:"employee_id" json:"employee_id"`
	FirstName     string         `db:"first_name" json:"first_name"`
	LastName      string         `db:"last_name" json:"last_name"`
	Gender        sql.NullString `db:"gender" json:"gender,omitempty"`
	Email         string         `db:"email" json:"email"`
	Password      string         `db:"password" json:"-"`
	JobTitle      string         `db:"job_title" json:"job_title"`
	Phone         sql.NullString `db:"phone" json:"phone,omitempty"`
	SSN           sql.NullString `db:"ssn" json:"-"`
	HireDate      time.Time      `db:"hire_date" json:"hire_date"`
	TerminateDate sql.NullTime   `db:"terminate_date" json:"terminate_date,omitempty"`
}

// ManagerInfo is the manager lookup response, the employee record plus the
// department derived from the job title.
type ManagerInfo struct {
	EmployeeID int        `json:"employee_id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	JobTitle   string     `json:"job_title"`
	Email      string     `json:"email"`
	Department Department `json:"department"`
}

// CreateEmployeeRequest is the payload for hiring a new employee.
type CreateEmployeeRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	JobTitle  string `json:"job_title"`
	Phone     string `json:"phone"`
	SSN       string `json:"ssn"`
	HireDate  string `json:"hire_date"` // YYYY-MM-DD, defaults to today
}

// Validate checks the NOT NULL columns of the employee table.
func (r *CreateEmployeeRequest) Validate() error {
	if r.FirstName == "" || r.LastName == "" {
		return fmt.Errorf("first_name and last_name are required")
	}
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	if r.JobTitle == "" {
		return fmt.Errorf("job_title is required")
	}
	return nil
}

// UpdateEmployeeRequest is the payload for an admin edit. Empty fields are
// left untouched.
type UpdateEmployeeRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender"`
	Email     string `json:"email"`
	JobTitle  string `json:"job_title"`
	Phone     string `json:"phone"`
}
