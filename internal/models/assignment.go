package models

import (
	"fmt"
	"time"
)

// DefaultWorkedHours is applied when an assignment omits worked_hour.
const DefaultWorkedHours = 8

// StoreAssignment is an employee_store_job row, an employee working at a
// store on a given date.
type StoreAssignment struct {
	EmployeeID int       `db:"employee_id" json:"employee_id"`
	StoreID    int       `db:"store_id" json:"store_id"`
	WorkDate   time.Time `db:"work_date" json:"work_date"`
	WorkedHour int       `db:"worked_hour" json:"worked_hour"`
}

// SalesEmployee is an assignment joined with employee and store names for the
// manager roster screens.
type SalesEmployee struct {
	EmployeeID int       `db:"employee_id" json:"employee_id"`
	FirstName  string    `db:"first_name" json:"first_name"`
	LastName   string    `db:"last_name" json:"last_name"`
	JobTitle   string    `db:"job_title" json:"job_title"`
	StoreID    int       `db:"store_id" json:"store_id"`
	StoreName  string    `db:"store_name" json:"store_name"`
	WorkDate   time.Time `db:"work_date" json:"work_date"`
	WorkedHour int       `db:"worked_hour" json:"worked_hour"`
}

// AssignEmployeeRequest assigns an employee to a store. Assigning the same
// pair again updates work_date and worked_hour rather than duplicating the
// row. A zero worked_hour falls back to DefaultWorkedHours.
type AssignEmployeeRequest struct {
	EmployeeID int    `json:"employee_id"`
	StoreID    int    `json:"store_id"`
	WorkDate   string `json:"work_date"` // YYYY-MM-DD, defaults to today
	WorkedHour int    `json:"worked_hour"`
}

// Validate checks the key fields and applies the worked_hour default.
func (r *AssignEmployeeRequest) Validate() error {
	if r.EmployeeID <= 0 || r.StoreID <= 0 {
		return fmt.Errorf("employee_id and store_id are required")
	}
	if r.WorkedHour < 0 {
		return fmt.Errorf("worked_hour must not be negative")
	}
	if r.WorkedHour == 0 {
		r.WorkedHour = DefaultWorkedHours
	}
	if r.WorkDate != "" {
		if _, err := time.Parse("2006-01-02", r.WorkDate); err != nil {
			return fmt.Errorf("work_date must be YYYY-MM-DD")
		}
	}
	return nil
}

// MaintenanceAssignment is an employee_maintenance_job row.
type MaintenanceAssignment struct {
	EmployeeID    int `db:"employee_id" json:"employee_id"`
	MaintenanceID int `db:"maintenance_id" json:"maintenance_id"`
}

// AssignMaintenanceRequest assigns an employee to a maintenance job.
type AssignMaintenanceRequest struct {
	EmployeeID    int `json:"employee_id"`
	MaintenanceID int `json:"maintenance_id"`
}

// Validate checks the composite key.
func (r *AssignMaintenanceRequest) Validate() error {
	if r.EmployeeID <= 0 || r.MaintenanceID <= 0 {
		return fmt.Errorf("employee_id and maintenance_id are required")
	}
	return nil
}
