package models

import (
	"fmt"
	"time"
)

// Schedule status constants
const (
	ShiftStatusScheduled = "scheduled"
	ShiftStatusWorked    = "worked"
	ShiftStatusMissed    = "missed"
)

// Schedule is an employee_schedule row, one scheduled shift. It is distinct
// from the assignment table: an assignment says who works where, a schedule
// says when. The natural key is (employee_id, store_id, work_date).
type Schedule struct {
	ScheduleID int       `db:"schedule_id" json:"schedule_id"`
	EmployeeID int       `db:"employee_id" json:"employee_id"`
	StoreID    int       `db:"store_id" json:"store_id"`
	WorkDate   time.Time `db:"work_date" json:"work_date"`
	ShiftStart string    `db:"shift_start" json:"shift_start"` // HH:MM
	ShiftEnd   string    `db:"shift_end" json:"shift_end"`     // HH:MM
	Status     string    `db:"status" json:"status"`
}

// ScheduleEntry is a schedule row joined with employee and store names.
type ScheduleEntry struct {
	Schedule
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
	StoreName string `db:"store_name" json:"store_name"`
}

// UpsertScheduleRequest creates or replaces a shift. Scheduling the same
// employee at the same store on the same date again updates the shift times
// and status of the existing row.
type UpsertScheduleRequest struct {
	EmployeeID int    `json:"employee_id"`
	StoreID    int    `json:"store_id"`
	WorkDate   string `json:"work_date"` // YYYY-MM-DD
	ShiftStart string `json:"shift_start"`
	ShiftEnd   string `json:"shift_end"`
	Status     string `json:"status"`
}

// UpdateShiftRequest edits the mutable columns of an existing shift by id.
type UpdateShiftRequest struct {
	ShiftStart string `json:"shift_start"`
	ShiftEnd   string `json:"shift_end"`
	Status     string `json:"status"`
}

// Validate checks the shift times and the status enum.
func (r *UpdateShiftRequest) Validate() error {
	if r.ShiftStart == "" || r.ShiftEnd == "" {
		return fmt.Errorf("shift_start and shift_end are required")
	}
	switch r.Status {
	case "", ShiftStatusScheduled, ShiftStatusWorked, ShiftStatusMissed:
		return nil
	default:
		return fmt.Errorf("invalid status %q", r.Status)
	}
}

// Validate checks the natural key, shift times and the status enum.
func (r *UpsertScheduleRequest) Validate() error {
	if r.EmployeeID <= 0 || r.StoreID <= 0 {
		return fmt.Errorf("employee_id and store_id are required")
	}
	if r.WorkDate == "" {
		return fmt.Errorf("work_date is required")
	}
	if _, err := time.Parse("2006-01-02", r.WorkDate); err != nil {
		return fmt.Errorf("work_date must be YYYY-MM-DD")
	}
	if r.ShiftStart == "" || r.ShiftEnd == "" {
		return fmt.Errorf("shift_start and shift_end are required")
	}
	if r.Status == "" {
		r.Status = ShiftStatusScheduled
	}
	switch r.Status {
	case ShiftStatusScheduled, ShiftStatusWorked, ShiftStatusMissed:
		return nil
	default:
		return fmt.Errorf("invalid status %q", r.Status)
	}
}
