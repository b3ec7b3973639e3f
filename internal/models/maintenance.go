package models

import (
	"database/sql"
	"fmt"
	"time"
)

// Maintenance status constants
const (
	MaintenanceStatusScheduled = "scheduled"
	MaintenanceStatusInProcess = "in-process"
	MaintenanceStatusDone      = "done"
)

// Maintenance represents a maintenance record, optionally tied to a ride.
type Maintenance struct {
	MaintenanceID int            `db:"maintenance_id" json:"maintenance_id"`
	RideID        sql.NullInt64  `db:"ride_id" json:"ride_id,omitempty"`
	Description   string         `db:"description" json:"description"`
	StartDate     time.Time      `db:"start_date" json:"start_date"`
	EndDate       sql.NullTime   `db:"end_date" json:"end_date,omitempty"`
	Status        string         `db:"status" json:"status"`
	RideName      sql.NullString `db:"ride_name" json:"ride_name,omitempty"`
}

// CreateMaintenanceRequest is the payload for scheduling maintenance.
type CreateMaintenanceRequest struct {
	RideID      int    `json:"ride_id"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"` // YYYY-MM-DD
	Status      string `json:"status"`
}

// Validate checks required fields and the status enum.
func (r *CreateMaintenanceRequest) Validate() error {
	if r.Description == "" {
		return fmt.Errorf("description is required")
	}
	if r.StartDate == "" {
		return fmt.Errorf("start_date is required")
	}
	if _, err := time.Parse("2006-01-02", r.StartDate); err != nil {
		return fmt.Errorf("start_date must be YYYY-MM-DD")
	}
	if r.Status == "" {
		r.Status = MaintenanceStatusScheduled
	}
	switch r.Status {
	case MaintenanceStatusScheduled, MaintenanceStatusInProcess, MaintenanceStatusDone:
		return nil
	default:
		return fmt.Errorf("invalid status %q", r.Status)
	}
}

// UpdateMaintenanceRequest edits a maintenance record. An empty status or
// end_date leaves the column untouched.
type UpdateMaintenanceRequest struct {
	Description string `json:"description"`
	EndDate     string `json:"end_date"` // YYYY-MM-DD
	Status      string `json:"status"`
}

// Validate checks the status enum and date format when present.
func (r *UpdateMaintenanceRequest) Validate() error {
	if r.EndDate != "" {
		if _, err := time.Parse("2006-01-02", r.EndDate); err != nil {
			return fmt.Errorf("end_date must be YYYY-MM-DD")
		}
	}
	switch r.Status {
	case "", MaintenanceStatusScheduled, MaintenanceStatusInProcess, MaintenanceStatusDone:
		return nil
	default:
		return fmt.Errorf("invalid status %q", r.Status)
	}
}
