package models

import (
	"database/sql"
	"fmt"
	"time"
)

// Ride status constants
const (
	RideStatusOpen        = "open"
	RideStatusMaintenance = "maintenance"
	RideStatusClosed      = "closed"
)

// Ride represents a park ride.
type Ride struct {
	RideID      int            `db:"ride_id" json:"ride_id"`
	Name        string         `db:"name" json:"name"`
	Price       float64        `db:"price" json:"price"`
	Capacity    int            `db:"capacity" json:"capacity"`
	Description sql.NullString `db:"description" json:"description,omitempty"`
	Status      string         `db:"status" json:"status"`
	OpenTime    sql.NullString `db:"open_time" json:"open_time,omitempty"`
	CloseTime   sql.NullString `db:"close_time" json:"close_time,omitempty"`
	PhotoPath   sql.NullString `db:"photo_path" json:"photo_path,omitempty"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
}

// CreateRideRequest is the payload for adding a ride.
type CreateRideRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Capacity    int     `json:"capacity"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	OpenTime    string  `json:"open_time"`
	CloseTime   string  `json:"close_time"`
	PhotoPath   string  `json:"photo_path"`
}

// Validate checks required fields and the status enum.
func (r *CreateRideRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Capacity <= 0 {
		return fmt.Errorf("capacity must be positive")
	}
	if r.Status == "" {
		r.Status = RideStatusOpen
	}
	switch r.Status {
	case RideStatusOpen, RideStatusMaintenance, RideStatusClosed:
		return nil
	default:
		return fmt.Errorf("invalid status %q", r.Status)
	}
}
