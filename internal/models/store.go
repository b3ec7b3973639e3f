package models

import (
	"database/sql"
	"fmt"
)

// Store status constants
const (
	StoreStatusOpen        = "open"
	StoreStatusClosed      = "closed"
	StoreStatusMaintenance = "maintenance"
)

// Store represents a park store. The type column ("gift" or "food") is the
// department classification every dashboard query partitions on.
type Store struct {
	StoreID     int            `db:"store_id" json:"store_id"`
	Name        string         `db:"name" json:"name"`
	Type        string         `db:"type" json:"type"`
	Status      string         `db:"status" json:"status"`
	Description sql.NullString `db:"description" json:"description,omitempty"`
	OpenTime    sql.NullString `db:"open_time" json:"open_time,omitempty"`
	CloseTime   sql.NullString `db:"close_time" json:"close_time,omitempty"`
}

// CreateStoreRequest is the payload for opening a new store.
type CreateStoreRequest struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Description string `json:"description"`
	OpenTime    string `json:"open_time"`
	CloseTime   string `json:"close_time"`
}

// Validate checks required fields and the type/status enums.
func (r *CreateStoreRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Type != StoreTypeGift && r.Type != StoreTypeFood {
		return fmt.Errorf("type must be %q or %q", StoreTypeGift, StoreTypeFood)
	}
	if r.Status == "" {
		r.Status = StoreStatusOpen
	}
	switch r.Status {
	case StoreStatusOpen, StoreStatusClosed, StoreStatusMaintenance:
		return nil
	default:
		return fmt.Errorf("invalid status %q", r.Status)
	}
}

// UpdateStoreRequest is the payload for editing a store. Empty fields are
// left untouched; type changes are not allowed since they would silently move
// the store between departments.
type UpdateStoreRequest struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	Description string `json:"description"`
	OpenTime    string `json:"open_time"`
	CloseTime   string `json:"close_time"`
}
