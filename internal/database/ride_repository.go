package database

import (
	"fmt"

	"github.com/parkops/themepark-backend/internal/models"
)

// RideRepository handles database operations for rides
type RideRepository struct {
	db DB
}

// NewRideRepository creates a new RideRepository
func NewRideRepository(db DB) *RideRepository {
	return &RideRepository{db: db}
}

// Create inserts a ride and returns the generated id.
func (r *RideRepository) Create(req *models.CreateRideRequest) (int, error) {
	query := `
		INSERT INTO ride (name, price, capacity, description, status, open_time, close_time, photo_path)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''))
		RETURNING ride_id
	`

	var id int
	err := r.db.QueryRow(
		query,
		req.Name, req.Price, req.Capacity, req.Description,
		req.Status, req.OpenTime, req.CloseTime, req.PhotoPath,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create ride: %w", err)
	}
	return id, nil
}

// GetByID retrieves a ride by id.
func (r *RideRepository) GetByID(rideID int) (*models.Ride, error) {
	query := `
		SELECT ride_id, name, price, capacity, description, status,
			open_time, close_time, photo_path, created_at
		FROM ride
		WHERE ride_id = $1
	`

	ride := &models.Ride{}
	if err := r.db.Get(ride, query, rideID); err != nil {
		return nil, err
	}
	return ride, nil
}

// List retrieves all rides, newest first.
func (r *RideRepository) List() ([]models.Ride, error) {
	query := `
		SELECT ride_id, name, price, capacity, description, status,
			open_time, close_time, photo_path, created_at
		FROM ride
		ORDER BY created_at DESC
	`

	rides := []models.Ride{}
	if err := r.db.Select(&rides, query); err != nil {
		return nil, err
	}
	return rides, nil
}

// Update edits a ride.
func (r *RideRepository) Update(rideID int, req *models.CreateRideRequest) error {
	query := `
		UPDATE ride SET
			name        = $2,
			price       = $3,
			capacity    = $4,
			description = NULLIF($5, ''),
			status      = $6,
			open_time   = COALESCE(NULLIF($7, ''), open_time),
			close_time  = COALESCE(NULLIF($8, ''), close_time),
			photo_path  = COALESCE(NULLIF($9, ''), photo_path)
		WHERE ride_id = $1
	`

	result, err := r.db.Exec(query, rideID,
		req.Name, req.Price, req.Capacity, req.Description,
		req.Status, req.OpenTime, req.CloseTime, req.PhotoPath)
	if err != nil {
		return fmt.Errorf("failed to update ride: %w", err)
	}
	return requireRowsAffected(result)
}

// Delete removes a ride. Maintenance rows keep their nullable ride_id via
// ON DELETE SET NULL.
func (r *RideRepository) Delete(rideID int) error {
	result, err := r.db.Exec(`DELETE FROM ride WHERE ride_id = $1`, rideID)
	if err != nil {
		return fmt.Errorf("failed to delete ride: %w", err)
	}
	return requireRowsAffected(result)
}
