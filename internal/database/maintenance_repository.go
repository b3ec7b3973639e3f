package database

import (
	"fmt"

	"github.com/parkops/themepark-backend/internal/models"
)

// MaintenanceRepository handles database operations for maintenance records
type MaintenanceRepository struct {
	db DB
}

// NewMaintenanceRepository creates a new MaintenanceRepository
func NewMaintenanceRepository(db DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

// Create schedules a maintenance record and returns the generated id. A zero
// ride_id stores NULL, for maintenance not tied to any ride.
func (r *MaintenanceRepository) Create(req *models.CreateMaintenanceRequest) (int, error) {
	query := `
		INSERT INTO maintenance (ride_id, description, start_date, status)
		VALUES (NULLIF($1, 0), $2, $3, $4)
		RETURNING maintenance_id
	`

	var id int
	err := r.db.QueryRow(query, req.RideID, req.Description, req.StartDate, req.Status).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create maintenance: %w", err)
	}
	return id, nil
}

// GetByID retrieves a maintenance record with its ride name.
func (r *MaintenanceRepository) GetByID(maintenanceID int) (*models.Maintenance, error) {
	query := `
		SELECT m.maintenance_id, m.ride_id, m.description, m.start_date,
			m.end_date, m.status, r.name AS ride_name
		FROM maintenance m
		LEFT JOIN ride r ON m.ride_id = r.ride_id
		WHERE m.maintenance_id = $1
	`

	record := &models.Maintenance{}
	if err := r.db.Get(record, query, maintenanceID); err != nil {
		return nil, err
	}
	return record, nil
}

// List retrieves all maintenance records, most recent start first.
func (r *MaintenanceRepository) List() ([]models.Maintenance, error) {
	query := `
		SELECT m.maintenance_id, m.ride_id, m.description, m.start_date,
			m.end_date, m.status, r.name AS ride_name
		FROM maintenance m
		LEFT JOIN ride r ON m.ride_id = r.ride_id
		ORDER BY m.start_date DESC, m.maintenance_id DESC
	`

	records := []models.Maintenance{}
	if err := r.db.Select(&records, query); err != nil {
		return nil, err
	}
	return records, nil
}

// Update edits description, end date and status of a record.
func (r *MaintenanceRepository) Update(maintenanceID int, req *models.UpdateMaintenanceRequest) error {
	query := `
		UPDATE maintenance SET
			description = COALESCE(NULLIF($2, ''), description),
			end_date    = COALESCE(NULLIF($3, '')::date, end_date),
			status      = COALESCE(NULLIF($4, ''), status)
		WHERE maintenance_id = $1
	`

	result, err := r.db.Exec(query, maintenanceID, req.Description, req.EndDate, req.Status)
	if err != nil {
		return fmt.Errorf("failed to update maintenance: %w", err)
	}
	return requireRowsAffected(result)
}

// MarkInProcessDue flips scheduled records whose start date has arrived to
// in-process. Returns the number of records moved. Run daily by the roller.
func (r *MaintenanceRepository) MarkInProcessDue() (int64, error) {
	query := `
		UPDATE maintenance
		SET status = $1
		WHERE status = $2 AND start_date <= CURRENT_DATE
	`

	result, err := r.db.Exec(query, models.MaintenanceStatusInProcess, models.MaintenanceStatusScheduled)
	if err != nil {
		return 0, fmt.Errorf("failed to roll due maintenance: %w", err)
	}
	return result.RowsAffected()
}
