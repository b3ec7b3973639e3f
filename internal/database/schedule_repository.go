package database

import (
	"fmt"

	"github.com/parkops/themepark-backend/internal/models"
)

// ScheduleRepository handles employee_schedule rows.
type ScheduleRepository struct {
	db DB
}

// NewScheduleRepository creates a new ScheduleRepository
func NewScheduleRepository(db DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// Upsert creates or replaces a shift. The natural key is
// (employee_id, store_id, work_date); scheduling the same key again updates
// the shift times and status of the existing row and returns its id.
func (r *ScheduleRepository) Upsert(req *models.UpsertScheduleRequest) (int, error) {
	query := `
		INSERT INTO employee_schedule (employee_id, store_id, work_date, shift_start, shift_end, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id, store_id, work_date)
		DO UPDATE SET
			shift_start = EXCLUDED.shift_start,
			shift_end   = EXCLUDED.shift_end,
			status      = EXCLUDED.status
		RETURNING schedule_id
	`

	var id int
	err := r.db.QueryRow(query,
		req.EmployeeID, req.StoreID, req.WorkDate,
		req.ShiftStart, req.ShiftEnd, req.Status,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert schedule: %w", err)
	}
	return id, nil
}

// GetByID retrieves a shift by id.
func (r *ScheduleRepository) GetByID(scheduleID int) (*models.Schedule, error) {
	query := `
		SELECT schedule_id, employee_id, store_id, work_date, shift_start, shift_end, status
		FROM employee_schedule
		WHERE schedule_id = $1
	`

	schedule := &models.Schedule{}
	if err := r.db.Get(schedule, query, scheduleID); err != nil {
		return nil, err
	}
	return schedule, nil
}

// UpdateShift edits the shift times and status of an existing row by id.
func (r *ScheduleRepository) UpdateShift(scheduleID int, req *models.UpdateShiftRequest) error {
	query := `
		UPDATE employee_schedule SET
			shift_start = $2,
			shift_end   = $3,
			status      = COALESCE(NULLIF($4, ''), status)
		WHERE schedule_id = $1
	`

	result, err := r.db.Exec(query, scheduleID, req.ShiftStart, req.ShiftEnd, req.Status)
	if err != nil {
		return fmt.Errorf("failed to update schedule: %w", err)
	}
	return requireRowsAffected(result)
}

// Delete hard-deletes a shift.
func (r *ScheduleRepository) Delete(scheduleID int) error {
	result, err := r.db.Exec(`DELETE FROM employee_schedule WHERE schedule_id = $1`, scheduleID)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	return requireRowsAffected(result)
}

// ListByStoreType retrieves the shifts across one department, joined with
// employee and store names, soonest first.
func (r *ScheduleRepository) ListByStoreType(storeType string) ([]models.ScheduleEntry, error) {
	query := `
		SELECT es.schedule_id, es.employee_id, es.store_id, es.work_date,
			es.shift_start, es.shift_end, es.status,
			e.first_name, e.last_name, s.name AS store_name
		FROM employee_schedule es
		JOIN employee e ON es.employee_id = e.employee_id
		JOIN store s ON es.store_id = s.store_id
		WHERE s.type = $1
		ORDER BY es.work_date, es.shift_start
	`

	entries := []models.ScheduleEntry{}
	if err := r.db.Select(&entries, query, storeType); err != nil {
		return nil, err
	}
	return entries, nil
}
