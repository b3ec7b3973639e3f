package database

import (
	"fmt"
	"time"

	"github.com/parkops/themepark-backend/internal/models"
)

// AssignmentRepository handles the employee_store_job and
// employee_maintenance_job join tables.
type AssignmentRepository struct {
	db DB
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(db DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// UpsertStoreAssignment assigns an employee to a store. Assigning the same
// pair again updates work_date and worked_hour on the existing row, so the
// write is idempotent per (employee, store).
func (r *AssignmentRepository) UpsertStoreAssignment(req *models.AssignEmployeeRequest) error {
	workDate := req.WorkDate
	if workDate == "" {
		workDate = time.Now().Format("2006-01-02")
	}

	query := `
		INSERT INTO employee_store_job (employee_id, store_id, work_date, worked_hour)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id, store_id)
		DO UPDATE SET work_date = EXCLUDED.work_date, worked_hour = EXCLUDED.worked_hour
	`

	if _, err := r.db.Exec(query, req.EmployeeID, req.StoreID, workDate, req.WorkedHour); err != nil {
		return fmt.Errorf("failed to assign employee: %w", err)
	}
	return nil
}

// RemoveStoreAssignment hard-deletes an assignment row.
func (r *AssignmentRepository) RemoveStoreAssignment(employeeID, storeID int) error {
	result, err := r.db.Exec(
		`DELETE FROM employee_store_job WHERE employee_id = $1 AND store_id = $2`,
		employeeID, storeID)
	if err != nil {
		return fmt.Errorf("failed to remove assignment: %w", err)
	}
	return requireRowsAffected(result)
}

// ListSalesEmployeesByType retrieves the assignments across one department,
// joined with employee and store names.
func (r *AssignmentRepository) ListSalesEmployeesByType(storeType string) ([]models.SalesEmployee, error) {
	query := `
		SELECT e.employee_id, e.first_name, e.last_name, e.job_title,
			s.store_id, s.name AS store_name, esj.work_date, esj.worked_hour
		FROM employee_store_job esj
		JOIN employee e ON esj.employee_id = e.employee_id
		JOIN store s ON esj.store_id = s.store_id
		WHERE s.type = $1
		ORDER BY e.last_name, e.first_name, s.name
	`

	employees := []models.SalesEmployee{}
	if err := r.db.Select(&employees, query, storeType); err != nil {
		return nil, err
	}
	return employees, nil
}

// UpsertMaintenanceAssignment assigns an employee to a maintenance job.
// Assigning the same pair again is a no-op.
func (r *AssignmentRepository) UpsertMaintenanceAssignment(req *models.AssignMaintenanceRequest) error {
	query := `
		INSERT INTO employee_maintenance_job (employee_id, maintenance_id)
		VALUES ($1, $2)
		ON CONFLICT (employee_id, maintenance_id) DO NOTHING
	`

	if _, err := r.db.Exec(query, req.EmployeeID, req.MaintenanceID); err != nil {
		return fmt.Errorf("failed to assign maintenance job: %w", err)
	}
	return nil
}

// RemoveMaintenanceAssignment hard-deletes a maintenance assignment row.
func (r *AssignmentRepository) RemoveMaintenanceAssignment(employeeID, maintenanceID int) error {
	result, err := r.db.Exec(
		`DELETE FROM employee_maintenance_job WHERE employee_id = $1 AND maintenance_id = $2`,
		employeeID, maintenanceID)
	if err != nil {
		return fmt.Errorf("failed to remove maintenance assignment: %w", err)
	}
	return requireRowsAffected(result)
}
