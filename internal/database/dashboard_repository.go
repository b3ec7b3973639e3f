package database

import (
	"fmt"

	"github.com/parkops/themepark-backend/internal/models"
)

// DashboardRepository computes the derived manager views. Every query is
// scoped to a single store type; department routing and the maintenance
// short-circuits live in the handler, so nothing here ever mixes departments.
type DashboardRepository struct {
	db DB
}

// NewDashboardRepository creates a new DashboardRepository
func NewDashboardRepository(db DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// SalesSummary computes the revenue rollup for one store type. All three
// buckets come out of a single conditional-aggregation query rather than
// three round trips, and empty buckets coalesce to 0.
func (r *DashboardRepository) SalesSummary(storeType string) (*models.SalesSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN so.order_date = CURRENT_DATE
				THEN sod.quantity * m.price ELSE 0 END), 0) AS today,
			COALESCE(SUM(CASE WHEN date_trunc('week', so.order_date) = date_trunc('week', CURRENT_DATE)
				THEN sod.quantity * m.price ELSE 0 END), 0) AS week,
			COALESCE(SUM(CASE WHEN date_trunc('month', so.order_date) = date_trunc('month', CURRENT_DATE)
				THEN sod.quantity * m.price ELSE 0 END), 0) AS month
		FROM store_order_detail sod
		JOIN store_order so ON sod.store_order_id = so.store_order_id
		JOIN merchandise m ON sod.item_id = m.item_id
		JOIN store s ON so.store_id = s.store_id
		WHERE s.type = $1
	`

	summary := &models.SalesSummary{}
	if err := r.db.Get(summary, query, storeType); err != nil {
		return nil, fmt.Errorf("failed to compute sales summary: %w", err)
	}
	return summary, nil
}

// Staff retrieves the distinct employees assigned to stores of one type.
func (r *DashboardRepository) Staff(storeType string) ([]models.StaffMember, error) {
	query := `
		SELECT DISTINCT e.employee_id, e.first_name, e.last_name, e.job_title, e.email
		FROM employee e
		JOIN employee_store_job esj ON e.employee_id = esj.employee_id
		JOIN store s ON esj.store_id = s.store_id
		WHERE s.type = $1
	`

	staff := []models.StaffMember{}
	if err := r.db.Select(&staff, query, storeType); err != nil {
		return nil, err
	}
	return staff, nil
}

// MaintenanceStaff retrieves the distinct employees holding at least one
// maintenance assignment.
func (r *DashboardRepository) MaintenanceStaff() ([]models.StaffMember, error) {
	query := `
		SELECT DISTINCT e.employee_id, e.first_name, e.last_name, e.job_title, e.email
		FROM employee e
		JOIN employee_maintenance_job emj ON e.employee_id = emj.employee_id
		JOIN maintenance m ON emj.maintenance_id = m.maintenance_id
	`

	staff := []models.StaffMember{}
	if err := r.db.Select(&staff, query); err != nil {
		return nil, err
	}
	return staff, nil
}

// Inventory retrieves the dashboard inventory list for one store type. The
// quantity shown is the catalog quantity, matching the low-stock report.
func (r *DashboardRepository) Inventory(storeType string) ([]models.InventoryItem, error) {
	query := `
		SELECT s.name AS store_name, m.name AS item_name, m.price, m.quantity, m.type, m.item_id
		FROM store s
		JOIN store_inventory si ON s.store_id = si.store_id
		JOIN merchandise m ON si.item_id = m.item_id
		WHERE s.type = $1
	`

	items := []models.InventoryItem{}
	if err := r.db.Select(&items, query, storeType); err != nil {
		return nil, err
	}
	return items, nil
}

// LowStock retrieves items stocked in one department whose quantity is below
// the threshold, lowest first.
func (r *DashboardRepository) LowStock(storeType string) ([]models.LowStockItem, error) {
	query := `
		SELECT m.name, m.quantity, m.price, m.type, s.name AS store_name
		FROM merchandise m
		JOIN store_inventory si ON m.item_id = si.item_id
		JOIN store s ON si.store_id = s.store_id
		WHERE s.type = $1 AND m.quantity < $2
		ORDER BY m.quantity ASC
	`

	items := []models.LowStockItem{}
	if err := r.db.Select(&items, query, storeType, models.LowStockThreshold); err != nil {
		return nil, err
	}
	return items, nil
}

// TopItems retrieves the best sellers of one department by units sold.
func (r *DashboardRepository) TopItems(storeType string) ([]models.TopItem, error) {
	query := `
		SELECT m.name,
			SUM(sod.quantity) AS total_sold,
			SUM(sod.quantity * m.price) AS revenue
		FROM store_order_detail sod
		JOIN merchandise m ON sod.item_id = m.item_id
		JOIN store_order so ON sod.store_order_id = so.store_order_id
		JOIN store s ON so.store_id = s.store_id
		WHERE s.type = $1
		GROUP BY m.item_id, m.name
		ORDER BY total_sold DESC
		LIMIT $2
	`

	items := []models.TopItem{}
	if err := r.db.Select(&items, query, storeType, models.TopItemsLimit); err != nil {
		return nil, err
	}
	return items, nil
}

// StoreStaffSummary computes the per-employee assignment fan-in for one
// department: one row per employee with a distinct store count and the store
// names joined into a single string. The GROUP BY is what keeps an employee
// with several assignments from appearing (or counting) more than once.
func (r *DashboardRepository) StoreStaffSummary(storeType string) ([]models.StoreStaffSummary, error) {
	query := `
		SELECT e.employee_id, e.first_name, e.last_name, e.job_title,
			COUNT(DISTINCT esj.store_id) AS stores_assigned,
			string_agg(DISTINCT s.name, ',') AS store_names
		FROM employee e
		JOIN employee_store_job esj ON e.employee_id = esj.employee_id
		JOIN store s ON esj.store_id = s.store_id
		WHERE s.type = $1
		GROUP BY e.employee_id, e.first_name, e.last_name, e.job_title
	`

	summaries := []models.StoreStaffSummary{}
	if err := r.db.Select(&summaries, query, storeType); err != nil {
		return nil, err
	}
	return summaries, nil
}

// MaintenanceStaffSummary is the maintenance counterpart: distinct job count
// and the statuses of those jobs per employee.
func (r *DashboardRepository) MaintenanceStaffSummary() ([]models.MaintenanceStaffSummary, error) {
	query := `
		SELECT e.employee_id, e.first_name, e.last_name, e.job_title,
			COUNT(DISTINCT emj.maintenance_id) AS active_jobs,
			string_agg(DISTINCT m.status, ',') AS job_statuses
		FROM employee e
		JOIN employee_maintenance_job emj ON e.employee_id = emj.employee_id
		JOIN maintenance m ON emj.maintenance_id = m.maintenance_id
		GROUP BY e.employee_id, e.first_name, e.last_name, e.job_title
	`

	summaries := []models.MaintenanceStaffSummary{}
	if err := r.db.Select(&summaries, query); err != nil {
		return nil, err
	}
	return summaries, nil
}

// RecentOrders retrieves the latest orders of one department, each annotated
// with its computed total and line count.
func (r *DashboardRepository) RecentOrders(storeType string) ([]models.RecentOrder, error) {
	query := `
		SELECT so.store_order_id, so.order_date, s.name AS store_name,
			SUM(sod.quantity * m.price) AS total_amount,
			COUNT(sod.item_id) AS item_count
		FROM store_order so
		JOIN store s ON so.store_id = s.store_id
		JOIN store_order_detail sod ON so.store_order_id = sod.store_order_id
		JOIN merchandise m ON sod.item_id = m.item_id
		WHERE s.type = $1
		GROUP BY so.store_order_id, so.order_date, s.name
		ORDER BY so.order_date DESC, so.store_order_id DESC
		LIMIT $2
	`

	orders := []models.RecentOrder{}
	if err := r.db.Select(&orders, query, storeType, models.RecentTransactionsLimit); err != nil {
		return nil, err
	}
	return orders, nil
}

// RecentMaintenance retrieves the latest maintenance records with their ride
// names.
func (r *DashboardRepository) RecentMaintenance() ([]models.Maintenance, error) {
	query := `
		SELECT m.maintenance_id, m.ride_id, m.description, m.start_date,
			m.end_date, m.status, r.name AS ride_name
		FROM maintenance m
		LEFT JOIN ride r ON m.ride_id = r.ride_id
		ORDER BY m.start_date DESC, m.maintenance_id DESC
		LIMIT $1
	`

	records := []models.Maintenance{}
	if err := r.db.Select(&records, query, models.RecentTransactionsLimit); err != nil {
		return nil, err
	}
	return records, nil
}
