package models

import (
	"database/sql"
	"time"
)

// LowStockThreshold is the stock level below which an item shows up on the
// low-stock report.
const LowStockThreshold = 20

// TopItemsLimit caps the top-sellers report.
const TopItemsLimit = 5

// RecentTransactionsLimit caps the recent-transactions report.
const RecentTransactionsLimit = 20

// SalesSummary is the revenue rollup over the three fixed time buckets.
// Buckets with no matching order lines are 0, never null.
type SalesSummary struct {
	Today float64 `db:"today" json:"today"`
	Week  float64 `db:"week" json:"week"`
	Month float64 `db:"month" json:"month"`
}

// StaffMember is one distinct employee on the dashboard staff list.
type StaffMember struct {
	EmployeeID int    `db:"employee_id" json:"employee_id"`
	FirstName  string `db:"first_name" json:"first_name"`
	LastName   string `db:"last_name" json:"last_name"`
	JobTitle   string `db:"job_title" json:"job_title"`
	Email      string `db:"email" json:"email"`
}

// InventoryItem is one stocked item on the dashboard inventory list.
type InventoryItem struct {
	StoreName string         `db:"store_name" json:"store_name"`
	ItemName  string         `db:"item_name" json:"item_name"`
	Price     float64        `db:"price" json:"price"`
	Quantity  int            `db:"quantity" json:"quantity"`
	Type      sql.NullString `db:"type" json:"type,omitempty"`
	ItemID    int            `db:"item_id" json:"item_id"`
}

// Dashboard is the composite manager view.
type Dashboard struct {
	Staff     []StaffMember   `json:"staff"`
	Inventory []InventoryItem `json:"inventory"`
	Sales     SalesSummary    `json:"sales"`
}

// LowStockItem is one row of the low-stock report, ordered by quantity
// ascending.
type LowStockItem struct {
	Name      string         `db:"name" json:"name"`
	Quantity  int            `db:"quantity" json:"quantity"`
	Price     float64        `db:"price" json:"price"`
	Type      sql.NullString `db:"type" json:"type,omitempty"`
	StoreName string         `db:"store_name" json:"store_name"`
}

// TopItem is one row of the top-sellers report.
type TopItem struct {
	Name      string  `db:"name" json:"name"`
	TotalSold int     `db:"total_sold" json:"total_sold"`
	Revenue   float64 `db:"revenue" json:"revenue"`
}

// StoreStaffSummary is the per-employee fan-in over store assignments: one
// row per employee regardless of how many stores they are assigned to.
type StoreStaffSummary struct {
	EmployeeID     int    `db:"employee_id" json:"employee_id"`
	FirstName      string `db:"first_name" json:"first_name"`
	LastName       string `db:"last_name" json:"last_name"`
	JobTitle       string `db:"job_title" json:"job_title"`
	StoresAssigned int    `db:"stores_assigned" json:"stores_assigned"`
	StoreNames     string `db:"store_names" json:"store_names"`
}

// MaintenanceStaffSummary is the maintenance counterpart: distinct job count
// and the statuses of those jobs.
type MaintenanceStaffSummary struct {
	EmployeeID  int    `db:"employee_id" json:"employee_id"`
	FirstName   string `db:"first_name" json:"first_name"`
	LastName    string `db:"last_name" json:"last_name"`
	JobTitle    string `db:"job_title" json:"job_title"`
	ActiveJobs  int    `db:"active_jobs" json:"active_jobs"`
	JobStatuses string `db:"job_statuses" json:"job_statuses"`
}

// RecentOrder is one row of the recent-transactions report for store
// departments, annotated with its computed total and line count.
type RecentOrder struct {
	StoreOrderID int       `db:"store_order_id" json:"store_order_id"`
	OrderDate    time.Time `db:"order_date" json:"order_date"`
	StoreName    string    `db:"store_name" json:"store_name"`
	TotalAmount  float64   `db:"total_amount" json:"total_amount"`
	ItemCount    int       `db:"item_count" json:"item_count"`
}
