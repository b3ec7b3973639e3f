package database

import (
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkops/themepark-backend/internal/models"
)

func TestSalesSummary(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewDashboardRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM store_order_detail`).
			WithArgs(models.StoreTypeGift).
			WillReturnRows(sqlmock.NewRows([]string{"today", "week", "month"}).
				AddRow(125.50, 890.00, 3120.75))

		summary, err := repo.SalesSummary(models.StoreTypeGift)
		require.NoError(t, err)
		assert.Equal(t, 125.50, summary.Today)
		assert.Equal(t, 890.00, summary.Week)
		assert.Equal(t, 3120.75, summary.Month)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No Sales Coalesces To Zero", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM store_order_detail`).
			WithArgs(models.StoreTypeFood).
			WillReturnRows(sqlmock.NewRows([]string{"today", "week", "month"}).
				AddRow(0.0, 0.0, 0.0))

		summary, err := repo.SalesSummary(models.StoreTypeFood)
		require.NoError(t, err)
		assert.Zero(t, summary.Today)
		assert.Zero(t, summary.Week)
		assert.Zero(t, summary.Month)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM store_order_detail`).
			WithArgs(models.StoreTypeGift).
			WillReturnError(fmt.Errorf("database error"))

		summary, err := repo.SalesSummary(models.StoreTypeGift)
		assert.Error(t, err)
		assert.Nil(t, summary)
		assert.Contains(t, err.Error(), "failed to compute sales summary")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLowStock(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewDashboardRepository(db)

	t.Run("Ordered By Quantity Ascending", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM merchandise m`).
			WithArgs(models.StoreTypeGift, models.LowStockThreshold).
			WillReturnRows(sqlmock.NewRows([]string{"name", "quantity", "price", "type", "store_name"}).
				AddRow("Plush Dragon", 2, 14.99, "toy", "Castle Gifts").
				AddRow("Park Map Poster", 11, 5.00, "print", "Castle Gifts").
				AddRow("Keychain", 19, 3.50, "accessory", "Gateway Souvenirs"))

		items, err := repo.LowStock(models.StoreTypeGift)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "Plush Dragon", items[0].Name)
		assert.Equal(t, 2, items[0].Quantity)
		assert.Equal(t, 19, items[2].Quantity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Nothing Below Threshold", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM merchandise m`).
			WithArgs(models.StoreTypeFood, models.LowStockThreshold).
			WillReturnRows(sqlmock.NewRows([]string{"name", "quantity", "price", "type", "store_name"}))

		items, err := repo.LowStock(models.StoreTypeFood)
		require.NoError(t, err)
		assert.Empty(t, items)
		assert.NotNil(t, items)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTopItems(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewDashboardRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM store_order_detail sod`).
		WithArgs(models.StoreTypeGift, models.TopItemsLimit).
		WillReturnRows(sqlmock.NewRows([]string{"name", "total_sold", "revenue"}).
			AddRow("Plush Dragon", 140, 2098.60).
			AddRow("Keychain", 95, 332.50))

	items, err := repo.TopItems(models.StoreTypeGift)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Plush Dragon", items[0].Name)
	assert.Equal(t, 140, items[0].TotalSold)
	assert.Equal(t, 332.50, items[1].Revenue)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreStaffSummary(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewDashboardRepository(db)

	// An employee assigned to several stores collapses to one row with the
	// distinct count and the joined names.
	mock.ExpectQuery(`SELECT (.+) FROM employee e`).
		WithArgs(models.StoreTypeGift).
		WillReturnRows(sqlmock.NewRows([]string{
			"employee_id", "first_name", "last_name", "job_title",
			"stores_assigned", "store_names",
		}).
			AddRow(7, "Maya", "Sato", "Gift Shop Clerk", 2, "Castle Gifts,Gateway Souvenirs").
			AddRow(9, "Liam", "Fernando", "Gift Shop Clerk", 1, "Castle Gifts"))

	summaries, err := repo.StoreStaffSummary(models.StoreTypeGift)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, 2, summaries[0].StoresAssigned)
	assert.Equal(t, "Castle Gifts,Gateway Souvenirs", summaries[0].StoreNames)
	assert.Equal(t, 1, summaries[1].StoresAssigned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMaintenanceStaffSummary(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewDashboardRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM employee e`).
		WillReturnRows(sqlmock.NewRows([]string{
			"employee_id", "first_name", "last_name", "job_title",
			"active_jobs", "job_statuses",
		}).
			AddRow(12, "Nuwan", "Perera", "Mechanic", 3, "in-process,scheduled"))

	summaries, err := repo.MaintenanceStaffSummary()
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, 3, summaries[0].ActiveJobs)
	assert.Equal(t, "in-process,scheduled", summaries[0].JobStatuses)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecentOrders(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewDashboardRepository(db)

	orderDate := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM store_order so`).
		WithArgs(models.StoreTypeFood, models.RecentTransactionsLimit).
		WillReturnRows(sqlmock.NewRows([]string{
			"store_order_id", "order_date", "store_name", "total_amount", "item_count",
		}).
			AddRow(42, orderDate, "Lakeside Grill", 238.40, 5).
			AddRow(41, orderDate.AddDate(0, 0, -1), "Lakeside Grill", 96.00, 2))

	orders, err := repo.RecentOrders(models.StoreTypeFood)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, 42, orders[0].StoreOrderID)
	assert.Equal(t, 238.40, orders[0].TotalAmount)
	assert.Equal(t, 5, orders[0].ItemCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardStaff(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewDashboardRepository(db)

	mock.ExpectQuery(`SELECT DISTINCT (.+) FROM employee e`).
		WithArgs(models.StoreTypeGift).
		WillReturnRows(sqlmock.NewRows([]string{
			"employee_id", "first_name", "last_name", "job_title", "email",
		}).
			AddRow(7, "Maya", "Sato", "Gift Shop Clerk", "maya.sato@park.test"))

	staff, err := repo.Staff(models.StoreTypeGift)
	require.NoError(t, err)
	require.Len(t, staff, 1)
	assert.Equal(t, "maya.sato@park.test", staff[0].Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}
