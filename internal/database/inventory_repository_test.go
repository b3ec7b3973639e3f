package database

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkops/themepark-backend/internal/models"
)

func TestUpsertStock(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewInventoryRepository(db)

	t.Run("Insert", func(t *testing.T) {
		req := &models.UpsertStockRequest{StoreID: 3, ItemID: 10, Quantity: 50}

		mock.ExpectExec(`INSERT INTO store_inventory`).
			WithArgs(3, 10, 50).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpsertStock(req)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Restock Updates Quantity", func(t *testing.T) {
		req := &models.UpsertStockRequest{StoreID: 3, ItemID: 10, Quantity: 75}

		mock.ExpectExec(`INSERT INTO store_inventory`).
			WithArgs(3, 10, 75).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpsertStock(req)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRemoveStock(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewInventoryRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM store_inventory`).
			WithArgs(3, 10).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Remove(3, 10)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM store_inventory`).
			WithArgs(3, 99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Remove(3, 99)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListInventoryByStoreType(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewInventoryRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM store_inventory si`).
		WithArgs(models.StoreTypeGift).
		WillReturnRows(sqlmock.NewRows([]string{
			"store_id", "store_name", "item_id", "item_name", "price", "quantity",
		}).
			AddRow(3, "Castle Gifts", 10, "Plush Dragon", 14.99, 50).
			AddRow(4, "Gateway Souvenirs", 11, "Keychain", 3.50, 200))

	items, err := repo.ListByStoreType(models.StoreTypeGift)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Plush Dragon", items[0].ItemName)
	assert.Equal(t, 200, items[1].Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}
