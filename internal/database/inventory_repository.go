package database

import (
	"fmt"

	"github.com/parkops/themepark-backend/internal/models"
)

// InventoryRepository handles store_inventory rows, the store-to-merchandise
// join table with its own per-store stock level.
type InventoryRepository struct {
	db DB
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// UpsertStock stocks an item at a store. Re-stocking the same pair updates
// the quantity instead of inserting a duplicate row.
func (r *InventoryRepository) UpsertStock(req *models.UpsertStockRequest) error {
	query := `
		INSERT INTO store_inventory (store_id, item_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (store_id, item_id)
		DO UPDATE SET quantity = EXCLUDED.quantity
	`

	if _, err := r.db.Exec(query, req.StoreID, req.ItemID, req.Quantity); err != nil {
		return fmt.Errorf("failed to upsert stock: %w", err)
	}
	return nil
}

// Remove hard-deletes an inventory row.
func (r *InventoryRepository) Remove(storeID, itemID int) error {
	result, err := r.db.Exec(
		`DELETE FROM store_inventory WHERE store_id = $1 AND item_id = $2`,
		storeID, itemID)
	if err != nil {
		return fmt.Errorf("failed to remove stock: %w", err)
	}
	return requireRowsAffected(result)
}

// ListByStore retrieves the stocked items of one store.
func (r *InventoryRepository) ListByStore(storeID int) ([]models.StockItem, error) {
	query := `
		SELECT si.store_id, s.name AS store_name, si.item_id,
			m.name AS item_name, m.price, si.quantity
		FROM store_inventory si
		JOIN store s ON si.store_id = s.store_id
		JOIN merchandise m ON si.item_id = m.item_id
		WHERE si.store_id = $1
		ORDER BY m.name
	`

	items := []models.StockItem{}
	if err := r.db.Select(&items, query, storeID); err != nil {
		return nil, err
	}
	return items, nil
}

// ListByStoreType retrieves the stocked items across one department.
func (r *InventoryRepository) ListByStoreType(storeType string) ([]models.StockItem, error) {
	query := `
		SELECT si.store_id, s.name AS store_name, si.item_id,
			m.name AS item_name, m.price, si.quantity
		FROM store_inventory si
		JOIN store s ON si.store_id = s.store_id
		JOIN merchandise m ON si.item_id = m.item_id
		WHERE s.type = $1
		ORDER BY s.name, m.name
	`

	items := []models.StockItem{}
	if err := r.db.Select(&items, query, storeType); err != nil {
		return nil, err
	}
	return items, nil
}
