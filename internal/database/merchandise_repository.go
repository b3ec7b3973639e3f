package database

import (
	"fmt"

	"github.com/parkops/themepark-backend/internal/models"
)

// MerchandiseRepository handles database operations for catalog items
type MerchandiseRepository struct {
	db DB
}

// NewMerchandiseRepository creates a new MerchandiseRepository
func NewMerchandiseRepository(db DB) *MerchandiseRepository {
	return &MerchandiseRepository{db: db}
}

// Create inserts a catalog item and returns the generated id.
func (r *MerchandiseRepository) Create(req *models.CreateMerchandiseRequest) (int, error) {
	query := `
		INSERT INTO merchandise (name, price, quantity, type, description)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''))
		RETURNING item_id
	`

	var id int
	err := r.db.QueryRow(query, req.Name, req.Price, req.Quantity, req.Type, req.Description).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create merchandise: %w", err)
	}
	return id, nil
}

// GetByID retrieves a catalog item by id.
func (r *MerchandiseRepository) GetByID(itemID int) (*models.Merchandise, error) {
	query := `
		SELECT item_id, name, price, quantity, type, description
		FROM merchandise
		WHERE item_id = $1
	`

	item := &models.Merchandise{}
	if err := r.db.Get(item, query, itemID); err != nil {
		return nil, err
	}
	return item, nil
}

// List retrieves the whole catalog.
func (r *MerchandiseRepository) List() ([]models.Merchandise, error) {
	query := `
		SELECT item_id, name, price, quantity, type, description
		FROM merchandise
		ORDER BY name
	`

	items := []models.Merchandise{}
	if err := r.db.Select(&items, query); err != nil {
		return nil, err
	}
	return items, nil
}

// ListAvailableForStore retrieves catalog items not yet stocked at the given
// store, the candidates for a new store_inventory row.
func (r *MerchandiseRepository) ListAvailableForStore(storeID int) ([]models.Merchandise, error) {
	query := `
		SELECT m.item_id, m.name, m.price, m.quantity, m.type, m.description
		FROM merchandise m
		WHERE NOT EXISTS (
			SELECT 1 FROM store_inventory si
			WHERE si.item_id = m.item_id AND si.store_id = $1
		)
		ORDER BY m.name
	`

	items := []models.Merchandise{}
	if err := r.db.Select(&items, query, storeID); err != nil {
		return nil, err
	}
	return items, nil
}

// Update edits a catalog item. Price edits retroactively change historical
// revenue figures since order lines carry no price snapshot.
func (r *MerchandiseRepository) Update(itemID int, req *models.CreateMerchandiseRequest) error {
	query := `
		UPDATE merchandise SET
			name        = $2,
			price       = $3,
			quantity    = $4,
			type        = NULLIF($5, ''),
			description = NULLIF($6, '')
		WHERE item_id = $1
	`

	result, err := r.db.Exec(query, itemID, req.Name, req.Price, req.Quantity, req.Type, req.Description)
	if err != nil {
		return fmt.Errorf("failed to update merchandise: %w", err)
	}
	return requireRowsAffected(result)
}

// Delete removes a catalog item. Inventory and order-detail foreign keys
// block the delete while references exist.
func (r *MerchandiseRepository) Delete(itemID int) error {
	result, err := r.db.Exec(`DELETE FROM merchandise WHERE item_id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete merchandise: %w", err)
	}
	return requireRowsAffected(result)
}
