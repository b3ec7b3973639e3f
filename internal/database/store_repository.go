package database

import (
	"fmt"

	"github.com/parkops/themepark-backend/internal/models"
)

// StoreRepository handles database operations for stores
type StoreRepository struct {
	db DB
}

// NewStoreRepository creates a new StoreRepository
func NewStoreRepository(db DB) *StoreRepository {
	return &StoreRepository{db: db}
}

// Create inserts a new store and returns the generated id.
func (r *StoreRepository) Create(req *models.CreateStoreRequest) (int, error) {
	query := `
		INSERT INTO store (name, type, status, description, open_time, close_time)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''))
		RETURNING store_id
	`

	var id int
	err := r.db.QueryRow(
		query,
		req.Name, req.Type, req.Status, req.Description, req.OpenTime, req.CloseTime,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create store: %w", err)
	}
	return id, nil
}

// GetByID retrieves a store by id.
func (r *StoreRepository) GetByID(storeID int) (*models.Store, error) {
	query := `
		SELECT store_id, name, type, status, description, open_time, close_time
		FROM store
		WHERE store_id = $1
	`

	store := &models.Store{}
	if err := r.db.Get(store, query, storeID); err != nil {
		return nil, err
	}
	return store, nil
}

// List retrieves all stores.
func (r *StoreRepository) List() ([]models.Store, error) {
	query := `
		SELECT store_id, name, type, status, description, open_time, close_time
		FROM store
		ORDER BY name
	`

	stores := []models.Store{}
	if err := r.db.Select(&stores, query); err != nil {
		return nil, err
	}
	return stores, nil
}

// ListByType retrieves the stores of one department.
func (r *StoreRepository) ListByType(storeType string) ([]models.Store, error) {
	query := `
		SELECT store_id, name, type, status, description, open_time, close_time
		FROM store
		WHERE type = $1
		ORDER BY name
	`

	stores := []models.Store{}
	if err := r.db.Select(&stores, query, storeType); err != nil {
		return nil, err
	}
	return stores, nil
}

// Update edits a store. The type column is deliberately not updatable:
// changing it would move the store between departments.
func (r *StoreRepository) Update(storeID int, req *models.UpdateStoreRequest) error {
	query := `
		UPDATE store SET
			name        = COALESCE(NULLIF($2, ''), name),
			status      = COALESCE(NULLIF($3, ''), status),
			description = COALESCE(NULLIF($4, ''), description),
			open_time   = COALESCE(NULLIF($5, ''), open_time),
			close_time  = COALESCE(NULLIF($6, ''), close_time)
		WHERE store_id = $1
	`

	result, err := r.db.Exec(query, storeID,
		req.Name, req.Status, req.Description, req.OpenTime, req.CloseTime)
	if err != nil {
		return fmt.Errorf("failed to update store: %w", err)
	}
	return requireRowsAffected(result)
}

// Delete removes a store. Referencing inventory, order, assignment and
// schedule rows block the delete through their foreign keys.
func (r *StoreRepository) Delete(storeID int) error {
	result, err := r.db.Exec(`DELETE FROM store WHERE store_id = $1`, storeID)
	if err != nil {
		return fmt.Errorf("failed to delete store: %w", err)
	}
	return requireRowsAffected(result)
}
