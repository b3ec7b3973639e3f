package models

import (
	"database/sql"
	"fmt"
)

// Merchandise is a catalog item. The quantity here is the catalog-level
// stock; store_inventory carries the per-store stock separately.
type Merchandise struct {
	ItemID      int            `db:"item_id" json:"item_id"`
	Name        string         `db:"name" json:"name"`
	Price       float64        `db:"price" json:"price"`
	Quantity    int            `db:"quantity" json:"quantity"`
	Type        sql.NullString `db:"type" json:"type,omitempty"`
	Description sql.NullString `db:"description" json:"description,omitempty"`
}

// CreateMerchandiseRequest is the payload for adding a catalog item.
type CreateMerchandiseRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
}

// Validate checks required fields.
func (r *CreateMerchandiseRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if r.Quantity < 0 {
		return fmt.Errorf("quantity must not be negative")
	}
	return nil
}

// StockItem is a store_inventory row joined with its store and catalog item,
// the shape the manager inventory screens render.
type StockItem struct {
	StoreID   int     `db:"store_id" json:"store_id"`
	StoreName string  `db:"store_name" json:"store_name"`
	ItemID    int     `db:"item_id" json:"item_id"`
	ItemName  string  `db:"item_name" json:"item_name"`
	Price     float64 `db:"price" json:"price"`
	Quantity  int     `db:"quantity" json:"quantity"`
}

// UpsertStockRequest sets the stock level of an item at a store. Stocking the
// same item twice updates the quantity instead of duplicating the row.
type UpsertStockRequest struct {
	StoreID  int `json:"store_id"`
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity"`
}

// Validate checks the composite key and quantity.
func (r *UpsertStockRequest) Validate() error {
	if r.StoreID <= 0 || r.ItemID <= 0 {
		return fmt.Errorf("store_id and item_id are required")
	}
	if r.Quantity < 0 {
		return fmt.Errorf("quantity must not be negative")
	}
	return nil
}
