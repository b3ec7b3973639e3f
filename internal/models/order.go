package models

import (
	"fmt"
	"time"
)

// StoreOrder is an order header. Line items live in store_order_detail.
type StoreOrder struct {
	StoreOrderID int       `db:"store_order_id" json:"store_order_id"`
	StoreID      int       `db:"store_id" json:"store_id"`
	OrderDate    time.Time `db:"order_date" json:"order_date"`
}

// StoreOrderDetail is one line of an order. Revenue is always computed at
// query time as quantity * current catalog price; there is no price snapshot
// on the line.
type StoreOrderDetail struct {
	StoreOrderID int `db:"store_order_id" json:"store_order_id"`
	ItemID       int `db:"item_id" json:"item_id"`
	Quantity     int `db:"quantity" json:"quantity"`
}

// OrderWithDetails is a full order read.
type OrderWithDetails struct {
	StoreOrder
	Details []StoreOrderDetail `json:"details"`
}

// OrderLineRequest is one requested line item.
type OrderLineRequest struct {
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity"`
}

// CreateOrderRequest records an order with its line items. Header and lines
// are written in one transaction so a partial order can never be persisted.
type CreateOrderRequest struct {
	StoreID   int                `json:"store_id"`
	OrderDate string             `json:"order_date"` // YYYY-MM-DD, defaults to today
	Lines     []OrderLineRequest `json:"lines"`
}

// Validate checks the header and every line.
func (r *CreateOrderRequest) Validate() error {
	if r.StoreID <= 0 {
		return fmt.Errorf("store_id is required")
	}
	if len(r.Lines) == 0 {
		return fmt.Errorf("at least one line item is required")
	}
	if r.OrderDate != "" {
		if _, err := time.Parse("2006-01-02", r.OrderDate); err != nil {
			return fmt.Errorf("order_date must be YYYY-MM-DD")
		}
	}
	for i, l := range r.Lines {
		if l.ItemID <= 0 {
			return fmt.Errorf("lines[%d].item_id is required", i)
		}
		if l.Quantity <= 0 {
			return fmt.Errorf("lines[%d].quantity must be positive", i)
		}
	}
	return nil
}
