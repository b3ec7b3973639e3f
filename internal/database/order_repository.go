package database

import (
	"fmt"
	"time"

	"github.com/parkops/themepark-backend/internal/models"
)

// OrderRepository handles store_order and store_order_detail rows.
type OrderRepository struct {
	db DB
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(db DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateWithDetails writes the order header and all line items in one
// transaction. A failed line rolls back the header so a partial order can
// never be persisted.
func (r *OrderRepository) CreateWithDetails(req *models.CreateOrderRequest) (int, error) {
	orderDate := req.OrderDate
	if orderDate == "" {
		orderDate = time.Now().Format("2006-01-02")
	}

	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var orderID int
	err = tx.QueryRow(
		`INSERT INTO store_order (store_id, order_date) VALUES ($1, $2) RETURNING store_order_id`,
		req.StoreID, orderDate,
	).Scan(&orderID)
	if err != nil {
		return 0, fmt.Errorf("failed to create order: %w", err)
	}

	for _, line := range req.Lines {
		_, err = tx.Exec(
			`INSERT INTO store_order_detail (store_order_id, item_id, quantity) VALUES ($1, $2, $3)`,
			orderID, line.ItemID, line.Quantity,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to create order line: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit order: %w", err)
	}
	return orderID, nil
}

// GetByID retrieves an order with its line items.
func (r *OrderRepository) GetByID(orderID int) (*models.OrderWithDetails, error) {
	order := &models.OrderWithDetails{}
	err := r.db.Get(&order.StoreOrder,
		`SELECT store_order_id, store_id, order_date FROM store_order WHERE store_order_id = $1`,
		orderID)
	if err != nil {
		return nil, err
	}

	order.Details = []models.StoreOrderDetail{}
	err = r.db.Select(&order.Details,
		`SELECT store_order_id, item_id, quantity FROM store_order_detail WHERE store_order_id = $1 ORDER BY item_id`,
		orderID)
	if err != nil {
		return nil, err
	}
	return order, nil
}
