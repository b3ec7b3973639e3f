package database

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/parkops/themepark-backend/internal/models"
)

// CustomerSessionRepository records successful customer logins with the
// device they came from. The server stays stateless per request; sessions are
// an audit trail, not server-side state.
type CustomerSessionRepository struct {
	db DB
}

// NewCustomerSessionRepository creates a new CustomerSessionRepository
func NewCustomerSessionRepository(db DB) *CustomerSessionRepository {
	return &CustomerSessionRepository{db: db}
}

// Create inserts a session row.
func (r *CustomerSessionRepository) Create(session *models.CustomerSession) error {
	query := `
		INSERT INTO customer_session (session_id, customer_id, user_agent, device, ip_address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := r.db.QueryRow(
		query,
		session.SessionID, session.CustomerID, session.UserAgent, session.Device, session.IPAddress,
	).Scan(&session.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// ListByCustomer retrieves a customer's login history, newest first.
func (r *CustomerSessionRepository) ListByCustomer(customerID uuid.UUID) ([]models.CustomerSession, error) {
	query := `
		SELECT session_id, customer_id, user_agent, device, ip_address, created_at
		FROM customer_session
		WHERE customer_id = $1
		ORDER BY created_at DESC
	`

	sessions := []models.CustomerSession{}
	if err := r.db.Select(&sessions, query, customerID); err != nil {
		return nil, err
	}
	return sessions, nil
}
