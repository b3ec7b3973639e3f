package database

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/parkops/themepark-backend/internal/models"
)

// CustomerRepository handles database operations for customer accounts
type CustomerRepository struct {
	db DB
}

// NewCustomerRepository creates a new CustomerRepository
func NewCustomerRepository(db DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create inserts a customer with an already-hashed password.
func (r *CustomerRepository) Create(customer *models.Customer) error {
	query := `
		INSERT INTO customer (customer_id, first_name, last_name, gender, email, password, dob, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err := r.db.QueryRow(
		query,
		customer.CustomerID, customer.FirstName, customer.LastName, customer.Gender,
		customer.Email, customer.PasswordHash, customer.DOB, customer.Phone,
	).Scan(&customer.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

// GetByEmail retrieves a customer by email.
func (r *CustomerRepository) GetByEmail(email string) (*models.Customer, error) {
	query := `
		SELECT customer_id, first_name, last_name, gender, email, password, dob, phone, created_at
		FROM customer
		WHERE email = $1
	`

	customer := &models.Customer{}
	if err := r.db.Get(customer, query, email); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetByID retrieves a customer by id.
func (r *CustomerRepository) GetByID(customerID uuid.UUID) (*models.Customer, error) {
	query := `
		SELECT customer_id, first_name, last_name, gender, email, password, dob, phone, created_at
		FROM customer
		WHERE customer_id = $1
	`

	customer := &models.Customer{}
	if err := r.db.Get(customer, query, customerID); err != nil {
		return nil, err
	}
	return customer, nil
}
