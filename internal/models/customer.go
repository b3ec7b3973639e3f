package models

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Customer is a park guest account. The password column stores a bcrypt hash,
// never the plain text.
type Customer struct {
	CustomerID   uuid.UUID      `db:"customer_id" json:"customer_id"`
	FirstName    string         `db:"first_name" json:"first_name"`
	LastName     string         `db:"last_name" json:"last_name"`
	Gender       sql.NullString `db:"gender" json:"gender,omitempty"`
	Email        string         `db:"email" json:"email"`
	PasswordHash string         `db:"password" json:"-"`
	DOB          sql.NullTime   `db:"dob" json:"dob,omitempty"`
	Phone        sql.NullString `db:"phone" json:"phone,omitempty"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
}

// CustomerSession records one successful login with the device it came from.
type CustomerSession struct {
	SessionID  uuid.UUID `db:"session_id" json:"session_id"`
	CustomerID uuid.UUID `db:"customer_id" json:"customer_id"`
	UserAgent  string    `db:"user_agent" json:"user_agent"`
	Device     string    `db:"device" json:"device"`
	IPAddress  string    `db:"ip_address" json:"ip_address"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// SignupRequest is the customer signup payload.
type SignupRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	DOB       string `json:"dob"` // YYYY-MM-DD
	Phone     string `json:"phone"`
}

// Validate checks required signup fields.
func (r *SignupRequest) Validate() error {
	if r.FirstName == "" || r.LastName == "" {
		return fmt.Errorf("first_name and last_name are required")
	}
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	if r.Email == "" || !strings.Contains(r.Email, "@") {
		return fmt.Errorf("a valid email is required")
	}
	if len(r.Password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	if r.DOB != "" {
		if _, err := time.Parse("2006-01-02", r.DOB); err != nil {
			return fmt.Errorf("dob must be YYYY-MM-DD")
		}
	}
	return nil
}

// LoginRequest is the customer login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks both credentials are present.
func (r *LoginRequest) Validate() error {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	if r.Email == "" || r.Password == "" {
		return fmt.Errorf("email and password are required")
	}
	return nil
}

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	Token    string    `json:"token"`
	Customer *Customer `json:"customer"`
}
