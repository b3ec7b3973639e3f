package services

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mssola/user_agent"
	"github.com/parkops/themepark-backend/internal/database"
	"github.com/parkops/themepark-backend/internal/models"
	"github.com/parkops/themepark-backend/pkg/jwt"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when email or password do not match.
var ErrInvalidCredentials = errors.New("invalid email or password")

// CustomerAuthService handles customer signup and login.
type CustomerAuthService struct {
	customers  *database.CustomerRepository
	sessions   *database.CustomerSessionRepository
	jwtService *jwt.Service
	bcryptCost int
	logger     *logrus.Logger
}

// NewCustomerAuthService creates a new CustomerAuthService
func NewCustomerAuthService(
	customers *database.CustomerRepository,
	sessions *database.CustomerSessionRepository,
	jwtService *jwt.Service,
	bcryptCost int,
	logger *logrus.Logger,
) *CustomerAuthService {
	return &CustomerAuthService{
		customers:  customers,
		sessions:   sessions,
		jwtService: jwtService,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Signup creates a customer account, issues a token and records the signup
// device as the first session.
func (s *CustomerAuthService) Signup(req *models.SignupRequest, userAgent, ip string) (*models.AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	customer := &models.Customer{
		CustomerID:   uuid.New(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if req.Gender != "" {
		customer.Gender = sql.NullString{String: req.Gender, Valid: true}
	}
	if req.Phone != "" {
		customer.Phone = sql.NullString{String: req.Phone, Valid: true}
	}
	if req.DOB != "" {
		dob, err := time.Parse("2006-01-02", req.DOB)
		if err != nil {
			return nil, err
		}
		customer.DOB = sql.NullTime{Time: dob, Valid: true}
	}

	if err := s.customers.Create(customer); err != nil {
		return nil, err
	}

	token, err := s.jwtService.GenerateToken(customer.CustomerID, customer.Email)
	if err != nil {
		return nil, err
	}

	s.recordSession(customer.CustomerID, userAgent, ip)

	return &models.AuthResponse{Token: token, Customer: customer}, nil
}

// Login verifies credentials, issues a token and records the login session.
// A missing account and a wrong password are indistinguishable to the caller.
func (s *CustomerAuthService) Login(req *models.LoginRequest, userAgent, ip string) (*models.AuthResponse, error) {
	customer, err := s.customers.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(customer.CustomerID, customer.Email)
	if err != nil {
		return nil, err
	}

	s.recordSession(customer.CustomerID, userAgent, ip)

	return &models.AuthResponse{Token: token, Customer: customer}, nil
}

// recordSession stores the login audit row. Failures are logged, not
// surfaced: a lost session row must not fail the login.
func (s *CustomerAuthService) recordSession(customerID uuid.UUID, userAgent, ip string) {
	ua := user_agent.New(userAgent)
	browser, version := ua.Browser()
	device := browser + " " + version + " / " + ua.OS()
	if ua.Mobile() {
		device += " (mobile)"
	}

	session := &models.CustomerSession{
		SessionID:  uuid.New(),
		CustomerID: customerID,
		UserAgent:  userAgent,
		Device:     device,
		IPAddress:  ip,
	}
	if err := s.sessions.Create(session); err != nil {
		s.logger.WithError(err).Warn("Failed to record customer session")
	}
}
