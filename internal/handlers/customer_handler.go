package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/parkops/themepark-backend/internal/database"
	"github.com/parkops/themepark-backend/internal/middleware"
	"github.com/parkops/themepark-backend/internal/models"
	"github.com/parkops/themepark-backend/internal/services"
	"github.com/sirupsen/logrus"
)

// CustomerHandler serves the customer auth lifecycle.
type CustomerHandler struct {
	authService  *services.CustomerAuthService
	customerRepo *database.CustomerRepository
	logger       *logrus.Logger
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(authService *services.CustomerAuthService, customerRepo *database.CustomerRepository, logger *logrus.Logger) *CustomerHandler {
	return &CustomerHandler{
		authService:  authService,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Signup creates a customer account and returns a token with the customer.
// POST /api/customer/signup
func (h *CustomerHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload", "message": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_error", "message": err.Error()})
		return
	}

	resp, err := h.authService.Signup(&req, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		if errors.Is(err, database.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation_error", "message": "Email already registered"})
			return
		}
		h.logger.WithError(err).Error("Signup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error", "message": "Signup failed"})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login verifies credentials and returns a token with the customer.
// POST /api/customer/login
func (h *CustomerHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload", "message": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_error", "message": err.Error()})
		return
	}

	resp, err := h.authService.Login(&req, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials", "message": "Invalid email or password"})
			return
		}
		h.logger.WithError(err).Error("Login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error", "message": "Login failed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me returns the authenticated customer.
// GET /api/customer/me
func (h *CustomerHandler) Me(c *gin.Context) {
	customerCtx, exists := middleware.GetCustomerContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized", "message": "Not authenticated"})
		return
	}

	customer, err := h.customerRepo.GetByID(customerCtx.CustomerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Customer not found"})
			return
		}
		h.logger.WithError(err).Error("Failed to fetch customer")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database_error", "message": "Failed to fetch customer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": customer})
}
