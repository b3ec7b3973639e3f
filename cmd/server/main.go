package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/parkops/themepark-backend/internal/config"
	"github.com/parkops/themepark-backend/internal/database"
	"github.com/parkops/themepark-backend/internal/handlers"
	"github.com/parkops/themepark-backend/internal/middleware"
	"github.com/parkops/themepark-backend/internal/services"
	"github.com/parkops/themepark-backend/pkg/jwt"
	"github.com/sirupsen/logrus"
)

var (
	version   = "1.0.0"
	buildTime = "unknown"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logger.Info("Starting ThemePark Operations Backend")
	logger.Infof("Version: %s, Build Time: %s", version, buildTime)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	logLevel, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using INFO")
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	logger.Info("Connecting to database...")
	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	logger.Info("Database connection established")

	// Repositories
	employeeRepo := database.NewEmployeeRepository(db)
	storeRepo := database.NewStoreRepository(db)
	merchandiseRepo := database.NewMerchandiseRepository(db)
	rideRepo := database.NewRideRepository(db)
	maintenanceRepo := database.NewMaintenanceRepository(db)
	inventoryRepo := database.NewInventoryRepository(db)
	orderRepo := database.NewOrderRepository(db)
	assignmentRepo := database.NewAssignmentRepository(db)
	scheduleRepo := database.NewScheduleRepository(db)
	customerRepo := database.NewCustomerRepository(db)
	sessionRepo := database.NewCustomerSessionRepository(db)
	dashboardRepo := database.NewDashboardRepository(db)

	// Services
	logger.Info("Initializing services...")
	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	authService := services.NewCustomerAuthService(customerRepo, sessionRepo, jwtService, cfg.Security.BcryptCost, logger)

	rollerService := services.NewMaintenanceRollerService(maintenanceRepo, logger)
	if err := rollerService.Start(); err != nil {
		logger.Fatalf("Failed to start maintenance roller: %v", err)
	}
	defer rollerService.Stop()

	// Handlers
	managerHandler := handlers.NewManagerHandler(employeeRepo, dashboardRepo, logger)
	rosterHandler := handlers.NewRosterHandler(assignmentRepo, scheduleRepo, logger)
	inventoryHandler := handlers.NewInventoryHandler(storeRepo, inventoryRepo, merchandiseRepo, logger)
	adminHandler := handlers.NewAdminHandler(rideRepo, storeRepo, employeeRepo, maintenanceRepo, merchandiseRepo, logger)
	orderHandler := handlers.NewOrderHandler(orderRepo, storeRepo, logger)
	customerHandler := handlers.NewCustomerHandler(authService, customerRepo, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", healthCheckHandler(db))

	// Manager dashboard and department views
	router.GET("/manager-info/:email", managerHandler.GetManagerInfo)

	manager := router.Group("/manager")
	{
		manager.POST("/assign-employee", rosterHandler.AssignEmployee)
		manager.POST("/assign-maintenance", rosterHandler.AssignMaintenanceJob)
		manager.POST("/schedule", rosterHandler.UpsertSchedule)
		manager.PUT("/schedule/:id", rosterHandler.UpdateSchedule)
		manager.DELETE("/schedule/:id", rosterHandler.DeleteSchedule)

		dept := manager.Group("/:department")
		{
			dept.GET("", managerHandler.GetDashboard)
			dept.GET("/staff-details", managerHandler.GetStaffDetails)
			dept.GET("/recent-transactions", managerHandler.GetRecentTransactions)
			dept.GET("/low-stock", managerHandler.GetLowStock)
			dept.GET("/top-items", managerHandler.GetTopItems)

			dept.GET("/stores", inventoryHandler.GetStores)
			dept.GET("/inventory", inventoryHandler.GetInventory)
			dept.POST("/inventory", inventoryHandler.UpsertInventory)
			dept.DELETE("/inventory", inventoryHandler.RemoveInventory)
			dept.GET("/available-merchandise", inventoryHandler.GetAvailableMerchandise)

			dept.GET("/sales-employees", rosterHandler.GetSalesEmployees)
			dept.DELETE("/sales-employees", rosterHandler.RemoveSalesEmployee)
			dept.GET("/schedules", rosterHandler.GetSchedules)

			dept.POST("/orders", orderHandler.CreateOrder)
			dept.GET("/orders/:id", orderHandler.GetOrder)
		}
	}

	// Admin collection endpoints
	router.GET("/rides", adminHandler.GetRides)
	router.POST("/rides", adminHandler.CreateRide)
	router.PUT("/rides/:id", adminHandler.UpdateRide)
	router.DELETE("/rides/:id", adminHandler.DeleteRide)

	router.GET("/stores", adminHandler.GetStores)
	router.POST("/stores", adminHandler.CreateStore)
	router.PUT("/stores/:id", adminHandler.UpdateStore)
	router.DELETE("/stores/:id", adminHandler.DeleteStore)

	router.GET("/employees", adminHandler.GetEmployees)
	router.POST("/employees", adminHandler.CreateEmployee)
	router.PUT("/employees/:id", adminHandler.UpdateEmployee)
	router.DELETE("/employees/:id", adminHandler.TerminateEmployee)

	router.GET("/maintenances", adminHandler.GetMaintenances)
	router.POST("/maintenances", adminHandler.CreateMaintenance)
	router.PUT("/maintenances/:id", adminHandler.UpdateMaintenance)

	router.GET("/merchandise", adminHandler.GetMerchandise)
	router.POST("/merchandise", adminHandler.CreateMerchandise)
	router.PUT("/merchandise/:id", adminHandler.UpdateMerchandise)
	router.DELETE("/merchandise/:id", adminHandler.DeleteMerchandise)

	// Customer auth
	customer := router.Group("/api/customer")
	{
		customer.POST("/signup", customerHandler.Signup)
		customer.POST("/login", customerHandler.Login)

		protected := customer.Group("")
		protected.Use(middleware.CustomerAuth(jwtService))
		{
			protected.GET("/me", customerHandler.Me)
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Infof("Server listening on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}
	logger.Info("Server stopped")
}

// requestLogger middleware for logging HTTP requests
func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		entry := logger.WithFields(logrus.Fields{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       path,
			"query":      query,
			"ip":         c.ClientIP(),
			"latency_ms": latency.Milliseconds(),
			"user_agent": c.Request.UserAgent(),
		})

		if len(c.Errors) > 0 {
			entry.Error("Request failed with errors")
		} else if c.Writer.Status() >= 500 {
			entry.Error("Request completed with server error")
		} else {
			entry.Info("Request completed")
		}
	}
}

// healthCheckHandler reports process and database health
func healthCheckHandler(db database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "unreachable",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"version":  version,
			"database": "connected",
		})
	}
}
