package services

import (
	"fmt"

	"github.com/parkops/themepark-backend/internal/database"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// MaintenanceRollerService moves scheduled maintenance records whose start
// date has arrived to in-process, once a day.
type MaintenanceRollerService struct {
	maintenanceRepo *database.MaintenanceRepository
	cron            *cron.Cron
	logger          *logrus.Logger
}

// NewMaintenanceRollerService creates a new MaintenanceRollerService
func NewMaintenanceRollerService(maintenanceRepo *database.MaintenanceRepository, logger *logrus.Logger) *MaintenanceRollerService {
	return &MaintenanceRollerService{
		maintenanceRepo: maintenanceRepo,
		cron:            cron.New(),
		logger:          logger,
	}
}

// Start registers the daily roll job (01:00 server time) and runs it once
// immediately so a restart never leaves records behind.
func (s *MaintenanceRollerService) Start() error {
	if _, err := s.cron.AddFunc("0 1 * * *", s.rollDueJob); err != nil {
		return fmt.Errorf("failed to schedule maintenance roller: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Maintenance roller started")

	go s.rollDueJob()
	return nil
}

// Stop stops the cron scheduler, waiting for a running job to finish.
func (s *MaintenanceRollerService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Maintenance roller stopped")
}

func (s *MaintenanceRollerService) rollDueJob() {
	moved, err := s.maintenanceRepo.MarkInProcessDue()
	if err != nil {
		s.logger.WithError(err).Error("Maintenance roll failed")
		return
	}
	if moved > 0 {
		s.logger.WithField("moved", moved).Info("Maintenance records moved to in-process")
	}
}
