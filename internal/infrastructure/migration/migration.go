// Package migration manages the database schema. Development
// environments derive the schema from the gorm models; test and
// production environments apply versioned SQL scripts.
package migration

import (
	"fmt"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"campusdesk/internal/shared/constants"
	"campusdesk/internal/shared/logger"
)

// Manager runs migrations through an environment-selected strategy.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

func NewManager(environment string, log logger.Interface) *Manager {
	var strategy Strategy

	switch strings.ToLower(environment) {
	case constants.EnvDevelopment:
		strategy = NewGormAutoMigrateStrategy(log)
	case constants.EnvTest, constants.EnvProduction:
		scriptsPath, _ := filepath.Abs("./internal/infrastructure/migration/scripts")
		strategy = NewGooseStrategy(scriptsPath, log)
	default:
		strategy = NewGormAutoMigrateStrategy(log)
	}

	return &Manager{
		strategy: strategy,
		logger:   log,
	}
}

func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log,
	}
}

func (m *Manager) Migrate(db *gorm.DB, models ...interface{}) error {
	m.logger.Infow("starting database migration",
		"strategy", m.strategy.GetName(),
		"models_count", len(models))

	if err := m.strategy.Migrate(db, models...); err != nil {
		m.logger.Errorw("migration failed",
			"strategy", m.strategy.GetName(),
			"error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed",
		"strategy", m.strategy.GetName())

	return nil
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
