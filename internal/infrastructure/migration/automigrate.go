package migration

import (
	"fmt"

	"gorm.io/gorm"

	"campusdesk/internal/infrastructure/persistence/models"
	"campusdesk/internal/shared/logger"
)

// AutoMigrateModels returns every persistent model in dependency-free
// order. Relationships are managed by application logic, so the order
// only matters for readability.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.IssueModel{},
		&models.StatusRecordModel{},
		&models.CommentModel{},
		&models.AttachmentModel{},
		&models.NotificationModel{},
		&models.AuditLogModel{},
		&models.UserActivityModel{},
		&models.OnlineUserModel{},
		&models.TypingStatusModel{},
		&models.IssueActivityModel{},
		&models.IssueMetricsModel{},
		&models.UserMetricsModel{},
		&models.DashboardStatsModel{},
		&models.FrontendEndpointModel{},
		&models.FrontendAPICallModel{},
	}
}

// GormAutoMigrateStrategy derives the schema from the model structs.
// Intended for development; production uses versioned SQL scripts.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy(log logger.Interface) Strategy {
	return &GormAutoMigrateStrategy{logger: log}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, modelList ...interface{}) error {
	if len(modelList) == 0 {
		modelList = AutoMigrateModels()
	}

	s.logger.Infow("starting gorm auto migration", "models", len(modelList))

	if err := db.AutoMigrate(modelList...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	s.logger.Infow("gorm auto migration completed")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
