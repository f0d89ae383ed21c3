package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"campusdesk/internal/domain/issue"
	"campusdesk/internal/infrastructure/persistence/mappers"
	"campusdesk/internal/infrastructure/persistence/models"
	db "campusdesk/internal/shared/db"
)

type StatusRecordRepository struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
}

func NewStatusRecordRepository(db *gorm.DB) *StatusRecordRepository {
	return &StatusRecordRepository{
		db:     db,
		mapper: mappers.NewIssueMapper(),
	}
}

func (r *StatusRecordRepository) Append(ctx context.Context, record *issue.StatusRecord) error {
	model := r.mapper.StatusRecordToModel(record)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append status record: %w", err)
	}

	record.SetID(model.ID)
	return nil
}

func (r *StatusRecordRepository) GetByIssueID(ctx context.Context, issueID uint) ([]*issue.StatusRecord, error) {
	var recordModels []*models.StatusRecordModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("issue_id = ?", issueID).
		Order("created_at ASC, id ASC").
		Find(&recordModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list status records: %w", err)
	}

	records := make([]*issue.StatusRecord, 0, len(recordModels))
	for _, model := range recordModels {
		records = append(records, r.mapper.StatusRecordToDomain(model))
	}
	return records, nil
}
