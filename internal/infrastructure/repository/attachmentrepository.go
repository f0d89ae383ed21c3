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

type AttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
}

func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{
		db:     db,
		mapper: mappers.NewIssueMapper(),
	}
}

func (r *AttachmentRepository) Save(ctx context.Context, attachment *issue.Attachment) error {
	model := r.mapper.AttachmentToModel(attachment)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save attachment: %w", err)
	}

	attachment.SetID(model.ID)
	return nil
}

func (r *AttachmentRepository) GetByID(ctx context.Context, attachmentID uint) (*issue.Attachment, error) {
	var model models.AttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, attachmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find attachment: %w", err)
	}

	return r.mapper.AttachmentToDomain(&model), nil
}

func (r *AttachmentRepository) GetByIssueID(ctx context.Context, issueID uint) ([]*issue.Attachment, error) {
	var attachmentModels []*models.AttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("issue_id = ?", issueID).
		Order("created_at ASC, id ASC").
		Find(&attachmentModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	attachments := make([]*issue.Attachment, 0, len(attachmentModels))
	for _, model := range attachmentModels {
		attachments = append(attachments, r.mapper.AttachmentToDomain(model))
	}
	return attachments, nil
}

func (r *AttachmentRepository) Delete(ctx context.Context, attachmentID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.AttachmentModel{}, attachmentID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete attachment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("attachment not found")
	}
	return nil
}
