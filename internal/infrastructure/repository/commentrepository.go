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

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     db,
		mapper: mappers.NewIssueMapper(),
	}
}

func (r *CommentRepository) Save(ctx context.Context, comment *issue.Comment) error {
	model := r.mapper.CommentToModel(comment)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	comment.SetID(model.ID)
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, commentID uint) (*issue.Comment, error) {
	var model models.CommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, commentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}

	return r.mapper.CommentToDomain(&model), nil
}

func (r *CommentRepository) GetByIssueID(ctx context.Context, issueID uint) ([]*issue.Comment, error) {
	var commentModels []*models.CommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("issue_id = ?", issueID).
		Order("created_at ASC, id ASC").
		Find(&commentModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*issue.Comment, 0, len(commentModels))
	for _, model := range commentModels {
		comments = append(comments, r.mapper.CommentToDomain(model))
	}
	return comments, nil
}

func (r *CommentRepository) Delete(ctx context.Context, commentID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.CommentModel{}, commentID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("comment not found")
	}
	return nil
}
