package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"campusdesk/internal/domain/callback"
	"campusdesk/internal/infrastructure/persistence/mappers"
	"campusdesk/internal/infrastructure/persistence/models"
	db "campusdesk/internal/shared/db"
)

type APICallRepository struct {
	db     *gorm.DB
	mapper mappers.CallbackMapper
}

func NewAPICallRepository(db *gorm.DB) *APICallRepository {
	return &APICallRepository{
		db:     db,
		mapper: mappers.NewCallbackMapper(),
	}
}

func (r *APICallRepository) Save(ctx context.Context, call *callback.APICall) error {
	model, err := r.mapper.APICallToModel(call)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save api call: %w", err)
	}

	call.SetID(model.ID)
	return nil
}

func (r *APICallRepository) Update(ctx context.Context, call *callback.APICall) error {
	model, err := r.mapper.APICallToModel(call)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.
		Model(&models.FrontendAPICallModel{}).
		Where("id = ?", model.ID).
		Select("status", "response", "error_message", "retry_count", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update api call: %w", result.Error)
	}
	return nil
}

func (r *APICallRepository) GetByID(ctx context.Context, id uint) (*callback.APICall, error) {
	var model models.FrontendAPICallModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find api call: %w", err)
	}

	return r.mapper.APICallToDomain(&model)
}

func (r *APICallRepository) List(ctx context.Context, page, pageSize int) ([]*callback.APICall, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.FrontendAPICallModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count api calls: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	var callModels []*models.FrontendAPICallModel
	err := tx.
		Order("created_at DESC, id DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&callModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list api calls: %w", err)
	}

	calls := make([]*callback.APICall, 0, len(callModels))
	for _, model := range callModels {
		call, err := r.mapper.APICallToDomain(model)
		if err != nil {
			return nil, 0, err
		}
		calls = append(calls, call)
	}
	return calls, total, nil
}

func (r *APICallRepository) ListRetryable(ctx context.Context, maxRetries, limit int) ([]*callback.APICall, error) {
	var callModels []*models.FrontendAPICallModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("status IN ? AND retry_count < ?",
			[]string{callback.CallStatusPending.String(), callback.CallStatusRetrying.String()},
			maxRetries).
		Order("created_at ASC").
		Limit(limit).
		Find(&callModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list retryable api calls: %w", err)
	}

	calls := make([]*callback.APICall, 0, len(callModels))
	for _, model := range callModels {
		call, err := r.mapper.APICallToDomain(model)
		if err != nil {
			return nil, err
		}
		calls = append(calls, call)
	}
	return calls, nil
}
