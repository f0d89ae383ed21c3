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

type CallbackEndpointRepository struct {
	db     *gorm.DB
	mapper mappers.CallbackMapper
}

func NewCallbackEndpointRepository(db *gorm.DB) *CallbackEndpointRepository {
	return &CallbackEndpointRepository{
		db:     db,
		mapper: mappers.NewCallbackMapper(),
	}
}

func (r *CallbackEndpointRepository) Save(ctx context.Context, endpoint *callback.Endpoint) error {
	model := r.mapper.EndpointToModel(endpoint)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save endpoint: %w", err)
	}

	endpoint.SetID(model.ID)
	return nil
}

func (r *CallbackEndpointRepository) Update(ctx context.Context, endpoint *callback.Endpoint) error {
	model := r.mapper.EndpointToModel(endpoint)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select forces writes of false booleans on deactivation.
	result := tx.
		Model(&models.FrontendEndpointModel{}).
		Where("id = ?", model.ID).
		Select("name", "url", "requires_auth", "is_active", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update endpoint: %w", result.Error)
	}
	return nil
}

func (r *CallbackEndpointRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.FrontendEndpointModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete endpoint: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("endpoint not found")
	}
	return nil
}

func (r *CallbackEndpointRepository) GetByID(ctx context.Context, id uint) (*callback.Endpoint, error) {
	var model models.FrontendEndpointModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find endpoint: %w", err)
	}

	return r.mapper.EndpointToDomain(&model), nil
}

func (r *CallbackEndpointRepository) GetByName(ctx context.Context, name string) (*callback.Endpoint, error) {
	var model models.FrontendEndpointModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find endpoint by name: %w", err)
	}

	return r.mapper.EndpointToDomain(&model), nil
}

func (r *CallbackEndpointRepository) ListActive(ctx context.Context) ([]*callback.Endpoint, error) {
	var endpointModels []*models.FrontendEndpointModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&endpointModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active endpoints: %w", err)
	}

	endpoints := make([]*callback.Endpoint, 0, len(endpointModels))
	for _, model := range endpointModels {
		endpoints = append(endpoints, r.mapper.EndpointToDomain(model))
	}
	return endpoints, nil
}

func (r *CallbackEndpointRepository) List(ctx context.Context, page, pageSize int) ([]*callback.Endpoint, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.FrontendEndpointModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count endpoints: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	var endpointModels []*models.FrontendEndpointModel
	err := tx.
		Order("name ASC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&endpointModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list endpoints: %w", err)
	}

	endpoints := make([]*callback.Endpoint, 0, len(endpointModels))
	for _, model := range endpointModels {
		endpoints = append(endpoints, r.mapper.EndpointToDomain(model))
	}
	return endpoints, total, nil
}
