package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"campusdesk/internal/domain/audit"
	"campusdesk/internal/infrastructure/persistence/mappers"
	"campusdesk/internal/infrastructure/persistence/models"
	db "campusdesk/internal/shared/db"
)

type AuditLogRepository struct {
	db     *gorm.DB
	mapper mappers.AuditMapper
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{
		db:     db,
		mapper: mappers.NewAuditMapper(),
	}
}

func (r *AuditLogRepository) Append(ctx context.Context, entry *audit.Entry) error {
	model, err := r.mapper.ToModel(entry)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}

	entry.SetID(model.ID)
	return nil
}

func (r *AuditLogRepository) GetByID(ctx context.Context, id uint) (*audit.Entry, error) {
	var model models.AuditLogModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find audit entry: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AuditLogRepository) List(ctx context.Context, filter audit.EntryFilter) ([]*audit.Entry, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := r.applyFilter(tx.Model(&models.AuditLogModel{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit entries: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	var entryModels []*models.AuditLogModel
	err := query.
		Order("created_at DESC, id DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&entryModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list audit entries: %w", err)
	}

	entries, err := r.mapper.ToDomains(entryModels)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (r *AuditLogRepository) applyFilter(query *gorm.DB, filter audit.EntryFilter) *gorm.DB {
	if filter.Action != nil {
		query = query.Where("action = ?", filter.Action.String())
	}
	if filter.ActorID != nil {
		query = query.Where("actor_id = ?", *filter.ActorID)
	}
	if filter.TargetKind != nil {
		query = query.Where("target_kind = ?", filter.TargetKind.String())
	}
	if filter.Search != "" {
		query = query.Where("object_repr LIKE ?", "%"+filter.Search+"%")
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", filter.From.UnixMilli())
	}
	if filter.To != nil {
		query = query.Where("created_at < ?", filter.To.UnixMilli())
	}
	return query
}
