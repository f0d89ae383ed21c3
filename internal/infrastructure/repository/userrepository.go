package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"campusdesk/internal/domain/user"
	vo "campusdesk/internal/domain/user/valueobjects"
	"campusdesk/internal/infrastructure/persistence/mappers"
	"campusdesk/internal/infrastructure/persistence/models"
	db "campusdesk/internal/shared/db"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	u.SetID(model.ID)
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select forces writes of zeroed columns, notably is_active on
	// deactivation and an emptied department.
	result := tx.
		Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Select("email", "password_hash", "first_name", "last_name", "role", "department", "is_active", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) GetByIDs(ctx context.Context, userIDs []uint) ([]*user.User, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	var userModels []*models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id IN ?", userIDs).Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find users by IDs: %w", err)
	}

	return r.mapper.ToDomains(userModels)
}

func (r *UserRepository) ListByRole(ctx context.Context, role vo.Role) ([]*user.User, error) {
	var userModels []*models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("role = ?", role.String()).
		Order("last_name ASC, first_name ASC").
		Find(&userModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users by role: %w", err)
	}

	return r.mapper.ToDomains(userModels)
}

func (r *UserRepository) List(ctx context.Context, page, pageSize int) ([]*user.User, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.UserModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	var userModels []*models.UserModel
	err := tx.
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&userModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	users, err := r.mapper.ToDomains(userModels)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.UserModel{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.UserModel{}).
		Where("created_at >= ? AND created_at < ?", from.UnixMilli(), to.UnixMilli()).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count new users: %w", err)
	}
	return count, nil
}
