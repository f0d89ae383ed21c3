package mappers

import (
	"fmt"

	"campusdesk/internal/domain/user"
	vo "campusdesk/internal/domain/user/valueobjects"
	"campusdesk/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between user domain entities and
// persistence models.
type UserMapper interface {
	ToModel(entity *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
	ToDomains(models []*models.UserModel) ([]*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           entity.ID(),
		Email:        entity.Email(),
		PasswordHash: entity.PasswordHash(),
		FirstName:    entity.FirstName(),
		LastName:     entity.LastName(),
		Role:         entity.Role().String(),
		Department:   entity.Department(),
		IsActive:     entity.IsActive(),
		CreatedAt:    timeToMillis(entity.CreatedAt()),
		UpdatedAt:    timeToMillis(entity.UpdatedAt()),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	entity, err := user.ReconstructUser(
		model.ID,
		model.Email,
		model.PasswordHash,
		model.FirstName,
		model.LastName,
		vo.Role(model.Role),
		model.Department,
		model.IsActive,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user (id=%d): %w", model.ID, err)
	}
	return entity, nil
}

func (m *UserMapperImpl) ToDomains(userModels []*models.UserModel) ([]*user.User, error) {
	entities := make([]*user.User, 0, len(userModels))
	for _, model := range userModels {
		entity, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
