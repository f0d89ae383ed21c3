package usecases

import (
	"context"

	"campusdesk/internal/application/user/dto"
	"campusdesk/internal/domain/user"
	vo "campusdesk/internal/domain/user/valueobjects"
	"campusdesk/internal/shared/logger"
)

// ListFacultyUseCase backs the assignee picker: active faculty only.
type ListFacultyUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewListFacultyUseCase(userRepo user.UserRepository, logger logger.Interface) *ListFacultyUseCase {
	return &ListFacultyUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListFacultyUseCase) Execute(ctx context.Context) ([]dto.UserDTO, error) {
	faculty, err := uc.userRepo.ListByRole(ctx, vo.RoleFaculty)
	if err != nil {
		uc.logger.Errorw("failed to list faculty", "error", err)
		return nil, err
	}

	result := make([]dto.UserDTO, 0, len(faculty))
	for _, u := range faculty {
		if !u.IsActive() {
			continue
		}
		result = append(result, dto.ToUserDTO(u))
	}
	return result, nil
}
