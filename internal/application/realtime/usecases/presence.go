package usecases

import (
	"context"
	"time"

	"campusdesk/internal/application/realtime/dto"
	"campusdesk/internal/domain/realtime"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/biztime"
	"campusdesk/internal/shared/constants"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

// MarkOnlineUseCase refreshes the caller's presence row. Staleness is
// handled at read time, there is no background sweeper.
type MarkOnlineUseCase struct {
	presenceRepo realtime.PresenceRepository
	logger       logger.Interface
}

func NewMarkOnlineUseCase(presenceRepo realtime.PresenceRepository, logger logger.Interface) *MarkOnlineUseCase {
	return &MarkOnlineUseCase{
		presenceRepo: presenceRepo,
		logger:       logger,
	}
}

func (uc *MarkOnlineUseCase) Execute(ctx context.Context, userID uint, channelID string) error {
	if userID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if err := uc.presenceRepo.UpsertOnline(ctx, userID, channelID); err != nil {
		uc.logger.Errorw("failed to mark user online", "user_id", userID, "error", err)
		return err
	}
	return nil
}

type MarkOfflineUseCase struct {
	presenceRepo realtime.PresenceRepository
	logger       logger.Interface
}

func NewMarkOfflineUseCase(presenceRepo realtime.PresenceRepository, logger logger.Interface) *MarkOfflineUseCase {
	return &MarkOfflineUseCase{
		presenceRepo: presenceRepo,
		logger:       logger,
	}
}

func (uc *MarkOfflineUseCase) Execute(ctx context.Context, userID uint) error {
	if userID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if err := uc.presenceRepo.SetOffline(ctx, userID); err != nil {
		uc.logger.Errorw("failed to mark user offline", "user_id", userID, "error", err)
		return err
	}
	return nil
}

type ListOnlineUsersUseCase struct {
	presenceRepo realtime.PresenceRepository
	userRepo     user.UserRepository
	logger       logger.Interface
}

func NewListOnlineUsersUseCase(presenceRepo realtime.PresenceRepository, userRepo user.UserRepository, logger logger.Interface) *ListOnlineUsersUseCase {
	return &ListOnlineUsersUseCase{
		presenceRepo: presenceRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (uc *ListOnlineUsersUseCase) Execute(ctx context.Context) ([]dto.OnlineUserDTO, error) {
	since := biztime.NowUTC().Add(-constants.OnlineWindowMinutes * time.Minute)

	online, err := uc.presenceRepo.ListOnline(ctx, since)
	if err != nil {
		uc.logger.Errorw("failed to list online users", "error", err)
		return nil, err
	}

	result := make([]dto.OnlineUserDTO, 0, len(online))
	ids := make([]uint, 0, len(online))
	for _, o := range online {
		result = append(result, dto.ToOnlineUserDTO(o))
		ids = append(ids, o.UserID())
	}

	names := uc.lookupNames(ctx, ids)
	for i := range result {
		result[i].FullName = names[result[i].UserID]
	}
	return result, nil
}

func (uc *ListOnlineUsersUseCase) lookupNames(ctx context.Context, ids []uint) map[uint]string {
	names := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return names
	}
	users, err := uc.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Warnw("failed to load online user names", "error", err)
		return names
	}
	for _, u := range users {
		names[u.ID()] = u.FullName()
	}
	return names
}
