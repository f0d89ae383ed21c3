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

type SetTypingCommand struct {
	IssueID  uint
	UserID   uint
	IsTyping bool
}

type SetTypingUseCase struct {
	typingRepo realtime.TypingRepository
	logger     logger.Interface
}

func NewSetTypingUseCase(typingRepo realtime.TypingRepository, logger logger.Interface) *SetTypingUseCase {
	return &SetTypingUseCase{
		typingRepo: typingRepo,
		logger:     logger,
	}
}

func (uc *SetTypingUseCase) Execute(ctx context.Context, cmd SetTypingCommand) error {
	if cmd.IssueID == 0 || cmd.UserID == 0 {
		return errors.NewValidationError("issue ID and user ID are required")
	}
	if err := uc.typingRepo.Upsert(ctx, cmd.IssueID, cmd.UserID, cmd.IsTyping); err != nil {
		uc.logger.Errorw("failed to update typing status",
			"issue_id", cmd.IssueID,
			"user_id", cmd.UserID,
			"error", err,
		)
		return err
	}
	return nil
}

type ListTypingQuery struct {
	IssueID       uint
	ExcludeUserID uint
}

type ListTypingUseCase struct {
	typingRepo realtime.TypingRepository
	userRepo   user.UserRepository
	logger     logger.Interface
}

func NewListTypingUseCase(typingRepo realtime.TypingRepository, userRepo user.UserRepository, logger logger.Interface) *ListTypingUseCase {
	return &ListTypingUseCase{
		typingRepo: typingRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// Execute returns who is typing on the issue right now. Rows older than
// the typing window are treated as expired.
func (uc *ListTypingUseCase) Execute(ctx context.Context, query ListTypingQuery) ([]dto.TypingUserDTO, error) {
	if query.IssueID == 0 {
		return nil, errors.NewValidationError("issue ID is required")
	}
	since := biztime.NowUTC().Add(-constants.TypingWindowMinutes * time.Minute)

	rows, err := uc.typingRepo.ListTyping(ctx, query.IssueID, since, query.ExcludeUserID)
	if err != nil {
		uc.logger.Errorw("failed to list typing users", "issue_id", query.IssueID, "error", err)
		return nil, err
	}

	result := make([]dto.TypingUserDTO, 0, len(rows))
	ids := make([]uint, 0, len(rows))
	for _, r := range rows {
		if !r.IsTyping() {
			continue
		}
		result = append(result, dto.TypingUserDTO{UserID: r.UserID()})
		ids = append(ids, r.UserID())
	}

	if len(ids) > 0 {
		users, err := uc.userRepo.GetByIDs(ctx, ids)
		if err != nil {
			uc.logger.Warnw("failed to load typing user names", "error", err)
			return result, nil
		}
		names := make(map[uint]string, len(users))
		for _, u := range users {
			names[u.ID()] = u.FullName()
		}
		for i := range result {
			result[i].FullName = names[result[i].UserID]
		}
	}
	return result, nil
}
