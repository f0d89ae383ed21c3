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

type RecordViewUseCase struct {
	activityRepo realtime.IssueActivityRepository
	logger       logger.Interface
}

func NewRecordViewUseCase(activityRepo realtime.IssueActivityRepository, logger logger.Interface) *RecordViewUseCase {
	return &RecordViewUseCase{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

func (uc *RecordViewUseCase) Execute(ctx context.Context, issueID, userID uint) error {
	if issueID == 0 || userID == 0 {
		return errors.NewValidationError("issue ID and user ID are required")
	}

	activity, err := realtime.NewIssueActivity(issueID, userID, realtime.ActivityTypeView)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}
	if err := uc.activityRepo.Append(ctx, activity); err != nil {
		uc.logger.Errorw("failed to record issue view", "issue_id", issueID, "user_id", userID, "error", err)
		return err
	}
	return nil
}

type ListViewersUseCase struct {
	activityRepo realtime.IssueActivityRepository
	userRepo     user.UserRepository
	logger       logger.Interface
}

func NewListViewersUseCase(activityRepo realtime.IssueActivityRepository, userRepo user.UserRepository, logger logger.Interface) *ListViewersUseCase {
	return &ListViewersUseCase{
		activityRepo: activityRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// Execute lists users with a view on the issue inside the online window.
func (uc *ListViewersUseCase) Execute(ctx context.Context, issueID uint) ([]dto.ViewerDTO, error) {
	if issueID == 0 {
		return nil, errors.NewValidationError("issue ID is required")
	}
	since := biztime.NowUTC().Add(-constants.OnlineWindowMinutes * time.Minute)

	ids, err := uc.activityRepo.ListViewerIDs(ctx, issueID, since)
	if err != nil {
		uc.logger.Errorw("failed to list issue viewers", "issue_id", issueID, "error", err)
		return nil, err
	}

	result := make([]dto.ViewerDTO, 0, len(ids))
	for _, id := range ids {
		result = append(result, dto.ViewerDTO{UserID: id})
	}

	if len(ids) > 0 {
		users, err := uc.userRepo.GetByIDs(ctx, ids)
		if err != nil {
			uc.logger.Warnw("failed to load viewer names", "error", err)
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
