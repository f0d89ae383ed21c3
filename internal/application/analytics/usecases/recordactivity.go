package usecases

import (
	"context"

	"campusdesk/internal/domain/analytics"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type RecordActivityCommand struct {
	UserID       uint
	ActivityType analytics.ActivityType
	IP           string
	UserAgent    string
	IssueID      *uint
	Details      map[string]interface{}
}

// RecordActivityUseCase appends one activity row. Feeds the daily
// rollups and the active-user dashboard counter.
type RecordActivityUseCase struct {
	activityRepo analytics.UserActivityRepository
	logger       logger.Interface
}

func NewRecordActivityUseCase(activityRepo analytics.UserActivityRepository, logger logger.Interface) *RecordActivityUseCase {
	return &RecordActivityUseCase{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

func (uc *RecordActivityUseCase) Execute(ctx context.Context, cmd RecordActivityCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if !cmd.ActivityType.IsValid() {
		return errors.NewValidationError("invalid activity type")
	}

	activity, err := analytics.NewUserActivity(cmd.UserID, cmd.ActivityType, cmd.IP, cmd.UserAgent, cmd.IssueID, cmd.Details)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.activityRepo.Append(ctx, activity); err != nil {
		uc.logger.Errorw("failed to record user activity",
			"user_id", cmd.UserID,
			"activity_type", cmd.ActivityType.String(),
			"error", err,
		)
		return err
	}
	return nil
}
