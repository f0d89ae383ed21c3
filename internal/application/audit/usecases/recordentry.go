package usecases

import (
	"context"

	"campusdesk/internal/domain/audit"
	vo "campusdesk/internal/domain/audit/valueobjects"
	"campusdesk/internal/domain/shared/ref"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type RecordEntryCommand struct {
	ActorID    *uint
	Action     vo.Action
	Target     ref.TargetRef
	ObjectRepr string
	IP         string
	Details    map[string]interface{}
}

// RecordEntryUseCase appends to the audit trail. It is fed by event
// handlers and by handlers for actions with no domain event.
type RecordEntryUseCase struct {
	entryRepo audit.EntryRepository
	logger    logger.Interface
}

func NewRecordEntryUseCase(entryRepo audit.EntryRepository, logger logger.Interface) *RecordEntryUseCase {
	return &RecordEntryUseCase{
		entryRepo: entryRepo,
		logger:    logger,
	}
}

func (uc *RecordEntryUseCase) Execute(ctx context.Context, cmd RecordEntryCommand) error {
	if !cmd.Action.IsValid() {
		return errors.NewValidationError("invalid audit action")
	}

	entry, err := audit.NewEntry(cmd.ActorID, cmd.Action, cmd.Target, cmd.ObjectRepr, cmd.IP, cmd.Details)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.entryRepo.Append(ctx, entry); err != nil {
		uc.logger.Errorw("failed to append audit entry", "action", cmd.Action.String(), "error", err)
		return err
	}
	return nil
}
