package usecases

import (
	"context"

	"campusdesk/internal/application/issue/dto"
	"campusdesk/internal/domain/issue"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type AddAttachmentCommand struct {
	IssueID      uint
	Actor        Actor
	StoredName   string
	OriginalName string
	SizeBytes    int64
}

type AddAttachmentUseCase struct {
	issueRepo      issue.IssueRepository
	attachmentRepo issue.AttachmentRepository
	logger         logger.Interface
}

func NewAddAttachmentUseCase(
	issueRepo issue.IssueRepository,
	attachmentRepo issue.AttachmentRepository,
	logger logger.Interface,
) *AddAttachmentUseCase {
	return &AddAttachmentUseCase{
		issueRepo:      issueRepo,
		attachmentRepo: attachmentRepo,
		logger:         logger,
	}
}

func (uc *AddAttachmentUseCase) Execute(ctx context.Context, cmd AddAttachmentCommand) (*dto.AttachmentDTO, error) {
	if cmd.IssueID == 0 {
		return nil, errors.NewValidationError("issue ID is required")
	}

	iss, err := uc.issueRepo.GetByID(ctx, cmd.IssueID)
	if err != nil {
		return nil, err
	}
	if iss == nil {
		return nil, errors.NewNotFoundError("issue not found")
	}
	if !iss.IsVisibleTo(cmd.Actor.ID, cmd.Actor.IsAdmin(), cmd.Actor.IsFaculty()) {
		return nil, errors.NewForbiddenError("you do not have access to this issue")
	}

	attachment, err := issue.NewAttachment(cmd.IssueID, cmd.Actor.ID, cmd.StoredName, cmd.OriginalName, cmd.SizeBytes)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.attachmentRepo.Save(ctx, attachment); err != nil {
		uc.logger.Errorw("failed to save attachment", "issue_id", cmd.IssueID, "error", err)
		return nil, err
	}

	uc.logger.Infow("attachment added", "issue_id", cmd.IssueID, "attachment_id", attachment.ID(), "size_bytes", cmd.SizeBytes)

	result := dto.ToAttachmentDTO(attachment)
	return &result, nil
}
