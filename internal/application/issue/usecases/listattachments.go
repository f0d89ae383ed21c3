package usecases

import (
	"context"

	"campusdesk/internal/application/issue/dto"
	"campusdesk/internal/domain/issue"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type ListAttachmentsQuery struct {
	IssueID uint
	Actor   Actor
}

type ListAttachmentsUseCase struct {
	issueRepo      issue.IssueRepository
	attachmentRepo issue.AttachmentRepository
	logger         logger.Interface
}

func NewListAttachmentsUseCase(
	issueRepo issue.IssueRepository,
	attachmentRepo issue.AttachmentRepository,
	logger logger.Interface,
) *ListAttachmentsUseCase {
	return &ListAttachmentsUseCase{
		issueRepo:      issueRepo,
		attachmentRepo: attachmentRepo,
		logger:         logger,
	}
}

func (uc *ListAttachmentsUseCase) Execute(ctx context.Context, query ListAttachmentsQuery) ([]dto.AttachmentDTO, error) {
	if query.IssueID == 0 {
		return nil, errors.NewValidationError("issue ID is required")
	}

	iss, err := uc.issueRepo.GetByID(ctx, query.IssueID)
	if err != nil {
		return nil, err
	}
	if iss == nil {
		return nil, errors.NewNotFoundError("issue not found")
	}
	if !iss.IsVisibleTo(query.Actor.ID, query.Actor.IsAdmin(), query.Actor.IsFaculty()) {
		return nil, errors.NewForbiddenError("you do not have access to this issue")
	}

	attachments, err := uc.attachmentRepo.GetByIssueID(ctx, query.IssueID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.AttachmentDTO, 0, len(attachments))
	for _, a := range attachments {
		result = append(result, dto.ToAttachmentDTO(a))
	}
	return result, nil
}
