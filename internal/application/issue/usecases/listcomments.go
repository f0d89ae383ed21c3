package usecases

import (
	"context"

	"campusdesk/internal/application/issue/dto"
	"campusdesk/internal/domain/issue"
	"campusdesk/internal/domain/user"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type ListCommentsQuery struct {
	IssueID uint
	Actor   Actor
}

type ListCommentsUseCase struct {
	issueRepo   issue.IssueRepository
	commentRepo issue.CommentRepository
	userRepo    user.UserRepository
	logger      logger.Interface
}

func NewListCommentsUseCase(
	issueRepo issue.IssueRepository,
	commentRepo issue.CommentRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		issueRepo:   issueRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) ([]dto.CommentDTO, error) {
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

	comments, err := uc.commentRepo.GetByIssueID(ctx, query.IssueID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.CommentDTO, 0, len(comments))
	authorIDs := make([]uint, 0, len(comments))
	for _, c := range comments {
		result = append(result, dto.ToCommentDTO(c))
		authorIDs = append(authorIDs, c.AuthorID())
	}

	if users, err := uc.userRepo.GetByIDs(ctx, authorIDs); err == nil {
		names := make(map[uint]string, len(users))
		for _, u := range users {
			names[u.ID()] = u.FullName()
		}
		for i := range result {
			result[i].AuthorName = names[result[i].AuthorID]
		}
	} else {
		uc.logger.Warnw("failed to load comment author names", "issue_id", query.IssueID, "error", err)
	}

	return result, nil
}
