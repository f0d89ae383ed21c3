package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusdesk/internal/domain/issue"
	vo "campusdesk/internal/domain/issue/valueobjects"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

func TestAddCommentUseCase_Execute_Success(t *testing.T) {
	assignee := uint(7)
	iss := reconstructTestIssue(t, 1, vo.StatusAssigned, 5, &assignee)

	var savedComment *issue.Comment
	issueRepo := &mockIssueRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) { return iss, nil },
	}
	commentRepo := &mockCommentRepository{
		SaveFunc: func(ctx context.Context, comment *issue.Comment) error {
			comment.SetID(100)
			savedComment = comment
			return nil
		},
	}
	publisher := &mockPublisher{}

	uc := NewAddCommentUseCase(issueRepo, commentRepo, publisher, logger.NewLogger())

	result, err := uc.Execute(context.Background(), AddCommentCommand{
		IssueID: 1,
		Actor:   Actor{ID: 5, Role: "STUDENT"},
		Content: "Any update on this?",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(100), result.ID)
	require.NotNil(t, savedComment)
	assert.Equal(t, "Any update on this?", savedComment.Content())

	require.Len(t, publisher.published, 1)
	event, ok := publisher.published[0].(issue.CommentAddedEvent)
	require.True(t, ok)
	assert.Equal(t, uint(5), event.AuthorID)
	assert.Equal(t, uint(5), event.SubmitterID)
	require.NotNil(t, event.AssigneeID)
	assert.Equal(t, assignee, *event.AssigneeID)
}

func TestAddCommentUseCase_Execute_OutsiderForbidden(t *testing.T) {
	iss := reconstructTestIssue(t, 1, vo.StatusSubmitted, 5, nil)
	issueRepo := &mockIssueRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) { return iss, nil },
	}

	uc := NewAddCommentUseCase(issueRepo, &mockCommentRepository{}, &mockPublisher{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), AddCommentCommand{
		IssueID: 1,
		Actor:   Actor{ID: 9, Role: "STUDENT"},
		Content: "hello",
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
}

func TestAddCommentUseCase_Execute_EmptyAfterSanitization(t *testing.T) {
	uc := NewAddCommentUseCase(&mockIssueRepository{}, &mockCommentRepository{}, &mockPublisher{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), AddCommentCommand{
		IssueID: 1,
		Actor:   Actor{ID: 5, Role: "STUDENT"},
		Content: "<script></script>",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestAddCommentUseCase_Execute_IssueNotFound(t *testing.T) {
	issueRepo := &mockIssueRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) { return nil, nil },
	}

	uc := NewAddCommentUseCase(issueRepo, &mockCommentRepository{}, &mockPublisher{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), AddCommentCommand{
		IssueID: 42,
		Actor:   Actor{ID: 5, Role: "STUDENT"},
		Content: "hi",
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
