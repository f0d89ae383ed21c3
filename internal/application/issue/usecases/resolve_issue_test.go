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

func TestResolveIssueUseCase_Execute_AssignedFacultyResolves(t *testing.T) {
	assignee := uint(7)
	iss := reconstructTestIssue(t, 1, vo.StatusInProgress, 5, &assignee)

	var appendedRecord *issue.StatusRecord
	issueRepo := &mockIssueRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) { return iss, nil },
	}
	statusRepo := &mockStatusRecordRepository{
		AppendFunc: func(ctx context.Context, record *issue.StatusRecord) error {
			appendedRecord = record
			return nil
		},
	}
	publisher := &mockPublisher{}

	uc := NewResolveIssueUseCase(issueRepo, statusRepo, &mockTxManager{}, publisher, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ResolveIssueCommand{
		IssueID: 1,
		Actor:   Actor{ID: 7, Role: "FACULTY"},
		Notes:   "granted the appeal",
	})

	require.NoError(t, err)
	assert.Equal(t, "RESOLVED", result.Status)

	require.NotNil(t, appendedRecord)
	assert.Equal(t, vo.StatusResolved, appendedRecord.Status())
	assert.Equal(t, "granted the appeal", appendedRecord.Notes())

	assert.Contains(t, publisher.eventTypes(), issue.EventTypeIssueResolved)
	assert.Contains(t, publisher.eventTypes(), issue.EventTypeIssueStatusChanged)
}

func TestResolveIssueUseCase_Execute_UnassignedFacultyForbidden(t *testing.T) {
	assignee := uint(7)
	iss := reconstructTestIssue(t, 1, vo.StatusInProgress, 5, &assignee)
	issueRepo := &mockIssueRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) { return iss, nil },
	}

	uc := NewResolveIssueUseCase(issueRepo, &mockStatusRecordRepository{}, &mockTxManager{}, &mockPublisher{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), ResolveIssueCommand{
		IssueID: 1,
		Actor:   Actor{ID: 8, Role: "FACULTY"},
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
}

func TestResolveIssueUseCase_Execute_AlreadyResolved(t *testing.T) {
	assignee := uint(7)
	iss := reconstructTestIssue(t, 1, vo.StatusResolved, 5, &assignee)
	issueRepo := &mockIssueRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) { return iss, nil },
	}

	uc := NewResolveIssueUseCase(issueRepo, &mockStatusRecordRepository{}, &mockTxManager{}, &mockPublisher{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), ResolveIssueCommand{
		IssueID: 1,
		Actor:   Actor{ID: 7, Role: "FACULTY"},
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestEscalateIssueUseCase_Execute_SubmitterEscalates(t *testing.T) {
	iss := reconstructTestIssue(t, 2, vo.StatusSubmitted, 5, nil)

	issueRepo := &mockIssueRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) { return iss, nil },
	}
	publisher := &mockPublisher{}

	uc := NewEscalateIssueUseCase(issueRepo, &mockStatusRecordRepository{}, &mockTxManager{}, publisher, logger.NewLogger())

	result, err := uc.Execute(context.Background(), EscalateIssueCommand{
		IssueID: 2,
		Actor:   Actor{ID: 5, Role: "STUDENT"},
		Notes:   "no response for two weeks",
	})

	require.NoError(t, err)
	assert.Equal(t, "ESCALATED", result.Status)
	assert.Contains(t, publisher.eventTypes(), issue.EventTypeIssueEscalated)
}

func TestEscalateIssueUseCase_Execute_StrangerForbidden(t *testing.T) {
	iss := reconstructTestIssue(t, 2, vo.StatusSubmitted, 5, nil)
	issueRepo := &mockIssueRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) { return iss, nil },
	}

	uc := NewEscalateIssueUseCase(issueRepo, &mockStatusRecordRepository{}, &mockTxManager{}, &mockPublisher{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), EscalateIssueCommand{
		IssueID: 2,
		Actor:   Actor{ID: 6, Role: "STUDENT"},
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
}
