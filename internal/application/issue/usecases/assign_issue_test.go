package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusdesk/internal/domain/issue"
	vo "campusdesk/internal/domain/issue/valueobjects"
	"campusdesk/internal/domain/user"
	uservo "campusdesk/internal/domain/user/valueobjects"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

func reconstructTestUser(t *testing.T, id uint, role uservo.Role) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(
		id,
		"faculty@example.edu",
		"hash",
		"Dana",
		"Reyes",
		role,
		"Computer Science",
		true,
		testTime(), testTime(),
	)
	require.NoError(t, err)
	return u
}

func TestAssignIssueUseCase_Execute_Success(t *testing.T) {
	iss := reconstructTestIssue(t, 1, vo.StatusSubmitted, 5, nil)
	assigneeID := uint(7)

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
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return reconstructTestUser(t, id, uservo.RoleFaculty), nil
		},
	}
	publisher := &mockPublisher{}

	uc := NewAssignIssueUseCase(issueRepo, statusRepo, userRepo, &mockTxManager{}, publisher, logger.NewLogger())

	result, err := uc.Execute(context.Background(), AssignIssueCommand{
		IssueID:    1,
		Actor:      Actor{ID: 99, Role: "ADMIN"},
		AssigneeID: &assigneeID,
	})

	require.NoError(t, err)
	assert.Equal(t, "ASSIGNED", result.Status)
	require.NotNil(t, result.AssigneeID)
	assert.Equal(t, assigneeID, *result.AssigneeID)

	require.NotNil(t, appendedRecord, "assignment must append a history record")
	assert.Equal(t, vo.StatusAssigned, appendedRecord.Status())
	assert.Equal(t, "Assigned to Dana Reyes", appendedRecord.Notes())

	assert.Contains(t, publisher.eventTypes(), issue.EventTypeIssueAssigned)
}

func TestAssignIssueUseCase_Execute_StampsActorIPOnEvents(t *testing.T) {
	iss := reconstructTestIssue(t, 1, vo.StatusSubmitted, 5, nil)
	issueRepo := &mockIssueRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) { return iss, nil },
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return reconstructTestUser(t, id, uservo.RoleFaculty), nil
		},
	}
	publisher := &mockPublisher{}
	uc := NewAssignIssueUseCase(issueRepo, &mockStatusRecordRepository{}, userRepo, &mockTxManager{}, publisher, logger.NewLogger())

	assigneeID := uint(7)
	_, err := uc.Execute(context.Background(), AssignIssueCommand{
		IssueID:    1,
		Actor:      Actor{ID: 99, Role: "ADMIN", IP: "203.0.113.9"},
		AssigneeID: &assigneeID,
	})

	require.NoError(t, err)
	require.NotEmpty(t, publisher.published)
	for _, e := range publisher.published {
		switch evt := e.(type) {
		case issue.IssueAssignedEvent:
			assert.Equal(t, "203.0.113.9", evt.IP)
		case issue.IssueStatusChangedEvent:
			assert.Equal(t, "203.0.113.9", evt.IP)
		}
	}
}

func TestAssignIssueUseCase_Execute_NonAdminForbidden(t *testing.T) {
	uc := NewAssignIssueUseCase(&mockIssueRepository{}, &mockStatusRecordRepository{}, &mockUserRepository{}, &mockTxManager{}, &mockPublisher{}, logger.NewLogger())

	assigneeID := uint(7)
	for _, role := range []string{"STUDENT", "FACULTY"} {
		_, err := uc.Execute(context.Background(), AssignIssueCommand{
			IssueID:    1,
			Actor:      Actor{ID: 5, Role: role},
			AssigneeID: &assigneeID,
		})
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
	}
}

func TestAssignIssueUseCase_Execute_RejectsStudentAssignee(t *testing.T) {
	iss := reconstructTestIssue(t, 1, vo.StatusSubmitted, 5, nil)
	issueRepo := &mockIssueRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) { return iss, nil },
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return reconstructTestUser(t, id, uservo.RoleStudent), nil
		},
	}

	uc := NewAssignIssueUseCase(issueRepo, &mockStatusRecordRepository{}, userRepo, &mockTxManager{}, &mockPublisher{}, logger.NewLogger())

	assigneeID := uint(3)
	_, err := uc.Execute(context.Background(), AssignIssueCommand{
		IssueID:    1,
		Actor:      Actor{ID: 99, Role: "ADMIN"},
		AssigneeID: &assigneeID,
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestAssignIssueUseCase_Execute_UnassignResetsToSubmitted(t *testing.T) {
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

	uc := NewAssignIssueUseCase(issueRepo, statusRepo, &mockUserRepository{}, &mockTxManager{}, &mockPublisher{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), AssignIssueCommand{
		IssueID: 1,
		Actor:   Actor{ID: 99, Role: "ADMIN"},
	})

	require.NoError(t, err)
	assert.Nil(t, result.AssigneeID)
	assert.Equal(t, "SUBMITTED", result.Status, "unassignment returns the issue to the queue")

	require.NotNil(t, appendedRecord, "the status reset must land in history")
	assert.Equal(t, vo.StatusSubmitted, appendedRecord.Status())
	assert.Equal(t, "Issue unassigned", appendedRecord.Notes())
}

func TestAssignIssueUseCase_Execute_UnassignSubmittedIssueIsNoOp(t *testing.T) {
	assignee := uint(7)
	iss := reconstructTestIssue(t, 1, vo.StatusSubmitted, 5, &assignee)

	var recordAppended bool
	issueRepo := &mockIssueRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) { return iss, nil },
	}
	statusRepo := &mockStatusRecordRepository{
		AppendFunc: func(ctx context.Context, record *issue.StatusRecord) error {
			recordAppended = true
			return nil
		},
	}

	uc := NewAssignIssueUseCase(issueRepo, statusRepo, &mockUserRepository{}, &mockTxManager{}, &mockPublisher{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), AssignIssueCommand{
		IssueID: 1,
		Actor:   Actor{ID: 99, Role: "ADMIN"},
	})

	require.NoError(t, err)
	assert.Nil(t, result.AssigneeID)
	assert.Equal(t, "SUBMITTED", result.Status)
	assert.False(t, recordAppended, "no history record without a status change")
}
