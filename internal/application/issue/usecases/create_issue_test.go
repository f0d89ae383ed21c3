package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusdesk/internal/domain/issue"
	vo "campusdesk/internal/domain/issue/valueobjects"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

func TestCreateIssueUseCase_Execute_Success(t *testing.T) {
	var savedIssue *issue.Issue
	var appendedRecord *issue.StatusRecord

	issueRepo := &mockIssueRepository{
		SaveFunc: func(ctx context.Context, i *issue.Issue) error {
			i.SetID(1)
			savedIssue = i
			return nil
		},
	}
	statusRepo := &mockStatusRecordRepository{
		AppendFunc: func(ctx context.Context, record *issue.StatusRecord) error {
			record.SetID(10)
			appendedRecord = record
			return nil
		},
	}
	publisher := &mockPublisher{}

	uc := NewCreateIssueUseCase(issueRepo, statusRepo, &mockTxManager{}, publisher, logger.NewLogger())

	result, err := uc.Execute(context.Background(), CreateIssueCommand{
		Title:       "Cannot enroll in CS401",
		Description: "Registration system rejects my enrollment",
		Category:    "COURSE_REGISTRATION",
		Priority:    "HIGH",
		SubmitterID: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), result.IssueID)
	assert.Equal(t, "SUBMITTED", result.Status)

	require.NotNil(t, savedIssue)
	require.NotNil(t, appendedRecord, "creation must append the initial history record")
	assert.Equal(t, vo.StatusSubmitted, appendedRecord.Status())
	assert.Equal(t, uint(5), appendedRecord.ActorID())

	assert.Contains(t, publisher.eventTypes(), issue.EventTypeIssueCreated)
}

func TestCreateIssueUseCase_Execute_ValidationFailures(t *testing.T) {
	uc := NewCreateIssueUseCase(&mockIssueRepository{}, &mockStatusRecordRepository{}, &mockTxManager{}, &mockPublisher{}, logger.NewLogger())

	tests := []struct {
		name string
		cmd  CreateIssueCommand
	}{
		{
			name: "missing title",
			cmd:  CreateIssueCommand{Description: "d", Category: "OTHER", Priority: "LOW", SubmitterID: 1},
		},
		{
			name: "missing description",
			cmd:  CreateIssueCommand{Title: "t", Category: "OTHER", Priority: "LOW", SubmitterID: 1},
		},
		{
			name: "invalid category",
			cmd:  CreateIssueCommand{Title: "t", Description: "d", Category: "NOPE", Priority: "LOW", SubmitterID: 1},
		},
		{
			name: "invalid priority",
			cmd:  CreateIssueCommand{Title: "t", Description: "d", Category: "OTHER", Priority: "NOPE", SubmitterID: 1},
		},
		{
			name: "missing submitter",
			cmd:  CreateIssueCommand{Title: "t", Description: "d", Category: "OTHER", Priority: "LOW"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestCreateIssueUseCase_Execute_SanitizesMarkup(t *testing.T) {
	var savedIssue *issue.Issue
	issueRepo := &mockIssueRepository{
		SaveFunc: func(ctx context.Context, i *issue.Issue) error {
			i.SetID(2)
			savedIssue = i
			return nil
		},
	}

	uc := NewCreateIssueUseCase(issueRepo, &mockStatusRecordRepository{}, &mockTxManager{}, &mockPublisher{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), CreateIssueCommand{
		Title:       "Broken <script>alert(1)</script>grade",
		Description: "<b>My grade</b> is wrong",
		Category:    "GRADE_DISPUTE",
		Priority:    "MEDIUM",
		SubmitterID: 3,
	})

	require.NoError(t, err)
	require.NotNil(t, savedIssue)
	assert.NotContains(t, savedIssue.Title(), "<script>")
	assert.NotContains(t, savedIssue.Description(), "<b>")
}

func reconstructTestIssue(t *testing.T, id uint, status vo.Status, submitterID uint, assigneeID *uint) *issue.Issue {
	t.Helper()
	iss, err := issue.ReconstructIssue(
		id,
		"Library access card rejected",
		"My card stopped working at the library gates",
		vo.CategoryOther,
		vo.PriorityMedium,
		status,
		submitterID,
		assigneeID,
		"",
		time.Now().Add(-time.Hour),
		time.Now().Add(-time.Hour),
	)
	require.NoError(t, err)
	return iss
}
