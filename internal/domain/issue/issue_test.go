package issue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "campusdesk/internal/domain/issue/valueobjects"
)

func TestNewIssue(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		category    vo.Category
		priority    vo.Priority
		submitterID uint
		wantErr     string
	}{
		{
			name:        "valid issue",
			title:       "Grade missing for CS101",
			description: "My midterm grade has not been posted",
			category:    vo.CategoryGradeDispute,
			priority:    vo.PriorityHigh,
			submitterID: 1,
		},
		{
			name:        "empty title",
			title:       "",
			description: "desc",
			category:    vo.CategoryOther,
			priority:    vo.PriorityLow,
			submitterID: 1,
			wantErr:     "title is required",
		},
		{
			name:        "invalid category",
			title:       "title",
			description: "desc",
			category:    vo.Category("BOGUS"),
			priority:    vo.PriorityLow,
			submitterID: 1,
			wantErr:     "invalid category",
		},
		{
			name:        "missing submitter",
			title:       "title",
			description: "desc",
			category:    vo.CategoryOther,
			priority:    vo.PriorityLow,
			submitterID: 0,
			wantErr:     "submitter ID is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewIssue(tt.title, tt.description, tt.category, tt.priority, tt.submitterID)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, vo.StatusSubmitted, got.Status())
			assert.Equal(t, tt.submitterID, got.SubmitterID())
			assert.Nil(t, got.AssigneeID())
		})
	}
}

func TestIssue_Assign(t *testing.T) {
	iss := mustIssue(t)

	assigneeID := uint(7)
	require.NoError(t, iss.Assign(&assigneeID, 2))

	assert.Equal(t, vo.StatusAssigned, iss.Status())
	require.NotNil(t, iss.AssigneeID())
	assert.Equal(t, assigneeID, *iss.AssigneeID())

	var types []string
	for _, e := range iss.DomainEvents() {
		types = append(types, e.GetEventType())
	}
	assert.Contains(t, types, EventTypeIssueAssigned)
	assert.Contains(t, types, EventTypeIssueStatusChanged)
}

func TestIssue_AssignNilClearsAssignee(t *testing.T) {
	iss := mustIssue(t)
	assigneeID := uint(7)
	require.NoError(t, iss.Assign(&assigneeID, 2))
	iss.ClearDomainEvents()

	require.NoError(t, iss.Assign(nil, 2))
	assert.Nil(t, iss.AssigneeID())
	// Unassigning returns the issue to the queue.
	assert.Equal(t, vo.StatusSubmitted, iss.Status())

	var types []string
	for _, e := range iss.DomainEvents() {
		types = append(types, e.GetEventType())
	}
	assert.Contains(t, types, EventTypeIssueStatusChanged)
}

func TestIssue_AssignNilOnSubmittedEmitsNothing(t *testing.T) {
	iss := mustIssue(t)

	require.NoError(t, iss.Assign(nil, 2))
	assert.Nil(t, iss.AssigneeID())
	assert.Equal(t, vo.StatusSubmitted, iss.Status())
	assert.Empty(t, iss.DomainEvents())
}

func TestIssue_ChangeStatus(t *testing.T) {
	iss := mustIssue(t)

	require.NoError(t, iss.ChangeStatus(vo.StatusInProgress, 3, "working on it"))
	assert.Equal(t, vo.StatusInProgress, iss.Status())

	err := iss.ChangeStatus(vo.StatusInProgress, 3, "")
	assert.Error(t, err, "same-status change must be rejected")

	err = iss.ChangeStatus(vo.Status("BOGUS"), 3, "")
	assert.Error(t, err)
}

func TestIssue_ResolveEmitsResolvedEvent(t *testing.T) {
	iss := mustIssue(t)

	require.NoError(t, iss.Resolve(9, "fixed"))
	assert.Equal(t, vo.StatusResolved, iss.Status())

	var found bool
	for _, e := range iss.DomainEvents() {
		if e.GetEventType() == EventTypeIssueResolved {
			found = true
		}
	}
	assert.True(t, found)

	assert.Error(t, iss.Resolve(9, "again"))
}

func TestIssue_EscalateEmitsEscalatedEvent(t *testing.T) {
	iss := mustIssue(t)

	require.NoError(t, iss.Escalate(4, "needs admin"))
	assert.Equal(t, vo.StatusEscalated, iss.Status())

	var found bool
	for _, e := range iss.DomainEvents() {
		if e.GetEventType() == EventTypeIssueEscalated {
			found = true
		}
	}
	assert.True(t, found)
}

func TestIssue_IsVisibleTo(t *testing.T) {
	iss := mustIssue(t)
	assigneeID := uint(7)
	require.NoError(t, iss.Assign(&assigneeID, 2))

	assert.True(t, iss.IsVisibleTo(99, true, false), "admin sees everything")
	assert.True(t, iss.IsVisibleTo(1, false, false), "submitter sees own issue")
	assert.True(t, iss.IsVisibleTo(7, false, true), "assigned faculty sees issue")
	assert.False(t, iss.IsVisibleTo(8, false, true), "other faculty does not")
	assert.False(t, iss.IsVisibleTo(5, false, false), "other student does not")
}

func TestNewStatusRecord(t *testing.T) {
	rec, err := NewStatusRecord(1, vo.StatusInProgress, "notes", 2)
	require.NoError(t, err)
	assert.Equal(t, vo.StatusInProgress, rec.Status())
	assert.Equal(t, uint(2), rec.ActorID())

	_, err = NewStatusRecord(0, vo.StatusInProgress, "", 2)
	assert.Error(t, err)

	_, err = NewStatusRecord(1, vo.Status("NOPE"), "", 2)
	assert.Error(t, err)
}

func mustIssue(t *testing.T) *Issue {
	t.Helper()
	iss, err := NewIssue("Registration hold", "Cannot register for next term", vo.CategoryCourseRegistration, vo.PriorityMedium, 1)
	require.NoError(t, err)
	iss.SetID(42)
	return iss
}
