package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"campusdesk/internal/domain/issue"
	vo "campusdesk/internal/domain/issue/valueobjects"
	"campusdesk/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = gdb.AutoMigrate(&models.IssueModel{}, &models.StatusRecordModel{})
	require.NoError(t, err)

	return gdb
}

func createTestIssue(t *testing.T, title string, category vo.Category, priority vo.Priority, submitterID uint) *issue.Issue {
	t.Helper()
	iss, err := issue.NewIssue(title, "Test description", category, priority, submitterID)
	require.NoError(t, err)
	return iss
}

func TestIssueRepository_Save(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewIssueRepository(gdb)
	ctx := context.Background()

	t.Run("save new issue successfully", func(t *testing.T) {
		iss := createTestIssue(t, "Grade appeal for CS101", vo.CategoryGradeDispute, vo.PriorityHigh, 1)

		err := repo.Save(ctx, iss)
		assert.NoError(t, err)
		assert.NotZero(t, iss.ID())
	})

	t.Run("saved issue round-trips", func(t *testing.T) {
		iss := createTestIssue(t, "Schedule conflict", vo.CategoryClassSchedule, vo.PriorityMedium, 2)
		require.NoError(t, repo.Save(ctx, iss))

		found, err := repo.GetByID(ctx, iss.ID())
		assert.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, iss.Title(), found.Title())
		assert.Equal(t, vo.StatusSubmitted, found.Status())
		assert.Equal(t, uint(2), found.SubmitterID())
		assert.Nil(t, found.AssigneeID())
	})
}

func TestIssueRepository_Update(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewIssueRepository(gdb)
	ctx := context.Background()

	t.Run("assignment persists", func(t *testing.T) {
		iss := createTestIssue(t, "Registration hold", vo.CategoryCourseRegistration, vo.PriorityHigh, 1)
		require.NoError(t, repo.Save(ctx, iss))

		assigneeID := uint(5)
		require.NoError(t, iss.Assign(&assigneeID, 9))
		require.NoError(t, repo.Update(ctx, iss))

		found, err := repo.GetByID(ctx, iss.ID())
		assert.NoError(t, err)
		require.NotNil(t, found.AssigneeID())
		assert.Equal(t, assigneeID, *found.AssigneeID())
		assert.Equal(t, vo.StatusAssigned, found.Status())
	})

	t.Run("unassignment clears the assignee column", func(t *testing.T) {
		iss := createTestIssue(t, "Missing prerequisite", vo.CategoryCourseRegistration, vo.PriorityLow, 1)
		require.NoError(t, repo.Save(ctx, iss))

		assigneeID := uint(5)
		require.NoError(t, iss.Assign(&assigneeID, 9))
		require.NoError(t, repo.Update(ctx, iss))

		require.NoError(t, iss.Assign(nil, 9))
		require.NoError(t, repo.Update(ctx, iss))

		found, err := repo.GetByID(ctx, iss.ID())
		assert.NoError(t, err)
		assert.Nil(t, found.AssigneeID())
	})
}

func TestIssueRepository_GetByID(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewIssueRepository(gdb)
	ctx := context.Background()

	t.Run("missing issue returns nil without error", func(t *testing.T) {
		found, err := repo.GetByID(ctx, 99999)
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestIssueRepository_List(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewIssueRepository(gdb)
	ctx := context.Background()

	iss1 := createTestIssue(t, "Issue one", vo.CategoryGradeDispute, vo.PriorityHigh, 1)
	require.NoError(t, repo.Save(ctx, iss1))

	iss2 := createTestIssue(t, "Issue two", vo.CategoryClassSchedule, vo.PriorityMedium, 2)
	require.NoError(t, repo.Save(ctx, iss2))

	iss3 := createTestIssue(t, "Issue three", vo.CategoryGradeDispute, vo.PriorityLow, 1)
	require.NoError(t, repo.Save(ctx, iss3))

	assigneeID := uint(2)
	require.NoError(t, iss3.Assign(&assigneeID, 9))
	require.NoError(t, repo.Update(ctx, iss3))

	t.Run("list all", func(t *testing.T) {
		issues, total, err := repo.List(ctx, issue.IssueFilter{Page: 1, PageSize: 10})
		assert.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, issues, 3)
	})

	t.Run("filter by category", func(t *testing.T) {
		category := vo.CategoryGradeDispute
		_, total, err := repo.List(ctx, issue.IssueFilter{Category: &category, Page: 1, PageSize: 10})
		assert.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("participant filter matches submitted and assigned", func(t *testing.T) {
		participantID := uint(2)
		issues, total, err := repo.List(ctx, issue.IssueFilter{ParticipantID: &participantID, Page: 1, PageSize: 10})
		assert.NoError(t, err)
		assert.Equal(t, int64(2), total)

		ids := []uint{issues[0].ID(), issues[1].ID()}
		assert.ElementsMatch(t, []uint{iss2.ID(), iss3.ID()}, ids)
	})

	t.Run("search matches title", func(t *testing.T) {
		_, total, err := repo.List(ctx, issue.IssueFilter{Search: "three", Page: 1, PageSize: 10})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("pagination", func(t *testing.T) {
		issues, total, err := repo.List(ctx, issue.IssueFilter{Page: 2, PageSize: 2})
		assert.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, issues, 1)
	})

	t.Run("unknown sort column falls back to created_at", func(t *testing.T) {
		issues, _, err := repo.List(ctx, issue.IssueFilter{Page: 1, PageSize: 10, SortBy: "drop table", SortOrder: "asc"})
		assert.NoError(t, err)
		assert.Len(t, issues, 3)
	})
}

func TestStatusRecordRepository_AppendAndList(t *testing.T) {
	gdb := setupTestDB(t)
	issueRepo := NewIssueRepository(gdb)
	recordRepo := NewStatusRecordRepository(gdb)
	ctx := context.Background()

	iss := createTestIssue(t, "History test", vo.CategoryOther, vo.PriorityMedium, 1)
	require.NoError(t, issueRepo.Save(ctx, iss))

	first, err := issue.NewStatusRecord(iss.ID(), vo.StatusSubmitted, "", 1)
	require.NoError(t, err)
	require.NoError(t, recordRepo.Append(ctx, first))

	second, err := issue.NewStatusRecord(iss.ID(), vo.StatusAssigned, "picked up", 9)
	require.NoError(t, err)
	require.NoError(t, recordRepo.Append(ctx, second))

	records, err := recordRepo.GetByIssueID(ctx, iss.ID())
	assert.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, vo.StatusSubmitted, records[0].Status())
	assert.Equal(t, vo.StatusAssigned, records[1].Status())
	assert.Equal(t, "picked up", records[1].Notes())
}

func TestIssueStatsRepository(t *testing.T) {
	gdb := setupTestDB(t)
	issueRepo := NewIssueRepository(gdb)
	recordRepo := NewStatusRecordRepository(gdb)
	statsRepo := NewIssueStatsRepository(gdb)
	ctx := context.Background()

	iss1 := createTestIssue(t, "Stats one", vo.CategoryGradeDispute, vo.PriorityHigh, 1)
	require.NoError(t, issueRepo.Save(ctx, iss1))

	iss2 := createTestIssue(t, "Stats two", vo.CategoryGradeDispute, vo.PriorityLow, 2)
	require.NoError(t, issueRepo.Save(ctx, iss2))

	resolved, err := issue.NewStatusRecord(iss1.ID(), vo.StatusResolved, "done", 9)
	require.NoError(t, err)
	require.NoError(t, recordRepo.Append(ctx, resolved))

	t.Run("count total", func(t *testing.T) {
		total, err := statsRepo.CountTotal(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("count by category", func(t *testing.T) {
		counts, err := statsRepo.CountByCategory(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), counts[vo.CategoryGradeDispute.String()])
	})

	t.Run("resolved counts come from status history", func(t *testing.T) {
		since := time.Now().Add(-time.Hour)
		count, err := statsRepo.CountResolvedSince(ctx, since)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("recent issues honors the limit", func(t *testing.T) {
		recent, err := statsRepo.RecentIssues(ctx, 1)
		assert.NoError(t, err)
		assert.Len(t, recent, 1)
	})
}
