package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"campusdesk/internal/domain/analytics"
	"campusdesk/internal/domain/notification"
	vo "campusdesk/internal/domain/notification/valueobjects"
	"campusdesk/internal/domain/shared/ref"
	"campusdesk/internal/infrastructure/persistence/models"
	"campusdesk/internal/shared/constants"
)

func setupNotificationTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = gdb.AutoMigrate(&models.NotificationModel{}, &models.DashboardStatsModel{})
	require.NoError(t, err)

	return gdb
}

func createTestNotification(t *testing.T, recipientID uint, message string) *notification.Notification {
	t.Helper()
	target, err := ref.NewTargetRef(ref.EntityKindIssue, 1)
	require.NoError(t, err)
	n, err := notification.NewNotification(recipientID, target, message, vo.TypeCommentAdded)
	require.NoError(t, err)
	return n
}

func TestNotificationRepository_UnreadLifecycle(t *testing.T) {
	gdb := setupNotificationTestDB(t)
	repo := NewNotificationRepository(gdb)
	ctx := context.Background()

	n1 := createTestNotification(t, 5, "first")
	require.NoError(t, repo.Create(ctx, n1))
	n2 := createTestNotification(t, 5, "second")
	require.NoError(t, repo.Create(ctx, n2))
	other := createTestNotification(t, 7, "other inbox")
	require.NoError(t, repo.Create(ctx, other))

	count, err := repo.CountUnread(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	t.Run("mark as read is scoped by recipient", func(t *testing.T) {
		require.NoError(t, repo.MarkAsRead(ctx, n1.ID(), 7))

		count, err := repo.CountUnread(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count, "foreign recipient must not flip the flag")

		require.NoError(t, repo.MarkAsRead(ctx, n1.ID(), 5))
		count, err = repo.CountUnread(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("mark all as read", func(t *testing.T) {
		require.NoError(t, repo.MarkAllAsRead(ctx, 5))

		count, err := repo.CountUnread(ctx, 5)
		require.NoError(t, err)
		assert.Zero(t, count)

		count, err = repo.CountUnread(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count, "other inbox untouched")
	})

	t.Run("list by recipient pages newest first", func(t *testing.T) {
		listed, total, err := repo.ListByRecipient(ctx, 5, 1, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, listed, 1)
	})
}

func TestDashboardSnapshotRepository_RoundTrip(t *testing.T) {
	gdb := setupNotificationTestDB(t)
	repo := NewDashboardSnapshotRepository(gdb)
	ctx := context.Background()

	t.Run("miss returns nil", func(t *testing.T) {
		snapshot, err := repo.Get(ctx, constants.DashboardCacheKey)
		assert.NoError(t, err)
		assert.Nil(t, snapshot)
	})

	t.Run("put then get", func(t *testing.T) {
		generated := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
		err := repo.Put(ctx, constants.DashboardCacheKey, &analytics.DashboardSnapshot{
			TotalIssues:    12,
			IssuesByStatus: map[string]int64{"SUBMITTED": 4},
			GeneratedAt:    generated,
		})
		require.NoError(t, err)

		snapshot, err := repo.Get(ctx, constants.DashboardCacheKey)
		require.NoError(t, err)
		require.NotNil(t, snapshot)
		assert.Equal(t, int64(12), snapshot.TotalIssues)
		assert.Equal(t, generated, snapshot.GeneratedAt)
	})

	t.Run("put overwrites", func(t *testing.T) {
		err := repo.Put(ctx, constants.DashboardCacheKey, &analytics.DashboardSnapshot{TotalIssues: 13})
		require.NoError(t, err)

		snapshot, err := repo.Get(ctx, constants.DashboardCacheKey)
		require.NoError(t, err)
		assert.Equal(t, int64(13), snapshot.TotalIssues)
	})

	t.Run("delete clears the key", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, constants.DashboardCacheKey))

		snapshot, err := repo.Get(ctx, constants.DashboardCacheKey)
		assert.NoError(t, err)
		assert.Nil(t, snapshot)
	})
}
