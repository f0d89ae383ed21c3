package eventhandlers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusdesk/internal/domain/issue"
	"campusdesk/internal/domain/notification"
	"campusdesk/internal/domain/user"
	uservo "campusdesk/internal/domain/user/valueobjects"
	"campusdesk/internal/shared/logger"
)

type mockNotificationRepository struct {
	created []*notification.Notification
}

func (m *mockNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	n.SetID(uint(len(m.created) + 1))
	m.created = append(m.created, n)
	return nil
}

func (m *mockNotificationRepository) BulkCreate(ctx context.Context, ns []*notification.Notification) error {
	m.created = append(m.created, ns...)
	return nil
}

func (m *mockNotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	return nil, nil
}

func (m *mockNotificationRepository) ListByRecipient(ctx context.Context, recipientID uint, limit, offset int) ([]*notification.Notification, int64, error) {
	return nil, 0, nil
}

func (m *mockNotificationRepository) ListRecent(ctx context.Context, recipientID uint, limit int) ([]*notification.Notification, error) {
	return nil, nil
}

func (m *mockNotificationRepository) CountUnread(ctx context.Context, recipientID uint) (int64, error) {
	var count int64
	for _, n := range m.created {
		if n.RecipientID() == recipientID && !n.IsRead() {
			count++
		}
	}
	return count, nil
}

func (m *mockNotificationRepository) MarkAsRead(ctx context.Context, id, recipientID uint) error {
	return nil
}

func (m *mockNotificationRepository) MarkAllAsRead(ctx context.Context, recipientID uint) error {
	return nil
}

func (m *mockNotificationRepository) recipients() []uint {
	ids := make([]uint, 0, len(m.created))
	for _, n := range m.created {
		ids = append(ids, n.RecipientID())
	}
	return ids
}

type mockUserDirectory struct {
	admins []*user.User
	byID   map[uint]*user.User
}

func (m *mockUserDirectory) Save(ctx context.Context, u *user.User) error   { return nil }
func (m *mockUserDirectory) Update(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserDirectory) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	return m.byID[userID], nil
}

func (m *mockUserDirectory) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserDirectory) GetByIDs(ctx context.Context, userIDs []uint) ([]*user.User, error) {
	return nil, nil
}

func (m *mockUserDirectory) ListByRole(ctx context.Context, role uservo.Role) ([]*user.User, error) {
	if role == uservo.RoleAdmin {
		return m.admins, nil
	}
	return nil, nil
}

func (m *mockUserDirectory) List(ctx context.Context, page, pageSize int) ([]*user.User, int64, error) {
	return nil, 0, nil
}

func (m *mockUserDirectory) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (m *mockUserDirectory) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return 0, nil
}

type pushedMessage struct {
	group       string
	groupID     uint
	messageType string
}

type mockPusher struct {
	pushed []pushedMessage
}

func (m *mockPusher) PushToUser(userID uint, messageType string, payload interface{}) {
	m.pushed = append(m.pushed, pushedMessage{group: "user", groupID: userID, messageType: messageType})
}

func (m *mockPusher) PushToIssue(issueID uint, messageType string, payload interface{}) {
	m.pushed = append(m.pushed, pushedMessage{group: "issue", groupID: issueID, messageType: messageType})
}

func (m *mockPusher) countByType(messageType string) int {
	count := 0
	for _, p := range m.pushed {
		if p.messageType == messageType {
			count++
		}
	}
	return count
}

type sentEmail struct {
	to      string
	subject string
}

type mockEmailSender struct {
	sent []sentEmail
}

func (m *mockEmailSender) Send(to, subject, body string) error {
	m.sent = append(m.sent, sentEmail{to: to, subject: subject})
	return nil
}

func (m *mockEmailSender) recipients() []string {
	addrs := make([]string, 0, len(m.sent))
	for _, s := range m.sent {
		addrs = append(addrs, s.to)
	}
	return addrs
}

func testAdmin(t *testing.T, id uint) *user.User {
	t.Helper()
	return testUserWithRole(t, id, "admin@example.edu", uservo.RoleAdmin)
}

func testUserWithRole(t *testing.T, id uint, email string, role uservo.Role) *user.User {
	t.Helper()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	u, err := user.ReconstructUser(id, email, "hash", "Ada", "Admin", role, "", true, now, now)
	require.NoError(t, err)
	return u
}

func newTestNotifier(repo *mockNotificationRepository, users *mockUserDirectory, pusher *mockPusher) *NotificationHandler {
	return NewNotificationHandler(repo, users, pusher, nil, logger.NewLogger())
}

func TestNotificationHandler_CommentFanout_ExcludesAuthorAndDeduplicates(t *testing.T) {
	repo := &mockNotificationRepository{}
	pusher := &mockPusher{}
	h := newTestNotifier(repo, &mockUserDirectory{}, pusher)

	assignee := uint(7)
	event := issue.NewCommentAddedEvent(1, "Grade appeal", 100, 5, 5, &assignee, "any update?", time.Now())

	require.NoError(t, h.HandleCommentAdded(event))

	// Author is the submitter, so only the assignee gets notified.
	assert.Equal(t, []uint{7}, repo.recipients())
	assert.Equal(t, 1, pusher.countByType(MessageTypeNotification))
	assert.Equal(t, 1, pusher.countByType(MessageTypeUnreadCount))
	assert.Equal(t, 1, pusher.countByType(MessageTypeCommentAdded))
	assert.Equal(t, "New comment on issue: Grade appeal", repo.created[0].Message())
}

func TestNotificationHandler_CommentFanout_SubmitterEqualsAssignee(t *testing.T) {
	repo := &mockNotificationRepository{}
	h := newTestNotifier(repo, &mockUserDirectory{}, &mockPusher{})

	assignee := uint(5)
	event := issue.NewCommentAddedEvent(1, "Grade appeal", 100, 9, 5, &assignee, "checking in", time.Now())

	require.NoError(t, h.HandleCommentAdded(event))
	assert.Equal(t, []uint{5}, repo.recipients(), "submitter and assignee collapse to one notification")
}

func TestNotificationHandler_IssueAssigned(t *testing.T) {
	repo := &mockNotificationRepository{}
	pusher := &mockPusher{}
	h := newTestNotifier(repo, &mockUserDirectory{}, pusher)

	event := issue.NewIssueAssignedEvent(1, "Grade appeal", 7, 99, time.Now())

	require.NoError(t, h.HandleIssueAssigned(event))
	require.Len(t, repo.created, 1)
	assert.Equal(t, uint(7), repo.created[0].RecipientID())
	assert.Equal(t, "You have been assigned to issue: Grade appeal", repo.created[0].Message())
	assert.Equal(t, "ISSUE_ASSIGNED", repo.created[0].Type().String())
}

func TestNotificationHandler_IssueResolved_SkipsSelfResolution(t *testing.T) {
	repo := &mockNotificationRepository{}
	h := newTestNotifier(repo, &mockUserDirectory{}, &mockPusher{})

	event := issue.NewIssueResolvedEvent(1, "Grade appeal", 5, 5, time.Now())

	require.NoError(t, h.HandleIssueResolved(event))
	assert.Empty(t, repo.created)
}

func TestNotificationHandler_IssueResolved_NotifiesSubmitter(t *testing.T) {
	repo := &mockNotificationRepository{}
	h := newTestNotifier(repo, &mockUserDirectory{}, &mockPusher{})

	event := issue.NewIssueResolvedEvent(1, "Grade appeal", 5, 7, time.Now())

	require.NoError(t, h.HandleIssueResolved(event))
	require.Len(t, repo.created, 1)
	assert.Equal(t, uint(5), repo.created[0].RecipientID())
	assert.Equal(t, "Your issue 'Grade appeal' has been resolved", repo.created[0].Message())
}

func TestNotificationHandler_IssueEscalated_NotifiesAllAdmins(t *testing.T) {
	repo := &mockNotificationRepository{}
	users := &mockUserDirectory{admins: []*user.User{testAdmin(t, 20), testAdmin(t, 21)}}
	h := newTestNotifier(repo, users, &mockPusher{})

	event := issue.NewIssueEscalatedEvent(1, "Grade appeal", 5, time.Now())

	require.NoError(t, h.HandleIssueEscalated(event))
	assert.ElementsMatch(t, []uint{20, 21}, repo.recipients())
	assert.Equal(t, "Issue escalated: Grade appeal", repo.created[0].Message())
}

func TestNotificationHandler_StatusChanged_PushesToIssueGroup(t *testing.T) {
	repo := &mockNotificationRepository{}
	pusher := &mockPusher{}
	h := newTestNotifier(repo, &mockUserDirectory{}, pusher)

	event := issue.NewIssueStatusChangedEvent(1, "Grade appeal", "ASSIGNED", "IN_PROGRESS", 7, 5, nil, "", time.Now())

	require.NoError(t, h.HandleStatusChanged(event))
	assert.Equal(t, 1, pusher.countByType(MessageTypeStatusUpdated))
	require.Len(t, repo.created, 1)
	assert.Equal(t, uint(5), repo.created[0].RecipientID())
}

func TestNotificationHandler_StatusChanged_ResolvedHandledElsewhere(t *testing.T) {
	repo := &mockNotificationRepository{}
	pusher := &mockPusher{}
	h := newTestNotifier(repo, &mockUserDirectory{}, pusher)

	event := issue.NewIssueStatusChangedEvent(1, "Grade appeal", "IN_PROGRESS", "RESOLVED", 7, 5, nil, "", time.Now())

	require.NoError(t, h.HandleStatusChanged(event))
	assert.Empty(t, repo.created, "resolution notification comes from the resolved event")
	assert.Equal(t, 1, pusher.countByType(MessageTypeStatusUpdated))
}

func TestNotificationHandler_IssueCreated_EmailsActiveAdmins(t *testing.T) {
	users := &mockUserDirectory{admins: []*user.User{
		testUserWithRole(t, 20, "registrar@example.edu", uservo.RoleAdmin),
		testUserWithRole(t, 21, "dean@example.edu", uservo.RoleAdmin),
	}}
	email := &mockEmailSender{}
	h := NewNotificationHandler(&mockNotificationRepository{}, users, &mockPusher{}, email, logger.NewLogger())

	event := issue.NewIssueCreatedEvent(1, "Grade appeal", "GRADE_DISPUTE", "MEDIUM", 5, time.Now())

	require.NoError(t, h.HandleIssueCreated(event))
	assert.ElementsMatch(t, []string{"registrar@example.edu", "dean@example.edu"}, email.recipients())
	assert.Equal(t, "New issue submitted", email.sent[0].subject)
}

func TestNotificationHandler_StatusChanged_EmailsSubmitterAndAssignee(t *testing.T) {
	users := &mockUserDirectory{byID: map[uint]*user.User{
		5: testUserWithRole(t, 5, "student@example.edu", uservo.RoleStudent),
		7: testUserWithRole(t, 7, "faculty@example.edu", uservo.RoleFaculty),
	}}
	email := &mockEmailSender{}
	h := NewNotificationHandler(&mockNotificationRepository{}, users, &mockPusher{}, email, logger.NewLogger())

	assignee := uint(7)
	event := issue.NewIssueStatusChangedEvent(1, "Grade appeal", "ASSIGNED", "IN_PROGRESS", 99, 5, &assignee, "", time.Now())

	require.NoError(t, h.HandleStatusChanged(event))
	assert.ElementsMatch(t, []string{"student@example.edu", "faculty@example.edu"}, email.recipients())
}

func TestNotificationHandler_StatusChanged_ActorGetsNoEmail(t *testing.T) {
	users := &mockUserDirectory{byID: map[uint]*user.User{
		5: testUserWithRole(t, 5, "student@example.edu", uservo.RoleStudent),
		7: testUserWithRole(t, 7, "faculty@example.edu", uservo.RoleFaculty),
	}}
	email := &mockEmailSender{}
	h := NewNotificationHandler(&mockNotificationRepository{}, users, &mockPusher{}, email, logger.NewLogger())

	// The assignee changes the status themselves.
	assignee := uint(7)
	event := issue.NewIssueStatusChangedEvent(1, "Grade appeal", "ASSIGNED", "IN_PROGRESS", 7, 5, &assignee, "", time.Now())

	require.NoError(t, h.HandleStatusChanged(event))
	assert.Equal(t, []string{"student@example.edu"}, email.recipients())
}

func TestNotificationHandler_CommentAdded_EmailsRecipients(t *testing.T) {
	users := &mockUserDirectory{byID: map[uint]*user.User{
		5: testUserWithRole(t, 5, "student@example.edu", uservo.RoleStudent),
		7: testUserWithRole(t, 7, "faculty@example.edu", uservo.RoleFaculty),
	}}
	email := &mockEmailSender{}
	h := NewNotificationHandler(&mockNotificationRepository{}, users, &mockPusher{}, email, logger.NewLogger())

	assignee := uint(7)
	event := issue.NewCommentAddedEvent(1, "Grade appeal", 100, 5, 5, &assignee, "any update?", time.Now())

	require.NoError(t, h.HandleCommentAdded(event))
	assert.Equal(t, []string{"faculty@example.edu"}, email.recipients(), "the author gets no email")
}
