package usecases

import (
	"context"
	"time"

	"campusdesk/internal/domain/issue"
	"campusdesk/internal/domain/shared/events"
	"campusdesk/internal/domain/user"
	uservo "campusdesk/internal/domain/user/valueobjects"
)

type mockIssueRepository struct {
	SaveFunc           func(ctx context.Context, i *issue.Issue) error
	UpdateFunc         func(ctx context.Context, i *issue.Issue) error
	DeleteFunc         func(ctx context.Context, issueID uint) error
	GetByIDFunc        func(ctx context.Context, issueID uint) (*issue.Issue, error)
	ListFunc           func(ctx context.Context, filter issue.IssueFilter) ([]*issue.Issue, int64, error)
	GetSubmittedByFunc func(ctx context.Context, submitterID uint, filter issue.IssueFilter) ([]*issue.Issue, int64, error)
	GetAssignedToFunc  func(ctx context.Context, assigneeID uint, filter issue.IssueFilter) ([]*issue.Issue, int64, error)
}

func (m *mockIssueRepository) Save(ctx context.Context, i *issue.Issue) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, i)
	}
	return nil
}

func (m *mockIssueRepository) Update(ctx context.Context, i *issue.Issue) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, i)
	}
	return nil
}

func (m *mockIssueRepository) Delete(ctx context.Context, issueID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, issueID)
	}
	return nil
}

func (m *mockIssueRepository) GetByID(ctx context.Context, issueID uint) (*issue.Issue, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, issueID)
	}
	return nil, nil
}

func (m *mockIssueRepository) List(ctx context.Context, filter issue.IssueFilter) ([]*issue.Issue, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockIssueRepository) GetSubmittedBy(ctx context.Context, submitterID uint, filter issue.IssueFilter) ([]*issue.Issue, int64, error) {
	if m.GetSubmittedByFunc != nil {
		return m.GetSubmittedByFunc(ctx, submitterID, filter)
	}
	return nil, 0, nil
}

func (m *mockIssueRepository) GetAssignedTo(ctx context.Context, assigneeID uint, filter issue.IssueFilter) ([]*issue.Issue, int64, error) {
	if m.GetAssignedToFunc != nil {
		return m.GetAssignedToFunc(ctx, assigneeID, filter)
	}
	return nil, 0, nil
}

type mockStatusRecordRepository struct {
	AppendFunc       func(ctx context.Context, record *issue.StatusRecord) error
	GetByIssueIDFunc func(ctx context.Context, issueID uint) ([]*issue.StatusRecord, error)
}

func (m *mockStatusRecordRepository) Append(ctx context.Context, record *issue.StatusRecord) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, record)
	}
	return nil
}

func (m *mockStatusRecordRepository) GetByIssueID(ctx context.Context, issueID uint) ([]*issue.StatusRecord, error) {
	if m.GetByIssueIDFunc != nil {
		return m.GetByIssueIDFunc(ctx, issueID)
	}
	return nil, nil
}

type mockCommentRepository struct {
	SaveFunc         func(ctx context.Context, comment *issue.Comment) error
	GetByIDFunc      func(ctx context.Context, commentID uint) (*issue.Comment, error)
	GetByIssueIDFunc func(ctx context.Context, issueID uint) ([]*issue.Comment, error)
	DeleteFunc       func(ctx context.Context, commentID uint) error
}

func (m *mockCommentRepository) Save(ctx context.Context, comment *issue.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) GetByID(ctx context.Context, commentID uint) (*issue.Comment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, commentID)
	}
	return nil, nil
}

func (m *mockCommentRepository) GetByIssueID(ctx context.Context, issueID uint) ([]*issue.Comment, error) {
	if m.GetByIssueIDFunc != nil {
		return m.GetByIssueIDFunc(ctx, issueID)
	}
	return nil, nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, commentID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, commentID)
	}
	return nil
}

type mockAttachmentRepository struct {
	SaveFunc         func(ctx context.Context, attachment *issue.Attachment) error
	GetByIDFunc      func(ctx context.Context, attachmentID uint) (*issue.Attachment, error)
	GetByIssueIDFunc func(ctx context.Context, issueID uint) ([]*issue.Attachment, error)
	DeleteFunc       func(ctx context.Context, attachmentID uint) error
}

func (m *mockAttachmentRepository) Save(ctx context.Context, attachment *issue.Attachment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, attachment)
	}
	return nil
}

func (m *mockAttachmentRepository) GetByID(ctx context.Context, attachmentID uint) (*issue.Attachment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, attachmentID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) GetByIssueID(ctx context.Context, issueID uint) ([]*issue.Attachment, error) {
	if m.GetByIssueIDFunc != nil {
		return m.GetByIssueIDFunc(ctx, issueID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) Delete(ctx context.Context, attachmentID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, attachmentID)
	}
	return nil
}

type mockUserRepository struct {
	SaveFunc          func(ctx context.Context, u *user.User) error
	UpdateFunc        func(ctx context.Context, u *user.User) error
	GetByIDFunc       func(ctx context.Context, userID uint) (*user.User, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*user.User, error)
	GetByIDsFunc      func(ctx context.Context, userIDs []uint) ([]*user.User, error)
	ListByRoleFunc    func(ctx context.Context, role uservo.Role) ([]*user.User, error)
	ListFunc          func(ctx context.Context, page, pageSize int) ([]*user.User, int64, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)

	CountCreatedBetweenFunc func(ctx context.Context, from, to time.Time) (int64, error)
}

func (m *mockUserRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	if m.CountCreatedBetweenFunc != nil {
		return m.CountCreatedBetweenFunc(ctx, from, to)
	}
	return 0, nil
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, userIDs []uint) ([]*user.User, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, userIDs)
	}
	return nil, nil
}

func (m *mockUserRepository) ListByRole(ctx context.Context, role uservo.Role) ([]*user.User, error) {
	if m.ListByRoleFunc != nil {
		return m.ListByRoleFunc(ctx, role)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, page, pageSize int) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

// mockTxManager runs the function directly without a real transaction.
type mockTxManager struct{}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// mockPublisher collects published events for assertions.
type mockPublisher struct {
	published []events.DomainEvent
}

func (m *mockPublisher) PublishAll(evts []events.DomainEvent) error {
	m.published = append(m.published, evts...)
	return nil
}

func testTime() time.Time {
	return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
}

func (m *mockPublisher) eventTypes() []string {
	types := make([]string, 0, len(m.published))
	for _, e := range m.published {
		types = append(types, e.GetEventType())
	}
	return types
}
