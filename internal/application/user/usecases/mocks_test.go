package usecases

import (
	"context"
	"fmt"
	"time"

	"campusdesk/internal/domain/shared/events"
	"campusdesk/internal/domain/user"
	uservo "campusdesk/internal/domain/user/valueobjects"
)

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

// mockHasher prefixes instead of hashing so tests can assert on stored values.
type mockHasher struct{}

func (m *mockHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (m *mockHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

type mockTokenService struct {
	GenerateFunc func(userID uint, role string) (*TokenPair, error)
	RefreshFunc  func(refreshToken string) (*TokenPair, error)
}

func (m *mockTokenService) Generate(userID uint, role string) (*TokenPair, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, role)
	}
	return &TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 3600}, nil
}

func (m *mockTokenService) Refresh(refreshToken string) (*TokenPair, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(refreshToken)
	}
	return &TokenPair{AccessToken: "access", RefreshToken: refreshToken, ExpiresIn: 3600}, nil
}

type mockPublisher struct {
	published []events.DomainEvent
}

func (m *mockPublisher) PublishAll(evts []events.DomainEvent) error {
	m.published = append(m.published, evts...)
	return nil
}

func (m *mockPublisher) eventTypes() []string {
	types := make([]string, 0, len(m.published))
	for _, e := range m.published {
		types = append(types, e.GetEventType())
	}
	return types
}
