package user

import (
	"context"
	"time"

	vo "campusdesk/internal/domain/user/valueobjects"
)

type UserRepository interface {
	Save(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByIDs(ctx context.Context, userIDs []uint) ([]*User, error)
	ListByRole(ctx context.Context, role vo.Role) ([]*User, error)
	List(ctx context.Context, page, pageSize int) ([]*User, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// CountCreatedBetween counts users created in [from, to).
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}
