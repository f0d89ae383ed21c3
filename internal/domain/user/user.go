package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	vo "campusdesk/internal/domain/user/valueobjects"
)

type User struct {
	id           uint
	email        string
	passwordHash string
	firstName    string
	lastName     string
	role         vo.Role
	department   string
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email, passwordHash, firstName, lastName string, role vo.Role, department string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email address")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if firstName == "" {
		return nil, fmt.Errorf("first name is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now()
	return &User{
		email:        email,
		passwordHash: passwordHash,
		firstName:    firstName,
		lastName:     lastName,
		role:         role,
		department:   department,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	email, passwordHash, firstName, lastName string,
	role vo.Role,
	department string,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		firstName:    firstName,
		lastName:     lastName,
		role:         role,
		department:   department,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint             { return u.id }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) FirstName() string    { return u.firstName }
func (u *User) LastName() string     { return u.lastName }
func (u *User) Role() vo.Role        { return u.role }
func (u *User) Department() string   { return u.department }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

func (u *User) SetID(id uint) {
	if u.id == 0 {
		u.id = id
	}
}

func (u *User) FullName() string {
	if u.lastName == "" {
		return u.firstName
	}
	return u.firstName + " " + u.lastName
}

func (u *User) ChangeRole(role vo.Role) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.role = role
	u.updatedAt = time.Now()
	return nil
}

func (u *User) UpdateProfile(firstName, lastName, department string) error {
	if firstName == "" {
		return fmt.Errorf("first name is required")
	}
	u.firstName = firstName
	u.lastName = lastName
	u.department = department
	u.updatedAt = time.Now()
	return nil
}

func (u *User) ChangePasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = hash
	u.updatedAt = time.Now()
	return nil
}

func (u *User) Deactivate() {
	u.isActive = false
	u.updatedAt = time.Now()
}

func (u *User) Activate() {
	u.isActive = true
	u.updatedAt = time.Now()
}
