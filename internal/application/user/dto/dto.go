package dto

import (
	"time"

	"campusdesk/internal/domain/user"
)

type UserDTO struct {
	ID         uint      `json:"id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	FullName   string    `json:"full_name"`
	Role       string    `json:"role"`
	Department string    `json:"department,omitempty"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

type AuthResultDTO struct {
	User         UserDTO `json:"user"`
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	ExpiresIn    int64   `json:"expires_in"`
}

func ToUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:         u.ID(),
		Email:      u.Email(),
		FirstName:  u.FirstName(),
		LastName:   u.LastName(),
		FullName:   u.FullName(),
		Role:       u.Role().String(),
		Department: u.Department(),
		IsActive:   u.IsActive(),
		CreatedAt:  u.CreatedAt(),
	}
}

func ToUserDTOs(users []*user.User) []UserDTO {
	result := make([]UserDTO, 0, len(users))
	for _, u := range users {
		result = append(result, ToUserDTO(u))
	}
	return result
}
