package dto

import (
	"time"

	"campusdesk/internal/domain/realtime"
)

type OnlineUserDTO struct {
	UserID       uint      `json:"user_id"`
	FullName     string    `json:"full_name,omitempty"`
	LastActivity time.Time `json:"last_activity"`
}

type TypingUserDTO struct {
	UserID   uint   `json:"user_id"`
	FullName string `json:"full_name,omitempty"`
}

type ViewerDTO struct {
	UserID   uint   `json:"user_id"`
	FullName string `json:"full_name,omitempty"`
}

func ToOnlineUserDTO(o *realtime.OnlineUser) OnlineUserDTO {
	return OnlineUserDTO{
		UserID:       o.UserID(),
		LastActivity: o.LastActivity(),
	}
}
