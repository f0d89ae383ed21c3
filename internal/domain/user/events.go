package user

import (
	"strconv"
	"time"

	"campusdesk/internal/domain/shared/events"
)

const (
	EventTypeUserLoggedIn  = "user.logged_in"
	EventTypeUserLoggedOut = "user.logged_out"
)

type UserLoggedInEvent struct {
	events.BaseEvent
	UserID    uint
	Email     string
	IP        string
	UserAgent string
}

func NewUserLoggedInEvent(userID uint, email, ip, userAgent string, at time.Time) UserLoggedInEvent {
	return UserLoggedInEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(userID), 10),
			EventType:   EventTypeUserLoggedIn,
			OccurredAt:  at,
			Version:     1,
		},
		UserID:    userID,
		Email:     email,
		IP:        ip,
		UserAgent: userAgent,
	}
}

type UserLoggedOutEvent struct {
	events.BaseEvent
	UserID    uint
	Email     string
	IP        string
	UserAgent string
}

func NewUserLoggedOutEvent(userID uint, email, ip, userAgent string, at time.Time) UserLoggedOutEvent {
	return UserLoggedOutEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: strconv.FormatUint(uint64(userID), 10),
			EventType:   EventTypeUserLoggedOut,
			OccurredAt:  at,
			Version:     1,
		},
		UserID:    userID,
		Email:     email,
		IP:        ip,
		UserAgent: userAgent,
	}
}
