package notification

import (
	"fmt"
	"time"

	vo "campusdesk/internal/domain/notification/valueobjects"
	"campusdesk/internal/domain/shared/ref"
)

type Notification struct {
	id          uint
	recipientID uint
	target      ref.TargetRef
	message     string
	notifType   vo.NotificationType
	isRead      bool
	createdAt   time.Time
}

func NewNotification(recipientID uint, target ref.TargetRef, message string, notifType vo.NotificationType) (*Notification, error) {
	if recipientID == 0 {
		return nil, fmt.Errorf("recipient ID is required")
	}
	if message == "" {
		return nil, fmt.Errorf("message is required")
	}
	if !notifType.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", notifType)
	}

	return &Notification{
		recipientID: recipientID,
		target:      target,
		message:     message,
		notifType:   notifType,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructNotification(
	id, recipientID uint,
	target ref.TargetRef,
	message string,
	notifType vo.NotificationType,
	isRead bool,
	createdAt time.Time,
) *Notification {
	return &Notification{
		id:          id,
		recipientID: recipientID,
		target:      target,
		message:     message,
		notifType:   notifType,
		isRead:      isRead,
		createdAt:   createdAt,
	}
}

func (n *Notification) ID() uint                  { return n.id }
func (n *Notification) RecipientID() uint         { return n.recipientID }
func (n *Notification) Target() ref.TargetRef     { return n.target }
func (n *Notification) Message() string           { return n.message }
func (n *Notification) Type() vo.NotificationType { return n.notifType }
func (n *Notification) IsRead() bool              { return n.isRead }
func (n *Notification) CreatedAt() time.Time      { return n.createdAt }

func (n *Notification) SetID(id uint) {
	if n.id == 0 {
		n.id = id
	}
}

func (n *Notification) MarkAsRead() {
	n.isRead = true
}
