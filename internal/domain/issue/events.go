package issue

import (
	"strconv"
	"time"

	"campusdesk/internal/domain/shared/events"
)

const (
	EventTypeIssueCreated       = "issue.created"
	EventTypeIssueAssigned      = "issue.assigned"
	EventTypeIssueStatusChanged = "issue.status_changed"
	EventTypeIssueResolved      = "issue.resolved"
	EventTypeIssueEscalated     = "issue.escalated"
	EventTypeCommentAdded       = "issue.comment_added"
)

type IssueCreatedEvent struct {
	events.BaseEvent
	IssueID     uint
	Title       string
	Category    string
	Priority    string
	SubmitterID uint
	IP          string
}

func NewIssueCreatedEvent(issueID uint, title, category, priority string, submitterID uint, at time.Time) IssueCreatedEvent {
	return IssueCreatedEvent{
		BaseEvent:   newBaseEvent(issueID, EventTypeIssueCreated, at),
		IssueID:     issueID,
		Title:       title,
		Category:    category,
		Priority:    priority,
		SubmitterID: submitterID,
	}
}

type IssueAssignedEvent struct {
	events.BaseEvent
	IssueID    uint
	Title      string
	AssigneeID uint
	AssignedBy uint
	IP         string
}

func NewIssueAssignedEvent(issueID uint, title string, assigneeID, assignedBy uint, at time.Time) IssueAssignedEvent {
	return IssueAssignedEvent{
		BaseEvent:  newBaseEvent(issueID, EventTypeIssueAssigned, at),
		IssueID:    issueID,
		Title:      title,
		AssigneeID: assigneeID,
		AssignedBy: assignedBy,
	}
}

type IssueStatusChangedEvent struct {
	events.BaseEvent
	IssueID     uint
	Title       string
	OldStatus   string
	NewStatus   string
	ChangedBy   uint
	SubmitterID uint
	AssigneeID  *uint
	Notes       string
	IP          string
}

func NewIssueStatusChangedEvent(issueID uint, title, oldStatus, newStatus string, changedBy, submitterID uint, assigneeID *uint, notes string, at time.Time) IssueStatusChangedEvent {
	return IssueStatusChangedEvent{
		BaseEvent:   newBaseEvent(issueID, EventTypeIssueStatusChanged, at),
		IssueID:     issueID,
		Title:       title,
		OldStatus:   oldStatus,
		NewStatus:   newStatus,
		ChangedBy:   changedBy,
		SubmitterID: submitterID,
		AssigneeID:  assigneeID,
		Notes:       notes,
	}
}

type IssueResolvedEvent struct {
	events.BaseEvent
	IssueID     uint
	Title       string
	SubmitterID uint
	ResolvedBy  uint
}

func NewIssueResolvedEvent(issueID uint, title string, submitterID, resolvedBy uint, at time.Time) IssueResolvedEvent {
	return IssueResolvedEvent{
		BaseEvent:   newBaseEvent(issueID, EventTypeIssueResolved, at),
		IssueID:     issueID,
		Title:       title,
		SubmitterID: submitterID,
		ResolvedBy:  resolvedBy,
	}
}

type IssueEscalatedEvent struct {
	events.BaseEvent
	IssueID     uint
	Title       string
	EscalatedBy uint
}

func NewIssueEscalatedEvent(issueID uint, title string, escalatedBy uint, at time.Time) IssueEscalatedEvent {
	return IssueEscalatedEvent{
		BaseEvent:   newBaseEvent(issueID, EventTypeIssueEscalated, at),
		IssueID:     issueID,
		Title:       title,
		EscalatedBy: escalatedBy,
	}
}

type CommentAddedEvent struct {
	events.BaseEvent
	IssueID     uint
	IssueTitle  string
	CommentID   uint
	AuthorID    uint
	SubmitterID uint
	AssigneeID  *uint
	Content     string
	IP          string
}

func NewCommentAddedEvent(issueID uint, issueTitle string, commentID, authorID, submitterID uint, assigneeID *uint, content string, at time.Time) CommentAddedEvent {
	return CommentAddedEvent{
		BaseEvent:   newBaseEvent(issueID, EventTypeCommentAdded, at),
		IssueID:     issueID,
		IssueTitle:  issueTitle,
		CommentID:   commentID,
		AuthorID:    authorID,
		SubmitterID: submitterID,
		AssigneeID:  assigneeID,
		Content:     content,
	}
}

// StampActorIP returns a copy of the event carrying the client address
// the triggering request came from. The aggregate records events without
// transport detail; the application layer stamps them before publishing.
// Events without an IP field pass through unchanged.
func StampActorIP(event events.DomainEvent, ip string) events.DomainEvent {
	if ip == "" {
		return event
	}
	switch e := event.(type) {
	case IssueCreatedEvent:
		e.IP = ip
		return e
	case IssueAssignedEvent:
		e.IP = ip
		return e
	case IssueStatusChangedEvent:
		e.IP = ip
		return e
	case CommentAddedEvent:
		e.IP = ip
		return e
	}
	return event
}

func newBaseEvent(aggregateID uint, eventType string, at time.Time) events.BaseEvent {
	return events.BaseEvent{
		AggregateID: strconv.FormatUint(uint64(aggregateID), 10),
		EventType:   eventType,
		OccurredAt:  at,
		Version:     1,
	}
}
