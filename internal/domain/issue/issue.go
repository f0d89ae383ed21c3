package issue

import (
	"fmt"
	"time"

	"campusdesk/internal/domain/shared/events"
	vo "campusdesk/internal/domain/issue/valueobjects"
)

// Issue is the aggregate root for a reported student concern. The current
// status field always mirrors the most recent appended status record.
type Issue struct {
	id          uint
	title       string
	description string
	category    vo.Category
	priority    vo.Priority
	status      vo.Status
	submitterID uint
	assigneeID  *uint
	externalRef string
	createdAt   time.Time
	updatedAt   time.Time

	domainEvents []events.DomainEvent
}

func NewIssue(
	title string,
	description string,
	category vo.Category,
	priority vo.Priority,
	submitterID uint,
) (*Issue, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", category)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if submitterID == 0 {
		return nil, fmt.Errorf("submitter ID is required")
	}

	now := time.Now()
	return &Issue{
		title:       title,
		description: description,
		category:    category,
		priority:    priority,
		status:      vo.StatusSubmitted,
		submitterID: submitterID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructIssue(
	id uint,
	title string,
	description string,
	category vo.Category,
	priority vo.Priority,
	status vo.Status,
	submitterID uint,
	assigneeID *uint,
	externalRef string,
	createdAt, updatedAt time.Time,
) (*Issue, error) {
	if id == 0 {
		return nil, fmt.Errorf("issue ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", category)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Issue{
		id:          id,
		title:       title,
		description: description,
		category:    category,
		priority:    priority,
		status:      status,
		submitterID: submitterID,
		assigneeID:  assigneeID,
		externalRef: externalRef,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (i *Issue) ID() uint                 { return i.id }
func (i *Issue) Title() string            { return i.title }
func (i *Issue) Description() string      { return i.description }
func (i *Issue) Category() vo.Category    { return i.category }
func (i *Issue) Priority() vo.Priority    { return i.priority }
func (i *Issue) Status() vo.Status        { return i.status }
func (i *Issue) SubmitterID() uint        { return i.submitterID }
func (i *Issue) AssigneeID() *uint        { return i.assigneeID }
func (i *Issue) ExternalRef() string      { return i.externalRef }
func (i *Issue) CreatedAt() time.Time     { return i.createdAt }
func (i *Issue) UpdatedAt() time.Time     { return i.updatedAt }

// SetID is called by the repository after the initial insert.
func (i *Issue) SetID(id uint) {
	if i.id == 0 {
		i.id = id
	}
}

func (i *Issue) RecordCreated() {
	i.addEvent(NewIssueCreatedEvent(i.id, i.title, i.category.String(), i.priority.String(), i.submitterID, time.Now()))
}

// UpdateDetails changes the editable fields without touching status history.
func (i *Issue) UpdateDetails(title, description string, category vo.Category, priority vo.Priority) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return fmt.Errorf("description is required")
	}
	if !category.IsValid() {
		return fmt.Errorf("invalid category: %s", category)
	}
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", priority)
	}

	i.title = title
	i.description = description
	i.category = category
	i.priority = priority
	i.updatedAt = time.Now()
	return nil
}

func (i *Issue) SetExternalRef(ref string) {
	i.externalRef = ref
	i.updatedAt = time.Now()
}

// Assign sets the assignee and moves the issue to ASSIGNED.
// Passing nil clears the assignment and returns the issue to SUBMITTED.
func (i *Issue) Assign(assigneeID *uint, actorID uint) error {
	if assigneeID != nil && *assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}

	i.assigneeID = assigneeID
	i.updatedAt = time.Now()
	previous := i.status

	if assigneeID == nil {
		if previous != vo.StatusSubmitted {
			i.status = vo.StatusSubmitted
			i.addEvent(NewIssueStatusChangedEvent(i.id, i.title, previous.String(), vo.StatusSubmitted.String(), actorID, i.submitterID, nil, "", time.Now()))
		}
		return nil
	}

	i.status = vo.StatusAssigned
	i.addEvent(NewIssueAssignedEvent(i.id, i.title, *assigneeID, actorID, time.Now()))
	if previous != vo.StatusAssigned {
		i.addEvent(NewIssueStatusChangedEvent(i.id, i.title, previous.String(), vo.StatusAssigned.String(), actorID, i.submitterID, assigneeID, "", time.Now()))
	}
	return nil
}

// ChangeStatus moves the issue to a new status. The caller is responsible
// for appending the matching history record in the same transaction.
func (i *Issue) ChangeStatus(next vo.Status, actorID uint, notes string) error {
	if !next.IsValid() {
		return fmt.Errorf("invalid status: %s", next)
	}
	previous := i.status
	if previous == next {
		return fmt.Errorf("issue is already %s", next)
	}

	i.status = next
	i.updatedAt = time.Now()
	i.addEvent(NewIssueStatusChangedEvent(i.id, i.title, previous.String(), next.String(), actorID, i.submitterID, i.assigneeID, notes, time.Now()))

	switch next {
	case vo.StatusResolved:
		i.addEvent(NewIssueResolvedEvent(i.id, i.title, i.submitterID, actorID, time.Now()))
	case vo.StatusEscalated:
		i.addEvent(NewIssueEscalatedEvent(i.id, i.title, actorID, time.Now()))
	}
	return nil
}

// Resolve is a ChangeStatus shortcut used by the assignee flow.
func (i *Issue) Resolve(actorID uint, notes string) error {
	if i.status == vo.StatusResolved {
		return fmt.Errorf("issue is already resolved")
	}
	return i.ChangeStatus(vo.StatusResolved, actorID, notes)
}

// Escalate flags the issue for admin attention.
func (i *Issue) Escalate(actorID uint, notes string) error {
	if i.status == vo.StatusEscalated {
		return fmt.Errorf("issue is already escalated")
	}
	return i.ChangeStatus(vo.StatusEscalated, actorID, notes)
}

// IsVisibleTo reports whether the user may read this issue.
// Admins see everything, faculty see assigned or submitted, students
// see only their own submissions.
func (i *Issue) IsVisibleTo(userID uint, isAdmin, isFaculty bool) bool {
	if isAdmin {
		return true
	}
	if i.submitterID == userID {
		return true
	}
	if isFaculty && i.assigneeID != nil && *i.assigneeID == userID {
		return true
	}
	return false
}

func (i *Issue) addEvent(event events.DomainEvent) {
	i.domainEvents = append(i.domainEvents, event)
}

// DomainEvents returns events recorded since construction or the last clear.
func (i *Issue) DomainEvents() []events.DomainEvent {
	return i.domainEvents
}

func (i *Issue) ClearDomainEvents() {
	i.domainEvents = nil
}
