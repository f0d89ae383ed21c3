package valueobjects

type Status string

const (
	StatusSubmitted   Status = "SUBMITTED"
	StatusAssigned    Status = "ASSIGNED"
	StatusInProgress  Status = "IN_PROGRESS"
	StatusPendingInfo Status = "PENDING_INFO"
	StatusResolved    Status = "RESOLVED"
	StatusClosed      Status = "CLOSED"
	StatusEscalated   Status = "ESCALATED"
)

var validStatuses = map[Status]bool{
	StatusSubmitted:   true,
	StatusAssigned:    true,
	StatusInProgress:  true,
	StatusPendingInfo: true,
	StatusResolved:    true,
	StatusClosed:      true,
	StatusEscalated:   true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsTerminal() bool {
	return s == StatusResolved || s == StatusClosed
}

func AllStatuses() []Status {
	return []Status{
		StatusSubmitted,
		StatusAssigned,
		StatusInProgress,
		StatusPendingInfo,
		StatusResolved,
		StatusClosed,
		StatusEscalated,
	}
}
