package usecases

import (
	uservo "campusdesk/internal/domain/user/valueobjects"
)

// Actor carries the authenticated caller identity into issue commands.
// IP is the client address the request came from; it lands on the
// audit trail.
type Actor struct {
	ID   uint
	Role string
	IP   string
}

func (a Actor) role() uservo.Role {
	return uservo.Role(a.Role)
}

func (a Actor) IsAdmin() bool {
	return a.role().IsAdmin()
}

func (a Actor) IsFaculty() bool {
	return a.role().IsFaculty()
}

func (a Actor) IsStudent() bool {
	return a.role().IsStudent()
}
