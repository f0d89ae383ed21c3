package valueobjects

type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleFaculty Role = "FACULTY"
	RoleAdmin   Role = "ADMIN"
)

var validRoles = map[Role]bool{
	RoleStudent: true,
	RoleFaculty: true,
	RoleAdmin:   true,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) IsFaculty() bool {
	return r == RoleFaculty
}

func (r Role) IsStudent() bool {
	return r == RoleStudent
}

// CanBeAssigned reports whether issues may be assigned to users of this role.
func (r Role) CanBeAssigned() bool {
	return r == RoleFaculty || r == RoleAdmin
}

func AllRoles() []Role {
	return []Role{RoleStudent, RoleFaculty, RoleAdmin}
}
