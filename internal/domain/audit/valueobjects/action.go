package valueobjects

type Action string

const (
	ActionCreate       Action = "CREATE"
	ActionUpdate       Action = "UPDATE"
	ActionDelete       Action = "DELETE"
	ActionLogin        Action = "LOGIN"
	ActionLogout       Action = "LOGOUT"
	ActionAssign       Action = "ASSIGN"
	ActionStatusChange Action = "STATUS_CHANGE"
	ActionComment      Action = "COMMENT"
)

var validActions = map[Action]bool{
	ActionCreate:       true,
	ActionUpdate:       true,
	ActionDelete:       true,
	ActionLogin:        true,
	ActionLogout:       true,
	ActionAssign:       true,
	ActionStatusChange: true,
	ActionComment:      true,
}

func (a Action) String() string {
	return string(a)
}

func (a Action) IsValid() bool {
	return validActions[a]
}

func AllActions() []Action {
	return []Action{
		ActionCreate,
		ActionUpdate,
		ActionDelete,
		ActionLogin,
		ActionLogout,
		ActionAssign,
		ActionStatusChange,
		ActionComment,
	}
}
