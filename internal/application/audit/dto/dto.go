package dto

import (
	"time"

	"campusdesk/internal/domain/audit"
)

type EntryDTO struct {
	ID         uint                   `json:"id"`
	ActorID    *uint                  `json:"actor_id,omitempty"`
	ActorName  string                 `json:"actor_name,omitempty"`
	Action     string                 `json:"action"`
	TargetKind string                 `json:"target_kind,omitempty"`
	TargetID   uint                   `json:"target_id,omitempty"`
	ObjectRepr string                 `json:"object_repr,omitempty"`
	IP         string                 `json:"ip_address,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}

func ToEntryDTO(e *audit.Entry) EntryDTO {
	d := EntryDTO{
		ID:         e.ID(),
		ActorID:    e.ActorID(),
		Action:     e.Action().String(),
		ObjectRepr: e.ObjectRepr(),
		IP:         e.IP(),
		Details:    e.Details(),
		CreatedAt:  e.CreatedAt(),
	}
	if !e.Target().IsZero() {
		d.TargetKind = e.Target().Kind.String()
		d.TargetID = e.Target().ID
	}
	return d
}
