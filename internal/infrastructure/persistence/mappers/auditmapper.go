package mappers

import (
	"encoding/json"
	"fmt"

	"campusdesk/internal/domain/audit"
	vo "campusdesk/internal/domain/audit/valueobjects"
	"campusdesk/internal/domain/shared/ref"
	"campusdesk/internal/infrastructure/persistence/models"
)

type AuditMapper interface {
	ToModel(entity *audit.Entry) (*models.AuditLogModel, error)
	ToDomain(model *models.AuditLogModel) (*audit.Entry, error)
	ToDomains(models []*models.AuditLogModel) ([]*audit.Entry, error)
}

type AuditMapperImpl struct{}

func NewAuditMapper() AuditMapper {
	return &AuditMapperImpl{}
}

func (m *AuditMapperImpl) ToModel(entity *audit.Entry) (*models.AuditLogModel, error) {
	detailsJSON, err := json.Marshal(entity.Details())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal audit details: %w", err)
	}

	return &models.AuditLogModel{
		ID:         entity.ID(),
		ActorID:    entity.ActorID(),
		Action:     entity.Action().String(),
		TargetKind: entity.Target().Kind.String(),
		TargetID:   entity.Target().ID,
		ObjectRepr: entity.ObjectRepr(),
		IP:         entity.IP(),
		Details:    detailsJSON,
		CreatedAt:  timeToMillis(entity.CreatedAt()),
	}, nil
}

func (m *AuditMapperImpl) ToDomain(model *models.AuditLogModel) (*audit.Entry, error) {
	details := map[string]interface{}{}
	if len(model.Details) > 0 {
		if err := json.Unmarshal(model.Details, &details); err != nil {
			return nil, fmt.Errorf("failed to unmarshal audit details (id=%d): %w", model.ID, err)
		}
	}

	target := ref.TargetRef{Kind: ref.EntityKind(model.TargetKind), ID: model.TargetID}
	return audit.ReconstructEntry(
		model.ID,
		model.ActorID,
		vo.Action(model.Action),
		target,
		model.ObjectRepr,
		model.IP,
		details,
		millisToTime(model.CreatedAt),
	), nil
}

func (m *AuditMapperImpl) ToDomains(auditModels []*models.AuditLogModel) ([]*audit.Entry, error) {
	entities := make([]*audit.Entry, 0, len(auditModels))
	for _, model := range auditModels {
		entity, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
