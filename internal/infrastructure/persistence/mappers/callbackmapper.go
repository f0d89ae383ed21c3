package mappers

import (
	"encoding/json"
	"fmt"

	"campusdesk/internal/domain/callback"
	"campusdesk/internal/infrastructure/persistence/models"
)

type CallbackMapper interface {
	EndpointToModel(entity *callback.Endpoint) *models.FrontendEndpointModel
	EndpointToDomain(model *models.FrontendEndpointModel) *callback.Endpoint
	APICallToModel(entity *callback.APICall) (*models.FrontendAPICallModel, error)
	APICallToDomain(model *models.FrontendAPICallModel) (*callback.APICall, error)
}

type CallbackMapperImpl struct{}

func NewCallbackMapper() CallbackMapper {
	return &CallbackMapperImpl{}
}

func (m *CallbackMapperImpl) EndpointToModel(entity *callback.Endpoint) *models.FrontendEndpointModel {
	return &models.FrontendEndpointModel{
		ID:           entity.ID(),
		Name:         entity.Name(),
		URL:          entity.URL(),
		RequiresAuth: entity.RequiresAuth(),
		IsActive:     entity.IsActive(),
		CreatedAt:    timeToMillis(entity.CreatedAt()),
		UpdatedAt:    timeToMillis(entity.UpdatedAt()),
	}
}

func (m *CallbackMapperImpl) EndpointToDomain(model *models.FrontendEndpointModel) *callback.Endpoint {
	return callback.ReconstructEndpoint(
		model.ID,
		model.Name,
		model.URL,
		model.RequiresAuth,
		model.IsActive,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *CallbackMapperImpl) APICallToModel(entity *callback.APICall) (*models.FrontendAPICallModel, error) {
	payloadJSON, err := json.Marshal(entity.Payload())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal call payload: %w", err)
	}

	return &models.FrontendAPICallModel{
		ID:            entity.ID(),
		CallType:      entity.CallType().String(),
		EndpointID:    entity.EndpointID(),
		Payload:       payloadJSON,
		Status:        entity.Status().String(),
		Response:      entity.Response(),
		ErrorMessage:  entity.ErrorMessage(),
		RetryCount:    entity.RetryCount(),
		InitiatedByID: entity.InitiatedByID(),
		CreatedAt:     timeToMillis(entity.CreatedAt()),
		UpdatedAt:     timeToMillis(entity.UpdatedAt()),
	}, nil
}

func (m *CallbackMapperImpl) APICallToDomain(model *models.FrontendAPICallModel) (*callback.APICall, error) {
	payload := map[string]interface{}{}
	if len(model.Payload) > 0 {
		if err := json.Unmarshal(model.Payload, &payload); err != nil {
			return nil, fmt.Errorf("failed to unmarshal call payload (id=%d): %w", model.ID, err)
		}
	}

	return callback.ReconstructAPICall(
		model.ID,
		callback.CallType(model.CallType),
		model.EndpointID,
		payload,
		callback.CallStatus(model.Status),
		model.Response,
		model.ErrorMessage,
		model.RetryCount,
		model.InitiatedByID,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	), nil
}
