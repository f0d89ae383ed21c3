package dto

import (
	"time"

	"campusdesk/internal/domain/callback"
)

type EndpointDTO struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	URL          string    `json:"url"`
	RequiresAuth bool      `json:"requires_auth"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type APICallDTO struct {
	ID           uint                   `json:"id"`
	CallType     string                 `json:"call_type"`
	EndpointID   uint                   `json:"endpoint_id"`
	Payload      map[string]interface{} `json:"payload,omitempty"`
	Status       string                 `json:"status"`
	Response     string                 `json:"response,omitempty"`
	ErrorMessage string                 `json:"error_message,omitempty"`
	RetryCount   int                    `json:"retry_count"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

func ToEndpointDTO(e *callback.Endpoint) EndpointDTO {
	return EndpointDTO{
		ID:           e.ID(),
		Name:         e.Name(),
		URL:          e.URL(),
		RequiresAuth: e.RequiresAuth(),
		IsActive:     e.IsActive(),
		CreatedAt:    e.CreatedAt(),
		UpdatedAt:    e.UpdatedAt(),
	}
}

func ToEndpointDTOs(endpoints []*callback.Endpoint) []EndpointDTO {
	result := make([]EndpointDTO, 0, len(endpoints))
	for _, e := range endpoints {
		result = append(result, ToEndpointDTO(e))
	}
	return result
}

func ToAPICallDTO(c *callback.APICall) APICallDTO {
	return APICallDTO{
		ID:           c.ID(),
		CallType:     c.CallType().String(),
		EndpointID:   c.EndpointID(),
		Payload:      c.Payload(),
		Status:       c.Status().String(),
		Response:     c.Response(),
		ErrorMessage: c.ErrorMessage(),
		RetryCount:   c.RetryCount(),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}

func ToAPICallDTOs(calls []*callback.APICall) []APICallDTO {
	result := make([]APICallDTO, 0, len(calls))
	for _, c := range calls {
		result = append(result, ToAPICallDTO(c))
	}
	return result
}
