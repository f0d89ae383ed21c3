package eventhandlers

import (
	"context"

	callbackusecases "campusdesk/internal/application/callback/usecases"
	"campusdesk/internal/domain/callback"
	"campusdesk/internal/domain/issue"
	"campusdesk/internal/domain/shared/events"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

// CallbackHandler forwards issue lifecycle events to the registered
// frontend endpoint as outbound HTTP callbacks. Missing endpoint
// registration simply disables forwarding.
type CallbackHandler struct {
	trigger      *callbackusecases.TriggerCallbackUseCase
	endpointName string
	logger       logger.Interface
}

func NewCallbackHandler(trigger *callbackusecases.TriggerCallbackUseCase, endpointName string, logger logger.Interface) *CallbackHandler {
	return &CallbackHandler{
		trigger:      trigger,
		endpointName: endpointName,
		logger:       logger,
	}
}

func (h *CallbackHandler) HandleIssueEvent(event events.DomainEvent) error {
	payload := map[string]interface{}{
		"event":        event.GetEventType(),
		"aggregate_id": event.GetAggregateID(),
		"occurred_at":  event.GetOccurredAt(),
	}

	switch e := event.(type) {
	case issue.IssueCreatedEvent:
		payload["issue_id"] = e.IssueID
		payload["title"] = e.Title
	case issue.IssueAssignedEvent:
		payload["issue_id"] = e.IssueID
		payload["assignee_id"] = e.AssigneeID
	case issue.IssueStatusChangedEvent:
		payload["issue_id"] = e.IssueID
		payload["new_status"] = e.NewStatus
	case issue.IssueResolvedEvent:
		payload["issue_id"] = e.IssueID
	case issue.IssueEscalatedEvent:
		payload["issue_id"] = e.IssueID
	}

	_, err := h.trigger.Execute(context.Background(), callbackusecases.TriggerCallbackCommand{
		CallType:     callback.CallTypeDataUpdate,
		EndpointName: h.endpointName,
		Payload:      payload,
	})
	if err != nil && !errors.IsNotFoundError(err) {
		h.logger.Warnw("failed to trigger frontend callback", "event_type", event.GetEventType(), "error", err)
	}
	return nil
}
