package usecases

import (
	"context"

	"campusdesk/internal/application/callback/dto"
	"campusdesk/internal/domain/callback"
	"campusdesk/internal/shared/errors"
	"campusdesk/internal/shared/logger"
)

type TriggerCallbackCommand struct {
	CallType      callback.CallType
	EndpointName  string
	Payload       map[string]interface{}
	InitiatedByID *uint
}

// TriggerCallbackUseCase records the call, attempts delivery once, and
// leaves failures to the retry job. A delivery failure is not an error
// for the caller, the call row carries the outcome.
type TriggerCallbackUseCase struct {
	endpointRepo callback.EndpointRepository
	callRepo     callback.APICallRepository
	sender       CallbackSender
	maxRetries   int
	logger       logger.Interface
}

func NewTriggerCallbackUseCase(
	endpointRepo callback.EndpointRepository,
	callRepo callback.APICallRepository,
	sender CallbackSender,
	maxRetries int,
	logger logger.Interface,
) *TriggerCallbackUseCase {
	return &TriggerCallbackUseCase{
		endpointRepo: endpointRepo,
		callRepo:     callRepo,
		sender:       sender,
		maxRetries:   maxRetries,
		logger:       logger,
	}
}

func (uc *TriggerCallbackUseCase) Execute(ctx context.Context, cmd TriggerCallbackCommand) (*dto.APICallDTO, error) {
	if !cmd.CallType.IsValid() {
		return nil, errors.NewValidationError("invalid call type")
	}

	endpoint, err := uc.endpointRepo.GetByName(ctx, cmd.EndpointName)
	if err != nil {
		uc.logger.Errorw("failed to look up endpoint", "name", cmd.EndpointName, "error", err)
		return nil, err
	}
	if endpoint == nil {
		return nil, errors.NewNotFoundError("endpoint not found")
	}
	if !endpoint.IsActive() {
		return nil, errors.NewValidationError("endpoint is inactive")
	}

	call, err := callback.NewAPICall(cmd.CallType, endpoint.ID(), cmd.Payload, cmd.InitiatedByID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.callRepo.Save(ctx, call); err != nil {
		uc.logger.Errorw("failed to save api call", "error", err)
		return nil, err
	}

	uc.deliver(ctx, endpoint, call)

	result := dto.ToAPICallDTO(call)
	return &result, nil
}

func (uc *TriggerCallbackUseCase) deliver(ctx context.Context, endpoint *callback.Endpoint, call *callback.APICall) {
	response, err := uc.sender.Send(ctx, endpoint, call)
	if err != nil {
		call.MarkFailure(err.Error(), uc.maxRetries)
		uc.logger.Warnw("callback delivery failed",
			"call_id", call.ID(),
			"endpoint", endpoint.Name(),
			"retry_count", call.RetryCount(),
			"error", err,
		)
	} else {
		call.MarkSuccess(response)
		uc.logger.Infow("callback delivered", "call_id", call.ID(), "endpoint", endpoint.Name())
	}
	if err := uc.callRepo.Update(ctx, call); err != nil {
		uc.logger.Errorw("failed to update api call", "call_id", call.ID(), "error", err)
	}
}
