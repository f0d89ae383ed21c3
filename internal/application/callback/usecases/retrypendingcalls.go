package usecases

import (
	"context"

	"campusdesk/internal/domain/callback"
	"campusdesk/internal/shared/logger"
)

const retryBatchSize = 50

// RetryPendingCallsUseCase redelivers calls stuck in PENDING or
// RETRYING. The scheduler runs it on the configured interval.
type RetryPendingCallsUseCase struct {
	endpointRepo callback.EndpointRepository
	callRepo     callback.APICallRepository
	sender       CallbackSender
	maxRetries   int
	logger       logger.Interface
}

func NewRetryPendingCallsUseCase(
	endpointRepo callback.EndpointRepository,
	callRepo callback.APICallRepository,
	sender CallbackSender,
	maxRetries int,
	logger logger.Interface,
) *RetryPendingCallsUseCase {
	return &RetryPendingCallsUseCase{
		endpointRepo: endpointRepo,
		callRepo:     callRepo,
		sender:       sender,
		maxRetries:   maxRetries,
		logger:       logger,
	}
}

func (uc *RetryPendingCallsUseCase) Execute(ctx context.Context) error {
	calls, err := uc.callRepo.ListRetryable(ctx, uc.maxRetries, retryBatchSize)
	if err != nil {
		uc.logger.Errorw("failed to list retryable calls", "error", err)
		return err
	}
	if len(calls) == 0 {
		return nil
	}

	for _, call := range calls {
		endpoint, err := uc.endpointRepo.GetByID(ctx, call.EndpointID())
		if err != nil {
			uc.logger.Errorw("failed to get endpoint for retry", "call_id", call.ID(), "error", err)
			continue
		}
		if endpoint == nil || !endpoint.IsActive() {
			call.MarkFailure("endpoint missing or inactive", 0)
			if err := uc.callRepo.Update(ctx, call); err != nil {
				uc.logger.Errorw("failed to update api call", "call_id", call.ID(), "error", err)
			}
			continue
		}

		response, err := uc.sender.Send(ctx, endpoint, call)
		if err != nil {
			call.MarkFailure(err.Error(), uc.maxRetries)
		} else {
			call.MarkSuccess(response)
		}
		if err := uc.callRepo.Update(ctx, call); err != nil {
			uc.logger.Errorw("failed to update api call", "call_id", call.ID(), "error", err)
		}
	}

	uc.logger.Infow("callback retry pass finished", "attempted", len(calls))
	return nil
}
