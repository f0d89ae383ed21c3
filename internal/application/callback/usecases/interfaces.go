package usecases

import (
	"context"

	"campusdesk/internal/domain/callback"
)

// CallbackSender delivers one call to a frontend endpoint and returns
// the response body on success.
type CallbackSender interface {
	Send(ctx context.Context, endpoint *callback.Endpoint, call *callback.APICall) (string, error)
}
