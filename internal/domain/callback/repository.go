package callback

import "context"

type EndpointRepository interface {
	Save(ctx context.Context, endpoint *Endpoint) error
	Update(ctx context.Context, endpoint *Endpoint) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Endpoint, error)
	GetByName(ctx context.Context, name string) (*Endpoint, error)
	ListActive(ctx context.Context) ([]*Endpoint, error)
	List(ctx context.Context, page, pageSize int) ([]*Endpoint, int64, error)
}

type APICallRepository interface {
	Save(ctx context.Context, call *APICall) error
	Update(ctx context.Context, call *APICall) error
	GetByID(ctx context.Context, id uint) (*APICall, error)
	List(ctx context.Context, page, pageSize int) ([]*APICall, int64, error)
	// ListRetryable returns calls in PENDING or RETRYING with retry_count
	// below maxRetries, oldest first.
	ListRetryable(ctx context.Context, maxRetries, limit int) ([]*APICall, error)
}
