package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Submit(ctx context.Context, in SubmitInput) (SubmitResponse, error)
	Progress(ctx context.Context, batchID string) (ProgressResponse, error)
	Errors(ctx context.Context, batchID string) (ErrorsResponse, error)
}
