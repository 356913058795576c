package mock

import (
	"context"

	"github.com/fwojciec/howto"
)

var _ howto.Resolver = (*Resolver)(nil)

// Resolver is a mock implementation of howto.Resolver.
type Resolver struct {
	ResolveFn func(ctx context.Context, query string) (string, error)
}

func (r *Resolver) Resolve(ctx context.Context, query string) (string, error) {
	return r.ResolveFn(ctx, query)
}

var _ howto.Service = (*Service)(nil)

// Service is a mock implementation of howto.Service.
type Service struct {
	HowToFn func(ctx context.Context, query string) (*howto.Document, error)
}

func (s *Service) HowTo(ctx context.Context, query string) (*howto.Document, error) {
	return s.HowToFn(ctx, query)
}
