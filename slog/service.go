package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/howto"
)

// Ensure LoggingResolver implements howto.Resolver.
var _ howto.Resolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a Resolver with logging.
type LoggingResolver struct {
	next   howto.Resolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next howto.Resolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the article found.
func (r *LoggingResolver) Resolve(ctx context.Context, query string) (url string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("search",
			"query", query,
			"article", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Resolve(ctx, query)
}

// Ensure LoggingService implements howto.Service.
var _ howto.Service = (*LoggingService)(nil)

// LoggingService wraps a Service with logging.
type LoggingService struct {
	next   howto.Service
	logger *slog.Logger
}

// NewLoggingService creates a new LoggingService.
func NewLoggingService(next howto.Service, logger *slog.Logger) *LoggingService {
	return &LoggingService{next: next, logger: logger}
}

// HowTo delegates to the wrapped service and logs the outcome.
func (s *LoggingService) HowTo(ctx context.Context, query string) (doc *howto.Document, err error) {
	defer func(begin time.Time) {
		steps := 0
		if doc != nil {
			steps = len(doc.Steps)
		}
		s.logger.Info("howto",
			"query", query,
			"steps", steps,
			"code", howto.ErrorCode(err),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.HowTo(ctx, query)
}
