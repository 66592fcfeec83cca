package service

import (
	"context"
	"summa-reader/internal/domain"
	"summa-reader/internal/dto"
	"summa-reader/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Health states
const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
	StatusDisabled = "disabled"
	StatusDown     = "down"
)

// HealthService checks the cache and the document source
type HealthService interface {
	Check(ctx context.Context) *dto.HealthResponse
}

type healthService struct {
	cache  domain.Cache
	loader domain.DocumentLoader
}

// NewHealthService creates a HealthService. cache may be nil when no shared cache is used.
func NewHealthService(cache domain.Cache, loader domain.DocumentLoader) HealthService {
	return &healthService{cache: cache, loader: loader}
}

// Check pings the cache and fetches the document concurrently.
// The source being down makes the service down; the cache only degrades it.
func (s *healthService) Check(ctx context.Context) *dto.HealthResponse {
	resp := &dto.HealthResponse{Status: StatusOK, Cache: StatusDisabled, Document: StatusOK}

	var cacheErr, docErr error
	g, gctx := errgroup.WithContext(ctx)
	if s.cache != nil {
		g.Go(func() error {
			cacheErr = s.cache.Ping(gctx)
			return nil
		})
	}
	g.Go(func() error {
		_, docErr = s.loader.LoadDocument(gctx)
		return nil
	})
	_ = g.Wait()

	if s.cache != nil {
		resp.Cache = StatusOK
		if cacheErr != nil {
			logger.Get().Warn("Health check: cache unreachable", zap.Error(cacheErr))
			resp.Cache = StatusDown
			resp.Status = StatusDegraded
		}
	}
	if docErr != nil {
		logger.Get().Error("Health check: document unavailable", zap.String("source", s.loader.SourceID()), zap.Error(docErr))
		resp.Document = StatusDown
		resp.Status = StatusDown
	}
	return resp
}
