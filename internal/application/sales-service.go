package application

import (
	"context"
	"time"

	"github.com/RaikyD/vila-sales-api/internal/domain"
	"github.com/RaikyD/vila-sales-api/internal/logger"
	"github.com/RaikyD/vila-sales-api/internal/repository"
)

// Auditor receives one event per successfully served query.
type Auditor interface {
	PublishQuery(ctx context.Context, ev domain.QueryEvent) error
}

type SalesService struct {
	repo    repository.SalesRepo
	auditor Auditor
	now     func() time.Time
}

// NewSalesService builds the query service. auditor may be nil.
func NewSalesService(r repository.SalesRepo, auditor Auditor) *SalesService {
	return &SalesService{
		repo:    r,
		auditor: auditor,
		now:     time.Now,
	}
}

func (s *SalesService) Since(ctx context.Context, q domain.SinceQuery, requestID string) ([]domain.SalesRecord, error) {
	rows, err := s.repo.Since(ctx, q)
	if err != nil {
		return nil, err
	}
	s.audit(ctx, domain.NewSinceEvent(q, len(rows), requestID, s.now()))
	return rows, nil
}

func (s *SalesService) Range(ctx context.Context, q domain.RangeQuery, requestID string) ([]domain.SalesRecord, error) {
	rows, err := s.repo.Range(ctx, q)
	if err != nil {
		return nil, err
	}
	s.audit(ctx, domain.NewRangeEvent(q, len(rows), requestID, s.now()))
	return rows, nil
}

// audit failures are logged only; the caller still gets its rows.
func (s *SalesService) audit(ctx context.Context, ev domain.QueryEvent) {
	if s.auditor == nil {
		return
	}
	if err := s.auditor.PublishQuery(ctx, ev); err != nil {
		logger.Warn("query audit publish failed", "endpoint", ev.Endpoint, "err", err)
	}
}
