package service

import (
	"context"
	"errors"
	"time"

	"papertrail/internal/donation/metrics"
	"papertrail/internal/donation/models"
	"papertrail/internal/donation/taxonomy"
	id "papertrail/pkg/domain"
	dErrors "papertrail/pkg/domain-errors"
)

// Store is the persistence port for donation aggregates.
type Store interface {
	SumByIndustry(ctx context.Context, filter models.SummaryFilter) ([]models.IndustryTotal, error)
	ListByDonor(ctx context.Context, donorID id.DonorID) ([]models.Contribution, error)
}

// Service aggregates donations per industry and lists donor contributions.
type Service struct {
	store   Store
	metrics *metrics.Metrics
}

// Option configures a Service.
type Option func(*Service)

// WithMetrics sets the module metrics. A nil value disables them.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs a donation service.
func New(store Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("donation store is required")
	}
	s := &Service{store: store}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Summary totals every donation received by the politician, grouped by donor industry.
// Donations from donors with no industry are left out. An unknown politician yields an
// empty summary.
func (s *Service) Summary(ctx context.Context, politicianID id.PoliticianID) ([]models.IndustryTotal, error) {
	start := time.Now()
	totals, err := s.store.SumByIndustry(ctx, models.SummaryFilter{PoliticianID: politicianID})
	s.metrics.ObserveSummaryLatency("all", time.Since(start))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load donation summary")
	}
	return nonNil(totals), nil
}

// FilteredSummary is Summary restricted to the industries of a policy topic.
// An unknown topic yields an empty summary without consulting the store.
func (s *Service) FilteredSummary(ctx context.Context, politicianID id.PoliticianID, topic string) ([]models.IndustryTotal, error) {
	if topic == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "topic parameter is required")
	}
	industries, ok := taxonomy.Industries(topic)
	if !ok {
		s.metrics.IncrementTopicLookup(metrics.UnknownTopic)
		return []models.IndustryTotal{}, nil
	}
	s.metrics.IncrementTopicLookup(topic)

	start := time.Now()
	totals, err := s.store.SumByIndustry(ctx, models.SummaryFilter{
		PoliticianID: politicianID,
		Industries:   industries,
	})
	s.metrics.ObserveSummaryLatency("topic", time.Since(start))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load filtered donation summary")
	}
	return nonNil(totals), nil
}

// Contributions lists a donor's donations, newest first.
func (s *Service) Contributions(ctx context.Context, donorID id.DonorID) ([]models.Contribution, error) {
	out, err := s.store.ListByDonor(ctx, donorID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load donor donations")
	}
	if out == nil {
		out = []models.Contribution{}
	}
	return out, nil
}

func nonNil(totals []models.IndustryTotal) []models.IndustryTotal {
	if totals == nil {
		return []models.IndustryTotal{}
	}
	return totals
}
