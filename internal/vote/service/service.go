package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"papertrail/internal/vote/metrics"
	"papertrail/internal/vote/models"
	dErrors "papertrail/pkg/domain-errors"
	"papertrail/pkg/platform/strings"
)

// Store is the persistence port for voting records.
type Store interface {
	Count(ctx context.Context, filter models.Filter) (int, error)
	List(ctx context.Context, filter models.Filter, order models.SortOrder, limit, offset int) ([]models.Record, error)
}

// Service pages through a politician's voting record.
type Service struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for query diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMetrics sets the module metrics. A nil value disables them.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs a vote history service.
func New(store Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("vote store is required")
	}
	s := &Service{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// History returns one page of votes together with totals over the whole filtered set.
// A page past the end yields no votes but still reports the true totals.
func (s *Service) History(ctx context.Context, q models.HistoryQuery) (*models.HistoryPage, error) {
	if q.Page < 1 || q.Page > models.MaxPage {
		return nil, dErrors.New(dErrors.CodeBadRequest, "page must be between 1 and 2147483647")
	}
	if q.Sort != models.SortAsc {
		q.Sort = models.SortDesc
	}
	if err := q.Filter.Validate(); err != nil {
		return nil, err
	}
	q.Filter.BillTypes = strings.DedupeFold(q.Filter.BillTypes)
	q.Filter.Subjects = strings.Dedupe(q.Filter.Subjects)
	if len(q.Filter.BillTypes) > 0 {
		s.metrics.IncrementFilterUsage("type")
	}
	if len(q.Filter.Subjects) > 0 {
		s.metrics.IncrementFilterUsage("subject")
	}
	start := time.Now()

	var (
		total   int
		records []models.Record
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.store.Count(gctx, q.Filter)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.store.List(gctx, q.Filter, q.Sort, models.PageSize, q.Offset())
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load vote history")
	}

	s.metrics.ObserveHistoryLatency(time.Since(start))

	totalPages := models.TotalPages(total)
	if q.Page > totalPages && total > 0 {
		s.metrics.IncrementPagePastEnd()
	}
	if records == nil {
		records = []models.Record{}
	}
	s.logger.DebugContext(ctx, "vote history loaded",
		"politician_id", q.Filter.PoliticianID.String(),
		"page", q.Page,
		"total_votes", total,
		"returned", len(records),
	)
	return &models.HistoryPage{
		Pagination: models.Pagination{
			CurrentPage: q.Page,
			TotalPages:  totalPages,
			TotalVotes:  total,
		},
		Votes: records,
	}, nil
}
