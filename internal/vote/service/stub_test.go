package service

import (
	"context"
	"sync/atomic"

	"papertrail/internal/vote/models"
)

type stubStore struct {
	countErr error
	listErr  error
	calls    atomic.Int32
}

func (s *stubStore) Count(context.Context, models.Filter) (int, error) {
	s.calls.Add(1)
	return 0, s.countErr
}

func (s *stubStore) List(context.Context, models.Filter, models.SortOrder, int, int) ([]models.Record, error) {
	s.calls.Add(1)
	return nil, s.listErr
}
