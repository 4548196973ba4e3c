// Package bill exposes catalog data about legislation.
package bill

import (
	"context"
	"errors"

	dErrors "papertrail/pkg/domain-errors"
)

// Store is the persistence port for bills.
type Store interface {
	DistinctSubjects(ctx context.Context) ([]string, error)
}

// Service answers bill catalog queries.
type Service struct {
	store Store
}

func NewService(store Store) (*Service, error) {
	if store == nil {
		return nil, errors.New("bill store is required")
	}
	return &Service{store: store}, nil
}

// Subjects lists every distinct subject tagged on any bill, sorted ascending.
func (s *Service) Subjects(ctx context.Context) ([]string, error) {
	subjects, err := s.store.DistinctSubjects(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load bill subjects")
	}
	if subjects == nil {
		subjects = []string{}
	}
	return subjects, nil
}
