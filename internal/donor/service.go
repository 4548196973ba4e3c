package donor

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	id "papertrail/pkg/domain"
	dErrors "papertrail/pkg/domain-errors"
	"papertrail/pkg/platform/sentinel"
)

// Store is the persistence port for donors.
type Store interface {
	SearchByName(ctx context.Context, fragment string) ([]Donor, error)
	FindByID(ctx context.Context, donorID id.DonorID) (*Donor, error)
}

// Service looks up donors.
type Service struct {
	store Store
}

func NewService(store Store) (*Service, error) {
	if store == nil {
		return nil, errors.New("donor store is required")
	}
	return &Service{store: store}, nil
}

// Search matches donor names containing name, ignoring case.
func (s *Service) Search(ctx context.Context, name string) ([]Donor, error) {
	if utf8.RuneCountInString(name) < MinSearchLength {
		return []Donor{}, nil
	}
	if !utf8.ValidString(name) || strings.ContainsRune(name, 0) {
		return nil, dErrors.New(dErrors.CodeBadRequest, "invalid name parameter")
	}
	out, err := s.store.SearchByName(ctx, name)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to search donors")
	}
	if out == nil {
		out = []Donor{}
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, donorID id.DonorID) (*Donor, error) {
	d, err := s.store.FindByID(ctx, donorID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "donor not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load donor")
	}
	return d, nil
}
