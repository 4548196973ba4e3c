package politician

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	id "papertrail/pkg/domain"
	dErrors "papertrail/pkg/domain-errors"
	"papertrail/pkg/platform/sentinel"
)

// Store is the persistence port for politician profiles.
type Store interface {
	SearchByName(ctx context.Context, fragment string) ([]Politician, error)
	FindByID(ctx context.Context, politicianID id.PoliticianID) (*Politician, error)
}

// Service looks up politician profiles.
type Service struct {
	store Store
}

func NewService(store Store) (*Service, error) {
	if store == nil {
		return nil, errors.New("politician store is required")
	}
	return &Service{store: store}, nil
}

// Search matches name against "FirstName LastName" case-insensitively. Fragments shorter
// than MinSearchLength return an empty list without querying.
func (s *Service) Search(ctx context.Context, name string) ([]Politician, error) {
	if utf8.RuneCountInString(name) < MinSearchLength {
		return []Politician{}, nil
	}
	if !utf8.ValidString(name) || strings.ContainsRune(name, 0) {
		return nil, dErrors.New(dErrors.CodeBadRequest, "invalid name parameter")
	}
	out, err := s.store.SearchByName(ctx, name)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to search politicians")
	}
	if out == nil {
		out = []Politician{}
	}
	return out, nil
}

// Get returns a single politician or a not_found error.
func (s *Service) Get(ctx context.Context, politicianID id.PoliticianID) (*Politician, error) {
	p, err := s.store.FindByID(ctx, politicianID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "politician not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load politician")
	}
	return p, nil
}
