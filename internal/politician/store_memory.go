package politician

import (
	"context"
	"sort"
	"strings"

	"papertrail/internal/storage"
	id "papertrail/pkg/domain"
	"papertrail/pkg/platform/sentinel"
)

// InMemoryStore serves politicians from a storage.Dataset.
type InMemoryStore struct {
	data *storage.Dataset
}

func NewInMemory(data *storage.Dataset) *InMemoryStore {
	return &InMemoryStore{data: data}
}

func (s *InMemoryStore) SearchByName(ctx context.Context, fragment string) ([]Politician, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	needle := strings.ToLower(fragment)
	out := []Politician{}
	s.data.Read(func(t storage.Tables) {
		for _, r := range t.Politicians {
			if strings.Contains(strings.ToLower(r.FirstName+" "+r.LastName), needle) {
				out = append(out, fromRow(r))
			}
		}
	})
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.IsActive != b.IsActive {
			return a.IsActive
		}
		if a.LastName != b.LastName {
			return a.LastName < b.LastName
		}
		return a.FirstName < b.FirstName
	})
	return out, nil
}

func (s *InMemoryStore) FindByID(ctx context.Context, politicianID id.PoliticianID) (*Politician, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var found *Politician
	s.data.Read(func(t storage.Tables) {
		if r, ok := t.PoliticiansByID()[politicianID]; ok {
			p := fromRow(r)
			found = &p
		}
	})
	if found == nil {
		return nil, sentinel.ErrNotFound
	}
	return found, nil
}

func fromRow(r storage.PoliticianRow) Politician {
	return Politician{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Party:     r.Party,
		State:     r.State,
		Role:      r.Role,
		IsActive:  r.IsActive,
	}
}
