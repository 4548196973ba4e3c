package donor

import (
	"context"
	"sort"
	"strings"

	"papertrail/internal/storage"
	id "papertrail/pkg/domain"
	"papertrail/pkg/platform/sentinel"
)

// InMemoryStore serves donors from a storage.Dataset.
type InMemoryStore struct {
	data *storage.Dataset
}

func NewInMemory(data *storage.Dataset) *InMemoryStore {
	return &InMemoryStore{data: data}
}

func (s *InMemoryStore) SearchByName(ctx context.Context, fragment string) ([]Donor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	needle := strings.ToLower(fragment)
	out := []Donor{}
	s.data.Read(func(t storage.Tables) {
		for _, r := range t.Donors {
			if strings.Contains(strings.ToLower(r.Name), needle) {
				out = append(out, fromRow(r))
			}
		}
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *InMemoryStore) FindByID(ctx context.Context, donorID id.DonorID) (*Donor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var found *Donor
	s.data.Read(func(t storage.Tables) {
		if r, ok := t.DonorsByID()[donorID]; ok {
			d := fromRow(r)
			found = &d
		}
	})
	if found == nil {
		return nil, sentinel.ErrNotFound
	}
	return found, nil
}

func fromRow(r storage.DonorRow) Donor {
	return Donor{
		ID:        r.ID,
		Name:      r.Name,
		DonorType: r.DonorType,
		Employer:  r.Employer,
		State:     r.State,
	}
}
