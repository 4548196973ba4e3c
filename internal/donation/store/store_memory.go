package store

import (
	"context"
	"slices"
	"sort"

	"papertrail/internal/donation/models"
	"papertrail/internal/storage"
	id "papertrail/pkg/domain"
)

// InMemoryStore answers donation queries from a storage.Dataset with the same ordering
// and null handling as PostgresStore.
type InMemoryStore struct {
	data *storage.Dataset
}

func NewInMemory(data *storage.Dataset) *InMemoryStore {
	return &InMemoryStore{data: data}
}

func (s *InMemoryStore) SumByIndustry(ctx context.Context, filter models.SummaryFilter) ([]models.IndustryTotal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sums := map[string]float64{}
	s.data.Read(func(t storage.Tables) {
		donors := t.DonorsByID()
		for _, d := range t.Donations {
			if d.PoliticianID != filter.PoliticianID {
				continue
			}
			donor, ok := donors[d.DonorID]
			if !ok || donor.Industry == nil {
				continue
			}
			if filter.Industries != nil && !slices.Contains(filter.Industries, *donor.Industry) {
				continue
			}
			sums[*donor.Industry] += d.Amount
		}
	})

	totals := make([]models.IndustryTotal, 0, len(sums))
	for industry, amount := range sums {
		totals = append(totals, models.IndustryTotal{Industry: industry, TotalAmount: amount})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].TotalAmount != totals[j].TotalAmount {
			return totals[i].TotalAmount > totals[j].TotalAmount
		}
		return totals[i].Industry < totals[j].Industry
	})
	return totals, nil
}

func (s *InMemoryStore) ListByDonor(ctx context.Context, donorID id.DonorID) ([]models.Contribution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := []models.Contribution{}
	s.data.Read(func(t storage.Tables) {
		politicians := t.PoliticiansByID()
		for _, d := range t.Donations {
			if d.DonorID != donorID {
				continue
			}
			p, ok := politicians[d.PoliticianID]
			if !ok {
				continue
			}
			out = append(out, models.Contribution{
				Amount:    d.Amount,
				Date:      id.NewDate(d.Date),
				FirstName: p.FirstName,
				LastName:  p.LastName,
				Party:     p.Party,
				State:     p.State,
			})
		}
	})
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date.Time) {
			return out[i].Date.After(out[j].Date.Time)
		}
		return out[i].Amount > out[j].Amount
	})
	return out, nil
}
