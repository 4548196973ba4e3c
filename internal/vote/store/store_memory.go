package store

import (
	"context"
	"slices"
	"sort"
	"strings"

	"papertrail/internal/storage"
	"papertrail/internal/vote/models"
	id "papertrail/pkg/domain"
)

// InMemoryStore answers vote queries from a storage.Dataset, filtering and ordering the
// same way PostgresStore does.
type InMemoryStore struct {
	data *storage.Dataset
}

func NewInMemory(data *storage.Dataset) *InMemoryStore {
	return &InMemoryStore{data: data}
}

func (s *InMemoryStore) Count(ctx context.Context, filter models.Filter) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return len(s.matching(filter)), nil
}

func (s *InMemoryStore) List(ctx context.Context, filter models.Filter, order models.SortOrder, limit, offset int) ([]models.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records := s.matching(filter)
	sort.SliceStable(records, func(i, j int) bool {
		return less(records[i], records[j], order)
	})

	if offset >= len(records) {
		return []models.Record{}, nil
	}
	end := min(offset+limit, len(records))
	return records[offset:end], nil
}

func (s *InMemoryStore) matching(filter models.Filter) []models.Record {
	var out []models.Record
	s.data.Read(func(t storage.Tables) {
		bills := t.BillsByID()
		for _, v := range t.Votes {
			if v.PoliticianID != filter.PoliticianID {
				continue
			}
			b, ok := bills[v.BillID]
			if !ok || !matchesType(b.Number, filter.BillTypes) || !overlaps(b.Subjects, filter.Subjects) {
				continue
			}
			out = append(out, toRecord(v, b))
		}
	})
	return out
}

func matchesType(number string, types []string) bool {
	if len(types) == 0 {
		return true
	}
	lower := strings.ToLower(number)
	for _, t := range types {
		if strings.HasPrefix(lower, strings.ToLower(t)) {
			return true
		}
	}
	return false
}

func overlaps(subjects, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, w := range wanted {
		if slices.Contains(subjects, w) {
			return true
		}
	}
	return false
}

// less orders by introduction date with undated bills last, then by vote id.
func less(a, b models.Record, order models.SortOrder) bool {
	switch {
	case a.DateIntroduced == nil && b.DateIntroduced == nil:
	case a.DateIntroduced == nil:
		return false
	case b.DateIntroduced == nil:
		return true
	case !a.DateIntroduced.Equal(b.DateIntroduced.Time):
		if order == models.SortAsc {
			return a.DateIntroduced.Before(b.DateIntroduced.Time)
		}
		return a.DateIntroduced.After(b.DateIntroduced.Time)
	}
	if order == models.SortAsc {
		return a.VoteID < b.VoteID
	}
	return a.VoteID > b.VoteID
}

func toRecord(v storage.VoteRow, b storage.BillRow) models.Record {
	r := models.Record{
		VoteID:     v.ID,
		Vote:       models.Value(v.Vote),
		BillNumber: b.Number,
		Title:      b.Title,
		Subjects:   append([]string{}, b.Subjects...),
	}
	if b.DateIntroduced != nil {
		d := id.NewDate(*b.DateIntroduced)
		r.DateIntroduced = &d
	}
	return r
}
