package bill

import (
	"context"
	"sort"

	"papertrail/internal/storage"
)

// InMemoryStore serves bill data from a storage.Dataset.
type InMemoryStore struct {
	data *storage.Dataset
}

func NewInMemory(data *storage.Dataset) *InMemoryStore {
	return &InMemoryStore{data: data}
}

func (s *InMemoryStore) DistinctSubjects(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	s.data.Read(func(t storage.Tables) {
		for _, b := range t.Bills {
			for _, subject := range b.Subjects {
				seen[subject] = struct{}{}
			}
		}
	})
	out := make([]string, 0, len(seen))
	for subject := range seen {
		out = append(out, subject)
	}
	sort.Strings(out)
	return out, nil
}
