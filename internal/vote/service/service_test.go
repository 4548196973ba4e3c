package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"papertrail/internal/storage"
	"papertrail/internal/vote/models"
	"papertrail/internal/vote/store"
	id "papertrail/pkg/domain"
	dErrors "papertrail/pkg/domain-errors"
	"papertrail/pkg/testutil"
)

// =============================================================================
// Vote History Service Test Suite
// =============================================================================

type VoteServiceSuite struct {
	suite.Suite
	data    *storage.Dataset
	service *Service
	member  storage.PoliticianRow
}

func TestVoteServiceSuite(t *testing.T) {
	suite.Run(t, new(VoteServiceSuite))
}

func (s *VoteServiceSuite) SetupTest() {
	s.data = storage.NewDataset()
	s.member = s.data.AddPolitician(storage.PoliticianRow{FirstName: "Jane", LastName: "Doe", Party: "D", Chamber: "House", State: "CA", IsActive: true})

	var err error
	s.service, err = New(store.NewInMemory(s.data))
	s.Require().NoError(err)
}

// seedVotes records one vote per bill; bill i is introduced i days after 2020-01-01.
func (s *VoteServiceSuite) seedVotes(n int, number func(i int) string, subjects func(i int) []string) {
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		introduced := base.AddDate(0, 0, i)
		b := s.data.AddBill(storage.BillRow{
			Number:         number(i),
			Title:          fmt.Sprintf("Bill %d", i),
			DateIntroduced: &introduced,
			Congress:       118,
			Subjects:       subjects(i),
		})
		s.data.AddVote(storage.VoteRow{PoliticianID: s.member.ID, BillID: b.ID, Vote: string(models.ValueYea)})
	}
}

func houseBill(i int) string { return fmt.Sprintf("H.R.%d", i+1) }

func noSubjects(int) []string { return nil }

func (s *VoteServiceSuite) history(page int, order models.SortOrder, types, subjects []string) (*models.HistoryPage, error) {
	return s.service.History(context.Background(), models.HistoryQuery{
		Filter: models.Filter{PoliticianID: s.member.ID, BillTypes: types, Subjects: subjects},
		Page:   page,
		Sort:   order,
	})
}

// =============================================================================
// Constructor Tests
// =============================================================================

func (s *VoteServiceSuite) TestNew() {
	_, err := New(nil)
	s.Error(err)
	s.Contains(err.Error(), "vote store is required")
}

// =============================================================================
// Pagination Tests
// =============================================================================

func (s *VoteServiceSuite) TestPagination() {
	testutil.Given(s.T(), "a politician with 25 votes", func(t *testing.T) {
		s.seedVotes(25, houseBill, noSubjects)

		testutil.When(t, "page 1 is requested", func(t *testing.T) {
			got, err := s.history(1, models.SortDesc, nil, nil)
			require.NoError(t, err)

			testutil.Then(t, "ten votes and three pages are reported", func(t *testing.T) {
				assert.Equal(t, models.Pagination{CurrentPage: 1, TotalPages: 3, TotalVotes: 25}, got.Pagination)
				assert.Len(t, got.Votes, 10)
			})
		})

		testutil.When(t, "the last page is requested", func(t *testing.T) {
			got, err := s.history(3, models.SortDesc, nil, nil)
			require.NoError(t, err)

			testutil.Then(t, "the remainder is returned", func(t *testing.T) {
				assert.Len(t, got.Votes, 5)
			})
		})

		testutil.When(t, "a page past the end is requested", func(t *testing.T) {
			got, err := s.history(4, models.SortDesc, nil, nil)
			require.NoError(t, err)

			testutil.Then(t, "votes are empty but totals are true", func(t *testing.T) {
				assert.NotNil(t, got.Votes)
				assert.Empty(t, got.Votes)
				assert.Equal(t, models.Pagination{CurrentPage: 4, TotalPages: 3, TotalVotes: 25}, got.Pagination)
			})
		})
	})
}

func (s *VoteServiceSuite) TestPagesPartitionTheResult() {
	s.seedVotes(23, houseBill, noSubjects)

	seen := map[id.VoteID]bool{}
	for page := 1; page <= 3; page++ {
		got, err := s.history(page, models.SortAsc, nil, nil)
		s.Require().NoError(err)
		for _, v := range got.Votes {
			s.False(seen[v.VoteID], "vote %d returned twice", v.VoteID)
			seen[v.VoteID] = true
		}
	}
	s.Len(seen, 23)
}

func (s *VoteServiceSuite) TestUnknownPoliticianHasZeroTotals() {
	s.seedVotes(3, houseBill, noSubjects)

	got, err := s.service.History(context.Background(), models.HistoryQuery{
		Filter: models.Filter{PoliticianID: 9999},
		Page:   1,
		Sort:   models.SortDesc,
	})
	s.Require().NoError(err)
	s.Equal(models.Pagination{CurrentPage: 1, TotalPages: 0, TotalVotes: 0}, got.Pagination)
	s.Empty(got.Votes)
}

func (s *VoteServiceSuite) TestInvalidPage() {
	for _, page := range []int{0, -1} {
		_, err := s.history(page, models.SortDesc, nil, nil)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest), "page=%d", page)
	}
}

// =============================================================================
// Sort Tests
// =============================================================================

func (s *VoteServiceSuite) TestSortOrder() {
	s.seedVotes(12, houseBill, noSubjects)

	asc, err := s.history(1, models.SortAsc, nil, nil)
	s.Require().NoError(err)
	s.True(sort.SliceIsSorted(asc.Votes, func(i, j int) bool {
		return asc.Votes[i].DateIntroduced.Before(asc.Votes[j].DateIntroduced.Time)
	}))
	s.Equal("2020-01-01", asc.Votes[0].DateIntroduced.String())

	desc, err := s.history(1, models.SortDesc, nil, nil)
	s.Require().NoError(err)
	s.Equal("2020-01-12", desc.Votes[0].DateIntroduced.String())

	s.Run("unrecognized order falls back to descending", func() {
		got, err := s.history(1, models.SortOrder("sideways"), nil, nil)
		s.Require().NoError(err)
		s.Equal(desc.Votes, got.Votes)
	})
}

func (s *VoteServiceSuite) TestUndatedBillsSortLast() {
	s.seedVotes(2, houseBill, noSubjects)
	b := s.data.AddBill(storage.BillRow{Number: "S.1", Title: "Undated"})
	s.data.AddVote(storage.VoteRow{PoliticianID: s.member.ID, BillID: b.ID, Vote: string(models.ValueNay)})

	for _, order := range []models.SortOrder{models.SortAsc, models.SortDesc} {
		got, err := s.history(1, order, nil, nil)
		s.Require().NoError(err)
		s.Require().Len(got.Votes, 3)
		s.Nil(got.Votes[2].DateIntroduced, string(order))
		s.NotNil(got.Votes[2].Subjects)
	}
}

// =============================================================================
// Filter Tests
// =============================================================================

func (s *VoteServiceSuite) TestBillTypeFilter() {
	s.seedVotes(6, func(i int) string {
		if i%2 == 0 {
			return fmt.Sprintf("H.R.%d", i)
		}
		return fmt.Sprintf("S.%d", i)
	}, noSubjects)

	s.Run("prefix match is case-insensitive", func() {
		got, err := s.history(1, models.SortDesc, []string{"h.r."}, nil)
		s.Require().NoError(err)
		s.Equal(3, got.Pagination.TotalVotes)
		for _, v := range got.Votes {
			s.Contains(v.BillNumber, "H.R.")
		}
	})

	s.Run("multiple types are ORed", func() {
		got, err := s.history(1, models.SortDesc, []string{"H.R.", "S."}, nil)
		s.Require().NoError(err)
		s.Equal(6, got.Pagination.TotalVotes)
	})

	s.Run("duplicate types do not change the result", func() {
		got, err := s.history(1, models.SortDesc, []string{"S.", "s.", "S."}, nil)
		s.Require().NoError(err)
		s.Equal(3, got.Pagination.TotalVotes)
	})

	s.Run("no match", func() {
		got, err := s.history(1, models.SortDesc, []string{"H.J.Res."}, nil)
		s.Require().NoError(err)
		s.Equal(models.Pagination{CurrentPage: 1, TotalPages: 0, TotalVotes: 0}, got.Pagination)
	})
}

func (s *VoteServiceSuite) TestSubjectFilter() {
	s.seedVotes(4, houseBill, func(i int) []string {
		switch i {
		case 0:
			return []string{"Health", "Taxation"}
		case 1:
			return []string{"Taxation"}
		case 2:
			return []string{"Education"}
		default:
			return nil
		}
	})

	s.Run("any overlap matches", func() {
		got, err := s.history(1, models.SortAsc, nil, []string{"Health", "Education"})
		s.Require().NoError(err)
		s.Equal(2, got.Pagination.TotalVotes)
		s.Equal([]string{"Health", "Taxation"}, got.Votes[0].Subjects)
	})

	s.Run("subject match is exact", func() {
		got, err := s.history(1, models.SortAsc, nil, []string{"health"})
		s.Require().NoError(err)
		s.Zero(got.Pagination.TotalVotes)
	})

	s.Run("type and subject combine with AND", func() {
		got, err := s.history(1, models.SortAsc, []string{"S."}, []string{"Taxation"})
		s.Require().NoError(err)
		s.Zero(got.Pagination.TotalVotes)
	})
}

func (s *VoteServiceSuite) TestFilterValuesWithNULAreRejected() {
	st := &stubStore{}
	svc, err := New(st)
	s.Require().NoError(err)

	_, err = svc.History(context.Background(), models.HistoryQuery{
		Filter: models.Filter{PoliticianID: 1, Subjects: []string{"a\x00b"}},
		Page:   1,
	})
	s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	s.Zero(st.calls.Load())
}

// =============================================================================
// Store Failure Tests
// =============================================================================

func (s *VoteServiceSuite) TestStoreFailure() {
	s.Run("count failure", func() {
		svc, err := New(&stubStore{countErr: errors.New("timeout")})
		s.Require().NoError(err)
		got, err := svc.History(context.Background(), models.HistoryQuery{Filter: models.Filter{PoliticianID: 1}, Page: 1})
		s.Nil(got)
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})

	s.Run("list failure", func() {
		svc, err := New(&stubStore{listErr: errors.New("timeout")})
		s.Require().NoError(err)
		got, err := svc.History(context.Background(), models.HistoryQuery{Filter: models.Filter{PoliticianID: 1}, Page: 1})
		s.Nil(got)
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})
}
