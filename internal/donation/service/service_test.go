package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"papertrail/internal/donation/models"
	"papertrail/internal/donation/store"
	"papertrail/internal/donation/taxonomy"
	"papertrail/internal/storage"
	id "papertrail/pkg/domain"
	dErrors "papertrail/pkg/domain-errors"
	"papertrail/pkg/testutil"
)

// =============================================================================
// Donation Service Test Suite
// =============================================================================
// Uses the in-memory store as a real collaborator; a stub store covers failure paths.

type DonationServiceSuite struct {
	suite.Suite
	data    *storage.Dataset
	service *Service
	senator storage.PoliticianRow
	rep     storage.PoliticianRow
}

func TestDonationServiceSuite(t *testing.T) {
	suite.Run(t, new(DonationServiceSuite))
}

func (s *DonationServiceSuite) SetupTest() {
	s.data = storage.NewDataset()
	s.senator = s.data.AddPolitician(storage.PoliticianRow{FirstName: "Jane", LastName: "Doe", Party: "D", Chamber: "Senate", State: "CA", IsActive: true})
	s.rep = s.data.AddPolitician(storage.PoliticianRow{FirstName: "John", LastName: "Roe", Party: "R", Chamber: "House", State: "TX", IsActive: true})

	var err error
	s.service, err = New(store.NewInMemory(s.data))
	s.Require().NoError(err)
}

func (s *DonationServiceSuite) donor(name string, industry *string) storage.DonorRow {
	return s.data.AddDonor(storage.DonorRow{Name: name, DonorType: "PAC", Industry: industry})
}

func (s *DonationServiceSuite) donate(d storage.DonorRow, p storage.PoliticianRow, amount float64, day string) {
	date, err := time.Parse(id.DateLayout, day)
	s.Require().NoError(err)
	s.data.AddDonation(storage.DonationRow{DonorID: d.ID, PoliticianID: p.ID, Amount: amount, Date: date, ContributionType: "Direct"})
}

// =============================================================================
// Constructor Tests
// =============================================================================

func (s *DonationServiceSuite) TestNew() {
	s.Run("nil store returns error", func() {
		_, err := New(nil)
		s.Error(err)
		s.Contains(err.Error(), "donation store is required")
	})
}

// =============================================================================
// Summary Tests
// =============================================================================

func (s *DonationServiceSuite) TestSummary() {
	ctx := context.Background()

	testutil.Given(s.T(), "donations from two industries and one donor without an industry", func(t *testing.T) {
		tech := s.donor("Acme Telecom PAC", storage.Ptr("Telecom Services"))
		pharma := s.donor("Pill Co", storage.Ptr("Pharmaceuticals"))
		unknown := s.donor("Anonymous", nil)
		s.donate(tech, s.senator, 100, "2024-01-10")
		s.donate(tech, s.senator, 200, "2024-02-10")
		s.donate(pharma, s.senator, 250, "2024-03-01")
		s.donate(unknown, s.senator, 50, "2024-03-02")
		s.donate(pharma, s.rep, 9999, "2024-03-03")

		testutil.When(t, "the summary is requested", func(t *testing.T) {
			got, err := s.service.Summary(ctx, s.senator.ID)
			require.NoError(t, err)

			testutil.Then(t, "industries are summed, sorted by total, and null industries dropped", func(t *testing.T) {
				assert.Equal(t, []models.IndustryTotal{
					{Industry: "Telecom Services", TotalAmount: 300},
					{Industry: "Pharmaceuticals", TotalAmount: 250},
				}, got)
			})
		})
	})
}

func (s *DonationServiceSuite) TestSummaryTieBreaksOnIndustryName() {
	b := s.donor("B", storage.Ptr("Internet"))
	a := s.donor("A", storage.Ptr("Electronics"))
	s.donate(b, s.senator, 100, "2024-01-01")
	s.donate(a, s.senator, 100, "2024-01-01")

	got, err := s.service.Summary(context.Background(), s.senator.ID)
	s.Require().NoError(err)
	s.Equal([]models.IndustryTotal{
		{Industry: "Electronics", TotalAmount: 100},
		{Industry: "Internet", TotalAmount: 100},
	}, got)
}

func (s *DonationServiceSuite) TestSummaryUnknownPoliticianIsEmpty() {
	got, err := s.service.Summary(context.Background(), id.PoliticianID(424242))
	s.Require().NoError(err)
	s.NotNil(got)
	s.Empty(got)
}

func (s *DonationServiceSuite) TestSummaryConservesTotals() {
	industries := []string{"Oil & Gas", "Insurance", "Education"}
	var want float64
	for i, industry := range industries {
		d := s.donor(industry+" donor", storage.Ptr(industry))
		for j := 1; j <= 4; j++ {
			amount := float64((i+1)*j) * 12.5
			s.donate(d, s.senator, amount, "2023-06-01")
			want += amount
		}
	}

	got, err := s.service.Summary(context.Background(), s.senator.ID)
	s.Require().NoError(err)
	var sum float64
	for i, row := range got {
		sum += row.TotalAmount
		if i > 0 {
			s.GreaterOrEqual(got[i-1].TotalAmount, row.TotalAmount)
		}
	}
	s.InDelta(want, sum, 1e-9)
}

// =============================================================================
// FilteredSummary Tests
// =============================================================================

func (s *DonationServiceSuite) TestFilteredSummary() {
	ctx := context.Background()
	tech := s.donor("Acme Telecom PAC", storage.Ptr("Telecom Services"))
	web := s.donor("Web Co", storage.Ptr("Internet"))
	pharma := s.donor("Pill Co", storage.Ptr("Pharmaceuticals"))
	s.donate(tech, s.senator, 100, "2024-01-10")
	s.donate(web, s.senator, 400, "2024-01-11")
	s.donate(pharma, s.senator, 250, "2024-03-01")

	s.Run("known topic restricts to its industries", func() {
		got, err := s.service.FilteredSummary(ctx, s.senator.ID, "Technology")
		s.Require().NoError(err)
		s.Equal([]models.IndustryTotal{
			{Industry: "Internet", TotalAmount: 400},
			{Industry: "Telecom Services", TotalAmount: 100},
		}, got)

		allowed, _ := taxonomy.Industries("Technology")
		for _, row := range got {
			s.Contains(allowed, row.Industry)
		}
	})

	s.Run("topic with no matching donations is empty", func() {
		got, err := s.service.FilteredSummary(ctx, s.senator.ID, "Defense")
		s.Require().NoError(err)
		s.Empty(got)
	})

	s.Run("unknown topic is empty", func() {
		got, err := s.service.FilteredSummary(ctx, s.senator.ID, "NotATopic")
		s.Require().NoError(err)
		s.NotNil(got)
		s.Empty(got)
	})

	s.Run("topic lookup is case-sensitive", func() {
		got, err := s.service.FilteredSummary(ctx, s.senator.ID, "technology")
		s.Require().NoError(err)
		s.Empty(got)
	})

	s.Run("empty topic is a bad request", func() {
		_, err := s.service.FilteredSummary(ctx, s.senator.ID, "")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}

func (s *DonationServiceSuite) TestUnknownTopicSkipsStore() {
	st := &stubStore{err: errors.New("should not be called")}
	svc, err := New(st)
	s.Require().NoError(err)

	got, err := svc.FilteredSummary(context.Background(), s.senator.ID, "Gardening")
	s.Require().NoError(err)
	s.Empty(got)
	s.Zero(st.calls)
}

// =============================================================================
// Contributions Tests
// =============================================================================

func (s *DonationServiceSuite) TestContributions() {
	d := s.donor("Big Donor", storage.Ptr("Finance"))
	s.donate(d, s.senator, 100, "2024-01-01")
	s.donate(d, s.rep, 300, "2024-05-01")
	s.donate(d, s.senator, 500, "2024-05-01")

	got, err := s.service.Contributions(context.Background(), d.ID)
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	s.Equal(500.0, got[0].Amount)
	s.Equal("Doe", got[0].LastName)
	s.Equal(300.0, got[1].Amount)
	s.Equal("Roe", got[1].LastName)
	s.Equal("2024-01-01", got[2].Date.String())

	s.Run("donor without donations", func() {
		got, err := s.service.Contributions(context.Background(), id.DonorID(999))
		s.Require().NoError(err)
		s.NotNil(got)
		s.Empty(got)
	})
}

// =============================================================================
// Store Failure Tests
// =============================================================================

func (s *DonationServiceSuite) TestStoreFailureIsInternal() {
	svc, err := New(&stubStore{err: errors.New("connection refused")})
	s.Require().NoError(err)
	ctx := context.Background()

	_, err = svc.Summary(ctx, s.senator.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	s.NotContains(dErrors.MessageOf(err), "connection refused")

	_, err = svc.FilteredSummary(ctx, s.senator.ID, "Health")
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))

	_, err = svc.Contributions(ctx, id.DonorID(1))
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}

type stubStore struct {
	err   error
	calls int
}

func (s *stubStore) SumByIndustry(context.Context, models.SummaryFilter) ([]models.IndustryTotal, error) {
	s.calls++
	return nil, s.err
}

func (s *stubStore) ListByDonor(context.Context, id.DonorID) ([]models.Contribution, error) {
	s.calls++
	return nil, s.err
}
