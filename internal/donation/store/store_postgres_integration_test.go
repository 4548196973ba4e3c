//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"papertrail/internal/donation/models"
	"papertrail/internal/donation/store"
	"papertrail/internal/donation/taxonomy"
	"papertrail/internal/storage"
	"papertrail/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
	memory   *store.InMemoryStore
	senator  storage.PoliticianRow
	donor    storage.DonorRow
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = store.NewPostgres(s.postgres.DB, nil)
}

func (s *PostgresStoreSuite) SetupTest() {
	ctx := context.Background()
	s.Require().NoError(s.postgres.TruncateTables(ctx))

	data := storage.NewDataset()
	s.senator = data.AddPolitician(storage.PoliticianRow{FirstName: "Jane", LastName: "Doe", Party: "D", State: "CA", IsActive: true})
	rep := data.AddPolitician(storage.PoliticianRow{FirstName: "John", LastName: "Roe", Party: "R", State: "TX", IsActive: true})

	tech := data.AddDonor(storage.DonorRow{Name: "Wire PAC", DonorType: "PAC", Industry: storage.Ptr("Telecom Services")})
	web := data.AddDonor(storage.DonorRow{Name: "Web Co", DonorType: "Corporation", Industry: storage.Ptr("Internet")})
	bank := data.AddDonor(storage.DonorRow{Name: "First Bank", DonorType: "Corporation", Industry: storage.Ptr("Commercial Banks")})
	anon := data.AddDonor(storage.DonorRow{Name: "Jo Citizen", DonorType: "Individual"})
	s.donor = tech

	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	data.AddDonation(storage.DonationRow{DonorID: tech.ID, PoliticianID: s.senator.ID, Amount: 100, Date: day(1), ContributionType: "Direct"})
	data.AddDonation(storage.DonationRow{DonorID: tech.ID, PoliticianID: s.senator.ID, Amount: 200.25, Date: day(2), ContributionType: "Direct"})
	data.AddDonation(storage.DonationRow{DonorID: web.ID, PoliticianID: s.senator.ID, Amount: 300.25, Date: day(3), ContributionType: "Direct"})
	data.AddDonation(storage.DonationRow{DonorID: bank.ID, PoliticianID: s.senator.ID, Amount: 1000, Date: day(4), ContributionType: "PAC"})
	data.AddDonation(storage.DonationRow{DonorID: anon.ID, PoliticianID: s.senator.ID, Amount: 50, Date: day(5), ContributionType: "Individual"})
	data.AddDonation(storage.DonationRow{DonorID: tech.ID, PoliticianID: rep.ID, Amount: 75, Date: day(2), ContributionType: "Direct"})

	s.Require().NoError(s.postgres.Seed(ctx, data))
	s.memory = store.NewInMemory(data)
}

func (s *PostgresStoreSuite) TestSumByIndustry() {
	ctx := context.Background()

	got, err := s.store.SumByIndustry(ctx, models.SummaryFilter{PoliticianID: s.senator.ID})
	s.Require().NoError(err)
	s.Equal([]models.IndustryTotal{
		{Industry: "Commercial Banks", TotalAmount: 1000},
		{Industry: "Internet", TotalAmount: 300.25},
		{Industry: "Telecom Services", TotalAmount: 300.25},
	}, got)

	want, err := s.memory.SumByIndustry(ctx, models.SummaryFilter{PoliticianID: s.senator.ID})
	s.Require().NoError(err)
	s.Equal(want, got)
}

func (s *PostgresStoreSuite) TestSumByIndustryFiltered() {
	ctx := context.Background()
	industries, ok := taxonomy.Industries("Technology")
	s.Require().True(ok)

	filter := models.SummaryFilter{PoliticianID: s.senator.ID, Industries: industries}
	got, err := s.store.SumByIndustry(ctx, filter)
	s.Require().NoError(err)
	want, err := s.memory.SumByIndustry(ctx, filter)
	s.Require().NoError(err)
	s.Equal(want, got)
	s.Len(got, 2)
}

func (s *PostgresStoreSuite) TestSumByIndustryUnknownPolitician() {
	got, err := s.store.SumByIndustry(context.Background(), models.SummaryFilter{PoliticianID: 12345})
	s.Require().NoError(err)
	s.NotNil(got)
	s.Empty(got)
}

func (s *PostgresStoreSuite) TestListByDonor() {
	ctx := context.Background()
	got, err := s.store.ListByDonor(ctx, s.donor.ID)
	s.Require().NoError(err)
	want, err := s.memory.ListByDonor(ctx, s.donor.ID)
	s.Require().NoError(err)
	s.Equal(want, got)
	s.Require().Len(got, 3)
	s.Equal("2024-01-02", got[0].Date.String())
}
