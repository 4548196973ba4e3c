package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"go.opentelemetry.io/otel/attribute"

	"papertrail/internal/donation/models"
	"papertrail/internal/platform/metrics"
	"papertrail/internal/platform/postgres"
	id "papertrail/pkg/domain"
)

const sumByIndustryQuery = `
	SELECT d.Industry, SUM(t.Amount)::float8 AS TotalAmount
	FROM Donations t
	JOIN Donors d ON t.DonorID = d.DonorID
	WHERE t.PoliticianID = $1 AND d.Industry IS NOT NULL`

const sumByIndustryTail = `
	GROUP BY d.Industry
	ORDER BY TotalAmount DESC, d.Industry ASC`

const listByDonorQuery = `
	SELECT t.Amount::float8, t.Date, p.FirstName, p.LastName, p.Party, p.State
	FROM Donations t
	JOIN Politicians p ON t.PoliticianID = p.PoliticianID
	WHERE t.DonorID = $1
	ORDER BY t.Date DESC, t.Amount DESC`

// PostgresStore aggregates donations in PostgreSQL.
type PostgresStore struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// NewPostgres constructs a PostgreSQL-backed donation store. m may be nil.
func NewPostgres(db *sql.DB, m *metrics.Metrics) *PostgresStore {
	return &PostgresStore{db: db, metrics: m}
}

func (s *PostgresStore) SumByIndustry(ctx context.Context, filter models.SummaryFilter) (_ []models.IndustryTotal, err error) {
	ctx, q := postgres.StartQuery(ctx, s.metrics, "donation.sum_by_industry",
		attribute.Int64("politician.id", int64(filter.PoliticianID)),
		attribute.Bool("filtered", filter.Industries != nil),
	)
	defer func() { err = q.Finish(err) }()

	query := sumByIndustryQuery
	args := []any{int64(filter.PoliticianID)}
	if filter.Industries != nil {
		query += ` AND d.Industry = ANY($2::text[])`
		args = append(args, pq.Array(filter.Industries))
	}
	query += sumByIndustryTail

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sum donations by industry: %w", err)
	}
	defer rows.Close()

	totals := []models.IndustryTotal{}
	for rows.Next() {
		var t models.IndustryTotal
		if err := rows.Scan(&t.Industry, &t.TotalAmount); err != nil {
			return nil, fmt.Errorf("scan industry total: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate industry totals: %w", err)
	}
	return totals, nil
}

func (s *PostgresStore) ListByDonor(ctx context.Context, donorID id.DonorID) (_ []models.Contribution, err error) {
	ctx, q := postgres.StartQuery(ctx, s.metrics, "donation.list_by_donor",
		attribute.Int64("donor.id", int64(donorID)),
	)
	defer func() { err = q.Finish(err) }()

	rows, err := s.db.QueryContext(ctx, listByDonorQuery, int64(donorID))
	if err != nil {
		return nil, fmt.Errorf("list donations by donor: %w", err)
	}
	defer rows.Close()

	out := []models.Contribution{}
	for rows.Next() {
		var (
			c     models.Contribution
			date  sql.NullTime
			party sql.NullString
			state sql.NullString
		)
		if err := rows.Scan(&c.Amount, &date, &c.FirstName, &c.LastName, &party, &state); err != nil {
			return nil, fmt.Errorf("scan contribution: %w", err)
		}
		if date.Valid {
			c.Date = id.NewDate(date.Time)
		}
		c.Party = party.String
		c.State = state.String
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contributions: %w", err)
	}
	return out, nil
}
