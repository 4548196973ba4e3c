package donor

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"papertrail/internal/platform/metrics"
	"papertrail/internal/platform/postgres"
	id "papertrail/pkg/domain"
	"papertrail/pkg/platform/sentinel"
)

// PostgresStore reads donors from PostgreSQL.
type PostgresStore struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

func NewPostgres(db *sql.DB, m *metrics.Metrics) *PostgresStore {
	return &PostgresStore{db: db, metrics: m}
}

func (s *PostgresStore) SearchByName(ctx context.Context, fragment string) (_ []Donor, err error) {
	ctx, q := postgres.StartQuery(ctx, s.metrics, "donor.search")
	defer func() { err = q.Finish(err) }()

	rows, err := s.db.QueryContext(ctx, `
		SELECT DonorID, Name, DonorType, Employer, State
		FROM Donors
		WHERE Name ILIKE $1
		ORDER BY Name`,
		postgres.ContainsPattern(fragment))
	if err != nil {
		return nil, fmt.Errorf("search donors: %w", err)
	}
	defer rows.Close()

	out := []Donor{}
	for rows.Next() {
		d, err := scanDonor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate donors: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) FindByID(ctx context.Context, donorID id.DonorID) (_ *Donor, err error) {
	ctx, q := postgres.StartQuery(ctx, s.metrics, "donor.find_by_id",
		attribute.Int64("donor.id", int64(donorID)),
	)
	defer func() {
		if errors.Is(err, sentinel.ErrNotFound) {
			_ = q.Finish(nil)
			return
		}
		_ = q.Finish(err)
	}()

	row := s.db.QueryRowContext(ctx, `SELECT DonorID, Name, DonorType, Employer, State FROM Donors WHERE DonorID = $1`, int64(donorID))
	d, err := scanDonor(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	return d, err
}

func scanDonor(row interface{ Scan(...any) error }) (*Donor, error) {
	var (
		d         Donor
		did       int64
		donorType sql.NullString
		employer  sql.NullString
		state     sql.NullString
	)
	if err := row.Scan(&did, &d.Name, &donorType, &employer, &state); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan donor: %w", err)
	}
	d.ID = id.DonorID(did)
	d.DonorType = donorType.String
	if employer.Valid {
		d.Employer = &employer.String
	}
	if state.Valid {
		d.State = &state.String
	}
	return &d, nil
}
