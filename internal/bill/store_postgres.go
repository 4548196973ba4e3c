package bill

import (
	"context"
	"database/sql"
	"fmt"

	"papertrail/internal/platform/metrics"
	"papertrail/internal/platform/postgres"
)

// PostgresStore reads bill data from PostgreSQL.
type PostgresStore struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

func NewPostgres(db *sql.DB, m *metrics.Metrics) *PostgresStore {
	return &PostgresStore{db: db, metrics: m}
}

func (s *PostgresStore) DistinctSubjects(ctx context.Context) (_ []string, err error) {
	ctx, q := postgres.StartQuery(ctx, s.metrics, "bill.distinct_subjects")
	defer func() { err = q.Finish(err) }()

	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT subject
		FROM Bills, UNNEST(Subjects) AS subject
		WHERE subject IS NOT NULL
		ORDER BY subject`)
	if err != nil {
		return nil, fmt.Errorf("list bill subjects: %w", err)
	}
	defer rows.Close()

	subjects := []string{}
	for rows.Next() {
		var subject string
		if err := rows.Scan(&subject); err != nil {
			return nil, fmt.Errorf("scan bill subject: %w", err)
		}
		subjects = append(subjects, subject)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bill subjects: %w", err)
	}
	return subjects, nil
}
