package politician

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

const politicianColumns = `PoliticianID, FirstName, LastName, Party, State, Role, IsActive`

// PostgresStore reads politicians from PostgreSQL.
type PostgresStore struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

func NewPostgres(db *sql.DB, m *metrics.Metrics) *PostgresStore {
	return &PostgresStore{db: db, metrics: m}
}

func (s *PostgresStore) SearchByName(ctx context.Context, fragment string) (_ []Politician, err error) {
	ctx, q := postgres.StartQuery(ctx, s.metrics, "politician.search")
	defer func() { err = q.Finish(err) }()

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+politicianColumns+`
		FROM Politicians
		WHERE (FirstName || ' ' || LastName) ILIKE $1
		ORDER BY IsActive DESC, LastName, FirstName`,
		postgres.ContainsPattern(fragment))
	if err != nil {
		return nil, fmt.Errorf("search politicians: %w", err)
	}
	defer rows.Close()

	out := []Politician{}
	for rows.Next() {
		p, err := scanPolitician(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate politicians: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) FindByID(ctx context.Context, politicianID id.PoliticianID) (_ *Politician, err error) {
	ctx, q := postgres.StartQuery(ctx, s.metrics, "politician.find_by_id",
		attribute.Int64("politician.id", int64(politicianID)),
	)
	defer func() {
		// A missing row is an answer, not a failed query.
		if errors.Is(err, sentinel.ErrNotFound) {
			_ = q.Finish(nil)
			return
		}
		_ = q.Finish(err)
	}()

	row := s.db.QueryRowContext(ctx, `SELECT `+politicianColumns+` FROM Politicians WHERE PoliticianID = $1`, int64(politicianID))
	p, err := scanPolitician(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	return p, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPolitician(row scanner) (*Politician, error) {
	var (
		p        Politician
		pid      int64
		party    sql.NullString
		state    sql.NullString
		role     sql.NullString
		isActive sql.NullBool
	)
	if err := row.Scan(&pid, &p.FirstName, &p.LastName, &party, &state, &role, &isActive); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan politician: %w", err)
	}
	p.ID = id.PoliticianID(pid)
	p.Party = party.String
	p.State = state.String
	if role.Valid {
		p.Role = &role.String
	}
	p.IsActive = isActive.Bool
	return &p, nil
}
