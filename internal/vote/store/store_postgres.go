package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"go.opentelemetry.io/otel/attribute"

	"papertrail/internal/platform/metrics"
	"papertrail/internal/platform/postgres"
	"papertrail/internal/vote/models"
	id "papertrail/pkg/domain"
)

// PostgresStore reads voting records from PostgreSQL.
type PostgresStore struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// NewPostgres constructs a PostgreSQL-backed vote store. m may be nil.
func NewPostgres(db *sql.DB, m *metrics.Metrics) *PostgresStore {
	return &PostgresStore{db: db, metrics: m}
}

// whereClause renders the filter as a predicate over votes v joined to bills b.
// Every value is bound as a parameter; the returned args line up with $1..$n.
func whereClause(f models.Filter) (string, []any) {
	clauses := []string{"v.PoliticianID = $1"}
	args := []any{int64(f.PoliticianID)}

	if len(f.BillTypes) > 0 {
		patterns := make([]string, len(f.BillTypes))
		for i, t := range f.BillTypes {
			patterns[i] = postgres.PrefixPattern(t)
		}
		args = append(args, pq.Array(patterns))
		clauses = append(clauses, fmt.Sprintf("b.BillNumber ILIKE ANY($%d::text[])", len(args)))
	}
	if len(f.Subjects) > 0 {
		args = append(args, pq.Array(f.Subjects))
		clauses = append(clauses, fmt.Sprintf("b.Subjects && $%d::text[]", len(args)))
	}
	return strings.Join(clauses, " AND "), args
}

// orderBy maps a sort order onto a fixed ORDER BY clause. Undated bills sort last either way.
func orderBy(order models.SortOrder) string {
	if order == models.SortAsc {
		return "b.DateIntroduced ASC NULLS LAST, v.VoteID ASC"
	}
	return "b.DateIntroduced DESC NULLS LAST, v.VoteID DESC"
}

func (s *PostgresStore) Count(ctx context.Context, filter models.Filter) (_ int, err error) {
	ctx, q := postgres.StartQuery(ctx, s.metrics, "vote.count",
		attribute.Int64("politician.id", int64(filter.PoliticianID)),
		attribute.Int("filter.types", len(filter.BillTypes)),
		attribute.Int("filter.subjects", len(filter.Subjects)),
	)
	defer func() { err = q.Finish(err) }()

	where, args := whereClause(filter)
	query := "SELECT COUNT(*) FROM Votes v JOIN Bills b ON v.BillID = b.BillID WHERE " + where

	var total int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count votes: %w", err)
	}
	return total, nil
}

func (s *PostgresStore) List(ctx context.Context, filter models.Filter, order models.SortOrder, limit, offset int) (_ []models.Record, err error) {
	ctx, q := postgres.StartQuery(ctx, s.metrics, "vote.list",
		attribute.Int64("politician.id", int64(filter.PoliticianID)),
		attribute.String("sort", string(order)),
		attribute.Int("offset", offset),
	)
	defer func() { err = q.Finish(err) }()

	where, args := whereClause(filter)
	args = append(args, limit, offset)
	query := fmt.Sprintf(`
		SELECT v.VoteID, v.Vote, b.BillNumber, b.Title, b.DateIntroduced, b.Subjects
		FROM Votes v
		JOIN Bills b ON v.BillID = b.BillID
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d`, where, orderBy(order), len(args)-1, len(args))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list votes: %w", err)
	}
	defer rows.Close()

	records := []models.Record{}
	for rows.Next() {
		var (
			r        models.Record
			voteID   int64
			vote     sql.NullString
			number   sql.NullString
			title    sql.NullString
			date     sql.NullTime
			subjects pq.StringArray
		)
		if err := rows.Scan(&voteID, &vote, &number, &title, &date, &subjects); err != nil {
			return nil, fmt.Errorf("scan vote: %w", err)
		}
		r.VoteID = id.VoteID(voteID)
		r.Vote = models.Value(vote.String)
		r.BillNumber = number.String
		r.Title = title.String
		if date.Valid {
			d := id.NewDate(date.Time)
			r.DateIntroduced = &d
		}
		r.Subjects = []string(subjects)
		if r.Subjects == nil {
			r.Subjects = []string{}
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate votes: %w", err)
	}
	return records, nil
}
