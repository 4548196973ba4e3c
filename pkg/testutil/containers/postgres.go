//go:build integration

package containers

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"papertrail/internal/storage"
)

const (
	postgresImage = "postgres:16-alpine"
	testDatabase  = "paper_trail_test"
)

// schema mirrors the production tables the read service queries.
const schema = `
CREATE SCHEMA IF NOT EXISTS pt;

CREATE TABLE IF NOT EXISTS pt.Politicians (
	PoliticianID SERIAL PRIMARY KEY,
	FirstName    TEXT NOT NULL,
	LastName     TEXT NOT NULL,
	Party        TEXT,
	Chamber      TEXT,
	State        TEXT,
	District     TEXT,
	IsActive     BOOLEAN NOT NULL DEFAULT TRUE,
	Role         TEXT
);

CREATE TABLE IF NOT EXISTS pt.Donors (
	DonorID   SERIAL PRIMARY KEY,
	Name      TEXT NOT NULL,
	DonorType TEXT,
	Employer  TEXT,
	State     TEXT,
	Industry  TEXT
);

CREATE TABLE IF NOT EXISTS pt.Bills (
	BillID         SERIAL PRIMARY KEY,
	BillNumber     TEXT,
	Title          TEXT,
	DateIntroduced DATE,
	Congress       INTEGER,
	Subjects       TEXT[]
);

CREATE TABLE IF NOT EXISTS pt.Donations (
	DonationID       SERIAL PRIMARY KEY,
	DonorID          INTEGER NOT NULL REFERENCES pt.Donors (DonorID),
	PoliticianID     INTEGER NOT NULL REFERENCES pt.Politicians (PoliticianID),
	Amount           NUMERIC(14, 2) NOT NULL CHECK (Amount >= 0),
	Date             DATE NOT NULL,
	ContributionType TEXT
);

CREATE TABLE IF NOT EXISTS pt.Votes (
	VoteID       SERIAL PRIMARY KEY,
	PoliticianID INTEGER NOT NULL REFERENCES pt.Politicians (PoliticianID),
	BillID       INTEGER NOT NULL REFERENCES pt.Bills (BillID),
	Vote         TEXT NOT NULL
);
`

// AllTables lists the tables in dependency order, children first.
var AllTables = []string{"pt.Votes", "pt.Donations", "pt.Bills", "pt.Donors", "pt.Politicians"}

// PostgresContainer wraps a testcontainers PostgreSQL instance with the pt schema applied.
type PostgresContainer struct {
	Container testcontainers.Container
	DSN       string
	DB        *sql.DB
}

// NewPostgresContainer starts a new PostgreSQL container and applies the schema.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, postgresImage,
		tcpostgres.WithDatabase(testDatabase),
		tcpostgres.WithUsername("papertrail"),
		tcpostgres.WithPassword("papertrail"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable", "search_path=pt,public")
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to open postgres: %v", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		_ = container.Terminate(ctx)
		t.Fatalf("failed to ping postgres: %v", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		_ = container.Terminate(ctx)
		t.Fatalf("failed to apply schema: %v", err)
	}

	// Note: We don't register t.Cleanup here because the container is managed
	// by the singleton Manager and shared across test suites. Ryuk handles cleanup.

	return &PostgresContainer{
		Container: container,
		DSN:       dsn,
		DB:        db,
	}
}

// TruncateTables empties the given tables and resets their id sequences.
// Use between tests to ensure isolation.
func (p *PostgresContainer) TruncateTables(ctx context.Context, tables ...string) error {
	if len(tables) == 0 {
		tables = AllTables
	}
	_, err := p.DB.ExecContext(ctx, "TRUNCATE "+strings.Join(tables, ", ")+" RESTART IDENTITY CASCADE")
	return err
}

// Seed bulk-loads every row of data with COPY, preserving ids.
func (p *PostgresContainer) Seed(ctx context.Context, data *storage.Dataset) error {
	conn, err := pgx.Connect(ctx, p.DSN)
	if err != nil {
		return fmt.Errorf("connect for seeding: %w", err)
	}
	defer conn.Close(ctx)

	var copies []copySpec
	data.Read(func(t storage.Tables) {
		copies = buildCopies(t)
	})

	for _, c := range copies {
		if len(c.rows) == 0 {
			continue
		}
		if _, err := conn.CopyFrom(ctx, pgx.Identifier{"pt", c.table}, c.columns, pgx.CopyFromRows(c.rows)); err != nil {
			return fmt.Errorf("copy %s: %w", c.table, err)
		}
	}
	return nil
}

type copySpec struct {
	table   string
	columns []string
	rows    [][]any
}

// buildCopies renders the dataset as COPY rows, parents before children.
// Unquoted identifiers fold to lower case, so COPY targets lower-case names.
func buildCopies(t storage.Tables) []copySpec {
	politicians := copySpec{table: "politicians", columns: []string{"politicianid", "firstname", "lastname", "party", "chamber", "state", "district", "isactive", "role"}}
	for _, r := range t.Politicians {
		politicians.rows = append(politicians.rows, []any{int64(r.ID), r.FirstName, r.LastName, r.Party, r.Chamber, r.State, r.District, r.IsActive, r.Role})
	}

	donors := copySpec{table: "donors", columns: []string{"donorid", "name", "donortype", "employer", "state", "industry"}}
	for _, r := range t.Donors {
		donors.rows = append(donors.rows, []any{int64(r.ID), r.Name, r.DonorType, r.Employer, r.State, r.Industry})
	}

	bills := copySpec{table: "bills", columns: []string{"billid", "billnumber", "title", "dateintroduced", "congress", "subjects"}}
	for _, r := range t.Bills {
		bills.rows = append(bills.rows, []any{int64(r.ID), r.Number, r.Title, r.DateIntroduced, int32(r.Congress), r.Subjects})
	}

	donations := copySpec{table: "donations", columns: []string{"donationid", "donorid", "politicianid", "amount", "date", "contributiontype"}}
	for _, r := range t.Donations {
		donations.rows = append(donations.rows, []any{r.ID, int64(r.DonorID), int64(r.PoliticianID), r.Amount, r.Date, r.ContributionType})
	}

	votes := copySpec{table: "votes", columns: []string{"voteid", "politicianid", "billid", "vote"}}
	for _, r := range t.Votes {
		votes.rows = append(votes.rows, []any{int64(r.ID), int64(r.PoliticianID), int64(r.BillID), r.Vote})
	}

	return []copySpec{politicians, donors, bills, donations, votes}
}
