package storage

import (
	"time"

	id "papertrail/pkg/domain"
)

// Row types mirror the store's tables column for column. Nullable columns are pointers
// (or nil slices); in-memory stores join and aggregate over these rows exactly the way
// the PostgreSQL stores do in SQL.

type PoliticianRow struct {
	ID        id.PoliticianID
	FirstName string
	LastName  string
	Party     string
	Chamber   string
	State     string
	District  *string
	IsActive  bool
	Role      *string
}

type DonorRow struct {
	ID        id.DonorID
	Name      string
	DonorType string
	Employer  *string
	State     *string
	Industry  *string
}

type BillRow struct {
	ID             id.BillID
	Number         string
	Title          string
	DateIntroduced *time.Time
	Congress       int
	Subjects       []string
}

type DonationRow struct {
	ID               int64
	DonorID          id.DonorID
	PoliticianID     id.PoliticianID
	Amount           float64
	Date             time.Time
	ContributionType string
}

type VoteRow struct {
	ID           id.VoteID
	PoliticianID id.PoliticianID
	BillID       id.BillID
	Vote         string
}

// Ptr returns a pointer to v. Handy for nullable fixture columns.
func Ptr[T any](v T) *T {
	return &v
}
