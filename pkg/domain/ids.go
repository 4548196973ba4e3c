package domain

import (
	"strconv"

	dErrors "papertrail/pkg/domain-errors"
)

// Typed identifiers for the store's integer primary keys. Distinct types keep a
// donor id from being passed where a politician id is expected.
type (
	PoliticianID int64
	DonorID      int64
	BillID       int64
	VoteID       int64
)

// maxIDLength bounds the digits accepted before conversion; int64 has at most 19.
const maxIDLength = 19

func parseID(s, kind string) (int64, error) {
	if s == "" {
		return 0, dErrors.New(dErrors.CodeInvalidInput, kind+" id is required")
	}
	if len(s) > maxIDLength {
		return 0, dErrors.New(dErrors.CodeInvalidInput, kind+" id is out of range")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, dErrors.New(dErrors.CodeInvalidInput, kind+" id must be a non-negative integer")
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeInvalidInput, kind+" id is out of range")
	}
	return n, nil
}

// ParsePoliticianID parses a non-negative decimal politician id.
func ParsePoliticianID(s string) (PoliticianID, error) {
	n, err := parseID(s, "politician")
	return PoliticianID(n), err
}

// ParseDonorID parses a non-negative decimal donor id.
func ParseDonorID(s string) (DonorID, error) {
	n, err := parseID(s, "donor")
	return DonorID(n), err
}

func (id PoliticianID) String() string { return strconv.FormatInt(int64(id), 10) }
func (id DonorID) String() string      { return strconv.FormatInt(int64(id), 10) }
func (id BillID) String() string       { return strconv.FormatInt(int64(id), 10) }
func (id VoteID) String() string       { return strconv.FormatInt(int64(id), 10) }
