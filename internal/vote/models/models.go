package models

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	id "papertrail/pkg/domain"
	dErrors "papertrail/pkg/domain-errors"
)

// PageSize is the fixed number of votes per page.
const PageSize = 10

// MaxPage is the largest page number accepted.
const MaxPage = math.MaxInt32

// SortOrder orders votes by the introduction date of their bill.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder accepts "asc" or "desc" in any case. Anything else, including an empty
// value, falls back to SortDesc.
func ParseSortOrder(raw string) SortOrder {
	if strings.EqualFold(raw, string(SortAsc)) {
		return SortAsc
	}
	return SortDesc
}

// ParsePage reads a 1-based page number. An empty value means the first page.
func ParsePage(raw string) (int, error) {
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeBadRequest, "page must be an integer")
	}
	if page < 1 || page > MaxPage {
		return 0, dErrors.New(dErrors.CodeBadRequest, "page must be between 1 and 2147483647")
	}
	return page, nil
}

// Value is a recorded vote position.
type Value string

const (
	ValueYea       Value = "Yea"
	ValueNay       Value = "Nay"
	ValuePresent   Value = "Present"
	ValueNotVoting Value = "Not Voting"
)

// Filter selects the votes of one politician.
//
// BillTypes are bill-number prefixes matched case-insensitively; a vote passes when its
// bill number starts with any of them. Subjects pass a vote when its bill shares at least
// one subject (exact match). Empty slices do not filter.
type Filter struct {
	PoliticianID id.PoliticianID
	BillTypes    []string
	Subjects     []string
}

// Validate rejects values that cannot be represented as database text.
func (f Filter) Validate() error {
	for _, v := range f.BillTypes {
		if !validText(v) {
			return dErrors.New(dErrors.CodeBadRequest, "invalid type parameter")
		}
	}
	for _, v := range f.Subjects {
		if !validText(v) {
			return dErrors.New(dErrors.CodeBadRequest, "invalid subject parameter")
		}
	}
	return nil
}

func validText(s string) bool {
	return utf8.ValidString(s) && !strings.ContainsRune(s, 0)
}

// HistoryQuery is a request for one page of a politician's voting record.
type HistoryQuery struct {
	Filter Filter
	Page   int
	Sort   SortOrder
}

// Offset is the number of votes skipped before the requested page.
func (q HistoryQuery) Offset() int {
	return (q.Page - 1) * PageSize
}

// Record is a vote joined with the bill it was cast on.
type Record struct {
	VoteID         id.VoteID
	Vote           Value
	BillNumber     string
	Title          string
	DateIntroduced *id.Date
	Subjects       []string
}

// Pagination describes where a page sits in the full result.
type Pagination struct {
	CurrentPage int
	TotalPages  int
	TotalVotes  int
}

// HistoryPage is one page of votes plus its pagination metadata.
type HistoryPage struct {
	Pagination Pagination
	Votes      []Record
}

// TotalPages is the number of pages needed to show total votes.
func TotalPages(total int) int {
	return (total + PageSize - 1) / PageSize
}
