package models

import (
	id "papertrail/pkg/domain"
)

// IndustryTotal is one row of a donation summary: the sum of all donations a politician
// received from donors in a single industry.
type IndustryTotal struct {
	Industry    string
	TotalAmount float64
}

// SummaryFilter narrows a donation summary.
// A nil Industries means every non-null industry; a non-nil slice restricts to its members.
type SummaryFilter struct {
	PoliticianID id.PoliticianID
	Industries   []string
}

// Contribution is a single donation made by a donor, joined with its recipient.
type Contribution struct {
	Amount    float64
	Date      id.Date
	FirstName string
	LastName  string
	Party     string
	State     string
}
