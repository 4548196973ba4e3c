package handler

import (
	"papertrail/internal/donation/models"
	id "papertrail/pkg/domain"
)

// IndustryTotalResponse is one entry of a donation summary.
type IndustryTotalResponse struct {
	Industry    string  `json:"industry"`
	TotalAmount float64 `json:"totalamount"`
}

// ContributionResponse is one donation in a donor's history.
type ContributionResponse struct {
	Amount    float64 `json:"amount"`
	Date      id.Date `json:"date"`
	FirstName string  `json:"firstname"`
	LastName  string  `json:"lastname"`
	Party     string  `json:"party"`
	State     string  `json:"state"`
}

func toSummaryResponse(totals []models.IndustryTotal) []IndustryTotalResponse {
	out := make([]IndustryTotalResponse, 0, len(totals))
	for _, t := range totals {
		out = append(out, IndustryTotalResponse{Industry: t.Industry, TotalAmount: t.TotalAmount})
	}
	return out
}

func toContributionsResponse(items []models.Contribution) []ContributionResponse {
	out := make([]ContributionResponse, 0, len(items))
	for _, c := range items {
		out = append(out, ContributionResponse{
			Amount:    c.Amount,
			Date:      c.Date,
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Party:     c.Party,
			State:     c.State,
		})
	}
	return out
}
