package handler

import (
	"papertrail/internal/vote/models"
	id "papertrail/pkg/domain"
)

// HistoryResponse is the paged voting record.
type HistoryResponse struct {
	Pagination PaginationResponse `json:"pagination"`
	Votes      []VoteResponse     `json:"votes"`
}

type PaginationResponse struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalVotes  int `json:"totalVotes"`
}

// VoteResponse keeps the field casing existing clients read.
type VoteResponse struct {
	VoteID         id.VoteID `json:"VoteID"`
	Vote           string    `json:"Vote"`
	BillNumber     string    `json:"BillNumber"`
	Title          string    `json:"Title"`
	DateIntroduced *id.Date  `json:"DateIntroduced"`
	Subjects       []string  `json:"subjects"`
}

func toHistoryResponse(page *models.HistoryPage) HistoryResponse {
	votes := make([]VoteResponse, 0, len(page.Votes))
	for _, v := range page.Votes {
		subjects := v.Subjects
		if subjects == nil {
			subjects = []string{}
		}
		votes = append(votes, VoteResponse{
			VoteID:         v.VoteID,
			Vote:           string(v.Vote),
			BillNumber:     v.BillNumber,
			Title:          v.Title,
			DateIntroduced: v.DateIntroduced,
			Subjects:       subjects,
		})
	}
	return HistoryResponse{
		Pagination: PaginationResponse{
			CurrentPage: page.Pagination.CurrentPage,
			TotalPages:  page.Pagination.TotalPages,
			TotalVotes:  page.Pagination.TotalVotes,
		},
		Votes: votes,
	}
}
