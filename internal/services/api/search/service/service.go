// Package service adapts the search orchestrator to the HTTP contract
package service

import (
	"context"

	"qayd/internal/core/canon"
	"qayd/internal/services/api/search/domain"
	searchdom "qayd/internal/services/search/domain"
)

// Service defines the search service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the search service
type Svc struct {
	Searcher searchdom.SearcherPort
}

// New constructs a search service over the orchestrator port
func New(searcher searchdom.SearcherPort) *Svc {
	if searcher == nil {
		panic("search.Service requires a non nil SearcherPort")
	}
	return &Svc{Searcher: searcher}
}

// Search runs the cascade with the request's filters applied
func (s *Svc) Search(ctx context.Context, in domain.SearchInput) (domain.SearchResponse, error) {
	res, err := s.Searcher.Search(ctx, searchdom.Query{
		Text: in.Query,
		Filters: searchdom.Filters{
			Status:   canon.Status(in.Status),
			Gender:   canon.Gender(in.Gender),
			AgeMin:   in.AgeMin,
			AgeMax:   in.AgeMax,
			Location: in.Location,
			DateFrom: in.DateFrom,
			DateTo:   in.DateTo,
		},
		Limit: in.Limit,
	})
	if err != nil {
		return domain.SearchResponse{}, err
	}
	rows := make([]domain.ResultRow, 0, len(res))
	for _, r := range res {
		rows = append(rows, toRow(r))
	}
	return domain.SearchResponse{Results: rows, Count: len(rows)}, nil
}

func toRow(r searchdom.Result) domain.ResultRow {
	return domain.ResultRow{
		ID:               r.Record.ID,
		FullName:         r.Record.FullName,
		OriginalName:     r.Record.OriginalName,
		DetentionDate:    r.Record.DetentionDate,
		LastSeenLocation: r.Record.LastSeenLocation,
		Facility:         r.Record.Facility,
		Age:              r.Record.Age,
		Gender:           string(r.Record.Gender),
		Status:           string(r.Record.Status),
		Rank:             r.Rank,
		MatchPhase:       r.MatchPhase,
	}
}
