// Package domain holds DTOs for search http and service contracts
package domain

// SearchInput is the search request body. Query text may be Arabic, Latin,
// or mixed; filters are all optional
type SearchInput struct {
	Query    string `json:"query" validate:"required,min=1,max=200" example:"أحمد خليل"`
	Status   string `json:"status,omitempty" validate:"omitempty,oneof=detained released deceased disappeared unknown" example:"detained"`
	Gender   string `json:"gender,omitempty" validate:"omitempty,oneof=male female unknown" example:"male"`
	AgeMin   *int   `json:"age_min,omitempty" validate:"omitempty,min=0,max=120" example:"18"`
	AgeMax   *int   `json:"age_max,omitempty" validate:"omitempty,min=0,max=120" example:"60"`
	Location string `json:"location,omitempty" validate:"omitempty,max=200" example:"حلب"`
	DateFrom string `json:"date_from,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2012-01-01"`
	DateTo   string `json:"date_to,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2015-12-31"`
	Limit    int    `json:"limit,omitempty" validate:"omitempty,min=1,max=200" example:"25"`
}

// ResultRow is one search hit with its match provenance
type ResultRow struct {
	ID               string  `json:"id" example:"6f1c7f3e-8f2a-4c3b-9b0e-2d7a1f5c9e44"`
	FullName         string  `json:"full_name" example:"أحمد خليل"`
	OriginalName     string  `json:"original_name,omitempty"`
	DetentionDate    string  `json:"detention_date" example:"2013-05-14"`
	LastSeenLocation string  `json:"last_seen_location" example:"حلب"`
	Facility         string  `json:"facility,omitempty"`
	Age              int     `json:"age" example:"45"`
	Gender           string  `json:"gender" example:"male"`
	Status           string  `json:"status" example:"detained"`
	Rank             float64 `json:"rank" example:"0.92"`
	MatchPhase       string  `json:"match_phase" example:"trigram"`
}

// SearchResponse is the search result envelope
type SearchResponse struct {
	Results []ResultRow `json:"results"`
	Count   int         `json:"count" example:"2"`
}
