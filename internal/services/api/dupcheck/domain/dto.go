// Package domain holds DTOs for duplicate-check http and service contracts
package domain

// CheckInput is the duplicate-check request body
type CheckInput struct {
	FullName string `json:"full_name" validate:"required,min=1,max=200" example:"أحمد خليل"`
}

// MatchRow is one stored record implicated in the verdict
type MatchRow struct {
	ID               string `json:"id" example:"6f1c7f3e-8f2a-4c3b-9b0e-2d7a1f5c9e44"`
	FullName         string `json:"full_name" example:"احمد خليل"`
	DetentionDate    string `json:"detention_date" example:"2013-05-14"`
	LastSeenLocation string `json:"last_seen_location" example:"حلب"`
	Status           string `json:"status" example:"detained"`
}

// CheckResponse is the verdict envelope. Exact and Similar are disjoint;
// Similar is always empty when IsDuplicate is true
type CheckResponse struct {
	IsDuplicate bool       `json:"is_duplicate" example:"false"`
	Exact       []MatchRow `json:"exact"`
	Similar     []MatchRow `json:"similar"`
}
