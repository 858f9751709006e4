// Package domain holds duplicate-detection verdict types and ports
package domain

import (
	"context"

	recdom "qayd/internal/services/records/domain"
)

// Verdict partitions candidate matches for a name being checked.
// Exact and Similar are disjoint by record ID
type Verdict struct {
	// Exact holds records whose normalized name is identical to the
	// candidate's normalized form
	Exact []recdom.Record `json:"exact"`

	// Similar holds near-matches at or above the similarity threshold.
	// Empty whenever Exact is non-empty
	Similar []recdom.Record `json:"similar"`
}

// IsDuplicate reports whether the verdict found any exact match
func (v Verdict) IsDuplicate() bool { return len(v.Exact) > 0 }

// CheckerPort classifies a candidate name against the stored corpus.
// Classification only: whether a duplicate blocks an insert or merely
// warns is the caller's policy, not this port's
type CheckerPort interface {
	Check(ctx context.Context, fullName string) (Verdict, error)
}
