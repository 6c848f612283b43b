// Package history owns the canonical list of review records. Every other
// component operates on copies and writes back through the service's
// mutation API.
package history

import (
	"time"

	"github.com/google/uuid"

	"contractreview/internal/review"
)

// Status of a record. Completed if and only if a review result is attached.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusCompleted Status = "completed"
)

// Record is one history entry: a draft created when the user starts a new
// review, completed exactly once when the review succeeds. The raw contract
// text is kept so conversation context can be rebuilt on reload.
type Record struct {
	ID           uuid.UUID      `json:"id"`
	Title        string         `json:"title"`
	Status       Status         `json:"status"`
	Result       *review.Result `json:"review_result,omitempty"`
	ContractText string         `json:"contract_text,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// NewDraft creates a draft record with no result.
func NewDraft(title string) Record {
	now := time.Now()
	return Record{
		ID:        uuid.New(),
		Title:     title,
		Status:    StatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch bumps UpdatedAt.
func (r *Record) Touch() {
	r.UpdatedAt = time.Now()
}

// Clone deep-copies the record so callers can never reach the service's
// canonical state through a shared pointer.
func (r Record) Clone() Record {
	if r.Result != nil {
		result := *r.Result
		result.Conversations = result.Conversations.Clone()
		r.Result = &result
	}
	return r
}

// attachResult completes the record with a review result.
func (r *Record) attachResult(result review.Result, contractText, title string) {
	r.Result = &result
	r.ContractText = contractText
	r.Title = title
	r.Status = StatusCompleted
	r.Touch()
}
