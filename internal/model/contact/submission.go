package contact

import "time"

// Submission statuses.
const (
	StatusNew      = "new"
	StatusReviewed = "reviewed"
)

// Submission is an accepted contact request awaiting a valuation.
type Submission struct {
	ID        string    `json:"id"`
	Form      Form      `json:"form"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
