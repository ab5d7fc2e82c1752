// internal/model/campaign.go
package model

// Campaign is a single tracked marketing campaign. IDs are wall-clock
// derived (milliseconds since epoch) and assigned by the service layer.
// Only Status is mutable after creation.
type Campaign struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Client    string `db:"client" json:"client"`
	StartDate string `db:"start_date" json:"startDate"`
	Status    string `db:"status" json:"status"`
}

// Conventional status values. Not enforced as an enum: any non-empty
// string is accepted on create and update.
const (
	StatusPending   = "Pending"
	StatusActive    = "Active"
	StatusCompleted = "Completed"
)
