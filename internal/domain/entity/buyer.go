package entity

import "time"

const (
	BuyerStatusActive   = "active"
	BuyerStatusInactive = "inactive"
)

// Buyer is a prospective purchaser owned by a single user.
type Buyer struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Name         string    `json:"name"`
	Email        *string   `json:"email"`
	Phone        *string   `json:"phone"`
	Company      *string   `json:"company"`
	Budget       *float64  `json:"budget"`
	Requirements *string   `json:"requirements"`
	Status       string    `json:"status"`
	Notes        *string   `json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// BuyerCounts carries related-row counts for list views.
type BuyerCounts struct {
	Clients int `json:"clients"`
	Files   int `json:"files"`
}

// BuyerSummary is a list row: the buyer plus its relation counts.
type BuyerSummary struct {
	Buyer
	Counts BuyerCounts `json:"_count"`
}

// BuyerDetail is the single-buyer view with linked clients and files.
type BuyerDetail struct {
	Buyer
	Clients []Client `json:"clients"`
	Files   []File   `json:"files"`
}
