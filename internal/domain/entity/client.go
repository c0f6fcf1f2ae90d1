package entity

import "time"

// Client business types and statuses accepted at the validation boundary.
const (
	BusinessTypeCareHome   = "care home"
	BusinessTypeCareAgency = "care agency"

	ClientStatusActive   = "active"
	ClientStatusInactive = "inactive"
	ClientStatusSold     = "sold"
)

// Client is a lead owned by a single user. UserID is stamped from the
// authenticated principal at creation and is not settable via the API.
type Client struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	Name         string     `json:"name"`
	BusinessName string     `json:"businessName"`
	BusinessType string     `json:"businessType"`
	Email        *string    `json:"email"`
	Phone        *string    `json:"phone"`
	Address      *string    `json:"address"`
	Notes        *string    `json:"notes"`
	Status       string     `json:"status"`
	AskingPrice  *float64   `json:"askingPrice"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// ClientCounts carries related-row counts for list views.
type ClientCounts struct {
	Alerts int `json:"alerts"`
	Images int `json:"images"`
	Files  int `json:"files"`
}

// ClientSummary is a list row: the client plus its relation counts.
type ClientSummary struct {
	Client
	Counts ClientCounts `json:"_count"`
}

// ClientDetail is the single-client view with its related rows.
type ClientDetail struct {
	Client
	Alerts []Alert  `json:"alerts"`
	Images []Image  `json:"images"`
	Files  []File   `json:"files"`
	Buyers []Buyer  `json:"buyers"`
}
