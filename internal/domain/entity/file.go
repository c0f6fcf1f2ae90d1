package entity

import "time"

// File is an uploaded attachment owned by a single user, optionally
// associated with a client or a buyer. URL points at object storage.
type File struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Filename  string    `json:"filename"`
	URL       string    `json:"url"`
	Size      int64     `json:"size"`
	MimeType  string    `json:"mimeType"`
	ClientID  *string   `json:"clientId"`
	BuyerID   *string   `json:"buyerId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Image is a picture attached to a client. Ownership is transitive: an image
// belongs to whoever owns the client.
type Image struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"clientId"`
	Filename  string    `json:"filename"`
	URL       string    `json:"url"`
	Size      int64     `json:"size"`
	MimeType  string    `json:"mimeType"`
	CreatedAt time.Time `json:"createdAt"`
}
