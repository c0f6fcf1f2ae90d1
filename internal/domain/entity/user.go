package entity

import "time"

// User is the credential-store record. PasswordHash never leaves the
// repository layer except for login verification.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Principal is the public projection of an authenticated user injected into
// request context. It deliberately omits the password hash.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Public returns the principal projection of the user.
func (u *User) Public() Principal {
	return Principal{ID: u.ID, Email: u.Email, Name: u.Name}
}
