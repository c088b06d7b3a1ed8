package models

import "time"

// User represents an authenticated user in the system.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName returns the name, falling back to the local part of the email.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	for i := 0; i < len(u.Email); i++ {
		if u.Email[i] == '@' {
			return u.Email[:i]
		}
	}
	return u.Email
}

// UserWithStats is a user enriched with invoice aggregates, as returned by
// the admin user listing.
type UserWithStats struct {
	User
	InvoiceCount int     `json:"invoice_count"`
	TotalAmount  float64 `json:"total_amount"`
}

// UserList is the envelope of the admin user listing.
type UserList struct {
	Users []UserWithStats `json:"users"`
	Total int             `json:"total"`
}
