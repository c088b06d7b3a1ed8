package models

import "time"

// Client represents a customer in the billing system.
type Client struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Phone     string       `json:"phone,omitempty"`
	Address   string       `json:"address,omitempty"`
	Status    ClientStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// Archived reports whether the client has been archived. Archived clients
// stay listed but accept no further edits in the UI.
func (c *Client) Archived() bool {
	return c.Status == ClientArchived
}

// ClientList is the normalized envelope for client listings. The backend
// returns a bare array; the client service wraps it.
type ClientList struct {
	Clients []Client `json:"clients"`
	Total   int      `json:"total"`
}
