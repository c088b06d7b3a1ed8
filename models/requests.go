package models

// Request payloads carry validate tags consumed by the validation package
// before the network round-trip; the backend remains the authority and its
// own field errors surface through httpx.APIError.Errors.

// LoginRequest is the credentials payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
}

// AuthResponse is returned by both login and registration.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// CreateClientRequest is the payload for POST /clients.
type CreateClientRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// UpdateClientRequest is the payload for PUT /clients/{id}.
// Status may move between active and inactive; archiving goes through
// DELETE /clients/{id} instead.
type UpdateClientRequest struct {
	Name    string       `json:"name" validate:"required"`
	Email   string       `json:"email" validate:"required,email"`
	Phone   string       `json:"phone,omitempty"`
	Address string       `json:"address,omitempty"`
	Status  ClientStatus `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// CreateInvoiceRequest is the payload for POST /invoices. Dates travel as
// YYYY-MM-DD strings, exactly as the form submits them.
type CreateInvoiceRequest struct {
	InvoiceNumber string        `json:"invoice_number" validate:"required"`
	ClientName    string        `json:"client_name" validate:"required"`
	ClientEmail   string        `json:"client_email,omitempty" validate:"omitempty,email"`
	Amount        float64       `json:"amount" validate:"gt=0"`
	Status        InvoiceStatus `json:"status" validate:"oneof=draft sent"`
	IssueDate     string        `json:"issue_date" validate:"required"`
	DueDate       string        `json:"due_date" validate:"required"`
	Currency      string        `json:"currency" validate:"required,len=3"`
}

// UpdateRoleRequest is the payload for PUT /admin/users/{id}/role.
type UpdateRoleRequest struct {
	Role Role `json:"role" validate:"required,oneof=user manager admin"`
}
