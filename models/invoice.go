package models

import "time"

// Invoice represents a single invoice as served by the backend.
// Amount is a plain float64, matching the wire format.
type Invoice struct {
	ID            string        `json:"id"`
	InvoiceNumber string        `json:"invoice_number"`
	ClientName    string        `json:"client_name"`
	ClientEmail   string        `json:"client_email,omitempty"`
	Amount        float64       `json:"amount"`
	Currency      string        `json:"currency,omitempty"`
	Status        InvoiceStatus `json:"status"`
	IssueDate     time.Time     `json:"issue_date"`
	DueDate       time.Time     `json:"due_date"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Outstanding reports whether the invoice still awaits payment.
func (i *Invoice) Outstanding() bool {
	return i.Status == InvoiceSent || i.Status == InvoiceOverdue
}

// InvoiceList is the envelope of the invoice listing.
type InvoiceList struct {
	Invoices []Invoice `json:"invoices"`
	Total    int       `json:"total"`
	Page     int       `json:"page,omitempty"`
	PerPage  int       `json:"per_page,omitempty"`
}

// AdminInvoice is an invoice joined with its owning user, as returned by the
// admin invoice listing.
type AdminInvoice struct {
	Invoice
	UserID    string `json:"user_id"`
	UserEmail string `json:"user_email,omitempty"`
	UserName  string `json:"user_name,omitempty"`
}

// AdminInvoiceList is the envelope of the admin invoice listing.
type AdminInvoiceList struct {
	Invoices []AdminInvoice `json:"invoices"`
	Total    int            `json:"total"`
}
