// Package models holds the domain and DTO types that mirror the backend
// invoicing API contracts. Every entity is owned by the remote backend;
// instances here are transient copies held for the lifetime of a view.
package models

// Role determines what a user may see and do.
type Role string

const (
	RoleUser    Role = "user"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

// AtLeastManager reports whether the role grants access to the admin area.
func (r Role) AtLeastManager() bool {
	return r == RoleAdmin || r == RoleManager
}

// ClientStatus is the lifecycle state of a client.
// Transitions: active/inactive -> archived; archive is terminal,
// no unarchive operation is exposed.
type ClientStatus string

const (
	ClientActive   ClientStatus = "active"
	ClientInactive ClientStatus = "inactive"
	ClientArchived ClientStatus = "archived"
)

// InvoiceStatus is the lifecycle state of an invoice. It is
// backend-authoritative: the client never transitions it locally
// (sent -> overdue is not derived from due_date here, only displayed).
type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "draft"
	InvoiceSent    InvoiceStatus = "sent"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

// InvoiceStatuses lists the named buckets in display order.
var InvoiceStatuses = []InvoiceStatus{InvoiceDraft, InvoiceSent, InvoicePaid, InvoiceOverdue}
