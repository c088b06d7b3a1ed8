package models

// SystemStats is the read-only aggregate projection shown on the admin
// dashboard. Values are backend outputs, never inputs.
type SystemStats struct {
	TotalUsers      int     `json:"total_users"`
	ActiveUsers     int     `json:"active_users"`
	TotalInvoices   int     `json:"total_invoices"`
	PendingInvoices int     `json:"pending_invoices"`
	PaidInvoices    int     `json:"paid_invoices"`
	OverdueInvoices int     `json:"overdue_invoices"`
	TotalRevenue    float64 `json:"total_revenue"`
}
