package stats

import (
	"time"

	"github.com/diewo77/go-invoices-client/models"
)

// InvoiceSummary mirrors the dashboard status cards for a list of invoices.
type InvoiceSummary struct {
	Total   int
	Draft   int
	Sent    int
	Paid    int
	Overdue int
	// TotalRevenue sums amounts of paid invoices only.
	TotalRevenue float64
	// Outstanding sums amounts of sent and overdue invoices.
	Outstanding float64
}

// SummarizeInvoices computes the per-status counts and amount aggregates.
func SummarizeInvoices(invoices []models.Invoice) InvoiceSummary {
	tally := TallyByStatus(invoices, invoiceStatus,
		string(models.InvoiceDraft), string(models.InvoiceSent),
		string(models.InvoicePaid), string(models.InvoiceOverdue))
	return InvoiceSummary{
		Total:        tally.Total,
		Draft:        tally.Count(string(models.InvoiceDraft)),
		Sent:         tally.Count(string(models.InvoiceSent)),
		Paid:         tally.Count(string(models.InvoicePaid)),
		Overdue:      tally.Count(string(models.InvoiceOverdue)),
		TotalRevenue: Revenue(invoices),
		Outstanding:  Outstanding(invoices),
	}
}

// Revenue is the sum of amounts over paid invoices.
func Revenue(invoices []models.Invoice) float64 {
	return SumWhere(invoices, invoiceAmount, func(i models.Invoice) bool {
		return i.Status == models.InvoicePaid
	})
}

// Outstanding is the sum of amounts over sent and overdue invoices.
func Outstanding(invoices []models.Invoice) float64 {
	return SumWhere(invoices, invoiceAmount, func(i models.Invoice) bool {
		return i.Outstanding()
	})
}

// PaidInMonth sums paid invoices whose last update falls in ref's calendar
// month. The update timestamp stands in for a payment date, as the backend
// exposes none.
func PaidInMonth(invoices []models.Invoice, ref time.Time) float64 {
	return SumWhere(invoices, invoiceAmount, func(i models.Invoice) bool {
		return i.Status == models.InvoicePaid &&
			i.UpdatedAt.Year() == ref.Year() &&
			i.UpdatedAt.Month() == ref.Month()
	})
}

// UpcomingPayments counts sent invoices that are not yet due at now.
func UpcomingPayments(invoices []models.Invoice, now time.Time) int {
	count := 0
	for _, inv := range invoices {
		if inv.Status == models.InvoiceSent && inv.DueDate.After(now) {
			count++
		}
	}
	return count
}

// FilterInvoices applies the search box and status dropdown: the query
// matches invoice number or client name, the status is exact or StatusAll.
func FilterInvoices(invoices []models.Invoice, query, status string) []models.Invoice {
	return Filter(invoices, query, status, func(i models.Invoice) []string {
		return []string{i.InvoiceNumber, i.ClientName}
	}, invoiceStatus)
}

func invoiceStatus(i models.Invoice) string { return string(i.Status) }
func invoiceAmount(i models.Invoice) float64 { return i.Amount }

// SummarizeAdminInvoices is SummarizeInvoices over the admin projection.
func SummarizeAdminInvoices(invoices []models.AdminInvoice) InvoiceSummary {
	plain := make([]models.Invoice, len(invoices))
	for i, inv := range invoices {
		plain[i] = inv.Invoice
	}
	return SummarizeInvoices(plain)
}

// FilterAdminInvoices additionally searches the owning user's email.
func FilterAdminInvoices(invoices []models.AdminInvoice, query, status string) []models.AdminInvoice {
	return Filter(invoices, query, status, func(i models.AdminInvoice) []string {
		return []string{i.InvoiceNumber, i.ClientName, i.UserEmail}
	}, func(i models.AdminInvoice) string { return string(i.Status) })
}
