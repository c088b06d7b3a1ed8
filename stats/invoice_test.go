package stats_test

import (
	"testing"
	"time"

	"github.com/diewo77/go-invoices-client/models"
	"github.com/diewo77/go-invoices-client/stats"
)

func inv(number, client string, status models.InvoiceStatus, amount float64) models.Invoice {
	return models.Invoice{
		InvoiceNumber: number,
		ClientName:    client,
		Status:        status,
		Amount:        amount,
	}
}

func TestSummarizeInvoices(t *testing.T) {
	invoices := []models.Invoice{
		inv("INV-1", "Acme", models.InvoicePaid, 100),
		inv("INV-2", "Beta", models.InvoiceSent, 50),
		inv("INV-3", "Acme", models.InvoicePaid, 25),
	}
	sum := stats.SummarizeInvoices(invoices)

	if sum.Total != 3 {
		t.Errorf("Total = %d, want 3", sum.Total)
	}
	if sum.Paid != 2 || sum.Sent != 1 || sum.Draft != 0 || sum.Overdue != 0 {
		t.Errorf("counts = paid %d sent %d draft %d overdue %d, want 2/1/0/0",
			sum.Paid, sum.Sent, sum.Draft, sum.Overdue)
	}
	if sum.TotalRevenue != 125 {
		t.Errorf("TotalRevenue = %v, want 125", sum.TotalRevenue)
	}
	if sum.Outstanding != 50 {
		t.Errorf("Outstanding = %v, want 50", sum.Outstanding)
	}
}

func TestSummarizeInvoices_Empty(t *testing.T) {
	sum := stats.SummarizeInvoices(nil)
	if sum.Total != 0 || sum.TotalRevenue != 0 || sum.Outstanding != 0 {
		t.Errorf("empty summary = %+v, want zeros", sum)
	}
}

func TestOutstanding(t *testing.T) {
	invoices := []models.Invoice{
		inv("INV-1", "Acme", models.InvoiceSent, 40),
		inv("INV-2", "Acme", models.InvoiceOverdue, 60),
		inv("INV-3", "Acme", models.InvoicePaid, 500),
		inv("INV-4", "Acme", models.InvoiceDraft, 10),
	}
	if got := stats.Outstanding(invoices); got != 100 {
		t.Errorf("Outstanding = %v, want 100", got)
	}
}

func TestPaidInMonth(t *testing.T) {
	ref := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	paidThisMonth := inv("INV-1", "Acme", models.InvoicePaid, 70)
	paidThisMonth.UpdatedAt = time.Date(2025, time.March, 2, 9, 0, 0, 0, time.UTC)
	paidLastMonth := inv("INV-2", "Acme", models.InvoicePaid, 30)
	paidLastMonth.UpdatedAt = time.Date(2025, time.February, 27, 9, 0, 0, 0, time.UTC)
	sentThisMonth := inv("INV-3", "Acme", models.InvoiceSent, 10)
	sentThisMonth.UpdatedAt = ref

	got := stats.PaidInMonth([]models.Invoice{paidThisMonth, paidLastMonth, sentThisMonth}, ref)
	if got != 70 {
		t.Errorf("PaidInMonth = %v, want 70", got)
	}
}

func TestUpcomingPayments(t *testing.T) {
	now := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	due := inv("INV-1", "Acme", models.InvoiceSent, 10)
	due.DueDate = now.AddDate(0, 0, 7)
	past := inv("INV-2", "Acme", models.InvoiceSent, 10)
	past.DueDate = now.AddDate(0, 0, -7)
	paid := inv("INV-3", "Acme", models.InvoicePaid, 10)
	paid.DueDate = now.AddDate(0, 0, 7)

	if got := stats.UpcomingPayments([]models.Invoice{due, past, paid}, now); got != 1 {
		t.Errorf("UpcomingPayments = %d, want 1", got)
	}
}

func TestFilterInvoices(t *testing.T) {
	invoices := []models.Invoice{
		inv("INV-1", "Acme Corp", models.InvoicePaid, 100),
		inv("INV-20", "Beta LLC", models.InvoiceSent, 50),
		inv("INV-3", "Gamma", models.InvoicePaid, 25),
	}

	tests := []struct {
		name   string
		query  string
		status string
		want   []string
	}{
		{"number substring case-insensitive", "inv-2", stats.StatusAll, []string{"INV-20"}},
		{"client name", "acme", stats.StatusAll, []string{"INV-1"}},
		{"status filter", "", "paid", []string{"INV-1", "INV-3"}},
		{"combined", "gamma", "paid", []string{"INV-3"}},
		{"empty matches all", "", stats.StatusAll, []string{"INV-1", "INV-20", "INV-3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stats.FilterInvoices(invoices, tt.query, tt.status)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d invoices, want %d", len(got), len(tt.want))
			}
			for i, g := range got {
				if g.InvoiceNumber != tt.want[i] {
					t.Errorf("result[%d] = %s, want %s", i, g.InvoiceNumber, tt.want[i])
				}
			}
		})
	}
}

func TestFilterAdminInvoices_MatchesUserEmail(t *testing.T) {
	invoices := []models.AdminInvoice{
		{Invoice: inv("INV-1", "Acme", models.InvoicePaid, 1), UserEmail: "alice@example.com"},
		{Invoice: inv("INV-2", "Beta", models.InvoiceSent, 1), UserEmail: "bob@example.com"},
	}
	got := stats.FilterAdminInvoices(invoices, "bob@", stats.StatusAll)
	if len(got) != 1 || got[0].InvoiceNumber != "INV-2" {
		t.Errorf("FilterAdminInvoices = %v, want only INV-2", got)
	}
}

func TestSummarizeAdminInvoices(t *testing.T) {
	invoices := []models.AdminInvoice{
		{Invoice: inv("INV-1", "Acme", models.InvoicePaid, 100)},
		{Invoice: inv("INV-2", "Beta", models.InvoiceOverdue, 40)},
	}
	sum := stats.SummarizeAdminInvoices(invoices)
	if sum.Paid != 1 || sum.Overdue != 1 || sum.TotalRevenue != 100 || sum.Outstanding != 40 {
		t.Errorf("summary = %+v", sum)
	}
}
