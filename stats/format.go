package stats

import (
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatCurrency renders an amount for display in the given ISO 4217
// currency and locale. Formatting is display-only; the underlying arithmetic
// stays plain float64.
func FormatCurrency(amount float64, code string, lang language.Tag) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.USD
	}
	p := message.NewPrinter(lang)
	return p.Sprint(currency.Symbol(unit.Amount(amount)))
}

// FormatDate renders a timestamp the way the list views show dates.
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}
