package report

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"tool-rental-checkout/internal/domain"
)

const (
	DefaultLocale         = "en-US"
	DefaultCurrencySymbol = "$"
	DefaultDateLayout     = "01/02/06"
)

// Formatter renders rental agreements as the fixed-field text report
type Formatter struct {
	printer    *message.Printer
	symbol     string
	decimalSep string
	dateLayout string
}

// NewFormatter builds a formatter. locale drives digit grouping and the
// decimal separator; symbol is prefixed to every amount.
func NewFormatter(locale, symbol, dateLayout string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	if dateLayout == "" {
		dateLayout = DefaultDateLayout
	}

	p := message.NewPrinter(tag)
	sample := p.Sprintf("%.1f", 1.5)
	sep := "."
	if len(sample) > 2 {
		sep = sample[1 : len(sample)-1]
	}

	return &Formatter{
		printer:    p,
		symbol:     symbol,
		decimalSep: sep,
		dateLayout: dateLayout,
	}, nil
}

// NewDefaultFormatter formats US dollars with MM/DD/YY dates
func NewDefaultFormatter() *Formatter {
	f, err := NewFormatter(DefaultLocale, DefaultCurrencySymbol, DefaultDateLayout)
	if err != nil {
		panic(err)
	}
	return f
}

// Money formats a non-negative cent amount, e.g. 123456 -> "$1,234.56"
func (f *Formatter) Money(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%s%s%s%02d", sign, f.symbol, f.printer.Sprintf("%d", cents/100), f.decimalSep, cents%100)
}

// Date formats d with the configured layout
func (f *Formatter) Date(d domain.Date) string {
	return d.Format(f.dateLayout)
}

// Format renders one labeled line per agreement field
func (f *Formatter) Format(a domain.RentalAgreement) string {
	var sb strings.Builder

	line := func(label, value string) {
		sb.WriteString(label)
		sb.WriteString(": ")
		sb.WriteString(value)
		sb.WriteString("\n")
	}

	line("Tool code", a.ToolCode)
	line("Tool type", a.Category)
	line("Tool brand", a.Brand)
	line("Rental days", fmt.Sprintf("%d", a.RentalDays))
	line("Checkout date", f.Date(a.CheckoutDate))
	line("Due date", f.Date(a.DueDate))
	line("Daily rental charge", f.Money(a.DailyChargeCents))
	line("Charge days", fmt.Sprintf("%d", a.ChargeDays))
	line("Pre-discount charge", f.Money(a.PreDiscountChargeCents))
	line("Discount percent", fmt.Sprintf("%d%%", a.DiscountPercent))
	line("Discount amount", f.Money(a.DiscountAmountCents))
	line("Final charge", f.Money(a.FinalChargeCents))

	return sb.String()
}
