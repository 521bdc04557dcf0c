package pricing

import "tool-rental-checkout/internal/domain"

// ChargeBreakdown counts the days of a rental window by type
type ChargeBreakdown struct {
	Weekdays        int
	Weekends        int
	Holidays        int
	ChargedWeekdays int
	ChargedWeekends int
	ChargedHolidays int
}

// Total is the number of chargeable days
func (b ChargeBreakdown) Total() int {
	return b.ChargedWeekdays + b.ChargedWeekends + b.ChargedHolidays
}

// CountChargeDays walks the rentalDays dates after checkout, up to and
// including the due date, and counts those the policy bills for.
func CountChargeDays(checkout domain.Date, rentalDays int, policy domain.CategoryPolicy, cal *Calendar) ChargeBreakdown {
	var b ChargeBreakdown
	for i := 1; i <= rentalDays; i++ {
		dt := cal.Classify(checkout.AddDays(i))
		charged := policy.ChargesOn(dt)
		switch dt {
		case domain.DayTypeWeekend:
			b.Weekends++
			if charged {
				b.ChargedWeekends++
			}
		case domain.DayTypeHoliday:
			b.Holidays++
			if charged {
				b.ChargedHolidays++
			}
		default:
			b.Weekdays++
			if charged {
				b.ChargedWeekdays++
			}
		}
	}
	return b
}
