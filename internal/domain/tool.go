package domain

// DayType classifies a calendar day for billing
type DayType string

const (
	DayTypeWeekday DayType = "WEEKDAY"
	DayTypeWeekend DayType = "WEEKEND"
	DayTypeHoliday DayType = "HOLIDAY"
)

// Tool is a catalog entry for a rentable tool
type Tool struct {
	Code     string `json:"code" yaml:"code"`
	Category string `json:"category" yaml:"category"`
	Brand    string `json:"brand" yaml:"brand"`
}

// CategoryPolicy holds the daily rate and the billable day types of a tool category
type CategoryPolicy struct {
	Category         string `json:"category" yaml:"name"`
	DailyChargeCents int64  `json:"daily_charge_cents" yaml:"daily_charge_cents"`
	ChargeOnWeekday  bool   `json:"charge_on_weekday" yaml:"weekday_charge"`
	ChargeOnWeekend  bool   `json:"charge_on_weekend" yaml:"weekend_charge"`
	ChargeOnHoliday  bool   `json:"charge_on_holiday" yaml:"holiday_charge"`
}

// ChargesOn reports whether a day of the given type is billable
func (p CategoryPolicy) ChargesOn(dt DayType) bool {
	switch dt {
	case DayTypeWeekend:
		return p.ChargeOnWeekend
	case DayTypeHoliday:
		return p.ChargeOnHoliday
	case DayTypeWeekday:
		return p.ChargeOnWeekday
	default:
		return false
	}
}
