package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tool-rental-checkout/internal/domain"
)

// ParseDate converts a yyyy-mm-dd formatted string into a Date
func ParseDate(dateStr string) (domain.Date, error) {
	parts := strings.Split(strings.TrimSpace(dateStr), "-")
	if len(parts) != 3 {
		return domain.Date{}, fmt.Errorf("invalid date format, expected yyyy-mm-dd")
	}
	return buildDate(parts[0], parts[1], parts[2])
}

// ParseUSDate converts an MM/DD/YYYY formatted string into a Date
func ParseUSDate(dateStr string) (domain.Date, error) {
	parts := strings.Split(strings.TrimSpace(dateStr), "/")
	if len(parts) != 3 || len(parts[2]) != 4 {
		return domain.Date{}, fmt.Errorf("invalid date format, expected MM/DD/YYYY")
	}
	return buildDate(parts[2], parts[0], parts[1])
}

// ParseCheckoutDate accepts either MM/DD/YYYY or yyyy-mm-dd
func ParseCheckoutDate(dateStr string) (domain.Date, error) {
	if strings.Contains(dateStr, "/") {
		return ParseUSDate(dateStr)
	}
	return ParseDate(dateStr)
}

func buildDate(yearStr, monthStr, dayStr string) (domain.Date, error) {
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return domain.Date{}, fmt.Errorf("invalid year: %v", err)
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return domain.Date{}, fmt.Errorf("invalid month: %v", err)
	}

	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return domain.Date{}, fmt.Errorf("invalid day: %v", err)
	}

	if year < 1 {
		return domain.Date{}, fmt.Errorf("year must be positive")
	}

	if month < 1 || month > 12 {
		return domain.Date{}, fmt.Errorf("month must be between 1 and 12")
	}

	if day < 1 || day > DaysInMonth(year, month) {
		return domain.Date{}, fmt.Errorf("day must be between 1 and %d", DaysInMonth(year, month))
	}

	return domain.Date{Year: year, Month: time.Month(month), Day: day}, nil
}

// DaysInMonth returns the number of days in a given month
func DaysInMonth(year, month int) int {
	if month == 2 {
		// Check for leap year
		if (year%4 == 0 && year%100 != 0) || (year%400 == 0) {
			return 29
		}
		return 28
	}

	// Months with 30 days: April, June, September, November
	if month == 4 || month == 6 || month == 9 || month == 11 {
		return 30
	}

	return 31
}
