package helpers

import (
	"fmt"
	"math"
	"time"
)

// CurrencyPrefix is prepended to every formatted amount.
const CurrencyPrefix = "RM"

// FormatRinggit formats an amount in ringgit with two decimals (e.g., 19.5 -> "RM 19.50")
func FormatRinggit(amount float64) string {
	return fmt.Sprintf("%s %.2f", CurrencyPrefix, amount)
}

// FormatNullableRinggit formats a possibly missing amount, treating nil as zero
func FormatNullableRinggit(amount *float64) string {
	if amount == nil {
		return FormatRinggit(0)
	}
	return FormatRinggit(*amount)
}

// RoundCurrency rounds to whole sen so sums don't drift
func RoundCurrency(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatHours formats a whole number of hours (e.g., 1 -> "1 hour", 62 -> "62 hours")
func FormatHours(hours int) string {
	if hours == 1 {
		return "1 hour"
	}
	return fmt.Sprintf("%d hours", hours)
}

// WholeHoursSince returns the number of complete hours between t and now, never negative
func WholeHoursSince(t, now time.Time) int {
	d := now.Sub(t)
	if d < 0 {
		return 0
	}
	return int(d / time.Hour)
}
