// Package format converts raw minute counts and rates into display strings.
package format

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// MinutesToHours renders a minute count as "45m", "2h" or "1h 30m".
func MinutesToHours(minutes int) string {
	if minutes < 0 {
		return "-" + MinutesToHours(-minutes)
	}
	hours := minutes / 60
	mins := minutes % 60

	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// Percentage renders value with the given number of decimals and a percent
// sign. NaN and infinities render as "0%".
func Percentage(value float64, decimals int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}
	if decimals < 0 {
		decimals = 0
	}
	return fmt.Sprintf("%.*f%%", decimals, value)
}

// Number renders value with US digit grouping and at most three fraction
// digits ("1,234.5").
func Number(value float64) string {
	return printer.Sprint(number.Decimal(value, number.MaxFractionDigits(3)))
}

// HourLabel renders an hour of the day as "12am", "9am", "12pm" or "3pm".
func HourLabel(hour int) string {
	switch {
	case hour == 0:
		return "12am"
	case hour < 12:
		return fmt.Sprintf("%dam", hour)
	case hour == 12:
		return "12pm"
	default:
		return fmt.Sprintf("%dpm", hour-12)
	}
}

// Tier is a bucketed completion rate used for color coding
type Tier struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

var (
	TierExcellent = Tier{Name: "excellent", Color: "#059669"} // >= 90%
	TierGood      = Tier{Name: "good", Color: "#10B981"}      // >= 70%
	TierMedium    = Tier{Name: "medium", Color: "#F59E0B"}    // >= 50%
	TierLow       = Tier{Name: "low", Color: "#DC2626"}       // < 50%
)

// CompletionRateTier buckets a completion rate.
func CompletionRateTier(rate float64) Tier {
	switch {
	case rate >= 90:
		return TierExcellent
	case rate >= 70:
		return TierGood
	case rate >= 50:
		return TierMedium
	default:
		return TierLow
	}
}
