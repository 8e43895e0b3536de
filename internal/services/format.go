package services

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var amountPrinter = message.NewPrinter(language.English)

// FormatCurrency renders an amount as dollars with thousands grouping,
// e.g. 1234567 -> "$1,234,567".
func FormatCurrency(amount float64) string {
	return amountPrinter.Sprintf("$%v", number.Decimal(amount, number.MaxFractionDigits(2)))
}

// FormatRelative renders t relative to now ("3 minutes ago").
func FormatRelative(t time.Time, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

func roundPercent(part int, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// parseRecordDate reads the dates stored by forms (YYYY-MM-DD, read as UTC
// midnight) and by timestamps (RFC 3339).
func parseRecordDate(value string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339Nano} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
