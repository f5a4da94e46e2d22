package util

import (
	"fmt"
	"strings"
	"time"
)

func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

func formatTime(format string, t time.Time) string {
	return t.Format(format)
}

// FormatEventDate renders a catalog date string ("2006-01-02") as the
// display form used on cards, e.g. "Oct 15, 2025". Unparseable input is
// returned unchanged.
func FormatEventDate(dateString string) string {
	t, err := time.Parse("2006-01-02", dateString)
	if err != nil {
		return dateString
	}
	return formatTime("Jan 2, 2006", t)
}

// FormatPrice renders a ticket price; zero means free.
func FormatPrice(price float64) string {
	if price == 0 {
		return "Free"
	}
	return fmt.Sprintf("$%.2f", price)
}

// FormatAttendees compacts large attendee counts ("1.2k", "15k").
func FormatAttendees(count int) string {
	if count < 1000 {
		return fmt.Sprintf("%d", count)
	}
	if count < 10000 {
		return fmt.Sprintf("%.1fk", float64(count)/1000)
	}
	return fmt.Sprintf("%dk", count/1000)
}

// FormatRelativeTime renders how long ago a timestamp was, falling back to
// an absolute date beyond a week.
func FormatRelativeTime(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	}
	return formatTime("Jan 2, 2006", t)
}

// TruncateText shortens text to maxLength runes with an ellipsis.
func TruncateText(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength]) + "..."
}
