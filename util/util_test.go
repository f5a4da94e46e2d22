package util

import (
	"testing"
	"time"
)

func TestNotBlank(t *testing.T) {
	testCases := []struct {
		input string
		want  bool
	}{
		{"hello", true},
		{"", false},
		{"   ", false},
		{"\t\n", false},
		{" x ", true},
	}
	for _, tc := range testCases {
		if got := NotBlank(tc.input); got != tc.want {
			t.Errorf("NotBlank(%q) = %v; want %v", tc.input, got, tc.want)
		}
	}
}

func TestFormatEventDate(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"valid date", "2025-10-15", "Oct 15, 2025"},
		{"new year", "2026-01-01", "Jan 1, 2026"},
		{"unparseable passes through", "next friday", "next friday"},
		{"empty passes through", "", ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatEventDate(tc.input); got != tc.want {
				t.Errorf("FormatEventDate(%q) = %q; want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestFormatPrice(t *testing.T) {
	testCases := []struct {
		price float64
		want  string
	}{
		{0, "Free"},
		{35, "$35.00"},
		{12.5, "$12.50"},
		{0.99, "$0.99"},
	}
	for _, tc := range testCases {
		if got := FormatPrice(tc.price); got != tc.want {
			t.Errorf("FormatPrice(%v) = %q; want %q", tc.price, got, tc.want)
		}
	}
}

func TestFormatAttendees(t *testing.T) {
	testCases := []struct {
		count int
		want  string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.0k"},
		{1234, "1.2k"},
		{9999, "10.0k"},
		{15000, "15k"},
	}
	for _, tc := range testCases {
		if got := FormatAttendees(tc.count); got != tc.want {
			t.Errorf("FormatAttendees(%d) = %q; want %q", tc.count, got, tc.want)
		}
	}
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name string
		t    time.Time
		want string
	}{
		{"just now", now.Add(-30 * time.Second), "just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"days", now.Add(-2 * 24 * time.Hour), "2d ago"},
		{"beyond a week", now.Add(-10 * 24 * time.Hour), "Oct 5, 2025"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatRelativeTime(tc.t, now); got != tc.want {
				t.Errorf("FormatRelativeTime = %q; want %q", got, tc.want)
			}
		})
	}
}

func TestTruncateText(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		maxLength int
		want      string
	}{
		{"short text untouched", "hello", 10, "hello"},
		{"exact length untouched", "hello", 5, "hello"},
		{"long text truncated", "hello world", 5, "hello..."},
		{"multibyte counted as runes", "héllo wörld", 5, "héllo..."},
		{"multibyte at exact length", "héllo", 5, "héllo"},
		{"empty", "", 5, ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TruncateText(tc.input, tc.maxLength); got != tc.want {
				t.Errorf("TruncateText(%q, %d) = %q; want %q", tc.input, tc.maxLength, got, tc.want)
			}
		})
	}
}
