package utils

import "testing"

func TestParseDate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"ISO date", "2024-01-15", "2024-01-15"},
		{"ISO datetime", "2024-01-15 10:30:00", "2024-01-15"},
		{"day-first dashes", "15-01-2024", "2024-01-15"},
		{"day-first slashes", "15/01/2024", "2024-01-15"},
		{"month name", "Jan 5, 2024", "2024-01-05"},
		{"day month year", "05 Jan 2024", "2024-01-05"},
		{"abbreviated month dashes", "05-Jan-2024", "2024-01-05"},
		{"surrounding whitespace", "  2024-01-15  ", "2024-01-15"},
		{"empty", "", ""},
		{"garbage", "not a date", ""},
		{"lone number", "42", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseDate(tc.input); got != tc.want {
				t.Errorf("ParseDate(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseDateIsDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		if got := ParseDate("15-01-2024"); got != "2024-01-15" {
			t.Fatalf("run %d: got %q", i, got)
		}
	}
}
