package utils

import (
	"strings"
	"testing"
	"time"
)

func TestLoginIDPrefix(t *testing.T) {
	cases := []struct {
		first, last string
		year        int
		want        string
	}{
		{"John", "Smith", 2025, "JOSM2025"},
		{"priya", "sharma", 2025, "PRSH2025"},
		{"A", "Lee", 2024, "ALE2024"},
	}
	for _, tc := range cases {
		if got := LoginIDPrefix(tc.first, tc.last, tc.year); got != tc.want {
			t.Errorf("LoginIDPrefix(%q, %q, %d) = %q, want %q", tc.first, tc.last, tc.year, got, tc.want)
		}
	}
}

func TestFormatLoginID(t *testing.T) {
	if got := FormatLoginID("JOSM2025", 1); got != "JOSM20250001" {
		t.Errorf("got %q, want JOSM20250001", got)
	}
	if got := FormatLoginID("JOSM2025", 123); got != "JOSM20250123" {
		t.Errorf("got %q, want JOSM20250123", got)
	}
}

func TestGenerateTempPassword(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		pw, err := GenerateTempPassword(TempPasswordLength)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if len(pw) != TempPasswordLength {
			t.Fatalf("length = %d, want %d", len(pw), TempPasswordLength)
		}
		for _, ch := range pw {
			if !strings.ContainsRune(tempPasswordChars, ch) {
				t.Fatalf("unexpected character %q in %q", ch, pw)
			}
		}
		seen[pw] = true
	}
	if len(seen) < 2 {
		t.Error("passwords are not random")
	}
}

func TestDateHelpers(t *testing.T) {
	ts := time.Date(2025, time.March, 15, 13, 45, 30, 0, time.UTC)

	if got := DateOnly(ts); got != time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC) {
		t.Errorf("DateOnly = %v", got)
	}
	if got := FirstOfMonth(ts); got != time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC) {
		t.Errorf("FirstOfMonth = %v", got)
	}
	if got := NextMonth(ts); got != time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC) {
		t.Errorf("NextMonth = %v", got)
	}

	// December rolls over the year.
	dec := time.Date(2025, time.December, 20, 0, 0, 0, 0, time.UTC)
	if got := NextMonth(dec); got != time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC) {
		t.Errorf("NextMonth(Dec) = %v", got)
	}
}
